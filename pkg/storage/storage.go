package storage

import (
	"context"
	"time"
)

// Source is a remote store the contract can be downloaded from
type Source interface {
	// Name returns a human-readable name for this source (e.g., "s3://contracts")
	Name() string

	// Type returns the source type (s3)
	Type() string

	// Fetch downloads a single object and buffers its full content in memory.
	// key: object key in the store (e.g., "bff/openapi.yaml")
	Fetch(ctx context.Context, key string) (*Object, error)

	// Close releases resources (connections, sessions)
	Close() error
}

// ObjectInfo is what the store reported about a fetched object
type ObjectInfo struct {
	Key          string
	Size         int64 // Content length reported by the store, -1 if unknown
	ETag         string
	LastModified time.Time
}

// Object is a fully downloaded object
type Object struct {
	ObjectInfo
	Body []byte
}
