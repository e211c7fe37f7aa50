package storage

import (
	"errors"
	"fmt"
)

var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrConnFailed    = errors.New("connection failed")
	ErrNotFound      = errors.New("object not found")
	ErrEmptyBody     = errors.New("no data received from object store")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsConfigError reports whether err was raised before any request was sent
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsTransportError returns true for failures reported by the remote store
func IsTransportError(err error) bool {
	return errors.Is(err, ErrAuthFailed) || errors.Is(err, ErrConnFailed) || errors.Is(err, ErrNotFound)
}

// WrapError adds context to an error
func WrapError(backend, operation string, err error) error {
	return fmt.Errorf("%s (%s): %w", operation, backend, err)
}
