package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/williamokano/contract_sync/pkg/storage"
)

// Result represents the outcome of a contract update
type Result struct {
	Source   string
	Key      string
	Path     string // Absolute path the contract was written to
	Size     int
	ETag     string
	Summary  *Summary // nil when the document could not be inspected
	Duration time.Duration
}

// Update downloads key from src and writes it to path. Nothing is written
// when the download fails.
func Update(ctx context.Context, src storage.Source, key, path string, logger zerolog.Logger) (*Result, error) {
	start := time.Now()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contract path %s: %w", path, err)
	}

	log := logger.With().
		Str("source", src.Name()).
		Str("key", key).
		Logger()

	log.Info().Msg("downloading contract")

	obj, err := src.Fetch(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download contract: %w", err)
	}

	if err := WriteFile(absPath, obj.Body); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	result := &Result{
		Source:   src.Name(),
		Key:      key,
		Path:     absPath,
		Size:     len(obj.Body),
		ETag:     obj.ETag,
		Duration: time.Since(start),
	}

	summary, err := Inspect(obj.Body)
	if err != nil {
		log.Warn().Err(err).Str("path", absPath).Msg("downloaded file does not look like an OpenAPI contract")
	} else {
		result.Summary = summary
		log.Info().
			Str("openapi", summary.SpecVersion()).
			Str("title", summary.Info.Title).
			Str("version", summary.Info.Version).
			Int("paths", len(summary.Paths)).
			Msg("contract inspected")
	}

	log.Info().
		Str("path", absPath).
		Int("size_bytes", result.Size).
		Dur("duration", result.Duration).
		Msg("contract downloaded successfully")

	return result, nil
}
