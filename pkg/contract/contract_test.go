package contract_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamokano/contract_sync/pkg/contract"
	"github.com/williamokano/contract_sync/pkg/storage"
	"github.com/williamokano/contract_sync/pkg/storage/mocks"
)

const sampleContract = `openapi: 3.0.3
info:
  title: BFF API
  version: 2.4.1
paths:
  /health:
    get: {}
  /auth/sign-up:
    post: {}
`

func newSource(t *testing.T) *mocks.MockSource {
	src := mocks.NewMockSource(t)
	src.On("Name").Return("s3://contracts").Maybe()
	return src
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes_downloaded_contract", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi-bff.yaml")

		src := newSource(t)
		src.On("Fetch", mock.Anything, "bff/openapi.yaml").Return(&storage.Object{
			ObjectInfo: storage.ObjectInfo{Key: "bff/openapi.yaml", Size: int64(len(sampleContract)), ETag: `"e1"`},
			Body:       []byte(sampleContract),
		}, nil).Once()

		result, err := contract.Update(ctx, src, "bff/openapi.yaml", path, zerolog.Nop())
		require.NoError(t, err)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sampleContract, string(written))

		assert.Equal(t, path, result.Path)
		assert.Equal(t, len(sampleContract), result.Size)
		assert.Equal(t, `"e1"`, result.ETag)
		assert.Equal(t, "s3://contracts", result.Source)
		require.NotNil(t, result.Summary)
		assert.Equal(t, "3.0.3", result.Summary.SpecVersion())
		assert.Equal(t, "BFF API", result.Summary.Info.Title)
		assert.Equal(t, "2.4.1", result.Summary.Info.Version)
		assert.Len(t, result.Summary.Paths, 2)
	})

	t.Run("three_chunks_total_length", func(t *testing.T) {
		chunks := [][]byte{bytes.Repeat([]byte("a"), 100), bytes.Repeat([]byte("b"), 2048), bytes.Repeat([]byte("c"), 7)}
		body := bytes.Join(chunks, nil)
		path := filepath.Join(t.TempDir(), "openapi-bff.yaml")

		src := newSource(t)
		src.On("Fetch", mock.Anything, "k").Return(&storage.Object{Body: body}, nil).Once()

		result, err := contract.Update(ctx, src, "k", path, zerolog.Nop())
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(100+2048+7), info.Size())
		assert.Equal(t, 100+2048+7, result.Size)
		assert.Nil(t, result.Summary, "non-OpenAPI content is written but not summarised")
	})

	t.Run("overwrites_existing_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi-bff.yaml")
		require.NoError(t, os.WriteFile(path, []byte("old contract that is longer than the new one"), 0644))

		src := newSource(t)
		src.On("Fetch", mock.Anything, "k").Return(&storage.Object{Body: []byte("openapi: 3.1.0\n")}, nil).Once()

		_, err := contract.Update(ctx, src, "k", path, zerolog.Nop())
		require.NoError(t, err)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "openapi: 3.1.0\n", string(written))
	})

	t.Run("empty_body_writes_nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi-bff.yaml")

		src := newSource(t)
		src.On("Fetch", mock.Anything, "k").
			Return(nil, storage.WrapError("s3://contracts", "get object", storage.ErrEmptyBody)).Once()

		result, err := contract.Update(ctx, src, "k", path, zerolog.Nop())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, storage.ErrEmptyBody)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no file should be written")
	})

	t.Run("fetch_error_keeps_previous_contract", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi-bff.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleContract), 0644))

		src := newSource(t)
		src.On("Fetch", mock.Anything, "k").
			Return(nil, storage.WrapError("s3://contracts", "get object", storage.ErrAuthFailed)).Once()

		_, err := contract.Update(ctx, src, "k", path, zerolog.Nop())
		assert.ErrorIs(t, err, storage.ErrAuthFailed)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sampleContract, string(written))
	})
}

func TestWriteFile(t *testing.T) {
	t.Run("creates_parent_directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "openapi-bff.yaml")

		require.NoError(t, contract.WriteFile(path, []byte("data")))

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "data", string(written))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("leaves_no_temp_files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "openapi-bff.yaml")

		require.NoError(t, contract.WriteFile(path, []byte("one")))
		require.NoError(t, contract.WriteFile(path, []byte("two")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "openapi-bff.yaml", entries[0].Name())
	})

	t.Run("target_is_a_directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "openapi-bff.yaml")
		require.NoError(t, os.Mkdir(path, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0644))

		err := contract.WriteFile(path, []byte("data"))
		assert.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file should be cleaned up")
	})
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantVersion string
		wantErr     bool
	}{
		{"yaml_openapi3", sampleContract, "3.0.3", false},
		{"json_openapi31", `{"openapi":"3.1.0","info":{"title":"BFF","version":"1"},"paths":{}}`, "3.1.0", false},
		{"swagger2", "swagger: \"2.0\"\ninfo:\n  title: legacy\n", "2.0", false},
		{"not_openapi", "hello: world\n", "", true},
		{"invalid_yaml", "openapi: [unclosed\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := contract.Inspect([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, summary.SpecVersion())
		})
	}
}
