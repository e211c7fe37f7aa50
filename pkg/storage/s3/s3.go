package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"

	"github.com/williamokano/contract_sync/pkg/storage"
)

// chunkSize is the read size used while draining an object body
const chunkSize = 32 * 1024

// ObjectAPI is the subset of the S3 client used by Backend
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Backend struct {
	name   string
	client ObjectAPI
	bucket string
	logger zerolog.Logger
}

// New creates an S3 backend. No request is sent until Fetch is called.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Backend, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: missing bucket", storage.ErrInvalidConfig)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: missing region", storage.ErrInvalidConfig)
	}

	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, storage.WrapError("s3://"+cfg.Bucket, "init", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return NewWithClient(cfg.Bucket, client, logger), nil
}

// NewWithClient wraps an existing client
func NewWithClient(bucket string, client ObjectAPI, logger zerolog.Logger) *Backend {
	name := "s3://" + bucket
	return &Backend{
		name:   name,
		client: client,
		bucket: bucket,
		logger: logger.With().Str("backend", name).Logger(),
	}
}

// LoadAWSConfig builds the SDK configuration. Explicit credentials are used
// verbatim when both are present, otherwise the SDK default provider chain
// (environment, shared config/profile, SSO, container or instance role) applies.
func LoadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.HasStaticCredentials() {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

func (b *Backend) Name() string { return b.name }
func (b *Backend) Type() string { return "s3" }

// Fetch downloads an object and drains its body into memory
func (b *Backend) Fetch(ctx context.Context, key string) (*storage.Object, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, storage.WrapError(b.name, "get object", classify(err))
	}

	if out.Body == nil {
		return nil, storage.WrapError(b.name, "get object", storage.ErrEmptyBody)
	}
	defer out.Body.Close()

	body, chunks, err := drain(out.Body)
	if err != nil {
		return nil, storage.WrapError(b.name, "read body", fmt.Errorf("%w: %w", storage.ErrConnFailed, err))
	}
	if len(body) == 0 {
		return nil, storage.WrapError(b.name, "read body", storage.ErrEmptyBody)
	}

	info := storage.ObjectInfo{
		Key:          key,
		Size:         -1,
		ETag:         aws.ToString(out.ETag),
		LastModified: aws.ToTime(out.LastModified),
	}
	if out.ContentLength != nil {
		info.Size = *out.ContentLength
	}

	b.logger.Debug().
		Str("key", key).
		Int("chunks", chunks).
		Int("size_bytes", len(body)).
		Int64("content_length", info.Size).
		Str("etag", info.ETag).
		Msg("object body drained")

	return &storage.Object{ObjectInfo: info, Body: body}, nil
}

// Close is a no-op for S3
func (b *Backend) Close() error {
	return nil
}

// Helper functions

func drain(r io.Reader) ([]byte, int, error) {
	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)
	chunks := 0

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			chunks++
		}
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), chunks, nil
		}
		if err != nil {
			return nil, chunks, err
		}
	}
}

// classify maps SDK errors onto the storage sentinel errors, keeping the original in the chain
func classify(err error) error {
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noKey) || errors.As(err, &noBucket) {
		return fmt.Errorf("%w: %w", storage.ErrNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch",
			"ExpiredToken", "InvalidToken", "Forbidden":
			return fmt.Errorf("%w: %w", storage.ErrAuthFailed, err)
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return fmt.Errorf("%w: %w", storage.ErrNotFound, err)
		}
	}

	return fmt.Errorf("%w: %w", storage.ErrConnFailed, err)
}
