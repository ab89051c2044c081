package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/scenewright/sceneqc/types"
)

// S3Config holds configuration for the S3 report sink.
type S3Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string
	// Prefix is the key prefix within the bucket (optional).
	Prefix string
	// Region is the AWS region (optional, uses default chain if empty).
	Region string
	// Endpoint is a custom S3 endpoint URL for S3-compatible providers
	// (e.g. Cloudflare R2, MinIO). Empty uses the default AWS endpoint.
	Endpoint string
	// UsePathStyle forces path-style addressing (bucket in path, not subdomain).
	// Required by most S3-compatible providers (R2, MinIO, etc.).
	UsePathStyle bool
}

// Validate checks that required S3 configuration is present.
func (c *S3Config) Validate() error {
	if c.Bucket == "" {
		return errors.New("S3 bucket is required")
	}
	return nil
}

// ParseS3Path parses a path in format "bucket/prefix" or "bucket".
func ParseS3Path(path string) (bucket, prefix string) {
	parts := strings.SplitN(path, "/", 2)
	bucket = parts[0]
	if len(parts) > 1 {
		prefix = parts[1]
	}
	return bucket, prefix
}

// s3API is the slice of the S3 client the sink uses, for test doubles.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink writes report frames to an S3 bucket using the partitioned key
// layout. Used by render-farm submission pipelines that collect QC reports
// centrally.
type S3Sink struct {
	client s3API
	cfg    S3Config
}

// Verify S3Sink implements Sink.
var _ Sink = (*S3Sink)(nil)

// NewS3Sink creates an S3 report sink.
// Uses the AWS SDK default credential chain (env vars, shared config, IAM role).
func NewS3Sink(ctx context.Context, s3cfg S3Config) (*S3Sink, error) {
	if err := s3cfg.Validate(); err != nil {
		return nil, WrapInitError(err, s3cfg.Bucket)
	}

	var opts []func(*config.LoadOptions) error
	if s3cfg.Region != "" {
		opts = append(opts, config.WithRegion(s3cfg.Region))
	}
	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, WrapInitError(fmt.Errorf("failed to load AWS config: %w", err), s3cfg.Bucket)
	}

	var s3Opts []func(*s3.Options)
	if s3cfg.Endpoint != "" {
		endpoint := s3cfg.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = &endpoint
		})
	}
	if s3cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return &S3Sink{
		client: s3.NewFromConfig(awsConfig, s3Opts...),
		cfg:    s3cfg,
	}, nil
}

// NewS3SinkWithClient creates an S3 sink with an injected client, for tests.
func NewS3SinkWithClient(client s3API, s3cfg S3Config) *S3Sink {
	return &S3Sink{client: client, cfg: s3cfg}
}

// Write implements Sink.
func (s *S3Sink) Write(ctx context.Context, rep *types.Report) error {
	frame, err := EncodeFrame(rep)
	if err != nil {
		return err
	}

	key := ObjectKey(rep)
	if s.cfg.Prefix != "" {
		key = strings.TrimSuffix(s.cfg.Prefix, "/") + "/" + key
	}

	contentType := "application/x-msgpack"
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.cfg.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(frame),
		ContentType: &contentType,
	})
	if err != nil {
		return WrapWriteError(err, s.cfg.Bucket+"/"+key)
	}
	return nil
}

// Close implements Sink. The S3 client holds no closable resources.
func (s *S3Sink) Close() error { return nil }
