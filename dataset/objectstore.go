package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrObjectNotFound is returned by ObjectStore.Get for a missing key.
var ErrObjectNotFound = errors.New("dataset: object not found")

// ObjectStore is the slice of an S3-compatible client that Load and Save need.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	Put(ctx context.Context, bucket, key string, data []byte) error
}

// S3Config describes an S3-compatible endpoint.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
}

// MinioStore implements ObjectStore on top of minio-go.
type MinioStore struct {
	client *minio.Client
}

// NewMinioStore dials nothing; minio-go connects lazily on the first request.
func NewMinioStore(cfg S3Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: s3 client %s: %w", cfg.Endpoint, err)
	}

	return &MinioStore{client: client}, nil
}

// Get streams bucket/key.
func (s *MinioStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	// GetObject is lazy; stat first so a missing key surfaces here.
	if _, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NotFound" {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrObjectNotFound, bucket, key)
		}
		return nil, err
	}

	return s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}

// Put uploads data to bucket/key.
func (s *MinioStore) Put(ctx context.Context, bucket, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})

	return err
}
