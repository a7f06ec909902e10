package storage

import (
	"context"
	"io"
	"time"
)

// Service stores uploaded media (avatar images) in remote object storage.
type Service interface {
	// UploadObject stores body under bucket/key and returns the object
	// location in s3://bucket/key form.
	UploadObject(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error)
	// ObjectURL returns a presigned GET URL valid for the given duration.
	ObjectURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}
