package repository

import "context"

// LocalStore is string-keyed durable storage, the persistence substrate for
// every higher-level repository. Values are opaque strings (JSON in practice).
// Access is assumed serialized; there is no cross-key transaction support.
type LocalStore interface {
	Init(ctx context.Context) error
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
