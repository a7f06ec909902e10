package repository

import (
	"context"
	"errors"

	"zhejiang-tour/internal/domain"
)

// ErrNotFound is returned when a repository lookup misses.
var ErrNotFound = errors.New("not found")

// UserRepository defines persistence operations for account records, keyed by
// derived user id. Put is an upsert that fully replaces the stored record.
type UserRepository interface {
	Get(ctx context.Context, id string) (*domain.UserRecord, error)
	Put(ctx context.Context, record *domain.UserRecord) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	All(ctx context.Context) ([]domain.UserRecord, error)
}

// SessionStore persists the session mirror so a session survives restarts.
// The mirror is independent of the user repository; a stale mirror whose
// backing record was deleted elsewhere is accepted behavior.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Load(ctx context.Context) (*domain.Session, error)
	Clear(ctx context.Context) error
}
