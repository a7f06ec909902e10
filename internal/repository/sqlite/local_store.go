package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"zhejiang-tour/internal/repository"
)

const createLocalStorageTable = `
CREATE TABLE IF NOT EXISTS local_storage (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// LocalStore implements string-keyed durable storage on a sqlite table.
type LocalStore struct {
	db *sql.DB
}

func NewLocalStore(db *sql.DB) repository.LocalStore {
	return &LocalStore{db: db}
}

func (s *LocalStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createLocalStorageTable); err != nil {
		return fmt.Errorf("create local storage table: %w", err)
	}
	return nil
}

func (s *LocalStore) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *LocalStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO local_storage (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}
