// Package localstore implements the application's repositories on top of
// string-keyed durable storage, one JSON document per key.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"zhejiang-tour/internal/domain"
	"zhejiang-tour/internal/repository"
)

const userDatabaseKey = "zhejiang-user-database"

// UserRepository keeps the whole account map under a single durable key.
type UserRepository struct {
	store repository.LocalStore
}

func NewUserRepository(store repository.LocalStore) repository.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) load(ctx context.Context) (map[string]domain.UserRecord, error) {
	raw, ok, err := r.store.Get(ctx, userDatabaseKey)
	if err != nil {
		return nil, fmt.Errorf("read user database: %w", err)
	}

	users := make(map[string]domain.UserRecord)
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			return nil, fmt.Errorf("decode user database: %w", err)
		}
	}
	return users, nil
}

func (r *UserRepository) save(ctx context.Context, users map[string]domain.UserRecord) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user database: %w", err)
	}
	if err := r.store.Set(ctx, userDatabaseKey, string(raw)); err != nil {
		return fmt.Errorf("write user database: %w", err)
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.UserRecord, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (r *UserRepository) Put(ctx context.Context, record *domain.UserRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("user record id is required")
	}

	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	users[record.ID] = *record
	return r.save(ctx, users)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := users[id]; !ok {
		return nil
	}
	delete(users, id)
	return r.save(ctx, users)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	users, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for _, record := range users {
		if strings.EqualFold(record.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) All(ctx context.Context) ([]domain.UserRecord, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.UserRecord, 0, len(users))
	for _, record := range users {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}
