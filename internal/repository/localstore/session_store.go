package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"zhejiang-tour/internal/domain"
	"zhejiang-tour/internal/repository"
)

// The mirror uses three independently settable keys, so a partially written
// mirror is possible; Load treats any inconsistency as logged-out.
const (
	sessionUserKey  = "zhejiang-user"
	sessionTokenKey = "zhejiang-token"
	sessionAuthKey  = "zhejiang-authenticated"
)

// SessionStore mirrors the in-memory session into durable storage.
type SessionStore struct {
	store repository.LocalStore
}

func NewSessionStore(store repository.LocalStore) repository.SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || !session.Authenticated || session.User == nil || session.Token == "" {
		return s.Clear(ctx)
	}

	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := s.store.Set(ctx, sessionUserKey, string(user)); err != nil {
		return fmt.Errorf("write session user: %w", err)
	}
	if err := s.store.Set(ctx, sessionTokenKey, session.Token); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	if err := s.store.Set(ctx, sessionAuthKey, "true"); err != nil {
		return fmt.Errorf("write session flag: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	flag, ok, err := s.store.Get(ctx, sessionAuthKey)
	if err != nil {
		return nil, fmt.Errorf("read session flag: %w", err)
	}
	if !ok || flag != "true" {
		return &domain.Session{}, nil
	}

	token, ok, err := s.store.Get(ctx, sessionTokenKey)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if !ok || token == "" {
		return &domain.Session{}, nil
	}

	raw, ok, err := s.store.Get(ctx, sessionUserKey)
	if err != nil {
		return nil, fmt.Errorf("read session user: %w", err)
	}
	if !ok || raw == "" {
		return &domain.Session{}, nil
	}

	var user domain.UserRecord
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}

	return &domain.Session{User: &user, Token: token, Authenticated: true}, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	for _, key := range []string{sessionUserKey, sessionTokenKey, sessionAuthKey} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear session mirror: %w", err)
		}
	}
	return nil
}
