package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"zhejiang-tour/internal/apperror"
	"zhejiang-tour/internal/credentials"
	"zhejiang-tour/internal/domain"
	"zhejiang-tour/internal/repository"
)

// Profile defaults applied at registration, until the visitor edits them.
const (
	defaultAvatar   = "https://placekitten.com/100/100"
	defaultBio      = "这是一个示例用户简介"
	defaultLocation = "浙江省杭州市"
)

// LockoutPolicy controls the failed-login counter and the temporary lock.
type LockoutPolicy struct {
	MaxAttempts       int
	LockDuration      time.Duration
	MinPasswordLength int
}

func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{
		MaxAttempts:       5,
		LockDuration:      30 * time.Minute,
		MinPasswordLength: 6,
	}
}

// AuthService owns the current session and orchestrates the account
// lifecycle. Every state-changing operation writes the repository first and
// the session mirror second; there is no transaction across the two.
type AuthService interface {
	// Restore rehydrates the session mirror at startup. The mirror is not
	// cross-checked against the repository; a stale session is accepted.
	Restore(ctx context.Context) error

	Login(ctx context.Context, username, password string) (*domain.UserRecord, error)
	Register(ctx context.Context, username, email, password string) (*domain.UserRecord, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserRecord, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, password string) error

	IsLoggedIn() bool
	User() *domain.UserRecord
	Token() string
	AllUsers(ctx context.Context) ([]domain.UserRecord, error)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	policy   LockoutPolicy
	log      *logrus.Logger
	now      func() time.Time

	mu      sync.Mutex
	session domain.Session
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionStore, policy LockoutPolicy, log *logrus.Logger) AuthService {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultLockoutPolicy().MaxAttempts
	}
	if policy.LockDuration <= 0 {
		policy.LockDuration = DefaultLockoutPolicy().LockDuration
	}
	if policy.MinPasswordLength <= 0 {
		policy.MinPasswordLength = DefaultLockoutPolicy().MinPasswordLength
	}
	return &authService{
		users:    users,
		sessions: sessions,
		policy:   policy,
		log:      log,
		now:      time.Now,
	}
}

func (s *authService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	s.session = *session
	if s.session.Authenticated {
		s.log.Infof("restored session for %s", s.session.User.Username)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := credentials.DeriveUserID(username)
	record, err := s.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("user does not exist")
	}
	if err != nil {
		return nil, apperror.Internal("login failed", err)
	}

	now := s.now()
	if record.LockedUntil != nil && record.LockedUntil.After(now) {
		minutes := int(math.Ceil(record.LockedUntil.Sub(now).Minutes()))
		return nil, apperror.Locked(fmt.Sprintf("account is locked, try again in %d minutes", minutes))
	}

	if credentials.HashPassword(password, record.Salt) != record.PasswordHash {
		record.LoginAttempts++
		if record.LoginAttempts >= s.policy.MaxAttempts {
			lockedUntil := now.Add(s.policy.LockDuration)
			record.LockedUntil = &lockedUntil
			if err := s.users.Put(ctx, record); err != nil {
				return nil, apperror.Internal("login failed", err)
			}
			s.log.Warnf("account %s locked after %d failed logins", record.Username, record.LoginAttempts)
			return nil, apperror.Locked(fmt.Sprintf("too many failed attempts, account locked for %d minutes", int(s.policy.LockDuration.Minutes())))
		}
		if err := s.users.Put(ctx, record); err != nil {
			return nil, apperror.Internal("login failed", err)
		}
		remaining := s.policy.MaxAttempts - record.LoginAttempts
		return nil, apperror.Auth(fmt.Sprintf("wrong password, %d attempts remaining", remaining))
	}

	record.LoginAttempts = 0
	record.LockedUntil = nil
	lastLogin := now
	record.LastLoginAt = &lastLogin
	if err := s.users.Put(ctx, record); err != nil {
		return nil, apperror.Internal("login failed", err)
	}

	if err := s.startSession(ctx, record); err != nil {
		return nil, err
	}
	return s.session.User.Clone(), nil
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, apperror.Validation("username is required")
	}
	if email == "" {
		return nil, apperror.Validation("email is required")
	}
	if password == "" {
		return nil, apperror.Validation("password is required")
	}
	if len(password) < s.policy.MinPasswordLength {
		return nil, apperror.Validation(fmt.Sprintf("password must be at least %d characters", s.policy.MinPasswordLength))
	}

	id := credentials.DeriveUserID(username)
	if _, err := s.users.Get(ctx, id); err == nil {
		return nil, apperror.Conflict("username already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Internal("registration failed", err)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal("registration failed", err)
	}
	if exists {
		return nil, apperror.Conflict("email already in use")
	}

	salt := credentials.GenerateSalt()
	record := &domain.UserRecord{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: credentials.HashPassword(password, salt),
		Salt:         salt,
		Avatar:       defaultAvatar,
		Bio:          defaultBio,
		Location:     defaultLocation,
		CreatedAt:    s.now(),
	}
	if err := s.users.Put(ctx, record); err != nil {
		return nil, apperror.Internal("registration failed", err)
	}

	if err := s.startSession(ctx, record); err != nil {
		return nil, err
	}
	s.log.Infof("registered user %s", record.Username)
	return s.session.User.Clone(), nil
}

func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// re-sync the in-session copy before dropping it, so edits that only
	// reached the session are not lost
	if s.session.User != nil {
		if err := s.users.Put(ctx, s.session.User); err != nil {
			s.log.Warnf("persist user on logout: %v", err)
		}
	}

	s.session = domain.Session{}
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Warnf("clear session mirror: %v", err)
	}
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Authenticated || s.session.User == nil {
		return nil, apperror.Precondition("not logged in")
	}

	user := s.session.User
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	user.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.users.Put(ctx, user); err != nil {
		return nil, apperror.Internal("profile update failed", err)
	}
	if err := s.sessions.Save(ctx, &s.session); err != nil {
		return nil, apperror.Internal("profile update failed", err)
	}
	return user.Clone(), nil
}

func (s *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Authenticated || s.session.User == nil {
		return apperror.Precondition("not logged in")
	}

	user := s.session.User
	if credentials.HashPassword(currentPassword, user.Salt) != user.PasswordHash {
		return apperror.Auth("current password is incorrect")
	}
	if len(newPassword) < s.policy.MinPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters", s.policy.MinPasswordLength))
	}

	// salt and hash are regenerated together, never one without the other
	salt := credentials.GenerateSalt()
	user.Salt = salt
	user.PasswordHash = credentials.HashPassword(newPassword, salt)

	if err := s.users.Put(ctx, user); err != nil {
		return apperror.Internal("password change failed", err)
	}
	if err := s.sessions.Save(ctx, &s.session); err != nil {
		return apperror.Internal("password change failed", err)
	}
	return nil
}

func (s *authService) DeleteAccount(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Authenticated || s.session.User == nil {
		return apperror.Precondition("not logged in")
	}

	user := s.session.User
	if credentials.HashPassword(password, user.Salt) != user.PasswordHash {
		return apperror.Auth("wrong password")
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		return apperror.Internal("account deletion failed", err)
	}

	s.session = domain.Session{}
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Warnf("clear session mirror: %v", err)
	}
	s.log.Infof("deleted account %s", user.Username)
	return nil
}

func (s *authService) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Authenticated
}

func (s *authService) User() *domain.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.User.Clone()
}

func (s *authService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

func (s *authService) AllUsers(ctx context.Context) ([]domain.UserRecord, error) {
	records, err := s.users.All(ctx)
	if err != nil {
		return nil, apperror.Internal("list users failed", err)
	}
	return records, nil
}

// startSession populates the in-memory session with an owned copy of the
// record and mirrors it. Callers hold the mutex.
func (s *authService) startSession(ctx context.Context, record *domain.UserRecord) error {
	s.session = domain.Session{
		User:          record.Clone(),
		Token:         credentials.GenerateToken(),
		Authenticated: true,
	}
	if err := s.sessions.Save(ctx, &s.session); err != nil {
		return apperror.Internal("login failed", err)
	}
	return nil
}
