package domain

import "time"

// UserRecord is a stored account entry, keyed in the repository by its
// derived id. PasswordHash and Salt always change together.
type UserRecord struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"passwordHash"`
	Salt          string     `json:"salt"`
	Avatar        string     `json:"avatar,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	Location      string     `json:"location,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
	LoginAttempts int        `json:"loginAttempts"`
	LockedUntil   *time.Time `json:"lockedUntil,omitempty"`
	UpdatedAt     string     `json:"updatedAt,omitempty"`
}

// Clone returns an owned copy of the record. The session keeps copies, never
// references into repository storage.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	clone := *u
	if u.LastLoginAt != nil {
		v := *u.LastLoginAt
		clone.LastLoginAt = &v
	}
	if u.LockedUntil != nil {
		v := *u.LockedUntil
		clone.LockedUntil = &v
	}
	return &clone
}

// ProfileUpdate carries the externally settable profile fields. Credential and
// bookkeeping fields (id, salt, hash, attempt counters) are deliberately not
// representable here.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// Session is the current-user state mirrored to durable storage.
// Authenticated is true iff User and Token are set.
type Session struct {
	User          *UserRecord `json:"user"`
	Token         string      `json:"token"`
	Authenticated bool        `json:"authenticated"`
}
