// Package credentials holds the pure hashing and key-derivation helpers used
// by the auth service. Nothing here keeps state.
package credentials

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

const (
	userIDPrefix = "user_"

	hashIterations = 10_000
	hashKeyLength  = 32
)

// GenerateSalt returns a fresh random salt. A new value is produced on every
// call; salts are never reused across accounts.
func GenerateSalt() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// HashPassword derives a deterministic one-way digest of password and salt.
// Equal inputs always produce equal output; distinct salts keep equal
// passwords from hashing alike across accounts.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// GenerateToken returns an opaque session token built from the current time
// and fresh randomness. Possession of the token is the only thing that
// matters; it is never verified cryptographically.
func GenerateToken() string {
	return fmt.Sprintf("tk_%d_%s", time.Now().UnixNano(), uuid.NewString())
}

// DeriveUserID computes the repository key for a username: lowercased, every
// rune outside [a-z0-9] replaced with an underscore, prefixed. Usernames
// differing only by case or punctuation collide on purpose.
func DeriveUserID(username string) string {
	var b strings.Builder
	b.WriteString(userIDPrefix)
	for _, r := range strings.ToLower(username) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
