package security

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when a blank plaintext reaches the hasher.
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordHasher produces salted one-way hashes and verifies candidates
// against them. Hash output is self-describing: algorithm, work factor, and
// salt are embedded, so Verify needs no side-channel state.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// Ensure BcryptHasher satisfies the PasswordHasher interface at compile time.
var _ PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given work factor. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext. A blank plaintext is
// rejected rather than hashed.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the previously produced hash.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
