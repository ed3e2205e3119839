package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt. The salt is embedded in
// the output, so hashing the same password twice yields different
// digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher using the bcrypt default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns a salted one-way digest of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hashing failed: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches the stored hash.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
