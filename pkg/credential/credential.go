// Package credential abstracts password hashing so registries store opaque
// credentials instead of plaintext and tests can substitute a deterministic
// hasher.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into a stored credential and checks a
// plaintext against a previously issued credential.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, credential string) bool
}

// BcryptHasher implements Hasher with bcrypt at a configurable cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a BcryptHasher. Costs outside bcrypt's valid range
// fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(password, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
}
