package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/hubmanager/backend/internal/application/adapter"
)

const defaultBcryptCost = 12

// BcryptHasher stores passwords as bcrypt hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher. A non positive cost means 12; tests pass bcrypt.MinCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = defaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var _ adapter.PasswordHasher = (*BcryptHasher)(nil)
