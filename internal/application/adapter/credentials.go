package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// PasswordHasher turns account passwords into stored hashes and checks them at login.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(hash, plain string) bool
}

// AccessToken is a signed bearer token and its expiry.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// Session is what a verified bearer token says about the caller.
// The admin flag is taken from the token, not reloaded per request.
type Session struct {
	UserID    uuid.UUID
	Email     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// TokenService issues bearer tokens at login and verifies them on every protected request.
type TokenService interface {
	Issue(ctx context.Context, user *entity.User) (*AccessToken, error)
	Verify(ctx context.Context, token string) (*Session, error)
}
