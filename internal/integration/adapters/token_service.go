// Package adapters implements the application ports backed by third party libraries.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

const (
	defaultTokenTTL = 24 * time.Hour
	tokenIssuer     = "hub-manager"
)

// hubClaims is the JWT payload. The subject carries the user id.
type hubClaims struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 tokens with a shared secret.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokenService creates a token service. A non positive ttl means 24 hours.
func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *JWTTokenService) Issue(_ context.Context, user *entity.User) (*adapter.AccessToken, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, hubClaims{
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	return &adapter.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify returns ErrExpiredToken for expired tokens and wraps ErrInvalidToken for anything else.
func (s *JWTTokenService) Verify(_ context.Context, raw string) (*adapter.Session, error) {
	claims := &hubClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domainerror.ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", domainerror.ErrInvalidToken)
	}
	return &adapter.Session{
		UserID:    userID,
		Email:     claims.Email,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ adapter.TokenService = (*JWTTokenService)(nil)
