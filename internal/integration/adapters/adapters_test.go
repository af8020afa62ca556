package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func tokenUser(isAdmin bool) *entity.User {
	user := entity.NewUser("ana@example.com", "Ana", "x")
	user.IsAdmin = isAdmin
	return user
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewJWTTokenService("secret", time.Hour)
	user := tokenUser(true)

	token, err := svc.Issue(ctx, user)
	require.NoError(t, err)

	session, err := svc.Verify(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "ana@example.com", session.Email)
	assert.True(t, session.IsAdmin)
	assert.WithinDuration(t, token.ExpiresAt, session.ExpiresAt, time.Second)
}

func TestJWTTokenService_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := NewJWTTokenService("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTTokenService("other", time.Hour).Issue(ctx, tokenUser(false))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token.Token)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewJWTTokenService("secret", time.Minute)
		past.now = func() time.Time { return time.Now().UTC().Add(-2 * time.Hour) }
		token, err := past.Issue(ctx, tokenUser(false))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token.Token)
		assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: uuid.NewString(),
			Issuer:  tokenIssuer,
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(ctx, raw)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not-a-token")
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, hasher.Matches(hash, "admin123"))
	assert.False(t, hasher.Matches(hash, "admin124"))
	assert.False(t, hasher.Matches("not-a-hash", "admin123"))
}

func TestPhoneNormalizer(t *testing.T) {
	n := NewPhoneNormalizer("es")

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"spanish mobile without prefix", "612 34 56 78", "+34612345678"},
		{"already international", "+34 912 345 678", "+34912345678"},
		{"empty", "   ", ""},
		{"internal extension kept", "ext 204", "ext 204"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.raw))
		})
	}
}
