// Package middleware holds the Gin middleware in front of the API handlers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// sessionKey is the Gin context key for the verified *adapter.Session.
const sessionKey = "hub_session"

// AuthMiddleware verifies bearer tokens and enforces the admin flag.
type AuthMiddleware struct {
	tokens adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokens adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid "Bearer <token>" header with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, code, message := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abortWith(c, http.StatusUnauthorized, code, message)
			return
		}

		session, err := m.tokens.Verify(c.Request.Context(), raw)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireAdmin answers 403 unless the session carries the admin flag. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdminFromContext(c) {
			abortWith(c, http.StatusForbidden, domainerror.ErrCodeAdminRequired, "Admin privileges required")
			return
		}
		c.Next()
	}
}

// bearerToken extracts the token. On failure it returns "" with the error to report.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, domainerror.ErrorCode, string) {
	if header == "" {
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func abortWith(c *gin.Context, status int, code domainerror.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message, Code: string(code)})
}

// SessionFromContext returns the session stored by Authenticate.
func SessionFromContext(c *gin.Context) (*adapter.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*adapter.Session)
	return session, ok && session != nil
}

// GetUserIDFromContext returns the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	session, ok := SessionFromContext(c)
	if !ok {
		return uuid.Nil, false
	}
	return session.UserID, true
}

// IsAdminFromContext reports whether the authenticated user is an admin.
func IsAdminFromContext(c *gin.Context) bool {
	session, ok := SessionFromContext(c)
	return ok && session.IsAdmin
}
