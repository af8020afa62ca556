package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/infra/cache"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	tokens := &adaptertest.TokenService{Admins: map[uuid.UUID]bool{}}
	auth := NewAuthMiddleware(tokens)

	admin, member := uuid.New(), uuid.New()
	tokens.Admins[admin] = true

	engine := gin.New()
	engine.GET("/me", auth.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})
	engine.GET("/admin", auth.Authenticate(), auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic abc", http.StatusUnauthorized},
		{"empty token", "/me", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"lower case scheme", "/me", "bearer token-" + member.String(), http.StatusOK},
		{"member on admin route", "/admin", "Bearer token-" + member.String(), http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer token-" + admin.String(), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			rec := serve(engine, http.MethodGet, tt.path, header)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	limiter := NewRateLimiter(cache.NewMemoryRateLimitStore(), RateLimitPolicy{Prefix: "login:", Limit: 2, Window: time.Minute})
	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/login", nil).Code)
	rec := serve(engine, http.MethodPost, "/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SuccessResetsCounter(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	policy := RateLimitPolicy{Prefix: "login:", Limit: 2, Window: time.Minute, ResetOnSuccess: true}
	limiter := NewRateLimiter(cache.NewMemoryRateLimitStore(), policy)
	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		if c.Query("ok") == "1" {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusUnauthorized)
	})

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/login?ok=1", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/login", nil).Code)
}

func TestRateLimiter_SkippedInTests(t *testing.T) {
	t.Setenv("ENV", "test")

	limiter := NewRateLimiter(cache.NewMemoryRateLimitStore(), RateLimitPolicy{Prefix: "login:", Limit: 1, Window: time.Minute})
	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/login", nil).Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"http://localhost:3000"}), SecureHeaders(true))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	header := http.Header{}
	header.Set("Origin", "http://localhost:3000")
	rec := serve(engine, http.MethodGet, "/ping", header)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
