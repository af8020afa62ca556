package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/application/adapter"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// RateLimitPolicy caps requests per client IP inside a fixed window.
type RateLimitPolicy struct {
	Prefix string
	Limit  int64
	Window time.Duration
	// ResetOnSuccess clears the counter after a 2xx response, so only failures accumulate.
	ResetOnSuccess bool
}

// LoginPolicy allows 5 failed login attempts per IP per minute.
var LoginPolicy = RateLimitPolicy{Prefix: "login:", Limit: 5, Window: time.Minute, ResetOnSuccess: true}

// RateLimiter counts requests in a shared store so every replica sees the same totals.
type RateLimiter struct {
	store  adapter.RateLimitStore
	policy RateLimitPolicy
}

// NewRateLimiter creates a limiter enforcing policy on top of store.
func NewRateLimiter(store adapter.RateLimitStore, policy RateLimitPolicy) *RateLimiter {
	return &RateLimiter{store: store, policy: policy}
}

// Middleware answers 429 once a client exceeds the policy.
// ENV=test or E2E_MODE=true disables it; a failing store lets requests through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if limitsDisabled() {
			c.Next()
			return
		}

		client := c.ClientIP()
		if client == "" {
			client = c.Request.RemoteAddr
		}

		key := rl.policy.Prefix + client
		count, err := rl.store.Increment(c.Request.Context(), key, rl.policy.Window)
		if err != nil {
			slog.Error("Rate limit store failed", "error", err, "prefix", rl.policy.Prefix)
			c.Next()
			return
		}
		if count <= rl.policy.Limit {
			c.Next()
			rl.afterResponse(c, key)
			return
		}

		c.Header("Retry-After", strconv.Itoa(int(rl.policy.Window.Seconds())))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
			Error: "Too many requests. Please try again later.",
			Code:  string(domainerror.ErrCodeRateLimited),
		})
	}
}

func (rl *RateLimiter) afterResponse(c *gin.Context, key string) {
	status := c.Writer.Status()
	if !rl.policy.ResetOnSuccess || status < 200 || status >= 300 {
		return
	}
	if err := rl.store.Reset(c.Request.Context(), key); err != nil {
		slog.Warn("Rate limit reset failed", "error", err, "prefix", rl.policy.Prefix)
	}
}

func limitsDisabled() bool {
	return os.Getenv("ENV") == "test" || os.Getenv("E2E_MODE") == "true"
}
