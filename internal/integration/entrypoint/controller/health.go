package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency answers.
type HealthCheck func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthCheck
	cache    HealthCheck
}

// HealthResponse represents the health check response.
// Cache is omitted when no shared cache is configured.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. cache may be nil.
func NewHealthController(database, cache HealthCheck) *HealthController {
	return &HealthController{database: database, cache: cache}
}

func connection(ctx context.Context, check HealthCheck) string {
	if check != nil && check(ctx) {
		return "connected"
	}
	return "disconnected"
}

// Check handles GET /health requests.
// The status is "degraded" while the database is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  connection(ctx, h.database),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if response.Database != "connected" {
		response.Status = "degraded"
	}
	if h.cache != nil {
		response.Cache = connection(ctx, h.cache)
	}

	c.JSON(http.StatusOK, response)
}
