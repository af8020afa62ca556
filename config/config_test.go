package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("CORS_ORIGINS", " , ")

	cfg := Load()

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "ES", cfg.Phone.DefaultRegion)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("EMAIL_WORKER_POLL_INTERVAL", "30s")
	t.Setenv("APP_BASE_URL", "https://hub.example/")
	t.Setenv("PHONE_DEFAULT_REGION", "pt")

	cfg := Load()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Email.PollInterval)
	assert.Equal(t, "https://hub.example", cfg.Email.AppBaseURL)
	assert.Equal(t, "PT", cfg.Phone.DefaultRegion)
}

func TestValidate(t *testing.T) {
	t.Run("development defaults pass", func(t *testing.T) {
		require.NoError(t, Load().Validate())
	})

	t.Run("production needs a secret and explicit origins", func(t *testing.T) {
		cfg := Load()
		cfg.Server.Environment = "production"
		cfg.JWT.Secret = defaultJWTSecret
		cfg.Server.AllowedOrigins = []string{"*"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "CORS_ORIGINS")
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := Load()
		cfg.Server.Port = 70000
		assert.ErrorContains(t, cfg.Validate(), "SERVER_PORT")
	})
}
