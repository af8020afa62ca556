package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/config"
)

func TestRedisRateLimitStore(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)

	client, err := NewRedisClient(ctx, &config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.True(t, HealthCheck(client)(ctx))

	store := NewRedisRateLimitStore(client)

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx, "login:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, time.Minute, server.TTL("login:1.2.3.4"))

	t.Run("window expiry restarts the count", func(t *testing.T) {
		server.FastForward(time.Minute + time.Second)
		got, err := store.Increment(ctx, "login:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})

	t.Run("reset", func(t *testing.T) {
		require.NoError(t, store.Reset(ctx, "login:1.2.3.4"))
		assert.False(t, server.Exists("login:1.2.3.4"))
	})
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "redis://" + addr})
	assert.Error(t, err)
}

func TestMemoryRateLimitStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	for want := int64(1); want <= 6; want++ {
		got, err := store.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := store.Increment(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)

	now = now.Add(time.Minute)
	got, err := store.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	require.NoError(t, store.Reset(ctx, "k"))
	got, err = store.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
