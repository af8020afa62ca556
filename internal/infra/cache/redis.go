// Package cache provides the shared counters behind the login rate limiter.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/application/adapter"
)

// NewRedisClient connects to the configured Redis and verifies it answers.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("cache: parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}
	return client, nil
}

// HealthCheck returns a probe for the health endpoint.
func HealthCheck(client *redis.Client) func(ctx context.Context) bool {
	return func(ctx context.Context) bool {
		return client.Ping(ctx).Err() == nil
	}
}

// RedisRateLimitStore keeps fixed window counters in Redis so every API replica shares them.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a store on top of client.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Increment counts one attempt. The window starts with the first attempt of the key.
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: increment %s: %w", key, err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("cache: expire %s: %w", key, err)
		}
	}
	return count, nil
}

// Reset clears the attempts of key.
func (s *RedisRateLimitStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache: reset %s: %w", key, err)
	}
	return nil
}

var _ adapter.RateLimitStore = (*RedisRateLimitStore)(nil)
