package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis couples a go-redis client with the miniredis server behind it.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

// NewRedis starts the shared miniredis server on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
			server: server,
		}
	})
	return redisMock
}

// Clear drops every key.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// FastForward expires keys as if d had passed.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}
