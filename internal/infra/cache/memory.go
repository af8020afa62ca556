package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hubmanager/backend/internal/application/adapter"
)

type window struct {
	count   int64
	resetAt time.Time
}

// MemoryRateLimitStore keeps counters in process memory. Used when Redis is disabled.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewMemoryRateLimitStore creates an empty store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Increment counts one attempt for key inside the current window.
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, length time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(length)}
		s.windows[key] = w
	}
	w.count++

	if len(s.windows) > 1024 {
		s.sweep(now)
	}
	return w.count, nil
}

// Reset clears the attempts of key.
func (s *MemoryRateLimitStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

// sweep drops expired windows. Caller holds mu.
func (s *MemoryRateLimitStore) sweep(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}

var _ adapter.RateLimitStore = (*MemoryRateLimitStore)(nil)
