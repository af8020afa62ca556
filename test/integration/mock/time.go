package mock

import (
	"sync"
	"time"
)

// Time is a scenario clock. After SetCurrentTime it reports the chosen instant
// plus the wall time elapsed since, so ordering by timestamp keeps working.
type Time struct {
	mu     sync.RWMutex
	offset time.Duration
}

func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime makes Now report at from this moment on.
func (t *Time) SetCurrentTime(at time.Time) {
	t.mu.Lock()
	t.offset = time.Until(at)
	t.mu.Unlock()
}

// Advance jumps the clock forward.
func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	t.offset += d
	t.mu.Unlock()
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return time.Now().Add(t.offset)
}
