package upstream

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum gap between upstream requests, process
// wide. Every caller funnels through the same instance owned by the
// composition root; the only state is the last permitted timestamp,
// guarded by one mutex.
type Limiter struct {
	delay time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewLimiter creates a limiter with the given minimum inter-request
// delay. A non-positive delay disables pacing.
func NewLimiter(delay time.Duration) *Limiter {
	return &Limiter{delay: delay}
}

// Wait blocks until at least the configured delay has elapsed since the
// last permitted request, then records the new slot. Concurrent callers
// serialize on the internal lock, so two callers can never be admitted
// within less than the delay of each other. Honors ctx cancellation
// while sleeping.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.delay <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := time.Now()
	next := l.last.Add(l.delay)
	if next.Before(now) {
		next = now
	}
	l.last = next
	l.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
