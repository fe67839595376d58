package retry

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket limiter. The bucket starts full and
// refills at refillRate tokens per second, capped at maxTokens.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing ratePerSecond requests per
// second with a burst of the same size.
func NewRateLimiter(ratePerSecond float64) *RateLimiter {
	return &RateLimiter{
		tokens:     ratePerSecond,
		maxTokens:  ratePerSecond,
		refillRate: ratePerSecond,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if wait := r.take(); wait <= 0 {
			return nil
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
}

// take consumes a token if available, otherwise returns how long to
// wait before trying again.
func (r *RateLimiter) take() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
	r.lastRefill = now

	if r.tokens >= 1 {
		r.tokens--
		return 0
	}

	missing := 1 - r.tokens
	return time.Duration(missing / r.refillRate * float64(time.Second))
}
