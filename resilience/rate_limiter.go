package resilience

import (
	"context"
	"sync"
	"time"
)

// RateLimiterConfig configures request pacing.
type RateLimiterConfig struct {
	// Rate is the number of requests allowed per second.
	Rate float64 `yaml:"rate" mapstructure:"rate"`
	// Burst is the number of requests allowed back to back.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// RateLimiter is a token bucket. It is safe for concurrent use.
type RateLimiter struct {
	rate  float64
	burst float64

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter with a full bucket.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(1, int(cfg.Rate))
	}
	return &RateLimiter{
		rate:       cfg.Rate,
		burst:      float64(cfg.Burst),
		tokens:     float64(cfg.Burst),
		lastRefill: time.Now(),
	}
}

// Allow takes a token if one is available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available or ctx is done. The token is
// reserved up front, so concurrent waiters are served in arrival order.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	rl.refill()
	rl.tokens--
	var wait time.Duration
	if rl.tokens < 0 {
		wait = time.Duration(-rl.tokens / rl.rate * float64(time.Second))
	}
	rl.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		rl.mu.Lock()
		rl.tokens++
		rl.mu.Unlock()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the number of tokens currently available.
func (rl *RateLimiter) Tokens() float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	return rl.tokens
}

func (rl *RateLimiter) refill() {
	now := time.Now()
	rl.tokens += now.Sub(rl.lastRefill).Seconds() * rl.rate
	rl.lastRefill = now
	if rl.tokens > rl.burst {
		rl.tokens = rl.burst
	}
}
