package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Retry defaults. Two retries after the first attempt, starting at one
// second and doubling.
const (
	DefaultMaxRetries     = 2
	DefaultInitialBackoff = time.Second
	DefaultMaxBackoff     = 8 * time.Second
	DefaultMultiplier     = 2.0
	DefaultJitter         = 0.2
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	// Zero disables retrying.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration `yaml:"initial_backoff" mapstructure:"initial_backoff"`
	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration `yaml:"max_backoff" mapstructure:"max_backoff"`
	// Multiplier grows the delay after each retry.
	Multiplier float64 `yaml:"multiplier" mapstructure:"multiplier"`
	// Jitter randomises each delay by up to this fraction (0.0 to 1.0).
	Jitter float64 `yaml:"jitter" mapstructure:"jitter"`
	// RetryIf decides whether an error is transient. Nil retries every error
	// except context cancellation.
	RetryIf func(error) bool `yaml:"-" mapstructure:"-"`
	// OnRetry is called before sleeping ahead of retry number n (1-based).
	OnRetry func(n int, err error, backoff time.Duration) `yaml:"-" mapstructure:"-"`
}

// DefaultRetryConfig returns the transport's retry policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: DefaultInitialBackoff,
		MaxBackoff:     DefaultMaxBackoff,
		Multiplier:     DefaultMultiplier,
		Jitter:         DefaultJitter,
		RetryIf:        DefaultRetryIf,
	}
}

// DefaultRetryIf retries all errors except context cancellation.
func DefaultRetryIf(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c RetryConfig) normalized() RetryConfig {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = DefaultInitialBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = DefaultMaxBackoff
	}
	if c.MaxBackoff < c.InitialBackoff {
		c.MaxBackoff = c.InitialBackoff
	}
	if c.Multiplier < 1 {
		c.Multiplier = DefaultMultiplier
	}
	if c.Jitter < 0 {
		c.Jitter = 0
	} else if c.Jitter > 1 {
		c.Jitter = 1
	}
	if c.RetryIf == nil {
		c.RetryIf = DefaultRetryIf
	}
	return c
}

// Retry runs fn, retrying transient failures up to cfg.MaxRetries times.
// It returns the first success, the first non-transient error, or the last
// error once the ceiling is reached. Context cancellation while waiting
// returns the context error.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	cfg = cfg.normalized()

	for retry := 0; ; retry++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if retry >= cfg.MaxRetries || !cfg.RetryIf(err) {
			return zero, err
		}

		backoff := cfg.Backoff(retry + 1)
		if cfg.OnRetry != nil {
			cfg.OnRetry(retry+1, err, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// Backoff returns the delay before retry n (1-based):
// InitialBackoff * Multiplier^(n-1), jittered, capped at MaxBackoff.
func (c RetryConfig) Backoff(n int) time.Duration {
	c = c.normalized()
	if n < 1 {
		n = 1
	}
	d := float64(c.InitialBackoff) * math.Pow(c.Multiplier, float64(n-1))
	if c.Jitter > 0 {
		d += (rand.Float64()*2 - 1) * d * c.Jitter
	}
	if d > float64(c.MaxBackoff) {
		d = float64(c.MaxBackoff)
	}
	if d <= 0 {
		d = float64(c.InitialBackoff)
	}
	return time.Duration(d)
}
