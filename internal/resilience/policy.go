// Package resilience wraps calls to the language-model provider in a rate
// limiter, a circuit breaker and bounded retries.
package resilience

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// PolicyConfig configures a Policy.
type PolicyConfig struct {
	Name             string
	RequestsPerSec   float64
	Burst            int
	MaxAttempts      int
	BreakerThreshold int
	BreakerReset     time.Duration
	// Retryable decides which failures are retried and counted by the
	// breaker. Defaults to IsTransient.
	Retryable func(error) bool
}

// Policy composes rate limiting, circuit breaking and retry for one upstream.
type Policy struct {
	limiter   *rate.Limiter
	breaker   *Breaker
	retry     RetryConfig
	retryable func(error) bool
}

// NewPolicy builds a Policy. RequestsPerSec <= 0 disables rate limiting.
func NewPolicy(cfg PolicyConfig) *Policy {
	retryable := cfg.Retryable
	if retryable == nil {
		retryable = IsTransient
	}

	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}
	burst := max(cfg.Burst, 1)

	rc := DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		rc.MaxAttempts = cfg.MaxAttempts
	}
	rc.ShouldRetry = func(err error) bool {
		return !eris.Is(err, ErrBreakerOpen) && retryable(err)
	}
	rc.OnRetry = RetryLogger(cfg.Name)

	return &Policy{
		limiter:   rate.NewLimiter(limit, burst),
		breaker:   NewBreaker(cfg.Name, cfg.BreakerThreshold, cfg.BreakerReset),
		retry:     rc,
		retryable: retryable,
	}
}

// Breaker exposes the policy's breaker. The advisor reports its state on /health.
func (p *Policy) Breaker() *Breaker {
	return p.breaker
}

// Call runs fn under the policy. Every attempt waits for a limiter token and
// passes through the breaker.
func Call[T any](ctx context.Context, p *Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	return Retry(ctx, p.retry, func(ctx context.Context) (T, error) {
		if err := p.limiter.Wait(ctx); err != nil {
			var zero T
			return zero, eris.Wrap(err, "resilience: rate limit wait")
		}
		return Guard(ctx, p.breaker, p.retryable, fn)
	})
}
