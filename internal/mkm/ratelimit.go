package mkm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/mkm/internal/metrics"
)

// RateLimiter throttles outgoing requests with a token bucket. The
// marketplace enforces a daily budget server-side (see Quota); this only
// spreads requests out on the client.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests with the
// given burst. A burst below 1 is raised to 1.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until the limiter allows a request or ctx is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	start := time.Now()
	err := r.limiter.Wait(ctx)
	metrics.RateLimiterWaitDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Limit returns the configured requests per second.
func (r *RateLimiter) Limit() float64 {
	return float64(r.limiter.Limit())
}

// Burst returns the configured burst size.
func (r *RateLimiter) Burst() int {
	return r.limiter.Burst()
}
