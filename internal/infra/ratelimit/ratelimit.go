// Package ratelimit provides a token bucket limiter for outbound API
// calls. It keeps the service inside upstream quotas instead of burning
// them on bursts.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps golang.org/x/time/rate with blocking acquisition.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter allowing requestsPerSecond sustained throughput
// with the given burst capacity.
func New(requestsPerSecond float64, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a token is available or ctx is canceled. Call it
// before each rate-limited request.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed right now without waiting.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
