package ports

import (
	"context"
	"time"
)

// RateLimitPolicy is fixed at configuration time, not runtime-tunable.
type RateLimitPolicy struct {
	// Name labels the policy in metrics and Redis keys.
	Name   string
	Limit  int
	Window time.Duration
}

// RateLimiter bounds request volume per key over a sliding window.
// Implementations must provide atomic increment-and-check semantics so
// concurrent requests from the same key are not undercounted.
type RateLimiter interface {
	// Allow records one request for key and reports whether it is within the
	// policy limit. A backend error denies the request (fail closed).
	Allow(ctx context.Context, key string) (bool, error)
}
