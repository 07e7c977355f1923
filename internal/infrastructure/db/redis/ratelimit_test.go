package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/casabierta/realty-api/internal/core/ports"
)

func newTestLimiter(t *testing.T, policy ports.RateLimitPolicy) (*SlidingWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSlidingWindowLimiter(client, policy), mr
}

func mustAllow(t *testing.T, l *SlidingWindowLimiter, key string, want bool) {
	t.Helper()
	allowed, err := l.Allow(context.Background(), key)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if allowed != want {
		t.Fatalf("allowed = %v, want %v", allowed, want)
	}
}

func TestSlidingWindowLimiter_RejectsOverLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, ports.RateLimitPolicy{Name: "contact", Limit: 3, Window: time.Minute})
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		mustAllow(t, limiter, "10.0.0.1", true)
	}
	mustAllow(t, limiter, "10.0.0.1", false)
	mustAllow(t, limiter, "10.0.0.1", false)
}

func TestSlidingWindowLimiter_SameInstantRequestsAllCounted(t *testing.T) {
	limiter, _ := newTestLimiter(t, ports.RateLimitPolicy{Name: "contact", Limit: 2, Window: time.Minute})
	// A frozen clock makes every request share one timestamp; each must still
	// count on its own toward the limit.
	instant := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return instant }

	mustAllow(t, limiter, "10.0.0.1", true)
	mustAllow(t, limiter, "10.0.0.1", true)
	mustAllow(t, limiter, "10.0.0.1", false)
}

func TestSlidingWindowLimiter_AdmitsAgainAfterWindow(t *testing.T) {
	limiter, _ := newTestLimiter(t, ports.RateLimitPolicy{Name: "public", Limit: 2, Window: time.Minute})
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	limiter.now = func() time.Time { return current }

	mustAllow(t, limiter, "10.0.0.1", true)
	mustAllow(t, limiter, "10.0.0.1", true)

	current = base.Add(30 * time.Second)
	mustAllow(t, limiter, "10.0.0.1", false)

	// Past the window the first two requests age out; the half-window one is
	// still in range, leaving room for exactly one more.
	current = base.Add(61 * time.Second)
	mustAllow(t, limiter, "10.0.0.1", true)
	mustAllow(t, limiter, "10.0.0.1", false)
}

func TestSlidingWindowLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, ports.RateLimitPolicy{Name: "contact", Limit: 1, Window: time.Minute})
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	mustAllow(t, limiter, "10.0.0.1", true)
	mustAllow(t, limiter, "10.0.0.1", false)
	mustAllow(t, limiter, "10.0.0.2", true)
}

func TestSlidingWindowLimiter_BackendErrorDenies(t *testing.T) {
	limiter, mr := newTestLimiter(t, ports.RateLimitPolicy{Name: "contact", Limit: 5, Window: time.Minute})
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	if err == nil {
		t.Fatalf("expected backend error")
	}
	if allowed {
		t.Fatalf("backend failure must deny the request")
	}
}
