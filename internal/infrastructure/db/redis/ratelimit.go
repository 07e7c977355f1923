package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/casabierta/realty-api/internal/core/ports"
)

// SlidingWindowLimiter implements ports.RateLimiter on a Redis sorted set per
// key: members are request timestamps, scored by arrival time in nanoseconds.
// The permitted-request count is evaluated over a moving interval ending at
// now, not fixed calendar buckets. The pipeline gives atomic
// increment-and-check semantics so concurrent requests from the same key are
// not undercounted.
type SlidingWindowLimiter struct {
	client *redis.Client
	policy ports.RateLimitPolicy
	seq    atomic.Uint64
	now    func() time.Time
}

// NewSlidingWindowLimiter creates a limiter enforcing the given policy.
func NewSlidingWindowLimiter(client *redis.Client, policy ports.RateLimitPolicy) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{client: client, policy: policy, now: time.Now}
}

// Allow records one request for key and reports whether the count within the
// sliding window stays at or below the policy limit. Backend errors deny the
// request: rate limiting guards authorization-adjacent paths, so it fails
// closed.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now()
	windowStart := now.Add(-l.policy.Window)
	// The sequence suffix keeps members distinct when two requests share a
	// timestamp; ZAdd on an identical member would overwrite instead of
	// adding, and the window would undercount.
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + strconv.FormatUint(l.seq.Add(1), 10)
	rkey := l.key(key)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, rkey, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	pipe.ZAdd(ctx, rkey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	count := pipe.ZCard(ctx, rkey)
	pipe.Expire(ctx, rkey, l.policy.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= int64(l.policy.Limit), nil
}

func (l *SlidingWindowLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.policy.Name, key)
}
