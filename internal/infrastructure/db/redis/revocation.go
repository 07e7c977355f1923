package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList stores per-user revocation cut-offs in Redis.
// Key format: revoked:<uid>, value is the revocation unix timestamp. Entries
// expire after the session TTL since any credential issued before the cut-off
// has itself expired by then.
type RevocationList struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationList creates a RevocationList whose entries live as long as a
// session credential.
func NewRevocationList(client *redis.Client, sessionTTL time.Duration) *RevocationList {
	return &RevocationList{client: client, ttl: sessionTTL}
}

// Revoke records now as the revocation cut-off for uid.
func (r *RevocationList) Revoke(ctx context.Context, uid string) error {
	cutoff := strconv.FormatInt(time.Now().Unix(), 10)
	return r.client.Set(ctx, r.key(uid), cutoff, r.ttl).Err()
}

// RevokedSince reports whether credentials issued at issuedAtUnix seconds are
// revoked for uid.
func (r *RevocationList) RevokedSince(ctx context.Context, uid string, issuedAtUnix int64) (bool, error) {
	val, err := r.client.Get(ctx, r.key(uid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("revocation check: %w", err)
	}

	cutoff, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("revocation check: malformed cutoff %q", val)
	}
	return issuedAtUnix <= cutoff, nil
}

func (r *RevocationList) key(uid string) string {
	return "revoked:" + uid
}
