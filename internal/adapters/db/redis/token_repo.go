package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revocation keys live under this prefix so the blacklist can share a
// database with other keyspaces.
const blacklistPrefix = "bl:"

const blacklistMarker = "1"

// TokenBlacklist records revoked jti's with a native per-key TTL. No
// manual eviction exists: Redis drops each record exactly when the token
// it shadows would have expired anyway.
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func (r *TokenBlacklist) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing left to protect
		return nil
	}
	return r.client.Set(ctx, blacklistPrefix+jti, blacklistMarker, ttl).Err()
}

func (r *TokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		// fail closed: an unreachable blacklist treats the token as revoked
		return true, err
	}
	return n > 0, nil
}
