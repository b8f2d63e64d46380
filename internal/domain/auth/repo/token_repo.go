package repo

import (
	"context"
	"time"
)

// TokenRepo is the revocation blacklist. Entries age out by the backing
// store's own TTL, so it only ever holds still-valid-but-revoked tokens.
type TokenRepo interface {
	// Blacklist marks a jti revoked for ttl. A non-positive ttl is a no-op:
	// the token has already expired and needs no record.
	Blacklist(ctx context.Context, jti string, ttl time.Duration) error

	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
