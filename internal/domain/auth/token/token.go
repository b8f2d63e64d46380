package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims is the full claim set carried by every token: subject, expiry and
// jti from RegisteredClaims plus the access/refresh type tag.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

type Codec interface {
	// Issue mints a signed token of the given type for the subject,
	// expiring after ttl, with a fresh jti.
	Issue(subject uuid.UUID, typ string, ttl time.Duration) (string, error)

	// Decode verifies signature and expiry, enforces the type tag and
	// returns the subject id.
	Decode(raw string, expectedType string) (uuid.UUID, error)

	// DecodePayload verifies signature and expiry but skips the type and
	// subject checks. Used for revocation bookkeeping, where only jti and
	// expiry matter.
	DecodePayload(raw string) (Claims, error)
}
