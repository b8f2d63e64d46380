package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	customErrors "github.com/cookhub/auth-service/internal/domain/auth/errors"
	domtoken "github.com/cookhub/auth-service/internal/domain/auth/token"
)

// Codec signs and verifies bearer tokens with HMAC-SHA256 and a single
// server-held secret. Tokens are never stored; validity is re-derived from
// the signature on every call.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Issue(subject uuid.UUID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := domtoken.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Type: typ,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}
	return signed, nil
}

func (c *Codec) Decode(raw string, expectedType string) (uuid.UUID, error) {
	claims, err := c.DecodePayload(raw)
	if err != nil {
		return uuid.Nil, err
	}

	if claims.Type != expectedType {
		return uuid.Nil, customErrors.ErrWrongTokenType
	}
	if claims.Subject == "" {
		return uuid.Nil, customErrors.ErrMissingSubject
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, customErrors.ErrMalformedSubject
	}
	return uid, nil
}

func (c *Codec) DecodePayload(raw string) (domtoken.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &domtoken.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return c.secret, nil
	})

	if err != nil || !parsed.Valid {
		return domtoken.Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*domtoken.Claims)
	if !ok {
		return domtoken.Claims{}, customErrors.WrapInternal(errors.New("claims not Claims"), "DecodePayload")
	}
	return *claims, nil
}
