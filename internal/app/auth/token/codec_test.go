package token_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apptoken "github.com/cookhub/auth-service/internal/app/auth/token"
	customErrors "github.com/cookhub/auth-service/internal/domain/auth/errors"
	domtoken "github.com/cookhub/auth-service/internal/domain/auth/token"
)

const testSecret = "unit-test-secret-0123456789"

func TestCodec_IssueDecodeRoundTrip(t *testing.T) {
	c := apptoken.NewCodec(testSecret)
	uid := uuid.New()

	raw, err := c.Issue(uid, domtoken.TypeAccess, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := c.Decode(raw, domtoken.TypeAccess)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestCodec_WrongTokenType(t *testing.T) {
	c := apptoken.NewCodec(testSecret)
	uid := uuid.New()

	access, err := c.Issue(uid, domtoken.TypeAccess, time.Minute)
	require.NoError(t, err)
	refresh, err := c.Issue(uid, domtoken.TypeRefresh, time.Hour)
	require.NoError(t, err)

	_, err = c.Decode(access, domtoken.TypeRefresh)
	require.ErrorIs(t, err, customErrors.ErrWrongTokenType)

	_, err = c.Decode(refresh, domtoken.TypeAccess)
	require.ErrorIs(t, err, customErrors.ErrWrongTokenType)
}

func TestCodec_ExpiredToken(t *testing.T) {
	c := apptoken.NewCodec(testSecret)

	raw, err := c.Issue(uuid.New(), domtoken.TypeAccess, -time.Second)
	require.NoError(t, err)

	_, err = c.Decode(raw, domtoken.TypeAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)

	_, err = c.DecodePayload(raw)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

func TestCodec_ForeignSignature(t *testing.T) {
	c := apptoken.NewCodec(testSecret)
	other := apptoken.NewCodec("a-completely-different-secret")

	raw, err := other.Issue(uuid.New(), domtoken.TypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = c.Decode(raw, domtoken.TypeAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

func TestCodec_Garbage(t *testing.T) {
	c := apptoken.NewCodec(testSecret)

	_, err := c.Decode("not-even-a-jwt", domtoken.TypeAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

// sign builds a token outside the codec so subject handling can be probed.
func sign(t *testing.T, subject string) string {
	t.Helper()
	claims := domtoken.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
			ID:        uuid.NewString(),
		},
		Type: domtoken.TypeAccess,
	}
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func TestCodec_MissingSubject(t *testing.T) {
	c := apptoken.NewCodec(testSecret)

	_, err := c.Decode(sign(t, ""), domtoken.TypeAccess)
	require.ErrorIs(t, err, customErrors.ErrMissingSubject)
}

func TestCodec_MalformedSubject(t *testing.T) {
	c := apptoken.NewCodec(testSecret)

	_, err := c.Decode(sign(t, "not-a-uuid"), domtoken.TypeAccess)
	require.ErrorIs(t, err, customErrors.ErrMalformedSubject)
}

func TestCodec_DecodePayloadSkipsTypeCheck(t *testing.T) {
	c := apptoken.NewCodec(testSecret)
	uid := uuid.New()

	raw, err := c.Issue(uid, domtoken.TypeRefresh, time.Hour)
	require.NoError(t, err)

	claims, err := c.DecodePayload(raw)
	require.NoError(t, err)
	require.Equal(t, domtoken.TypeRefresh, claims.Type)
	require.Equal(t, uid.String(), claims.Subject)
	require.NotEmpty(t, claims.ID)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}
