package security

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestMagicTokenRoundTrip(t *testing.T) {
	token, err := IssueMagicToken("buyer@example.com", testSecret)
	require.NoError(t, err)

	claims, err := VerifyMagicToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "buyer@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(MagicTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestMagicTokenRequiresSecret(t *testing.T) {
	_, err := IssueMagicToken("buyer@example.com", "")
	assert.Error(t, err)
}

func TestVerifyMagicTokenFailuresCollapse(t *testing.T) {
	token, err := IssueMagicToken("buyer@example.com", testSecret)
	require.NoError(t, err)

	// Tampered payload.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	for name, tok := range map[string]string{
		"malformed":    "not-a-token",
		"empty":        "",
		"tampered":     tampered,
		"wrong secret": mustSign(t, "other-secret", time.Now().Add(time.Hour)),
		"expired":      mustSign(t, testSecret, time.Now().Add(-time.Minute)),
	} {
		_, err := VerifyMagicToken(tok, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestVerifyMagicTokenRejectsUnexpectedAlg(t *testing.T) {
	// alg=none style tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "x@y.com"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyMagicToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func mustSign(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := MagicClaims{
		Email: "buyer@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "buyer@example.com",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
