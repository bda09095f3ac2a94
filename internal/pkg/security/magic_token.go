package security

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MagicTokenTTL is the fixed lifetime of a magic-link token.
const MagicTokenTTL = 2 * time.Hour

// ErrInvalidToken is the single failure returned by VerifyMagicToken. Bad
// signature, malformed token and expiry all collapse into it so callers
// cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// MagicClaims are the claims embedded in a magic-link token.
type MagicClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueMagicToken signs a 2-hour HS256 token bound to an email identity.
func IssueMagicToken(email, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret is required for token generation")
	}
	now := time.Now()
	claims := MagicClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(MagicTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyMagicToken checks signature and expiry and returns the claims.
func VerifyMagicToken(token, secret string) (*MagicClaims, error) {
	if secret == "" {
		return nil, ErrInvalidToken
	}
	claims := &MagicClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
