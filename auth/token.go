package auth

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"diag-hub/errors"
)

// SessionClaims is the payload carried by the portal session token.
// The token only names a session; page and feedback state live server side.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates the signed bearer tokens that tie an HTTP
// client to its server-side session. The signing key is generated per
// process: tokens never outlive a restart, matching sessions that are
// destroyed when the hosting process ends.
type TokenIssuer struct {
	key      []byte
	duration time.Duration
}

func NewTokenIssuer(duration time.Duration) (*TokenIssuer, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return &TokenIssuer{key: key, duration: duration}, nil
}

// Issue creates a signed token for a session.
func (t *TokenIssuer) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "diag-hub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return signed, nil
}

// Validate parses and checks the signature and expiration of a token string.
func (t *TokenIssuer) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
