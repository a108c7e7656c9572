package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"diag-hub/errors"
)

func TestGate_Check(t *testing.T) {
	t.Run("should accept the exact configured key", func(t *testing.T) {
		req := require.New(t)
		gate := NewGate("swordfish")

		req.NoError(gate.Check("swordfish"))
	})

	t.Run("should reject any other key with ErrAuthFailed", func(t *testing.T) {
		req := require.New(t)
		gate := NewGate("swordfish")

		for _, wrong := range []string{"", "Swordfish", "swordfish ", "123"} {
			req.ErrorIs(gate.Check(wrong), errors.ErrAuthFailed)
		}
	})

	t.Run("should verify against an argon2id hashed key", func(t *testing.T) {
		req := require.New(t)

		salt := []byte("0123456789abcdef")
		encoded, err := HashAccessKey("swordfish", salt)
		req.NoError(err)

		gate := NewGate(encoded)
		req.NoError(gate.Check("swordfish"))
		req.ErrorIs(gate.Check("not-the-key"), errors.ErrAuthFailed)
	})

	t.Run("should reject a malformed hashed key without panicking", func(t *testing.T) {
		req := require.New(t)

		malformed := []string{
			"$argon2id$v=19$oops$MDEyMzQ1Njc4OWFiY2RlZg$NqZQ7Z1Jb1V3u0K3s5WQ0g",
			"$argon2id$bad$m=65536,t=3,p=2$MDEyMzQ1Njc4OWFiY2RlZg$NqZQ7Z1Jb1V3u0K3s5WQ0g",
			"$argon2id$v=19$m=65536,t=0,p=2$MDEyMzQ1Njc4OWFiY2RlZg$NqZQ7Z1Jb1V3u0K3s5WQ0g",
			"$argon2id$v=19$m=0,t=3,p=0$MDEyMzQ1Njc4OWFiY2RlZg$NqZQ7Z1Jb1V3u0K3s5WQ0g",
			"$argon2id$v=19$m=65536,t=3,p=2$!!!$NqZQ7Z1Jb1V3u0K3s5WQ0g",
		}
		for _, encoded := range malformed {
			gate := NewGate(encoded)
			req.NotPanics(func() {
				req.ErrorIs(gate.Check("whatever"), errors.ErrAuthFailed)
			})
		}
	})
}

func TestTokenIssuer(t *testing.T) {
	t.Run("should round-trip a session identity", func(t *testing.T) {
		req := require.New(t)
		issuer, err := NewTokenIssuer(time.Hour)
		req.NoError(err)

		token, err := issuer.Issue("session-42")
		req.NoError(err)

		claims, err := issuer.Validate(token)
		req.NoError(err)
		req.Equal("session-42", claims.SessionID)
	})

	t.Run("should reject a token signed by another process", func(t *testing.T) {
		req := require.New(t)
		issuerA, err := NewTokenIssuer(time.Hour)
		req.NoError(err)
		issuerB, err := NewTokenIssuer(time.Hour)
		req.NoError(err)

		token, err := issuerA.Issue("session-42")
		req.NoError(err)

		_, err = issuerB.Validate(token)
		req.Error(err)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		req := require.New(t)
		issuer, err := NewTokenIssuer(-time.Minute)
		req.NoError(err)

		token, err := issuer.Issue("session-42")
		req.NoError(err)

		_, err = issuer.Validate(token)
		req.Error(err)
	})
}
