package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"diag-hub/errors"
)

// Argon2id parameters following OWASP recommendations.
const (
	Memory      = 64 * 1024 // 64 MB
	Iterations  = 3
	Parallelism = 2
	SaltLength  = 16
	KeyLength   = 32
)

const hashedKeyPrefix = "$argon2id$"

// Gate guards the portal behind a single shared access key. There is no
// user identity, rate limiting or attempt counting: a wrong key is simply
// rejected and the caller may retry.
//
// The configured key is normally compared verbatim (the shipped contract).
// When the configured value is an argon2id encoded hash, the submitted key
// is verified against the hash instead, so operators can avoid keeping the
// secret in clear text without changing the gate contract.
type Gate struct {
	configuredKey string
}

func NewGate(configuredKey string) Gate {
	return Gate{configuredKey: configuredKey}
}

// Check verifies a submitted access key. It returns ErrAuthFailed on any
// mismatch; the caller stays unauthenticated and may retry.
func (g Gate) Check(submitted string) error {
	if strings.HasPrefix(g.configuredKey, hashedKeyPrefix) {
		match, err := compareHashedKey(submitted, g.configuredKey)
		if err != nil || !match {
			return errors.ErrAuthFailed
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(submitted), []byte(g.configuredKey)) != 1 {
		return errors.ErrAuthFailed
	}
	return nil
}

// compareHashedKey verifies a plain key against an argon2id encoded hash of
// the form $argon2id$v=19$m=...,t=...,p=...$salt$hash.
func compareHashedKey(key, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}

	var version, memory, iterations, parallelism int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("invalid hash version: %q", parts[2])
	}
	if n, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil || n != 3 {
		return false, fmt.Errorf("invalid hash parameters: %q", parts[3])
	}
	if memory < 1 || iterations < 1 || parallelism < 1 || parallelism > 255 {
		return false, fmt.Errorf("invalid hash parameters: %q", parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, err
	}

	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, err
	}

	comparisonHash := argon2.IDKey([]byte(key), salt, uint32(iterations), uint32(memory), uint8(parallelism), uint32(len(decodedHash)))

	return subtle.ConstantTimeCompare(decodedHash, comparisonHash) == 1, nil
}

// HashAccessKey produces an argon2id encoded hash suitable for ACCESS_KEY,
// for operators who prefer not to store the secret in clear text.
func HashAccessKey(key string, salt []byte) (string, error) {
	if len(salt) != SaltLength {
		return "", fmt.Errorf("salt must be %d bytes, got %d", SaltLength, len(salt))
	}

	hash := argon2.IDKey([]byte(key), salt, Iterations, Memory, Parallelism, KeyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s", argon2.Version, Memory, Iterations, Parallelism, b64Salt, b64Hash), nil
}
