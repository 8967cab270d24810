// Package crypto implements password hashing for the credential store.
//
// Passwords are hashed with argon2id and stored in the PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash). The stored value embeds its
// own parameters and salt, so parameter upgrades only affect newly created
// hashes. The plaintext password is never persisted and verification is
// comparison-only.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters following the OWASP recommendation.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // KiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

// ErrHashMismatch is returned by [VerifyPassword] when the candidate
// password does not produce the stored hash.
var ErrHashMismatch = errors.New("password does not match stored hash")

// ErrMalformedHash is returned when a stored value cannot be parsed as a
// PHC-format argon2id string.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives an argon2id hash of password with a fresh random
// salt and returns it PHC-encoded.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyPassword recomputes the argon2id hash of password using the salt and
// parameters embedded in encodedHash and compares the result in constant
// time.
//
// Returns nil when the password matches, [ErrHashMismatch] when it does not,
// and [ErrMalformedHash] when the stored value cannot be parsed.
func VerifyPassword(password, encodedHash string) error {
	version, memory, time, threads, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	if version != argon2.Version {
		return fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(hash)))

	if subtle.ConstantTimeCompare(hash, candidate) != 1 {
		return ErrHashMismatch
	}

	return nil
}

// decodeHash splits a PHC string of form
// $argon2id$v=19$m=X,t=Y,p=Z$<salt>$<hash> into its components.
func decodeHash(encodedHash string) (version int, memory, time uint32, threads uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, 0, nil, nil, ErrMalformedHash
	}

	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	return version, memory, time, threads, salt, hash, nil
}
