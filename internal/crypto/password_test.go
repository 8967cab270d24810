package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("secret1", hash))
}

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotContains(t, hash, "correct horse battery staple")
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash should be PHC-encoded: %s", hash)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)

	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// random per-record salt: same password, different stored values
	assert.NotEqual(t, first, second)
	assert.NoError(t, VerifyPassword("secret1", first))
	assert.NoError(t, VerifyPassword("secret1", second))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyPassword("WRONG", hash), ErrHashMismatch)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "not phc", hash: "plain-md5-ish"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{name: "missing sections", hash: "$argon2id$v=19$m=65536,t=1,p=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, VerifyPassword("x", tt.hash), ErrMalformedHash)
		})
	}
}
