package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, hasher.Verify("secret123", hash))
	require.False(t, hasher.Verify("secret124", hash))
	require.False(t, hasher.Verify("", hash))
}

func TestPasswordHasher_CostEmbeddedInHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.MinCost, cost)
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}

func TestPasswordHasher_TruncatesLongPasswords(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	long := strings.Repeat("a", 100)

	// bcrypt itself rejects input over 72 bytes; the hasher must
	// truncate instead of failing.
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	// The original password round-trips through its truncated form.
	require.True(t, hasher.Verify(long, hash))

	// Anything sharing the first 72 bytes verifies against the same hash.
	require.True(t, hasher.Verify(long+"extra-suffix", hash))

	// A difference within the first 72 bytes still fails.
	require.False(t, hasher.Verify("b"+strings.Repeat("a", 99), hash))
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	// A corrupted stored hash is indistinguishable from a wrong password.
	require.False(t, hasher.Verify("secret123", "not-a-bcrypt-hash"))
	require.False(t, hasher.Verify("secret123", ""))
}
