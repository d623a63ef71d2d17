package passhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Cost 4 keeps the bcrypt work cheap in tests; behavior is cost-independent.
const testCost = 4

func TestHashAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	digest, err := Hash("secret1", testCost)
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.True(t, Verify("secret1", digest))
}

func TestHash_NonDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Hash("secret1", testCost)
	require.NoError(t, err)
	second, err := Hash("secret1", testCost)
	require.NoError(t, err)

	require.NotEqual(t, first, second, "salted digests must differ across calls")
	require.True(t, Verify("secret1", first))
	require.True(t, Verify("secret1", second))
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	digest, err := Hash("secret1", testCost)
	require.NoError(t, err)
	require.False(t, Verify("secret2", digest))
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()

	require.False(t, Verify("secret1", ""))
	require.False(t, Verify("secret1", "not-a-bcrypt-digest"))
	require.False(t, Verify("secret1", "$2a$garbage"))
}

func TestHash_ZeroCostFallsBackToDefault(t *testing.T) {
	t.Parallel()

	digest, err := Hash("secret1", 0)
	require.NoError(t, err)
	require.True(t, Verify("secret1", digest))
}
