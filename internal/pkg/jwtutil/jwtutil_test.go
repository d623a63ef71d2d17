package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestGenerateAndParse_Roundtrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(testSecret, time.Hour, 42, "alice")
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(testSecret, -1*time.Second, 1, "alice")
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(testSecret, time.Hour, 1, "alice")
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_TamperedToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(testSecret, time.Hour, 1, "alice")
	require.NoError(t, err)

	// Flipping a single character must break the signature check. The final
	// character is skipped: its low bits are base64 padding.
	for _, pos := range []int{0, len(token) / 2, len(token) - 2} {
		tampered := []byte(token)
		if tampered[pos] == 'A' {
			tampered[pos] = 'B'
		} else {
			tampered[pos] = 'A'
		}
		_, err = ParseToken(testSecret, string(tampered))
		require.Error(t, err, "tampered at position %d", pos)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := ParseToken(testSecret, token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
