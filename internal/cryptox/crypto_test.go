package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeVerifyPin(t *testing.T) {
	enc, err := EncodePin([]byte("1234"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(enc, "argon2id$"))

	ok, err := VerifyPin([]byte("1234"), enc)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPin([]byte("5678"), enc)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEncodePin_SaltVaries(t *testing.T) {
	a, err := EncodePin([]byte("0000"))
	require.NoError(t, err)
	b, err := EncodePin([]byte("0000"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPin_Malformed(t *testing.T) {
	tests := []string{
		"",
		"1234",
		"argon2id$zz$zz",
		"bcrypt$aa$bb",
		"argon2id$aabb",
	}
	for _, enc := range tests {
		_, err := VerifyPin([]byte("1234"), enc)
		require.ErrorIs(t, err, ErrMalformedCredential, enc)
	}
}
