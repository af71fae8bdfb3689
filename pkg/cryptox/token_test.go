package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()
	for _, size := range []int{TokenSize128, TokenSize256, 24} {
		a, err := GenerateToken(size)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(a)
		require.NoError(t, err)
		require.Len(t, raw, size)

		b, err := GenerateToken(size)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	t.Parallel()
	for _, size := range []int{0, -1} {
		_, err := GenerateToken(size)
		require.Error(t, err)
	}
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()
	a := FingerprintToken("token")
	require.Equal(t, a, FingerprintToken("token"))
	require.NotEqual(t, a, FingerprintToken("token2"))
	require.Len(t, a, 43)
}
