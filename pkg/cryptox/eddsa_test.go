package cryptox_test

import (
	"crypto/ed25519"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/orgs/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseEd25519Key(t *testing.T) {
	t.Parallel()
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	priv, err := cryptox.ParseEd25519Key(pemBytes)
	require.NoError(t, err)
	require.Len(t, priv, ed25519.PrivateKeySize)
}

func TestParseEd25519Key_Garbage(t *testing.T) {
	t.Parallel()
	_, err := cryptox.ParseEd25519Key([]byte("not pem"))
	require.Error(t, err)
}

func TestLoadOrCreateEd25519Key(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "keys", "signing.pem")

	a, err := cryptox.LoadOrCreateEd25519Key(path)
	require.NoError(t, err)

	b, err := cryptox.LoadOrCreateEd25519Key(path)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}
