package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "orgs-test"

var testAudience = []string{"orgs-api"}

func newManager(t *testing.T, alg string) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{
		Algorithm: alg,
		Issuer:    testIssuer,
		Audience:  testAudience,
	})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	return km
}

func sign(t *testing.T, km *jwtx.KeyManager, ttl time.Duration, issuer string) string {
	t.Helper()
	claims := jwtx.NewAccessClaims("user-1", "john@example.com", ttl, issuer, testAudience, time.Now().UTC())
	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func TestSignAndVerify(t *testing.T) {
	for _, alg := range []string{jwtx.AlgorithmHS256, jwtx.AlgorithmEdDSA} {
		t.Run(alg, func(t *testing.T) {
			t.Parallel()
			km := newManager(t, alg)
			require.Equal(t, alg, km.Signer.Alg())

			claims, err := km.Verifier.Verify(sign(t, km, time.Minute, testIssuer))
			require.NoError(t, err)
			require.Equal(t, "user-1", claims.Subject)
			require.Equal(t, "john@example.com", claims.UserID)
			require.NotNil(t, claims.ExpiresAt)
		})
	}
}

func TestVerifyFailures(t *testing.T) {
	t.Parallel()
	hs := newManager(t, jwtx.AlgorithmHS256)
	ed := newManager(t, jwtx.AlgorithmEdDSA)
	otherHS := newManager(t, jwtx.AlgorithmHS256)

	valid := sign(t, hs, time.Minute, testIssuer)
	parts := strings.Split(valid, ".")

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-jwt", jwtx.ErrMalformed},
		{"empty", "", jwtx.ErrMalformed},
		{"expired", sign(t, hs, -time.Minute, testIssuer), jwtx.ErrExpired},
		{"wrong issuer", sign(t, hs, time.Minute, "someone-else"), jwtx.ErrIssuer},
		{"other secret", sign(t, otherHS, time.Minute, testIssuer), jwtx.ErrInvalidSig},
		{"wrong algorithm", sign(t, ed, time.Minute, testIssuer), jwtx.ErrInvalidSig},
		{"tampered payload", parts[0] + "." + parts[1] + "x." + parts[2], nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hs.Verifier.Verify(tt.token)
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestEdDSAUnknownKID(t *testing.T) {
	t.Parallel()
	a := newManager(t, jwtx.AlgorithmEdDSA)
	b := newManager(t, jwtx.AlgorithmEdDSA)

	_, err := a.Verifier.Verify(sign(t, b, time.Minute, testIssuer))
	require.ErrorIs(t, err, jwtx.ErrUnknownKID)
}

func TestKeyManager_Options(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Algorithm: jwtx.AlgorithmHS256})
	require.Error(t, err, "issuer is required")

	_, err = jwtx.NewKeyManager(jwtx.KeyManagerOptions{Algorithm: "RS256", Issuer: testIssuer})
	require.Error(t, err)

	_, err = jwtx.NewKeyManager(jwtx.KeyManagerOptions{Algorithm: jwtx.AlgorithmHS256, Issuer: testIssuer, Secret: []byte("short")})
	require.Error(t, err)

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Algorithm: jwtx.AlgorithmEdDSA, Issuer: testIssuer, PrivateKey: priv})
	require.NoError(t, err)

	jwks := km.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	require.Equal(t, km.Signer.KID(), jwks.Keys[0].Kid)

	require.Empty(t, newManager(t, jwtx.AlgorithmHS256).PublicJWKS().Keys)
}

func TestSharedSecretVerifiesAcrossManagers(t *testing.T) {
	t.Parallel()
	secret := []byte(strings.Repeat("s", jwtx.MinHS256SecretLength))
	opts := jwtx.KeyManagerOptions{Algorithm: jwtx.AlgorithmHS256, Secret: secret, Issuer: testIssuer, Audience: testAudience}

	a, err := jwtx.NewKeyManager(opts)
	require.NoError(t, err)
	b, err := jwtx.NewKeyManager(opts)
	require.NoError(t, err)

	_, err = b.Verifier.Verify(sign(t, a, time.Minute, testIssuer))
	require.NoError(t, err)
}
