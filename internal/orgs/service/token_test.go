package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/pkg/cryptox"
	"github.com/aussiebroadwan/orgs/pkg/idx"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/stretchr/testify/require"
)

func TestIssueClaims(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user, _ := env.register(t, "John", "john@example.com")

	token, err := env.tokens.Issue(user)
	require.NoError(t, err)

	claims, err := env.keys.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.Subject)
	require.Equal(t, "john@example.com", claims.UserID)
	require.Equal(t, testIssuer, claims.Issuer)
	require.Contains(t, claims.Audience, testAudience)
	require.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestRefreshRotation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := t.Context()
	env.register(t, "John", "john@example.com")

	pair, err := env.accounts.ObtainTokenPair(ctx, orgsdk.LoginRequest{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, time.Minute, pair.ExpiresIn)

	next, err := env.tokens.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	_, err = env.guard.Authenticate(next.AccessToken)
	require.NoError(t, err)

	t.Run("old token is single use", func(t *testing.T) {
		_, err := env.tokens.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("reuse revokes the rotated token too", func(t *testing.T) {
		_, err := env.tokens.Refresh(ctx, next.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := env.tokens.Refresh(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidRefresh)
		_, err = env.tokens.Refresh(ctx, "  ")
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})
}

func TestRefreshExpired(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := t.Context()
	user, _ := env.register(t, "John", "john@example.com")

	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	past := time.Now().Add(-2 * time.Hour).UTC()
	require.NoError(t, env.store.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
		ID:        idx.NewAt(past).String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: past.Add(time.Hour),
		CreatedAt: past,
		UpdatedAt: past,
	}))

	_, err = env.tokens.Refresh(ctx, opaque)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestGuardAuthenticate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user, _ := env.register(t, "John", "john@example.com")

	t.Run("empty", func(t *testing.T) {
		_, err := env.guard.Authenticate("")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwtx.NewAccessClaims(user.ID.String(), user.Email, time.Minute, testIssuer, []string{testAudience}, time.Now().Add(-time.Hour))
		token, err := env.keys.Signer.Sign(claims)
		require.NoError(t, err)

		_, err = env.guard.Authenticate(token)
		require.ErrorIs(t, err, ErrUnauthenticated)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("signed by another key", func(t *testing.T) {
		other, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, Audience: []string{testAudience}})
		require.NoError(t, err)
		token, err := other.Signer.Sign(jwtx.NewAccessClaims(user.ID.String(), user.Email, time.Minute, testIssuer, []string{testAudience}, time.Now()))
		require.NoError(t, err)

		_, err = env.guard.Authenticate(token)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("subject must be a user id", func(t *testing.T) {
		token, err := env.keys.Signer.Sign(jwtx.NewAccessClaims("john", user.Email, time.Minute, testIssuer, []string{testAudience}, time.Now()))
		require.NoError(t, err)

		_, err = env.guard.Authenticate(token)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestHousekeepingRunOnce(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := t.Context()
	env.register(t, "John", "john@example.com")

	login := orgsdk.LoginRequest{Email: "john@example.com", Password: "password123"}
	pair, err := env.accounts.ObtainTokenPair(ctx, login)
	require.NoError(t, err)
	_, err = env.tokens.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	hk := NewHousekeepingService(env.store, nil, 0)
	require.Equal(t, time.Hour, hk.Interval)

	n, err := hk.RunOnce(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n, "only the rotated token is stale")

	hk.Start()
	hk.Stop()
}
