// Package storetest is a behavioural suite run against every store driver.
package storetest

import (
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/pkg/idx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Factory returns a migrated, empty store. It must register its own cleanup.
type Factory func(t *testing.T) store.Store

// Run exercises the store contract against stores produced by newStore.
// Each subtest gets a fresh store.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("organisations", func(t *testing.T) { testOrganisations(t, newStore(t)) })
	t.Run("refresh tokens", func(t *testing.T) { testRefreshTokens(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testWithTx(t, newStore(t)) })
}

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "$argon2id$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(t.Context(), u))
	return u
}

func seedOrg(t *testing.T, st store.Store, name string, owner uuid.UUID, at time.Time) domain.Organisation {
	t.Helper()
	o := domain.Organisation{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   owner,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, st.Organisations().CreateOrganisation(t.Context(), o))
	return o
}

func testUsers(t *testing.T, st store.Store) {
	ctx := t.Context()

	u := seedUser(t, st, "John@Example.com")

	t.Run("get by id", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, "john@example.com", got.Email)
		require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	t.Run("get by email ignores case", func(t *testing.T) {
		got, err := st.Users().GetUserByEmail(ctx, "JOHN@example.COM")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := u
		dup.ID = uuid.New()
		dup.Email = "JOHN@EXAMPLE.COM"
		require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, uuid.New())
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testOrganisations(t *testing.T, st store.Store) {
	ctx := t.Context()
	orgs := st.Organisations()

	alice := seedUser(t, st, "alice@example.com")
	bob := seedUser(t, st, "bob@example.com")
	carol := seedUser(t, st, "carol@example.com")

	base := time.Now().UTC()
	aliceOrg := seedOrg(t, st, "Alice's Organisation", alice.ID, base)
	bobOrg := seedOrg(t, st, "Bob's Organisation", bob.ID, base.Add(time.Second))

	t.Run("duplicate name", func(t *testing.T) {
		o := aliceOrg
		o.ID = uuid.New()
		require.ErrorIs(t, orgs.CreateOrganisation(ctx, o), store.ErrAlreadyExists)

		exists, err := orgs.NameExists(ctx, "Alice's Organisation")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = orgs.NameExists(ctx, "alice's organisation")
		require.NoError(t, err)
		require.False(t, exists, "names are case sensitive")
	})

	t.Run("owner must exist", func(t *testing.T) {
		o := domain.Organisation{ID: uuid.New(), Name: "Ghost", OwnerID: uuid.New(), CreatedAt: base, UpdatedAt: base}
		require.ErrorIs(t, orgs.CreateOrganisation(ctx, o), store.ErrNotFound)
	})

	t.Run("owner sees own organisation only", func(t *testing.T) {
		got, err := orgs.ListVisibleTo(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, aliceOrg.ID, got[0].ID)
		require.Equal(t, alice.ID, got[0].OwnerID)
	})

	t.Run("stranger sees nothing", func(t *testing.T) {
		got, err := orgs.ListVisibleTo(ctx, carol.ID)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("add member is idempotent", func(t *testing.T) {
		added, err := orgs.AddMember(ctx, bobOrg.ID, alice.ID, base)
		require.NoError(t, err)
		require.True(t, added)

		added, err = orgs.AddMember(ctx, bobOrg.ID, alice.ID, base)
		require.NoError(t, err)
		require.False(t, added)

		member, err := orgs.IsMember(ctx, bobOrg.ID, alice.ID)
		require.NoError(t, err)
		require.True(t, member)

		got, err := orgs.ListVisibleTo(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, aliceOrg.ID, got[0].ID, "oldest first")
		require.Equal(t, bobOrg.ID, got[1].ID)
	})

	t.Run("owner listed once when also a member", func(t *testing.T) {
		_, err := orgs.AddMember(ctx, aliceOrg.ID, alice.ID, base)
		require.NoError(t, err)

		got, err := orgs.ListVisibleTo(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("ownership is not membership", func(t *testing.T) {
		member, err := orgs.IsMember(ctx, bobOrg.ID, bob.ID)
		require.NoError(t, err)
		require.False(t, member)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := orgs.GetOrganisationByID(ctx, bobOrg.ID)
		require.NoError(t, err)
		require.Equal(t, "Bob's Organisation", got.Name)
		require.Empty(t, got.Description)

		_, err = orgs.GetOrganisationByID(ctx, uuid.New())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testRefreshTokens(t *testing.T, st store.Store) {
	ctx := t.Context()
	tokens := st.RefreshTokens()
	u := seedUser(t, st, "tokens@example.com")
	now := time.Now().UTC()

	mk := func(hash string, expires time.Time) domain.RefreshToken {
		tok := domain.RefreshToken{
			ID:        idx.New().String(),
			UserID:    u.ID,
			TokenHash: hash,
			ExpiresAt: expires,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, tokens.CreateRefreshToken(ctx, tok))
		return tok
	}

	live := mk("live", now.Add(time.Hour))
	mk("expired", now.Add(-time.Hour))
	mk("other", now.Add(time.Hour))

	got, err := tokens.GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, live.ID, got.ID)
	require.True(t, got.Usable(now))

	require.NoError(t, tokens.RevokeRefreshToken(ctx, "live", now))
	require.ErrorIs(t, tokens.RevokeRefreshToken(ctx, "live", now), store.ErrNotFound, "second revoke loses")

	got, err = tokens.GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.True(t, got.Revoked)

	n, err := tokens.DeleteStaleRefreshTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.NoError(t, tokens.RevokeUserRefreshTokens(ctx, u.ID, now))
	got, err = tokens.GetRefreshTokenByHash(ctx, "other")
	require.NoError(t, err)
	require.True(t, got.Revoked)

	_, err = tokens.GetRefreshTokenByHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testWithTx(t *testing.T, st store.Store) {
	ctx := t.Context()
	boom := errors.New("boom")

	var id uuid.UUID
	err := st.WithTx(ctx, func(tx store.Tx) error {
		u := seedUser(t, tx, "rollback@example.com")
		id = u.ID

		require.Error(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), "nested transactions are refused")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound, "rolled back")

	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		u := seedUser(t, tx, "commit@example.com")
		id = u.ID
		return nil
	}))

	_, err = st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
}
