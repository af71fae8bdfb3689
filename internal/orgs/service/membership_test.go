package service

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganisation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := t.Context()
	alice, aliceID := env.register(t, "Alice", "alice@example.com")

	org, err := env.membership.CreateOrganisation(ctx, aliceID, orgsdk.CreateOrganisationRequest{Name: "  Acme  ", Description: "Widgets"})
	require.NoError(t, err)
	require.Equal(t, "Acme", org.Name)
	require.Equal(t, alice.ID, org.OwnerID)

	t.Run("owner is not added as a member", func(t *testing.T) {
		member, err := env.store.Organisations().IsMember(ctx, org.ID, alice.ID)
		require.NoError(t, err)
		require.False(t, member)

		got, err := env.membership.GetVisible(ctx, aliceID, org.ID)
		require.NoError(t, err)
		require.Equal(t, org.ID, got.ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := env.membership.CreateOrganisation(ctx, aliceID, orgsdk.CreateOrganisationRequest{Name: "Acme"})
		requireFieldError(t, err, "name", MsgNameTaken)
	})

	t.Run("blank and long names", func(t *testing.T) {
		_, err := env.membership.CreateOrganisation(ctx, aliceID, orgsdk.CreateOrganisationRequest{Name: " "})
		requireFieldError(t, err, "name", orgsdk.FieldRequired)

		_, err = env.membership.CreateOrganisation(ctx, aliceID, orgsdk.CreateOrganisationRequest{Name: strings.Repeat("x", 101)})
		requireFieldError(t, err, "name", orgsdk.FieldTooLong(orgsdk.MaxOrganisationNameLength))
	})

	t.Run("listed alongside the default organisation", func(t *testing.T) {
		orgs, err := env.membership.ListVisible(ctx, aliceID)
		require.NoError(t, err)
		require.Len(t, orgs, 2)
	})
}

func TestOrganisationVisibility(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := t.Context()

	_, aliceID := env.register(t, "Alice", "alice@example.com")
	bob, bobID := env.register(t, "Bob", "bob@example.com")
	_, carolID := env.register(t, "Carol", "carol@example.com")

	aliceOrgs, err := env.membership.ListVisible(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, aliceOrgs, 1)
	orgID := aliceOrgs[0].ID

	t.Run("stranger cannot view", func(t *testing.T) {
		_, err := env.membership.GetVisible(ctx, bobID, orgID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown organisation", func(t *testing.T) {
		_, err := env.membership.GetVisible(ctx, aliceID, uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-owner cannot add members", func(t *testing.T) {
		_, err := env.membership.AddMember(ctx, bobID, orgID, bob.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner adds member idempotently", func(t *testing.T) {
		_, err := env.membership.AddMember(ctx, aliceID, orgID, bob.ID)
		require.NoError(t, err)
		_, err = env.membership.AddMember(ctx, aliceID, orgID, bob.ID)
		require.NoError(t, err)

		got, err := env.membership.GetVisible(ctx, bobID, orgID)
		require.NoError(t, err)
		require.Equal(t, orgID, got.ID)

		orgs, err := env.membership.ListVisible(ctx, bobID)
		require.NoError(t, err)
		require.Len(t, orgs, 2, "own default plus alice's")
	})

	t.Run("member still cannot add members", func(t *testing.T) {
		_, err := env.membership.AddMember(ctx, bobID, orgID, carolID.UserID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown user or organisation", func(t *testing.T) {
		_, err := env.membership.AddMember(ctx, aliceID, orgID, uuid.New())
		require.ErrorIs(t, err, ErrNotFound)

		_, err = env.membership.AddMember(ctx, aliceID, uuid.New(), bob.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("carol still sees only her own", func(t *testing.T) {
		orgs, err := env.membership.ListVisible(ctx, carolID)
		require.NoError(t, err)
		require.Len(t, orgs, 1)
		require.Equal(t, "Carol's Organisation", orgs[0].Name)
	})
}

func TestUserServiceGetByID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user, _ := env.register(t, "John", "john@example.com")

	got, err := env.users.GetByID(t.Context(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "john@example.com", got.Email)
	require.Equal(t, "08012345678", got.Phone)

	_, err = env.users.GetByID(t.Context(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
