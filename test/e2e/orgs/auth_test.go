//go:build e2e

package orgs_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	client := orgsdk.NewClient(setupOrgsContainer(t, nil))

	session, user := registerUser(t, client, "John", "john@example.com")
	require.Equal(t, "john@example.com", user.Email)
	require.NotEmpty(t, user.UserID)

	orgs, err := session.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Equal(t, "John's Organisations", orgs.Message)
	require.Len(t, orgs.Data.Organisations, 1)
	require.Equal(t, "John's Organisation", orgs.Data.Organisations[0].Name)

	// Same email again, different case.
	_, err = client.Register(t.Context(), orgsdk.RegisterRequest{
		FirstName: "John", LastName: "Doe", Email: "JOHN@example.com", Password: testPassword,
	})
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	require.Equal(t, "Registration unsuccessful", apiErr.Message)
	require.True(t, apiErr.HasFieldError("email"))

	login, err := client.Login(t.Context(), orgsdk.LoginRequest{Email: "john@example.com", Password: testPassword})
	require.NoError(t, err)
	require.Equal(t, user.UserID, login.Data.User.UserID)

	for _, req := range []orgsdk.LoginRequest{
		{Email: "john@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: testPassword},
	} {
		_, err := client.Login(t.Context(), req)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized)
		require.Equal(t, "Authentication failed", apiErr.Message)
	}
}

func TestTokenPairRotation(t *testing.T) {
	client := orgsdk.NewClient(setupOrgsContainer(t, nil))
	registerUser(t, client, "Jane", "jane@example.com")

	pair, err := client.ObtainTokenPair(t.Context(), orgsdk.LoginRequest{Email: "jane@example.com", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	rotated, err := client.RefreshTokenPair(t.Context(), pair.Refresh)
	require.NoError(t, err)
	require.NotEqual(t, pair.Refresh, rotated.Refresh)

	_, err = client.NewSession(rotated.Access).ListOrganisations(t.Context())
	require.NoError(t, err)

	// Replaying the old refresh token revokes the whole family.
	_, err = client.RefreshTokenPair(t.Context(), pair.Refresh)
	requireAPIError(t, err, http.StatusUnauthorized)
	_, err = client.RefreshTokenPair(t.Context(), rotated.Refresh)
	requireAPIError(t, err, http.StatusUnauthorized)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	client := orgsdk.NewClient(setupOrgsContainer(t, nil))

	_, err := client.NewSession("not-a-jwt").ListOrganisations(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized)
}
