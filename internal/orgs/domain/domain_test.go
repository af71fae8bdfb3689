package domain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrganisationName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "John's Organisation", DefaultOrganisationName("John", 0))
	require.Equal(t, "John's Organisation", DefaultOrganisationName("John", 1))
	require.Equal(t, "John's Organisation (2)", DefaultOrganisationName("John", 2))

	long := strings.Repeat("ü", 150)
	name := DefaultOrganisationName(long, 12)
	require.Equal(t, MaxOrganisationNameLength, utf8.RuneCountInString(name))
	require.True(t, strings.HasSuffix(name, "'s Organisation (12)"))
}

func TestOrganisationIsOwnedBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	o := Organisation{ID: uuid.New(), OwnerID: owner}
	require.True(t, o.IsOwnedBy(owner))
	require.False(t, o.IsOwnedBy(uuid.New()))
}

func TestRefreshTokenUsable(t *testing.T) {
	t.Parallel()

	now := time.Now()
	require.True(t, RefreshToken{ExpiresAt: now.Add(time.Minute)}.Usable(now))
	require.False(t, RefreshToken{ExpiresAt: now.Add(time.Minute), Revoked: true}.Usable(now))
	require.False(t, RefreshToken{ExpiresAt: now}.Usable(now))
}
