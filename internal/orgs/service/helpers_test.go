package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store/drivers/sqlite"
	"github.com/aussiebroadwan/orgs/pkg/cryptox"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "orgs-test"
	testAudience = "orgs-api"
)

type testEnv struct {
	store      *sqlite.Store
	keys       *jwtx.KeyManager
	guard      *Guard
	creds      *CredentialService
	tokens     *TokenService
	membership *MembershipService
	accounts   *AccountService
	users      *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher, err := cryptox.NewHasher("test-pepper", cryptox.Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 32, SaltLength: 16})
	require.NoError(t, err)

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{
		Algorithm: jwtx.AlgorithmHS256,
		Issuer:    testIssuer,
		Audience:  []string{testAudience},
	})
	require.NoError(t, err)

	guard := &Guard{Verifier: km.Verifier, Store: st}
	creds := &CredentialService{Store: st, Hasher: hasher}
	tokens := &TokenService{
		KeyManager: km,
		Store:      st,
		Issuer:     testIssuer,
		Audience:   []string{testAudience},
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
	membership := &MembershipService{Store: st, Guard: guard}

	return &testEnv{
		store:      st,
		keys:       km,
		guard:      guard,
		creds:      creds,
		tokens:     tokens,
		membership: membership,
		accounts:   &AccountService{Store: st, Credentials: creds, Membership: membership, Tokens: tokens},
		users:      &UserService{Store: st},
	}
}

func registerRequest(first, email string) orgsdk.RegisterRequest {
	return orgsdk.RegisterRequest{
		FirstName: first,
		LastName:  "Doe",
		Email:     email,
		Password:  "password123",
		Phone:     "08012345678",
	}
}

// register creates a user and returns it with its identity.
func (e *testEnv) register(t *testing.T, first, email string) (domain.User, Identity) {
	t.Helper()
	res, err := e.accounts.Register(t.Context(), registerRequest(first, email))
	require.NoError(t, err)

	id, err := e.guard.Authenticate(res.AccessToken)
	require.NoError(t, err)
	return res.User, id
}

func requireFieldError(t *testing.T, err error, field string, msg string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields[field], msg, "fields: %v", verr.Fields)
}
