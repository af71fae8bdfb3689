package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/google/uuid"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Claims jwtx.Claims
}

// Guard authenticates bearer tokens and makes organisation access decisions.
type Guard struct {
	Verifier jwtx.Verifier
	Store    store.Store
}

// Authenticate verifies the signature and expiry of token. Every failure
// wraps ErrUnauthenticated.
func (g *Guard) Authenticate(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}
	claims, err := g.Verifier.Verify(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return IdentityFromClaims(claims)
}

// IdentityFromClaims builds an Identity from verified claims.
func IdentityFromClaims(c jwtx.Claims) (Identity, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject is not a user id", ErrUnauthenticated)
	}
	email := c.Email
	if email == "" {
		email = c.UserID
	}
	return Identity{UserID: id, Email: email, Claims: c}, nil
}

// AuthorizeOwner allows only the organisation's owner.
func (g *Guard) AuthorizeOwner(id Identity, org domain.Organisation) error {
	if org.IsOwnedBy(id.UserID) {
		return nil
	}
	return ErrForbidden
}

// AuthorizeViewer allows the owner and explicit members. The owner is not
// stored as a member, so both are checked.
func (g *Guard) AuthorizeViewer(ctx context.Context, id Identity, org domain.Organisation) error {
	if org.IsOwnedBy(id.UserID) {
		return nil
	}
	member, err := g.Store.Organisations().IsMember(ctx, org.ID, id.UserID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return ErrForbidden
	}
	return nil
}
