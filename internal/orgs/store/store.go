package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so that a Tx exposes exactly
// the same surface, and nested transactions are refused by the drivers.
type Store interface {
	Users() Users
	Organisations() Organisations
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u. Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Organisations interface {
	// CreateOrganisation inserts o. Returns ErrAlreadyExists when the name is taken.
	CreateOrganisation(ctx context.Context, o domain.Organisation) error

	GetOrganisationByID(ctx context.Context, id uuid.UUID) (domain.Organisation, error)

	// NameExists reports whether an organisation already uses name.
	NameExists(ctx context.Context, name string) (bool, error)

	// ListVisibleTo returns every organisation userID owns or is a member
	// of, once each, oldest first.
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]domain.Organisation, error)

	// AddMember adds userID to the member set. Adding an existing member is
	// not an error; added reports whether a row was written.
	AddMember(ctx context.Context, orgID, userID uuid.UUID, at time.Time) (added bool, err error)

	// IsMember reports explicit membership only; ownership is not implied.
	IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash looks a token up by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken marks the token revoked. Returns ErrNotFound when no
	// unrevoked token has that fingerprint.
	RevokeRefreshToken(ctx context.Context, hash string, at time.Time) error

	// RevokeUserRefreshTokens revokes every token belonging to userID.
	RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID, at time.Time) error

	// DeleteStaleRefreshTokens removes tokens that expired before now or were revoked.
	DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
