package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair is an access JWT with its opaque refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// RefreshToken is the stored record of an issued refresh token. Only the
// fingerprint of the token is kept.
type RefreshToken struct {
	ID        string // ULID
	UserID    uuid.UUID
	TokenHash string // base64url SHA-256
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
