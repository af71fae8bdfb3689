package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/internal/orgs/store/drivers/sqlite/gen"
	"github.com/google/uuid"
)

type refreshTokensRepo struct {
	q *gen.Queries
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	err := r.q.CreateRefreshToken(ctx, gen.CreateRefreshTokenParams{
		ID:        t.ID,
		UserID:    t.UserID.String(),
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt.UTC(),
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *refreshTokensRepo) GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	row, err := r.q.GetRefreshTokenByHash(ctx, hash)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return mapRefreshToken(row)
}

func (r *refreshTokensRepo) RevokeRefreshToken(ctx context.Context, hash string, at time.Time) error {
	n, err := r.q.RevokeRefreshToken(ctx, gen.RevokeRefreshTokenParams{
		UpdatedAt: at.UTC(),
		TokenHash: hash,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *refreshTokensRepo) RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return r.q.RevokeUserRefreshTokens(ctx, gen.RevokeUserRefreshTokensParams{
		UpdatedAt: at.UTC(),
		UserID:    userID.String(),
	})
}

func (r *refreshTokensRepo) DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteStaleRefreshTokens(ctx, now.UTC())
}
