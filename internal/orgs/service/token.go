package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/pkg/cryptox"
	"github.com/aussiebroadwan/orgs/pkg/idx"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
)

// TokenService signs access tokens and manages refresh token rotation.
type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Issue signs an access token for u.
func (s *TokenService) Issue(u domain.User) (string, error) {
	return s.signAccess(u, time.Now())
}

// IssuePair signs an access token and stores a new refresh token for u.
func (s *TokenService) IssuePair(ctx context.Context, u domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	access, err := s.signAccess(u, now)
	if err != nil {
		return nil, err
	}

	opaque, rt, err := s.newRefreshToken(u, now)
	if err != nil {
		return nil, err
	}
	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: opaque,
		ExpiresIn:    s.accessTTL(),
	}, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// revoked and replaced in one transaction, so it works exactly once.
// Presenting a token that was already rotated revokes every refresh token
// the user holds.
func (s *TokenService) Refresh(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	refreshOpaque = strings.TrimSpace(refreshOpaque)
	if refreshOpaque == "" {
		return nil, ErrInvalidRefresh
	}
	fp := cryptox.FingerprintToken(refreshOpaque)

	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if rt.Revoked {
		l.Warn("revoked refresh token presented, revoking all sessions", slog.String("user_id", rt.UserID.String()))
		if err := s.Store.RefreshTokens().RevokeUserRefreshTokens(ctx, rt.UserID, now.UTC()); err != nil {
			l.Error("failed to revoke user refresh tokens", slog.Any("err", err))
		}
		return nil, ErrInvalidRefresh
	}
	if !rt.Usable(now) {
		return nil, ErrInvalidRefresh
	}

	u, err := s.Store.Users().GetUserByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	access, err := s.signAccess(u, now)
	if err != nil {
		return nil, err
	}
	opaque, next, err := s.newRefreshToken(u, now)
	if err != nil {
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp, now.UTC()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Lost a race with another refresh of the same token.
				return ErrInvalidRefresh
			}
			return err
		}
		return tx.RefreshTokens().CreateRefreshToken(ctx, next)
	})
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: opaque,
		ExpiresIn:    s.accessTTL(),
	}, nil
}

func (s *TokenService) signAccess(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		u.ID.String(),
		u.Email,
		s.accessTTL(),
		s.Issuer,
		s.Audience,
		now,
	)
	token, err := s.KeyManager.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return token, nil
}

func (s *TokenService) newRefreshToken(u domain.User, now time.Time) (string, domain.RefreshToken, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.RefreshToken{}, err
	}
	now = now.UTC()
	return opaque, domain.RefreshToken{
		ID:        idx.NewAt(now).String(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: now.Add(s.refreshTTL()),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return jwtx.DefaultRefreshTokenTTL
}
