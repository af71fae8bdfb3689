package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/google/uuid"
)

type UserService struct {
	Store store.Store
}

// GetByID fetches a user by id. Any authenticated caller may read any user.
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
