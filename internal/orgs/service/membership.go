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
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
	"github.com/google/uuid"
)

// maxDefaultNameAttempts bounds the " (n)" suffix search for a default
// organisation name.
const maxDefaultNameAttempts = 50

// MembershipService manages organisations and their member sets.
type MembershipService struct {
	Store store.Store
	Guard *Guard
}

// WithStore returns a copy bound to st, typically a transaction.
func (s *MembershipService) WithStore(st store.Store) *MembershipService {
	g := *s.Guard
	g.Store = st
	return &MembershipService{Store: st, Guard: &g}
}

// ListVisible returns the organisations id owns or is a member of, each once.
func (s *MembershipService) ListVisible(ctx context.Context, id Identity) ([]domain.Organisation, error) {
	orgs, err := s.Store.Organisations().ListVisibleTo(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	return orgs, nil
}

// CreateOrganisation creates an organisation owned by id. The owner is not
// added to the member set.
func (s *MembershipService) CreateOrganisation(ctx context.Context, id Identity, req orgsdk.CreateOrganisationRequest) (domain.Organisation, error) {
	if err := validationError(req.Validate()); err != nil {
		return domain.Organisation{}, err
	}

	now := time.Now().UTC()
	org := domain.Organisation{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		OwnerID:     id.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Organisations().CreateOrganisation(ctx, org); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Organisation{}, fieldError("name", MsgNameTaken)
		case errors.Is(err, store.ErrNotFound):
			return domain.Organisation{}, ErrNotFound
		}
		return domain.Organisation{}, fmt.Errorf("create organisation: %w", err)
	}

	slogx.FromContext(ctx).Info("organisation created",
		slog.String("org_id", org.ID.String()),
		slog.String("owner_id", org.OwnerID.String()),
	)
	return org, nil
}

// createDefaultOrganisation creates "<firstName>'s Organisation" for a newly
// registered owner, adding a " (n)" suffix while the name is taken.
func (s *MembershipService) createDefaultOrganisation(ctx context.Context, owner domain.User) (domain.Organisation, error) {
	orgs := s.Store.Organisations()

	for attempt := 1; attempt <= maxDefaultNameAttempts; attempt++ {
		name := domain.DefaultOrganisationName(owner.FirstName, attempt)
		taken, err := orgs.NameExists(ctx, name)
		if err != nil {
			return domain.Organisation{}, fmt.Errorf("check organisation name: %w", err)
		}
		if taken {
			continue
		}

		org := domain.Organisation{
			ID:        uuid.New(),
			Name:      name,
			OwnerID:   owner.ID,
			CreatedAt: owner.CreatedAt,
			UpdatedAt: owner.CreatedAt,
		}
		if err := orgs.CreateOrganisation(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// A concurrent registration took the name after the check.
				// The transaction may be unusable now, so give up.
				return domain.Organisation{}, fieldError(orgsdk.NonFieldErrors, MsgRetry)
			}
			return domain.Organisation{}, fmt.Errorf("create default organisation: %w", err)
		}
		return org, nil
	}
	return domain.Organisation{}, fieldError(orgsdk.NonFieldErrors, MsgRetry)
}

// GetByID returns the organisation or ErrNotFound.
func (s *MembershipService) GetByID(ctx context.Context, orgID uuid.UUID) (domain.Organisation, error) {
	org, err := s.Store.Organisations().GetOrganisationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organisation{}, ErrNotFound
		}
		return domain.Organisation{}, fmt.Errorf("get organisation: %w", err)
	}
	return org, nil
}

// GetVisible returns the organisation when id may view it. It returns
// ErrNotFound for unknown ids and ErrForbidden when id is neither owner nor
// member.
func (s *MembershipService) GetVisible(ctx context.Context, id Identity, orgID uuid.UUID) (domain.Organisation, error) {
	org, err := s.GetByID(ctx, orgID)
	if err != nil {
		return domain.Organisation{}, err
	}
	if err := s.Guard.AuthorizeViewer(ctx, id, org); err != nil {
		return domain.Organisation{}, err
	}
	return org, nil
}

// AddMember adds userID to the organisation's member set on behalf of id,
// who must be the owner. Adding an existing member succeeds without change.
func (s *MembershipService) AddMember(ctx context.Context, id Identity, orgID, userID uuid.UUID) (domain.Organisation, error) {
	org, err := s.GetByID(ctx, orgID)
	if err != nil {
		return domain.Organisation{}, err
	}
	if err := s.Guard.AuthorizeOwner(id, org); err != nil {
		return domain.Organisation{}, err
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organisation{}, ErrNotFound
		}
		return domain.Organisation{}, fmt.Errorf("get user: %w", err)
	}

	added, err := s.Store.Organisations().AddMember(ctx, org.ID, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organisation{}, ErrNotFound
		}
		return domain.Organisation{}, fmt.Errorf("add member: %w", err)
	}

	slogx.FromContext(ctx).Info("organisation member added",
		slog.String("org_id", org.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("new", added),
	)
	return org, nil
}
