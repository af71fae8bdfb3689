package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store/drivers/sqlite/gen"
	"github.com/google/uuid"
)

type organisationsRepo struct {
	q *gen.Queries
}

func (r *organisationsRepo) CreateOrganisation(ctx context.Context, o domain.Organisation) error {
	err := r.q.CreateOrganisation(ctx, gen.CreateOrganisationParams{
		ID:          o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
		OwnerID:     o.OwnerID.String(),
		CreatedAt:   o.CreatedAt.UTC(),
		UpdatedAt:   o.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *organisationsRepo) GetOrganisationByID(ctx context.Context, id uuid.UUID) (domain.Organisation, error) {
	row, err := r.q.GetOrganisationByID(ctx, id.String())
	if err != nil {
		return domain.Organisation{}, mapNotFound(err)
	}
	return mapOrganisation(row)
}

func (r *organisationsRepo) NameExists(ctx context.Context, name string) (bool, error) {
	n, err := r.q.OrganisationNameExists(ctx, name)
	return n == 1, err
}

func (r *organisationsRepo) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]domain.Organisation, error) {
	rows, err := r.q.ListVisibleOrganisations(ctx, userID.String())
	if err != nil {
		return nil, err
	}

	out := make([]domain.Organisation, 0, len(rows))
	for _, row := range rows {
		o, err := mapOrganisation(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *organisationsRepo) AddMember(ctx context.Context, orgID, userID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.q.AddOrganisationMember(ctx, gen.AddOrganisationMemberParams{
		OrganisationID: orgID.String(),
		UserID:         userID.String(),
		CreatedAt:      at.UTC(),
	})
	if err != nil {
		return false, mapConstraint(err)
	}
	return n > 0, nil
}

func (r *organisationsRepo) IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	n, err := r.q.IsOrganisationMember(ctx, gen.IsOrganisationMemberParams{
		OrganisationID: orgID.String(),
		UserID:         userID.String(),
	})
	return n == 1, err
}
