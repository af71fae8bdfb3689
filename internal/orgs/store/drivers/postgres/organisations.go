package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/google/uuid"
)

type organisationsRepo struct {
	db dbtx
}

const organisationColumns = `o.id, o.name, o.description, o.owner_id, o.created_at, o.updated_at`

func (r *organisationsRepo) CreateOrganisation(ctx context.Context, o domain.Organisation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO organisations (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.Name, o.Description, o.OwnerID, o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
	)
	return mapError(err)
}

func (r *organisationsRepo) GetOrganisationByID(ctx context.Context, id uuid.UUID) (domain.Organisation, error) {
	return scanOrganisation(r.db.QueryRow(ctx,
		`SELECT `+organisationColumns+` FROM organisations o WHERE o.id = $1`, id))
}

func (r *organisationsRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM organisations WHERE name = $1)`, name).Scan(&exists)
	return exists, mapError(err)
}

func (r *organisationsRepo) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]domain.Organisation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+organisationColumns+`
		FROM organisations o
		WHERE o.owner_id = $1
		   OR EXISTS (
		        SELECT 1 FROM organisation_members m
		        WHERE m.organisation_id = o.id AND m.user_id = $1
		   )
		ORDER BY o.created_at, o.id`, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []domain.Organisation{}
	for rows.Next() {
		o, err := scanOrganisation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, mapError(rows.Err())
}

func (r *organisationsRepo) AddMember(ctx context.Context, orgID, userID uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO organisation_members (organisation_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (organisation_id, user_id) DO NOTHING`,
		orgID, userID, at.UTC(),
	)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *organisationsRepo) IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM organisation_members WHERE organisation_id = $1 AND user_id = $2
		)`, orgID, userID).Scan(&exists)
	return exists, mapError(err)
}

func scanOrganisation(row scanner) (domain.Organisation, error) {
	var o domain.Organisation
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.OwnerID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organisation{}, mapError(err)
	}
	return o, nil
}
