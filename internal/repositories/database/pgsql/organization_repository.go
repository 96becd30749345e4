package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	"github.com/lexfin/lexfin_backend/internal/models"
	"github.com/lexfin/lexfin_backend/internal/utils/mapping"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// SaveOrganization persists a new organization.
func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, organization domain.Organization) error {
	modelOrg := mapping.ToModelOrganization(organization)

	query := `
		INSERT INTO organizations (organization_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelOrg.OrganizationID,
		modelOrg.Name,
		modelOrg.IsActive,
		modelOrg.CreatedAt,
		modelOrg.CreatedBy,
		modelOrg.LastUpdatedAt,
		modelOrg.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save organization %s: %w", modelOrg.OrganizationID, err)
	}
	return nil
}

// UpdateOrganization persists changes to an existing organization.
func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, organization domain.Organization) error {
	modelOrg := mapping.ToModelOrganization(organization)

	query := `
		UPDATE organizations
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelOrg.OrganizationID,
		modelOrg.Name,
		modelOrg.IsActive,
		modelOrg.LastUpdatedAt,
		modelOrg.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", modelOrg.OrganizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindOrganizationByID retrieves a specific organization by its ID.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE organization_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query organization %s: %w", organizationID, err)
	}
	modelOrg, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan organization %s: %w", organizationID, err)
	}

	domainOrg := mapping.ToDomainOrganization(modelOrg)
	return &domainOrg, nil
}

// ListOrganizationsByUserID retrieves all organizations a user belongs to.
func (r *PgxOrganizationRepository) ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	query := `
		SELECT o.organization_id, o.name, o.is_active, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
		FROM organizations o
		JOIN user_organizations uo ON uo.organization_id = o.organization_id
		WHERE uo.user_id = $1 AND uo.role != 'REMOVED'
		ORDER BY o.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations for user %s: %w", userID, err)
	}
	modelOrgs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		return nil, fmt.Errorf("failed to scan organizations for user %s: %w", userID, err)
	}

	domainOrgs := make([]domain.Organization, len(modelOrgs))
	for i, m := range modelOrgs {
		domainOrgs[i] = mapping.ToDomainOrganization(m)
	}
	return domainOrgs, nil
}

// AddUserToOrganization adds a user to an organization with a specific role.
func (r *PgxOrganizationRepository) AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error {
	modelMembership := mapping.ToModelUserOrganization(membership)

	query := `
		INSERT INTO user_organizations (user_id, organization_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, organization_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMembership.UserID,
		modelMembership.OrganizationID,
		modelMembership.Role,
		modelMembership.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add user %s to organization %s: %w", membership.UserID, membership.OrganizationID, err)
	}
	return nil
}

// FindUserOrganizationRole retrieves the role of a user in an organization.
func (r *PgxOrganizationRepository) FindUserOrganizationRole(ctx context.Context, userID, organizationID string) (*domain.UserOrganization, error) {
	query := `
		SELECT user_id, organization_id, role, joined_at
		FROM user_organizations
		WHERE user_id = $1 AND organization_id = $2;
	`
	var modelMembership models.UserOrganization
	err := r.Pool.QueryRow(ctx, query, userID, organizationID).Scan(
		&modelMembership.UserID,
		&modelMembership.OrganizationID,
		&modelMembership.Role,
		&modelMembership.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership of user %s in organization %s: %w", userID, organizationID, err)
	}

	domainMembership := mapping.ToDomainUserOrganization(modelMembership)
	return &domainMembership, nil
}

// ListOrganizationUsers retrieves all memberships of an organization.
func (r *PgxOrganizationRepository) ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.UserOrganization, error) {
	query := `
		SELECT user_id, organization_id, role, joined_at
		FROM user_organizations
		WHERE organization_id = $1 AND role != 'REMOVED'
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of organization %s: %w", organizationID, err)
	}
	modelMemberships, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserOrganization])
	if err != nil {
		return nil, fmt.Errorf("failed to scan members of organization %s: %w", organizationID, err)
	}

	domainMemberships := make([]domain.UserOrganization, len(modelMemberships))
	for i, m := range modelMemberships {
		domainMemberships[i] = mapping.ToDomainUserOrganization(m)
	}
	return domainMemberships, nil
}

// UpdateUserOrganizationRole changes the stored role of a membership.
func (r *PgxOrganizationRepository) UpdateUserOrganizationRole(ctx context.Context, userID, organizationID string, role domain.UserOrganizationRole) error {
	query := `
		UPDATE user_organizations
		SET role = $3
		WHERE user_id = $1 AND organization_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, organizationID, string(role))
	if err != nil {
		return fmt.Errorf("failed to update role of user %s in organization %s: %w", userID, organizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
