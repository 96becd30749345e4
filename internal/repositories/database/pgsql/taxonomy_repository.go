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

const areaColumns = `area_id, organization_id, name, created_at, created_by, last_updated_at, last_updated_by`

const subareaColumns = `subarea_id, organization_id, area_id, name, created_at, created_by, last_updated_at, last_updated_by`

const lookupColumns = `item_id, organization_id, kind, name, created_at, created_by, last_updated_at, last_updated_by`

type PgxTaxonomyRepository struct {
	BaseRepository
}

// newPgxTaxonomyRepository creates a new repository for the area tree and
// the flat lookup tables.
func newPgxTaxonomyRepository(pool *pgxpool.Pool) portsrepo.TaxonomyRepositoryFacade {
	return &PgxTaxonomyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TaxonomyRepositoryFacade = (*PgxTaxonomyRepository)(nil)

// SaveArea persists a new law area.
func (r *PgxTaxonomyRepository) SaveArea(ctx context.Context, area domain.LawArea) error {
	modelArea := mapping.ToModelLawArea(area)

	query := `
		INSERT INTO law_areas (` + areaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelArea.AreaID,
		modelArea.OrganizationID,
		modelArea.Name,
		modelArea.CreatedAt,
		modelArea.CreatedBy,
		modelArea.LastUpdatedAt,
		modelArea.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save law area %s: %w", modelArea.AreaID, err)
	}
	return nil
}

// UpdateArea persists changes to an existing law area.
func (r *PgxTaxonomyRepository) UpdateArea(ctx context.Context, area domain.LawArea) error {
	modelArea := mapping.ToModelLawArea(area)

	query := `
		UPDATE law_areas
		SET name = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND area_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelArea.OrganizationID,
		modelArea.AreaID,
		modelArea.Name,
		modelArea.LastUpdatedAt,
		modelArea.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update law area %s: %w", modelArea.AreaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAreaByID retrieves a specific law area by its ID.
func (r *PgxTaxonomyRepository) FindAreaByID(ctx context.Context, organizationID, areaID string) (*domain.LawArea, error) {
	query := `SELECT ` + areaColumns + ` FROM law_areas WHERE organization_id = $1 AND area_id = $2;`

	rows, err := r.Pool.Query(ctx, query, organizationID, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query law area %s: %w", areaID, err)
	}
	modelArea, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.LawArea])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan law area %s: %w", areaID, err)
	}

	domainArea := mapping.ToDomainLawArea(modelArea)
	return &domainArea, nil
}

// ListAreas retrieves all law areas of an organization in name order.
func (r *PgxTaxonomyRepository) ListAreas(ctx context.Context, organizationID string) ([]domain.LawArea, error) {
	query := `SELECT ` + areaColumns + ` FROM law_areas WHERE organization_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query law areas for organization %s: %w", organizationID, err)
	}
	modelAreas, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LawArea])
	if err != nil {
		return nil, fmt.Errorf("failed to scan law areas for organization %s: %w", organizationID, err)
	}

	domainAreas := make([]domain.LawArea, len(modelAreas))
	for i, m := range modelAreas {
		domainAreas[i] = mapping.ToDomainLawArea(m)
	}
	return domainAreas, nil
}

// DeleteSubareasByArea removes every subarea of an area.
func (r *PgxTaxonomyRepository) DeleteSubareasByArea(ctx context.Context, organizationID, areaID string) error {
	query := `DELETE FROM law_subareas WHERE organization_id = $1 AND area_id = $2;`
	if _, err := r.Pool.Exec(ctx, query, organizationID, areaID); err != nil {
		return fmt.Errorf("failed to delete subareas of area %s: %w", areaID, err)
	}
	return nil
}

// DeleteArea removes a law area row. Callers delete the subareas first.
func (r *PgxTaxonomyRepository) DeleteArea(ctx context.Context, organizationID, areaID string) error {
	query := `DELETE FROM law_areas WHERE organization_id = $1 AND area_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, organizationID, areaID)
	if err != nil {
		return fmt.Errorf("failed to delete law area %s: %w", areaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveSubarea persists a new subarea.
func (r *PgxTaxonomyRepository) SaveSubarea(ctx context.Context, subarea domain.LawSubarea) error {
	modelSubarea := mapping.ToModelLawSubarea(subarea)

	query := `
		INSERT INTO law_subareas (` + subareaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSubarea.SubareaID,
		modelSubarea.OrganizationID,
		modelSubarea.AreaID,
		modelSubarea.Name,
		modelSubarea.CreatedAt,
		modelSubarea.CreatedBy,
		modelSubarea.LastUpdatedAt,
		modelSubarea.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" { // parent area is gone
				return apperrors.ErrValidation
			}
		}
		return fmt.Errorf("failed to save subarea %s: %w", modelSubarea.SubareaID, err)
	}
	return nil
}

// UpdateSubarea persists changes to an existing subarea.
func (r *PgxTaxonomyRepository) UpdateSubarea(ctx context.Context, subarea domain.LawSubarea) error {
	modelSubarea := mapping.ToModelLawSubarea(subarea)

	query := `
		UPDATE law_subareas
		SET name = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND subarea_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelSubarea.OrganizationID,
		modelSubarea.SubareaID,
		modelSubarea.Name,
		modelSubarea.LastUpdatedAt,
		modelSubarea.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update subarea %s: %w", modelSubarea.SubareaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSubareaByID retrieves a specific subarea by its ID.
func (r *PgxTaxonomyRepository) FindSubareaByID(ctx context.Context, organizationID, subareaID string) (*domain.LawSubarea, error) {
	query := `SELECT ` + subareaColumns + ` FROM law_subareas WHERE organization_id = $1 AND subarea_id = $2;`

	rows, err := r.Pool.Query(ctx, query, organizationID, subareaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subarea %s: %w", subareaID, err)
	}
	modelSubarea, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.LawSubarea])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan subarea %s: %w", subareaID, err)
	}

	domainSubarea := mapping.ToDomainLawSubarea(modelSubarea)
	return &domainSubarea, nil
}

func (r *PgxTaxonomyRepository) listSubareas(ctx context.Context, where string, args ...any) ([]domain.LawSubarea, error) {
	query := `SELECT ` + subareaColumns + ` FROM law_subareas WHERE ` + where + ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subareas: %w", err)
	}
	modelSubareas, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LawSubarea])
	if err != nil {
		return nil, fmt.Errorf("failed to scan subareas: %w", err)
	}

	domainSubareas := make([]domain.LawSubarea, len(modelSubareas))
	for i, m := range modelSubareas {
		domainSubareas[i] = mapping.ToDomainLawSubarea(m)
	}
	return domainSubareas, nil
}

// ListSubareas retrieves all subareas of an organization in name order.
func (r *PgxTaxonomyRepository) ListSubareas(ctx context.Context, organizationID string) ([]domain.LawSubarea, error) {
	return r.listSubareas(ctx, "organization_id = $1", organizationID)
}

// ListSubareasByArea retrieves the subareas belonging to one area.
func (r *PgxTaxonomyRepository) ListSubareasByArea(ctx context.Context, organizationID, areaID string) ([]domain.LawSubarea, error) {
	return r.listSubareas(ctx, "organization_id = $1 AND area_id = $2", organizationID, areaID)
}

// SaveLookupItem persists a new lookup entry.
func (r *PgxTaxonomyRepository) SaveLookupItem(ctx context.Context, item domain.LookupItem) error {
	modelItem := mapping.ToModelLookupItem(item)

	query := `
		INSERT INTO lookup_items (` + lookupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.OrganizationID,
		modelItem.Kind,
		modelItem.Name,
		modelItem.CreatedAt,
		modelItem.CreatedBy,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save lookup item %s: %w", modelItem.ItemID, err)
	}
	return nil
}

// UpdateLookupItem persists changes to an existing lookup entry.
func (r *PgxTaxonomyRepository) UpdateLookupItem(ctx context.Context, item domain.LookupItem) error {
	modelItem := mapping.ToModelLookupItem(item)

	query := `
		UPDATE lookup_items
		SET name = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND item_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelItem.OrganizationID,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update lookup item %s: %w", modelItem.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLookupItemByID retrieves a lookup entry by its ID.
func (r *PgxTaxonomyRepository) FindLookupItemByID(ctx context.Context, organizationID, itemID string) (*domain.LookupItem, error) {
	query := `SELECT ` + lookupColumns + ` FROM lookup_items WHERE organization_id = $1 AND item_id = $2;`

	rows, err := r.Pool.Query(ctx, query, organizationID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup item %s: %w", itemID, err)
	}
	modelItem, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.LookupItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan lookup item %s: %w", itemID, err)
	}

	domainItem := mapping.ToDomainLookupItem(modelItem)
	return &domainItem, nil
}

// ListLookupItems retrieves the entries of one lookup table in name order.
func (r *PgxTaxonomyRepository) ListLookupItems(ctx context.Context, organizationID string, kind domain.LookupKind) ([]domain.LookupItem, error) {
	query := `SELECT ` + lookupColumns + ` FROM lookup_items WHERE organization_id = $1 AND kind = $2 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, organizationID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s lookup for organization %s: %w", kind, organizationID, err)
	}
	modelItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LookupItem])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s lookup for organization %s: %w", kind, organizationID, err)
	}

	domainItems := make([]domain.LookupItem, len(modelItems))
	for i, m := range modelItems {
		domainItems[i] = mapping.ToDomainLookupItem(m)
	}
	return domainItems, nil
}

// DeleteLookupItem removes a lookup entry.
func (r *PgxTaxonomyRepository) DeleteLookupItem(ctx context.Context, organizationID, itemID string) error {
	query := `DELETE FROM lookup_items WHERE organization_id = $1 AND item_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, organizationID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete lookup item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
