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

const receiptColumns = `receipt_id, organization_id, description, amount, received_date, category_id, area_id, subarea_id, responsible, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for manual receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

// SaveReceipt persists a new receipt.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.ManualReceipt) error {
	modelReceipt := mapping.ToModelReceipt(receipt)

	query := `
		INSERT INTO manual_receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelReceipt.ReceiptID,
		modelReceipt.OrganizationID,
		modelReceipt.Description,
		modelReceipt.Amount,
		modelReceipt.ReceivedDate,
		modelReceipt.CategoryID,
		modelReceipt.AreaID,
		modelReceipt.SubareaID,
		modelReceipt.Responsible,
		modelReceipt.Notes,
		modelReceipt.CreatedAt,
		modelReceipt.CreatedBy,
		modelReceipt.LastUpdatedAt,
		modelReceipt.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to save receipt %s: %w", modelReceipt.ReceiptID, err)
	}
	return nil
}

// FindReceiptByID retrieves a specific receipt by its ID.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, organizationID, receiptID string) (*domain.ManualReceipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM manual_receipts
		WHERE organization_id = $1 AND receipt_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt %s: %w", receiptID, err)
	}
	modelReceipt, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ManualReceipt])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan receipt %s: %w", receiptID, err)
	}

	domainReceipt := mapping.ToDomainReceipt(modelReceipt)
	return &domainReceipt, nil
}

// ListReceipts retrieves all receipts of an organization, newest first.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, organizationID string) ([]domain.ManualReceipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM manual_receipts
		WHERE organization_id = $1
		ORDER BY received_date DESC, receipt_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts for organization %s: %w", organizationID, err)
	}
	modelReceipts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ManualReceipt])
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts for organization %s: %w", organizationID, err)
	}

	domainReceipts := make([]domain.ManualReceipt, len(modelReceipts))
	for i, m := range modelReceipts {
		domainReceipts[i] = mapping.ToDomainReceipt(m)
	}
	return domainReceipts, nil
}

// UpdateReceipt persists changes to an existing receipt.
func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.ManualReceipt) error {
	modelReceipt := mapping.ToModelReceipt(receipt)

	query := `
		UPDATE manual_receipts
		SET description = $3, amount = $4, received_date = $5, category_id = $6,
		    area_id = $7, subarea_id = $8, responsible = $9, notes = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE organization_id = $1 AND receipt_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelReceipt.OrganizationID,
		modelReceipt.ReceiptID,
		modelReceipt.Description,
		modelReceipt.Amount,
		modelReceipt.ReceivedDate,
		modelReceipt.CategoryID,
		modelReceipt.AreaID,
		modelReceipt.SubareaID,
		modelReceipt.Responsible,
		modelReceipt.Notes,
		modelReceipt.LastUpdatedAt,
		modelReceipt.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to update receipt %s: %w", modelReceipt.ReceiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReceipt removes a receipt.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, organizationID, receiptID string) error {
	query := `DELETE FROM manual_receipts WHERE organization_id = $1 AND receipt_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, organizationID, receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
