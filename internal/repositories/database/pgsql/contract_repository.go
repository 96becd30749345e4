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

const contractColumns = `contract_id, organization_id, client_name, honorarium_type_id, area_id, subarea_id, origin_id, payment_method_id, total_value, start_date, status, responsible, notes, created_at, created_by, last_updated_at, last_updated_by`

const installmentColumns = `installment_id, organization_id, contract_id, due_date, amount, status, paid_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxContractRepository struct {
	BaseRepository
}

// newPgxContractRepository creates a new repository for contract data.
func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

// SaveContract persists a new contract.
func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	modelContract := mapping.ToModelContract(contract)

	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelContract.ContractID,
		modelContract.OrganizationID,
		modelContract.ClientName,
		modelContract.HonorariumTypeID,
		modelContract.AreaID,
		modelContract.SubareaID,
		modelContract.OriginID,
		modelContract.PaymentMethodID,
		modelContract.TotalValue,
		modelContract.StartDate,
		modelContract.Status,
		modelContract.Responsible,
		modelContract.Notes,
		modelContract.CreatedAt,
		modelContract.CreatedBy,
		modelContract.LastUpdatedAt,
		modelContract.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" { // foreign_key_violation on taxonomy references
				return apperrors.ErrValidation
			}
		}
		return fmt.Errorf("failed to save contract %s: %w", modelContract.ContractID, err)
	}
	return nil
}

// SaveInstallments persists a batch of installments in one round trip.
func (r *PgxContractRepository) SaveInstallments(ctx context.Context, installments []domain.ContractInstallment) error {
	if len(installments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO contract_installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, inst := range installments {
		modelInst := mapping.ToModelInstallment(inst)
		batch.Queue(query,
			modelInst.InstallmentID,
			modelInst.OrganizationID,
			modelInst.ContractID,
			modelInst.DueDate,
			modelInst.Amount,
			modelInst.Status,
			modelInst.PaidAt,
			modelInst.CreatedAt,
			modelInst.CreatedBy,
			modelInst.LastUpdatedAt,
			modelInst.LastUpdatedBy,
		)
	}

	br := r.Pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert installment batch for contract %s: %w", installments[0].ContractID, err)
	}
	return nil
}

// FindContractByID retrieves a specific contract by its ID.
func (r *PgxContractRepository) FindContractByID(ctx context.Context, organizationID, contractID string) (*domain.Contract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE organization_id = $1 AND contract_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract %s: %w", contractID, err)
	}
	modelContract, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Contract])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contract %s: %w", contractID, err)
	}

	domainContract := mapping.ToDomainContract(modelContract)
	return &domainContract, nil
}

// ListContracts retrieves all contracts of an organization, newest first.
func (r *PgxContractRepository) ListContracts(ctx context.Context, organizationID string) ([]domain.Contract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE organization_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts for organization %s: %w", organizationID, err)
	}
	modelContracts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contract])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contracts for organization %s: %w", organizationID, err)
	}

	domainContracts := make([]domain.Contract, len(modelContracts))
	for i, m := range modelContracts {
		domainContracts[i] = mapping.ToDomainContract(m)
	}
	return domainContracts, nil
}

// ListInstallmentsByContract retrieves the schedule of one contract in due-date order.
func (r *PgxContractRepository) ListInstallmentsByContract(ctx context.Context, organizationID, contractID string) ([]domain.ContractInstallment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM contract_installments
		WHERE organization_id = $1 AND contract_id = $2
		ORDER BY due_date;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments for contract %s: %w", contractID, err)
	}
	modelInstallments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ContractInstallment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan installments for contract %s: %w", contractID, err)
	}

	return mapping.ToDomainInstallmentSlice(modelInstallments), nil
}

// FindInstallmentByID retrieves a single installment.
func (r *PgxContractRepository) FindInstallmentByID(ctx context.Context, organizationID, installmentID string) (*domain.ContractInstallment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM contract_installments
		WHERE organization_id = $1 AND installment_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, installmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installment %s: %w", installmentID, err)
	}
	modelInst, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ContractInstallment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan installment %s: %w", installmentID, err)
	}

	domainInst := mapping.ToDomainInstallment(modelInst)
	return &domainInst, nil
}

// ListInstallmentsWithContract retrieves every installment of the organization
// joined with its contract summary, in due-date order. The honorarium type
// name is denormalized here so the aggregation engine never needs a second
// lookup pass.
func (r *PgxContractRepository) ListInstallmentsWithContract(ctx context.Context, organizationID string) ([]domain.InstallmentWithContract, error) {
	query := `
		SELECT i.installment_id, i.organization_id, i.contract_id, i.due_date, i.amount, i.status, i.paid_at,
		       i.created_at, i.created_by, i.last_updated_at, i.last_updated_by,
		       c.client_name, c.area_id, c.subarea_id, c.origin_id,
		       COALESCE(l.name, '') AS honorarium_type_name
		FROM contract_installments i
		JOIN contracts c ON c.contract_id = i.contract_id
		LEFT JOIN lookup_items l ON l.item_id = c.honorarium_type_id
		WHERE i.organization_id = $1
		ORDER BY i.due_date, i.installment_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installment ledger for organization %s: %w", organizationID, err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InstallmentWithContract])
	if err != nil {
		return nil, fmt.Errorf("failed to scan installment ledger for organization %s: %w", organizationID, err)
	}

	domainRows := make([]domain.InstallmentWithContract, len(modelRows))
	for i, m := range modelRows {
		domainRows[i] = mapping.ToDomainInstallmentWithContract(m)
	}
	return domainRows, nil
}

// UpdateContract persists changes to the mutable contract fields. total_value
// and start_date are deliberately absent from the SET list.
func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	modelContract := mapping.ToModelContract(contract)

	query := `
		UPDATE contracts
		SET client_name = $3, honorarium_type_id = $4, area_id = $5, subarea_id = $6, origin_id = $7,
		    payment_method_id = $8, status = $9, responsible = $10, notes = $11,
		    last_updated_at = $12, last_updated_by = $13
		WHERE organization_id = $1 AND contract_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelContract.OrganizationID,
		modelContract.ContractID,
		modelContract.ClientName,
		modelContract.HonorariumTypeID,
		modelContract.AreaID,
		modelContract.SubareaID,
		modelContract.OriginID,
		modelContract.PaymentMethodID,
		modelContract.Status,
		modelContract.Responsible,
		modelContract.Notes,
		modelContract.LastUpdatedAt,
		modelContract.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to update contract %s: %w", modelContract.ContractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInstallment persists a status toggle on one installment.
func (r *PgxContractRepository) UpdateInstallment(ctx context.Context, installment domain.ContractInstallment) error {
	modelInst := mapping.ToModelInstallment(installment)

	query := `
		UPDATE contract_installments
		SET status = $3, paid_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE organization_id = $1 AND installment_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelInst.OrganizationID,
		modelInst.InstallmentID,
		modelInst.Status,
		modelInst.PaidAt,
		modelInst.LastUpdatedAt,
		modelInst.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update installment %s: %w", modelInst.InstallmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInstallmentsByContract removes every installment of a contract.
func (r *PgxContractRepository) DeleteInstallmentsByContract(ctx context.Context, organizationID, contractID string) error {
	query := `DELETE FROM contract_installments WHERE organization_id = $1 AND contract_id = $2;`
	if _, err := r.Pool.Exec(ctx, query, organizationID, contractID); err != nil {
		return fmt.Errorf("failed to delete installments for contract %s: %w", contractID, err)
	}
	return nil
}

// DeleteContract removes a contract row. Callers delete the installments first.
func (r *PgxContractRepository) DeleteContract(ctx context.Context, organizationID, contractID string) error {
	query := `DELETE FROM contracts WHERE organization_id = $1 AND contract_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, organizationID, contractID)
	if err != nil {
		return fmt.Errorf("failed to delete contract %s: %w", contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
