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

const expenseColumns = `expense_id, organization_id, description, category_id, expense_type, cost_type, amount, due_date, paid, paid_at, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const insertExpenseQuery = `
	INSERT INTO expenses (` + expenseColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

func expenseArgs(m models.Expense) []any {
	return []any{
		m.ExpenseID,
		m.OrganizationID,
		m.Description,
		m.CategoryID,
		m.ExpenseType,
		m.CostType,
		m.Amount,
		m.DueDate,
		m.Paid,
		m.PaidAt,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// SaveExpense persists a single expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	_, err := r.Pool.Exec(ctx, insertExpenseQuery, expenseArgs(modelExpense)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to save expense %s: %w", modelExpense.ExpenseID, err)
	}
	return nil
}

// SaveExpenses persists a batch of expense rows in one round trip.
func (r *PgxExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, expense := range expenses {
		batch.Queue(insertExpenseQuery, expenseArgs(mapping.ToModelExpense(expense))...)
	}

	br := r.Pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert expense batch: %w", err)
	}
	return nil
}

// FindExpenseByID retrieves a specific expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, organizationID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE organization_id = $1 AND expense_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %s: %w", expenseID, err)
	}
	modelExpense, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expense %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(modelExpense)
	return &domainExpense, nil
}

// ListExpenses retrieves all expenses of an organization in due-date order.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, organizationID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE organization_id = $1
		ORDER BY due_date, expense_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for organization %s: %w", organizationID, err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses for organization %s: %w", organizationID, err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// UpdateExpense persists changes to an existing expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET description = $3, category_id = $4, cost_type = $5, amount = $6, due_date = $7,
		    paid = $8, paid_at = $9, notes = $10, last_updated_at = $11, last_updated_by = $12
		WHERE organization_id = $1 AND expense_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelExpense.OrganizationID,
		modelExpense.ExpenseID,
		modelExpense.Description,
		modelExpense.CategoryID,
		modelExpense.CostType,
		modelExpense.Amount,
		modelExpense.DueDate,
		modelExpense.Paid,
		modelExpense.PaidAt,
		modelExpense.Notes,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to update expense %s: %w", modelExpense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, organizationID, expenseID string) error {
	query := `DELETE FROM expenses WHERE organization_id = $1 AND expense_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, organizationID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
