package repositories

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, organizationID, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses of an organization in due-date order.
	ListExpenses(ctx context.Context, organizationID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	// SaveExpense persists a single expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// SaveExpenses persists a batch of expense rows in one statement, used by
	// recurring creation.
	SaveExpenses(ctx context.Context, expenses []domain.Expense) error

	// UpdateExpense persists changes to an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, organizationID, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
