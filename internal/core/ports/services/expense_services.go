package services

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense by its ID.
	GetExpenseByID(ctx context.Context, organizationID, expenseID, requestingUserID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses of an organization in due-date order.
	ListExpenses(ctx context.Context, organizationID, requestingUserID string) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	// CreateExpense records an expense. A recurring request inserts one row
	// per month, each carrying the full amount; the created rows are returned.
	CreateExpense(ctx context.Context, organizationID string, req dto.CreateExpenseRequest, creatorUserID string) ([]domain.Expense, error)

	// UpdateExpense updates the mutable fields of an expense.
	UpdateExpense(ctx context.Context, organizationID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// ToggleExpensePaid flips the paid flag, setting or clearing the payment
	// timestamp.
	ToggleExpensePaid(ctx context.Context, organizationID, expenseID string, paid bool, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, organizationID, expenseID, requestingUserID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
