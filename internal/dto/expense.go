package dto

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines data for recording an expense. Amount accepts
// localized input. A recurring expense inserts Months rows one month apart,
// each carrying the full amount.
type CreateExpenseRequest struct {
	Description string             `json:"description" binding:"required,max=200"`
	CategoryID  string             `json:"categoryID" binding:"required"`
	ExpenseType domain.ExpenseType `json:"expenseType" binding:"required,oneof=one_time recurring"`
	CostType    *string            `json:"costType" binding:"omitempty,oneof=fixed variable"`
	Amount      string             `json:"amount" binding:"required"`
	DueDate     time.Time          `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Paid        bool               `json:"paid"`
	Months      int                `json:"months" binding:"omitempty,min=1,max=60"`
	Notes       *string            `json:"notes"`
}

// UpdateExpenseRequest defines the mutable expense fields.
type UpdateExpenseRequest struct {
	Description *string    `json:"description"`
	CategoryID  *string    `json:"categoryID"`
	CostType    *string    `json:"costType" binding:"omitempty,oneof=fixed variable"`
	Amount      *string    `json:"amount"`
	DueDate     *time.Time `json:"dueDate" time_format:"2006-01-02"`
	Notes       *string    `json:"notes"`
}

// ToggleExpensePaidRequest flips the paid flag of an expense.
type ToggleExpensePaidRequest struct {
	Paid bool `json:"paid"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string             `json:"expenseID"`
	Description string             `json:"description"`
	CategoryID  string             `json:"categoryID"`
	ExpenseType domain.ExpenseType `json:"expenseType"`
	CostType    *string            `json:"costType,omitempty"`
	Amount      decimal.Decimal    `json:"amount"`
	DueDate     time.Time          `json:"dueDate"`
	Paid        bool               `json:"paid"`
	PaidAt      *time.Time         `json:"paidAt,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		ExpenseType: e.ExpenseType,
		CostType:    e.CostType,
		Amount:      e.Amount,
		DueDate:     e.DueDate,
		Paid:        e.Paid,
		PaidAt:      e.PaidAt,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts a slice of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i := range es {
		list[i] = ToExpenseResponse(&es[i])
	}
	return ListExpensesResponse{Expenses: list}
}
