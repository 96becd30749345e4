package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType distinguishes a single expense from one occurrence of a
// monthly-recurring expense. Recurring creation inserts one row per month,
// each carrying the full amount.
type ExpenseType string

const (
	ExpenseOneTime   ExpenseType = "one_time"
	ExpenseRecurring ExpenseType = "recurring"
)

// Expense is a cost row of the office ledger.
type Expense struct {
	ExpenseID      string          `json:"expenseID"` // Primary key (UUID)
	OrganizationID string          `json:"organizationID"`
	Description    string          `json:"description"`
	CategoryID     string          `json:"categoryID"`
	ExpenseType    ExpenseType     `json:"expenseType"`
	CostType       *string         `json:"costType,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
	Paid           bool            `json:"paid"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	AuditFields
}
