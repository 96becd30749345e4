package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cost row of the office ledger. A recurring expense is stored
// as one row per month, each carrying the full amount.
type Expense struct {
	ExpenseID      string          `db:"expense_id"`
	OrganizationID string          `db:"organization_id"`
	Description    string          `db:"description"`
	CategoryID     string          `db:"category_id"`
	ExpenseType    string          `db:"expense_type"`
	CostType       *string         `db:"cost_type"`
	Amount         decimal.Decimal `db:"amount"`
	DueDate        time.Time       `db:"due_date"`
	Paid           bool            `db:"paid"`
	PaidAt         *time.Time      `db:"paid_at"`
	Notes          *string         `db:"notes"`
	AuditFields
}
