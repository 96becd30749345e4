package mapping

import (
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:      d.ExpenseID,
		OrganizationID: d.OrganizationID,
		Description:    d.Description,
		CategoryID:     d.CategoryID,
		ExpenseType:    string(d.ExpenseType),
		CostType:       d.CostType,
		Amount:         d.Amount,
		DueDate:        d.DueDate,
		Paid:           d.Paid,
		PaidAt:         d.PaidAt,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:      m.ExpenseID,
		OrganizationID: m.OrganizationID,
		Description:    m.Description,
		CategoryID:     m.CategoryID,
		ExpenseType:    domain.ExpenseType(m.ExpenseType),
		CostType:       m.CostType,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Paid:           m.Paid,
		PaidAt:         m.PaidAt,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
