package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/utils/money"
	"github.com/google/uuid"
)

// ExpenseService handles the office expense ledger, including recurring
// expense materialization.
type ExpenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	taxonomyRepo portsrepo.TaxonomyRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(er portsrepo.ExpenseRepositoryFacade, tr portsrepo.TaxonomyRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.ExpenseSvcFacade {
	return &ExpenseService{
		BaseService:  BaseService{OrganizationAuthorizer: authorizer},
		expenseRepo:  er,
		taxonomyRepo: tr,
	}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// GetExpenseByID retrieves an expense by its ID.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, organizationID, expenseID, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, organizationID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves all expenses of an organization in due-date order.
func (s *ExpenseService) ListExpenses(ctx context.Context, organizationID, requestingUserID string) ([]domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// CreateExpense records an expense. A one-time request inserts a single row.
// A recurring request materializes one row per month, each carrying the FULL
// amount; recurring expenses repeat, they are not partitioned the way
// installments are.
func (s *ExpenseService) CreateExpense(ctx context.Context, organizationID string, req dto.CreateExpenseRequest, creatorUserID string) ([]domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	amount := money.ParseAmount(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.taxonomyRepo.FindLookupItemByID(ctx, organizationID, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: expense category %s not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate expense category: %w", err)
	}

	months := 1
	if req.ExpenseType == domain.ExpenseRecurring {
		if req.Months < 1 {
			return nil, fmt.Errorf("%w: recurring expenses need a month count", apperrors.ErrValidation)
		}
		months = req.Months
	}

	schedule, err := money.RecurringSchedule(amount, req.DueDate, months)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	expenses := make([]domain.Expense, len(schedule))
	for i, occ := range schedule {
		expense := domain.Expense{
			ExpenseID:      uuid.NewString(),
			OrganizationID: organizationID,
			Description:    req.Description,
			CategoryID:     req.CategoryID,
			ExpenseType:    req.ExpenseType,
			CostType:       req.CostType,
			Amount:         occ.Amount,
			DueDate:        occ.DueDate,
			Notes:          req.Notes,
			AuditFields:    audit,
		}
		// Only the first occurrence can be born paid; future months are open.
		if req.Paid && i == 0 {
			expense.Paid = true
			paidAt := occ.DueDate
			expense.PaidAt = &paidAt
		}
		expenses[i] = expense
	}

	if len(expenses) == 1 {
		if err := s.expenseRepo.SaveExpense(ctx, expenses[0]); err != nil {
			s.LogError(ctx, err, "Failed to save expense", slog.String("organization_id", organizationID))
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
	} else {
		if err := s.expenseRepo.SaveExpenses(ctx, expenses); err != nil {
			s.LogError(ctx, err, "Failed to save recurring expense batch", slog.String("organization_id", organizationID))
			return nil, fmt.Errorf("failed to create recurring expenses: %w", err)
		}
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_type", string(req.ExpenseType)),
		slog.Int("rows", len(expenses)))
	return expenses, nil
}

// UpdateExpense updates the mutable fields of an expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, organizationID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, organizationID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.taxonomyRepo.FindLookupItemByID(ctx, organizationID, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: expense category %s not found", apperrors.ErrValidation, *req.CategoryID)
			}
			return nil, fmt.Errorf("failed to validate expense category: %w", err)
		}
		expense.CategoryID = *req.CategoryID
	}
	if req.CostType != nil {
		expense.CostType = req.CostType
	}
	if req.Amount != nil {
		amount := money.ParseAmount(*req.Amount)
		if !amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = amount
	}
	if req.DueDate != nil {
		expense.DueDate = *req.DueDate
	}
	if req.Notes != nil {
		expense.Notes = req.Notes
	}

	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	return expense, nil
}

// ToggleExpensePaid flips the paid flag. Marking paid stamps PaidAt with the
// due date; marking unpaid clears it.
func (s *ExpenseService) ToggleExpensePaid(ctx context.Context, organizationID, expenseID string, paid bool, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, organizationID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}

	now := time.Now().UTC()
	expense.Paid = paid
	if paid {
		paidAt := expense.DueDate
		expense.PaidAt = &paidAt
	} else {
		expense.PaidAt = nil
	}
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to toggle expense paid flag", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	s.LogInfo(ctx, "Expense paid flag toggled", slog.String("expense_id", expenseID), slog.Bool("paid", paid))
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, organizationID, expenseID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, organizationID, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
