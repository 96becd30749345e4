package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/core/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo  *MockExpenseRepository
	mockTaxonomyRepo *MockTaxonomyRepository
	service          portssvc.ExpenseSvcFacade

	orgID      string
	userID     string
	categoryID string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTaxonomyRepo = new(MockTaxonomyRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockTaxonomyRepo, nil)
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.categoryID = uuid.NewString()
	suite.mockTaxonomyRepo.On("FindLookupItemByID", mock.Anything, suite.orgID, suite.categoryID).
		Return(&domain.LookupItem{ItemID: suite.categoryID, Kind: domain.LookupExpenseCategory}, nil).Maybe()
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_OneTimeInsertsSingleRow() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(decimal.RequireFromString("350.90")) && e.ExpenseType == domain.ExpenseOneTime
	})).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Description: "Aluguel do escritório",
		CategoryID:  suite.categoryID,
		ExpenseType: domain.ExpenseOneTime,
		Amount:      "350,90",
		DueDate:     time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
	}

	expenses, err := suite.service.CreateExpense(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.False(expenses[0].Paid)
	suite.Nil(expenses[0].PaidAt)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RecurringRepeatsFullAmountMonthly() {
	ctx := context.Background()

	var captured []domain.Expense
	suite.mockExpenseRepo.On("SaveExpenses", mock.Anything, mock.MatchedBy(func(es []domain.Expense) bool {
		captured = es
		return len(es) == 4
	})).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Description: "Assinatura de software",
		CategoryID:  suite.categoryID,
		ExpenseType: domain.ExpenseRecurring,
		Amount:      "120,00",
		DueDate:     time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Months:      4,
	}

	expenses, err := suite.service.CreateExpense(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 4)
	suite.Require().Len(captured, 4)

	// Every occurrence carries the full amount; recurring repeats, it does
	// not partition the way installments do.
	for _, e := range expenses {
		suite.True(e.Amount.Equal(decimal.RequireFromString("120.00")))
		suite.Equal(domain.ExpenseRecurring, e.ExpenseType)
	}
	suite.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), expenses[0].DueDate)
	suite.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), expenses[1].DueDate)
	suite.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), expenses[2].DueDate)
	suite.Equal(time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), expenses[3].DueDate)

	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PaidFlagOnlyMarksFirstOccurrence() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("SaveExpenses", mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Description: "Internet",
		CategoryID:  suite.categoryID,
		ExpenseType: domain.ExpenseRecurring,
		Amount:      "99,90",
		DueDate:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Paid:        true,
		Months:      3,
	}

	expenses, err := suite.service.CreateExpense(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 3)
	suite.True(expenses[0].Paid)
	suite.Require().NotNil(expenses[0].PaidAt)
	suite.Equal(expenses[0].DueDate, *expenses[0].PaidAt)
	suite.False(expenses[1].Paid)
	suite.False(expenses[2].Paid)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsZeroAmount() {
	ctx := context.Background()

	req := dto.CreateExpenseRequest{
		Description: "Vazio",
		CategoryID:  suite.categoryID,
		ExpenseType: domain.ExpenseOneTime,
		Amount:      "abc",
		DueDate:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateExpense(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RecurringNeedsMonths() {
	ctx := context.Background()

	req := dto.CreateExpenseRequest{
		Description: "Sem meses",
		CategoryID:  suite.categoryID,
		ExpenseType: domain.ExpenseRecurring,
		Amount:      "50,00",
		DueDate:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateExpense(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestToggleExpensePaid_StampsDueDate() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	dueDate := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	stored := domain.Expense{
		ExpenseID:      expenseID,
		OrganizationID: suite.orgID,
		Description:    "Energia",
		CategoryID:     suite.categoryID,
		ExpenseType:    domain.ExpenseOneTime,
		Amount:         decimal.RequireFromString("430.00"),
		DueDate:        dueDate,
	}

	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, suite.orgID, expenseID).
		Return(&stored, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Paid && e.PaidAt != nil && e.PaidAt.Equal(dueDate)
	})).Return(nil).Once()

	expense, err := suite.service.ToggleExpensePaid(ctx, suite.orgID, expenseID, true, suite.userID)

	suite.Require().NoError(err)
	suite.True(expense.Paid)
	suite.Require().NotNil(expense.PaidAt)
	suite.Equal(dueDate, *expense.PaidAt)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
