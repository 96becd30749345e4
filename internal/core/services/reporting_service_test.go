package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/lexfin/lexfin_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockContractRepo *MockContractRepository
	mockReceiptRepo  *MockReceiptRepository
	mockExpenseRepo  *MockExpenseRepository
	mockTaxonomyRepo *MockTaxonomyRepository
	service          portssvc.ReportingSvcFacade

	orgID  string
	userID string
	now    time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockContractRepo = new(MockContractRepository)
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTaxonomyRepo = new(MockTaxonomyRepository)
	suite.service = services.NewReportingService(
		suite.mockContractRepo,
		suite.mockReceiptRepo,
		suite.mockExpenseRepo,
		suite.mockTaxonomyRepo,
	)
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.now = time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) paidInstallment(due time.Time, amount string) domain.InstallmentWithContract {
	paidAt := due
	return domain.InstallmentWithContract{
		ContractInstallment: domain.ContractInstallment{
			InstallmentID:  uuid.NewString(),
			OrganizationID: suite.orgID,
			ContractID:     uuid.NewString(),
			DueDate:        due,
			Amount:         decimal.RequireFromString(amount),
			Status:         domain.InstallmentPaid,
			PaidAt:         &paidAt,
		},
		ClientName: "Cliente A",
	}
}

func (suite *ReportingServiceTestSuite) expectDataset(installments []domain.InstallmentWithContract, receipts []domain.ManualReceipt, expenses []domain.Expense) {
	suite.mockContractRepo.On("ListContracts", mock.Anything, suite.orgID).
		Return([]domain.Contract{}, nil).Maybe()
	suite.mockContractRepo.On("ListInstallmentsWithContract", mock.Anything, suite.orgID).
		Return(installments, nil).Maybe()
	suite.mockReceiptRepo.On("ListReceipts", mock.Anything, suite.orgID).
		Return(receipts, nil).Maybe()
	suite.mockExpenseRepo.On("ListExpenses", mock.Anything, suite.orgID).
		Return(expenses, nil).Maybe()
	suite.mockTaxonomyRepo.On("ListAreas", mock.Anything, suite.orgID).
		Return([]domain.LawArea{}, nil).Maybe()
	suite.mockTaxonomyRepo.On("ListSubareas", mock.Anything, suite.orgID).
		Return([]domain.LawSubarea{}, nil).Maybe()
	suite.mockTaxonomyRepo.On("ListLookupItems", mock.Anything, suite.orgID, domain.LookupClientOrigin).
		Return([]domain.LookupItem{}, nil).Maybe()
}

func (suite *ReportingServiceTestSuite) TestDashboard_AggregatesLoadedRecords() {
	ctx := context.Background()

	installments := []domain.InstallmentWithContract{
		suite.paidInstallment(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), "400.00"),
	}
	receipts := []domain.ManualReceipt{{
		ReceiptID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Description:    "Consulta avulsa",
		Amount:         decimal.RequireFromString("150.00"),
		ReceivedDate:   time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
	}}
	expenses := []domain.Expense{{
		ExpenseID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Description:    "Aluguel",
		Amount:         decimal.RequireFromString("200.00"),
		DueDate:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Paid:           true,
	}}
	suite.expectDataset(installments, receipts, expenses)

	report, err := suite.service.Dashboard(ctx, suite.orgID, periods.AllMonths(), suite.now, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.Revenue.Equal(decimal.RequireFromString("550.00")))
	suite.True(report.Expenses.Equal(decimal.RequireFromString("200.00")))
	suite.True(report.NetResult.Equal(decimal.RequireFromString("350.00")))
}

func (suite *ReportingServiceTestSuite) TestCashflow_MixesInstallmentsAndReceiptsInDateOrder() {
	ctx := context.Background()

	installments := []domain.InstallmentWithContract{
		suite.paidInstallment(time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC), "300.00"),
	}
	receipts := []domain.ManualReceipt{{
		ReceiptID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Description:    "Parecer",
		Amount:         decimal.RequireFromString("100.00"),
		ReceivedDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}}
	suite.expectDataset(installments, receipts, nil)

	view, err := suite.service.Cashflow(ctx, suite.orgID, periods.AllMonths(), suite.now, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(view.Entries, 2)
	suite.Equal(domain.EntryReceipt, view.Entries[0].Kind)
	suite.Equal(domain.EntryInstallment, view.Entries[1].Kind)
	suite.Equal("paid", view.Entries[1].Status)
	suite.Equal("received", view.Entries[0].Status)
	suite.True(view.Totals.Received.Equal(decimal.RequireFromString("400.00")))
}

func (suite *ReportingServiceTestSuite) TestExpenseLedger_ScopesRowsToPeriod() {
	ctx := context.Background()

	expenses := []domain.Expense{
		{
			ExpenseID: uuid.NewString(),
			Amount:    decimal.RequireFromString("80.00"),
			DueDate:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ExpenseID: uuid.NewString(),
			Amount:    decimal.RequireFromString("90.00"),
			DueDate:   time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
	}
	suite.expectDataset(nil, nil, expenses)

	// A three month window ending in April 2024 excludes the November row.
	view, err := suite.service.ExpenseLedger(ctx, suite.orgID, periods.FixedWindow(3, suite.now), suite.now, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(view.Expenses, 1)
	suite.True(view.Totals.Total.Equal(decimal.RequireFromString("80.00")))
}

func (suite *ReportingServiceTestSuite) TestMonthOptions_SpansRecordDates() {
	ctx := context.Background()

	installments := []domain.InstallmentWithContract{
		suite.paidInstallment(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), "100.00"),
	}
	expenses := []domain.Expense{{
		ExpenseID: uuid.NewString(),
		Amount:    decimal.RequireFromString("50.00"),
		DueDate:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}}
	suite.expectDataset(installments, nil, expenses)

	buckets, err := suite.service.MonthOptions(ctx, suite.orgID, suite.now, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 3)
	suite.Equal("2024-01", buckets[0].Key)
	suite.Equal("2024-02", buckets[1].Key)
	suite.Equal("2024-03", buckets[2].Key)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
