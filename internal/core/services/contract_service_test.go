package services_test

import (
	"context"
	"errors"
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

type ContractServiceTestSuite struct {
	suite.Suite
	mockContractRepo *MockContractRepository
	mockTaxonomyRepo *MockTaxonomyRepository
	service          portssvc.ContractSvcFacade

	orgID  string
	userID string
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.mockContractRepo = new(MockContractRepository)
	suite.mockTaxonomyRepo = new(MockTaxonomyRepository)
	suite.service = services.NewContractService(suite.mockContractRepo, suite.mockTaxonomyRepo, nil)
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ContractServiceTestSuite) expectValidReferences(honorariumID, paymentID, areaID string) {
	ctx := mock.Anything
	suite.mockTaxonomyRepo.On("FindLookupItemByID", ctx, suite.orgID, honorariumID).
		Return(&domain.LookupItem{ItemID: honorariumID, Kind: domain.LookupHonorariumType}, nil)
	suite.mockTaxonomyRepo.On("FindLookupItemByID", ctx, suite.orgID, paymentID).
		Return(&domain.LookupItem{ItemID: paymentID, Kind: domain.LookupPaymentMethod}, nil)
	suite.mockTaxonomyRepo.On("FindAreaByID", ctx, suite.orgID, areaID).
		Return(&domain.LawArea{AreaID: areaID, OrganizationID: suite.orgID}, nil)
}

func (suite *ContractServiceTestSuite) TestCreateContract_SplitsTotalIntoCentExactInstallments() {
	ctx := context.Background()
	honorariumID := uuid.NewString()
	paymentID := uuid.NewString()
	areaID := uuid.NewString()
	suite.expectValidReferences(honorariumID, paymentID, areaID)

	suite.mockContractRepo.On("SaveContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.OrganizationID == suite.orgID && c.TotalValue.Equal(decimal.RequireFromString("1000")) && c.Status == domain.ContractActive
	})).Return(nil).Once()
	suite.mockContractRepo.On("SaveInstallments", mock.Anything, mock.MatchedBy(func(insts []domain.ContractInstallment) bool {
		return len(insts) == 3
	})).Return(nil).Once()

	req := dto.CreateContractRequest{
		ClientName:       "Maria Souza",
		HonorariumTypeID: honorariumID,
		AreaID:           areaID,
		PaymentMethodID:  paymentID,
		TotalValue:       "1.000,00",
		StartDate:        time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 3,
	}

	contract, installments, err := suite.service.CreateContract(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(contract)
	suite.Require().Len(installments, 3)

	// Remainder cent lands on the first installment; the sum is exact.
	suite.True(installments[0].Amount.Equal(decimal.RequireFromString("333.34")))
	suite.True(installments[1].Amount.Equal(decimal.RequireFromString("333.33")))
	suite.True(installments[2].Amount.Equal(decimal.RequireFromString("333.33")))
	sum := installments[0].Amount.Add(installments[1].Amount).Add(installments[2].Amount)
	suite.True(sum.Equal(contract.TotalValue))

	// Jan 31 start clamps to the shorter following months.
	suite.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), installments[0].DueDate)
	suite.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), installments[1].DueDate)
	suite.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), installments[2].DueDate)

	for _, inst := range installments {
		suite.Equal(domain.InstallmentOpen, inst.Status)
		suite.Equal(contract.ContractID, inst.ContractID)
		suite.Nil(inst.PaidAt)
	}

	suite.mockContractRepo.AssertExpectations(suite.T())
	suite.mockTaxonomyRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_SchedulesFromFirstDueDate() {
	ctx := context.Background()
	honorariumID := uuid.NewString()
	paymentID := uuid.NewString()
	areaID := uuid.NewString()
	suite.expectValidReferences(honorariumID, paymentID, areaID)

	suite.mockContractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockContractRepo.On("SaveInstallments", mock.Anything, mock.Anything).Return(nil).Once()

	// Signed in January, billing starts in March.
	firstDue := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateContractRequest{
		ClientName:       "João Pereira",
		HonorariumTypeID: honorariumID,
		AreaID:           areaID,
		PaymentMethodID:  paymentID,
		TotalValue:       "600,00",
		StartDate:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		FirstDueDate:     &firstDue,
		InstallmentCount: 2,
	}

	contract, installments, err := suite.service.CreateContract(ctx, suite.orgID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(installments, 2)

	// The start date is kept on the contract; the schedule bases off the
	// first due date.
	suite.Equal(req.StartDate, contract.StartDate)
	suite.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), installments[0].DueDate)
	suite.Equal(time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC), installments[1].DueDate)

	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_RejectsNonPositiveTotal() {
	ctx := context.Background()
	req := dto.CreateContractRequest{
		ClientName:       "Cliente",
		HonorariumTypeID: uuid.NewString(),
		AreaID:           uuid.NewString(),
		PaymentMethodID:  uuid.NewString(),
		TotalValue:       "0,00",
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 2,
	}

	_, _, err := suite.service.CreateContract(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockContractRepo.AssertNotCalled(suite.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCreateContract_RejectsSubareaFromAnotherArea() {
	ctx := context.Background()
	honorariumID := uuid.NewString()
	paymentID := uuid.NewString()
	areaID := uuid.NewString()
	subareaID := uuid.NewString()
	suite.expectValidReferences(honorariumID, paymentID, areaID)
	suite.mockTaxonomyRepo.On("FindSubareaByID", mock.Anything, suite.orgID, subareaID).
		Return(&domain.LawSubarea{SubareaID: subareaID, AreaID: uuid.NewString()}, nil)

	req := dto.CreateContractRequest{
		ClientName:       "Cliente",
		HonorariumTypeID: honorariumID,
		AreaID:           areaID,
		SubareaID:        &subareaID,
		PaymentMethodID:  paymentID,
		TotalValue:       "500,00",
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 1,
	}

	_, _, err := suite.service.CreateContract(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockContractRepo.AssertNotCalled(suite.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCreateContract_InstallmentBatchFailureIsPartial() {
	ctx := context.Background()
	honorariumID := uuid.NewString()
	paymentID := uuid.NewString()
	areaID := uuid.NewString()
	suite.expectValidReferences(honorariumID, paymentID, areaID)

	suite.mockContractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockContractRepo.On("SaveInstallments", mock.Anything, mock.Anything).
		Return(errors.New("batch insert failed")).Once()

	req := dto.CreateContractRequest{
		ClientName:       "Cliente",
		HonorariumTypeID: honorariumID,
		AreaID:           areaID,
		PaymentMethodID:  paymentID,
		TotalValue:       "900,00",
		StartDate:        time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 3,
	}

	_, _, err := suite.service.CreateContract(ctx, suite.orgID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPartialBatch)
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestToggleInstallmentPaid_SetsAndClearsPaidAt() {
	ctx := context.Background()
	installmentID := uuid.NewString()
	stored := domain.ContractInstallment{
		InstallmentID:  installmentID,
		OrganizationID: suite.orgID,
		ContractID:     uuid.NewString(),
		DueDate:        time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.RequireFromString("250.00"),
		Status:         domain.InstallmentOpen,
	}

	suite.mockContractRepo.On("FindInstallmentByID", mock.Anything, suite.orgID, installmentID).
		Return(&stored, nil).Once()
	suite.mockContractRepo.On("UpdateInstallment", mock.Anything, mock.MatchedBy(func(inst domain.ContractInstallment) bool {
		return inst.Status == domain.InstallmentPaid && inst.PaidAt != nil
	})).Return(nil).Once()

	paid, err := suite.service.ToggleInstallmentPaid(ctx, suite.orgID, installmentID, true, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.InstallmentPaid, paid.Status)
	suite.Require().NotNil(paid.PaidAt)

	// Toggling back clears the timestamp.
	suite.mockContractRepo.On("FindInstallmentByID", mock.Anything, suite.orgID, installmentID).
		Return(paid, nil).Once()
	suite.mockContractRepo.On("UpdateInstallment", mock.Anything, mock.MatchedBy(func(inst domain.ContractInstallment) bool {
		return inst.Status == domain.InstallmentOpen && inst.PaidAt == nil
	})).Return(nil).Once()

	reopened, err := suite.service.ToggleInstallmentPaid(ctx, suite.orgID, installmentID, false, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.InstallmentOpen, reopened.Status)
	suite.Nil(reopened.PaidAt)
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestDeleteContract_RemovesInstallmentsFirst() {
	ctx := context.Background()
	contractID := uuid.NewString()

	suite.mockContractRepo.On("FindContractByID", mock.Anything, suite.orgID, contractID).
		Return(&domain.Contract{ContractID: contractID, OrganizationID: suite.orgID}, nil).Once()
	suite.mockContractRepo.On("DeleteInstallmentsByContract", mock.Anything, suite.orgID, contractID).
		Return(nil).Once()
	suite.mockContractRepo.On("DeleteContract", mock.Anything, suite.orgID, contractID).
		Return(nil).Once()

	err := suite.service.DeleteContract(ctx, suite.orgID, contractID, suite.userID)

	suite.Require().NoError(err)
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestUpdateContract_KeepsTotalAndStartImmutable() {
	ctx := context.Background()
	contractID := uuid.NewString()
	honorariumID := uuid.NewString()
	paymentID := uuid.NewString()
	areaID := uuid.NewString()
	originalTotal := decimal.RequireFromString("1200.00")
	originalStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	stored := domain.Contract{
		ContractID:       contractID,
		OrganizationID:   suite.orgID,
		ClientName:       "Old Name",
		HonorariumTypeID: honorariumID,
		AreaID:           areaID,
		PaymentMethodID:  paymentID,
		TotalValue:       originalTotal,
		StartDate:        originalStart,
		Status:           domain.ContractActive,
	}

	suite.expectValidReferences(honorariumID, paymentID, areaID)
	suite.mockContractRepo.On("FindContractByID", mock.Anything, suite.orgID, contractID).
		Return(&stored, nil).Once()
	suite.mockContractRepo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ClientName == "New Name" && c.TotalValue.Equal(originalTotal) && c.StartDate.Equal(originalStart)
	})).Return(nil).Once()

	newName := "New Name"
	updated, err := suite.service.UpdateContract(ctx, suite.orgID, contractID, dto.UpdateContractRequest{ClientName: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.ClientName)
	suite.True(updated.TotalValue.Equal(originalTotal))
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestGetContractByID_NotFound() {
	ctx := context.Background()
	contractID := uuid.NewString()

	suite.mockContractRepo.On("FindContractByID", mock.Anything, suite.orgID, contractID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GetContractByID(ctx, suite.orgID, contractID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}
