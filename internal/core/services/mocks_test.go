package services_test

import (
	"context"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, organization domain.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, organization domain.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

func (m *MockOrganizationRepository) AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindUserOrganizationRole(ctx context.Context, userID, organizationID string) (*domain.UserOrganization, error) {
	args := m.Called(ctx, userID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserOrganization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.UserOrganization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserOrganization), args.Error(1)
}

func (m *MockOrganizationRepository) UpdateUserOrganizationRole(ctx context.Context, userID, organizationID string, role domain.UserOrganizationRole) error {
	args := m.Called(ctx, userID, organizationID, role)
	return args.Error(0)
}

// --- Mock ContractRepository ---
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, organizationID, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, organizationID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListContracts(ctx context.Context, organizationID string) ([]domain.Contract, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListInstallmentsByContract(ctx context.Context, organizationID, contractID string) ([]domain.ContractInstallment, error) {
	args := m.Called(ctx, organizationID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractInstallment), args.Error(1)
}

func (m *MockContractRepository) FindInstallmentByID(ctx context.Context, organizationID, installmentID string) (*domain.ContractInstallment, error) {
	args := m.Called(ctx, organizationID, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractInstallment), args.Error(1)
}

func (m *MockContractRepository) ListInstallmentsWithContract(ctx context.Context, organizationID string) ([]domain.InstallmentWithContract, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstallmentWithContract), args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) SaveInstallments(ctx context.Context, installments []domain.ContractInstallment) error {
	args := m.Called(ctx, installments)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateInstallment(ctx context.Context, installment domain.ContractInstallment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockContractRepository) DeleteInstallmentsByContract(ctx context.Context, organizationID, contractID string) error {
	args := m.Called(ctx, organizationID, contractID)
	return args.Error(0)
}

func (m *MockContractRepository) DeleteContract(ctx context.Context, organizationID, contractID string) error {
	args := m.Called(ctx, organizationID, contractID)
	return args.Error(0)
}

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, organizationID, receiptID string) (*domain.ManualReceipt, error) {
	args := m.Called(ctx, organizationID, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualReceipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, organizationID string) ([]domain.ManualReceipt, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualReceipt), args.Error(1)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.ManualReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.ManualReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, organizationID, receiptID string) error {
	args := m.Called(ctx, organizationID, receiptID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, organizationID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, organizationID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, organizationID string) ([]domain.Expense, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	args := m.Called(ctx, expenses)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, organizationID, expenseID string) error {
	args := m.Called(ctx, organizationID, expenseID)
	return args.Error(0)
}

// --- Mock TaxonomyRepository ---
type MockTaxonomyRepository struct {
	mock.Mock
}

func (m *MockTaxonomyRepository) FindAreaByID(ctx context.Context, organizationID, areaID string) (*domain.LawArea, error) {
	args := m.Called(ctx, organizationID, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LawArea), args.Error(1)
}

func (m *MockTaxonomyRepository) ListAreas(ctx context.Context, organizationID string) ([]domain.LawArea, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LawArea), args.Error(1)
}

func (m *MockTaxonomyRepository) FindSubareaByID(ctx context.Context, organizationID, subareaID string) (*domain.LawSubarea, error) {
	args := m.Called(ctx, organizationID, subareaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LawSubarea), args.Error(1)
}

func (m *MockTaxonomyRepository) ListSubareas(ctx context.Context, organizationID string) ([]domain.LawSubarea, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LawSubarea), args.Error(1)
}

func (m *MockTaxonomyRepository) ListSubareasByArea(ctx context.Context, organizationID, areaID string) ([]domain.LawSubarea, error) {
	args := m.Called(ctx, organizationID, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LawSubarea), args.Error(1)
}

func (m *MockTaxonomyRepository) SaveArea(ctx context.Context, area domain.LawArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) UpdateArea(ctx context.Context, area domain.LawArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) DeleteSubareasByArea(ctx context.Context, organizationID, areaID string) error {
	args := m.Called(ctx, organizationID, areaID)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) DeleteArea(ctx context.Context, organizationID, areaID string) error {
	args := m.Called(ctx, organizationID, areaID)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) SaveSubarea(ctx context.Context, subarea domain.LawSubarea) error {
	args := m.Called(ctx, subarea)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) UpdateSubarea(ctx context.Context, subarea domain.LawSubarea) error {
	args := m.Called(ctx, subarea)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) DeleteSubarea(ctx context.Context, organizationID, subareaID string) error {
	args := m.Called(ctx, organizationID, subareaID)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) FindLookupItemByID(ctx context.Context, organizationID, itemID string) (*domain.LookupItem, error) {
	args := m.Called(ctx, organizationID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LookupItem), args.Error(1)
}

func (m *MockTaxonomyRepository) ListLookupItems(ctx context.Context, organizationID string, kind domain.LookupKind) ([]domain.LookupItem, error) {
	args := m.Called(ctx, organizationID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LookupItem), args.Error(1)
}

func (m *MockTaxonomyRepository) SaveLookupItem(ctx context.Context, item domain.LookupItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) UpdateLookupItem(ctx context.Context, item domain.LookupItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) DeleteLookupItem(ctx context.Context, organizationID, itemID string) error {
	args := m.Called(ctx, organizationID, itemID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string, deactivatedBy string) error {
	args := m.Called(ctx, userID, deactivatedBy)
	return args.Error(0)
}
