package services

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/dto"
)

// ContractReaderSvc defines read operations for contracts
type ContractReaderSvc interface {
	// GetContractByID retrieves a contract and its installment schedule.
	GetContractByID(ctx context.Context, organizationID, contractID, requestingUserID string) (*domain.Contract, []domain.ContractInstallment, error)

	// ListContracts retrieves all contracts of an organization, newest first.
	ListContracts(ctx context.Context, organizationID, requestingUserID string) ([]domain.Contract, error)
}

// ContractWriterSvc defines write operations for contracts
type ContractWriterSvc interface {
	// CreateContract persists a contract and generates its installment
	// schedule from the total value and installment count.
	CreateContract(ctx context.Context, organizationID string, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, []domain.ContractInstallment, error)

	// UpdateContract updates the mutable fields of a contract.
	UpdateContract(ctx context.Context, organizationID, contractID string, req dto.UpdateContractRequest, requestingUserID string) (*domain.Contract, error)

	// DeleteContract removes a contract and its installments.
	DeleteContract(ctx context.Context, organizationID, contractID, requestingUserID string) error
}

// InstallmentTogglerSvc defines the installment status mutation
type InstallmentTogglerSvc interface {
	// ToggleInstallmentPaid flips an installment between open and paid,
	// setting or clearing its payment timestamp.
	ToggleInstallmentPaid(ctx context.Context, organizationID, installmentID string, paid bool, requestingUserID string) (*domain.ContractInstallment, error)
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
	InstallmentTogglerSvc
}
