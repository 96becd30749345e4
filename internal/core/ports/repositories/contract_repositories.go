package repositories

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// ContractReader defines read operations for contracts and their installments
type ContractReader interface {
	// FindContractByID retrieves a specific contract by its ID.
	FindContractByID(ctx context.Context, organizationID, contractID string) (*domain.Contract, error)

	// ListContracts retrieves all contracts of an organization, newest first.
	ListContracts(ctx context.Context, organizationID string) ([]domain.Contract, error)

	// ListInstallmentsByContract retrieves the schedule of one contract in due-date order.
	ListInstallmentsByContract(ctx context.Context, organizationID, contractID string) ([]domain.ContractInstallment, error)

	// FindInstallmentByID retrieves a single installment.
	FindInstallmentByID(ctx context.Context, organizationID, installmentID string) (*domain.ContractInstallment, error)

	// ListInstallmentsWithContract retrieves every installment of the
	// organization joined with its contract summary, in due-date order.
	ListInstallmentsWithContract(ctx context.Context, organizationID string) ([]domain.InstallmentWithContract, error)
}

// ContractWriter defines write operations for contracts and their installments
type ContractWriter interface {
	// SaveContract persists a new contract.
	SaveContract(ctx context.Context, contract domain.Contract) error

	// SaveInstallments persists a batch of installments in one statement.
	SaveInstallments(ctx context.Context, installments []domain.ContractInstallment) error

	// UpdateContract persists changes to the mutable contract fields.
	UpdateContract(ctx context.Context, contract domain.Contract) error

	// UpdateInstallment persists a status toggle on one installment.
	UpdateInstallment(ctx context.Context, installment domain.ContractInstallment) error

	// DeleteInstallmentsByContract removes every installment of a contract.
	DeleteInstallmentsByContract(ctx context.Context, organizationID, contractID string) error

	// DeleteContract removes a contract row. Callers delete the installments first.
	DeleteContract(ctx context.Context, organizationID, contractID string) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
