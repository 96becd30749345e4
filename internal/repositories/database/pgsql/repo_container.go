package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		ContractRepo:     newPgxContractRepository(dbPool),
		ReceiptRepo:      newPgxReceiptRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		TaxonomyRepo:     newPgxTaxonomyRepository(dbPool),
	}
}
