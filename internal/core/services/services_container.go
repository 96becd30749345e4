package services

import (
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The organization service doubles as the authorizer every other service
	// depends on, so it is built first.
	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	authorizer := container.Organization.(portssvc.OrganizationAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Contract = NewContractService(repos.ContractRepo, repos.TaxonomyRepo, authorizer)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, repos.TaxonomyRepo, authorizer)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.TaxonomyRepo, authorizer)
	container.Taxonomy = NewTaxonomyService(repos.TaxonomyRepo, authorizer)
	container.Reporting = NewReportingService(
		repos.ContractRepo,
		repos.ReceiptRepo,
		repos.ExpenseRepo,
		repos.TaxonomyRepo,
		WithReportingOrganizationAuthorizer(authorizer),
	)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
