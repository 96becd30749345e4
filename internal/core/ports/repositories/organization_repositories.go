package repositories

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindOrganizationByID retrieves a specific organization by its ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizationsByUserID retrieves all organizations a user belongs to.
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data
type OrganizationWriter interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, organization domain.Organization) error

	// UpdateOrganization persists changes to an existing organization.
	UpdateOrganization(ctx context.Context, organization domain.Organization) error
}

// OrganizationMembershipManager defines operations for managing memberships
type OrganizationMembershipManager interface {
	// AddUserToOrganization adds a user to an organization with a specific role.
	AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error

	// FindUserOrganizationRole retrieves the role of a user in an organization.
	FindUserOrganizationRole(ctx context.Context, userID, organizationID string) (*domain.UserOrganization, error)

	// ListOrganizationUsers retrieves all memberships of an organization.
	ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.UserOrganization, error)

	// UpdateUserOrganizationRole changes the stored role of a membership.
	UpdateUserOrganizationRole(ctx context.Context, userID, organizationID string, role domain.UserOrganizationRole) error
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
	OrganizationMembershipManager
}
