package services

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// OrganizationReaderSvc defines read operations for organization data
type OrganizationReaderSvc interface {
	// GetOrganizationByID retrieves a specific organization by its ID.
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListUserOrganizations retrieves the organizations a user belongs to.
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error)

	// ListOrganizationUsers retrieves all members and their roles for an
	// organization. Only members of the organization can access this data.
	ListOrganizationUsers(ctx context.Context, organizationID string, requestingUserID string) ([]domain.UserOrganization, error)
}

// OrganizationWriterSvc defines write operations for organization data
type OrganizationWriterSvc interface {
	// CreateOrganization persists a new organization with the creator as admin.
	CreateOrganization(ctx context.Context, name, creatorUserID string) (*domain.Organization, error)

	// RenameOrganization changes an organization's name. Admin only.
	RenameOrganization(ctx context.Context, organizationID, name, requestingUserID string) (*domain.Organization, error)

	// DeactivateOrganization marks an organization as inactive. Admin only.
	DeactivateOrganization(ctx context.Context, organizationID, requestingUserID string) error
}

// OrganizationMembershipSvc defines operations for managing membership
type OrganizationMembershipSvc interface {
	// AddUserToOrganization adds a user with a specific role. Admin only.
	AddUserToOrganization(ctx context.Context, requestingUserID, targetUserID, organizationID string, role domain.UserOrganizationRole) error

	// RemoveUserFromOrganization removes a member. Admin only.
	RemoveUserFromOrganization(ctx context.Context, requestingUserID, targetUserID, organizationID string) error

	// UpdateUserOrganizationRole changes a member's role. Admin only.
	UpdateUserOrganizationRole(ctx context.Context, requestingUserID, targetUserID, organizationID string, newRole domain.UserOrganizationRole) error
}

// OrganizationAuthorizerSvc defines operations for organization authorization
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has the required role in an organization.
	AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.UserOrganizationRole) error
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
	OrganizationMembershipSvc
	OrganizationAuthorizerSvc
}
