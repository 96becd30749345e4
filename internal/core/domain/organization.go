package domain

import "time"

// Organization is the tenant boundary. Every financial record belongs to
// exactly one organization and every query is filtered by its ID.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary key (UUID)
	Name           string `json:"name"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// UserOrganizationRole defines the possible roles a user can have within an organization.
type UserOrganizationRole string

const (
	RoleAdmin    UserOrganizationRole = "ADMIN"
	RoleMember   UserOrganizationRole = "MEMBER"
	RoleReadOnly UserOrganizationRole = "READONLY"
	RoleRemoved  UserOrganizationRole = "REMOVED"
)

// UserOrganization represents the membership of a User in an Organization.
type UserOrganization struct {
	UserID         string               `json:"userID"`
	OrganizationID string               `json:"organizationID"`
	Role           UserOrganizationRole `json:"role"`
	JoinedAt       time.Time            `json:"joinedAt"`
}
