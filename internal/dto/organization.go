package dto

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// CreateOrganizationRequest defines data for creating a new organization.
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateOrganizationRequest defines the mutable organization fields.
type UpdateOrganizationRequest struct {
	Name *string `json:"name"`
}

// OrganizationResponse defines data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"` // UserID
}

// ToOrganizationResponse converts domain.Organization to DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		IsActive:       o.IsActive,
		CreatedAt:      o.CreatedAt,
		CreatedBy:      o.CreatedBy,
	}
}

// ListOrganizationsResponse wraps a list of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToListOrganizationsResponse converts a slice of domain.Organization to DTO.
func ToListOrganizationsResponse(os []domain.Organization) ListOrganizationsResponse {
	list := make([]OrganizationResponse, len(os))
	for i := range os {
		list[i] = ToOrganizationResponse(&os[i])
	}
	return ListOrganizationsResponse{Organizations: list}
}

// AddUserToOrganizationRequest defines data for adding a user to an organization.
type AddUserToOrganizationRequest struct {
	UserID string                      `json:"userID" binding:"required"`
	Role   domain.UserOrganizationRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// UpdateUserRoleRequest defines data for changing a member's role.
type UpdateUserRoleRequest struct {
	Role domain.UserOrganizationRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// MembershipResponse defines data returned about a user's membership.
type MembershipResponse struct {
	UserID         string                      `json:"userID"`
	OrganizationID string                      `json:"organizationID"`
	Role           domain.UserOrganizationRole `json:"role"`
	JoinedAt       time.Time                   `json:"joinedAt"`
}

// ToMembershipResponse converts domain.UserOrganization to DTO.
func ToMembershipResponse(m *domain.UserOrganization) MembershipResponse {
	return MembershipResponse{
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           m.Role,
		JoinedAt:       m.JoinedAt,
	}
}

// ListMembershipsResponse wraps the members of an organization.
type ListMembershipsResponse struct {
	Members []MembershipResponse `json:"members"`
}

// ToListMembershipsResponse converts a slice of memberships to DTO.
func ToListMembershipsResponse(ms []domain.UserOrganization) ListMembershipsResponse {
	list := make([]MembershipResponse, len(ms))
	for i := range ms {
		list[i] = ToMembershipResponse(&ms[i])
	}
	return ListMembershipsResponse{Members: list}
}
