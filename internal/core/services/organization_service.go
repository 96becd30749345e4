package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/google/uuid"
)

// roleRank orders membership roles so that a higher role satisfies any lower
// requirement. REMOVED is deliberately absent: a removed member never ranks.
var roleRank = map[domain.UserOrganizationRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// OrganizationService handles business logic related to organizations and memberships.
type OrganizationService struct {
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(or portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &OrganizationService{
		organizationRepo: or,
	}
}

var _ portssvc.OrganizationSvcFacade = (*OrganizationService)(nil)

// CreateOrganization creates a new organization and makes the creator the initial admin.
func (s *OrganizationService) CreateOrganization(ctx context.Context, name, creatorUserID string) (*domain.Organization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if name == "" {
		return nil, fmt.Errorf("%w: organization name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	newOrganizationID := uuid.NewString()

	organization := domain.Organization{
		OrganizationID: newOrganizationID,
		Name:           name,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.organizationRepo.SaveOrganization(ctx, organization); err != nil {
		logger.Error("Failed to save organization in repository", slog.String("error", err.Error()), slog.String("organization_name", name))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	membership := domain.UserOrganization{
		UserID:         creatorUserID,
		OrganizationID: newOrganizationID,
		Role:           domain.RoleAdmin,
		JoinedAt:       now,
	}
	if err := s.organizationRepo.AddUserToOrganization(ctx, membership); err != nil {
		logger.Error("Failed to add creator as admin to new organization", slog.String("error", err.Error()), slog.String("organization_id", newOrganizationID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	logger.Info("Organization created successfully", slog.String("organization_id", newOrganizationID), slog.String("creator_user_id", creatorUserID))
	return &organization, nil
}

// GetOrganizationByID retrieves an organization by its ID.
func (s *OrganizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find organization by ID in repository", slog.String("error", err.Error()), slog.String("organization_id", organizationID))
		}
		return nil, err
	}
	return organization, nil
}

// ListUserOrganizations retrieves the organizations a given user belongs to.
func (s *OrganizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	organizations, err := s.organizationRepo.ListOrganizationsByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list organizations for user from repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list organizations for user %s: %w", userID, err)
	}

	if organizations == nil {
		return []domain.Organization{}, nil
	}
	return organizations, nil
}

// ListOrganizationUsers retrieves all memberships of an organization. Any
// member may list them.
func (s *OrganizationService) ListOrganizationUsers(ctx context.Context, organizationID string, requestingUserID string) ([]domain.UserOrganization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	memberships, err := s.organizationRepo.ListOrganizationUsers(ctx, organizationID)
	if err != nil {
		logger.Error("Failed to list organization users from repository", slog.String("error", err.Error()), slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list users for organization %s: %w", organizationID, err)
	}

	if memberships == nil {
		return []domain.UserOrganization{}, nil
	}
	return memberships, nil
}

// RenameOrganization changes an organization's name. Admin only.
func (s *OrganizationService) RenameOrganization(ctx context.Context, organizationID, name, requestingUserID string) (*domain.Organization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: organization name is required", apperrors.ErrValidation)
	}

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	organization.Name = name
	organization.LastUpdatedAt = time.Now().UTC()
	organization.LastUpdatedBy = requestingUserID

	if err := s.organizationRepo.UpdateOrganization(ctx, *organization); err != nil {
		logger.Error("Failed to update organization in repository", slog.String("error", err.Error()), slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to rename organization %s: %w", organizationID, err)
	}

	logger.Info("Organization renamed successfully", slog.String("organization_id", organizationID))
	return organization, nil
}

// DeactivateOrganization marks an organization as inactive. Admin only.
func (s *OrganizationService) DeactivateOrganization(ctx context.Context, organizationID, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return err
	}

	organization.IsActive = false
	organization.LastUpdatedAt = time.Now().UTC()
	organization.LastUpdatedBy = requestingUserID

	if err := s.organizationRepo.UpdateOrganization(ctx, *organization); err != nil {
		logger.Error("Failed to deactivate organization in repository", slog.String("error", err.Error()), slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to deactivate organization %s: %w", organizationID, err)
	}

	logger.Info("Organization deactivated", slog.String("organization_id", organizationID), slog.String("requesting_user_id", requestingUserID))
	return nil
}

// AddUserToOrganization adds a user to an organization with a specific role. Admin only.
func (s *OrganizationService) AddUserToOrganization(ctx context.Context, requestingUserID, targetUserID, organizationID string, role domain.UserOrganizationRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}
	if _, ok := roleRank[role]; !ok {
		return fmt.Errorf("%w: invalid role %s", apperrors.ErrValidation, role)
	}

	membership := domain.UserOrganization{
		UserID:         targetUserID,
		OrganizationID: organizationID,
		Role:           role,
		JoinedAt:       time.Now().UTC(),
	}

	if err := s.organizationRepo.AddUserToOrganization(ctx, membership); err != nil {
		logger.Error("Failed to add user to organization in repository", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to add user %s to organization %s: %w", targetUserID, organizationID, err)
	}

	logger.Info("User added to organization successfully", slog.String("target_user_id", targetUserID), slog.String("organization_id", organizationID), slog.String("role", string(role)), slog.String("added_by_user_id", requestingUserID))
	return nil
}

// RemoveUserFromOrganization marks a membership as REMOVED. Admin only; admins
// cannot remove themselves, which keeps every organization with at least one admin.
func (s *OrganizationService) RemoveUserFromOrganization(ctx context.Context, requestingUserID, targetUserID, organizationID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}
	if requestingUserID == targetUserID {
		return fmt.Errorf("%w: admins cannot remove themselves", apperrors.ErrValidation)
	}

	if err := s.organizationRepo.UpdateUserOrganizationRole(ctx, targetUserID, organizationID, domain.RoleRemoved); err != nil {
		logger.Error("Failed to remove user from organization in repository", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to remove user %s from organization %s: %w", targetUserID, organizationID, err)
	}

	logger.Info("User removed from organization", slog.String("target_user_id", targetUserID), slog.String("organization_id", organizationID), slog.String("removed_by_user_id", requestingUserID))
	return nil
}

// UpdateUserOrganizationRole changes a member's role. Admin only.
func (s *OrganizationService) UpdateUserOrganizationRole(ctx context.Context, requestingUserID, targetUserID, organizationID string, newRole domain.UserOrganizationRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}
	if _, ok := roleRank[newRole]; !ok {
		return fmt.Errorf("%w: invalid role %s", apperrors.ErrValidation, newRole)
	}
	if requestingUserID == targetUserID && newRole != domain.RoleAdmin {
		return fmt.Errorf("%w: admins cannot demote themselves", apperrors.ErrValidation)
	}

	if err := s.organizationRepo.UpdateUserOrganizationRole(ctx, targetUserID, organizationID, newRole); err != nil {
		logger.Error("Failed to update membership role in repository", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to update role for user %s in organization %s: %w", targetUserID, organizationID, err)
	}

	logger.Info("Membership role updated", slog.String("target_user_id", targetUserID), slog.String("organization_id", organizationID), slog.String("new_role", string(newRole)))
	return nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within an organization.
// Returns apperrors.ErrNotFound if the user is not a member, so organization
// existence is not revealed to outsiders.
// Returns apperrors.ErrForbidden if the user is a member but lacks the required role.
func (s *OrganizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.UserOrganizationRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.organizationRepo.FindUserOrganizationRole(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authorization failed: user not a member of organization", slog.String("user_id", userID), slog.String("organization_id", organizationID))
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to check user organization role in repository", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	memberRank, ok := roleRank[membership.Role]
	if !ok {
		// REMOVED or unknown role
		logger.Warn("Authorization failed: membership revoked", slog.String("user_id", userID), slog.String("organization_id", organizationID))
		return apperrors.ErrForbidden
	}
	if memberRank < roleRank[requiredRole] {
		logger.Warn("Authorization failed: insufficient role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
