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
	"github.com/google/uuid"
)

// TaxonomyService manages the law area/subarea tree and the flat lookup
// tables (honorarium types, client origins, payment methods, expense categories).
type TaxonomyService struct {
	BaseService
	taxonomyRepo portsrepo.TaxonomyRepositoryFacade
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(tr portsrepo.TaxonomyRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.TaxonomySvcFacade {
	return &TaxonomyService{
		BaseService:  BaseService{OrganizationAuthorizer: authorizer},
		taxonomyRepo: tr,
	}
}

var _ portssvc.TaxonomySvcFacade = (*TaxonomyService)(nil)

// GetAreaByID retrieves a law area with its subareas.
func (s *TaxonomyService) GetAreaByID(ctx context.Context, organizationID, areaID, requestingUserID string) (*domain.LawArea, []domain.LawSubarea, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	area, err := s.taxonomyRepo.FindAreaByID(ctx, organizationID, areaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find area by ID", slog.String("area_id", areaID))
		}
		return nil, nil, err
	}

	subareas, err := s.taxonomyRepo.ListSubareasByArea(ctx, organizationID, areaID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subareas for area", slog.String("area_id", areaID))
		return nil, nil, fmt.Errorf("failed to list subareas for area %s: %w", areaID, err)
	}

	return area, subareas, nil
}

// ListAreas retrieves all law areas of an organization with their subareas,
// grouped by area ID.
func (s *TaxonomyService) ListAreas(ctx context.Context, organizationID, requestingUserID string) ([]domain.LawArea, map[string][]domain.LawSubarea, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	areas, err := s.taxonomyRepo.ListAreas(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list areas", slog.String("organization_id", organizationID))
		return nil, nil, fmt.Errorf("failed to list areas: %w", err)
	}

	subareas, err := s.taxonomyRepo.ListSubareas(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subareas", slog.String("organization_id", organizationID))
		return nil, nil, fmt.Errorf("failed to list subareas: %w", err)
	}

	grouped := make(map[string][]domain.LawSubarea, len(areas))
	for _, sub := range subareas {
		grouped[sub.AreaID] = append(grouped[sub.AreaID], sub)
	}

	if areas == nil {
		areas = []domain.LawArea{}
	}
	return areas, grouped, nil
}

// CreateArea persists a new law area.
func (s *TaxonomyService) CreateArea(ctx context.Context, organizationID, name, creatorUserID string) (*domain.LawArea, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: area name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	area := domain.LawArea{
		AreaID:         uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxonomyRepo.SaveArea(ctx, area); err != nil {
		s.LogError(ctx, err, "Failed to save area", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to create area: %w", err)
	}

	s.LogInfo(ctx, "Law area created", slog.String("area_id", area.AreaID))
	return &area, nil
}

// RenameArea changes an area's name.
func (s *TaxonomyService) RenameArea(ctx context.Context, organizationID, areaID, name, requestingUserID string) (*domain.LawArea, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: area name is required", apperrors.ErrValidation)
	}

	area, err := s.taxonomyRepo.FindAreaByID(ctx, organizationID, areaID)
	if err != nil {
		return nil, err
	}

	area.Name = name
	area.LastUpdatedAt = time.Now().UTC()
	area.LastUpdatedBy = requestingUserID

	if err := s.taxonomyRepo.UpdateArea(ctx, *area); err != nil {
		s.LogError(ctx, err, "Failed to update area", slog.String("area_id", areaID))
		return nil, fmt.Errorf("failed to rename area %s: %w", areaID, err)
	}

	return area, nil
}

// DeleteArea removes an area together with all of its subareas. Contracts
// referencing the deleted area keep their ID and fall into the "Outros"
// bucket on reports.
func (s *TaxonomyService) DeleteArea(ctx context.Context, organizationID, areaID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.taxonomyRepo.FindAreaByID(ctx, organizationID, areaID); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteSubareasByArea(ctx, organizationID, areaID); err != nil {
		s.LogError(ctx, err, "Failed to delete subareas for area", slog.String("area_id", areaID))
		return fmt.Errorf("failed to delete subareas for area %s: %w", areaID, err)
	}
	if err := s.taxonomyRepo.DeleteArea(ctx, organizationID, areaID); err != nil {
		s.LogError(ctx, err, "Failed to delete area", slog.String("area_id", areaID))
		return fmt.Errorf("failed to delete area %s: %w", areaID, err)
	}

	s.LogInfo(ctx, "Law area deleted", slog.String("area_id", areaID))
	return nil
}

// CreateSubarea persists a new subarea under an existing area.
func (s *TaxonomyService) CreateSubarea(ctx context.Context, organizationID, areaID, name, creatorUserID string) (*domain.LawSubarea, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: subarea name is required", apperrors.ErrValidation)
	}

	if _, err := s.taxonomyRepo.FindAreaByID(ctx, organizationID, areaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: law area %s not found", apperrors.ErrValidation, areaID)
		}
		return nil, fmt.Errorf("failed to validate parent area: %w", err)
	}

	now := time.Now().UTC()
	subarea := domain.LawSubarea{
		SubareaID:      uuid.NewString(),
		OrganizationID: organizationID,
		AreaID:         areaID,
		Name:           name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxonomyRepo.SaveSubarea(ctx, subarea); err != nil {
		s.LogError(ctx, err, "Failed to save subarea", slog.String("area_id", areaID))
		return nil, fmt.Errorf("failed to create subarea: %w", err)
	}

	s.LogInfo(ctx, "Law subarea created", slog.String("subarea_id", subarea.SubareaID))
	return &subarea, nil
}

// RenameSubarea changes a subarea's name.
func (s *TaxonomyService) RenameSubarea(ctx context.Context, organizationID, subareaID, name, requestingUserID string) (*domain.LawSubarea, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: subarea name is required", apperrors.ErrValidation)
	}

	subarea, err := s.taxonomyRepo.FindSubareaByID(ctx, organizationID, subareaID)
	if err != nil {
		return nil, err
	}

	subarea.Name = name
	subarea.LastUpdatedAt = time.Now().UTC()
	subarea.LastUpdatedBy = requestingUserID

	if err := s.taxonomyRepo.UpdateSubarea(ctx, *subarea); err != nil {
		s.LogError(ctx, err, "Failed to update subarea", slog.String("subarea_id", subareaID))
		return nil, fmt.Errorf("failed to rename subarea %s: %w", subareaID, err)
	}

	return subarea, nil
}

// DeleteSubarea removes a single subarea.
func (s *TaxonomyService) DeleteSubarea(ctx context.Context, organizationID, subareaID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteSubarea(ctx, organizationID, subareaID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete subarea", slog.String("subarea_id", subareaID))
		}
		return err
	}

	s.LogInfo(ctx, "Law subarea deleted", slog.String("subarea_id", subareaID))
	return nil
}

// ListLookupItems retrieves one lookup table in name order.
func (s *TaxonomyService) ListLookupItems(ctx context.Context, organizationID string, kind domain.LookupKind, requestingUserID string) ([]domain.LookupItem, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	items, err := s.taxonomyRepo.ListLookupItems(ctx, organizationID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list lookup items", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if items == nil {
		return []domain.LookupItem{}, nil
	}
	return items, nil
}

// CreateLookupItem persists a new lookup entry.
func (s *TaxonomyService) CreateLookupItem(ctx context.Context, organizationID string, kind domain.LookupKind, name, creatorUserID string) (*domain.LookupItem, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	item := domain.LookupItem{
		ItemID:         uuid.NewString(),
		OrganizationID: organizationID,
		Kind:           kind,
		Name:           name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxonomyRepo.SaveLookupItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save lookup item", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to create %s entry: %w", kind, err)
	}

	s.LogInfo(ctx, "Lookup item created", slog.String("item_id", item.ItemID), slog.String("kind", string(kind)))
	return &item, nil
}

// RenameLookupItem changes a lookup entry's name.
func (s *TaxonomyService) RenameLookupItem(ctx context.Context, organizationID, itemID, name, requestingUserID string) (*domain.LookupItem, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	item, err := s.taxonomyRepo.FindLookupItemByID(ctx, organizationID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = requestingUserID

	if err := s.taxonomyRepo.UpdateLookupItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update lookup item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to rename lookup item %s: %w", itemID, err)
	}

	return item, nil
}

// DeleteLookupItem removes a lookup entry. Records referencing it keep the
// dangling ID; reports bucket them under "Outros".
func (s *TaxonomyService) DeleteLookupItem(ctx context.Context, organizationID, itemID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.taxonomyRepo.DeleteLookupItem(ctx, organizationID, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete lookup item", slog.String("item_id", itemID))
		}
		return err
	}

	s.LogInfo(ctx, "Lookup item deleted", slog.String("item_id", itemID))
	return nil
}
