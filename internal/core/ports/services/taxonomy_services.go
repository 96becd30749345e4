package services

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// LawAreaReaderSvc defines read operations for the area/subarea tree
type LawAreaReaderSvc interface {
	// GetAreaByID retrieves a law area with its subareas.
	GetAreaByID(ctx context.Context, organizationID, areaID, requestingUserID string) (*domain.LawArea, []domain.LawSubarea, error)

	// ListAreas retrieves all law areas of an organization with their subareas.
	ListAreas(ctx context.Context, organizationID, requestingUserID string) ([]domain.LawArea, map[string][]domain.LawSubarea, error)
}

// LawAreaWriterSvc defines write operations for the area/subarea tree
type LawAreaWriterSvc interface {
	// CreateArea persists a new law area.
	CreateArea(ctx context.Context, organizationID, name, creatorUserID string) (*domain.LawArea, error)

	// RenameArea changes an area's name.
	RenameArea(ctx context.Context, organizationID, areaID, name, requestingUserID string) (*domain.LawArea, error)

	// DeleteArea removes an area and all of its subareas.
	DeleteArea(ctx context.Context, organizationID, areaID, requestingUserID string) error

	// CreateSubarea persists a new subarea under an existing area.
	CreateSubarea(ctx context.Context, organizationID, areaID, name, creatorUserID string) (*domain.LawSubarea, error)

	// RenameSubarea changes a subarea's name.
	RenameSubarea(ctx context.Context, organizationID, subareaID, name, requestingUserID string) (*domain.LawSubarea, error)

	// DeleteSubarea removes a single subarea.
	DeleteSubarea(ctx context.Context, organizationID, subareaID, requestingUserID string) error
}

// LookupSvc defines operations for the flat lookup tables
type LookupSvc interface {
	// ListLookupItems retrieves one lookup table in name order.
	ListLookupItems(ctx context.Context, organizationID string, kind domain.LookupKind, requestingUserID string) ([]domain.LookupItem, error)

	// CreateLookupItem persists a new lookup entry.
	CreateLookupItem(ctx context.Context, organizationID string, kind domain.LookupKind, name, creatorUserID string) (*domain.LookupItem, error)

	// RenameLookupItem changes a lookup entry's name.
	RenameLookupItem(ctx context.Context, organizationID, itemID, name, requestingUserID string) (*domain.LookupItem, error)

	// DeleteLookupItem removes a lookup entry.
	DeleteLookupItem(ctx context.Context, organizationID, itemID, requestingUserID string) error
}

// TaxonomySvcFacade combines the area, subarea and lookup service interfaces
type TaxonomySvcFacade interface {
	LawAreaReaderSvc
	LawAreaWriterSvc
	LookupSvc
}
