package repositories

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// LawAreaReader defines read operations for law areas and subareas
type LawAreaReader interface {
	// FindAreaByID retrieves a specific law area by its ID.
	FindAreaByID(ctx context.Context, organizationID, areaID string) (*domain.LawArea, error)

	// ListAreas retrieves all law areas of an organization in name order.
	ListAreas(ctx context.Context, organizationID string) ([]domain.LawArea, error)

	// FindSubareaByID retrieves a specific subarea by its ID.
	FindSubareaByID(ctx context.Context, organizationID, subareaID string) (*domain.LawSubarea, error)

	// ListSubareas retrieves all subareas of an organization in name order.
	ListSubareas(ctx context.Context, organizationID string) ([]domain.LawSubarea, error)

	// ListSubareasByArea retrieves the subareas belonging to one area.
	ListSubareasByArea(ctx context.Context, organizationID, areaID string) ([]domain.LawSubarea, error)
}

// LawAreaWriter defines write operations for law areas and subareas
type LawAreaWriter interface {
	// SaveArea persists a new law area.
	SaveArea(ctx context.Context, area domain.LawArea) error

	// UpdateArea persists changes to an existing law area.
	UpdateArea(ctx context.Context, area domain.LawArea) error

	// DeleteSubareasByArea removes every subarea of an area.
	DeleteSubareasByArea(ctx context.Context, organizationID, areaID string) error

	// DeleteArea removes a law area row. Callers delete the subareas first.
	DeleteArea(ctx context.Context, organizationID, areaID string) error

	// SaveSubarea persists a new subarea.
	SaveSubarea(ctx context.Context, subarea domain.LawSubarea) error

	// UpdateSubarea persists changes to an existing subarea.
	UpdateSubarea(ctx context.Context, subarea domain.LawSubarea) error

	// DeleteSubarea removes a single subarea.
	DeleteSubarea(ctx context.Context, organizationID, subareaID string) error
}

// LookupReader defines read operations for the flat lookup tables
type LookupReader interface {
	// FindLookupItemByID retrieves a lookup entry by its ID.
	FindLookupItemByID(ctx context.Context, organizationID, itemID string) (*domain.LookupItem, error)

	// ListLookupItems retrieves the entries of one lookup table in name order.
	ListLookupItems(ctx context.Context, organizationID string, kind domain.LookupKind) ([]domain.LookupItem, error)
}

// LookupWriter defines write operations for the flat lookup tables
type LookupWriter interface {
	// SaveLookupItem persists a new lookup entry.
	SaveLookupItem(ctx context.Context, item domain.LookupItem) error

	// UpdateLookupItem persists changes to an existing lookup entry.
	UpdateLookupItem(ctx context.Context, item domain.LookupItem) error

	// DeleteLookupItem removes a lookup entry.
	DeleteLookupItem(ctx context.Context, organizationID, itemID string) error
}

// TaxonomyRepositoryFacade combines the area, subarea and lookup repository interfaces
type TaxonomyRepositoryFacade interface {
	LawAreaReader
	LawAreaWriter
	LookupReader
	LookupWriter
}
