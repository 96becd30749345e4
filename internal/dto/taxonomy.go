package dto

import (
	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// CreateAreaRequest defines data for creating a law area.
type CreateAreaRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateAreaRequest defines the mutable law area fields.
type UpdateAreaRequest struct {
	Name *string `json:"name"`
}

// CreateSubareaRequest defines data for creating a subarea under an area.
type CreateSubareaRequest struct {
	AreaID string `json:"areaID" binding:"required"`
	Name   string `json:"name" binding:"required,max=100"`
}

// UpdateSubareaRequest defines the mutable subarea fields.
type UpdateSubareaRequest struct {
	Name *string `json:"name"`
}

// SubareaResponse defines data returned for a subarea.
type SubareaResponse struct {
	SubareaID string `json:"subareaID"`
	AreaID    string `json:"areaID"`
	Name      string `json:"name"`
}

// ToSubareaResponse converts domain.LawSubarea to DTO.
func ToSubareaResponse(s *domain.LawSubarea) SubareaResponse {
	return SubareaResponse{SubareaID: s.SubareaID, AreaID: s.AreaID, Name: s.Name}
}

// AreaResponse defines data returned for a law area with its subareas.
type AreaResponse struct {
	AreaID   string            `json:"areaID"`
	Name     string            `json:"name"`
	Subareas []SubareaResponse `json:"subareas"`
}

// ToAreaResponse converts domain.LawArea plus its subareas to DTO.
func ToAreaResponse(a *domain.LawArea, subareas []domain.LawSubarea) AreaResponse {
	subs := make([]SubareaResponse, 0, len(subareas))
	for i := range subareas {
		subs = append(subs, ToSubareaResponse(&subareas[i]))
	}
	return AreaResponse{AreaID: a.AreaID, Name: a.Name, Subareas: subs}
}

// ListAreasResponse wraps the area tree of an organization.
type ListAreasResponse struct {
	Areas []AreaResponse `json:"areas"`
}

// CreateLookupItemRequest defines data for creating a lookup entry.
type CreateLookupItemRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateLookupItemRequest defines the mutable lookup entry fields.
type UpdateLookupItemRequest struct {
	Name *string `json:"name"`
}

// LookupItemResponse defines data returned for a lookup entry.
type LookupItemResponse struct {
	ItemID string            `json:"itemID"`
	Kind   domain.LookupKind `json:"kind"`
	Name   string            `json:"name"`
}

// ToLookupItemResponse converts domain.LookupItem to DTO.
func ToLookupItemResponse(item *domain.LookupItem) LookupItemResponse {
	return LookupItemResponse{ItemID: item.ItemID, Kind: item.Kind, Name: item.Name}
}

// ListLookupItemsResponse wraps one lookup table.
type ListLookupItemsResponse struct {
	Items []LookupItemResponse `json:"items"`
}

// ToListLookupItemsResponse converts a slice of lookup entries to DTO.
func ToListLookupItemsResponse(items []domain.LookupItem) ListLookupItemsResponse {
	list := make([]LookupItemResponse, len(items))
	for i := range items {
		list[i] = ToLookupItemResponse(&items[i])
	}
	return ListLookupItemsResponse{Items: list}
}
