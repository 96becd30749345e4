package domain

// LawArea is a top-level practice area of the office (e.g. labor, tax).
type LawArea struct {
	AreaID         string `json:"areaID"` // Primary key (UUID)
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	AuditFields
}

// LawSubarea is a practice subdivision belonging to exactly one LawArea.
// Deleting an area cascades to its subareas.
type LawSubarea struct {
	SubareaID      string `json:"subareaID"` // Primary key (UUID)
	OrganizationID string `json:"organizationID"`
	AreaID         string `json:"areaID"`
	Name           string `json:"name"`
	AuditFields
}

// LookupKind identifies one of the flat per-organization lookup tables.
type LookupKind string

const (
	LookupHonorariumType  LookupKind = "honorarium_types"
	LookupClientOrigin    LookupKind = "client_origins"
	LookupPaymentMethod   LookupKind = "payment_methods"
	LookupExpenseCategory LookupKind = "expense_categories"
)

// LookupItem is a single entry of a lookup table (honorarium type, client
// origin, payment method or expense category).
type LookupItem struct {
	ItemID         string     `json:"itemID"` // Primary key (UUID)
	OrganizationID string     `json:"organizationID"`
	Kind           LookupKind `json:"kind"`
	Name           string     `json:"name"`
	AuditFields
}
