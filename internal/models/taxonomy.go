package models

// LawArea is a top-level practice area row.
type LawArea struct {
	AreaID         string `db:"area_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	AuditFields
}

// LawSubarea is a practice subdivision row belonging to one area.
type LawSubarea struct {
	SubareaID      string `db:"subarea_id"`
	OrganizationID string `db:"organization_id"`
	AreaID         string `db:"area_id"`
	Name           string `db:"name"`
	AuditFields
}

// LookupItem is one entry of a flat per-organization lookup table.
type LookupItem struct {
	ItemID         string `db:"item_id"`
	OrganizationID string `db:"organization_id"`
	Kind           string `db:"kind"`
	Name           string `db:"name"`
	AuditFields
}
