package models

import "time"

// Organization is the tenant row every financial record hangs off.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// UserOrganization is the membership row linking a user to an organization.
type UserOrganization struct {
	UserID         string    `db:"user_id"`
	OrganizationID string    `db:"organization_id"`
	Role           string    `db:"role"`
	JoinedAt       time.Time `db:"joined_at"`
}
