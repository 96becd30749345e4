package models

import "time"

// User is the account row of an authenticated back-office member.
type User struct {
	UserID                 string     `db:"user_id"`
	Name                   string     `db:"name"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	GoogleID               *string    `db:"google_id"`
	RefreshTokenHash       *string    `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	IsActive               bool       `db:"is_active"`
	AuditFields
}
