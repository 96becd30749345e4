package domain

import "time"

// User represents an authenticated member of the back office.
type User struct {
	UserID                 string     `json:"userID"` // Primary key (UUID)
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	PasswordHash           string     `json:"-"` // Never serialized
	GoogleID               *string    `json:"-"` // Set when the account signed up via Google
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	IsActive               bool       `json:"isActive"`
	AuditFields
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
