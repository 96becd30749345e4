package dto

import "time"

// RegisterRequest defines data for creating a user account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token presented for rotation.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleTokenRequest carries a Google ID token obtained by the client.
type GoogleTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// TokenPairResponse is returned by login, registration, refresh and the
// Google callback.
type TokenPairResponse struct {
	UserID             string    `json:"userID"`
	AccessToken        string    `json:"accessToken"`
	AccessTokenExpiry  time.Time `json:"accessTokenExpiry"`
	RefreshToken       string    `json:"refreshToken"`
	RefreshTokenExpiry time.Time `json:"refreshTokenExpiry"`
}
