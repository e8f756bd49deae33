package dto

import "schoolhub/internal/app/models"

// RegisterRequest represents the request to create an admin account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}

// AuthResponse carries the token plus the authenticated account
type AuthResponse struct {
	Token TokenResponse     `json:"token"`
	User  *models.AdminUser `json:"user"`
}
