package dto

import "github.com/devansh/hostelhub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64        `json:"expiresIn"`
	User        *models.User `json:"user"`
}

// UpdateUserStatusRequest carries an account activation change
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RegisterUserRequest represents the admin-driven user creation request
type RegisterUserRequest struct {
	FullName string          `json:"full_name" binding:"required"`
	Email    string          `json:"email" binding:"required"`
	Phone    string          `json:"phone" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role"`
}
