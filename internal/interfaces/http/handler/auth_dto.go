package handler

import (
	"github.com/google/uuid"
	identityapp "github.com/inventorydb/backend/internal/application/identity"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
)

// =====================
// Admin Request DTOs
// =====================

// RegisterAdminRequest represents the request body for creating an administrator
type RegisterAdminRequest struct {
	Email     string `json:"email" binding:"required,email,max=254" example:"ada@example.com"`
	Password  string `json:"password" binding:"required,max=72" example:"s3cret-pass"`
	FirstName string `json:"first_name" binding:"required,max=100" example:"Ada"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Lovelace"`
}

// TokenRequest is the form-encoded password grant accepted by /token.
// Username carries the administrator's email.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UpdateInfoRequest represents the request body for updating an administrator's names
type UpdateInfoRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,max=100" example:"Ada"`
	LastName  string `json:"last_name" binding:"omitempty,max=100" example:"Byron"`
}

// ChangePasswordRequest represents the request body for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,max=72"`
}

// =====================
// Admin Response DTOs
// =====================

// TokenResponse represents the body returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"1800"`
}

// AdminResponse represents an administrator on the wire. It has no password field.
type AdminResponse struct {
	ID        uuid.UUID     `json:"id"`
	Created   dto.Timestamp `json:"created"`
	Updated   dto.Timestamp `json:"updated"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
}

func toAdminResponse(a *identityapp.AdminResponse) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Created:   dto.NewTimestamp(a.CreatedAt),
		Updated:   dto.NewTimestamp(a.UpdatedAt),
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func toTokenResponse(r *identityapp.LoginResult) TokenResponse {
	return TokenResponse{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
	}
}
