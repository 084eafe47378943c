package dto

import (
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IdentityResponse is the logged-in user as returned to clients.
type IdentityResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	Department string      `json:"department"`
	Location   string      `json:"location"`
	IsAdmin    bool        `json:"isAdmin"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      IdentityResponse `json:"user"`
}

// ToIdentityResponse converts a domain.Identity to IdentityResponse DTO
func ToIdentityResponse(i domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Role:       i.Role,
		Department: i.Department,
		Location:   i.Location,
		IsAdmin:    i.IsAdmin(),
	}
}
