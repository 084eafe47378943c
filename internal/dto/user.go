package dto

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
)

// CreateUserRequest defines the data needed to create a new user. Every field is required.
type CreateUserRequest struct {
	ID           string      `json:"id" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	Email        string      `json:"email" binding:"required,email"`
	Password     string      `json:"password" binding:"required"`
	Role         domain.Role `json:"role" binding:"required,oneof=admin user"`
	Department   string      `json:"department" binding:"required"`
	Location     string      `json:"location" binding:"required"`
	LeaveBalance *int        `json:"leaveBalance" binding:"required,min=0"`
}

// UpdateUserRequest defines the profile fields an admin may change.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department" binding:"omitempty,min=1"`
	Location   *string `json:"location" binding:"omitempty,min=1"`
}

// SetUserActiveRequest activates or deactivates a user.
type SetUserActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ResetPasswordRequest sets a new password for a user.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Role   string `form:"role" binding:"omitempty,oneof=all admin user"`
	Search string `form:"search"`
	PageParams
}

// ToCriteria converts the params into user filters.
func (p ListUsersParams) ToCriteria() query.UserCriteria {
	return query.UserCriteria{Role: p.Role, Search: p.Search}
}

// UserResponse defines the user data returned by the API. It never includes credentials.
type UserResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Role              domain.Role `json:"role"`
	Department        string      `json:"department"`
	Location          string      `json:"location"`
	IsActive          bool        `json:"isActive"`
	LeaveBalanceTotal int         `json:"leaveBalanceTotal"`
	LeaveTaken        int         `json:"leaveTaken"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users     []UserResponse `json:"users"`
	NextToken string         `json:"nextToken,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		Department:        u.Department,
		Location:          u.Location,
		IsActive:          u.IsActive,
		LeaveBalanceTotal: u.LeaveBalanceTotal,
		LeaveTaken:        u.LeaveTaken,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User, nextToken string) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses, NextToken: nextToken}
}
