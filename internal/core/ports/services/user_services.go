package services

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns users matching the criteria, in insertion order.
	ListUsers(ctx context.Context, criteria query.UserCriteria) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data. Callers must be admins.
type UserWriterSvc interface {
	// CreateUser creates a new user and their leave balance.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser changes profile fields of an existing user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// SetUserActive activates or deactivates a user.
	SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error)

	// ResetPassword replaces a user's password.
	ResetPassword(ctx context.Context, userID, password string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user. Records they own are kept. Unknown IDs are ignored.
	DeleteUser(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
