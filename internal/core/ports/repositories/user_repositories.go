package repositories

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	// Returns apperrors.ErrNotFound if no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns every user in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate if the ID is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser replaces an existing user. Unknown IDs are ignored.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user. Unknown IDs are ignored. Records owned by
	// the user are left in place.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
