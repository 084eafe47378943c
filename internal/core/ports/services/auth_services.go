package services

import (
	"context"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// SessionSvcFacade owns login sessions: who is logged in under which
// session and whether they are an admin.
type SessionSvcFacade interface {
	// Login checks the id/password pair against active users, opens a new
	// session for the identity and returns it. Any failure is
	// apperrors.ErrInvalidCredentials.
	Login(ctx context.Context, userID, password string) (*domain.Session, error)

	// Logout ends the session. Unknown sessions are ignored.
	Logout(ctx context.Context, sessionID string) error

	// Current returns the identity stored for the session, or
	// apperrors.ErrUnauthorized if the session is unknown or has ended.
	Current(ctx context.Context, sessionID string) (*domain.Identity, error)

	// Resolve maps the session and user ID carried in a token to a live
	// identity. It fails with apperrors.ErrUnauthorized when the session has
	// ended, belongs to another user, or the user is unknown or deactivated.
	Resolve(ctx context.Context, sessionID, userID string) (*domain.Identity, error)

	// IsAdmin reports whether the identity holds the admin role.
	IsAdmin(identity domain.Identity) bool
}

// TokenSvcFacade issues access tokens for login sessions.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token naming the session.
	GenerateAccessToken(ctx context.Context, session domain.Session) (string, time.Time, error)
}
