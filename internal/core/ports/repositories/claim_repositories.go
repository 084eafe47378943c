package repositories

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// ClaimReader defines read operations for expense claims
type ClaimReader interface {
	// FindClaimByID retrieves a claim. Returns apperrors.ErrNotFound if absent.
	FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error)

	// ListClaims returns every claim in insertion order.
	ListClaims(ctx context.Context) ([]domain.Claim, error)
}

// ClaimWriter defines write operations for expense claims
type ClaimWriter interface {
	// SaveClaim persists a new claim. Returns apperrors.ErrDuplicate if the ID is taken.
	SaveClaim(ctx context.Context, claim domain.Claim) error

	// UpdateClaim replaces an existing claim. Unknown IDs are ignored.
	UpdateClaim(ctx context.Context, claim domain.Claim) error

	// DeleteClaim removes a claim. Unknown IDs are ignored.
	DeleteClaim(ctx context.Context, claimID string) error

	// TransitionClaim replaces a claim only while the stored copy is still pending.
	// Returns apperrors.ErrNotFound if absent and apperrors.ErrInvalidTransition
	// if the claim was decided in the meantime.
	TransitionClaim(ctx context.Context, claim domain.Claim) error

	// DeletePendingClaim removes a claim only while it is pending. Unknown IDs
	// are ignored; decided claims return apperrors.ErrInvalidTransition.
	DeletePendingClaim(ctx context.Context, claimID string) error
}

// ClaimRepositoryFacade combines all claim-related repository interfaces
type ClaimRepositoryFacade interface {
	ClaimReader
	ClaimWriter
}
