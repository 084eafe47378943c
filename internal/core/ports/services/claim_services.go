package services

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
)

// ClaimReaderSvc defines read operations on expense claims, scoped to the viewer.
type ClaimReaderSvc interface {
	// GetClaim returns a claim the viewer may see.
	GetClaim(ctx context.Context, viewer domain.Identity, claimID string) (*domain.Claim, error)

	// ListClaims returns the viewer's visible claims that match the criteria.
	ListClaims(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) ([]domain.Claim, error)
}

// ClaimWriterSvc defines write operations on expense claims.
type ClaimWriterSvc interface {
	// SubmitClaim records a new pending claim owned by the submitter.
	SubmitClaim(ctx context.Context, submitter domain.Identity, req dto.CreateClaimRequest) (*domain.Claim, error)

	// UpdateClaim edits a pending claim. Only the owner may edit.
	UpdateClaim(ctx context.Context, editor domain.Identity, claimID string, req dto.UpdateClaimRequest) (*domain.Claim, error)

	// DeleteClaim removes a claim. Owners may delete pending claims; admins may delete any.
	// Unknown IDs are ignored.
	DeleteClaim(ctx context.Context, actor domain.Identity, claimID string) error
}

// ClaimApprovalSvc moves pending claims to a terminal status. Admin only.
type ClaimApprovalSvc interface {
	ApproveClaim(ctx context.Context, approver domain.Identity, claimID string) (*domain.Claim, error)
	RejectClaim(ctx context.Context, approver domain.Identity, claimID, reason string) (*domain.Claim, error)
}

// ClaimSvcFacade combines all claim-related service interfaces
type ClaimSvcFacade interface {
	ClaimReaderSvc
	ClaimWriterSvc
	ClaimApprovalSvc
}
