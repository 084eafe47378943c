package memory

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
)

// ClaimRepository keeps expense claims in memory.
type ClaimRepository struct {
	rows *table[domain.Claim]
}

// NewClaimRepository creates an empty claim repository.
func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{rows: newTable(func(c domain.Claim) string { return c.ID })}
}

var _ portsrepo.ClaimRepositoryFacade = (*ClaimRepository)(nil)

func (r *ClaimRepository) FindClaimByID(_ context.Context, claimID string) (*domain.Claim, error) {
	c, ok := r.rows.get(claimID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *ClaimRepository) ListClaims(_ context.Context) ([]domain.Claim, error) {
	return r.rows.all(), nil
}

func (r *ClaimRepository) SaveClaim(_ context.Context, claim domain.Claim) error {
	return r.rows.insert(claim)
}

func (r *ClaimRepository) UpdateClaim(_ context.Context, claim domain.Claim) error {
	r.rows.replace(claim)
	return nil
}

func (r *ClaimRepository) DeleteClaim(_ context.Context, claimID string) error {
	r.rows.remove(claimID)
	return nil
}

func (r *ClaimRepository) TransitionClaim(_ context.Context, claim domain.Claim) error {
	_, err := r.rows.mutate(claim.ID, func(current domain.Claim, exists bool) (domain.Claim, error) {
		if !exists {
			return current, apperrors.ErrNotFound
		}
		if err := stillPending(current.ID, current.Status); err != nil {
			return current, err
		}
		return claim, nil
	})
	return err
}

func (r *ClaimRepository) DeletePendingClaim(_ context.Context, claimID string) error {
	return r.rows.removeIf(claimID, func(current domain.Claim) error {
		return stillPending(current.ID, current.Status)
	})
}
