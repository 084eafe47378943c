package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type claimService struct {
	BaseService
	claimRepo   portsrepo.ClaimRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewClaimService creates a claim service. Claims must be booked against a known project.
func NewClaimService(claimRepo portsrepo.ClaimRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, opts ...Option) portssvc.ClaimSvcFacade {
	return &claimService{
		BaseService: newBaseService(opts),
		claimRepo:   claimRepo,
		projectRepo: projectRepo,
	}
}

// GetClaim hides claims the viewer may not see behind apperrors.ErrNotFound.
func (s *claimService) GetClaim(ctx context.Context, viewer domain.Identity, claimID string) (*domain.Claim, error) {
	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim %s: %w", claimID, err)
	}
	if !query.CanView(*claim, viewer) {
		return nil, fmt.Errorf("failed to get claim %s: %w", claimID, apperrors.ErrNotFound)
	}
	return claim, nil
}

func (s *claimService) ListClaims(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) ([]domain.Claim, error) {
	claims, err := s.claimRepo.ListClaims(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list claims")
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return query.Filter(query.Visible(claims, viewer), criteria.Predicates()...), nil
}

func (s *claimService) SubmitClaim(ctx context.Context, submitter domain.Identity, req dto.CreateClaimRequest) (*domain.Claim, error) {
	if !domain.IsClaimCategory(req.Category) {
		return nil, invalid("unknown claim category %q", req.Category)
	}
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, invalid("description is required")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, invalid("date must be YYYY-MM-DD")
	}
	if err := s.checkProject(ctx, req.Project); err != nil {
		return nil, err
	}

	claim := domain.Claim{
		ID:          uuid.NewString(),
		UserID:      submitter.ID,
		UserName:    submitter.Name,
		Category:    req.Category,
		Amount:      *req.Amount,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Status:      domain.StatusPending,
		ReceiptURL:  req.ReceiptURL,
		Project:     req.Project,
	}
	if err := s.claimRepo.SaveClaim(ctx, claim); err != nil {
		s.LogError(ctx, err, "Failed to save claim", slog.String("claim_id", claim.ID))
		return nil, fmt.Errorf("failed to submit claim: %w", err)
	}

	s.LogInfo(ctx, "Claim submitted",
		slog.String("claim_id", claim.ID),
		slog.String("category", claim.Category),
		slog.String("amount", claim.Amount.String()))
	return &claim, nil
}

func (s *claimService) UpdateClaim(ctx context.Context, editor domain.Identity, claimID string, req dto.UpdateClaimRequest) (*domain.Claim, error) {
	claim, err := s.GetClaim(ctx, editor, claimID)
	if err != nil {
		return nil, err
	}
	if claim.UserID != editor.ID {
		return nil, apperrors.ErrForbidden
	}
	if claim.Status != domain.StatusPending {
		return nil, fmt.Errorf("claim %s is %s: %w", claimID, claim.Status, apperrors.ErrInvalidTransition)
	}

	if req.Category != nil {
		if !domain.IsClaimCategory(*req.Category) {
			return nil, invalid("unknown claim category %q", *req.Category)
		}
		claim.Category = *req.Category
	}
	if req.Amount != nil {
		if err := checkAmount(req.Amount); err != nil {
			return nil, err
		}
		claim.Amount = *req.Amount
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, invalid("description cannot be empty")
		}
		claim.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return nil, invalid("date must be YYYY-MM-DD")
		}
		claim.Date = date
	}
	if req.Project != nil {
		if err := s.checkProject(ctx, *req.Project); err != nil {
			return nil, err
		}
		claim.Project = *req.Project
	}
	if req.ReceiptURL != nil {
		claim.ReceiptURL = req.ReceiptURL
	}

	if err := s.claimRepo.TransitionClaim(ctx, *claim); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to update claim", slog.String("claim_id", claimID))
		}
		return nil, fmt.Errorf("failed to update claim %s: %w", claimID, err)
	}
	return claim, nil
}

func (s *claimService) DeleteClaim(ctx context.Context, actor domain.Identity, claimID string) error {
	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get claim %s: %w", claimID, err)
	}
	remove := s.claimRepo.DeleteClaim
	if !actor.IsAdmin() {
		if claim.UserID != actor.ID {
			return apperrors.ErrForbidden
		}
		remove = s.claimRepo.DeletePendingClaim
	}

	if err := remove(ctx, claimID); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to delete claim", slog.String("claim_id", claimID))
		}
		return fmt.Errorf("failed to delete claim %s: %w", claimID, err)
	}
	s.LogInfo(ctx, "Claim deleted", slog.String("claim_id", claimID))
	return nil
}

func (s *claimService) ApproveClaim(ctx context.Context, approver domain.Identity, claimID string) (*domain.Claim, error) {
	return s.decide(ctx, approver, claimID, func(c *domain.Claim) {
		approvedAt := s.Now()
		c.Status = domain.StatusApproved
		c.ApprovedBy = &approver.Name
		c.ApprovedAt = &approvedAt
		c.RejectedReason = nil
	})
}

func (s *claimService) RejectClaim(ctx context.Context, approver domain.Identity, claimID, reason string) (*domain.Claim, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, invalid("a rejection reason is required")
	}
	return s.decide(ctx, approver, claimID, func(c *domain.Claim) {
		c.Status = domain.StatusRejected
		c.RejectedReason = &reason
	})
}

// decide applies a terminal status change to a pending claim. The repository
// refuses the write if another decision landed first.
func (s *claimService) decide(ctx context.Context, approver domain.Identity, claimID string, apply func(*domain.Claim)) (*domain.Claim, error) {
	if err := s.RequireAdmin(ctx, approver, "decide claim"); err != nil {
		return nil, err
	}
	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim %s: %w", claimID, err)
	}
	if claim.Status != domain.StatusPending {
		return nil, fmt.Errorf("claim %s is already %s: %w", claimID, claim.Status, apperrors.ErrInvalidTransition)
	}

	apply(claim)
	if err := s.claimRepo.TransitionClaim(ctx, *claim); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to store claim decision", slog.String("claim_id", claimID))
		}
		return nil, fmt.Errorf("failed to update claim %s: %w", claimID, err)
	}

	s.LogInfo(ctx, "Claim decided",
		slog.String("claim_id", claimID),
		slog.String("status", string(claim.Status)),
		slog.String("owner_id", claim.UserID))
	return claim, nil
}

func (s *claimService) checkProject(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("project is required")
	}
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range projects {
		if p.Name == name {
			return nil
		}
	}
	return invalid("unknown project %q", name)
}

func checkAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return invalid("amount is required")
	}
	if amount.IsNegative() {
		return invalid("amount cannot be negative")
	}
	return nil
}
