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
)

type leaveService struct {
	BaseService
	requestRepo portsrepo.LeaveRequestRepositoryFacade
	balanceRepo portsrepo.LeaveBalanceRepositoryFacade
	approvals   portsrepo.LeaveApprovalRecorder
	userRepo    portsrepo.UserReader
}

// NewLeaveService creates the leave service, which owns both requests and the balance ledger.
func NewLeaveService(
	requestRepo portsrepo.LeaveRequestRepositoryFacade,
	balanceRepo portsrepo.LeaveBalanceRepositoryFacade,
	approvals portsrepo.LeaveApprovalRecorder,
	userRepo portsrepo.UserReader,
	opts ...Option,
) portssvc.LeaveSvcFacade {
	return &leaveService{
		BaseService: newBaseService(opts),
		requestRepo: requestRepo,
		balanceRepo: balanceRepo,
		approvals:   approvals,
		userRepo:    userRepo,
	}
}

func (s *leaveService) RequestLeave(ctx context.Context, requester domain.Identity, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	leaveType := domain.LeaveType(req.LeaveType)
	if !leaveType.IsValid() {
		return nil, invalid("unknown leave type %q", req.LeaveType)
	}
	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, invalid("startDate must be YYYY-MM-DD")
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return nil, invalid("endDate must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, invalid("endDate cannot be before startDate")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, invalid("reason is required")
	}

	request := domain.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    requester.ID,
		UserName:  requester.Name,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    domain.StatusPending,
		CreatedAt: s.Now(),
	}
	if err := s.requestRepo.SaveLeaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save leave request", slog.String("user_id", requester.ID))
		return nil, fmt.Errorf("failed to request leave: %w", err)
	}

	s.LogInfo(ctx, "Leave requested",
		slog.String("leave_request_id", request.ID),
		slog.String("leave_type", string(leaveType)),
		slog.Int("days", request.Days()))
	return &request, nil
}

func (s *leaveService) GetLeaveRequest(ctx context.Context, viewer domain.Identity, requestID string) (*domain.LeaveRequest, error) {
	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request %s: %w", requestID, err)
	}
	if !query.CanView(*request, viewer) {
		return nil, fmt.Errorf("failed to get leave request %s: %w", requestID, apperrors.ErrNotFound)
	}
	return request, nil
}

func (s *leaveService) ListLeaveRequests(ctx context.Context, viewer domain.Identity, criteria query.LeaveCriteria) ([]domain.LeaveRequest, error) {
	requests, err := s.requestRepo.ListLeaveRequests(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave requests")
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return query.Filter(query.Visible(requests, viewer), criteria.Predicates()...), nil
}

func (s *leaveService) CancelLeaveRequest(ctx context.Context, actor domain.Identity, requestID string) error {
	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get leave request %s: %w", requestID, err)
	}
	if !actor.IsAdmin() && request.UserID != actor.ID {
		return apperrors.ErrForbidden
	}
	if err := s.requestRepo.DeletePendingLeaveRequest(ctx, requestID); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to cancel leave request", slog.String("leave_request_id", requestID))
		}
		return fmt.Errorf("failed to cancel leave request %s: %w", requestID, err)
	}
	return nil
}

// ApproveLeaveRequest charges the request's inclusive day count to the owner's ledger.
// The status change and the charge are recorded together, so a request is
// charged at most once however many approvals race for it.
func (s *leaveService) ApproveLeaveRequest(ctx context.Context, approver domain.Identity, requestID string) (*domain.LeaveRequest, error) {
	request, err := s.pendingRequest(ctx, approver, requestID)
	if err != nil {
		return nil, err
	}

	approvedAt := s.Now()
	request.Status = domain.StatusApproved
	request.ApprovedBy = &approver.Name
	request.ApprovedAt = &approvedAt
	request.RejectionReason = nil
	balance, err := s.approvals.RecordLeaveApproval(ctx, *request)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to record leave approval", slog.String("leave_request_id", requestID))
		}
		return nil, fmt.Errorf("failed to approve leave request %s: %w", requestID, err)
	}

	s.LogInfo(ctx, "Leave approved",
		slog.String("leave_request_id", requestID),
		slog.Int("days", request.Days()),
		slog.Int("available", balance.Available()))
	return request, nil
}

func (s *leaveService) RejectLeaveRequest(ctx context.Context, approver domain.Identity, requestID, reason string) (*domain.LeaveRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, invalid("a rejection reason is required")
	}
	request, err := s.pendingRequest(ctx, approver, requestID)
	if err != nil {
		return nil, err
	}

	request.Status = domain.StatusRejected
	request.RejectionReason = &reason
	if err := s.requestRepo.TransitionLeaveRequest(ctx, *request); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to store leave rejection", slog.String("leave_request_id", requestID))
		}
		return nil, fmt.Errorf("failed to reject leave request %s: %w", requestID, err)
	}
	s.LogInfo(ctx, "Leave rejected", slog.String("leave_request_id", requestID))
	return request, nil
}

// pendingRequest is a fast pre-check; the repository re-checks the status when writing.
func (s *leaveService) pendingRequest(ctx context.Context, approver domain.Identity, requestID string) (*domain.LeaveRequest, error) {
	if err := s.RequireAdmin(ctx, approver, "decide leave request"); err != nil {
		return nil, err
	}
	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request %s: %w", requestID, err)
	}
	if request.Status != domain.StatusPending {
		return nil, fmt.Errorf("leave request %s is already %s: %w", requestID, request.Status, apperrors.ErrInvalidTransition)
	}
	return request, nil
}

func (s *leaveService) GetBalance(ctx context.Context, viewer domain.Identity, userID string) (*domain.LeaveBalance, error) {
	if !viewer.IsAdmin() && viewer.ID != userID {
		return nil, apperrors.ErrForbidden
	}
	balance, err := s.balanceRepo.FindLeaveBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balance for %s: %w", userID, err)
	}
	return balance, nil
}

func (s *leaveService) ListBalances(ctx context.Context, viewer domain.Identity) ([]domain.LeaveBalance, error) {
	if err := s.RequireAdmin(ctx, viewer, "list leave balances"); err != nil {
		return nil, err
	}
	balances, err := s.balanceRepo.ListLeaveBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave balances")
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	return balances, nil
}

// UpdateBalance overwrites only the named fields. Total is never recomputed
// from the per-type figures.
func (s *leaveService) UpdateBalance(ctx context.Context, admin domain.Identity, userID string, update domain.LeaveBalanceUpdate) (*domain.LeaveBalance, error) {
	if err := s.RequireAdmin(ctx, admin, "update leave balance"); err != nil {
		return nil, err
	}
	for _, v := range []*int{update.Annual, update.Sick, update.Personal, update.Compensatory, update.Total, update.Used} {
		if v != nil && *v < 0 {
			return nil, invalid("balance figures cannot be negative")
		}
	}

	_, err := s.balanceRepo.FindLeaveBalance(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		if _, userErr := s.userRepo.FindUserByID(ctx, userID); userErr != nil {
			return nil, fmt.Errorf("failed to get user %s: %w", userID, userErr)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get leave balance for %s: %w", userID, err)
	}

	updated, err := s.balanceRepo.ApplyLeaveBalanceUpdate(ctx, userID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to save leave balance", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save leave balance for %s: %w", userID, err)
	}

	s.LogInfo(ctx, "Leave balance updated",
		slog.String("target_user_id", userID),
		slog.Int("total", updated.Total),
		slog.Int("used", updated.Used))
	return updated, nil
}
