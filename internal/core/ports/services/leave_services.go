package services

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
)

// LeaveRequestSvc covers the leave request lifecycle.
type LeaveRequestSvc interface {
	RequestLeave(ctx context.Context, requester domain.Identity, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, viewer domain.Identity, requestID string) (*domain.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, viewer domain.Identity, criteria query.LeaveCriteria) ([]domain.LeaveRequest, error)

	// CancelLeaveRequest deletes a pending request. Owners and admins only. Unknown IDs are ignored.
	CancelLeaveRequest(ctx context.Context, actor domain.Identity, requestID string) error

	// ApproveLeaveRequest approves a pending request and adds its days to the owner's used balance.
	ApproveLeaveRequest(ctx context.Context, approver domain.Identity, requestID string) (*domain.LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, approver domain.Identity, requestID, reason string) (*domain.LeaveRequest, error)
}

// LeaveBalanceSvc reads and adjusts the per-user leave ledger.
type LeaveBalanceSvc interface {
	// GetBalance returns a user's balance. Non-admins may only read their own.
	GetBalance(ctx context.Context, viewer domain.Identity, userID string) (*domain.LeaveBalance, error)

	// ListBalances returns every balance. Admin only.
	ListBalances(ctx context.Context, viewer domain.Identity) ([]domain.LeaveBalance, error)

	// UpdateBalance overwrites only the given fields. Admin only.
	UpdateBalance(ctx context.Context, admin domain.Identity, userID string, update domain.LeaveBalanceUpdate) (*domain.LeaveBalance, error)
}

// LeaveSvcFacade combines all leave-related service interfaces
type LeaveSvcFacade interface {
	LeaveRequestSvc
	LeaveBalanceSvc
}
