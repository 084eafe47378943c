package repositories

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// LeaveRequestReader defines read operations for leave requests
type LeaveRequestReader interface {
	// FindLeaveRequestByID retrieves a request. Returns apperrors.ErrNotFound if absent.
	FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error)

	// ListLeaveRequests returns every request in insertion order.
	ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)
}

// LeaveRequestWriter defines write operations for leave requests
type LeaveRequestWriter interface {
	SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) error
	UpdateLeaveRequest(ctx context.Context, request domain.LeaveRequest) error
	DeleteLeaveRequest(ctx context.Context, requestID string) error

	// TransitionLeaveRequest replaces a request only while the stored copy is
	// still pending. Returns apperrors.ErrNotFound if absent and
	// apperrors.ErrInvalidTransition if it was decided in the meantime.
	TransitionLeaveRequest(ctx context.Context, request domain.LeaveRequest) error

	// DeletePendingLeaveRequest removes a request only while it is pending.
	// Unknown IDs are ignored; decided requests return apperrors.ErrInvalidTransition.
	DeletePendingLeaveRequest(ctx context.Context, requestID string) error
}

// LeaveRequestRepositoryFacade combines all leave request repository interfaces
type LeaveRequestRepositoryFacade interface {
	LeaveRequestReader
	LeaveRequestWriter
}

// LeaveBalanceRepositoryFacade stores one leave ledger row per user.
type LeaveBalanceRepositoryFacade interface {
	// FindLeaveBalance returns the user's balance. Returns apperrors.ErrNotFound if absent.
	FindLeaveBalance(ctx context.Context, userID string) (*domain.LeaveBalance, error)

	// ListLeaveBalances returns every balance in insertion order.
	ListLeaveBalances(ctx context.Context) ([]domain.LeaveBalance, error)

	// SaveLeaveBalance inserts the balance, or replaces it if the user already has one.
	SaveLeaveBalance(ctx context.Context, balance domain.LeaveBalance) error

	// ApplyLeaveBalanceUpdate overwrites the named fields of the user's balance in
	// one step, opening a zero row first if the user has none.
	ApplyLeaveBalanceUpdate(ctx context.Context, userID string, update domain.LeaveBalanceUpdate) (*domain.LeaveBalance, error)

	// DeleteLeaveBalance removes the user's balance. Unknown users are ignored.
	DeleteLeaveBalance(ctx context.Context, userID string) error
}

// LeaveApprovalRecorder settles an approval as one unit: the stored request
// moves from pending to approved and its inclusive day count is added to the
// owner's used days. A missing balance row is opened at zero. Nothing changes
// when it fails.
type LeaveApprovalRecorder interface {
	// RecordLeaveApproval returns apperrors.ErrNotFound if the request is absent
	// and apperrors.ErrInvalidTransition if it is no longer pending.
	RecordLeaveApproval(ctx context.Context, approved domain.LeaveRequest) (*domain.LeaveBalance, error)
}
