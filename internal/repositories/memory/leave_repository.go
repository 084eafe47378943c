package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
)

// LeaveRequestRepository keeps leave requests in memory.
type LeaveRequestRepository struct {
	rows *table[domain.LeaveRequest]
}

// NewLeaveRequestRepository creates an empty leave request repository.
func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{rows: newTable(func(l domain.LeaveRequest) string { return l.ID })}
}

var _ portsrepo.LeaveRequestRepositoryFacade = (*LeaveRequestRepository)(nil)

func (r *LeaveRequestRepository) FindLeaveRequestByID(_ context.Context, requestID string) (*domain.LeaveRequest, error) {
	l, ok := r.rows.get(requestID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (r *LeaveRequestRepository) ListLeaveRequests(_ context.Context) ([]domain.LeaveRequest, error) {
	return r.rows.all(), nil
}

func (r *LeaveRequestRepository) SaveLeaveRequest(_ context.Context, request domain.LeaveRequest) error {
	return r.rows.insert(request)
}

func (r *LeaveRequestRepository) UpdateLeaveRequest(_ context.Context, request domain.LeaveRequest) error {
	r.rows.replace(request)
	return nil
}

func (r *LeaveRequestRepository) DeleteLeaveRequest(_ context.Context, requestID string) error {
	r.rows.remove(requestID)
	return nil
}

func (r *LeaveRequestRepository) TransitionLeaveRequest(_ context.Context, request domain.LeaveRequest) error {
	_, err := r.rows.mutate(request.ID, func(current domain.LeaveRequest, exists bool) (domain.LeaveRequest, error) {
		if !exists {
			return current, apperrors.ErrNotFound
		}
		if err := stillPending(current.ID, current.Status); err != nil {
			return current, err
		}
		return request, nil
	})
	return err
}

func (r *LeaveRequestRepository) DeletePendingLeaveRequest(_ context.Context, requestID string) error {
	return r.rows.removeIf(requestID, func(current domain.LeaveRequest) error {
		return stillPending(current.ID, current.Status)
	})
}

// LeaveBalanceRepository keeps one leave balance per user in memory.
type LeaveBalanceRepository struct {
	rows *table[domain.LeaveBalance]
}

// NewLeaveBalanceRepository creates an empty leave balance repository.
func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{rows: newTable(func(b domain.LeaveBalance) string { return b.UserID })}
}

var _ portsrepo.LeaveBalanceRepositoryFacade = (*LeaveBalanceRepository)(nil)

func (r *LeaveBalanceRepository) FindLeaveBalance(_ context.Context, userID string) (*domain.LeaveBalance, error) {
	b, ok := r.rows.get(userID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (r *LeaveBalanceRepository) ListLeaveBalances(_ context.Context) ([]domain.LeaveBalance, error) {
	return r.rows.all(), nil
}

func (r *LeaveBalanceRepository) SaveLeaveBalance(_ context.Context, balance domain.LeaveBalance) error {
	r.rows.upsert(balance)
	return nil
}

func (r *LeaveBalanceRepository) ApplyLeaveBalanceUpdate(_ context.Context, userID string, update domain.LeaveBalanceUpdate) (*domain.LeaveBalance, error) {
	updated, err := r.rows.mutate(userID, func(current domain.LeaveBalance, exists bool) (domain.LeaveBalance, error) {
		if !exists {
			current = domain.LeaveBalance{UserID: userID}
		}
		return update.Apply(current), nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *LeaveBalanceRepository) DeleteLeaveBalance(_ context.Context, userID string) error {
	r.rows.remove(userID)
	return nil
}

// LeaveLedger settles leave approvals across the request and balance tables.
// The request table lock is always taken before the balance table lock.
type LeaveLedger struct {
	requests *LeaveRequestRepository
	balances *LeaveBalanceRepository
}

// NewLeaveLedger pairs a request repository with the balances it charges.
func NewLeaveLedger(requests *LeaveRequestRepository, balances *LeaveBalanceRepository) *LeaveLedger {
	return &LeaveLedger{requests: requests, balances: balances}
}

var _ portsrepo.LeaveApprovalRecorder = (*LeaveLedger)(nil)

func (l *LeaveLedger) RecordLeaveApproval(_ context.Context, approved domain.LeaveRequest) (*domain.LeaveBalance, error) {
	var charged domain.LeaveBalance
	_, err := l.requests.rows.mutate(approved.ID, func(current domain.LeaveRequest, exists bool) (domain.LeaveRequest, error) {
		if !exists {
			return current, apperrors.ErrNotFound
		}
		if err := stillPending(current.ID, current.Status); err != nil {
			return current, err
		}
		balance, err := l.balances.rows.mutate(current.UserID, func(b domain.LeaveBalance, exists bool) (domain.LeaveBalance, error) {
			if !exists {
				b = domain.LeaveBalance{UserID: current.UserID}
			}
			b.Used += current.Days()
			return b, nil
		})
		if err != nil {
			return current, fmt.Errorf("failed to charge leave balance for %s: %w", current.UserID, err)
		}
		charged = balance
		return approved, nil
	})
	if err != nil {
		return nil, err
	}
	return &charged, nil
}
