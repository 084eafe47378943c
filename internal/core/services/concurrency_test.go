package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/repositories/kv"
	"github.com/SscSPs/site_claims_app/internal/repositories/memory"
	"github.com/SscSPs/site_claims_app/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readDelay stretches the gap between a service's status check and its write
// so that concurrent callers all pass the check.
const readDelay = 5 * time.Millisecond

type slowLeaveRequests struct {
	*memory.LeaveRequestRepository
}

func (r slowLeaveRequests) FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	time.Sleep(readDelay)
	return r.LeaveRequestRepository.FindLeaveRequestByID(ctx, requestID)
}

type slowClaims struct {
	*memory.ClaimRepository
}

func (r slowClaims) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	time.Sleep(readDelay)
	return r.ClaimRepository.FindClaimByID(ctx, claimID)
}

type slowAttendance struct {
	*memory.AttendanceRepository
}

func (r slowAttendance) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	time.Sleep(readDelay)
	return r.AttendanceRepository.ListAttendance(ctx)
}

func newUsers(t *testing.T) *memory.UserRepository {
	users, err := memory.NewUserRepository(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)
	return users
}

// race runs fn n times in parallel and returns the errors it produced.
func race(n int, fn func(i int) error) []error {
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = fn(i)
		}(i)
	}
	wg.Wait()
	return errs
}

func countNil(errs []error) int {
	n := 0
	for _, err := range errs {
		if err == nil {
			n++
		}
	}
	return n
}

func TestConcurrentLeaveApprovalsChargeOnce(t *testing.T) {
	ctx := context.Background()
	requests := memory.NewLeaveRequestRepository()
	balances := memory.NewLeaveBalanceRepository()
	for _, l := range seed.LeaveRequests() {
		require.NoError(t, requests.SaveLeaveRequest(ctx, l))
	}
	for _, b := range seed.LeaveBalances() {
		require.NoError(t, balances.SaveLeaveBalance(ctx, b))
	}
	svc := services.NewLeaveService(slowLeaveRequests{requests}, balances, memory.NewLeaveLedger(requests, balances), newUsers(t))

	before, err := balances.FindLeaveBalance(ctx, "u2")
	require.NoError(t, err)

	errs := race(4, func(int) error {
		_, err := svc.ApproveLeaveRequest(ctx, adminID, "l1")
		return err
	})

	assert.Equal(t, 1, countNil(errs))
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		}
	}
	after, err := balances.FindLeaveBalance(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, before.Used+3, after.Used)
}

func TestCancelLosesToApproval(t *testing.T) {
	ctx := context.Background()
	requests := memory.NewLeaveRequestRepository()
	balances := memory.NewLeaveBalanceRepository()
	for _, l := range seed.LeaveRequests() {
		require.NoError(t, requests.SaveLeaveRequest(ctx, l))
	}
	svc := services.NewLeaveService(requests, balances, memory.NewLeaveLedger(requests, balances), newUsers(t))

	_, err := svc.ApproveLeaveRequest(ctx, adminID, "l1")
	require.NoError(t, err)

	err = requests.DeletePendingLeaveRequest(ctx, "l1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	stored, err := requests.FindLeaveRequestByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)
}

func TestConcurrentClaimDecisionsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	claims := memory.NewClaimRepository()
	for _, c := range seed.Claims() {
		require.NoError(t, claims.SaveClaim(ctx, c))
	}
	svc := services.NewClaimService(slowClaims{claims}, memory.NewProjectRepository())

	errs := race(8, func(i int) error {
		var err error
		if i%2 == 0 {
			_, err = svc.ApproveClaim(ctx, adminID, "c2")
		} else {
			_, err = svc.RejectClaim(ctx, adminID, "c2", "Duplicate receipt")
		}
		return err
	})

	assert.Equal(t, 1, countNil(errs))
	stored, err := claims.FindClaimByID(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
}

func TestConcurrentCheckInsKeepOneRecord(t *testing.T) {
	ctx := context.Background()
	attendance := memory.NewAttendanceRepository()
	now := time.Date(2025, 5, 22, 9, 0, 0, 0, time.UTC)
	svc := services.NewAttendanceService(slowAttendance{attendance}, newUsers(t),
		services.WithClock(func() time.Time { return now }))

	errs := race(5, func(int) error {
		_, err := svc.CheckIn(ctx, janeID, dto.CheckInRequest{})
		return err
	})

	assert.Equal(t, 1, countNil(errs))
	for _, err := range errs {
		if err != nil {
			assert.True(t, errors.Is(err, apperrors.ErrDuplicate), "unexpected error: %v", err)
		}
	}
	all, err := attendance.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	errs = race(5, func(int) error {
		_, err := svc.CheckOut(ctx, janeID, dto.CheckOutRequest{})
		return err
	})
	assert.Equal(t, 1, countNil(errs))
}
