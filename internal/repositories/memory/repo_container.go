package memory

import (
	"context"

	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every in-memory repository. Users are loaded
// from and written through to kv; everything else starts empty.
func NewRepositoryProvider(ctx context.Context, kv portsrepo.KeyValueStore) (portsrepo.RepositoryProvider, error) {
	userRepo, err := NewUserRepository(ctx, kv)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	requests := NewLeaveRequestRepository()
	balances := NewLeaveBalanceRepository()
	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		ClaimRepo:        NewClaimRepository(),
		AttendanceRepo:   NewAttendanceRepository(),
		LeaveRequestRepo: requests,
		LeaveBalanceRepo: balances,
		LeaveApprovals:   NewLeaveLedger(requests, balances),
		ProjectRepo:      NewProjectRepository(),
		KV:               kv,
	}, nil
}
