package pgsql

import (
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres-backed repository. The key-value
// store is chosen separately and passed in.
func NewRepositoryProvider(dbPool *pgxpool.Pool, kv portsrepo.KeyValueStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ClaimRepo:        newPgxClaimRepository(dbPool),
		AttendanceRepo:   newPgxAttendanceRepository(dbPool),
		LeaveRequestRepo: newPgxLeaveRequestRepository(dbPool),
		LeaveBalanceRepo: newPgxLeaveBalanceRepository(dbPool),
		LeaveApprovals:   newPgxLeaveLedger(dbPool),
		ProjectRepo:      newPgxProjectRepository(dbPool),
		KV:               kv,
	}
}
