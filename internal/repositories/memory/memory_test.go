package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/SscSPs/site_claims_app/internal/repositories/kv"
	"github.com/SscSPs/site_claims_app/internal/repositories/memory"
	"github.com/SscSPs/site_claims_app/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClaimRepository()
	for _, c := range seed.Claims() {
		require.NoError(t, repo.SaveClaim(ctx, c))
	}

	err := repo.SaveClaim(ctx, domain.Claim{ID: "c1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	c, err := repo.FindClaimByID(ctx, "c3")
	require.NoError(t, err)
	assert.Equal(t, "Safety Shoe", c.Category)

	_, err = repo.FindClaimByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	c.Description = "Safety boots"
	require.NoError(t, repo.UpdateClaim(ctx, *c))
	require.NoError(t, repo.UpdateClaim(ctx, domain.Claim{ID: "ghost"}))
	require.NoError(t, repo.DeleteClaim(ctx, "c2"))
	require.NoError(t, repo.DeleteClaim(ctx, "ghost"))

	all, err := repo.ListClaims(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(all))
	for _, c := range all {
		got = append(got, c.ID)
	}
	assert.Equal(t, []string{"c1", "c3", "c4", "c5"}, got, "insertion order survives deletes and updates")
	assert.Equal(t, "Safety boots", all[1].Description)
}

func TestLeaveBalanceRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLeaveBalanceRepository()

	require.NoError(t, repo.SaveLeaveBalance(ctx, domain.LeaveBalance{UserID: "u1", Total: 20}))
	require.NoError(t, repo.SaveLeaveBalance(ctx, domain.LeaveBalance{UserID: "u2", Total: 10}))
	require.NoError(t, repo.SaveLeaveBalance(ctx, domain.LeaveBalance{UserID: "u1", Total: 20, Used: 4}))

	b, err := repo.FindLeaveBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 16, b.Available())

	all, err := repo.ListLeaveBalances(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "u1", all[0].UserID)

	require.NoError(t, repo.DeleteLeaveBalance(ctx, "u1"))
	_, err = repo.FindLeaveBalance(ctx, "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProjectRepository()

	require.NoError(t, repo.SaveProject(ctx, domain.Project{Name: "Project A"}))
	assert.ErrorIs(t, repo.SaveProject(ctx, domain.Project{Name: "Project A"}), apperrors.ErrDuplicate)
	require.NoError(t, repo.DeleteProject(ctx, "Project Z"))

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Project{{Name: "Project A"}}, projects)
}

func TestUserRepository_PersistsThroughKeyValueStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	repo, err := memory.NewUserRepository(ctx, store)
	require.NoError(t, err)
	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	seeded, err := seed.Users()
	require.NoError(t, err)
	for _, u := range seeded {
		require.NoError(t, repo.SaveUser(ctx, u))
	}
	admin := seeded[0]
	admin.IsActive = false
	require.NoError(t, repo.UpdateUser(ctx, admin))
	require.NoError(t, repo.DeleteUser(ctx, "u2"))

	raw, err := store.Get(ctx, portsrepo.KeyUsers)
	require.NoError(t, err)
	var stored []domain.User
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, 3)

	reloaded, err := memory.NewUserRepository(ctx, store)
	require.NoError(t, err)
	u, err := reloaded.FindUserByID(ctx, "Admin")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
	assert.Equal(t, seeded[0].PasswordHash, u.PasswordHash)
	_, err = reloaded.FindUserByID(ctx, "u2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Put(ctx, portsrepo.KeyUsers, []byte("{not json")))

	_, err := memory.NewUserRepository(ctx, store)
	assert.Error(t, err)
}

func TestRepositoryProvider(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	repos, err := memory.NewRepositoryProvider(ctx, store)
	require.NoError(t, err)
	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.ClaimRepo)
	assert.NotNil(t, repos.AttendanceRepo)
	assert.NotNil(t, repos.LeaveRequestRepo)
	assert.NotNil(t, repos.LeaveBalanceRepo)
	assert.NotNil(t, repos.ProjectRepo)
	assert.Equal(t, portsrepo.KeyValueStore(store), repos.KV)
}

func TestClaimRepository_GuardedTransitions(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClaimRepository()
	for _, c := range seed.Claims() {
		require.NoError(t, repo.SaveClaim(ctx, c))
	}

	c2, err := repo.FindClaimByID(ctx, "c2")
	require.NoError(t, err)
	c2.Status = domain.StatusApproved
	require.NoError(t, repo.TransitionClaim(ctx, *c2))

	c2.Status = domain.StatusRejected
	assert.ErrorIs(t, repo.TransitionClaim(ctx, *c2), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, repo.TransitionClaim(ctx, domain.Claim{ID: "ghost"}), apperrors.ErrNotFound)

	stored, err := repo.FindClaimByID(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)

	assert.ErrorIs(t, repo.DeletePendingClaim(ctx, "c2"), apperrors.ErrInvalidTransition)
	assert.NoError(t, repo.DeletePendingClaim(ctx, "c5"))
	assert.NoError(t, repo.DeletePendingClaim(ctx, "ghost"))
	_, err = repo.FindClaimByID(ctx, "c5")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAttendanceRepository_OneRecordPerUserAndDay(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAttendanceRepository()
	for _, a := range seed.Attendance() {
		require.NoError(t, repo.SaveAttendance(ctx, a))
	}

	err := repo.SaveAttendance(ctx, domain.AttendanceRecord{ID: "a7", UserID: "u2", Date: domain.MustDate("2025-05-21")})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	require.NoError(t, repo.SaveAttendance(ctx, domain.AttendanceRecord{ID: "a7", UserID: "u2", Date: domain.MustDate("2025-05-22")}))

	notes := "Left early"
	stamped, err := repo.StampCheckOut(ctx, "a7", "16:00", &notes)
	require.NoError(t, err)
	assert.Equal(t, "16:00", *stamped.CheckOutTime)
	assert.Equal(t, "Left early", *stamped.Notes)

	_, err = repo.StampCheckOut(ctx, "a7", "17:00", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	_, err = repo.StampCheckOut(ctx, "ghost", "17:00", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLeaveLedger_RecordApproval(t *testing.T) {
	ctx := context.Background()
	requests := memory.NewLeaveRequestRepository()
	balances := memory.NewLeaveBalanceRepository()
	for _, l := range seed.LeaveRequests() {
		require.NoError(t, requests.SaveLeaveRequest(ctx, l))
	}
	ledger := memory.NewLeaveLedger(requests, balances)

	l1, err := requests.FindLeaveRequestByID(ctx, "l1")
	require.NoError(t, err)
	l1.Status = domain.StatusApproved

	balance, err := ledger.RecordLeaveApproval(ctx, *l1)
	require.NoError(t, err)
	assert.Equal(t, 3, balance.Used)
	assert.Equal(t, -3, balance.Available())

	_, err = ledger.RecordLeaveApproval(ctx, *l1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	_, err = ledger.RecordLeaveApproval(ctx, domain.LeaveRequest{ID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, err := balances.FindLeaveBalance(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Used)
}

func TestLeaveBalanceRepository_ApplyUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLeaveBalanceRepository()
	used := 4
	total := 12

	created, err := repo.ApplyLeaveBalanceUpdate(ctx, "u9", domain.LeaveBalanceUpdate{Used: &used})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Total)
	assert.Equal(t, 4, created.Used)

	updated, err := repo.ApplyLeaveBalanceUpdate(ctx, "u9", domain.LeaveBalanceUpdate{Total: &total})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Total)
	assert.Equal(t, 4, updated.Used)
}
