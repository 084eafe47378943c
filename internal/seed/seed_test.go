package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/repositories/kv"
	"github.com/SscSPs/site_claims_app/internal/repositories/memory"
	"github.com/SscSPs/site_claims_app/internal/seed"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_PasswordsAreHashed(t *testing.T) {
	users, err := seed.Users()
	require.NoError(t, err)
	require.Len(t, users, 4)

	passwords := map[string]string{"Admin": "Password", "User1": "Password1", "u1": "password123", "u2": "password123"}
	for _, u := range users {
		assert.NotEqual(t, passwords[u.ID], u.PasswordHash)
		assert.True(t, utils.PasswordMatches(&u, passwords[u.ID]), u.ID)
		assert.True(t, u.IsActive)
	}
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
}

func TestDemoRecordsUseCanonicalValues(t *testing.T) {
	for _, c := range seed.Claims() {
		assert.True(t, domain.IsClaimCategory(c.Category), c.ID)
		assert.True(t, c.Status.IsValid(), c.ID)
	}
	for _, a := range seed.Attendance() {
		assert.True(t, a.Status.IsValid(), a.ID)
	}
	for _, l := range seed.LeaveRequests() {
		assert.True(t, l.LeaveType.IsValid(), l.ID)
		assert.False(t, l.EndDate.Before(l.StartDate), l.ID)
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos, err := memory.NewRepositoryProvider(ctx, kv.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, seed.Apply(ctx, repos, logger))
	require.NoError(t, seed.Apply(ctx, repos, logger))

	users, err := repos.UserRepo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	claims, err := repos.ClaimRepo.ListClaims(ctx)
	require.NoError(t, err)
	assert.Len(t, claims, 5)

	records, err := repos.AttendanceRepo.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 6)

	requests, err := repos.LeaveRequestRepo.ListLeaveRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 4)

	projects, err := repos.ProjectRepo.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 5)

	balance, err := repos.LeaveBalanceRepo.FindLeaveBalance(ctx, "Admin")
	require.NoError(t, err)
	assert.Equal(t, 25, balance.Available())
}
