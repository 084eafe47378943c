package query_test

import (
	"testing"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/seed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin = domain.Identity{ID: "u1", Name: "John Doe", Role: domain.RoleAdmin}
	jane  = domain.Identity{ID: "u2", Name: "Jane Smith", Role: domain.RoleUser}
	bob   = domain.Identity{ID: "u3", Name: "Bob Johnson", Role: domain.RoleUser}
)

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func claimID(c domain.Claim) string { return c.ID }

func TestVisible_NonAdminSeesOnlyOwnRecords(t *testing.T) {
	claims := seed.Claims()

	visible := query.Visible(claims, jane)

	assert.Equal(t, []string{"c1", "c4"}, ids(visible, claimID))
	for _, c := range visible {
		assert.Equal(t, jane.ID, c.UserID)
	}
}

func TestVisible_AdminSeesEverythingInOrder(t *testing.T) {
	claims := seed.Claims()

	visible := query.Visible(claims, admin)

	assert.Equal(t, claims, visible)
	visible[0].ID = "changed"
	assert.Equal(t, "c1", claims[0].ID, "result must not alias the input")
}

func TestVisible_UnknownViewerSeesNothing(t *testing.T) {
	visible := query.Visible(seed.Attendance(), domain.Identity{ID: "nobody", Role: domain.RoleUser})
	assert.Empty(t, visible)
}

func TestCanView(t *testing.T) {
	c := seed.Claims()[1] // u3
	assert.True(t, query.CanView(c, bob))
	assert.True(t, query.CanView(c, admin))
	assert.False(t, query.CanView(c, jane))
}

func TestFilter_NoPredicatesIsIdentity(t *testing.T) {
	claims := seed.Claims()
	assert.Equal(t, claims, query.Filter(claims))
	assert.Equal(t, claims, query.Filter(claims, query.ClaimCriteria{Status: "all", Category: ""}.Predicates()...))
}

func TestFilter_ComposesLikeSequentialFiltering(t *testing.T) {
	claims := seed.Claims()
	pending := query.FieldEquals("pending", func(c domain.Claim) string { return string(c.Status) })
	projectA := query.FieldEquals("Project A", func(c domain.Claim) string { return c.Project })

	nested := query.Filter(query.Filter(claims, pending), projectA)
	combined := query.Filter(claims, pending, projectA)

	assert.Equal(t, nested, combined)
	assert.Equal(t, []string{"c2", "c5"}, ids(combined, claimID))
}

func TestPendingClaimsVisibleToBob(t *testing.T) {
	claims := query.Filter(seed.Claims(), query.ClaimCriteria{Status: "pending"}.Predicates()...)

	visible := query.Visible(claims, bob)

	// u3 owns two pending claims in the demo data.
	assert.Equal(t, []string{"c2", "c5"}, ids(visible, claimID))
}

func TestDateRange(t *testing.T) {
	day := domain.MustDate("2025-05-20")
	records := seed.Attendance()

	tests := []struct {
		name     string
		dates    query.DateRange
		expected []string
	}{
		{"single day", query.DateRange{From: day, To: day}, []string{"a4", "a5", "a6"}},
		{"from only", query.DateRange{From: domain.MustDate("2025-05-21")}, []string{"a1", "a2", "a3"}},
		{"to only", query.DateRange{To: day}, []string{"a4", "a5", "a6"}},
		{"open", query.DateRange{}, []string{"a1", "a2", "a3", "a4", "a5", "a6"}},
		{"empty window", query.DateRange{From: domain.MustDate("2025-06-01"), To: domain.MustDate("2025-06-30")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Filter(records, query.AttendanceCriteria{Dates: tt.dates}.Predicates()...)
			assert.Equal(t, tt.expected, ids(got, func(a domain.AttendanceRecord) string { return a.ID }))
		})
	}
}

func TestLeaveDateRangeUsesStartDate(t *testing.T) {
	got := query.Filter(seed.LeaveRequests(), query.LeaveCriteria{
		Dates: query.DateRange{From: domain.MustDate("2025-06-03"), To: domain.MustDate("2025-06-30")},
	}.Predicates()...)
	// l1 runs 2025-06-02..04 and starts before the window.
	assert.Empty(t, got)
}

func TestTextSearch(t *testing.T) {
	claims := seed.Claims()

	tests := []struct {
		query    string
		expected []string
	}{
		{"TAXI", []string{"c1"}},
		{"project a", []string{"c2", "c5"}},
		{"fuel", []string{"c5"}},
		{"", []string{"c1", "c2", "c3", "c4", "c5"}},
		{"nothing matches", []string{}},
		{" ", []string{"c1", "c2", "c3", "c4", "c5"}},
		{"  ", []string{}},
		{" a", []string{"c2", "c5"}},
	}
	for _, tt := range tests {
		got := query.Filter(claims, query.ClaimCriteria{Search: tt.query}.Predicates()...)
		assert.Equal(t, tt.expected, ids(got, claimID), "query %q", tt.query)
	}

	byAddress := query.Filter(seed.Attendance(), query.AttendanceCriteria{Search: "building st"}.Predicates()...)
	assert.Len(t, byAddress, 2)

	byNotes := query.Filter(seed.Attendance(), query.AttendanceCriteria{Search: "sick"}.Predicates()...)
	require.Len(t, byNotes, 1)
	assert.Equal(t, "a3", byNotes[0].ID)
}

func TestIsInactive(t *testing.T) {
	assert.True(t, query.IsInactive(""))
	assert.True(t, query.IsInactive("all"))
	assert.True(t, query.IsInactive(" ALL "))
	assert.False(t, query.IsInactive("pending"))
}

func TestAggregate(t *testing.T) {
	claims := seed.Claims()

	agg := query.Aggregate(claims, func(c domain.Claim) string { return string(c.Status) }, func(c domain.Claim) decimal.Decimal { return c.Amount })

	assert.Equal(t, []string{"approved", "pending", "rejected"}, agg.Keys)
	assert.Equal(t, 5, agg.Count)
	assert.Equal(t, 3, agg.Get("pending").Count)
	assert.True(t, decimal.RequireFromString("198").Equal(agg.Get("pending").Sum))
	assert.True(t, decimal.RequireFromString("403.49").Equal(agg.Sum))
	assert.Equal(t, 0, agg.Get("missing").Count)

	counts := query.Aggregate(claims, func(c domain.Claim) string { return c.UserID }, nil)
	assert.Equal(t, 2, counts.Get("u2").Count)
	assert.True(t, counts.Get("u2").Sum.IsZero())
}

func TestSum(t *testing.T) {
	total := query.Sum(seed.Claims(), func(c domain.Claim) decimal.Decimal { return c.Amount })
	assert.Equal(t, "403.49", total.StringFixed(2))
	assert.True(t, query.Sum([]domain.Claim{}, func(c domain.Claim) decimal.Decimal { return c.Amount }).IsZero())
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0, query.Rate(5, 0))
	assert.Equal(t, 0, query.Rate(0, 0))
	assert.Equal(t, 67, query.Rate(2, 3))
	assert.Equal(t, 33, query.Rate(1, 3))
	assert.Equal(t, 50, query.Rate(1, 2))
	assert.Equal(t, 100, query.Rate(4, 4))
}

func TestUserCriteria(t *testing.T) {
	users := []domain.User{
		{ID: "Admin", Name: "Admin User", Role: domain.RoleAdmin},
		{ID: "User1", Name: "Site User", Role: domain.RoleUser, Location: "Site A"},
	}
	assert.Len(t, query.Filter(users, query.UserCriteria{Role: "user"}.Predicates()...), 1)
	assert.Len(t, query.Filter(users, query.UserCriteria{Search: "site a"}.Predicates()...), 1)
	assert.Len(t, query.Filter(users, query.UserCriteria{Role: "all"}.Predicates()...), 2)
}
