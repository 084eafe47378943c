package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAttendanceMapping_LocationColumns(t *testing.T) {
	notes := "Traffic delay"
	rec := domain.AttendanceRecord{
		ID:       "a2",
		UserID:   "u3",
		UserName: "Bob Johnson",
		Date:     domain.MustDate("2025-05-21"),
		Status:   domain.AttendanceLate,
		Location: &domain.GeoLocation{Latitude: 37.7749, Longitude: -122.4194, Address: "456 Building St, Site A"},
		Notes:    &notes,
	}

	m := ToModelAttendance(rec)
	assert.True(t, m.Latitude.Valid)
	assert.Equal(t, "456 Building St, Site A", m.Address.String)
	assert.False(t, m.CheckInTime.Valid)

	back := ToDomainAttendance(m)
	assert.Equal(t, rec, back)
}

func TestAttendanceMapping_NoLocation(t *testing.T) {
	m := ToModelAttendance(domain.AttendanceRecord{ID: "a3", Status: domain.AttendanceAbsent})
	assert.False(t, m.Latitude.Valid)
	assert.Nil(t, ToDomainAttendance(m).Location)
}

func TestClaimMapping_NullableFields(t *testing.T) {
	approvedAt := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	approver := "John Doe"
	c := domain.Claim{
		ID:         "c1",
		UserID:     "u2",
		Amount:     decimal.RequireFromString("75.50"),
		Date:       domain.MustDate("2025-05-10"),
		Status:     domain.StatusApproved,
		ApprovedBy: &approver,
		ApprovedAt: &approvedAt,
	}

	m := ToModelClaim(c)
	assert.True(t, m.ApprovedBy.Valid)
	assert.False(t, m.RejectedReason.Valid)

	back := ToDomainClaim(m)
	assert.Equal(t, "John Doe", *back.ApprovedBy)
	assert.Nil(t, back.RejectedReason)
	assert.True(t, c.Amount.Equal(back.Amount))
}
