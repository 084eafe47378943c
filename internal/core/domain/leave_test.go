package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaveBalance_Available(t *testing.T) {
	tests := []struct {
		name    string
		balance LeaveBalance
		want    int
	}{
		{name: "admin seed", balance: LeaveBalance{Total: 30, Used: 5}, want: 25},
		{name: "nothing used", balance: LeaveBalance{Total: 20}, want: 20},
		{name: "overdrawn is not clamped", balance: LeaveBalance{Total: 10, Used: 12}, want: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.balance.Available())
		})
	}
}

func TestLeaveBalanceUpdate_ApplyOnlyNamedFields(t *testing.T) {
	original := LeaveBalance{UserID: "Admin", Annual: 15, Sick: 10, Personal: 3, Compensatory: 2, Total: 30, Used: 5}
	used := 7
	updated := LeaveBalanceUpdate{Used: &used}.Apply(original)

	assert.Equal(t, 7, updated.Used)
	assert.Equal(t, 23, updated.Available())
	updated.Used = original.Used
	assert.Equal(t, original, updated, "fields other than Used must be untouched")
}

func TestLeaveRequest_Days(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{name: "single day", start: "2025-06-02", end: "2025-06-02", want: 1},
		{name: "inclusive range", start: "2025-06-02", end: "2025-06-04", want: 3},
		{name: "across month end", start: "2025-05-30", end: "2025-06-02", want: 4},
		{name: "end before start", start: "2025-06-04", end: "2025-06-02", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := LeaveRequest{StartDate: MustDate(tt.start), EndDate: MustDate(tt.end)}
			assert.Equal(t, tt.want, req.Days())
		})
	}
}

func TestEnumsValidity(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, ApprovalStatus("all").IsValid())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	assert.True(t, LeaveCompensatory.IsValid())
	assert.False(t, LeaveType("maternity").IsValid())

	assert.Len(t, AttendanceStatuses, 13)
	assert.True(t, AttendanceOnLeave.IsValid())
	assert.True(t, AttendanceHalfDayLeave.IsValid())
	assert.False(t, AttendanceStatus("working").IsValid())
	assert.True(t, AttendanceLate.CountsAsPresent())
	assert.False(t, AttendanceAbsent.CountsAsPresent())
	assert.True(t, AttendanceSick.CountsAsLeave())
	assert.False(t, AttendanceHolidayOff.CountsAsLeave())

	assert.Len(t, ClaimCategories, 17)
	assert.True(t, IsClaimCategory("Travel & DA"))
	assert.False(t, IsClaimCategory("travel & da"))

	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
}

func TestIsClockTime(t *testing.T) {
	assert.True(t, IsClockTime("09:05"))
	assert.True(t, IsClockTime("23:59"))
	assert.False(t, IsClockTime("24:00"))
	assert.True(t, IsClockTime("00:00"))
	assert.False(t, IsClockTime("9:05"))
	assert.False(t, IsClockTime(" 9:05"))
	assert.False(t, IsClockTime("09:60"))
	assert.False(t, IsClockTime("09:05:00"))
	assert.False(t, IsClockTime(""))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-20")
	assert.NoError(t, err)
	assert.Equal(t, "2025-05-20", FormatDate(d))

	_, err = ParseDate("20/05/2025")
	assert.Error(t, err)

	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, d, DateOf(d.Add(13*time.Hour)))
}
