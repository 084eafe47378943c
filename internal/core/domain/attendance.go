package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AttendanceStatus classifies a day of attendance.
type AttendanceStatus string

const (
	AttendancePresent        AttendanceStatus = "present"
	AttendanceLeave          AttendanceStatus = "leave"
	AttendanceWeeklyOff      AttendanceStatus = "weekly-off"
	AttendanceWeeklyPresent  AttendanceStatus = "weekly-present"
	AttendanceCompOff        AttendanceStatus = "comp-off"
	AttendanceHolidayOff     AttendanceStatus = "holiday-off"
	AttendanceHolidayPresent AttendanceStatus = "holiday-present"
	AttendanceHalfDayPresent AttendanceStatus = "half-day-present"
	AttendanceHalfDayLeave   AttendanceStatus = "half-day-leave"
	AttendanceAbsent         AttendanceStatus = "absent"
	AttendanceLate           AttendanceStatus = "late"
	AttendanceOnLeave        AttendanceStatus = "on-leave"
	AttendanceSick           AttendanceStatus = "sick"
)

// AttendanceStatuses is the full set of attendance statuses, in display order.
var AttendanceStatuses = []AttendanceStatus{
	AttendancePresent,
	AttendanceLeave,
	AttendanceWeeklyOff,
	AttendanceWeeklyPresent,
	AttendanceCompOff,
	AttendanceHolidayOff,
	AttendanceHolidayPresent,
	AttendanceHalfDayPresent,
	AttendanceHalfDayLeave,
	AttendanceAbsent,
	AttendanceLate,
	AttendanceOnLeave,
	AttendanceSick,
}

// IsValid reports whether s is a known attendance status.
func (s AttendanceStatus) IsValid() bool {
	for _, v := range AttendanceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CountsAsPresent reports whether the status means the user worked that day.
func (s AttendanceStatus) CountsAsPresent() bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceWeeklyPresent,
		AttendanceHolidayPresent, AttendanceHalfDayPresent:
		return true
	}
	return false
}

// CountsAsLeave reports whether the status means the user was on some form of leave.
func (s AttendanceStatus) CountsAsLeave() bool {
	switch s {
	case AttendanceLeave, AttendanceOnLeave, AttendanceSick, AttendanceHalfDayLeave, AttendanceCompOff:
		return true
	}
	return false
}

// ClockTimeTag validates a 24h HH:MM time. datetime=15:04 alone would
// accept a one-digit hour such as 9:05; len=5 requires the leading zero.
const ClockTimeTag = "len=5,datetime=15:04"

var clockValidator = validator.New()

// IsClockTime reports whether v is a 24h HH:MM time.
func IsClockTime(v string) bool {
	return clockValidator.Var(v, ClockTimeTag) == nil
}

// GeoLocation is where a check-in happened.
type GeoLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
}

// AttendanceRecord is one user's attendance for one calendar day.
type AttendanceRecord struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	UserName     string           `json:"userName"`
	Date         time.Time        `json:"date"`
	CheckInTime  *string          `json:"checkInTime,omitempty"`
	CheckOutTime *string          `json:"checkOutTime,omitempty"`
	Status       AttendanceStatus `json:"status"`
	Location     *GeoLocation     `json:"location,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	Project      *string          `json:"project,omitempty"`
}

// OwnerID returns the user the record belongs to.
func (a AttendanceRecord) OwnerID() string { return a.UserID }
