package domain

import "time"

// LeaveType is the kind of leave being requested.
type LeaveType string

const (
	LeaveAnnual       LeaveType = "annual"
	LeaveSick         LeaveType = "sick"
	LeavePersonal     LeaveType = "personal"
	LeaveCompensatory LeaveType = "compensatory"
)

// LeaveTypes lists every leave type in display order.
var LeaveTypes = []LeaveType{LeaveAnnual, LeaveSick, LeavePersonal, LeaveCompensatory}

// IsValid reports whether t is a known leave type.
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeavePersonal, LeaveCompensatory:
		return true
	}
	return false
}

// LeaveRequest asks for a contiguous block of days off.
type LeaveRequest struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	UserName        string         `json:"userName"`
	LeaveType       LeaveType      `json:"leaveType"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         time.Time      `json:"endDate"`
	Reason          string         `json:"reason"`
	Status          ApprovalStatus `json:"status"`
	ApprovedBy      *string        `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time     `json:"approvedAt,omitempty"`
	RejectionReason *string        `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// OwnerID returns the user the request belongs to.
func (l LeaveRequest) OwnerID() string { return l.UserID }

// Days returns the number of calendar days covered, counting both ends.
// A request whose end precedes its start covers zero days.
func (l LeaveRequest) Days() int {
	start, end := DateOf(l.StartDate), DateOf(l.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// LeaveBalance is the per-user leave ledger.
type LeaveBalance struct {
	UserID       string `json:"userId"`
	Annual       int    `json:"annual"`
	Sick         int    `json:"sick"`
	Personal     int    `json:"personal"`
	Compensatory int    `json:"compensatory"`
	Total        int    `json:"total"`
	Used         int    `json:"used"`
}

// Available is Total minus Used. It is not clamped and goes negative when
// more days have been used than allotted.
func (b LeaveBalance) Available() int {
	return b.Total - b.Used
}

// LeaveBalanceUpdate carries the fields to overwrite on a balance.
// Nil fields are left untouched.
type LeaveBalanceUpdate struct {
	Annual       *int
	Sick         *int
	Personal     *int
	Compensatory *int
	Total        *int
	Used         *int
}

// Apply returns a copy of b with the non-nil fields of u written over it.
func (u LeaveBalanceUpdate) Apply(b LeaveBalance) LeaveBalance {
	if u.Annual != nil {
		b.Annual = *u.Annual
	}
	if u.Sick != nil {
		b.Sick = *u.Sick
	}
	if u.Personal != nil {
		b.Personal = *u.Personal
	}
	if u.Compensatory != nil {
		b.Compensatory = *u.Compensatory
	}
	if u.Total != nil {
		b.Total = *u.Total
	}
	if u.Used != nil {
		b.Used = *u.Used
	}
	return b
}
