package domain

import (
	"github.com/shopspring/decimal"
)

// AmountGroup is one bucket of a grouped claim summary.
type AmountGroup struct {
	Key    string          `json:"key"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// CountGroup is one bucket of a grouped count summary.
type CountGroup struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ClaimsReport summarises the claims a viewer can see after filtering.
type ClaimsReport struct {
	TotalCount     int             `json:"totalCount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ApprovedAmount decimal.Decimal `json:"approvedAmount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	RejectedAmount decimal.Decimal `json:"rejectedAmount"`
	ApprovalRate   int             `json:"approvalRate"` // percent of claims approved
	ByStatus       []AmountGroup   `json:"byStatus"`
	ByCategory     []AmountGroup   `json:"byCategory"`
	ByProject      []AmountGroup   `json:"byProject"`
	Claims         []Claim         `json:"claims"`
}

// AttendanceReport summarises attendance records after filtering.
type AttendanceReport struct {
	TotalDays      int                `json:"totalDays"`
	PresentDays    int                `json:"presentDays"`
	LateDays       int                `json:"lateDays"`
	AbsentDays     int                `json:"absentDays"`
	LeaveDays      int                `json:"leaveDays"`
	AttendanceRate int                `json:"attendanceRate"` // percent of days counted as present
	ByStatus       []CountGroup       `json:"byStatus"`
	Records        []AttendanceRecord `json:"records"`
}

// LeaveReport summarises leave requests after filtering.
type LeaveReport struct {
	TotalRequests int            `json:"totalRequests"`
	TotalDays     int            `json:"totalDays"`
	ApprovalRate  int            `json:"approvalRate"`
	ByStatus      []CountGroup   `json:"byStatus"`
	ByType        []CountGroup   `json:"byType"`
	Requests      []LeaveRequest `json:"requests"`
}

// Dashboard is the home page summary for the logged-in user.
type Dashboard struct {
	TotalClaims      int             `json:"totalClaims"`
	PendingClaims    int             `json:"pendingClaims"`
	ApprovedClaims   int             `json:"approvedClaims"`
	TotalClaimAmount decimal.Decimal `json:"totalClaimAmount"`
	AttendanceDays   int             `json:"attendanceDays"`
	PresentDays      int             `json:"presentDays"`
	AttendanceRate   int             `json:"attendanceRate"`
	CheckedInToday   bool            `json:"checkedInToday"`
	PendingLeave     int             `json:"pendingLeave"`
	LeaveAvailable   *int            `json:"leaveAvailable,omitempty"`
	// PendingApprovals counts claims and leave requests awaiting a decision. Admin only.
	PendingApprovals int `json:"pendingApprovals"`
}
