package models

import (
	"database/sql"
	"time"
)

// LeaveRequest is the leave_requests table row.
type LeaveRequest struct {
	RequestID       string         `db:"request_id"`
	UserID          string         `db:"user_id"`
	UserName        string         `db:"user_name"`
	LeaveType       string         `db:"leave_type"`
	StartDate       time.Time      `db:"start_date"`
	EndDate         time.Time      `db:"end_date"`
	Reason          string         `db:"reason"`
	Status          string         `db:"status"`
	ApprovedBy      sql.NullString `db:"approved_by"`
	ApprovedAt      sql.NullTime   `db:"approved_at"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	CreatedAt       time.Time      `db:"created_at"`
}

// LeaveBalance is the leave_balances table row.
type LeaveBalance struct {
	UserID       string `db:"user_id"`
	Annual       int    `db:"annual"`
	Sick         int    `db:"sick"`
	Personal     int    `db:"personal"`
	Compensatory int    `db:"compensatory"`
	Total        int    `db:"total"`
	Used         int    `db:"used"`
}
