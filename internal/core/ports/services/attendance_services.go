package services

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
)

// AttendanceReaderSvc defines read operations on attendance, scoped to the viewer.
type AttendanceReaderSvc interface {
	GetAttendance(ctx context.Context, viewer domain.Identity, recordID string) (*domain.AttendanceRecord, error)
	ListAttendance(ctx context.Context, viewer domain.Identity, criteria query.AttendanceCriteria) ([]domain.AttendanceRecord, error)

	// Today returns the viewer's record for the current day, or apperrors.ErrNotFound.
	Today(ctx context.Context, viewer domain.Identity) (*domain.AttendanceRecord, error)
}

// AttendanceSelfSvc lets a user mark their own attendance for today.
type AttendanceSelfSvc interface {
	// CheckIn creates today's record. A second check-in on the same day fails with apperrors.ErrDuplicate.
	CheckIn(ctx context.Context, user domain.Identity, req dto.CheckInRequest) (*domain.AttendanceRecord, error)

	// CheckOut stamps the departure time on today's record.
	CheckOut(ctx context.Context, user domain.Identity, req dto.CheckOutRequest) (*domain.AttendanceRecord, error)
}

// AttendanceAdminSvc lets an admin maintain anyone's attendance.
type AttendanceAdminSvc interface {
	RecordAttendance(ctx context.Context, admin domain.Identity, req dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error)
	UpdateAttendance(ctx context.Context, admin domain.Identity, recordID string, req dto.UpdateAttendanceRequest) (*domain.AttendanceRecord, error)
	DeleteAttendance(ctx context.Context, admin domain.Identity, recordID string) error
}

// AttendanceSvcFacade combines all attendance-related service interfaces
type AttendanceSvcFacade interface {
	AttendanceReaderSvc
	AttendanceSelfSvc
	AttendanceAdminSvc
}
