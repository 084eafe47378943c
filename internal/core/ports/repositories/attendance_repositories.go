package repositories

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records
type AttendanceReader interface {
	// FindAttendanceByID retrieves a record. Returns apperrors.ErrNotFound if absent.
	FindAttendanceByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error)

	// ListAttendance returns every record in insertion order.
	ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance records
type AttendanceWriter interface {
	// SaveAttendance persists a new record. Returns apperrors.ErrDuplicate if the ID
	// is taken or the user already has a record for that date.
	SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error

	// UpdateAttendance replaces an existing record. Unknown IDs are ignored.
	UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error

	// DeleteAttendance removes a record. Unknown IDs are ignored.
	DeleteAttendance(ctx context.Context, recordID string) error

	// StampCheckOut sets the check-out time, and notes when given, on a record that
	// has none yet. Returns apperrors.ErrNotFound if absent and
	// apperrors.ErrInvalidTransition if the record is already checked out.
	StampCheckOut(ctx context.Context, recordID, checkOut string, notes *string) (*domain.AttendanceRecord, error)
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
