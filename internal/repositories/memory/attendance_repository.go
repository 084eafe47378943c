package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
)

// AttendanceRepository keeps attendance records in memory.
type AttendanceRepository struct {
	rows *table[domain.AttendanceRecord]
}

// NewAttendanceRepository creates an empty attendance repository.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{rows: newTable(func(a domain.AttendanceRecord) string { return a.ID })}
}

var _ portsrepo.AttendanceRepositoryFacade = (*AttendanceRepository)(nil)

func (r *AttendanceRepository) FindAttendanceByID(_ context.Context, recordID string) (*domain.AttendanceRecord, error) {
	a, ok := r.rows.get(recordID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *AttendanceRepository) ListAttendance(_ context.Context) ([]domain.AttendanceRecord, error) {
	return r.rows.all(), nil
}

func (r *AttendanceRepository) SaveAttendance(_ context.Context, record domain.AttendanceRecord) error {
	return r.rows.insertUnique(record, func(existing domain.AttendanceRecord) bool {
		return existing.UserID == record.UserID && existing.Date.Equal(record.Date)
	})
}

func (r *AttendanceRepository) UpdateAttendance(_ context.Context, record domain.AttendanceRecord) error {
	r.rows.replace(record)
	return nil
}

func (r *AttendanceRepository) DeleteAttendance(_ context.Context, recordID string) error {
	r.rows.remove(recordID)
	return nil
}

func (r *AttendanceRepository) StampCheckOut(_ context.Context, recordID, checkOut string, notes *string) (*domain.AttendanceRecord, error) {
	stamped, err := r.rows.mutate(recordID, func(current domain.AttendanceRecord, exists bool) (domain.AttendanceRecord, error) {
		if !exists {
			return current, apperrors.ErrNotFound
		}
		if current.CheckOutTime != nil {
			return current, fmt.Errorf("already checked out at %s: %w", *current.CheckOutTime, apperrors.ErrInvalidTransition)
		}
		current.CheckOutTime = &checkOut
		if notes != nil {
			current.Notes = notes
		}
		return current, nil
	})
	if err != nil {
		return nil, err
	}
	return &stamped, nil
}
