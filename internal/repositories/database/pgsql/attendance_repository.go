package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/SscSPs/site_claims_app/internal/models"
	"github.com/SscSPs/site_claims_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(db *pgxpool.Pool) *PgxAttendanceRepository {
	return &PgxAttendanceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `record_id, user_id, user_name, work_date, check_in_time, check_out_time,
	status, latitude, longitude, address, notes, project`

func scanAttendance(row pgx.Row) (models.AttendanceRecord, error) {
	var m models.AttendanceRecord
	err := row.Scan(
		&m.RecordID,
		&m.UserID,
		&m.UserName,
		&m.WorkDate,
		&m.CheckInTime,
		&m.CheckOutTime,
		&m.Status,
		&m.Latitude,
		&m.Longitude,
		&m.Address,
		&m.Notes,
		&m.Project,
	)
	return m, err
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE record_id = $1;`
	m, err := scanAttendance(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record %s: %w", recordID, err)
	}
	a := mapping.ToDomainAttendance(m)
	return &a, nil
}

func (r *PgxAttendanceRepository) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance_records ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	records := []domain.AttendanceRecord{}
	for rows.Next() {
		m, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, mapping.ToDomainAttendance(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}
	return records, nil
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	m := mapping.ToModelAttendance(record)
	query := `
		INSERT INTO attendance_records (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.UserID, m.UserName, m.WorkDate, m.CheckInTime, m.CheckOutTime,
		m.Status, m.Latitude, m.Longitude, m.Address, m.Notes, m.Project,
	)
	if err != nil {
		return mapWriteError(err, "failed to save attendance record")
	}
	return nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	m := mapping.ToModelAttendance(record)
	query := `
		UPDATE attendance_records
		SET user_id = $2, user_name = $3, work_date = $4, check_in_time = $5, check_out_time = $6,
		    status = $7, latitude = $8, longitude = $9, address = $10, notes = $11, project = $12
		WHERE record_id = $1;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.UserID, m.UserName, m.WorkDate, m.CheckInTime, m.CheckOutTime,
		m.Status, m.Latitude, m.Longitude, m.Address, m.Notes, m.Project,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record %s: %w", record.ID, err)
	}
	return nil
}

func (r *PgxAttendanceRepository) DeleteAttendance(ctx context.Context, recordID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM attendance_records WHERE record_id = $1;`, recordID); err != nil {
		return fmt.Errorf("failed to delete attendance record %s: %w", recordID, err)
	}
	return nil
}

func (r *PgxAttendanceRepository) StampCheckOut(ctx context.Context, recordID, checkOut string, notes *string) (*domain.AttendanceRecord, error) {
	query := `
		UPDATE attendance_records
		SET check_out_time = $2, notes = COALESCE($3, notes)
		WHERE record_id = $1 AND check_out_time IS NULL
		RETURNING ` + attendanceColumns + `;
	`
	m, err := scanAttendance(r.Pool.QueryRow(ctx, query, recordID, checkOut, notes))
	if err == nil {
		a := mapping.ToDomainAttendance(m)
		return &a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check out %s: %w", recordID, err)
	}

	existing, findErr := r.FindAttendanceByID(ctx, recordID)
	if findErr != nil {
		return nil, findErr
	}
	if existing.CheckOutTime == nil {
		return nil, fmt.Errorf("record %s changed during check-out: %w", recordID, apperrors.ErrInvalidTransition)
	}
	return nil, fmt.Errorf("already checked out at %s: %w", *existing.CheckOutTime, apperrors.ErrInvalidTransition)
}
