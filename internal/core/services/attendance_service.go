package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/google/uuid"
)

const clockLayout = "15:04"

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	userRepo       portsrepo.UserReader
}

// NewAttendanceService creates an attendance service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, userRepo portsrepo.UserReader, opts ...Option) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		BaseService:    newBaseService(opts),
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func (s *attendanceService) GetAttendance(ctx context.Context, viewer domain.Identity, recordID string) (*domain.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindAttendanceByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance %s: %w", recordID, err)
	}
	if !query.CanView(*record, viewer) {
		return nil, fmt.Errorf("failed to get attendance %s: %w", recordID, apperrors.ErrNotFound)
	}
	return record, nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, viewer domain.Identity, criteria query.AttendanceCriteria) ([]domain.AttendanceRecord, error) {
	records, err := s.attendanceRepo.ListAttendance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance")
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return query.Filter(query.Visible(records, viewer), criteria.Predicates()...), nil
}

func (s *attendanceService) Today(ctx context.Context, viewer domain.Identity) (*domain.AttendanceRecord, error) {
	return s.findForDay(ctx, viewer.ID, s.CurrentDate())
}

func (s *attendanceService) CheckIn(ctx context.Context, user domain.Identity, req dto.CheckInRequest) (*domain.AttendanceRecord, error) {
	status := domain.AttendancePresent
	if req.Status != "" {
		status = domain.AttendanceStatus(req.Status)
		if !status.IsValid() {
			return nil, invalid("unknown attendance status %q", req.Status)
		}
	}

	now := s.Now()
	today := domain.DateOf(now)
	if err := s.ensureNoRecord(ctx, user.ID, today); err != nil {
		return nil, err
	}

	checkIn := now.Format(clockLayout)
	record := domain.AttendanceRecord{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserName:    user.Name,
		Date:        today,
		CheckInTime: &checkIn,
		Status:      status,
		Location:    req.Location.ToDomain(),
		Notes:       req.Notes,
		Project:     req.Project,
	}
	if err := s.attendanceRepo.SaveAttendance(ctx, record); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save check-in", slog.String("user_id", user.ID))
		}
		return nil, fmt.Errorf("failed to check in: %w", err)
	}

	s.LogInfo(ctx, "Checked in", slog.String("attendance_id", record.ID), slog.String("status", string(status)))
	return &record, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, user domain.Identity, req dto.CheckOutRequest) (*domain.AttendanceRecord, error) {
	now := s.Now()
	record, err := s.findForDay(ctx, user.ID, domain.DateOf(now))
	if err != nil {
		return nil, err
	}
	if record.CheckOutTime != nil {
		return nil, fmt.Errorf("already checked out at %s: %w", *record.CheckOutTime, apperrors.ErrInvalidTransition)
	}

	stamped, err := s.attendanceRepo.StampCheckOut(ctx, record.ID, now.Format(clockLayout), req.Notes)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to save check-out", slog.String("attendance_id", record.ID))
		}
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	s.LogInfo(ctx, "Checked out", slog.String("attendance_id", stamped.ID))
	return stamped, nil
}

func (s *attendanceService) RecordAttendance(ctx context.Context, admin domain.Identity, req dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error) {
	if err := s.RequireAdmin(ctx, admin, "record attendance"); err != nil {
		return nil, err
	}

	status := domain.AttendanceStatus(req.Status)
	if !status.IsValid() {
		return nil, invalid("unknown attendance status %q", req.Status)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, invalid("date must be YYYY-MM-DD")
	}
	if err := checkClockTimes(req.CheckInTime, req.CheckOutTime); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalid("unknown user %q", req.UserID)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", req.UserID, err)
	}
	if err := s.ensureNoRecord(ctx, owner.ID, date); err != nil {
		return nil, err
	}

	record := domain.AttendanceRecord{
		ID:           uuid.NewString(),
		UserID:       owner.ID,
		UserName:     owner.Name,
		Date:         date,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Status:       status,
		Location:     req.Location.ToDomain(),
		Notes:        req.Notes,
		Project:      req.Project,
	}
	if err := s.attendanceRepo.SaveAttendance(ctx, record); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save attendance", slog.String("user_id", owner.ID))
		}
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	return &record, nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, admin domain.Identity, recordID string, req dto.UpdateAttendanceRequest) (*domain.AttendanceRecord, error) {
	if err := s.RequireAdmin(ctx, admin, "update attendance"); err != nil {
		return nil, err
	}
	record, err := s.attendanceRepo.FindAttendanceByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance %s: %w", recordID, err)
	}

	if req.Status != nil {
		status := domain.AttendanceStatus(*req.Status)
		if !status.IsValid() {
			return nil, invalid("unknown attendance status %q", *req.Status)
		}
		record.Status = status
	}
	if err := checkClockTimes(req.CheckInTime, req.CheckOutTime); err != nil {
		return nil, err
	}
	if req.CheckInTime != nil {
		record.CheckInTime = req.CheckInTime
	}
	if req.CheckOutTime != nil {
		record.CheckOutTime = req.CheckOutTime
	}
	if req.Location != nil {
		record.Location = req.Location.ToDomain()
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	if req.Project != nil {
		record.Project = req.Project
	}

	if err := s.attendanceRepo.UpdateAttendance(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update attendance", slog.String("attendance_id", recordID))
		return nil, fmt.Errorf("failed to update attendance %s: %w", recordID, err)
	}
	return record, nil
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, admin domain.Identity, recordID string) error {
	if err := s.RequireAdmin(ctx, admin, "delete attendance"); err != nil {
		return err
	}
	if err := s.attendanceRepo.DeleteAttendance(ctx, recordID); err != nil {
		s.LogError(ctx, err, "Failed to delete attendance", slog.String("attendance_id", recordID))
		return fmt.Errorf("failed to delete attendance %s: %w", recordID, err)
	}
	return nil
}

// findForDay returns the user's record for date, or apperrors.ErrNotFound.
func (s *attendanceService) findForDay(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	records, err := s.attendanceRepo.ListAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	for i := range records {
		if records[i].UserID == userID && records[i].Date.Equal(date) {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("no attendance for %s on %s: %w", userID, domain.FormatDate(date), apperrors.ErrNotFound)
}

// ensureNoRecord rejects a second record for the same user and day early.
// SaveAttendance enforces the same rule atomically.
func (s *attendanceService) ensureNoRecord(ctx context.Context, userID string, date time.Time) error {
	_, err := s.findForDay(ctx, userID, date)
	switch {
	case err == nil:
		return fmt.Errorf("attendance for %s on %s: %w", userID, domain.FormatDate(date), apperrors.ErrDuplicate)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return err
	}
}

func checkClockTimes(times ...*string) error {
	for _, t := range times {
		if t != nil && !domain.IsClockTime(*t) {
			return invalid("time %q must be HH:MM", *t)
		}
	}
	return nil
}
