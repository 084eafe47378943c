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

type PgxLeaveRequestRepository struct {
	BaseRepository
}

func newPgxLeaveRequestRepository(db *pgxpool.Pool) *PgxLeaveRequestRepository {
	return &PgxLeaveRequestRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LeaveRequestRepositoryFacade = (*PgxLeaveRequestRepository)(nil)

const leaveRequestColumns = `request_id, user_id, user_name, leave_type, start_date, end_date, reason,
	status, approved_by, approved_at, rejection_reason, created_at`

func scanLeaveRequest(row pgx.Row) (models.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.RequestID,
		&m.UserID,
		&m.UserName,
		&m.LeaveType,
		&m.StartDate,
		&m.EndDate,
		&m.Reason,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE request_id = $1;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request %s: %w", requestID, err)
	}
	l := mapping.ToDomainLeaveRequest(m)
	return &l, nil
}

func (r *PgxLeaveRequestRepository) ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.LeaveRequest{}
	for rows.Next() {
		m, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, mapping.ToDomainLeaveRequest(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave request rows: %w", err)
	}
	return requests, nil
}

func (r *PgxLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(request)
	query := `
		INSERT INTO leave_requests (` + leaveRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.UserID, m.UserName, m.LeaveType, m.StartDate, m.EndDate, m.Reason,
		m.Status, m.ApprovedBy, m.ApprovedAt, m.RejectionReason, m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to save leave request")
	}
	return nil
}

func (r *PgxLeaveRequestRepository) UpdateLeaveRequest(ctx context.Context, request domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(request)
	query := `
		UPDATE leave_requests
		SET user_id = $2, user_name = $3, leave_type = $4, start_date = $5, end_date = $6,
		    reason = $7, status = $8, approved_by = $9, approved_at = $10, rejection_reason = $11
		WHERE request_id = $1;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.UserID, m.UserName, m.LeaveType, m.StartDate, m.EndDate,
		m.Reason, m.Status, m.ApprovedBy, m.ApprovedAt, m.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", request.ID, err)
	}
	return nil
}

func (r *PgxLeaveRequestRepository) DeleteLeaveRequest(ctx context.Context, requestID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM leave_requests WHERE request_id = $1;`, requestID); err != nil {
		return fmt.Errorf("failed to delete leave request %s: %w", requestID, err)
	}
	return nil
}

type PgxLeaveBalanceRepository struct {
	BaseRepository
}

func newPgxLeaveBalanceRepository(db *pgxpool.Pool) *PgxLeaveBalanceRepository {
	return &PgxLeaveBalanceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LeaveBalanceRepositoryFacade = (*PgxLeaveBalanceRepository)(nil)

const leaveBalanceColumns = `user_id, annual, sick, personal, compensatory, total, used`

func scanLeaveBalance(row pgx.Row) (models.LeaveBalance, error) {
	var m models.LeaveBalance
	err := row.Scan(&m.UserID, &m.Annual, &m.Sick, &m.Personal, &m.Compensatory, &m.Total, &m.Used)
	return m, err
}

func (r *PgxLeaveBalanceRepository) FindLeaveBalance(ctx context.Context, userID string) (*domain.LeaveBalance, error) {
	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE user_id = $1;`
	m, err := scanLeaveBalance(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave balance for %s: %w", userID, err)
	}
	b := mapping.ToDomainLeaveBalance(m)
	return &b, nil
}

func (r *PgxLeaveBalanceRepository) ListLeaveBalances(ctx context.Context) ([]domain.LeaveBalance, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+leaveBalanceColumns+` FROM leave_balances ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.LeaveBalance{}
	for rows.Next() {
		m, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance row: %w", err)
		}
		balances = append(balances, mapping.ToDomainLeaveBalance(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave balance rows: %w", err)
	}
	return balances, nil
}

func (r *PgxLeaveBalanceRepository) SaveLeaveBalance(ctx context.Context, balance domain.LeaveBalance) error {
	m := mapping.ToModelLeaveBalance(balance)
	query := `
		INSERT INTO leave_balances (` + leaveBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			annual = EXCLUDED.annual,
			sick = EXCLUDED.sick,
			personal = EXCLUDED.personal,
			compensatory = EXCLUDED.compensatory,
			total = EXCLUDED.total,
			used = EXCLUDED.used;
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.Annual, m.Sick, m.Personal, m.Compensatory, m.Total, m.Used)
	if err != nil {
		return fmt.Errorf("failed to save leave balance for %s: %w", balance.UserID, err)
	}
	return nil
}

func (r *PgxLeaveBalanceRepository) ApplyLeaveBalanceUpdate(ctx context.Context, userID string, update domain.LeaveBalanceUpdate) (*domain.LeaveBalance, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Open a zero row if needed so there is always something to lock.
	if _, err := tx.Exec(ctx, `INSERT INTO leave_balances (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, userID); err != nil {
		return nil, fmt.Errorf("failed to open leave balance for %s: %w", userID, err)
	}
	lock := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE user_id = $1 FOR UPDATE;`
	m, err := scanLeaveBalance(tx.QueryRow(ctx, lock, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock leave balance for %s: %w", userID, err)
	}

	updated := mapping.ToModelLeaveBalance(update.Apply(mapping.ToDomainLeaveBalance(m)))
	_, err = tx.Exec(ctx, `
		UPDATE leave_balances
		SET annual = $2, sick = $3, personal = $4, compensatory = $5, total = $6, used = $7
		WHERE user_id = $1;
	`, updated.UserID, updated.Annual, updated.Sick, updated.Personal, updated.Compensatory, updated.Total, updated.Used)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave balance for %s: %w", userID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	b := mapping.ToDomainLeaveBalance(updated)
	return &b, nil
}

func (r *PgxLeaveBalanceRepository) DeleteLeaveBalance(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM leave_balances WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete leave balance for %s: %w", userID, err)
	}
	return nil
}

const leaveStatusQuery = `SELECT status FROM leave_requests WHERE request_id = $1;`

func (r *PgxLeaveRequestRepository) TransitionLeaveRequest(ctx context.Context, request domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(request)
	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5
		WHERE request_id = $1 AND status = 'pending';
	`
	tag, err := r.Pool.Exec(ctx, query, m.RequestID, m.Status, m.ApprovedBy, m.ApprovedAt, m.RejectionReason)
	if err != nil {
		return fmt.Errorf("failed to transition leave request %s: %w", request.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMissedTransition(ctx, leaveStatusQuery, request.ID)
	}
	return nil
}

func (r *PgxLeaveRequestRepository) DeletePendingLeaveRequest(ctx context.Context, requestID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM leave_requests WHERE request_id = $1 AND status = 'pending';`, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete leave request %s: %w", requestID, err)
	}
	if tag.RowsAffected() == 0 {
		if err := r.explainMissedTransition(ctx, leaveStatusQuery, requestID); !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}
	return nil
}

// PgxLeaveLedger settles approvals across leave_requests and leave_balances
// in one transaction.
type PgxLeaveLedger struct {
	BaseRepository
}

func newPgxLeaveLedger(db *pgxpool.Pool) *PgxLeaveLedger {
	return &PgxLeaveLedger{BaseRepository{Pool: db}}
}

var _ portsrepo.LeaveApprovalRecorder = (*PgxLeaveLedger)(nil)

// findLeaveRequestForUpdate locks the request row until the transaction ends.
func findLeaveRequestForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE request_id = $1 FOR UPDATE;`
	m, err := scanLeaveRequest(tx.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock leave request %s: %w", requestID, err)
	}
	l := mapping.ToDomainLeaveRequest(m)
	return &l, nil
}

func (r *PgxLeaveLedger) RecordLeaveApproval(ctx context.Context, approved domain.LeaveRequest) (*domain.LeaveBalance, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	current, err := findLeaveRequestForUpdate(ctx, tx, approved.ID)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.StatusPending {
		return nil, fmt.Errorf("%s is already %s: %w", current.ID, current.Status, apperrors.ErrInvalidTransition)
	}

	m := mapping.ToModelLeaveRequest(approved)
	_, err = tx.Exec(ctx, `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = NULL
		WHERE request_id = $1;
	`, m.RequestID, m.Status, m.ApprovedBy, m.ApprovedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to approve leave request %s: %w", approved.ID, err)
	}

	charge := `
		INSERT INTO leave_balances (user_id, used)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET used = leave_balances.used + EXCLUDED.used
		RETURNING ` + leaveBalanceColumns + `;
	`
	b, err := scanLeaveBalance(tx.QueryRow(ctx, charge, current.UserID, current.Days()))
	if err != nil {
		return nil, fmt.Errorf("failed to charge leave balance for %s: %w", current.UserID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	balance := mapping.ToDomainLeaveBalance(b)
	return &balance, nil
}
