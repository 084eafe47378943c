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

type PgxClaimRepository struct {
	BaseRepository
}

func newPgxClaimRepository(db *pgxpool.Pool) *PgxClaimRepository {
	return &PgxClaimRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ClaimRepositoryFacade = (*PgxClaimRepository)(nil)

const claimColumns = `claim_id, user_id, user_name, category, amount, description, claim_date,
	status, receipt_url, project, approved_by, approved_at, rejected_reason`

func scanClaim(row pgx.Row) (models.Claim, error) {
	var m models.Claim
	err := row.Scan(
		&m.ClaimID,
		&m.UserID,
		&m.UserName,
		&m.Category,
		&m.Amount,
		&m.Description,
		&m.ClaimDate,
		&m.Status,
		&m.ReceiptURL,
		&m.Project,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedReason,
	)
	return m, err
}

func (r *PgxClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE claim_id = $1;`
	m, err := scanClaim(r.Pool.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find claim by ID %s: %w", claimID, err)
	}
	c := mapping.ToDomainClaim(m)
	return &c, nil
}

func (r *PgxClaimRepository) ListClaims(ctx context.Context) ([]domain.Claim, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+claimColumns+` FROM claims ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	claims := []domain.Claim{}
	for rows.Next() {
		m, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim row: %w", err)
		}
		claims = append(claims, mapping.ToDomainClaim(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating claim rows: %w", err)
	}
	return claims, nil
}

func (r *PgxClaimRepository) SaveClaim(ctx context.Context, claim domain.Claim) error {
	m := mapping.ToModelClaim(claim)
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClaimID, m.UserID, m.UserName, m.Category, m.Amount, m.Description, m.ClaimDate,
		m.Status, m.ReceiptURL, m.Project, m.ApprovedBy, m.ApprovedAt, m.RejectedReason,
	)
	if err != nil {
		return mapWriteError(err, "failed to save claim")
	}
	return nil
}

func (r *PgxClaimRepository) UpdateClaim(ctx context.Context, claim domain.Claim) error {
	m := mapping.ToModelClaim(claim)
	query := `
		UPDATE claims
		SET user_id = $2, user_name = $3, category = $4, amount = $5, description = $6,
		    claim_date = $7, status = $8, receipt_url = $9, project = $10,
		    approved_by = $11, approved_at = $12, rejected_reason = $13
		WHERE claim_id = $1;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClaimID, m.UserID, m.UserName, m.Category, m.Amount, m.Description, m.ClaimDate,
		m.Status, m.ReceiptURL, m.Project, m.ApprovedBy, m.ApprovedAt, m.RejectedReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update claim %s: %w", claim.ID, err)
	}
	return nil
}

func (r *PgxClaimRepository) DeleteClaim(ctx context.Context, claimID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM claims WHERE claim_id = $1;`, claimID); err != nil {
		return fmt.Errorf("failed to delete claim %s: %w", claimID, err)
	}
	return nil
}

const claimStatusQuery = `SELECT status FROM claims WHERE claim_id = $1;`

func (r *PgxClaimRepository) TransitionClaim(ctx context.Context, claim domain.Claim) error {
	m := mapping.ToModelClaim(claim)
	query := `
		UPDATE claims
		SET category = $2, amount = $3, description = $4, claim_date = $5, status = $6,
		    receipt_url = $7, project = $8, approved_by = $9, approved_at = $10, rejected_reason = $11
		WHERE claim_id = $1 AND status = 'pending';
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClaimID, m.Category, m.Amount, m.Description, m.ClaimDate, m.Status,
		m.ReceiptURL, m.Project, m.ApprovedBy, m.ApprovedAt, m.RejectedReason,
	)
	if err != nil {
		return fmt.Errorf("failed to transition claim %s: %w", claim.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMissedTransition(ctx, claimStatusQuery, claim.ID)
	}
	return nil
}

func (r *PgxClaimRepository) DeletePendingClaim(ctx context.Context, claimID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM claims WHERE claim_id = $1 AND status = 'pending';`, claimID)
	if err != nil {
		return fmt.Errorf("failed to delete claim %s: %w", claimID, err)
	}
	if tag.RowsAffected() == 0 {
		if err := r.explainMissedTransition(ctx, claimStatusQuery, claimID); !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}
	return nil
}
