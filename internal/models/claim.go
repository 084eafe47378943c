package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Claim is the claims table row.
type Claim struct {
	ClaimID        string          `db:"claim_id"`
	UserID         string          `db:"user_id"`
	UserName       string          `db:"user_name"`
	Category       string          `db:"category"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	ClaimDate      time.Time       `db:"claim_date"`
	Status         string          `db:"status"`
	ReceiptURL     sql.NullString  `db:"receipt_url"`
	Project        string          `db:"project"`
	ApprovedBy     sql.NullString  `db:"approved_by"`
	ApprovedAt     sql.NullTime    `db:"approved_at"`
	RejectedReason sql.NullString  `db:"rejected_reason"`
}
