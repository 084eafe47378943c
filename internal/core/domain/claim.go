package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimCategories is the canonical list of expense categories, in display order.
var ClaimCategories = []string{
	"Staff welfare",
	"Fuel",
	"Printer & Stationery",
	"Postage & Courier",
	"EB & water Bill",
	"Room Rent & Hotel Bill",
	"Travel & DA",
	"Medical",
	"Mobile Recharge",
	"Safety Shoe",
	"Repairs & Maintenance",
	"Bike & Car - Service & Maintenance",
	"Material Purchase",
	"Transport & Labour",
	"Loading & Unloading",
	"Promotion & Other",
	"Miscellaneous",
}

// IsClaimCategory reports whether category is one of ClaimCategories.
func IsClaimCategory(category string) bool {
	for _, c := range ClaimCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Claim is a single expense reimbursement request.
type Claim struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	UserName       string          `json:"userName"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	Status         ApprovalStatus  `json:"status"`
	ReceiptURL     *string         `json:"receiptUrl,omitempty"`
	Project        string          `json:"project"`
	ApprovedBy     *string         `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	RejectedReason *string         `json:"rejectedReason,omitempty"`
}

// OwnerID returns the user the claim belongs to.
func (c Claim) OwnerID() string { return c.UserID }
