package dto

import (
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateClaimRequest defines the data needed to submit a new expense claim.
type CreateClaimRequest struct {
	Category    string           `json:"category" binding:"required,claimcategory"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Project     string           `json:"project" binding:"required"`
	ReceiptURL  *string          `json:"receiptUrl"`
}

// UpdateClaimRequest defines the fields the owner may change while a claim is pending.
type UpdateClaimRequest struct {
	Category    *string          `json:"category" binding:"omitempty,claimcategory"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,min=1"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Project     *string          `json:"project" binding:"omitempty,min=1"`
	ReceiptURL  *string          `json:"receiptUrl"`
}

// ListClaimsParams defines query parameters for listing claims.
type ListClaimsParams struct {
	Status   string `form:"status" binding:"omitempty,oneof=all pending approved rejected"`
	Category string `form:"category"`
	Project  string `form:"project"`
	UserID   string `form:"userId"`
	Search   string `form:"search"`
	DateRangeParams
	PageParams
}

// ToCriteria converts the params into claim filters.
func (p ListClaimsParams) ToCriteria() query.ClaimCriteria {
	return query.ClaimCriteria{
		Status:   p.Status,
		Category: p.Category,
		Project:  p.Project,
		UserID:   p.UserID,
		Search:   p.Search,
		Dates:    p.ToDateRange(),
	}
}

// ClaimResponse defines the claim data returned by the API.
type ClaimResponse struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	UserName        string                `json:"userName"`
	Category        string                `json:"category"`
	Amount          decimal.Decimal       `json:"amount"`
	AmountFormatted string                `json:"amountFormatted"`
	Description     string                `json:"description"`
	Date            string                `json:"date"`
	Status          domain.ApprovalStatus `json:"status"`
	ReceiptURL      *string               `json:"receiptUrl,omitempty"`
	Project         string                `json:"project"`
	ApprovedBy      *string               `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	RejectedReason  *string               `json:"rejectedReason,omitempty"`
}

// ListClaimsResponse wraps a page of claims.
type ListClaimsResponse struct {
	Claims    []ClaimResponse `json:"claims"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToClaimResponse converts a domain.Claim to ClaimResponse DTO
func ToClaimResponse(c *domain.Claim) ClaimResponse {
	return ClaimResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		UserName:        c.UserName,
		Category:        c.Category,
		Amount:          c.Amount,
		AmountFormatted: utils.FormatCurrency(c.Amount),
		Description:     c.Description,
		Date:            domain.FormatDate(c.Date),
		Status:          c.Status,
		ReceiptURL:      c.ReceiptURL,
		Project:         c.Project,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		RejectedReason:  c.RejectedReason,
	}
}

// ToClaimResponses converts a slice of domain.Claim.
func ToClaimResponses(claims []domain.Claim) []ClaimResponse {
	out := make([]ClaimResponse, len(claims))
	for i := range claims {
		out[i] = ToClaimResponse(&claims[i])
	}
	return out
}
