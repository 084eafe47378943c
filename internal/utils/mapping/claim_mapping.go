package mapping

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/models"
)

// ToModelClaim converts a domain Claim to a model Claim
func ToModelClaim(d domain.Claim) models.Claim {
	return models.Claim{
		ClaimID:        d.ID,
		UserID:         d.UserID,
		UserName:       d.UserName,
		Category:       d.Category,
		Amount:         d.Amount,
		Description:    d.Description,
		ClaimDate:      d.Date,
		Status:         string(d.Status),
		ReceiptURL:     toNullString(d.ReceiptURL),
		Project:        d.Project,
		ApprovedBy:     toNullString(d.ApprovedBy),
		ApprovedAt:     toNullTime(d.ApprovedAt),
		RejectedReason: toNullString(d.RejectedReason),
	}
}

// ToDomainClaim converts a model Claim to a domain Claim
func ToDomainClaim(m models.Claim) domain.Claim {
	return domain.Claim{
		ID:             m.ClaimID,
		UserID:         m.UserID,
		UserName:       m.UserName,
		Category:       m.Category,
		Amount:         m.Amount,
		Description:    m.Description,
		Date:           domain.DateOf(m.ClaimDate),
		Status:         domain.ApprovalStatus(m.Status),
		ReceiptURL:     fromNullString(m.ReceiptURL),
		Project:        m.Project,
		ApprovedBy:     fromNullString(m.ApprovedBy),
		ApprovedAt:     fromNullTime(m.ApprovedAt),
		RejectedReason: fromNullString(m.RejectedReason),
	}
}
