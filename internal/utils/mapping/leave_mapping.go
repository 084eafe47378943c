package mapping

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/models"
)

// ToModelLeaveRequest converts a domain LeaveRequest to a model LeaveRequest
func ToModelLeaveRequest(d domain.LeaveRequest) models.LeaveRequest {
	return models.LeaveRequest{
		RequestID:       d.ID,
		UserID:          d.UserID,
		UserName:        d.UserName,
		LeaveType:       string(d.LeaveType),
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		Reason:          d.Reason,
		Status:          string(d.Status),
		ApprovedBy:      toNullString(d.ApprovedBy),
		ApprovedAt:      toNullTime(d.ApprovedAt),
		RejectionReason: toNullString(d.RejectionReason),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainLeaveRequest converts a model LeaveRequest to a domain LeaveRequest
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		ID:              m.RequestID,
		UserID:          m.UserID,
		UserName:        m.UserName,
		LeaveType:       domain.LeaveType(m.LeaveType),
		StartDate:       domain.DateOf(m.StartDate),
		EndDate:         domain.DateOf(m.EndDate),
		Reason:          m.Reason,
		Status:          domain.ApprovalStatus(m.Status),
		ApprovedBy:      fromNullString(m.ApprovedBy),
		ApprovedAt:      fromNullTime(m.ApprovedAt),
		RejectionReason: fromNullString(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelLeaveBalance converts a domain LeaveBalance to a model LeaveBalance
func ToModelLeaveBalance(d domain.LeaveBalance) models.LeaveBalance {
	return models.LeaveBalance(d)
}

// ToDomainLeaveBalance converts a model LeaveBalance to a domain LeaveBalance
func ToDomainLeaveBalance(m models.LeaveBalance) domain.LeaveBalance {
	return domain.LeaveBalance(m)
}
