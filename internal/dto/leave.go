package dto

import (
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
)

// CreateLeaveRequest defines the data needed to request leave.
type CreateLeaveRequest struct {
	LeaveType string `json:"leaveType" binding:"required,leavetype"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required"`
}

// ListLeaveParams defines query parameters for listing leave requests.
// The date range applies to the start date.
type ListLeaveParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=all pending approved rejected"`
	LeaveType string `form:"leaveType"`
	UserID    string `form:"userId"`
	Search    string `form:"search"`
	DateRangeParams
	PageParams
}

// ToCriteria converts the params into leave filters.
func (p ListLeaveParams) ToCriteria() query.LeaveCriteria {
	return query.LeaveCriteria{
		Status:    p.Status,
		LeaveType: p.LeaveType,
		UserID:    p.UserID,
		Search:    p.Search,
		Dates:     p.ToDateRange(),
	}
}

// UpdateLeaveBalanceRequest overwrites only the fields that are present.
type UpdateLeaveBalanceRequest struct {
	Annual       *int `json:"annual" binding:"omitempty,min=0"`
	Sick         *int `json:"sick" binding:"omitempty,min=0"`
	Personal     *int `json:"personal" binding:"omitempty,min=0"`
	Compensatory *int `json:"compensatory" binding:"omitempty,min=0"`
	Total        *int `json:"total" binding:"omitempty,min=0"`
	Used         *int `json:"used" binding:"omitempty,min=0"`
}

// ToDomain converts the request into a balance update.
func (r UpdateLeaveBalanceRequest) ToDomain() domain.LeaveBalanceUpdate {
	return domain.LeaveBalanceUpdate{
		Annual:       r.Annual,
		Sick:         r.Sick,
		Personal:     r.Personal,
		Compensatory: r.Compensatory,
		Total:        r.Total,
		Used:         r.Used,
	}
}

// LeaveRequestResponse defines the leave request data returned by the API.
type LeaveRequestResponse struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	UserName        string                `json:"userName"`
	LeaveType       domain.LeaveType      `json:"leaveType"`
	StartDate       string                `json:"startDate"`
	EndDate         string                `json:"endDate"`
	Days            int                   `json:"days"`
	Reason          string                `json:"reason"`
	Status          domain.ApprovalStatus `json:"status"`
	ApprovedBy      *string               `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	RejectionReason *string               `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ListLeaveResponse wraps a page of leave requests.
type ListLeaveResponse struct {
	Requests  []LeaveRequestResponse `json:"requests"`
	NextToken string                 `json:"nextToken,omitempty"`
}

// ToLeaveRequestResponse converts a domain.LeaveRequest to LeaveRequestResponse DTO
func ToLeaveRequestResponse(l *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		UserName:        l.UserName,
		LeaveType:       l.LeaveType,
		StartDate:       domain.FormatDate(l.StartDate),
		EndDate:         domain.FormatDate(l.EndDate),
		Days:            l.Days(),
		Reason:          l.Reason,
		Status:          l.Status,
		ApprovedBy:      l.ApprovedBy,
		ApprovedAt:      l.ApprovedAt,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt,
	}
}

// ToLeaveRequestResponses converts a slice of domain.LeaveRequest.
func ToLeaveRequestResponses(requests []domain.LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, len(requests))
	for i := range requests {
		out[i] = ToLeaveRequestResponse(&requests[i])
	}
	return out
}

// LeaveBalanceResponse is a balance plus the derived available days.
type LeaveBalanceResponse struct {
	UserID       string `json:"userId"`
	Annual       int    `json:"annual"`
	Sick         int    `json:"sick"`
	Personal     int    `json:"personal"`
	Compensatory int    `json:"compensatory"`
	Total        int    `json:"total"`
	Used         int    `json:"used"`
	Available    int    `json:"available"`
}

// ToLeaveBalanceResponse converts a domain.LeaveBalance to LeaveBalanceResponse DTO
func ToLeaveBalanceResponse(b *domain.LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		UserID:       b.UserID,
		Annual:       b.Annual,
		Sick:         b.Sick,
		Personal:     b.Personal,
		Compensatory: b.Compensatory,
		Total:        b.Total,
		Used:         b.Used,
		Available:    b.Available(),
	}
}
