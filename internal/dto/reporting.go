package dto

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AmountGroupResponse is one bucket of a claims summary.
type AmountGroupResponse struct {
	Key             string          `json:"key"`
	Count           int             `json:"count"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
}

// ClaimsReportResponse is the claims summary as returned by the API.
type ClaimsReportResponse struct {
	TotalCount     int                   `json:"totalCount"`
	TotalAmount    string                `json:"totalAmount"`
	ApprovedAmount string                `json:"approvedAmount"`
	PendingAmount  string                `json:"pendingAmount"`
	RejectedAmount string                `json:"rejectedAmount"`
	ApprovalRate   int                   `json:"approvalRate"`
	ByStatus       []AmountGroupResponse `json:"byStatus"`
	ByCategory     []AmountGroupResponse `json:"byCategory"`
	ByProject      []AmountGroupResponse `json:"byProject"`
	Claims         []ClaimResponse       `json:"claims"`
}

// AttendanceReportResponse is the attendance summary as returned by the API.
type AttendanceReportResponse struct {
	TotalDays      int                  `json:"totalDays"`
	PresentDays    int                  `json:"presentDays"`
	LateDays       int                  `json:"lateDays"`
	AbsentDays     int                  `json:"absentDays"`
	LeaveDays      int                  `json:"leaveDays"`
	AttendanceRate int                  `json:"attendanceRate"`
	ByStatus       []domain.CountGroup  `json:"byStatus"`
	Records        []AttendanceResponse `json:"records"`
}

// LeaveReportResponse is the leave summary as returned by the API.
type LeaveReportResponse struct {
	TotalRequests int                    `json:"totalRequests"`
	TotalDays     int                    `json:"totalDays"`
	ApprovalRate  int                    `json:"approvalRate"`
	ByStatus      []domain.CountGroup    `json:"byStatus"`
	ByType        []domain.CountGroup    `json:"byType"`
	Requests      []LeaveRequestResponse `json:"requests"`
}

// DashboardResponse is the home page summary.
type DashboardResponse struct {
	domain.Dashboard
	TotalClaimAmountFormatted string `json:"totalClaimAmountFormatted"`
}

func toAmountGroupResponses(groups []domain.AmountGroup) []AmountGroupResponse {
	out := make([]AmountGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = AmountGroupResponse{
			Key:             g.Key,
			Count:           g.Count,
			Amount:          g.Amount,
			AmountFormatted: utils.FormatCurrency(g.Amount),
		}
	}
	return out
}

// ToClaimsReportResponse converts a domain.ClaimsReport to its DTO.
func ToClaimsReportResponse(r *domain.ClaimsReport) ClaimsReportResponse {
	return ClaimsReportResponse{
		TotalCount:     r.TotalCount,
		TotalAmount:    utils.FormatCurrency(r.TotalAmount),
		ApprovedAmount: utils.FormatCurrency(r.ApprovedAmount),
		PendingAmount:  utils.FormatCurrency(r.PendingAmount),
		RejectedAmount: utils.FormatCurrency(r.RejectedAmount),
		ApprovalRate:   r.ApprovalRate,
		ByStatus:       toAmountGroupResponses(r.ByStatus),
		ByCategory:     toAmountGroupResponses(r.ByCategory),
		ByProject:      toAmountGroupResponses(r.ByProject),
		Claims:         ToClaimResponses(r.Claims),
	}
}

// ToAttendanceReportResponse converts a domain.AttendanceReport to its DTO.
func ToAttendanceReportResponse(r *domain.AttendanceReport) AttendanceReportResponse {
	return AttendanceReportResponse{
		TotalDays:      r.TotalDays,
		PresentDays:    r.PresentDays,
		LateDays:       r.LateDays,
		AbsentDays:     r.AbsentDays,
		LeaveDays:      r.LeaveDays,
		AttendanceRate: r.AttendanceRate,
		ByStatus:       r.ByStatus,
		Records:        ToAttendanceResponses(r.Records),
	}
}

// ToLeaveReportResponse converts a domain.LeaveReport to its DTO.
func ToLeaveReportResponse(r *domain.LeaveReport) LeaveReportResponse {
	return LeaveReportResponse{
		TotalRequests: r.TotalRequests,
		TotalDays:     r.TotalDays,
		ApprovalRate:  r.ApprovalRate,
		ByStatus:      r.ByStatus,
		ByType:        r.ByType,
		Requests:      ToLeaveRequestResponses(r.Requests),
	}
}

// ToDashboardResponse converts a domain.Dashboard to its DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Dashboard:                 *d,
		TotalClaimAmountFormatted: utils.FormatCurrency(d.TotalClaimAmount),
	}
}
