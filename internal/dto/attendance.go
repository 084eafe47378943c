package dto

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
)

// CheckInRequest records today's arrival for the logged-in user.
type CheckInRequest struct {
	Status   string           `json:"status" binding:"omitempty,attendancestatus"`
	Location *LocationRequest `json:"location"`
	Notes    *string          `json:"notes"`
	Project  *string          `json:"project"`
}

// CheckOutRequest records today's departure for the logged-in user.
type CheckOutRequest struct {
	Notes *string `json:"notes"`
}

// CreateAttendanceRequest lets an admin record attendance for any user and day.
type CreateAttendanceRequest struct {
	UserID       string           `json:"userId" binding:"required"`
	Date         string           `json:"date" binding:"required,datetime=2006-01-02"`
	Status       string           `json:"status" binding:"required,attendancestatus"`
	CheckInTime  *string          `json:"checkInTime" binding:"omitempty,len=5,datetime=15:04"`
	CheckOutTime *string          `json:"checkOutTime" binding:"omitempty,len=5,datetime=15:04"`
	Location     *LocationRequest `json:"location"`
	Notes        *string          `json:"notes"`
	Project      *string          `json:"project"`
}

// UpdateAttendanceRequest lets an admin correct an attendance record.
type UpdateAttendanceRequest struct {
	Status       *string          `json:"status" binding:"omitempty,attendancestatus"`
	CheckInTime  *string          `json:"checkInTime" binding:"omitempty,len=5,datetime=15:04"`
	CheckOutTime *string          `json:"checkOutTime" binding:"omitempty,len=5,datetime=15:04"`
	Location     *LocationRequest `json:"location"`
	Notes        *string          `json:"notes"`
	Project      *string          `json:"project"`
}

// ListAttendanceParams defines query parameters for listing attendance.
type ListAttendanceParams struct {
	Status string `form:"status"`
	UserID string `form:"userId"`
	Search string `form:"search"`
	DateRangeParams
	PageParams
}

// ToCriteria converts the params into attendance filters.
func (p ListAttendanceParams) ToCriteria() query.AttendanceCriteria {
	return query.AttendanceCriteria{
		Status: p.Status,
		UserID: p.UserID,
		Search: p.Search,
		Dates:  p.ToDateRange(),
	}
}

// AttendanceResponse defines the attendance data returned by the API.
type AttendanceResponse struct {
	ID           string                  `json:"id"`
	UserID       string                  `json:"userId"`
	UserName     string                  `json:"userName"`
	Date         string                  `json:"date"`
	CheckInTime  *string                 `json:"checkInTime,omitempty"`
	CheckOutTime *string                 `json:"checkOutTime,omitempty"`
	Status       domain.AttendanceStatus `json:"status"`
	Location     *domain.GeoLocation     `json:"location,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
	Project      *string                 `json:"project,omitempty"`
}

// ListAttendanceResponse wraps a page of attendance records.
type ListAttendanceResponse struct {
	Records   []AttendanceResponse `json:"records"`
	NextToken string               `json:"nextToken,omitempty"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to AttendanceResponse DTO
func ToAttendanceResponse(a *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		UserName:     a.UserName,
		Date:         domain.FormatDate(a.Date),
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       a.Status,
		Location:     a.Location,
		Notes:        a.Notes,
		Project:      a.Project,
	}
}

// ToAttendanceResponses converts a slice of domain.AttendanceRecord.
func ToAttendanceResponses(records []domain.AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, len(records))
	for i := range records {
		out[i] = ToAttendanceResponse(&records[i])
	}
	return out
}
