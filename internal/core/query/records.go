package query

import (
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// ClaimSearchFields are the claim fields matched by free-text search.
func ClaimSearchFields(c domain.Claim) []string {
	return []string{c.Category, c.Description, c.Project}
}

// AttendanceSearchFields are the attendance fields matched by free-text search.
func AttendanceSearchFields(a domain.AttendanceRecord) []string {
	fields := []string{a.UserName}
	if a.Notes != nil {
		fields = append(fields, *a.Notes)
	}
	if a.Location != nil {
		fields = append(fields, a.Location.Address)
	}
	return fields
}

// LeaveSearchFields are the leave request fields matched by free-text search.
func LeaveSearchFields(l domain.LeaveRequest) []string {
	return []string{string(l.LeaveType), l.Reason}
}

// UserSearchFields are the user fields matched by free-text search.
func UserSearchFields(u domain.User) []string {
	return []string{u.ID, u.Name, u.Email, u.Department, u.Location}
}

// ClaimCriteria is the set of filters the claims list and report accept.
type ClaimCriteria struct {
	Status   string
	Category string
	Project  string
	UserID   string
	Search   string
	Dates    DateRange
}

// Predicates turns the criteria into predicates; unset criteria are dropped.
func (c ClaimCriteria) Predicates() []Predicate[domain.Claim] {
	return compact(
		FieldEquals(c.Status, func(r domain.Claim) string { return string(r.Status) }),
		FieldEquals(c.Category, func(r domain.Claim) string { return r.Category }),
		FieldEquals(c.Project, func(r domain.Claim) string { return r.Project }),
		FieldEquals(c.UserID, func(r domain.Claim) string { return r.UserID }),
		DateInRange(c.Dates, func(r domain.Claim) time.Time { return r.Date }),
		TextSearch(c.Search, ClaimSearchFields),
	)
}

// AttendanceCriteria is the set of filters the attendance list and report accept.
type AttendanceCriteria struct {
	Status string
	UserID string
	Search string
	Dates  DateRange
}

// Predicates turns the criteria into predicates; unset criteria are dropped.
func (c AttendanceCriteria) Predicates() []Predicate[domain.AttendanceRecord] {
	return compact(
		FieldEquals(c.Status, func(r domain.AttendanceRecord) string { return string(r.Status) }),
		FieldEquals(c.UserID, func(r domain.AttendanceRecord) string { return r.UserID }),
		DateInRange(c.Dates, func(r domain.AttendanceRecord) time.Time { return r.Date }),
		TextSearch(c.Search, AttendanceSearchFields),
	)
}

// LeaveCriteria is the set of filters the leave list and report accept.
// The date range is matched against the request's start date.
type LeaveCriteria struct {
	Status    string
	LeaveType string
	UserID    string
	Search    string
	Dates     DateRange
}

// Predicates turns the criteria into predicates; unset criteria are dropped.
func (c LeaveCriteria) Predicates() []Predicate[domain.LeaveRequest] {
	return compact(
		FieldEquals(c.Status, func(r domain.LeaveRequest) string { return string(r.Status) }),
		FieldEquals(c.LeaveType, func(r domain.LeaveRequest) string { return string(r.LeaveType) }),
		FieldEquals(c.UserID, func(r domain.LeaveRequest) string { return r.UserID }),
		DateInRange(c.Dates, func(r domain.LeaveRequest) time.Time { return r.StartDate }),
		TextSearch(c.Search, LeaveSearchFields),
	)
}

// UserCriteria filters the admin user list.
type UserCriteria struct {
	Role   string
	Search string
}

// Predicates turns the criteria into predicates; unset criteria are dropped.
func (c UserCriteria) Predicates() []Predicate[domain.User] {
	return compact(
		FieldEquals(c.Role, func(u domain.User) string { return string(u.Role) }),
		TextSearch(c.Search, UserSearchFields),
	)
}

func compact[T any](predicates ...Predicate[T]) []Predicate[T] {
	out := predicates[:0]
	for _, p := range predicates {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
