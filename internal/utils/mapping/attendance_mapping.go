package mapping

import (
	"database/sql"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/models"
)

// ToModelAttendance converts a domain AttendanceRecord to a model AttendanceRecord
func ToModelAttendance(d domain.AttendanceRecord) models.AttendanceRecord {
	m := models.AttendanceRecord{
		RecordID:     d.ID,
		UserID:       d.UserID,
		UserName:     d.UserName,
		WorkDate:     d.Date,
		CheckInTime:  toNullString(d.CheckInTime),
		CheckOutTime: toNullString(d.CheckOutTime),
		Status:       string(d.Status),
		Notes:        toNullString(d.Notes),
		Project:      toNullString(d.Project),
	}
	if d.Location != nil {
		m.Latitude = sql.NullFloat64{Float64: d.Location.Latitude, Valid: true}
		m.Longitude = sql.NullFloat64{Float64: d.Location.Longitude, Valid: true}
		m.Address = sql.NullString{String: d.Location.Address, Valid: true}
	}
	return m
}

// ToDomainAttendance converts a model AttendanceRecord to a domain AttendanceRecord
func ToDomainAttendance(m models.AttendanceRecord) domain.AttendanceRecord {
	d := domain.AttendanceRecord{
		ID:           m.RecordID,
		UserID:       m.UserID,
		UserName:     m.UserName,
		Date:         domain.DateOf(m.WorkDate),
		CheckInTime:  fromNullString(m.CheckInTime),
		CheckOutTime: fromNullString(m.CheckOutTime),
		Status:       domain.AttendanceStatus(m.Status),
		Notes:        fromNullString(m.Notes),
		Project:      fromNullString(m.Project),
	}
	if m.Latitude.Valid && m.Longitude.Valid {
		d.Location = &domain.GeoLocation{
			Latitude:  m.Latitude.Float64,
			Longitude: m.Longitude.Float64,
			Address:   m.Address.String,
		}
	}
	return d
}
