package models

import (
	"database/sql"
	"time"
)

// AttendanceRecord is the attendance_records table row. The check-in
// location is flattened into three nullable columns.
type AttendanceRecord struct {
	RecordID     string          `db:"record_id"`
	UserID       string          `db:"user_id"`
	UserName     string          `db:"user_name"`
	WorkDate     time.Time       `db:"work_date"`
	CheckInTime  sql.NullString  `db:"check_in_time"`
	CheckOutTime sql.NullString  `db:"check_out_time"`
	Status       string          `db:"status"`
	Latitude     sql.NullFloat64 `db:"latitude"`
	Longitude    sql.NullFloat64 `db:"longitude"`
	Address      sql.NullString  `db:"address"`
	Notes        sql.NullString  `db:"notes"`
	Project      sql.NullString  `db:"project"`
}
