package models

// User is the users table row.
type User struct {
	UserID            string `db:"user_id"`
	Name              string `db:"name"`
	Email             string `db:"email"`
	Role              string `db:"role"`
	Department        string `db:"department"`
	Location          string `db:"location"`
	IsActive          bool   `db:"is_active"`
	LeaveBalanceTotal int    `db:"leave_balance_total"`
	LeaveTaken        int    `db:"leave_taken"`
	PasswordHash      string `db:"password_hash"`
}
