package domain

// Role decides how much of the data a user can see.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an account that can log in to the site. The stored leave
// figures are the opening balance; the user service reports the live ones
// from the user's LeaveBalance row.
type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              Role   `json:"role"`
	Department        string `json:"department"`
	Location          string `json:"location"`
	IsActive          bool   `json:"isActive"`
	LeaveBalanceTotal int    `json:"leaveBalanceTotal"`
	LeaveTaken        int    `json:"leaveTaken"`
	PasswordHash      string `json:"passwordHash"`
}

// Identity returns the session-facing view of the user.
func (u User) Identity() Identity {
	return Identity{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Location:   u.Location,
	}
}

// Identity is the authenticated user as seen by the rest of the system.
// It never carries credentials.
type Identity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	Location   string `json:"location"`
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session binds a logged-in identity to the ID carried in its access token.
// Each login opens a new session; logging out ends only that one.
type Session struct {
	ID       string   `json:"id"`
	Identity Identity `json:"identity"`
}
