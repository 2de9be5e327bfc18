package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Self-service only
	RoleAdmin    Role = "admin"    // Full administrative access
	RoleHR       Role = "hr"       // Same scope as admin
)

// SelfAssignableRoles lists the roles a new account may request at signup.
var SelfAssignableRoles = []string{string(RoleEmployee), string(RoleHR)}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin, RoleHR:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries the administrative scope.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleHR
}

type User struct {
	ID            int64
	EmployeeID    string
	Username      *string // NULL on rows created before usernames existed
	Email         string
	PasswordHash  string
	Role          Role
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin checks if user is admin or hr
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
