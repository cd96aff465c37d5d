package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"      // Console administrator - full access
	RoleHRManager Role = "hr_manager" // HR staff - manages employees, second-level approver
	RoleManager   Role = "manager"    // Department manager - first-level approver
	RoleEmployee  Role = "employee"   // Self-service portal access only
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash *string
	Role         Role
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if the user administers the console
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if the user can act as a leave approver
func (u *User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleHRManager || u.Role == RoleManager
}
