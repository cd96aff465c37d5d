package employee

import "time"

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
	StatusProbation  Status = "probation"
	StatusContract   Status = "contract"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type Employee struct {
	ID               string
	UserID           *string
	EmployeeCode     string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DepartmentID     string
	Position         string
	HireDate         time.Time
	Status           Status
	ManagerID        *string
	Gender           *Gender
	DateOfBirth      *time.Time
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	Salary           *float64
	CreatedAt        time.Time

	// DTO / Join
	DepartmentName *string
	ManagerName    *string
}

// FullName joins first and last name for display
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// YearsOfService counts whole years since the hire date
func (e Employee) YearsOfService(now time.Time) int {
	years := int(now.Sub(e.HireDate).Hours() / 24 / 365)
	if years < 0 {
		return 0
	}
	return years
}

// HasLinkedAccount reports whether a login identity is linked
func (e Employee) HasLinkedAccount() bool {
	return e.UserID != nil && *e.UserID != ""
}

// Profile is the self-service profile placeholder created alongside a
// provisioned account and completed by the employee later.
type Profile struct {
	ID                string
	EmployeeID        string
	Bio               *string
	LinkedInProfile   *string
	ProfilePictureURL *string
	IsProfileComplete bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
