package training

import "time"

type Type string

const (
	TypeInternal      Type = "internal"
	TypeExternal      Type = "external"
	TypeOnline        Type = "online"
	TypeCertification Type = "certification"
	TypeWorkshop      Type = "workshop"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusPostponed  Status = "postponed"
)

type Training struct {
	ID             string
	EmployeeID     string
	Title          string
	Description    string
	Type           Type
	Provider       string
	Location       string
	StartDate      time.Time
	EndDate        time.Time
	DurationHours  *float64
	Cost           *float64
	Status         Status
	Score          *float64
	CertificatePath *string
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	EmployeeName *string
}

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Request is an employee-initiated ask for a training, reviewed by a manager.
type Request struct {
	ID               string
	EmployeeID       string
	Title            string
	Type             Type
	Provider         string
	EstimatedCost    *float64
	Justification    string
	ExpectedOutcomes string
	Status           ReviewStatus
	ReviewedBy       *string
	ReviewedAt       *time.Time
	RejectionReason  *string
	CreatedAt        time.Time

	// DTO / Join
	EmployeeName *string
	ReviewerName *string
}
