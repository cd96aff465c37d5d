package leave

import "time"

type Type struct {
	ID                string
	Name              string
	Description       string
	DefaultAllocation float64
	RequiresApproval  bool
	ColorCode         string
	IsActive          bool
	CreatedAt         time.Time
}

// Balance tracks one employee's allocation for one leave type and year.
// Invariant: Remaining() = Allocated + CarriedOver - Used - Pending at
// every observation point.
type Balance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	Allocated   float64
	CarriedOver float64
	Used        float64
	Pending     float64
	UpdatedAt   time.Time

	// DTO / Join
	LeaveTypeName *string
}

func (b Balance) Remaining() float64 {
	return b.Allocated + b.CarriedOver - b.Used - b.Pending
}

type ApproverRole string

const (
	ApproverDepartmentManager ApproverRole = "department_manager"
	ApproverHRManager         ApproverRole = "hr_manager"
	ApproverGeneric           ApproverRole = "approver"
)

// ApprovalLevel configures one step of a department's approval chain.
// Levels are ordered ascending; the workflow records at most two.
type ApprovalLevel struct {
	ID           string
	DepartmentID string
	Level        int
	ApproverRole ApproverRole
	IsActive     bool
	CreatedAt    time.Time
}

type HalfDayPeriod string

const (
	HalfDayMorning   HalfDayPeriod = "morning"
	HalfDayAfternoon HalfDayPeriod = "afternoon"
)

type Request struct {
	ID                string
	EmployeeID        string
	LeaveTypeID       *string
	LeaveTypeOverride *string
	StartDate         time.Time
	EndDate           time.Time
	TotalDays         float64
	IsHalfDay         bool
	HalfDayPeriod     *HalfDayPeriod
	Reason            string
	Notes             *string
	AttachmentPath    *string
	ContactDuringLeave *string
	ContactPhone      *string
	Status            Status

	FirstApproverID   *string
	FirstApprovedAt   *time.Time
	FirstComments     *string
	SecondApproverID  *string
	SecondApprovedAt  *time.Time
	SecondComments    *string

	RejectedByID    *string
	RejectionDate   *time.Time
	RejectionReason *string

	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName       *string
	EmployeeCode       *string
	DepartmentName     *string
	LeaveTypeName      *string
	FirstApproverName  *string
	SecondApproverName *string
}

// TypeLabel resolves the display name: the linked type, or the free-text
// override for ad-hoc leave.
func (r Request) TypeLabel() string {
	if r.LeaveTypeName != nil && *r.LeaveTypeName != "" {
		return *r.LeaveTypeName
	}
	if r.LeaveTypeOverride != nil {
		return *r.LeaveTypeOverride
	}
	return ""
}

type DocumentType string

const (
	DocumentApprovalMemo DocumentType = "approval_memo"
)

// RequestDocument records a generated artifact tied to one request.
type RequestDocument struct {
	ID          string
	RequestID   string
	Type        DocumentType
	FilePath    string
	GeneratedBy string
	GeneratedAt time.Time
}
