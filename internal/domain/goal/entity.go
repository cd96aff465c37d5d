package goal

import "time"

type Type string

const (
	TypePerformance Type = "performance"
	TypeDevelopment Type = "development"
	TypeProject     Type = "project"
	TypePersonal    Type = "personal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
	StatusCancelled  Status = "cancelled"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Goal struct {
	ID              string
	EmployeeID      string
	Title           string
	Description     string
	Type            Type
	TargetDate      time.Time
	Status          Status
	Progress        float64
	Priority        Priority
	SuccessCriteria *string
	Obstacles       *string
	SupportNeeded   *string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName *string
}

// ApplyProgress sets the progress percentage and derives status from it.
// Cancelled goals keep their status.
func (g *Goal) ApplyProgress(pct float64) {
	g.Progress = pct
	if g.Status == StatusCancelled {
		return
	}
	switch {
	case pct >= 100:
		g.Status = StatusCompleted
	case pct > 0:
		g.Status = StatusInProgress
	}
}

// IsOverdue reports whether the target date has passed without completion.
func (g *Goal) IsOverdue(now time.Time) bool {
	return g.Status != StatusCompleted && g.Status != StatusCancelled &&
		g.TargetDate.Before(now)
}

type ProgressEntry struct {
	ID         string
	GoalID     string
	Progress   float64
	Comments   *string
	RecordedBy string
	RecordedAt time.Time
}
