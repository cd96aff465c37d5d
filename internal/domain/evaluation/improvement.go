package evaluation

import (
	"context"
	"time"
)

type PlanStatus string

const (
	PlanActive     PlanStatus = "active"
	PlanCompleted  PlanStatus = "completed"
	PlanExtended   PlanStatus = "extended"
	PlanTerminated PlanStatus = "terminated"
)

// IsClosed reports whether the plan has reached a final state. Closed
// plans reject further updates.
func (s PlanStatus) IsClosed() bool {
	return s == PlanCompleted || s == PlanTerminated
}

// ImprovementPlan is a remediation programme opened against a poor
// evaluation. It stays linked to the evaluation that triggered it.
type ImprovementPlan struct {
	ID              string
	EmployeeID      string
	EvaluationID    string
	StartDate       time.Time
	EndDate         time.Time
	Status          PlanStatus
	Objectives      string
	ActionPlan      string
	SuccessCriteria string
	ProgressNotes   *string
	Outcome         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
	PeriodName   *string
}

type ImprovementPlanFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type ImprovementPlanRepository interface {
	CreatePlan(ctx context.Context, p ImprovementPlan) (ImprovementPlan, error)
	GetPlanByID(ctx context.Context, id string) (ImprovementPlan, error)
	ListPlans(ctx context.Context, filter ImprovementPlanFilter) ([]ImprovementPlan, int64, error)
	UpdatePlan(ctx context.Context, p ImprovementPlan) error
}
