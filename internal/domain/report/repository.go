package report

import (
	"context"
	"time"
)

type Params struct {
	DepartmentID *string
	PeriodID     *string
	DateFrom     *time.Time
	DateTo       *time.Time
}

type Repository interface {
	EmployeePerformance(ctx context.Context, p Params) ([]EmployeePerformanceRow, error)
	DepartmentPerformance(ctx context.Context, p Params) ([]DepartmentPerformanceRow, error)
	Trainings(ctx context.Context, p Params) ([]TrainingRow, error)
	Goals(ctx context.Context, p Params) ([]GoalRow, error)

	SaveRecord(ctx context.Context, r Record) (Record, error)
	ListRecords(ctx context.Context, generatedBy *string) ([]Record, error)
}
