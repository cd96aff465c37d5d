package report

import "time"

type Type string

const (
	TypeEmployeePerformance   Type = "employee_performance"
	TypeDepartmentPerformance Type = "department_performance"
	TypeTraining              Type = "training_report"
	TypeGoalProgress          Type = "goal_progress"
)

// Record is the persisted metadata of a generated report.
type Record struct {
	ID          string
	Name        string
	Type        Type
	Format      string
	Parameters  map[string]any
	GeneratedBy string
	GeneratedAt time.Time
}

// EmployeePerformanceRow aggregates evaluation results per employee.
type EmployeePerformanceRow struct {
	EmployeeID      string
	Name            string
	Department      string
	Position        string
	AvgScore        float64
	EvaluationCount int64
}

type DepartmentPerformanceRow struct {
	Department      string
	EmployeeCount   int64
	AvgScore        float64
	EvaluationCount int64
}

type TrainingRow struct {
	Employee       string
	Name           string
	Type           string
	Status         string
	Score          *float64
	CompletionDate *time.Time
}

type GoalRow struct {
	Title    string
	Employee string
	Type     string
	Status   string
	Progress float64
	DueDate  time.Time
}
