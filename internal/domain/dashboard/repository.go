package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	EmployeeCounts(ctx context.Context, now time.Time) (active int64, newHires int64, err error)
	EvaluationStats(ctx context.Context) (EvaluationStats, error)
	GoalStats(ctx context.Context, now time.Time) (GoalStats, error)
	TrainingStats(ctx context.Context) (TrainingStats, error)
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)
	MonthlyTrend(ctx context.Context, months int, now time.Time) ([]MonthlyAvgScore, error)
}
