package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/dashboard"
)

type Service struct {
	dashboard.Repository
}

func NewService(repo dashboard.Repository) *Service {
	return &Service{Repository: repo}
}

// Stats assembles the dashboard snapshot from the aggregate queries.
func (s *Service) Stats(ctx context.Context) (dashboard.Stats, error) {
	now := time.Now()

	active, newHires, err := s.Repository.EmployeeCounts(ctx, now)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("employee counts: %w", err)
	}
	evaluations, err := s.Repository.EvaluationStats(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("evaluation stats: %w", err)
	}
	goals, err := s.Repository.GoalStats(ctx, now)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("goal stats: %w", err)
	}
	trainings, err := s.Repository.TrainingStats(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("training stats: %w", err)
	}
	departments, err := s.Repository.DepartmentStats(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("department stats: %w", err)
	}
	trend, err := s.Repository.MonthlyTrend(ctx, 6, now)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("monthly trend: %w", err)
	}

	return dashboard.Stats{
		ActiveEmployees:   active,
		NewHiresThisMonth: newHires,
		Evaluations:       evaluations,
		Goals:             goals,
		Trainings:         trainings,
		Departments:       departments,
		MonthlyTrend:      trend,
	}, nil
}
