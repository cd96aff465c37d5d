package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/dashboard"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) EmployeeCounts(ctx context.Context, now time.Time) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var active, newHires int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE status = 'active'),
			   COUNT(*) FILTER (WHERE hire_date >= $1)
		FROM employees
	`, monthStart).Scan(&active, &newHires)
	if err != nil {
		return 0, 0, fmt.Errorf("employee counts: %w", err)
	}
	return active, newHires, nil
}

func (r *dashboardRepositoryImpl) EvaluationStats(ctx context.Context) (dashboard.EvaluationStats, error) {
	q := GetQuerier(ctx, r.db)
	var s dashboard.EvaluationStats
	err := q.QueryRow(ctx, `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status IN ('draft', 'submitted', 'under_review')),
			   COUNT(*) FILTER (WHERE status IN ('reviewed', 'approved')),
			   COALESCE(AVG(overall_score), 0)
		FROM evaluations
	`).Scan(&s.Total, &s.Pending, &s.Completed, &s.AvgScore)
	if err != nil {
		return dashboard.EvaluationStats{}, fmt.Errorf("evaluation stats: %w", err)
	}
	return s, nil
}

func (r *dashboardRepositoryImpl) GoalStats(ctx context.Context, now time.Time) (dashboard.GoalStats, error) {
	q := GetQuerier(ctx, r.db)
	var s dashboard.GoalStats
	err := q.QueryRow(ctx, `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'completed'),
			   COUNT(*) FILTER (WHERE status NOT IN ('completed', 'cancelled') AND target_date < $1),
			   COALESCE(AVG(progress), 0)
		FROM goals
	`, now).Scan(&s.Total, &s.Completed, &s.Overdue, &s.AvgProgress)
	if err != nil {
		return dashboard.GoalStats{}, fmt.Errorf("goal stats: %w", err)
	}
	return s, nil
}

func (r *dashboardRepositoryImpl) TrainingStats(ctx context.Context) (dashboard.TrainingStats, error) {
	q := GetQuerier(ctx, r.db)
	var s dashboard.TrainingStats
	err := q.QueryRow(ctx, `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'completed'),
			   COUNT(*) FILTER (WHERE status = 'in_progress'),
			   COALESCE(AVG(score), 0)
		FROM trainings
	`).Scan(&s.Total, &s.Completed, &s.Ongoing, &s.AvgScore)
	if err != nil {
		return dashboard.TrainingStats{}, fmt.Errorf("training stats: %w", err)
	}
	return s, nil
}

func (r *dashboardRepositoryImpl) DepartmentStats(ctx context.Context) ([]dashboard.DepartmentStat, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT d.name,
			   COUNT(DISTINCT e.id) FILTER (WHERE e.status = 'active'),
			   COALESCE(AVG(ev.overall_score), 0)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		LEFT JOIN evaluations ev ON ev.employee_id = e.id AND ev.overall_score IS NOT NULL
		GROUP BY d.id, d.name
		ORDER BY d.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []dashboard.DepartmentStat
	for rows.Next() {
		var s dashboard.DepartmentStat
		if err := rows.Scan(&s.Department, &s.Headcount, &s.AvgScore); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *dashboardRepositoryImpl) MonthlyTrend(ctx context.Context, months int, now time.Time) ([]dashboard.MonthlyAvgScore, error) {
	q := GetQuerier(ctx, r.db)
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	rows, err := q.Query(ctx, `
		SELECT TO_CHAR(created_at, 'YYYY-MM'), COALESCE(AVG(overall_score), 0)
		FROM evaluations
		WHERE overall_score IS NOT NULL AND created_at >= $1
		GROUP BY TO_CHAR(created_at, 'YYYY-MM')
		ORDER BY 1
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []dashboard.MonthlyAvgScore
	for rows.Next() {
		var m dashboard.MonthlyAvgScore
		if err := rows.Scan(&m.Month, &m.AvgScore); err != nil {
			return nil, err
		}
		trend = append(trend, m)
	}
	return trend, rows.Err()
}
