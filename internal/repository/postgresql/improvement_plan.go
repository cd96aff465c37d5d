package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type improvementPlanRepositoryImpl struct {
	db *database.DB
}

func NewImprovementPlanRepository(db *database.DB) evaluation.ImprovementPlanRepository {
	return &improvementPlanRepositoryImpl{db: db}
}

const improvementPlanSelect = `
	SELECT ip.id, ip.employee_id, ip.evaluation_id, ip.start_date, ip.end_date,
		   ip.status, ip.objectives, ip.action_plan, ip.success_criteria,
		   ip.progress_notes, ip.outcome, ip.created_at, ip.updated_at,
		   e.first_name || ' ' || e.last_name,
		   e.employee_code,
		   p.name
	FROM improvement_plans ip
	JOIN employees e ON e.id = ip.employee_id
	JOIN evaluations ev ON ev.id = ip.evaluation_id
	JOIN evaluation_periods p ON p.id = ev.period_id
`

func scanImprovementPlan(row pgx.Row) (evaluation.ImprovementPlan, error) {
	var ip evaluation.ImprovementPlan
	err := row.Scan(
		&ip.ID, &ip.EmployeeID, &ip.EvaluationID, &ip.StartDate, &ip.EndDate,
		&ip.Status, &ip.Objectives, &ip.ActionPlan, &ip.SuccessCriteria,
		&ip.ProgressNotes, &ip.Outcome, &ip.CreatedAt, &ip.UpdatedAt,
		&ip.EmployeeName, &ip.EmployeeCode, &ip.PeriodName,
	)
	return ip, err
}

func (r *improvementPlanRepositoryImpl) CreatePlan(ctx context.Context, ip evaluation.ImprovementPlan) (evaluation.ImprovementPlan, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO improvement_plans (
			id, employee_id, evaluation_id, start_date, end_date, status,
			objectives, action_plan, success_criteria, progress_notes, outcome,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		ip.EmployeeID, ip.EvaluationID, ip.StartDate, ip.EndDate, ip.Status,
		ip.Objectives, ip.ActionPlan, ip.SuccessCriteria, ip.ProgressNotes,
		ip.Outcome,
	).Scan(&ip.ID, &ip.CreatedAt, &ip.UpdatedAt)
	if err != nil {
		return evaluation.ImprovementPlan{}, fmt.Errorf("create improvement plan: %w", err)
	}
	return ip, nil
}

func (r *improvementPlanRepositoryImpl) GetPlanByID(ctx context.Context, id string) (evaluation.ImprovementPlan, error) {
	q := GetQuerier(ctx, r.db)
	ip, err := scanImprovementPlan(q.QueryRow(ctx, improvementPlanSelect+` WHERE ip.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.ImprovementPlan{}, evaluation.ErrPlanNotFound
		}
		return evaluation.ImprovementPlan{}, err
	}
	return ip, nil
}

func (r *improvementPlanRepositoryImpl) ListPlans(ctx context.Context, filter evaluation.ImprovementPlanFilter) ([]evaluation.ImprovementPlan, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("ip.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("ip.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM improvement_plans ip` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count improvement plans: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := improvementPlanSelect + where +
		fmt.Sprintf(" ORDER BY ip.start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var plans []evaluation.ImprovementPlan
	for rows.Next() {
		ip, err := scanImprovementPlan(rows)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, ip)
	}
	return plans, total, rows.Err()
}

func (r *improvementPlanRepositoryImpl) UpdatePlan(ctx context.Context, ip evaluation.ImprovementPlan) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE improvement_plans
		SET end_date = $1, status = $2, progress_notes = $3, outcome = $4,
			updated_at = NOW()
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query,
		ip.EndDate, ip.Status, ip.ProgressNotes, ip.Outcome, ip.ID,
	)
	if err != nil {
		return fmt.Errorf("update improvement plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return evaluation.ErrPlanNotFound
	}
	return nil
}
