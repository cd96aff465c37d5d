package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type evaluationRepositoryImpl struct {
	db *database.DB
}

func NewEvaluationRepository(db *database.DB) evaluation.Repository {
	return &evaluationRepositoryImpl{db: db}
}

func (r *evaluationRepositoryImpl) CreatePeriod(ctx context.Context, p evaluation.Period) (evaluation.Period, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO evaluation_periods (id, name, type, start_date, end_date, is_active, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, p.Name, p.Type, p.StartDate, p.EndDate, p.IsActive).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return evaluation.Period{}, fmt.Errorf("create evaluation period: %w", err)
	}
	return p, nil
}

func (r *evaluationRepositoryImpl) GetPeriodByID(ctx context.Context, id string) (evaluation.Period, error) {
	q := GetQuerier(ctx, r.db)
	var p evaluation.Period
	err := q.QueryRow(ctx,
		`SELECT id, name, type, start_date, end_date, is_active, created_at FROM evaluation_periods WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Type, &p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.Period{}, evaluation.ErrPeriodNotFound
		}
		return evaluation.Period{}, err
	}
	return p, nil
}

func (r *evaluationRepositoryImpl) ListPeriods(ctx context.Context, activeOnly bool) ([]evaluation.Period, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT id, name, type, start_date, end_date, is_active, created_at FROM evaluation_periods`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []evaluation.Period
	for rows.Next() {
		var p evaluation.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func (r *evaluationRepositoryImpl) UpdatePeriod(ctx context.Context, p evaluation.Period) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE evaluation_periods
		SET name = $1, type = $2, start_date = $3, end_date = $4, is_active = $5
		WHERE id = $6
	`
	tag, err := q.Exec(ctx, query, p.Name, p.Type, p.StartDate, p.EndDate, p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("update evaluation period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return evaluation.ErrPeriodNotFound
	}
	return nil
}

const evaluationSelect = `
	SELECT ev.id, ev.employee_id, ev.evaluator_id, ev.period_id, ev.status,
		   ev.overall_score, ev.performance_rating, ev.comments, ev.strengths,
		   ev.areas_to_improve, ev.development_plan, ev.submitted_at,
		   ev.reviewed_at, ev.created_at, ev.updated_at,
		   e.first_name || ' ' || e.last_name,
		   u.first_name || ' ' || u.last_name,
		   p.name
	FROM evaluations ev
	JOIN employees e ON e.id = ev.employee_id
	JOIN users u ON u.id = ev.evaluator_id
	JOIN evaluation_periods p ON p.id = ev.period_id
`

func scanEvaluation(row pgx.Row) (evaluation.Evaluation, error) {
	var ev evaluation.Evaluation
	err := row.Scan(
		&ev.ID, &ev.EmployeeID, &ev.EvaluatorID, &ev.PeriodID, &ev.Status,
		&ev.OverallScore, &ev.PerformanceRating, &ev.Comments, &ev.Strengths,
		&ev.AreasToImprove, &ev.DevelopmentPlan, &ev.SubmittedAt,
		&ev.ReviewedAt, &ev.CreatedAt, &ev.UpdatedAt,
		&ev.EmployeeName, &ev.EvaluatorName, &ev.PeriodName,
	)
	return ev, err
}

func (r *evaluationRepositoryImpl) Create(ctx context.Context, ev evaluation.Evaluation) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO evaluations (
			id, employee_id, evaluator_id, period_id, status, overall_score,
			performance_rating, comments, strengths, areas_to_improve,
			development_plan, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		ev.EmployeeID, ev.EvaluatorID, ev.PeriodID, ev.Status, ev.OverallScore,
		ev.PerformanceRating, ev.Comments, ev.Strengths, ev.AreasToImprove,
		ev.DevelopmentPlan,
	).Scan(&ev.ID, &ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return evaluation.Evaluation{}, evaluation.ErrDuplicateEvaluation
		}
		return evaluation.Evaluation{}, fmt.Errorf("create evaluation: %w", err)
	}
	return ev, nil
}

func (r *evaluationRepositoryImpl) GetByID(ctx context.Context, id string) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)
	ev, err := scanEvaluation(q.QueryRow(ctx, evaluationSelect+` WHERE ev.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
		}
		return evaluation.Evaluation{}, err
	}
	return ev, nil
}

func (r *evaluationRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)
	ev, err := scanEvaluation(q.QueryRow(ctx,
		evaluationSelect+` WHERE ev.employee_id = $1 AND ev.period_id = $2`, employeeID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
		}
		return evaluation.Evaluation{}, err
	}
	return ev, nil
}

func (r *evaluationRepositoryImpl) List(ctx context.Context, filter evaluation.Filter) ([]evaluation.Evaluation, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("ev.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.EvaluatorID != nil && *filter.EvaluatorID != "" {
		conditions = append(conditions, fmt.Sprintf("ev.evaluator_id = $%d", argIdx))
		args = append(args, *filter.EvaluatorID)
		argIdx++
	}
	if filter.PeriodID != nil && *filter.PeriodID != "" {
		conditions = append(conditions, fmt.Sprintf("ev.period_id = $%d", argIdx))
		args = append(args, *filter.PeriodID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("ev.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM evaluations ev`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count evaluations: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := evaluationSelect + where +
		fmt.Sprintf(" ORDER BY ev.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var evaluations []evaluation.Evaluation
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, 0, err
		}
		evaluations = append(evaluations, ev)
	}
	return evaluations, total, rows.Err()
}

func (r *evaluationRepositoryImpl) Update(ctx context.Context, ev evaluation.Evaluation) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE evaluations
		SET status = $1, overall_score = $2, performance_rating = $3,
			comments = $4, strengths = $5, areas_to_improve = $6,
			development_plan = $7, submitted_at = $8, reviewed_at = $9,
			updated_at = NOW()
		WHERE id = $10
	`
	tag, err := q.Exec(ctx, query,
		ev.Status, ev.OverallScore, ev.PerformanceRating,
		ev.Comments, ev.Strengths, ev.AreasToImprove,
		ev.DevelopmentPlan, ev.SubmittedAt, ev.ReviewedAt, ev.ID,
	)
	if err != nil {
		return fmt.Errorf("update evaluation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return evaluation.ErrEvaluationNotFound
	}
	return nil
}

func (r *evaluationRepositoryImpl) ReplaceDetails(ctx context.Context, evaluationID string, details []evaluation.Detail) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM evaluation_details WHERE evaluation_id = $1`, evaluationID); err != nil {
		return fmt.Errorf("clear evaluation details: %w", err)
	}
	for _, d := range details {
		_, err := q.Exec(ctx, `
			INSERT INTO evaluation_details (id, evaluation_id, kpi_id, target_value, actual_value, score, weight, comments)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		`, evaluationID, d.KPIID, d.TargetValue, d.ActualValue, d.Score, d.Weight, d.Comments)
		if err != nil {
			return fmt.Errorf("insert evaluation detail: %w", err)
		}
	}
	return nil
}

func (r *evaluationRepositoryImpl) ReplaceCompetencies(ctx context.Context, evaluationID string, assessments []evaluation.CompetencyAssessment) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM competency_assessments WHERE evaluation_id = $1`, evaluationID); err != nil {
		return fmt.Errorf("clear competency assessments: %w", err)
	}
	for _, a := range assessments {
		_, err := q.Exec(ctx, `
			INSERT INTO competency_assessments (id, evaluation_id, competency_id, rating, comments)
			VALUES (uuidv7(), $1, $2, $3, $4)
		`, evaluationID, a.CompetencyID, a.Rating, a.Comments)
		if err != nil {
			return fmt.Errorf("insert competency assessment: %w", err)
		}
	}
	return nil
}

func (r *evaluationRepositoryImpl) ListDetails(ctx context.Context, evaluationID string) ([]evaluation.Detail, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT d.id, d.evaluation_id, d.kpi_id, d.target_value, d.actual_value,
			   d.score, d.weight, d.comments, k.name
		FROM evaluation_details d
		JOIN kpis k ON k.id = d.kpi_id
		WHERE d.evaluation_id = $1
		ORDER BY k.name
	`
	rows, err := q.Query(ctx, query, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []evaluation.Detail
	for rows.Next() {
		var d evaluation.Detail
		if err := rows.Scan(
			&d.ID, &d.EvaluationID, &d.KPIID, &d.TargetValue, &d.ActualValue,
			&d.Score, &d.Weight, &d.Comments, &d.KPIName,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *evaluationRepositoryImpl) ListCompetencies(ctx context.Context, evaluationID string) ([]evaluation.CompetencyAssessment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT a.id, a.evaluation_id, a.competency_id, a.rating, a.comments, c.name
		FROM competency_assessments a
		JOIN competencies c ON c.id = a.competency_id
		WHERE a.evaluation_id = $1
		ORDER BY c.name
	`
	rows, err := q.Query(ctx, query, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []evaluation.CompetencyAssessment
	for rows.Next() {
		var a evaluation.CompetencyAssessment
		if err := rows.Scan(&a.ID, &a.EvaluationID, &a.CompetencyID, &a.Rating, &a.Comments, &a.CompetencyName); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}
