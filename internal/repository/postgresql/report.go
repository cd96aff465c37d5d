package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strivehr/perform-backend-go/internal/domain/report"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

func (r *reportRepositoryImpl) EmployeePerformance(ctx context.Context, p report.Params) ([]report.EmployeePerformanceRow, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT e.id, e.first_name || ' ' || e.last_name, d.name, e.position,
			   COALESCE(AVG(ev.overall_score), 0), COUNT(ev.id)
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		LEFT JOIN evaluations ev ON ev.employee_id = e.id AND ev.overall_score IS NOT NULL
	`
	args := make([]interface{}, 0)
	argIdx := 1
	where := ` WHERE e.status = 'active'`
	if p.DepartmentID != nil && *p.DepartmentID != "" {
		where += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *p.DepartmentID)
		argIdx++
	}
	if p.PeriodID != nil && *p.PeriodID != "" {
		where += fmt.Sprintf(" AND ev.period_id = $%d", argIdx)
		args = append(args, *p.PeriodID)
		argIdx++
	}
	query += where + `
		GROUP BY e.id, e.first_name, e.last_name, d.name, e.position
		ORDER BY AVG(ev.overall_score) DESC NULLS LAST
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.EmployeePerformanceRow
	for rows.Next() {
		var row report.EmployeePerformanceRow
		if err := rows.Scan(&row.EmployeeID, &row.Name, &row.Department, &row.Position,
			&row.AvgScore, &row.EvaluationCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepositoryImpl) DepartmentPerformance(ctx context.Context, p report.Params) ([]report.DepartmentPerformanceRow, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT d.name,
			   COUNT(DISTINCT e.id) FILTER (WHERE e.status = 'active'),
			   COALESCE(AVG(ev.overall_score), 0),
			   COUNT(ev.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		LEFT JOIN evaluations ev ON ev.employee_id = e.id AND ev.overall_score IS NOT NULL
		GROUP BY d.id, d.name
		ORDER BY d.name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.DepartmentPerformanceRow
	for rows.Next() {
		var row report.DepartmentPerformanceRow
		if err := rows.Scan(&row.Department, &row.EmployeeCount, &row.AvgScore, &row.EvaluationCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepositoryImpl) Trainings(ctx context.Context, p report.Params) ([]report.TrainingRow, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT e.first_name || ' ' || e.last_name, t.title, t.type, t.status,
			   t.score, t.completion_date
		FROM trainings t
		JOIN employees e ON e.id = t.employee_id
	`
	args := make([]interface{}, 0)
	argIdx := 1
	where := ""
	if p.DepartmentID != nil && *p.DepartmentID != "" {
		where = fmt.Sprintf(" WHERE e.department_id = $%d", argIdx)
		args = append(args, *p.DepartmentID)
		argIdx++
	}
	query += where + ` ORDER BY t.start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.TrainingRow
	for rows.Next() {
		var row report.TrainingRow
		if err := rows.Scan(&row.Employee, &row.Name, &row.Type, &row.Status,
			&row.Score, &row.CompletionDate); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepositoryImpl) Goals(ctx context.Context, p report.Params) ([]report.GoalRow, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT g.title, e.first_name || ' ' || e.last_name, g.type, g.status,
			   g.progress, g.target_date
		FROM goals g
		JOIN employees e ON e.id = g.employee_id
	`
	args := make([]interface{}, 0)
	argIdx := 1
	where := ""
	if p.DepartmentID != nil && *p.DepartmentID != "" {
		where = fmt.Sprintf(" WHERE e.department_id = $%d", argIdx)
		args = append(args, *p.DepartmentID)
		argIdx++
	}
	query += where + ` ORDER BY g.target_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.GoalRow
	for rows.Next() {
		var row report.GoalRow
		if err := rows.Scan(&row.Title, &row.Employee, &row.Type, &row.Status,
			&row.Progress, &row.DueDate); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepositoryImpl) SaveRecord(ctx context.Context, rec report.Record) (report.Record, error) {
	q := GetQuerier(ctx, r.db)
	paramsJSON, _ := json.Marshal(rec.Parameters)
	query := `
		INSERT INTO reports (id, name, type, format, parameters, generated_by, generated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, generated_at
	`
	err := q.QueryRow(ctx, query, rec.Name, rec.Type, rec.Format, paramsJSON, rec.GeneratedBy).
		Scan(&rec.ID, &rec.GeneratedAt)
	if err != nil {
		return report.Record{}, fmt.Errorf("save report record: %w", err)
	}
	return rec, nil
}

func (r *reportRepositoryImpl) ListRecords(ctx context.Context, generatedBy *string) ([]report.Record, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, type, format, parameters, generated_by, generated_at
		FROM reports
	`
	args := make([]interface{}, 0)
	if generatedBy != nil && *generatedBy != "" {
		query += ` WHERE generated_by = $1`
		args = append(args, *generatedBy)
	}
	query += ` ORDER BY generated_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []report.Record
	for rows.Next() {
		var rec report.Record
		var paramsJSON []byte
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Type, &rec.Format, &paramsJSON,
			&rec.GeneratedBy, &rec.GeneratedAt); err != nil {
			return nil, err
		}
		if paramsJSON != nil {
			json.Unmarshal(paramsJSON, &rec.Parameters)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
