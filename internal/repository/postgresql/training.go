package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/training"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type trainingRepositoryImpl struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) training.Repository {
	return &trainingRepositoryImpl{db: db}
}

const trainingSelect = `
	SELECT t.id, t.employee_id, t.title, t.description, t.type, t.provider,
		   t.location, t.start_date, t.end_date, t.duration_hours, t.cost,
		   t.status, t.score, t.certificate_path, t.completion_date,
		   t.created_at, t.updated_at,
		   e.first_name || ' ' || e.last_name
	FROM trainings t
	JOIN employees e ON e.id = t.employee_id
`

func scanTraining(row pgx.Row) (training.Training, error) {
	var t training.Training
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.Type, &t.Provider,
		&t.Location, &t.StartDate, &t.EndDate, &t.DurationHours, &t.Cost,
		&t.Status, &t.Score, &t.CertificatePath, &t.CompletionDate,
		&t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName,
	)
	return t, err
}

func (r *trainingRepositoryImpl) Create(ctx context.Context, t training.Training) (training.Training, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO trainings (
			id, employee_id, title, description, type, provider, location,
			start_date, end_date, duration_hours, cost, status, score,
			certificate_path, completion_date, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.Title, t.Description, t.Type, t.Provider, t.Location,
		t.StartDate, t.EndDate, t.DurationHours, t.Cost, t.Status, t.Score,
		t.CertificatePath, t.CompletionDate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return training.Training{}, fmt.Errorf("create training: %w", err)
	}
	return t, nil
}

func (r *trainingRepositoryImpl) GetByID(ctx context.Context, id string) (training.Training, error) {
	q := GetQuerier(ctx, r.db)
	t, err := scanTraining(q.QueryRow(ctx, trainingSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Training{}, training.ErrTrainingNotFound
		}
		return training.Training{}, err
	}
	return t, nil
}

func (r *trainingRepositoryImpl) List(ctx context.Context, filter training.Filter) ([]training.Training, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("t.type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM trainings t`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count trainings: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := trainingSelect + where +
		fmt.Sprintf(" ORDER BY t.start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var trainings []training.Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, 0, err
		}
		trainings = append(trainings, t)
	}
	return trainings, total, rows.Err()
}

func (r *trainingRepositoryImpl) Update(ctx context.Context, t training.Training) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE trainings
		SET title = $1, description = $2, type = $3, provider = $4,
			location = $5, start_date = $6, end_date = $7, duration_hours = $8,
			cost = $9, status = $10, score = $11, certificate_path = $12,
			completion_date = $13, updated_at = NOW()
		WHERE id = $14
	`
	tag, err := q.Exec(ctx, query,
		t.Title, t.Description, t.Type, t.Provider,
		t.Location, t.StartDate, t.EndDate, t.DurationHours,
		t.Cost, t.Status, t.Score, t.CertificatePath,
		t.CompletionDate, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return training.ErrTrainingNotFound
	}
	return nil
}

const trainingRequestSelect = `
	SELECT tr.id, tr.employee_id, tr.title, tr.type, tr.provider,
		   tr.estimated_cost, tr.justification, tr.expected_outcomes, tr.status,
		   tr.reviewed_by, tr.reviewed_at, tr.rejection_reason, tr.created_at,
		   e.first_name || ' ' || e.last_name,
		   u.first_name || ' ' || u.last_name
	FROM training_requests tr
	JOIN employees e ON e.id = tr.employee_id
	LEFT JOIN users u ON u.id = tr.reviewed_by
`

func scanTrainingRequest(row pgx.Row) (training.Request, error) {
	var tr training.Request
	err := row.Scan(
		&tr.ID, &tr.EmployeeID, &tr.Title, &tr.Type, &tr.Provider,
		&tr.EstimatedCost, &tr.Justification, &tr.ExpectedOutcomes, &tr.Status,
		&tr.ReviewedBy, &tr.ReviewedAt, &tr.RejectionReason, &tr.CreatedAt,
		&tr.EmployeeName, &tr.ReviewerName,
	)
	return tr, err
}

func (r *trainingRepositoryImpl) CreateRequest(ctx context.Context, tr training.Request) (training.Request, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO training_requests (
			id, employee_id, title, type, provider, estimated_cost,
			justification, expected_outcomes, status, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW()
		) RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		tr.EmployeeID, tr.Title, tr.Type, tr.Provider, tr.EstimatedCost,
		tr.Justification, tr.ExpectedOutcomes, tr.Status,
	).Scan(&tr.ID, &tr.CreatedAt)
	if err != nil {
		return training.Request{}, fmt.Errorf("create training request: %w", err)
	}
	return tr, nil
}

func (r *trainingRepositoryImpl) GetRequestByID(ctx context.Context, id string) (training.Request, error) {
	q := GetQuerier(ctx, r.db)
	tr, err := scanTrainingRequest(q.QueryRow(ctx, trainingRequestSelect+` WHERE tr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Request{}, training.ErrRequestNotFound
		}
		return training.Request{}, err
	}
	return tr, nil
}

func (r *trainingRepositoryImpl) ListRequests(ctx context.Context, employeeID *string, status *string) ([]training.Request, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if employeeID != nil && *employeeID != "" {
		conditions = append(conditions, fmt.Sprintf("tr.employee_id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}
	if status != nil && *status != "" {
		conditions = append(conditions, fmt.Sprintf("tr.status = $%d", argIdx))
		args = append(args, *status)
		argIdx++
	}

	query := trainingRequestSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY tr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []training.Request
	for rows.Next() {
		tr, err := scanTrainingRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, tr)
	}
	return requests, rows.Err()
}

func (r *trainingRepositoryImpl) UpdateRequest(ctx context.Context, tr training.Request) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE training_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, rejection_reason = $4
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query, tr.Status, tr.ReviewedBy, tr.ReviewedAt, tr.RejectionReason, tr.ID)
	if err != nil {
		return fmt.Errorf("update training request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return training.ErrRequestNotFound
	}
	return nil
}
