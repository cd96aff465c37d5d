package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/goal"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type goalRepositoryImpl struct {
	db *database.DB
}

func NewGoalRepository(db *database.DB) goal.Repository {
	return &goalRepositoryImpl{db: db}
}

const goalSelect = `
	SELECT g.id, g.employee_id, g.title, g.description, g.type, g.target_date,
		   g.status, g.progress, g.priority, g.success_criteria, g.obstacles,
		   g.support_needed, g.created_by, g.created_at, g.updated_at,
		   e.first_name || ' ' || e.last_name
	FROM goals g
	JOIN employees e ON e.id = g.employee_id
`

func scanGoal(row pgx.Row) (goal.Goal, error) {
	var g goal.Goal
	err := row.Scan(
		&g.ID, &g.EmployeeID, &g.Title, &g.Description, &g.Type, &g.TargetDate,
		&g.Status, &g.Progress, &g.Priority, &g.SuccessCriteria, &g.Obstacles,
		&g.SupportNeeded, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt,
		&g.EmployeeName,
	)
	return g, err
}

func (r *goalRepositoryImpl) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO goals (
			id, employee_id, title, description, type, target_date, status,
			progress, priority, success_criteria, obstacles, support_needed,
			created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		g.EmployeeID, g.Title, g.Description, g.Type, g.TargetDate, g.Status,
		g.Progress, g.Priority, g.SuccessCriteria, g.Obstacles, g.SupportNeeded,
		g.CreatedBy,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	return g, nil
}

func (r *goalRepositoryImpl) GetByID(ctx context.Context, id string) (goal.Goal, error) {
	q := GetQuerier(ctx, r.db)
	g, err := scanGoal(q.QueryRow(ctx, goalSelect+` WHERE g.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, goal.ErrGoalNotFound
		}
		return goal.Goal{}, err
	}
	return g, nil
}

func (r *goalRepositoryImpl) List(ctx context.Context, filter goal.Filter) ([]goal.Goal, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("g.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("g.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("g.type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM goals g`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count goals: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := goalSelect + where +
		fmt.Sprintf(" ORDER BY g.target_date LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, 0, err
		}
		goals = append(goals, g)
	}
	return goals, total, rows.Err()
}

func (r *goalRepositoryImpl) Update(ctx context.Context, g goal.Goal) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE goals
		SET title = $1, description = $2, type = $3, target_date = $4,
			status = $5, progress = $6, priority = $7, success_criteria = $8,
			obstacles = $9, support_needed = $10, updated_at = NOW()
		WHERE id = $11
	`
	tag, err := q.Exec(ctx, query,
		g.Title, g.Description, g.Type, g.TargetDate,
		g.Status, g.Progress, g.Priority, g.SuccessCriteria,
		g.Obstacles, g.SupportNeeded, g.ID,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepositoryImpl) AddProgress(ctx context.Context, entry goal.ProgressEntry) (goal.ProgressEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO goal_progress (id, goal_id, progress, comments, recorded_by, recorded_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, recorded_at
	`
	err := q.QueryRow(ctx, query, entry.GoalID, entry.Progress, entry.Comments, entry.RecordedBy).
		Scan(&entry.ID, &entry.RecordedAt)
	if err != nil {
		return goal.ProgressEntry{}, fmt.Errorf("add goal progress: %w", err)
	}
	return entry, nil
}

func (r *goalRepositoryImpl) ListProgress(ctx context.Context, goalID string) ([]goal.ProgressEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, goal_id, progress, comments, recorded_by, recorded_at
		FROM goal_progress
		WHERE goal_id = $1
		ORDER BY recorded_at DESC
	`
	rows, err := q.Query(ctx, query, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []goal.ProgressEntry
	for rows.Next() {
		var e goal.ProgressEntry
		if err := rows.Scan(&e.ID, &e.GoalID, &e.Progress, &e.Comments, &e.RecordedBy, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
