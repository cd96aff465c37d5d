package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.TypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `
	id, name, description, default_allocation, requires_approval,
	color_code, is_active, created_at
`

func scanLeaveType(row pgx.Row) (leave.Type, error) {
	var t leave.Type
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.DefaultAllocation,
		&t.RequiresApproval, &t.ColorCode, &t.IsActive, &t.CreatedAt,
	)
	return t, err
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, t leave.Type) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (
			id, name, description, default_allocation, requires_approval,
			color_code, is_active, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW()
		) RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		t.Name, t.Description, t.DefaultAllocation, t.RequiresApproval,
		t.ColorCode, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return leave.Type{}, fmt.Errorf("create leave type: %w", err)
	}
	return t, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	t, err := scanLeaveType(q.QueryRow(ctx, `SELECT `+leaveTypeColumns+` FROM leave_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Type{}, leave.ErrTypeNotFound
		}
		return leave.Type{}, err
	}
	return t, nil
}

func (r *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	t, err := scanLeaveType(q.QueryRow(ctx,
		`SELECT `+leaveTypeColumns+` FROM leave_types WHERE LOWER(name) = LOWER($1)`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Type{}, leave.ErrTypeNotFound
		}
		return leave.Type{}, err
	}
	return t, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.Type
	for rows.Next() {
		t, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, t leave.Type) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $1, description = $2, default_allocation = $3,
			requires_approval = $4, color_code = $5, is_active = $6
		WHERE id = $7
	`
	tag, err := q.Exec(ctx, query,
		t.Name, t.Description, t.DefaultAllocation,
		t.RequiresApproval, t.ColorCode, t.IsActive, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrTypeNotFound
	}
	return nil
}
