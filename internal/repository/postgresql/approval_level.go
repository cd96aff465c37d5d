package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type approvalLevelRepositoryImpl struct {
	db *database.DB
}

func NewApprovalLevelRepository(db *database.DB) leave.ApprovalLevelRepository {
	return &approvalLevelRepositoryImpl{db: db}
}

func (r *approvalLevelRepositoryImpl) Create(ctx context.Context, l leave.ApprovalLevel) (leave.ApprovalLevel, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_approval_levels (id, department_id, level, approver_role, is_active, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, l.DepartmentID, l.Level, l.ApproverRole, l.IsActive).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return leave.ApprovalLevel{}, fmt.Errorf("create approval level: %w", err)
	}
	return l, nil
}

func (r *approvalLevelRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string, activeOnly bool) ([]leave.ApprovalLevel, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, department_id, level, approver_role, is_active, created_at
		FROM leave_approval_levels
		WHERE department_id = $1
	`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY level`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []leave.ApprovalLevel
	for rows.Next() {
		var l leave.ApprovalLevel
		if err := rows.Scan(&l.ID, &l.DepartmentID, &l.Level, &l.ApproverRole, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (r *approvalLevelRepositoryImpl) GetByDepartmentAndLevel(ctx context.Context, departmentID string, level int) (leave.ApprovalLevel, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, department_id, level, approver_role, is_active, created_at
		FROM leave_approval_levels
		WHERE department_id = $1 AND level = $2
	`
	var l leave.ApprovalLevel
	err := q.QueryRow(ctx, query, departmentID, level).
		Scan(&l.ID, &l.DepartmentID, &l.Level, &l.ApproverRole, &l.IsActive, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ApprovalLevel{}, leave.ErrApprovalLevelNotFound
		}
		return leave.ApprovalLevel{}, err
	}
	return l, nil
}

func (r *approvalLevelRepositoryImpl) Update(ctx context.Context, l leave.ApprovalLevel) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_approval_levels
		SET approver_role = $1, is_active = $2
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, query, l.ApproverRole, l.IsActive, l.ID)
	if err != nil {
		return fmt.Errorf("update approval level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInvalidLevel
	}
	return nil
}
