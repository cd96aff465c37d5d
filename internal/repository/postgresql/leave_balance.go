package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, leave_type_id, year, allocated, carried_over,
			   used, pending, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`
	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Allocated,
		&b.CarriedOver, &b.Used, &b.Pending, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID, leaveTypeID string, year int, allocated float64) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type_id, year, allocated, carried_over,
			used, pending, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, 0, 0, 0, NOW()
		)
		ON CONFLICT (employee_id, leave_type_id, year) DO UPDATE SET updated_at = leave_balances.updated_at
		RETURNING id, employee_id, leave_type_id, year, allocated, carried_over,
				  used, pending, updated_at
	`
	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year, allocated).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Allocated,
		&b.CarriedOver, &b.Used, &b.Pending, &b.UpdatedAt,
	)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("get or create leave balance: %w", err)
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year, b.allocated,
			   b.carried_over, b.used, b.pending, b.updated_at, t.name
		FROM leave_balances b
		JOIN leave_types t ON t.id = b.leave_type_id
		WHERE b.employee_id = $1 AND b.year = $2
		ORDER BY t.name
	`
	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Allocated,
			&b.CarriedOver, &b.Used, &b.Pending, &b.UpdatedAt, &b.LeaveTypeName,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, b leave.Balance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_balances
		SET allocated = $1, carried_over = $2, used = $3, pending = $4,
			updated_at = NOW()
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query, b.Allocated, b.CarriedOver, b.Used, b.Pending, b.ID)
	if err != nil {
		return fmt.Errorf("update leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
