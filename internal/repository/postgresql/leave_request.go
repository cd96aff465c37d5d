package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.leave_type_override,
		   lr.start_date, lr.end_date, lr.total_days, lr.is_half_day,
		   lr.half_day_period, lr.reason, lr.notes, lr.attachment_path,
		   lr.contact_during_leave, lr.contact_phone, lr.status,
		   lr.first_approver_id, lr.first_approved_at, lr.first_comments,
		   lr.second_approver_id, lr.second_approved_at, lr.second_comments,
		   lr.rejected_by, lr.rejection_date, lr.rejection_reason,
		   lr.submitted_at, lr.created_at, lr.updated_at,
		   e.first_name || ' ' || e.last_name,
		   e.employee_code,
		   d.name,
		   lt.name,
		   fa.first_name || ' ' || fa.last_name,
		   sa.first_name || ' ' || sa.last_name
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
	LEFT JOIN users fa ON fa.id = lr.first_approver_id
	LEFT JOIN users sa ON sa.id = lr.second_approver_id
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var lr leave.Request
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.LeaveTypeOverride,
		&lr.StartDate, &lr.EndDate, &lr.TotalDays, &lr.IsHalfDay,
		&lr.HalfDayPeriod, &lr.Reason, &lr.Notes, &lr.AttachmentPath,
		&lr.ContactDuringLeave, &lr.ContactPhone, &lr.Status,
		&lr.FirstApproverID, &lr.FirstApprovedAt, &lr.FirstComments,
		&lr.SecondApproverID, &lr.SecondApprovedAt, &lr.SecondComments,
		&lr.RejectedByID, &lr.RejectionDate, &lr.RejectionReason,
		&lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.EmployeeCode, &lr.DepartmentName, &lr.LeaveTypeName,
		&lr.FirstApproverName, &lr.SecondApproverName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, leave_type_override, start_date,
			end_date, total_days, is_half_day, half_day_period, reason, notes,
			attachment_path, contact_during_leave, contact_phone, status,
			submitted_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		lr.EmployeeID, lr.LeaveTypeID, lr.LeaveTypeOverride, lr.StartDate,
		lr.EndDate, lr.TotalDays, lr.IsHalfDay, lr.HalfDayPeriod, lr.Reason,
		lr.Notes, lr.AttachmentPath, lr.ContactDuringLeave, lr.ContactPhone,
		lr.Status, lr.SubmittedAt,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("create leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)
	lr, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveTypeID != nil && *filter.LeaveTypeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type_id = $%d", argIdx))
		args = append(args, *filter.LeaveTypeID)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM lr.start_date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
	` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leave requests: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := leaveRequestSelect + where +
		fmt.Sprintf(" ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}
	return requests, total, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, lr leave.Request) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET leave_type_id = $1, leave_type_override = $2, start_date = $3,
			end_date = $4, total_days = $5, is_half_day = $6,
			half_day_period = $7, reason = $8, notes = $9,
			attachment_path = $10, contact_during_leave = $11,
			contact_phone = $12, status = $13,
			first_approver_id = $14, first_approved_at = $15, first_comments = $16,
			second_approver_id = $17, second_approved_at = $18, second_comments = $19,
			rejected_by = $20, rejection_date = $21, rejection_reason = $22,
			submitted_at = $23, updated_at = NOW()
		WHERE id = $24
	`
	tag, err := q.Exec(ctx, query,
		lr.LeaveTypeID, lr.LeaveTypeOverride, lr.StartDate,
		lr.EndDate, lr.TotalDays, lr.IsHalfDay,
		lr.HalfDayPeriod, lr.Reason, lr.Notes,
		lr.AttachmentPath, lr.ContactDuringLeave,
		lr.ContactPhone, lr.Status,
		lr.FirstApproverID, lr.FirstApprovedAt, lr.FirstComments,
		lr.SecondApproverID, lr.SecondApprovedAt, lr.SecondComments,
		lr.RejectedByID, lr.RejectionDate, lr.RejectionReason,
		lr.SubmittedAt, lr.ID,
	)
	if err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return fmt.Errorf("delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			AND status IN ('submitted', 'first_approval_pending', 'first_approved', 'second_approval_pending', 'approved')
			AND start_date <= $3
			AND end_date >= $2
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists)
	return exists, err
}
