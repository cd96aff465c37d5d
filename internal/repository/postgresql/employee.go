package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.employee_code, e.first_name, e.last_name, e.email,
		   e.phone, e.department_id, e.position, e.hire_date, e.status,
		   e.manager_id, e.gender, e.date_of_birth, e.address,
		   e.emergency_contact, e.emergency_phone, e.salary, e.created_at,
		   d.name AS department_name,
		   m.first_name || ' ' || m.last_name AS manager_name
	FROM employees e
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN employees m ON m.id = e.manager_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email,
		&e.Phone, &e.DepartmentID, &e.Position, &e.HireDate, &e.Status,
		&e.ManagerID, &e.Gender, &e.DateOfBirth, &e.Address,
		&e.EmergencyContact, &e.EmergencyPhone, &e.Salary, &e.CreatedAt,
		&e.DepartmentName, &e.ManagerName,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			id, user_id, employee_code, first_name, last_name, email, phone,
			department_id, position, hire_date, status, manager_id, gender,
			date_of_birth, address, emergency_contact, emergency_phone, salary,
			created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, NOW()
		) RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		e.UserID, e.EmployeeCode, e.FirstName, e.LastName, e.Email, e.Phone,
		e.DepartmentID, e.Position, e.HireDate, e.Status, e.ManagerID, e.Gender,
		e.DateOfBirth, e.Address, e.EmergencyContact, e.EmergencyPhone, e.Salary,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE LOWER(e.employee_code) = LOWER($1)`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d OR e.email ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	sortBy := "e.employee_code"
	switch filter.SortBy {
	case "name":
		sortBy = "e.first_name"
	case "hire_date":
		sortBy = "e.hire_date"
	case "department":
		sortBy = "d.name"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := employeeSelect + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

func (r *employeeRepositoryImpl) ListWithoutAccount(ctx context.Context, departmentID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := employeeSelect + ` WHERE e.user_id IS NULL AND e.status = 'active'`
	args := make([]interface{}, 0)
	if departmentID != nil && *departmentID != "" {
		query += ` AND e.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY e.employee_code`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			department_id = $5, position = $6, status = $7, manager_id = $8,
			address = $9, emergency_contact = $10, emergency_phone = $11,
			salary = $12
		WHERE id = $13
	`
	tag, err := q.Exec(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone,
		e.DepartmentID, e.Position, e.Status, e.ManagerID,
		e.Address, e.EmergencyContact, e.EmergencyPhone,
		e.Salary, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) LinkUser(ctx context.Context, employeeID, userID string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `UPDATE employees SET user_id = $1 WHERE id = $2 AND user_id IS NULL`, userID, employeeID)
	if err != nil {
		return fmt.Errorf("link user to employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrAccountAlreadyLinked
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

func (r *profileRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, bio, linkedin_profile, profile_picture_url,
			   is_profile_complete, created_at, updated_at
		FROM employee_profiles WHERE employee_id = $1
	`
	var p employee.Profile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.Bio, &p.LinkedInProfile, &p.ProfilePictureURL,
		&p.IsProfileComplete, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrEmployeeNotFound
		}
		return employee.Profile{}, err
	}
	return p, nil
}

func (r *profileRepositoryImpl) CreateIfMissing(ctx context.Context, employeeID string) (employee.Profile, bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employee_profiles (id, employee_id, is_profile_complete, created_at, updated_at)
		VALUES (uuidv7(), $1, false, NOW(), NOW())
		ON CONFLICT (employee_id) DO NOTHING
		RETURNING id, employee_id, bio, linkedin_profile, profile_picture_url,
				  is_profile_complete, created_at, updated_at
	`
	var p employee.Profile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.Bio, &p.LinkedInProfile, &p.ProfilePictureURL,
		&p.IsProfileComplete, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// conflict path: profile already exists
			existing, getErr := r.GetByEmployeeID(ctx, employeeID)
			if getErr != nil {
				return employee.Profile{}, false, getErr
			}
			return existing, false, nil
		}
		return employee.Profile{}, false, fmt.Errorf("create profile: %w", err)
	}
	return p, true, nil
}

func (r *profileRepositoryImpl) Update(ctx context.Context, p employee.Profile) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employee_profiles
		SET bio = $1, linkedin_profile = $2, profile_picture_url = $3,
			is_profile_complete = $4, updated_at = NOW()
		WHERE employee_id = $5
	`
	tag, err := q.Exec(ctx, query,
		p.Bio, p.LinkedInProfile, p.ProfilePictureURL, p.IsProfileComplete, p.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
