package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/strivehr/perform-backend-go/internal/domain/kpi"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type kpiRepositoryImpl struct {
	db *database.DB
}

func NewKPIRepository(db *database.DB) kpi.Repository {
	return &kpiRepositoryImpl{db: db}
}

func (r *kpiRepositoryImpl) CreateCategory(ctx context.Context, c kpi.Category) (kpi.Category, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO kpi_categories (id, name, description, weight, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, c.Name, c.Description, c.Weight).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return kpi.Category{}, fmt.Errorf("create kpi category: %w", err)
	}
	return c, nil
}

func (r *kpiRepositoryImpl) ListCategories(ctx context.Context) ([]kpi.Category, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id, name, description, weight, created_at FROM kpi_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []kpi.Category
	for rows.Next() {
		var c kpi.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Weight, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *kpiRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (kpi.Category, error) {
	q := GetQuerier(ctx, r.db)
	var c kpi.Category
	err := q.QueryRow(ctx, `SELECT id, name, description, weight, created_at FROM kpi_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Weight, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kpi.Category{}, kpi.ErrCategoryNotFound
		}
		return kpi.Category{}, err
	}
	return c, nil
}

func (r *kpiRepositoryImpl) UpdateCategory(ctx context.Context, c kpi.Category) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `UPDATE kpi_categories SET name = $1, description = $2, weight = $3 WHERE id = $4`,
		c.Name, c.Description, c.Weight, c.ID)
	if err != nil {
		return fmt.Errorf("update kpi category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrCategoryNotFound
	}
	return nil
}

func (r *kpiRepositoryImpl) DeleteCategory(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM kpi_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kpi category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrCategoryNotFound
	}
	return nil
}

func (r *kpiRepositoryImpl) CreateKPI(ctx context.Context, k kpi.KPI) (kpi.KPI, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO kpis (id, category_id, name, description, target_value, unit, weight, is_active, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		k.CategoryID, k.Name, k.Description, k.TargetValue, k.Unit, k.Weight, k.IsActive,
	).Scan(&k.ID, &k.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return kpi.KPI{}, kpi.ErrKPIExists
		}
		return kpi.KPI{}, fmt.Errorf("create kpi: %w", err)
	}
	return k, nil
}

func (r *kpiRepositoryImpl) ListKPIs(ctx context.Context, categoryID *string, activeOnly bool) ([]kpi.KPI, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT k.id, k.category_id, k.name, k.description, k.target_value,
			   k.unit, k.weight, k.is_active, k.created_at, c.name
		FROM kpis k
		JOIN kpi_categories c ON c.id = k.category_id
		WHERE 1=1
	`
	args := make([]interface{}, 0)
	argIdx := 1
	if categoryID != nil && *categoryID != "" {
		query += fmt.Sprintf(" AND k.category_id = $%d", argIdx)
		args = append(args, *categoryID)
		argIdx++
	}
	if activeOnly {
		query += " AND k.is_active = true"
	}
	query += " ORDER BY c.name, k.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kpis []kpi.KPI
	for rows.Next() {
		var k kpi.KPI
		if err := rows.Scan(
			&k.ID, &k.CategoryID, &k.Name, &k.Description, &k.TargetValue,
			&k.Unit, &k.Weight, &k.IsActive, &k.CreatedAt, &k.CategoryName,
		); err != nil {
			return nil, err
		}
		kpis = append(kpis, k)
	}
	return kpis, rows.Err()
}

func (r *kpiRepositoryImpl) GetKPIByID(ctx context.Context, id string) (kpi.KPI, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT k.id, k.category_id, k.name, k.description, k.target_value,
			   k.unit, k.weight, k.is_active, k.created_at, c.name
		FROM kpis k
		JOIN kpi_categories c ON c.id = k.category_id
		WHERE k.id = $1
	`
	var k kpi.KPI
	err := q.QueryRow(ctx, query, id).Scan(
		&k.ID, &k.CategoryID, &k.Name, &k.Description, &k.TargetValue,
		&k.Unit, &k.Weight, &k.IsActive, &k.CreatedAt, &k.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kpi.KPI{}, kpi.ErrKPINotFound
		}
		return kpi.KPI{}, err
	}
	return k, nil
}

func (r *kpiRepositoryImpl) UpdateKPI(ctx context.Context, k kpi.KPI) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE kpis
		SET name = $1, description = $2, target_value = $3, unit = $4,
			weight = $5, is_active = $6
		WHERE id = $7
	`
	tag, err := q.Exec(ctx, query, k.Name, k.Description, k.TargetValue, k.Unit, k.Weight, k.IsActive, k.ID)
	if err != nil {
		return fmt.Errorf("update kpi: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrKPINotFound
	}
	return nil
}

func (r *kpiRepositoryImpl) CreateCompetency(ctx context.Context, c kpi.Competency) (kpi.Competency, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO competencies (id, name, description, category, weight, is_active, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, c.Name, c.Description, c.Category, c.Weight, c.IsActive).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return kpi.Competency{}, fmt.Errorf("create competency: %w", err)
	}
	return c, nil
}

func (r *kpiRepositoryImpl) ListCompetencies(ctx context.Context, activeOnly bool) ([]kpi.Competency, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT id, name, description, category, weight, is_active, created_at FROM competencies`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY category, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competencies []kpi.Competency
	for rows.Next() {
		var c kpi.Competency
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.Weight, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		competencies = append(competencies, c)
	}
	return competencies, rows.Err()
}

func (r *kpiRepositoryImpl) GetCompetencyByID(ctx context.Context, id string) (kpi.Competency, error) {
	q := GetQuerier(ctx, r.db)
	var c kpi.Competency
	err := q.QueryRow(ctx,
		`SELECT id, name, description, category, weight, is_active, created_at FROM competencies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.Weight, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kpi.Competency{}, kpi.ErrCompetencyNotFound
		}
		return kpi.Competency{}, err
	}
	return c, nil
}

func (r *kpiRepositoryImpl) UpdateCompetency(ctx context.Context, c kpi.Competency) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE competencies
		SET name = $1, description = $2, category = $3, weight = $4, is_active = $5
		WHERE id = $6
	`
	tag, err := q.Exec(ctx, query, c.Name, c.Description, c.Category, c.Weight, c.IsActive, c.ID)
	if err != nil {
		return fmt.Errorf("update competency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrCompetencyNotFound
	}
	return nil
}
