package kpi

import "context"

type Repository interface {
	CreateCategory(ctx context.Context, c Category) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id string) (Category, error)
	UpdateCategory(ctx context.Context, c Category) error
	DeleteCategory(ctx context.Context, id string) error

	CreateKPI(ctx context.Context, k KPI) (KPI, error)
	ListKPIs(ctx context.Context, categoryID *string, activeOnly bool) ([]KPI, error)
	GetKPIByID(ctx context.Context, id string) (KPI, error)
	UpdateKPI(ctx context.Context, k KPI) error

	CreateCompetency(ctx context.Context, c Competency) (Competency, error)
	ListCompetencies(ctx context.Context, activeOnly bool) ([]Competency, error)
	GetCompetencyByID(ctx context.Context, id string) (Competency, error)
	UpdateCompetency(ctx context.Context, c Competency) error
}
