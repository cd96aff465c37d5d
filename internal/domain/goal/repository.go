package goal

import "context"

type Filter struct {
	EmployeeID *string
	Status     *string
	Type       *string
	Page       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, g Goal) (Goal, error)
	GetByID(ctx context.Context, id string) (Goal, error)
	List(ctx context.Context, filter Filter) ([]Goal, int64, error)
	Update(ctx context.Context, g Goal) error
	Delete(ctx context.Context, id string) error

	AddProgress(ctx context.Context, entry ProgressEntry) (ProgressEntry, error)
	ListProgress(ctx context.Context, goalID string) ([]ProgressEntry, error)
}
