package training

import "context"

type Filter struct {
	EmployeeID *string
	Status     *string
	Type       *string
	Page       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, t Training) (Training, error)
	GetByID(ctx context.Context, id string) (Training, error)
	List(ctx context.Context, filter Filter) ([]Training, int64, error)
	Update(ctx context.Context, t Training) error

	CreateRequest(ctx context.Context, r Request) (Request, error)
	GetRequestByID(ctx context.Context, id string) (Request, error)
	ListRequests(ctx context.Context, employeeID *string, status *string) ([]Request, error)
	UpdateRequest(ctx context.Context, r Request) error
}
