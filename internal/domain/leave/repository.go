package leave

import (
	"context"
	"time"
)

type RequestFilter struct {
	EmployeeID   *string
	DepartmentID *string
	Status       *string
	LeaveTypeID  *string
	Year         *int
	Page         int
	Limit        int
}

type TypeRepository interface {
	Create(ctx context.Context, t Type) (Type, error)
	GetByID(ctx context.Context, id string) (Type, error)
	GetByName(ctx context.Context, name string) (Type, error)
	List(ctx context.Context, activeOnly bool) ([]Type, error)
	Update(ctx context.Context, t Type) error
}

type BalanceRepository interface {
	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (Balance, error)
	GetOrCreate(ctx context.Context, employeeID, leaveTypeID string, year int, allocated float64) (Balance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]Balance, error)
	Update(ctx context.Context, b Balance) error
}

type ApprovalLevelRepository interface {
	Create(ctx context.Context, l ApprovalLevel) (ApprovalLevel, error)
	ListByDepartment(ctx context.Context, departmentID string, activeOnly bool) ([]ApprovalLevel, error)
	GetByDepartmentAndLevel(ctx context.Context, departmentID string, level int) (ApprovalLevel, error)
	Update(ctx context.Context, l ApprovalLevel) error
}

type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	Update(ctx context.Context, r Request) error
	Delete(ctx context.Context, id string) error
	CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d RequestDocument) (RequestDocument, error)
	GetByRequestID(ctx context.Context, requestID string) (RequestDocument, error)
}
