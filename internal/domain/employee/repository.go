package employee

import "context"

type Filter struct {
	Search       *string
	DepartmentID *string
	Status       *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	ListWithoutAccount(ctx context.Context, departmentID *string) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	LinkUser(ctx context.Context, employeeID, userID string) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Profile, error)
	CreateIfMissing(ctx context.Context, employeeID string) (Profile, bool, error)
	Update(ctx context.Context, p Profile) error
}
