package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time

	// DTO / Join
	EmployeeCount *int64
}
