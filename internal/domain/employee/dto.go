package employee

import "github.com/strivehr/perform-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	EmployeeCode     string   `json:"employee_code"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone,omitempty"`
	DepartmentID     string   `json:"department_id"`
	Position         string   `json:"position"`
	HireDate         string   `json:"hire_date"`
	Status           string   `json:"status,omitempty"`
	ManagerID        *string  `json:"manager_id,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	DateOfBirth      *string  `json:"date_of_birth,omitempty"`
	Address          *string  `json:"address,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string  `json:"emergency_phone,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
}

var validStatuses = []string{
	string(StatusActive), string(StatusInactive), string(StatusTerminated),
	string(StatusProbation), string(StatusContract),
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 3-20 alphanumeric characters",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string   `json:"-"`
	FirstName        *string  `json:"first_name,omitempty"`
	LastName         *string  `json:"last_name,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	DepartmentID     *string  `json:"department_id,omitempty"`
	Position         *string  `json:"position,omitempty"`
	Status           *string  `json:"status,omitempty"`
	ManagerID        *string  `json:"manager_id,omitempty"`
	Address          *string  `json:"address,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string  `json:"emergency_phone,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	EmployeeCode   string   `json:"employee_code"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	DepartmentID   string   `json:"department_id"`
	DepartmentName string   `json:"department_name,omitempty"`
	Position       string   `json:"position"`
	HireDate       string   `json:"hire_date"`
	YearsOfService int      `json:"years_of_service"`
	Status         string   `json:"status"`
	ManagerID      *string  `json:"manager_id,omitempty"`
	ManagerName    *string  `json:"manager_name,omitempty"`
	HasAccount     bool     `json:"has_account"`
}
