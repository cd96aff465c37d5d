package goal

import "github.com/strivehr/perform-backend-go/internal/pkg/validator"

type CreateGoalRequest struct {
	EmployeeID      string  `json:"employee_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	Type            string  `json:"type"`
	TargetDate      string  `json:"target_date"`
	Priority        string  `json:"priority,omitempty"`
	SuccessCriteria *string `json:"success_criteria,omitempty"`
	Obstacles       *string `json:"obstacles,omitempty"`
	SupportNeeded   *string `json:"support_needed,omitempty"`
}

var validTypes = []string{
	string(TypePerformance), string(TypeDevelopment),
	string(TypeProject), string(TypePersonal),
}

var validPriorities = []string{
	string(PriorityLow), string(PriorityMedium), string(PriorityHigh),
}

func (r *CreateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be performance, development, project or personal",
		})
	}
	if validator.IsEmpty(r.TargetDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_date",
			Message: "target_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.TargetDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "target_date",
			Message: "target_date must be in YYYY-MM-DD format",
		})
	}
	if r.Priority != "" && !validator.IsInSlice(r.Priority, validPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium or high",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProgressRequest struct {
	GoalID   string  `json:"-"`
	Progress float64 `json:"progress"`
	Comments *string `json:"comments,omitempty"`
}

func (r *UpdateProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GoalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "goal_id",
			Message: "goal_id is required",
		})
	}
	if !validator.IsValidPercentage(r.Progress) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
