package kpi

import "github.com/strivehr/perform-backend-go/internal/pkg/validator"

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidPercentage(r.Weight) {
		errs = append(errs, validator.ValidationError{
			Field:   "weight",
			Message: "weight must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateKPIRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit,omitempty"`
	Weight      float64 `json:"weight"`
}

func (r *CreateKPIRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidPercentage(r.Weight) {
		errs = append(errs, validator.ValidationError{
			Field:   "weight",
			Message: "weight must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCompetencyRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Weight      float64 `json:"weight"`
}

var validCompetencyCategories = []string{
	string(CompetencyTechnical), string(CompetencyBehavioral),
	string(CompetencyLeadership), string(CompetencyCore),
}

func (r *CreateCompetencyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.Category, validCompetencyCategories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is not a recognized value",
		})
	}
	if !validator.IsValidPercentage(r.Weight) {
		errs = append(errs, validator.ValidationError{
			Field:   "weight",
			Message: "weight must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
