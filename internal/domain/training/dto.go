package training

import "github.com/strivehr/perform-backend-go/internal/pkg/validator"

var validTypes = []string{
	string(TypeInternal), string(TypeExternal), string(TypeOnline),
	string(TypeCertification), string(TypeWorkshop),
}

var validStatuses = []string{
	string(StatusPlanned), string(StatusInProgress), string(StatusCompleted),
	string(StatusCancelled), string(StatusPostponed),
}

// ValidStatus reports whether s is an allowed training status value.
func ValidStatus(s string) bool {
	return validator.IsInSlice(s, validStatuses)
}

type CreateTrainingRequest struct {
	EmployeeID    string   `json:"employee_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Type          string   `json:"type"`
	Provider      string   `json:"provider,omitempty"`
	Location      string   `json:"location,omitempty"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
}

func (r *CreateTrainingRequest) Validate() error {
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
			Message: "type is not a recognized value",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string   `json:"-"`
	Status string   `json:"status"`
	Score  *float64 `json:"score,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be planned, in_progress, completed, cancelled or postponed",
		})
	}
	if r.Score != nil && !validator.IsValidScore(*r.Score) {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitRequestRequest struct {
	EmployeeID       string   `json:"-"`
	Title            string   `json:"title"`
	Type             string   `json:"type"`
	Provider         string   `json:"provider,omitempty"`
	EstimatedCost    *float64 `json:"estimated_cost,omitempty"`
	Justification    string   `json:"justification"`
	ExpectedOutcomes string   `json:"expected_outcomes"`
}

func (r *SubmitRequestRequest) Validate() error {
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
			Message: "type is not a recognized value",
		})
	}
	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequestRequest struct {
	ID              string  `json:"-"`
	Approve         bool    `json:"approve"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *ReviewRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !r.Approve && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
