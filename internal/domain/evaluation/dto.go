package evaluation

import "github.com/strivehr/perform-backend-go/internal/pkg/validator"

type CreatePeriodRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

var validPeriodTypes = []string{
	string(PeriodMonthly), string(PeriodQuarterly),
	string(PeriodYearly), string(PeriodMidYear),
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.Type, validPeriodTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be monthly, quarterly, yearly or mid_year",
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

type DetailInput struct {
	KPIID       string  `json:"kpi_id"`
	TargetValue float64 `json:"target_value"`
	ActualValue float64 `json:"actual_value"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Comments    *string `json:"comments,omitempty"`
}

type CompetencyInput struct {
	CompetencyID string  `json:"competency_id"`
	Rating       int     `json:"rating"`
	Comments     *string `json:"comments,omitempty"`
}

type CreateEvaluationRequest struct {
	EmployeeID   string            `json:"employee_id"`
	PeriodID     string            `json:"period_id"`
	OverallScore *float64          `json:"overall_score,omitempty"`
	Comments     *string           `json:"comments,omitempty"`
	Strengths    *string           `json:"strengths,omitempty"`
	AreasToImprove *string         `json:"areas_to_improve,omitempty"`
	DevelopmentPlan *string        `json:"development_plan,omitempty"`
	Details      []DetailInput     `json:"details,omitempty"`
	Competencies []CompetencyInput `json:"competencies,omitempty"`
}

func (r *CreateEvaluationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_id",
			Message: "period_id is required",
		})
	}
	if r.OverallScore != nil && !validator.IsValidScore(*r.OverallScore) {
		errs = append(errs, validator.ValidationError{
			Field:   "overall_score",
			Message: "overall_score must be between 0 and 100",
		})
	}
	for _, d := range r.Details {
		if !validator.IsValidScore(d.Score) {
			errs = append(errs, validator.ValidationError{
				Field:   "details",
				Message: "detail score must be between 0 and 100",
			})
			break
		}
	}
	for _, c := range r.Competencies {
		if !validator.IsValidRating(float64(c.Rating)) {
			errs = append(errs, validator.ValidationError{
				Field:   "competencies",
				Message: "competency rating must be between 1 and 5",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateImprovementPlanRequest struct {
	EmployeeID      string `json:"employee_id"`
	EvaluationID    string `json:"evaluation_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Objectives      string `json:"objectives"`
	ActionPlan      string `json:"action_plan"`
	SuccessCriteria string `json:"success_criteria"`
}

func (r *CreateImprovementPlanRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"employee_id", r.EmployeeID},
		{"evaluation_id", r.EvaluationID},
		{"objectives", r.Objectives},
		{"action_plan", r.ActionPlan},
		{"success_criteria", r.SuccessCriteria},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
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

var validPlanStatuses = []string{
	string(PlanActive), string(PlanCompleted),
	string(PlanExtended), string(PlanTerminated),
}

type UpdateImprovementPlanRequest struct {
	ID            string  `json:"-"`
	Status        *string `json:"status,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	ProgressNotes *string `json:"progress_notes,omitempty"`
	Outcome       *string `json:"outcome,omitempty"`
}

func (r *UpdateImprovementPlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validPlanStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, completed, extended or terminated",
		})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEvaluationRequest struct {
	ID              string            `json:"-"`
	OverallScore    *float64          `json:"overall_score,omitempty"`
	Comments        *string           `json:"comments,omitempty"`
	Strengths       *string           `json:"strengths,omitempty"`
	AreasToImprove  *string           `json:"areas_to_improve,omitempty"`
	DevelopmentPlan *string           `json:"development_plan,omitempty"`
	Details         []DetailInput     `json:"details,omitempty"`
	Competencies    []CompetencyInput `json:"competencies,omitempty"`
}

func (r *UpdateEvaluationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.OverallScore != nil && !validator.IsValidScore(*r.OverallScore) {
		errs = append(errs, validator.ValidationError{
			Field:   "overall_score",
			Message: "overall_score must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
