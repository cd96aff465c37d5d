package leave

import (
	"time"

	"github.com/strivehr/perform-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeID        string  `json:"-"`
	LeaveTypeID       *string `json:"leave_type_id,omitempty"`
	LeaveTypeOverride *string `json:"leave_type_override,omitempty"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	TotalDays         float64 `json:"total_days"`
	IsHalfDay         bool    `json:"is_half_day"`
	HalfDayPeriod     *string `json:"half_day_period,omitempty"`
	Reason            string  `json:"reason"`
	Notes             *string `json:"notes,omitempty"`
	ContactDuringLeave *string `json:"contact_during_leave,omitempty"`
	ContactPhone      *string `json:"contact_phone,omitempty"`
}

// Validate checks the submission rules: a type or override, ordered dates
// not in the past, positive total_days, and a period for half-day requests.
func (r *CreateRequestRequest) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	hasType := r.LeaveTypeID != nil && !validator.IsEmpty(*r.LeaveTypeID)
	hasOverride := r.LeaveTypeOverride != nil && !validator.IsEmpty(*r.LeaveTypeOverride)
	if !hasType && !hasOverride {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id or leave_type_override is required",
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
	if startOK {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if start.Before(today) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must not be in the past",
			})
		}
	}

	if r.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must be greater than zero",
		})
	}

	if r.IsHalfDay {
		if r.HalfDayPeriod == nil ||
			!validator.IsInSlice(*r.HalfDayPeriod, []string{string(HalfDayMorning), string(HalfDayAfternoon)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_period",
				Message: "half_day_period must be morning or afternoon for half-day requests",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	RequestID string  `json:"-"`
	Level     int     `json:"level"`
	Comments  *string `json:"comments,omitempty"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if r.Level < 1 || r.Level > MaxApprovalLevels {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be 1 or 2",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	RequestID string `json:"-"`
	Reason    string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTypeRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	DefaultAllocation float64 `json:"default_allocation"`
	RequiresApproval  bool    `json:"requires_approval"`
	ColorCode         string  `json:"color_code,omitempty"`
}

func (r *CreateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.DefaultAllocation < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_allocation",
			Message: "default_allocation must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CarryOverRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	FromYear    int    `json:"from_year"`
	ToYear      int    `json:"to_year"`
}

func (r *CarryOverRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.ToYear != r.FromYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "to_year",
			Message: "to_year must be the year after from_year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkResult reports the outcome of a bulk approve/reject action.
type BulkResult struct {
	Processed int               `json:"processed"`
	Skipped   int               `json:"skipped"`
	Errors    map[string]string `json:"errors,omitempty"`
}
