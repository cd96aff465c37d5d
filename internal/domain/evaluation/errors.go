package evaluation

import "errors"

var (
	ErrEvaluationNotFound  = errors.New("evaluation not found")
	ErrPeriodNotFound      = errors.New("evaluation period not found")
	ErrDuplicateEvaluation = errors.New("evaluation already exists for this employee and period")
	ErrNotDraft            = errors.New("evaluation is not in draft status")
	ErrAlreadySubmitted    = errors.New("evaluation has already been submitted")

	ErrPlanNotFound         = errors.New("improvement plan not found")
	ErrPlanClosed           = errors.New("improvement plan is already closed")
	ErrPlanEmployeeMismatch = errors.New("evaluation does not belong to this employee")
)
