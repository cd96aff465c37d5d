package response

import (
	"errors"
	"net/http"

	"github.com/strivehr/perform-backend-go/internal/domain/department"
	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/domain/goal"
	"github.com/strivehr/perform-backend-go/internal/domain/kpi"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/domain/notification"
	"github.com/strivehr/perform-backend-go/internal/domain/report"
	"github.com/strivehr/perform-backend-go/internal/domain/training"
	"github.com/strivehr/perform-backend-go/internal/domain/user"
	"github.com/strivehr/perform-backend-go/internal/pkg/export"
	"github.com/strivehr/perform-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User / auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")

	// Department
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)
	case errors.Is(err, employee.ErrSelfManagedEmployee):
		BadRequest(w, "Employee cannot be their own manager", nil)
	case errors.Is(err, employee.ErrAccountAlreadyLinked):
		Conflict(w, "Employee already has a linked account")

	// KPI catalog
	case errors.Is(err, kpi.ErrCategoryNotFound):
		NotFound(w, "KPI category not found")
	case errors.Is(err, kpi.ErrKPINotFound):
		NotFound(w, "KPI not found")
	case errors.Is(err, kpi.ErrCompetencyNotFound):
		NotFound(w, "Competency not found")
	case errors.Is(err, kpi.ErrKPIExists):
		Conflict(w, "KPI already exists in this category")

	// Evaluation
	case errors.Is(err, evaluation.ErrEvaluationNotFound):
		NotFound(w, "Evaluation not found")
	case errors.Is(err, evaluation.ErrPeriodNotFound):
		NotFound(w, "Evaluation period not found")
	case errors.Is(err, evaluation.ErrDuplicateEvaluation):
		Conflict(w, "Evaluation already exists for this employee and period")
	case errors.Is(err, evaluation.ErrNotDraft),
		errors.Is(err, evaluation.ErrAlreadySubmitted):
		Conflict(w, err.Error())
	case errors.Is(err, evaluation.ErrPlanNotFound):
		NotFound(w, "Improvement plan not found")
	case errors.Is(err, evaluation.ErrPlanClosed):
		Conflict(w, err.Error())
	case errors.Is(err, evaluation.ErrPlanEmployeeMismatch):
		BadRequest(w, err.Error(), nil)

	// Goal
	case errors.Is(err, goal.ErrGoalNotFound):
		NotFound(w, "Goal not found")
	case errors.Is(err, goal.ErrGoalCancelled):
		Conflict(w, "Goal has been cancelled")

	// Training
	case errors.Is(err, training.ErrTrainingNotFound):
		NotFound(w, "Training not found")
	case errors.Is(err, training.ErrRequestNotFound):
		NotFound(w, "Training request not found")
	case errors.Is(err, training.ErrRequestReviewed):
		Conflict(w, "Training request already reviewed")

	// Leave
	case errors.Is(err, leave.ErrTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrDocumentNotFound):
		NotFound(w, "Leave request document not found")
	case errors.Is(err, leave.ErrApprovalLevelNotFound):
		NotFound(w, "Approval level not found")
	case errors.Is(err, leave.ErrApproverRoleMismatch):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrNotDraft),
		errors.Is(err, leave.ErrNotPendingApproval),
		errors.Is(err, leave.ErrAlreadyApproved),
		errors.Is(err, leave.ErrAlreadyDecided),
		errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidLevel):
		BadRequest(w, "Invalid approval level", nil)

	// Report
	case errors.Is(err, report.ErrUnknownReportType):
		BadRequest(w, "Unknown report type", nil)
	case errors.Is(err, export.ErrUnsupportedFormat):
		ValidationError(w, map[string]string{"format": "format must be csv or json"})

	// Notification
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
