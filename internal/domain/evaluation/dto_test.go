package evaluation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strivehr/perform-backend-go/internal/pkg/validator"
)

func validCreateEvaluation() CreateEvaluationRequest {
	return CreateEvaluationRequest{
		EmployeeID: "emp-1",
		PeriodID:   "period-1",
		Details: []DetailInput{
			{KPIID: "kpi-1", TargetValue: 100, ActualValue: 90, Score: 90, Weight: 50},
		},
		Competencies: []CompetencyInput{
			{CompetencyID: "comp-1", Rating: 4},
		},
	}
}

func evaluationFieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	return verrs.ToMap()
}

func TestCreateEvaluationRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateEvaluation()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing identifiers", func(t *testing.T) {
		req := validCreateEvaluation()
		req.EmployeeID = ""
		req.PeriodID = " "
		fields := evaluationFieldErrors(t, req.Validate())
		assert.Contains(t, fields, "employee_id")
		assert.Contains(t, fields, "period_id")
	})

	t.Run("overall score out of range", func(t *testing.T) {
		req := validCreateEvaluation()
		score := 110.0
		req.OverallScore = &score
		fields := evaluationFieldErrors(t, req.Validate())
		assert.Contains(t, fields, "overall_score")
	})

	t.Run("detail score out of range", func(t *testing.T) {
		req := validCreateEvaluation()
		req.Details[0].Score = 101
		fields := evaluationFieldErrors(t, req.Validate())
		assert.Contains(t, fields, "details")
	})

	t.Run("competency rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			req := validCreateEvaluation()
			req.Competencies[0].Rating = rating
			fields := evaluationFieldErrors(t, req.Validate())
			assert.Contains(t, fields, "competencies", "rating %d", rating)
		}
		for _, rating := range []int{1, 3, 5} {
			req := validCreateEvaluation()
			req.Competencies[0].Rating = rating
			assert.NoError(t, req.Validate(), "rating %d", rating)
		}
	})
}

func TestCreatePeriodRequestValidate(t *testing.T) {
	valid := CreatePeriodRequest{
		Name:      "Q3 2026",
		Type:      "quarterly",
		StartDate: "2026-07-01",
		EndDate:   "2026-09-30",
	}
	assert.NoError(t, valid.Validate())

	backwards := valid
	backwards.StartDate = "2026-09-30"
	backwards.EndDate = "2026-07-01"
	fields := evaluationFieldErrors(t, backwards.Validate())
	assert.Contains(t, fields, "end_date")

	badType := valid
	badType.Type = "weekly"
	fields = evaluationFieldErrors(t, badType.Validate())
	assert.Contains(t, fields, "type")
}
