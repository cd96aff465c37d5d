package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanStatusIsClosed(t *testing.T) {
	assert.False(t, PlanActive.IsClosed())
	assert.False(t, PlanExtended.IsClosed())
	assert.True(t, PlanCompleted.IsClosed())
	assert.True(t, PlanTerminated.IsClosed())
}

func validCreatePlan() CreateImprovementPlanRequest {
	return CreateImprovementPlanRequest{
		EmployeeID:      "emp-1",
		EvaluationID:    "eval-1",
		StartDate:       "2026-09-01",
		EndDate:         "2026-11-30",
		Objectives:      "Raise delivery quality to team baseline",
		ActionPlan:      "Weekly 1:1 reviews and pairing sessions",
		SuccessCriteria: "Two consecutive sprints without rework",
	}
}

func TestCreateImprovementPlanRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreatePlan()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := validCreatePlan()
		req.EvaluationID = ""
		req.Objectives = " "
		req.ActionPlan = ""
		fields := evaluationFieldErrors(t, req.Validate())
		assert.Contains(t, fields, "evaluation_id")
		assert.Contains(t, fields, "objectives")
		assert.Contains(t, fields, "action_plan")
	})

	t.Run("end before start", func(t *testing.T) {
		req := validCreatePlan()
		req.StartDate = "2026-11-30"
		req.EndDate = "2026-09-01"
		fields := evaluationFieldErrors(t, req.Validate())
		assert.Contains(t, fields, "end_date")
	})

	t.Run("bad date format", func(t *testing.T) {
		req := validCreatePlan()
		req.StartDate = "01/09/2026"
		fields := evaluationFieldErrors(t, req.Validate())
		assert.Contains(t, fields, "start_date")
	})
}

func TestUpdateImprovementPlanRequestValidate(t *testing.T) {
	status := "extended"
	valid := UpdateImprovementPlanRequest{ID: "plan-1", Status: &status}
	assert.NoError(t, valid.Validate())

	unknown := "paused"
	bad := UpdateImprovementPlanRequest{ID: "plan-1", Status: &unknown}
	fields := evaluationFieldErrors(t, bad.Validate())
	assert.Contains(t, fields, "status")

	badDate := "soon"
	malformed := UpdateImprovementPlanRequest{ID: "plan-1", EndDate: &badDate}
	fields = evaluationFieldErrors(t, malformed.Validate())
	assert.Contains(t, fields, "end_date")
}
