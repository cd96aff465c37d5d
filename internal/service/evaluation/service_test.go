package evaluation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
)

type fakeEvaluationRepo struct {
	evaluation.Repository
	evaluations map[string]evaluation.Evaluation
}

func (f *fakeEvaluationRepo) GetByID(_ context.Context, id string) (evaluation.Evaluation, error) {
	ev, ok := f.evaluations[id]
	if !ok {
		return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
	}
	return ev, nil
}

type fakeEmployeeRepo struct {
	employee.Repository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakePlanRepo struct {
	plans map[string]evaluation.ImprovementPlan
	seq   int
}

func (f *fakePlanRepo) CreatePlan(_ context.Context, p evaluation.ImprovementPlan) (evaluation.ImprovementPlan, error) {
	f.seq++
	p.ID = fmt.Sprintf("plan-%d", f.seq)
	f.plans[p.ID] = p
	return p, nil
}

func (f *fakePlanRepo) GetPlanByID(_ context.Context, id string) (evaluation.ImprovementPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return evaluation.ImprovementPlan{}, evaluation.ErrPlanNotFound
	}
	return p, nil
}

func (f *fakePlanRepo) ListPlans(_ context.Context, filter evaluation.ImprovementPlanFilter) ([]evaluation.ImprovementPlan, int64, error) {
	var out []evaluation.ImprovementPlan
	for _, p := range f.plans {
		if filter.EmployeeID != nil && p.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(p.Status) != *filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePlanRepo) UpdatePlan(_ context.Context, p evaluation.ImprovementPlan) error {
	if _, ok := f.plans[p.ID]; !ok {
		return evaluation.ErrPlanNotFound
	}
	f.plans[p.ID] = p
	return nil
}

func newPlanFixture() (*Service, *fakePlanRepo) {
	evaluations := &fakeEvaluationRepo{evaluations: map[string]evaluation.Evaluation{
		"eval-1": {ID: "eval-1", EmployeeID: "emp-1", Status: evaluation.StatusReviewed},
		"eval-2": {ID: "eval-2", EmployeeID: "emp-2", Status: evaluation.StatusReviewed},
	}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: "EMP001"},
		"emp-2": {ID: "emp-2", EmployeeCode: "EMP002"},
	}}
	plans := &fakePlanRepo{plans: map[string]evaluation.ImprovementPlan{}}
	return NewService(evaluations, employees, nil, plans), plans
}

func createPlanRequest() evaluation.CreateImprovementPlanRequest {
	return evaluation.CreateImprovementPlanRequest{
		EmployeeID:      "emp-1",
		EvaluationID:    "eval-1",
		StartDate:       "2026-09-01",
		EndDate:         "2026-11-30",
		Objectives:      "Close the gap on release quality",
		ActionPlan:      "Pair on two releases per sprint",
		SuccessCriteria: "No critical defects over the plan window",
	}
}

func TestCreatePlanOpensActivePlan(t *testing.T) {
	svc, repo := newPlanFixture()

	created, err := svc.CreatePlan(context.Background(), createPlanRequest())
	require.NoError(t, err)

	assert.Equal(t, evaluation.PlanActive, created.Status)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, "eval-1", created.EvaluationID)
	assert.Equal(t, "2026-09-01", created.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-11-30", created.EndDate.Format("2006-01-02"))

	listed, total, err := svc.ListPlans(context.Background(), evaluation.ImprovementPlanFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, listed, 1)
	assert.Len(t, repo.plans, 1)
}

func TestCreatePlanRejectsForeignEvaluation(t *testing.T) {
	svc, _ := newPlanFixture()

	req := createPlanRequest()
	req.EvaluationID = "eval-2" // belongs to emp-2

	_, err := svc.CreatePlan(context.Background(), req)
	assert.ErrorIs(t, err, evaluation.ErrPlanEmployeeMismatch)
}

func TestCreatePlanRequiresExistingRecords(t *testing.T) {
	svc, _ := newPlanFixture()

	missingEmployee := createPlanRequest()
	missingEmployee.EmployeeID = "emp-404"
	missingEmployee.EvaluationID = "eval-404"
	_, err := svc.CreatePlan(context.Background(), missingEmployee)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	missingEvaluation := createPlanRequest()
	missingEvaluation.EvaluationID = "eval-404"
	_, err = svc.CreatePlan(context.Background(), missingEvaluation)
	assert.ErrorIs(t, err, evaluation.ErrEvaluationNotFound)
}

func TestUpdatePlanLifecycle(t *testing.T) {
	svc, _ := newPlanFixture()

	created, err := svc.CreatePlan(context.Background(), createPlanRequest())
	require.NoError(t, err)

	// active plans can be extended with a new end date
	extended := "extended"
	newEnd := "2027-01-31"
	notes := "Progress is real but slower than planned"
	plan, err := svc.UpdatePlan(context.Background(), evaluation.UpdateImprovementPlanRequest{
		ID:            created.ID,
		Status:        &extended,
		EndDate:       &newEnd,
		ProgressNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, evaluation.PlanExtended, plan.Status)
	assert.Equal(t, newEnd, plan.EndDate.Format("2006-01-02"))
	require.NotNil(t, plan.ProgressNotes)
	assert.Equal(t, notes, *plan.ProgressNotes)

	// extended plans can still be closed out
	completed := "completed"
	outcome := "Met all success criteria by the revised date"
	plan, err = svc.UpdatePlan(context.Background(), evaluation.UpdateImprovementPlanRequest{
		ID:      created.ID,
		Status:  &completed,
		Outcome: &outcome,
	})
	require.NoError(t, err)
	assert.Equal(t, evaluation.PlanCompleted, plan.Status)

	// closed plans reject any further change
	moreNotes := "late addendum"
	_, err = svc.UpdatePlan(context.Background(), evaluation.UpdateImprovementPlanRequest{
		ID:            created.ID,
		ProgressNotes: &moreNotes,
	})
	assert.ErrorIs(t, err, evaluation.ErrPlanClosed)
}

func TestUpdatePlanUnknownID(t *testing.T) {
	svc, _ := newPlanFixture()

	notes := "no such plan"
	_, err := svc.UpdatePlan(context.Background(), evaluation.UpdateImprovementPlanRequest{
		ID:            "plan-404",
		ProgressNotes: &notes,
	})
	assert.ErrorIs(t, err, evaluation.ErrPlanNotFound)
}
