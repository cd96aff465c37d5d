package evaluation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/domain/kpi"
	"github.com/strivehr/perform-backend-go/internal/pkg/validator"
)

type Service struct {
	evaluation.Repository
	employees employee.Repository
	kpis      kpi.Repository
	plans     evaluation.ImprovementPlanRepository
}

func NewService(evaluations evaluation.Repository, employees employee.Repository, kpis kpi.Repository, plans evaluation.ImprovementPlanRepository) *Service {
	return &Service{
		Repository: evaluations,
		employees:  employees,
		kpis:       kpis,
		plans:      plans,
	}
}

func (s *Service) Create(ctx context.Context, evaluatorID string, req evaluation.CreateEvaluationRequest) (evaluation.Evaluation, error) {
	if err := req.Validate(); err != nil {
		return evaluation.Evaluation{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return evaluation.Evaluation{}, err
	}
	if _, err := s.Repository.GetPeriodByID(ctx, req.PeriodID); err != nil {
		return evaluation.Evaluation{}, err
	}

	// one evaluation per employee and period
	if _, err := s.Repository.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.PeriodID); err == nil {
		return evaluation.Evaluation{}, evaluation.ErrDuplicateEvaluation
	} else if !errors.Is(err, evaluation.ErrEvaluationNotFound) {
		return evaluation.Evaluation{}, err
	}

	ev := evaluation.Evaluation{
		EmployeeID:      req.EmployeeID,
		EvaluatorID:     evaluatorID,
		PeriodID:        req.PeriodID,
		Status:          evaluation.StatusDraft,
		Comments:        req.Comments,
		Strengths:       req.Strengths,
		AreasToImprove:  req.AreasToImprove,
		DevelopmentPlan: req.DevelopmentPlan,
	}
	if req.OverallScore != nil {
		ev.SetScore(*req.OverallScore)
	}

	created, err := s.Repository.Create(ctx, ev)
	if err != nil {
		return evaluation.Evaluation{}, err
	}

	if err := s.saveLines(ctx, created.ID, req.Details, req.Competencies); err != nil {
		return evaluation.Evaluation{}, err
	}

	slog.Info("evaluation created", "evaluation_id", created.ID, "employee_id", req.EmployeeID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, req evaluation.UpdateEvaluationRequest) (evaluation.Evaluation, error) {
	if err := req.Validate(); err != nil {
		return evaluation.Evaluation{}, err
	}

	ev, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	if ev.Status != evaluation.StatusDraft {
		return evaluation.Evaluation{}, evaluation.ErrNotDraft
	}

	if req.OverallScore != nil {
		ev.SetScore(*req.OverallScore)
	}
	if req.Comments != nil {
		ev.Comments = req.Comments
	}
	if req.Strengths != nil {
		ev.Strengths = req.Strengths
	}
	if req.AreasToImprove != nil {
		ev.AreasToImprove = req.AreasToImprove
	}
	if req.DevelopmentPlan != nil {
		ev.DevelopmentPlan = req.DevelopmentPlan
	}

	if err := s.Repository.Update(ctx, ev); err != nil {
		return evaluation.Evaluation{}, err
	}
	if err := s.saveLines(ctx, ev.ID, req.Details, req.Competencies); err != nil {
		return evaluation.Evaluation{}, err
	}
	return ev, nil
}

func (s *Service) saveLines(ctx context.Context, evaluationID string, details []evaluation.DetailInput, competencies []evaluation.CompetencyInput) error {
	if details != nil {
		rows := make([]evaluation.Detail, 0, len(details))
		for _, d := range details {
			rows = append(rows, evaluation.Detail{
				EvaluationID: evaluationID,
				KPIID:        d.KPIID,
				TargetValue:  d.TargetValue,
				ActualValue:  d.ActualValue,
				Score:        d.Score,
				Weight:       d.Weight,
				Comments:     d.Comments,
			})
		}
		if err := s.Repository.ReplaceDetails(ctx, evaluationID, rows); err != nil {
			return err
		}
	}
	if competencies != nil {
		rows := make([]evaluation.CompetencyAssessment, 0, len(competencies))
		for _, c := range competencies {
			rows = append(rows, evaluation.CompetencyAssessment{
				EvaluationID: evaluationID,
				CompetencyID: c.CompetencyID,
				Rating:       c.Rating,
				Comments:     c.Comments,
			})
		}
		if err := s.Repository.ReplaceCompetencies(ctx, evaluationID, rows); err != nil {
			return err
		}
	}
	return nil
}

// Submit moves a draft evaluation to submitted and stamps the time.
func (s *Service) Submit(ctx context.Context, id string) (evaluation.Evaluation, error) {
	ev, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	if ev.Status != evaluation.StatusDraft {
		return evaluation.Evaluation{}, evaluation.ErrAlreadySubmitted
	}

	now := time.Now()
	ev.Status = evaluation.StatusSubmitted
	ev.SubmittedAt = &now

	if err := s.Repository.Update(ctx, ev); err != nil {
		return evaluation.Evaluation{}, err
	}
	slog.Info("evaluation submitted", "evaluation_id", ev.ID)
	return ev, nil
}

// Review moves a submitted evaluation to reviewed/approved/rejected.
func (s *Service) Review(ctx context.Context, id string, status evaluation.Status) (evaluation.Evaluation, error) {
	ev, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return evaluation.Evaluation{}, err
	}

	switch status {
	case evaluation.StatusUnderReview, evaluation.StatusReviewed,
		evaluation.StatusApproved, evaluation.StatusRejected:
	default:
		return evaluation.Evaluation{}, evaluation.ErrNotDraft
	}

	now := time.Now()
	ev.Status = status
	ev.ReviewedAt = &now

	if err := s.Repository.Update(ctx, ev); err != nil {
		return evaluation.Evaluation{}, err
	}
	return ev, nil
}

// CreatePlan opens an improvement plan against an existing evaluation.
func (s *Service) CreatePlan(ctx context.Context, req evaluation.CreateImprovementPlanRequest) (evaluation.ImprovementPlan, error) {
	if err := req.Validate(); err != nil {
		return evaluation.ImprovementPlan{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return evaluation.ImprovementPlan{}, err
	}
	ev, err := s.Repository.GetByID(ctx, req.EvaluationID)
	if err != nil {
		return evaluation.ImprovementPlan{}, err
	}
	if ev.EmployeeID != req.EmployeeID {
		return evaluation.ImprovementPlan{}, evaluation.ErrPlanEmployeeMismatch
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.plans.CreatePlan(ctx, evaluation.ImprovementPlan{
		EmployeeID:      req.EmployeeID,
		EvaluationID:    req.EvaluationID,
		StartDate:       start,
		EndDate:         end,
		Status:          evaluation.PlanActive,
		Objectives:      req.Objectives,
		ActionPlan:      req.ActionPlan,
		SuccessCriteria: req.SuccessCriteria,
	})
	if err != nil {
		return evaluation.ImprovementPlan{}, err
	}

	slog.Info("improvement plan created", "plan_id", created.ID, "employee_id", req.EmployeeID)
	return created, nil
}

// UpdatePlan applies status, schedule and progress changes to an open plan.
func (s *Service) UpdatePlan(ctx context.Context, req evaluation.UpdateImprovementPlanRequest) (evaluation.ImprovementPlan, error) {
	if err := req.Validate(); err != nil {
		return evaluation.ImprovementPlan{}, err
	}

	plan, err := s.plans.GetPlanByID(ctx, req.ID)
	if err != nil {
		return evaluation.ImprovementPlan{}, err
	}
	if plan.Status.IsClosed() {
		return evaluation.ImprovementPlan{}, evaluation.ErrPlanClosed
	}

	if req.Status != nil {
		plan.Status = evaluation.PlanStatus(*req.Status)
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		plan.EndDate = end
	}
	if req.ProgressNotes != nil {
		plan.ProgressNotes = req.ProgressNotes
	}
	if req.Outcome != nil {
		plan.Outcome = req.Outcome
	}

	if err := s.plans.UpdatePlan(ctx, plan); err != nil {
		return evaluation.ImprovementPlan{}, err
	}
	return plan, nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (evaluation.ImprovementPlan, error) {
	return s.plans.GetPlanByID(ctx, id)
}

func (s *Service) ListPlans(ctx context.Context, filter evaluation.ImprovementPlanFilter) ([]evaluation.ImprovementPlan, int64, error) {
	return s.plans.ListPlans(ctx, filter)
}

// GetFull loads the evaluation with its KPI details and competency rows.
func (s *Service) GetFull(ctx context.Context, id string) (evaluation.Evaluation, error) {
	ev, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	ev.Details, err = s.Repository.ListDetails(ctx, id)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	ev.Competencies, err = s.Repository.ListCompetencies(ctx, id)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	return ev, nil
}
