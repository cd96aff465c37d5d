package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/domain/kpi"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	"github.com/strivehr/perform-backend-go/internal/pkg/validator"
	evaluationservice "github.com/strivehr/perform-backend-go/internal/service/evaluation"
)

type EvaluationHandler struct {
	evaluations *evaluationservice.Service
	kpis        kpi.Repository
}

func NewEvaluationHandler(evaluations *evaluationservice.Service, kpis kpi.Repository) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations, kpis: kpis}
}

func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := evaluation.Filter{
		Page:  queryInt(q.Get("page"), 1),
		Limit: queryInt(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("period_id"); v != "" {
		filter.PeriodID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}

	evaluations, total, err := h.evaluations.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, evaluations, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.evaluations.GetFull(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, ev)
}

func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req evaluation.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.evaluations.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Evaluation created", created)
}

func (h *EvaluationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req evaluation.UpdateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.evaluations.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *EvaluationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ev, err := h.evaluations.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Evaluation submitted", ev)
}

type reviewEvaluationRequest struct {
	Status string `json:"status"`
}

func (h *EvaluationHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	ev, err := h.evaluations.Review(r.Context(), chi.URLParam(r, "id"), evaluation.Status(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, ev)
}

func (h *EvaluationHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	periods, err := h.evaluations.ListPeriods(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, periods)
}

func (h *EvaluationHandler) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req evaluation.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := h.evaluations.CreatePeriod(r.Context(), evaluation.Period{
		Name:      req.Name,
		Type:      evaluation.PeriodType(req.Type),
		StartDate: start,
		EndDate:   end,
		IsActive:  req.IsActive,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Evaluation period created", created)
}

// Improvement plan endpoints

func (h *EvaluationHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := evaluation.ImprovementPlanFilter{
		Page:  queryInt(q.Get("page"), 1),
		Limit: queryInt(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}

	plans, total, err := h.evaluations.ListPlans(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, plans, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func (h *EvaluationHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.evaluations.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plan)
}

func (h *EvaluationHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req evaluation.CreateImprovementPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.evaluations.CreatePlan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Improvement plan created", created)
}

func (h *EvaluationHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var req evaluation.UpdateImprovementPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.evaluations.UpdatePlan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// KPI catalog endpoints

func (h *EvaluationHandler) ListKPIs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var categoryID *string
	if v := q.Get("category_id"); v != "" {
		categoryID = &v
	}
	kpis, err := h.kpis.ListKPIs(r.Context(), categoryID, q.Get("active") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, kpis)
}

func (h *EvaluationHandler) CreateKPI(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateKPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := h.kpis.GetCategoryByID(r.Context(), req.CategoryID); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.kpis.CreateKPI(r.Context(), kpi.KPI{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Weight:      req.Weight,
		IsActive:    true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "KPI created", created)
}

func (h *EvaluationHandler) ListKPICategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.kpis.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, categories)
}

func (h *EvaluationHandler) CreateKPICategory(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.kpis.CreateCategory(r.Context(), kpi.Category{
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "KPI category created", created)
}

func (h *EvaluationHandler) ListCompetencies(w http.ResponseWriter, r *http.Request) {
	competencies, err := h.kpis.ListCompetencies(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, competencies)
}

func (h *EvaluationHandler) CreateCompetency(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateCompetencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.kpis.CreateCompetency(r.Context(), kpi.Competency{
		Name:        req.Name,
		Description: req.Description,
		Category:    kpi.CompetencyCategory(req.Category),
		Weight:      req.Weight,
		IsActive:    true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Competency created", created)
}
