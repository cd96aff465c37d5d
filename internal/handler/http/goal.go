package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/goal"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	goalservice "github.com/strivehr/perform-backend-go/internal/service/goal"
)

type GoalHandler struct {
	goals *goalservice.Service
}

func NewGoalHandler(goals *goalservice.Service) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := goal.Filter{
		Page:  queryInt(q.Get("page"), 1),
		Limit: queryInt(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("type"); v != "" {
		filter.Type = &v
	}

	goals, total, err := h.goals.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, goals, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.goals.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, g)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req goal.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.goals.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Goal created", created)
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req goal.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.GoalID = chi.URLParam(r, "id")

	updated, err := h.goals.UpdateProgress(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Progress updated", updated)
}

func (h *GoalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	g, err := h.goals.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Goal cancelled", g)
}

func (h *GoalHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	entries, err := h.goals.ListProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

func (h *GoalHandler) MarkOverdue(w http.ResponseWriter, r *http.Request) {
	count, err := h.goals.MarkOverdue(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overdue sweep completed", map[string]int{"marked": count})
}
