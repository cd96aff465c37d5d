package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/training"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	trainingservice "github.com/strivehr/perform-backend-go/internal/service/training"
)

type TrainingHandler struct {
	trainings *trainingservice.Service
}

func NewTrainingHandler(trainings *trainingservice.Service) *TrainingHandler {
	return &TrainingHandler{trainings: trainings}
}

func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := training.Filter{
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

	trainings, total, err := h.trainings.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, trainings, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.trainings.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req training.CreateTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.trainings.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Training created", created)
}

func (h *TrainingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req training.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.trainings.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training status updated", updated)
}

func (h *TrainingHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var employeeID, status *string
	if v := q.Get("employee_id"); v != "" {
		employeeID = &v
	}
	if v := q.Get("status"); v != "" {
		status = &v
	}

	requests, err := h.trainings.ListRequests(r.Context(), employeeID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *TrainingHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	var req training.ReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	reviewed, err := h.trainings.ReviewRequest(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training request reviewed", reviewed)
}
