package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/domain/goal"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/domain/training"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	employeeservice "github.com/strivehr/perform-backend-go/internal/service/employee"
	evaluationservice "github.com/strivehr/perform-backend-go/internal/service/evaluation"
	goalservice "github.com/strivehr/perform-backend-go/internal/service/goal"
	leaveservice "github.com/strivehr/perform-backend-go/internal/service/leave"
	trainingservice "github.com/strivehr/perform-backend-go/internal/service/training"
)

// PortalHandler serves the employee self-service surface. Every route is
// scoped to the employee linked to the authenticated user.
type PortalHandler struct {
	employees   *employeeservice.Service
	evaluations *evaluationservice.Service
	goals       *goalservice.Service
	trainings   *trainingservice.Service
	leaves      *leaveservice.Service
}

func NewPortalHandler(
	employees *employeeservice.Service,
	evaluations *evaluationservice.Service,
	goals *goalservice.Service,
	trainings *trainingservice.Service,
	leaves *leaveservice.Service,
) *PortalHandler {
	return &PortalHandler{
		employees:   employees,
		evaluations: evaluations,
		goals:       goals,
		trainings:   trainings,
		leaves:      leaves,
	}
}

func (h *PortalHandler) Me(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	detail, err := h.employees.GetDetail(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

func (h *PortalHandler) MyEvaluations(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	evaluations, total, err := h.evaluations.List(r.Context(), evaluation.Filter{
		EmployeeID: &employeeID,
		Page:       queryInt(r.URL.Query().Get("page"), 1),
		Limit:      queryInt(r.URL.Query().Get("limit"), 20),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, evaluations, &response.Meta{
		Page:       queryInt(r.URL.Query().Get("page"), 1),
		Limit:      queryInt(r.URL.Query().Get("limit"), 20),
		TotalItems: total,
		TotalPages: totalPages(total, queryInt(r.URL.Query().Get("limit"), 20)),
	})
}

func (h *PortalHandler) MyGoals(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	goals, total, err := h.goals.List(r.Context(), goal.Filter{
		EmployeeID: &employeeID,
		Page:       queryInt(r.URL.Query().Get("page"), 1),
		Limit:      queryInt(r.URL.Query().Get("limit"), 20),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, goals, &response.Meta{
		Page:       queryInt(r.URL.Query().Get("page"), 1),
		Limit:      queryInt(r.URL.Query().Get("limit"), 20),
		TotalItems: total,
		TotalPages: totalPages(total, queryInt(r.URL.Query().Get("limit"), 20)),
	})
}

func (h *PortalHandler) UpdateMyGoalProgress(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)

	var req goal.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.GoalID = chi.URLParam(r, "id")

	g, err := h.goals.GetByID(r.Context(), req.GoalID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if g.EmployeeID != employeeID {
		response.Forbidden(w, "You can only update your own goals")
		return
	}

	updated, err := h.goals.UpdateProgress(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Progress updated", updated)
}

func (h *PortalHandler) MyTrainings(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	trainings, _, err := h.trainings.List(r.Context(), training.Filter{
		EmployeeID: &employeeID,
		Page:       1,
		Limit:      100,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, trainings)
}

func (h *PortalHandler) SubmitTrainingRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)

	var req training.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	created, err := h.trainings.SubmitRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Training request submitted", created)
}

func (h *PortalHandler) MyTrainingRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	requests, err := h.trainings.ListRequests(r.Context(), &employeeID, nil)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *PortalHandler) MyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	requests, total, err := h.leaves.List(r.Context(), leave.RequestFilter{
		EmployeeID: &employeeID,
		Page:       queryInt(r.URL.Query().Get("page"), 1),
		Limit:      queryInt(r.URL.Query().Get("limit"), 20),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, requests, &response.Meta{
		Page:       queryInt(r.URL.Query().Get("page"), 1),
		Limit:      queryInt(r.URL.Query().Get("limit"), 20),
		TotalItems: total,
		TotalPages: totalPages(total, queryInt(r.URL.Query().Get("limit"), 20)),
	})
}

func (h *PortalHandler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)

	var body createLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req := body.CreateRequestRequest
	req.EmployeeID = employeeID

	var (
		created leave.Request
		err     error
	)
	if body.Draft {
		created, err = h.leaves.CreateDraft(r.Context(), req)
	} else {
		created, err = h.leaves.Submit(r.Context(), req)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request created", created)
}

func (h *PortalHandler) SubmitLeaveDraft(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	id := chi.URLParam(r, "id")

	request, err := h.leaves.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if request.EmployeeID != employeeID {
		response.Forbidden(w, "You can only submit your own requests")
		return
	}

	submitted, err := h.leaves.SubmitDraft(r.Context(), actorFrom(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request submitted", submitted)
}

func (h *PortalHandler) MyLeaveBalances(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeID(r)
	year := queryInt(r.URL.Query().Get("year"), time.Now().Year())

	balances, err := h.leaves.Balances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balances)
}
