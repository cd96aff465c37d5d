package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	accountservice "github.com/strivehr/perform-backend-go/internal/service/account"
)

type AccountHandler struct {
	accounts *accountservice.Service
}

func NewAccountHandler(accounts *accountservice.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) Provision(w http.ResponseWriter, r *http.Request) {
	result, err := h.accounts.Provision(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Account provisioning completed", result)
}

type provisionAllRequest struct {
	DepartmentID *string `json:"department_id,omitempty"`
}

func (h *AccountHandler) ProvisionAll(w http.ResponseWriter, r *http.Request) {
	var req provisionAllRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	result, err := h.accounts.ProvisionAll(r.Context(), req.DepartmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bulk provisioning completed", result)
}
