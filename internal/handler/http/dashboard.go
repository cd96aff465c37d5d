package http

import (
	"net/http"

	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	dashboardservice "github.com/strivehr/perform-backend-go/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboards *dashboardservice.Service
}

func NewDashboardHandler(dashboards *dashboardservice.Service) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboards.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
