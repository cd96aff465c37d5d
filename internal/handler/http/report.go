package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/report"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	reportservice "github.com/strivehr/perform-backend-go/internal/service/report"
)

type ReportHandler struct {
	reports *reportservice.Service
}

func NewReportHandler(reports *reportservice.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type generateReportRequest struct {
	Type         string  `json:"type"`
	Format       string  `json:"format"`
	DepartmentID *string `json:"department_id,omitempty"`
	PeriodID     *string `json:"period_id,omitempty"`
	DateFrom     *string `json:"date_from,omitempty"`
	DateTo       *string `json:"date_to,omitempty"`
}

func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	params := report.Params{
		DepartmentID: req.DepartmentID,
		PeriodID:     req.PeriodID,
	}
	if req.DateFrom != nil {
		if t, err := time.Parse("2006-01-02", *req.DateFrom); err == nil {
			params.DateFrom = &t
		}
	}
	if req.DateTo != nil {
		if t, err := time.Parse("2006-01-02", *req.DateTo); err == nil {
			params.DateTo = &t
		}
	}

	export, err := h.reports.Generate(r.Context(), middleware.UserID(r), report.Type(req.Type), req.Format, params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Write(export.Data)
}

func (h *ReportHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	var generatedBy *string
	if v := r.URL.Query().Get("generated_by"); v != "" {
		generatedBy = &v
	}

	records, err := h.reports.ListRecords(r.Context(), generatedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
