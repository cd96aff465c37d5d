package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/department"
	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	employeeservice "github.com/strivehr/perform-backend-go/internal/service/employee"
)

type EmployeeHandler struct {
	employees   *employeeservice.Service
	departments department.Repository
}

func NewEmployeeHandler(employees *employeeservice.Service, departments department.Repository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, departments: departments}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := employee.Filter{
		Page:      queryInt(q.Get("page"), 1),
		Limit:     queryInt(q.Get("limit"), 20),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if s := q.Get("search"); s != "" {
		filter.Search = &s
	}
	if d := q.Get("department_id"); d != "" {
		filter.DepartmentID = &d
	}
	if s := q.Get("status"); s != "" {
		filter.Status = &s
	}

	employees, total, err := h.employees.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, employees, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	detail, err := h.employees.GetDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.employees.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", created)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.employees.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.employees.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Department admin CRUD lives beside employees; both are org structure.

func (h *EmployeeHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departments.ListWithEmployeeCounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *EmployeeHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.departments.Create(r.Context(), department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", created)
}

func (h *EmployeeHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	dept, err := h.departments.GetByID(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if err := h.departments.Update(r.Context(), dept); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dept)
}

func (h *EmployeeHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.departments.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}

func queryInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
