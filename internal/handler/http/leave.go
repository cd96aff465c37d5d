package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/domain/user"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	"github.com/strivehr/perform-backend-go/internal/pkg/storage"
	leaveservice "github.com/strivehr/perform-backend-go/internal/service/leave"
)

type LeaveHandler struct {
	leaves  *leaveservice.Service
	storage storage.FileStorage
}

func NewLeaveHandler(leaves *leaveservice.Service, fileStorage storage.FileStorage) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, storage: fileStorage}
}

func actorFrom(r *http.Request) leave.Actor {
	return leave.Actor{
		UserID: middleware.UserID(r),
		Name:   middleware.Username(r),
		Role:   approverRole(middleware.Role(r)),
	}
}

// approverRole maps the system role to the workflow's approver role.
// Admins carry no level role; the workflow lets them act anywhere.
func approverRole(role user.Role) leave.ApproverRole {
	switch role {
	case user.RoleManager:
		return leave.ApproverDepartmentManager
	case user.RoleHRManager:
		return leave.ApproverHRManager
	case user.RoleAdmin:
		return ""
	default:
		return leave.ApproverGeneric
	}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leave.RequestFilter{
		Page:  queryInt(q.Get("page"), 1),
		Limit: queryInt(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("leave_type_id"); v != "" {
		filter.LeaveTypeID = &v
	}
	if v := q.Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}

	requests, total, err := h.leaves.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, requests, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func (h *LeaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	request, err := h.leaves.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, request)
}

type createLeaveRequest struct {
	leave.CreateRequestRequest
	EmployeeID string `json:"employee_id"`
	Draft      bool   `json:"draft,omitempty"`
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req := body.CreateRequestRequest
	req.EmployeeID = body.EmployeeID

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

func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	request, err := h.leaves.SubmitDraft(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request submitted", request)
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req leave.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	request, err := h.leaves.Approve(r.Context(), actorFrom(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", request)
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req leave.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	request, err := h.leaves.Reject(r.Context(), actorFrom(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", request)
}

func (h *LeaveHandler) ResetToDraft(w http.ResponseWriter, r *http.Request) {
	request, err := h.leaves.ResetToDraft(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request reset to draft", request)
}

type bulkApproveRequest struct {
	RequestIDs []string `json:"request_ids"`
	Level      int      `json:"level"`
	Comments   *string  `json:"comments,omitempty"`
}

func (h *LeaveHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req bulkApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.RequestIDs) == 0 {
		response.BadRequest(w, "request_ids is required", nil)
		return
	}

	result := h.leaves.BulkApprove(r.Context(), actorFrom(r), req.RequestIDs, req.Level, req.Comments)
	response.SuccessWithMessage(w, "Bulk approval completed", result)
}

type bulkRejectRequest struct {
	RequestIDs []string `json:"request_ids"`
	Reason     string   `json:"reason"`
}

func (h *LeaveHandler) BulkReject(w http.ResponseWriter, r *http.Request) {
	var req bulkRejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.RequestIDs) == 0 {
		response.BadRequest(w, "request_ids is required", nil)
		return
	}
	if req.Reason == "" {
		response.BadRequest(w, "reason is required", nil)
		return
	}

	result := h.leaves.BulkReject(r.Context(), actorFrom(r), req.RequestIDs, req.Reason)
	response.SuccessWithMessage(w, "Bulk rejection completed", result)
}

func (h *LeaveHandler) Balances(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r.URL.Query().Get("year"), time.Now().Year())
	balances, err := h.leaves.Balances(r.Context(), chi.URLParam(r, "employeeID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balances)
}

func (h *LeaveHandler) CarryOver(w http.ResponseWriter, r *http.Request) {
	var req leave.CarryOverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	balance, err := h.leaves.CarryOver(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Balance carried over", balance)
}

func (h *LeaveHandler) DownloadMemo(w http.ResponseWriter, r *http.Request) {
	doc, err := h.leaves.DocumentRepository.GetByRequestID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.storage.Download(r.Context(), doc.FilePath)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="approval_memo.pdf"`)
	io.Copy(w, file)
}

// Leave type administration

func (h *LeaveHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaves.TypeRepository.List(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

func (h *LeaveHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaves.TypeRepository.Create(r.Context(), leave.Type{
		Name:              req.Name,
		Description:       req.Description,
		DefaultAllocation: req.DefaultAllocation,
		RequiresApproval:  req.RequiresApproval,
		ColorCode:         req.ColorCode,
		IsActive:          true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created", created)
}

// Approval level administration

func (h *LeaveHandler) ListApprovalLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.leaves.ApprovalLevelRepository.ListByDepartment(
		r.Context(), chi.URLParam(r, "departmentID"), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, levels)
}

type createApprovalLevelRequest struct {
	DepartmentID string `json:"department_id"`
	Level        int    `json:"level"`
	ApproverRole string `json:"approver_role"`
}

func (h *LeaveHandler) CreateApprovalLevel(w http.ResponseWriter, r *http.Request) {
	var req createApprovalLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Level < 1 || req.Level > leave.MaxApprovalLevels {
		response.HandleError(w, leave.ErrInvalidLevel)
		return
	}

	created, err := h.leaves.ApprovalLevelRepository.Create(r.Context(), leave.ApprovalLevel{
		DepartmentID: req.DepartmentID,
		Level:        req.Level,
		ApproverRole: leave.ApproverRole(req.ApproverRole),
		IsActive:     true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Approval level created", created)
}
