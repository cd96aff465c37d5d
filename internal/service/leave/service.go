package leave

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/domain/notification"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
	"github.com/strivehr/perform-backend-go/internal/pkg/document"
	"github.com/strivehr/perform-backend-go/internal/pkg/storage"
	"github.com/strivehr/perform-backend-go/internal/repository/postgresql"
)

// RequestWithProgress is a request decorated with its approval progress.
type RequestWithProgress struct {
	leave.Request
	LevelsRequired   int     `json:"levels_required"`
	ApprovalProgress float64 `json:"approval_progress"`
}

type Service struct {
	db database.TxBeginner
	leave.RequestRepository
	leave.TypeRepository
	leave.ApprovalLevelRepository
	leave.DocumentRepository
	employees     employee.Repository
	users         UserResolver
	notifications notification.Repository
	ledger        *Ledger
	policy        *approvalPolicy
	storage       storage.FileStorage
}

// UserResolver looks up the employee's user identity for notifications.
type UserResolver interface {
	NotifyUserID(ctx context.Context, employeeID string) (string, bool)
}

func NewService(
	db database.TxBeginner,
	requests leave.RequestRepository,
	types leave.TypeRepository,
	levels leave.ApprovalLevelRepository,
	documents leave.DocumentRepository,
	employees employee.Repository,
	users UserResolver,
	notifications notification.Repository,
	ledger *Ledger,
	fileStorage storage.FileStorage,
) *Service {
	return &Service{
		db:                      db,
		RequestRepository:       requests,
		TypeRepository:          types,
		ApprovalLevelRepository: levels,
		DocumentRepository:      documents,
		employees:               employees,
		users:                   users,
		notifications:           notifications,
		ledger:                  ledger,
		policy:                  &approvalPolicy{levels: levels},
		storage:                 fileStorage,
	}
}

// CreateDraft stores a request in draft without touching the ledger.
func (s *Service) CreateDraft(ctx context.Context, req leave.CreateRequestRequest) (leave.Request, error) {
	return s.buildAndCreate(ctx, req, false)
}

// Submit validates, reserves pending balance and moves the request into
// the first approval stage, all in one transaction.
func (s *Service) Submit(ctx context.Context, req leave.CreateRequestRequest) (leave.Request, error) {
	return s.buildAndCreate(ctx, req, true)
}

func (s *Service) buildAndCreate(ctx context.Context, req leave.CreateRequestRequest, submit bool) (leave.Request, error) {
	now := time.Now()
	if err := req.Validate(now); err != nil {
		return leave.Request{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.Request{}, fmt.Errorf("resolve employee: %w", err)
	}
	if req.LeaveTypeID != nil && *req.LeaveTypeID != "" {
		if _, err := s.TypeRepository.GetByID(ctx, *req.LeaveTypeID); err != nil {
			return leave.Request{}, fmt.Errorf("resolve leave type: %w", err)
		}
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	var halfDayPeriod *leave.HalfDayPeriod
	if req.IsHalfDay && req.HalfDayPeriod != nil {
		p := leave.HalfDayPeriod(*req.HalfDayPeriod)
		halfDayPeriod = &p
	}

	request := leave.Request{
		EmployeeID:         req.EmployeeID,
		LeaveTypeID:        req.LeaveTypeID,
		LeaveTypeOverride:  req.LeaveTypeOverride,
		StartDate:          startDate,
		EndDate:            endDate,
		TotalDays:          req.TotalDays,
		IsHalfDay:          req.IsHalfDay,
		HalfDayPeriod:      halfDayPeriod,
		Reason:             req.Reason,
		Notes:              req.Notes,
		ContactDuringLeave: req.ContactDuringLeave,
		ContactPhone:       req.ContactPhone,
		Status:             leave.StatusDraft,
	}

	if !submit {
		return s.RequestRepository.Create(ctx, request)
	}

	if err := s.checkOverlap(ctx, request.EmployeeID, startDate, endDate); err != nil {
		return leave.Request{}, err
	}
	if err := request.MarkSubmitted(now); err != nil {
		return leave.Request{}, err
	}

	var created leave.Request
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if request.LeaveTypeID != nil {
			if err := s.ledger.Reserve(txCtx, request.EmployeeID, *request.LeaveTypeID, startDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}
		var err error
		created, err = s.RequestRepository.Create(txCtx, request)
		return err
	})
	if err != nil {
		return leave.Request{}, err
	}

	slog.Info("leave request submitted",
		"request_id", created.ID,
		"employee_id", created.EmployeeID,
		"total_days", created.TotalDays,
	)
	return created, nil
}

// checkOverlap refuses a submission whose dates collide with another
// pending or approved request of the same employee.
func (s *Service) checkOverlap(ctx context.Context, employeeID string, startDate, endDate time.Time) error {
	overlapping, err := s.RequestRepository.CheckOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.ErrOverlappingRequest
	}
	return nil
}

// SubmitDraft transitions an existing draft, reserving balance.
func (s *Service) SubmitDraft(ctx context.Context, actor leave.Actor, requestID string) (leave.Request, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if err := s.checkOverlap(ctx, request.EmployeeID, request.StartDate, request.EndDate); err != nil {
		return leave.Request{}, err
	}

	now := time.Now()
	if err := request.MarkSubmitted(now); err != nil {
		return leave.Request{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if request.LeaveTypeID != nil {
			if err := s.ledger.Reserve(txCtx, request.EmployeeID, *request.LeaveTypeID, request.StartDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}
		return s.RequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return leave.Request{}, err
	}
	return request, nil
}

// Approve records one approval decision. On the final level it commits
// the ledger and generates the approval memo.
func (s *Service) Approve(ctx context.Context, actor leave.Actor, req leave.ApproveRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.Request{}, err
	}

	emp, err := s.employees.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.Request{}, fmt.Errorf("resolve employee: %w", err)
	}

	levelsRequired, configured, err := s.policy.requiredLevels(ctx, emp.DepartmentID)
	if err != nil {
		return leave.Request{}, err
	}

	requiredRole := leave.RoleForLevel(configured, req.Level)
	if !canActAt(actor.Role, requiredRole) {
		slog.Warn("approval denied, role does not match configured level",
			"request_id", request.ID,
			"level", req.Level,
			"configured_role", requiredRole,
			"actor_role", actor.Role,
		)
		return leave.Request{}, leave.ErrApproverRoleMismatch
	}

	now := time.Now()
	if err := request.RecordApproval(actor, req.Level, levelsRequired, req.Comments, now); err != nil {
		return leave.Request{}, err
	}

	final := request.Status == leave.StatusApproved

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if final && request.LeaveTypeID != nil {
			if err := s.ledger.Commit(txCtx, request.EmployeeID, *request.LeaveTypeID, request.StartDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}
		return s.RequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return leave.Request{}, err
	}

	if final {
		if err := s.generateApprovalMemo(ctx, actor, request.ID); err != nil {
			slog.Error("failed to generate approval memo", "request_id", request.ID, "error", err)
		}
		s.notify(ctx, request.EmployeeID, notification.TypeSystemAlert,
			"Leave request approved",
			fmt.Sprintf("Your leave request from %s to %s has been approved.",
				request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")))
	}

	slog.Info("leave request approval recorded",
		"request_id", request.ID,
		"level", req.Level,
		"status", request.Status,
		"actor", actor.UserID,
	)
	return request, nil
}

// Reject rejects from any pending state and releases reserved days.
func (s *Service) Reject(ctx context.Context, actor leave.Actor, req leave.RejectRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.Request{}, err
	}

	hadReservation := request.Status.IsPending()
	if err := request.RecordRejection(actor, req.Reason, time.Now()); err != nil {
		return leave.Request{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if hadReservation && request.LeaveTypeID != nil {
			if err := s.ledger.Release(txCtx, request.EmployeeID, *request.LeaveTypeID, request.StartDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}
		return s.RequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.notify(ctx, request.EmployeeID, notification.TypeSystemAlert,
		"Leave request rejected", req.Reason)

	slog.Info("leave request rejected", "request_id", request.ID, "actor", actor.UserID)
	return request, nil
}

// ResetToDraft returns a non-approved request to draft and releases any
// reserved days.
func (s *Service) ResetToDraft(ctx context.Context, actor leave.Actor, requestID string) (leave.Request, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	hadReservation := request.Status.IsPending()
	if err := request.ResetToDraft(); err != nil {
		return leave.Request{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if hadReservation && request.LeaveTypeID != nil {
			if err := s.ledger.Release(txCtx, request.EmployeeID, *request.LeaveTypeID, request.StartDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}
		return s.RequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return leave.Request{}, err
	}

	slog.Info("leave request reset to draft", "request_id", request.ID, "actor", actor.UserID)
	return request, nil
}

// BulkApprove applies one approval level to each request sequentially.
// Ineligible items are skipped; per-item errors do not abort the batch.
func (s *Service) BulkApprove(ctx context.Context, actor leave.Actor, requestIDs []string, level int, comments *string) leave.BulkResult {
	result := leave.BulkResult{Errors: make(map[string]string)}
	for _, id := range requestIDs {
		_, err := s.Approve(ctx, actor, leave.ApproveRequest{RequestID: id, Level: level, Comments: comments})
		if err != nil {
			result.Skipped++
			result.Errors[id] = err.Error()
			continue
		}
		result.Processed++
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result
}

func (s *Service) BulkReject(ctx context.Context, actor leave.Actor, requestIDs []string, reason string) leave.BulkResult {
	result := leave.BulkResult{Errors: make(map[string]string)}
	for _, id := range requestIDs {
		_, err := s.Reject(ctx, actor, leave.RejectRequest{RequestID: id, Reason: reason})
		if err != nil {
			result.Skipped++
			result.Errors[id] = err.Error()
			continue
		}
		result.Processed++
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result
}

// Get returns the request with its approval progress.
func (s *Service) Get(ctx context.Context, requestID string) (RequestWithProgress, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return RequestWithProgress{}, err
	}
	return s.withProgress(ctx, request)
}

func (s *Service) withProgress(ctx context.Context, request leave.Request) (RequestWithProgress, error) {
	emp, err := s.employees.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return RequestWithProgress{}, fmt.Errorf("resolve employee: %w", err)
	}
	levelsRequired, _, err := s.policy.requiredLevels(ctx, emp.DepartmentID)
	if err != nil {
		return RequestWithProgress{}, err
	}
	return RequestWithProgress{
		Request:          request,
		LevelsRequired:   levelsRequired,
		ApprovalProgress: request.ApprovalProgress(levelsRequired),
	}, nil
}

func (s *Service) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	return s.RequestRepository.List(ctx, filter)
}

// Balances returns the employee's per-type balances for a year, creating
// zero rows for active types the employee has no balance for yet.
func (s *Service) Balances(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	types, err := s.TypeRepository.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		if _, err := s.ledger.balanceFor(ctx, employeeID, t.ID, year); err != nil {
			return nil, err
		}
	}
	return s.ledger.balances.ListByEmployee(ctx, employeeID, year)
}

func (s *Service) CarryOver(ctx context.Context, req leave.CarryOverRequest) (leave.Balance, error) {
	if err := req.Validate(); err != nil {
		return leave.Balance{}, err
	}
	return s.ledger.CarryOver(ctx, req.EmployeeID, req.LeaveTypeID, req.FromYear, req.ToYear)
}

func (s *Service) generateApprovalMemo(ctx context.Context, actor leave.Actor, requestID string) error {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	data := document.ApprovalMemoData{
		EmployeeName: deref(request.EmployeeName),
		EmployeeCode: deref(request.EmployeeCode),
		Department:   deref(request.DepartmentName),
		LeaveType:    request.TypeLabel(),
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		TotalDays:    request.TotalDays,
		Reason:       request.Reason,
		FirstApprover:  deref(request.FirstApproverName),
		SecondApprover: deref(request.SecondApproverName),
		ApprovedAt:     time.Now(),
	}

	pdfBytes, err := document.RenderApprovalMemo(data)
	if err != nil {
		return err
	}

	// Unique filename so a regenerated memo never overwrites the original
	path := fmt.Sprintf("leave/memos/%s-%s.pdf", request.ID, uuid.New().String())
	stored, err := s.storage.Upload(ctx, bytes.NewReader(pdfBytes), path, "application/pdf")
	if err != nil {
		return fmt.Errorf("store approval memo: %w", err)
	}

	_, err = s.DocumentRepository.Create(ctx, leave.RequestDocument{
		RequestID:   request.ID,
		Type:        leave.DocumentApprovalMemo,
		FilePath:    stored,
		GeneratedBy: actor.UserID,
	})
	return err
}

func (s *Service) notify(ctx context.Context, employeeID string, t notification.Type, title, message string) {
	if s.users == nil || s.notifications == nil {
		return
	}
	userID, ok := s.users.NotifyUserID(ctx, employeeID)
	if !ok {
		return
	}
	if _, err := s.notifications.Create(ctx, notification.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
	}); err != nil {
		slog.Error("failed to create notification", "user_id", userID, "error", err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
