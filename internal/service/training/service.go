package training

import (
	"context"
	"log/slog"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/training"
)

type Service struct {
	training.Repository
	employees employee.Repository
}

func NewService(trainings training.Repository, employees employee.Repository) *Service {
	return &Service{Repository: trainings, employees: employees}
}

func (s *Service) Create(ctx context.Context, req training.CreateTrainingRequest) (training.Training, error) {
	if err := req.Validate(); err != nil {
		return training.Training{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return training.Training{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	return s.Repository.Create(ctx, training.Training{
		EmployeeID:    req.EmployeeID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          training.Type(req.Type),
		Provider:      req.Provider,
		Location:      req.Location,
		StartDate:     startDate,
		EndDate:       endDate,
		DurationHours: req.DurationHours,
		Cost:          req.Cost,
		Status:        training.StatusPlanned,
	})
}

// UpdateStatus validates the target status and stamps the completion
// date when moving to completed.
func (s *Service) UpdateStatus(ctx context.Context, req training.UpdateStatusRequest) (training.Training, error) {
	if err := req.Validate(); err != nil {
		return training.Training{}, err
	}

	t, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return training.Training{}, err
	}

	t.Status = training.Status(req.Status)
	if req.Score != nil {
		t.Score = req.Score
	}
	if t.Status == training.StatusCompleted && t.CompletionDate == nil {
		now := time.Now()
		t.CompletionDate = &now
	}

	if err := s.Repository.Update(ctx, t); err != nil {
		return training.Training{}, err
	}
	return t, nil
}

// SubmitRequest files an employee training request for review.
func (s *Service) SubmitRequest(ctx context.Context, req training.SubmitRequestRequest) (training.Request, error) {
	if err := req.Validate(); err != nil {
		return training.Request{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return training.Request{}, err
	}

	return s.Repository.CreateRequest(ctx, training.Request{
		EmployeeID:       req.EmployeeID,
		Title:            req.Title,
		Type:             training.Type(req.Type),
		Provider:         req.Provider,
		EstimatedCost:    req.EstimatedCost,
		Justification:    req.Justification,
		ExpectedOutcomes: req.ExpectedOutcomes,
		Status:           training.ReviewPending,
	})
}

// ReviewRequest approves or rejects a pending training request. An
// approved request also creates the planned training record.
func (s *Service) ReviewRequest(ctx context.Context, reviewerID string, req training.ReviewRequestRequest) (training.Request, error) {
	if err := req.Validate(); err != nil {
		return training.Request{}, err
	}

	tr, err := s.Repository.GetRequestByID(ctx, req.ID)
	if err != nil {
		return training.Request{}, err
	}
	if tr.Status != training.ReviewPending {
		return training.Request{}, training.ErrRequestReviewed
	}

	now := time.Now()
	tr.ReviewedBy = &reviewerID
	tr.ReviewedAt = &now

	if req.Approve {
		tr.Status = training.ReviewApproved
	} else {
		tr.Status = training.ReviewRejected
		tr.RejectionReason = req.RejectionReason
	}

	if err := s.Repository.UpdateRequest(ctx, tr); err != nil {
		return training.Request{}, err
	}

	if req.Approve {
		_, err := s.Repository.Create(ctx, training.Training{
			EmployeeID:  tr.EmployeeID,
			Title:       tr.Title,
			Type:        tr.Type,
			Provider:    tr.Provider,
			Cost:        tr.EstimatedCost,
			StartDate:   now,
			EndDate:     now,
			Status:      training.StatusPlanned,
			Description: tr.Justification,
		})
		if err != nil {
			slog.Error("failed to create training from approved request",
				"request_id", tr.ID, "error", err)
		}
	}

	slog.Info("training request reviewed", "request_id", tr.ID, "status", tr.Status, "reviewer", reviewerID)
	return tr, nil
}
