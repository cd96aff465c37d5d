package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/goal"
)

type Service struct {
	goal.Repository
	employees employee.Repository
}

func NewService(goals goal.Repository, employees employee.Repository) *Service {
	return &Service{Repository: goals, employees: employees}
}

func (s *Service) Create(ctx context.Context, createdBy string, req goal.CreateGoalRequest) (goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return goal.Goal{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return goal.Goal{}, err
	}

	targetDate, _ := time.Parse("2006-01-02", req.TargetDate)

	priority := goal.PriorityMedium
	if req.Priority != "" {
		priority = goal.Priority(req.Priority)
	}

	return s.Repository.Create(ctx, goal.Goal{
		EmployeeID:      req.EmployeeID,
		Title:           req.Title,
		Description:     req.Description,
		Type:            goal.Type(req.Type),
		TargetDate:      targetDate,
		Status:          goal.StatusPending,
		Progress:        0,
		Priority:        priority,
		SuccessCriteria: req.SuccessCriteria,
		Obstacles:       req.Obstacles,
		SupportNeeded:   req.SupportNeeded,
		CreatedBy:       createdBy,
	})
}

// UpdateProgress records a progress entry and derives the goal status
// from the new percentage.
func (s *Service) UpdateProgress(ctx context.Context, actorID string, req goal.UpdateProgressRequest) (goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return goal.Goal{}, err
	}

	g, err := s.Repository.GetByID(ctx, req.GoalID)
	if err != nil {
		return goal.Goal{}, err
	}
	if g.Status == goal.StatusCancelled {
		return goal.Goal{}, goal.ErrGoalCancelled
	}

	g.ApplyProgress(req.Progress)

	if _, err := s.Repository.AddProgress(ctx, goal.ProgressEntry{
		GoalID:     g.ID,
		Progress:   req.Progress,
		Comments:   req.Comments,
		RecordedBy: actorID,
	}); err != nil {
		return goal.Goal{}, err
	}
	if err := s.Repository.Update(ctx, g); err != nil {
		return goal.Goal{}, err
	}

	slog.Info("goal progress updated",
		"goal_id", g.ID,
		"progress", req.Progress,
		"status", g.Status,
		"actor", actorID,
	)
	return g, nil
}

// Cancel marks a goal cancelled, keeping its recorded progress.
func (s *Service) Cancel(ctx context.Context, id string) (goal.Goal, error) {
	g, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return goal.Goal{}, err
	}
	g.Status = goal.StatusCancelled
	if err := s.Repository.Update(ctx, g); err != nil {
		return goal.Goal{}, err
	}
	return g, nil
}

// MarkOverdue sweeps goals past their target date into overdue status.
// Invoked from the admin surface, not a scheduler.
func (s *Service) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	goals, _, err := s.Repository.List(ctx, goal.Filter{Limit: 1000})
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, g := range goals {
		if g.IsOverdue(now) && g.Status != goal.StatusOverdue {
			g.Status = goal.StatusOverdue
			if err := s.Repository.Update(ctx, g); err != nil {
				slog.Error("failed to mark goal overdue", "goal_id", g.ID, "error", err)
				continue
			}
			updated++
		}
	}
	return updated, nil
}
