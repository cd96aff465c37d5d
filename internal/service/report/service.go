package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/notification"
	"github.com/strivehr/perform-backend-go/internal/domain/report"
	"github.com/strivehr/perform-backend-go/internal/pkg/export"
)

// Export is a rendered report ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service struct {
	report.Repository
	notifications notification.Repository
}

func NewService(reports report.Repository, notifications notification.Repository) *Service {
	return &Service{Repository: reports, notifications: notifications}
}

// Generate builds the report rows, renders them in the requested format
// and persists the generation record.
func (s *Service) Generate(ctx context.Context, generatedBy string, reportType report.Type, format string, params report.Params) (Export, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return Export{}, err
	}

	table, err := s.buildTable(ctx, reportType, params)
	if err != nil {
		return Export{}, err
	}

	now := time.Now()
	var buf bytes.Buffer
	if err := export.Write(&buf, table, f); err != nil {
		return Export{}, fmt.Errorf("render report: %w", err)
	}
	filename := export.Filename(string(reportType), f, now)

	if _, err := s.Repository.SaveRecord(ctx, report.Record{
		Name:        filename,
		Type:        reportType,
		Format:      string(f),
		GeneratedBy: generatedBy,
	}); err != nil {
		slog.Error("failed to save report record", "type", reportType, "error", err)
	}

	s.notify(ctx, generatedBy, filename)

	slog.Info("report generated",
		"type", reportType,
		"format", f,
		"rows", len(table.Rows),
		"generated_by", generatedBy,
	)
	return Export{
		Filename:    filename,
		ContentType: export.ContentType(f),
		Data:        buf.Bytes(),
	}, nil
}

func (s *Service) buildTable(ctx context.Context, reportType report.Type, params report.Params) (export.Table, error) {
	switch reportType {
	case report.TypeEmployeePerformance:
		rows, err := s.Repository.EmployeePerformance(ctx, params)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Headers: []string{"employee_id", "name", "department", "position", "avg_score", "evaluation_count"}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				r.EmployeeID, r.Name, r.Department, r.Position,
				strconv.FormatFloat(r.AvgScore, 'f', 2, 64),
				strconv.FormatInt(r.EvaluationCount, 10),
			})
		}
		return t, nil

	case report.TypeDepartmentPerformance:
		rows, err := s.Repository.DepartmentPerformance(ctx, params)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Headers: []string{"department", "employee_count", "avg_score", "evaluation_count"}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				r.Department,
				strconv.FormatInt(r.EmployeeCount, 10),
				strconv.FormatFloat(r.AvgScore, 'f', 2, 64),
				strconv.FormatInt(r.EvaluationCount, 10),
			})
		}
		return t, nil

	case report.TypeTraining:
		rows, err := s.Repository.Trainings(ctx, params)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Headers: []string{"name", "employee", "type", "status", "score", "completion_date"}}
		for _, r := range rows {
			score := ""
			if r.Score != nil {
				score = strconv.FormatFloat(*r.Score, 'f', 2, 64)
			}
			completed := ""
			if r.CompletionDate != nil {
				completed = r.CompletionDate.Format("2006-01-02")
			}
			t.Rows = append(t.Rows, []string{r.Name, r.Employee, r.Type, r.Status, score, completed})
		}
		return t, nil

	case report.TypeGoalProgress:
		rows, err := s.Repository.Goals(ctx, params)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Headers: []string{"title", "employee", "type", "status", "progress", "due_date"}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				r.Title, r.Employee, r.Type, r.Status,
				strconv.FormatFloat(r.Progress, 'f', 1, 64),
				r.DueDate.Format("2006-01-02"),
			})
		}
		return t, nil

	default:
		return export.Table{}, report.ErrUnknownReportType
	}
}

func (s *Service) notify(ctx context.Context, userID, filename string) {
	if s.notifications == nil {
		return
	}
	if _, err := s.notifications.Create(ctx, notification.Notification{
		UserID:  userID,
		Type:    notification.TypeReportReady,
		Title:   "Report ready",
		Message: fmt.Sprintf("Your report %s has been generated.", filename),
	}); err != nil {
		slog.Error("failed to create report notification", "user_id", userID, "error", err)
	}
}
