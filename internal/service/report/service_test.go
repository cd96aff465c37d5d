package report

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strivehr/perform-backend-go/internal/domain/notification"
	"github.com/strivehr/perform-backend-go/internal/domain/report"
	"github.com/strivehr/perform-backend-go/internal/pkg/export"
)

type fakeReportRepo struct {
	records []report.Record
}

func (f *fakeReportRepo) EmployeePerformance(_ context.Context, _ report.Params) ([]report.EmployeePerformanceRow, error) {
	return []report.EmployeePerformanceRow{
		{EmployeeID: "EMP001", Name: "Ana Silva", Department: "Engineering", Position: "Engineer", AvgScore: 88.125, EvaluationCount: 4},
		{EmployeeID: "EMP002", Name: "Budi Santoso", Department: "Engineering", Position: "Engineer", AvgScore: 73.5, EvaluationCount: 2},
	}, nil
}

func (f *fakeReportRepo) DepartmentPerformance(_ context.Context, _ report.Params) ([]report.DepartmentPerformanceRow, error) {
	return []report.DepartmentPerformanceRow{
		{Department: "Engineering", EmployeeCount: 12, AvgScore: 81.25, EvaluationCount: 30},
	}, nil
}

func (f *fakeReportRepo) Trainings(_ context.Context, _ report.Params) ([]report.TrainingRow, error) {
	score := 95.0
	completed := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	return []report.TrainingRow{
		{Name: "Go Fundamentals", Employee: "Ana Silva", Type: "technical", Status: "completed", Score: &score, CompletionDate: &completed},
		{Name: "Leadership 101", Employee: "Budi Santoso", Type: "soft_skill", Status: "planned"},
	}, nil
}

func (f *fakeReportRepo) Goals(_ context.Context, _ report.Params) ([]report.GoalRow, error) {
	return []report.GoalRow{
		{Title: "Ship v2", Employee: "Ana Silva", Type: "performance", Status: "in_progress", Progress: 60, DueDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
	}, nil
}

func (f *fakeReportRepo) SaveRecord(_ context.Context, r report.Record) (report.Record, error) {
	r.ID = "rec-1"
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeReportRepo) ListRecords(_ context.Context, _ *string) ([]report.Record, error) {
	return f.records, nil
}

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, _ string, _ bool, _ int) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ string) error { return nil }
func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ string) error { return nil }

func TestGenerateEmployeePerformanceCSV(t *testing.T) {
	repo := &fakeReportRepo{}
	notifs := &fakeNotificationRepo{}
	svc := NewService(repo, notifs)

	out, err := svc.Generate(context.Background(), "user-1", report.TypeEmployeePerformance, "csv", report.Params{})
	require.NoError(t, err)

	assert.Equal(t, "text/csv", out.ContentType)
	assert.True(t, strings.HasPrefix(out.Filename, "employee_performance_"))
	assert.True(t, strings.HasSuffix(out.Filename, ".csv"))

	rows, err := csv.NewReader(strings.NewReader(string(out.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"employee_id", "name", "department", "position", "avg_score", "evaluation_count"}, rows[0])
	assert.Equal(t, []string{"EMP001", "Ana Silva", "Engineering", "Engineer", "88.13", "4"}, rows[1])

	// generation recorded and requester notified
	require.Len(t, repo.records, 1)
	assert.Equal(t, report.TypeEmployeePerformance, repo.records[0].Type)
	require.Len(t, notifs.created, 1)
	assert.Equal(t, "user-1", notifs.created[0].UserID)
	assert.Equal(t, notification.TypeReportReady, notifs.created[0].Type)
}

func TestGenerateTrainingCSVHandlesNulls(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	out, err := svc.Generate(context.Background(), "user-1", report.TypeTraining, "csv", report.Params{})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Go Fundamentals", "Ana Silva", "technical", "completed", "95.00", "2026-05-10"}, rows[1])
	assert.Equal(t, []string{"Leadership 101", "Budi Santoso", "soft_skill", "planned", "", ""}, rows[2])
}

func TestGenerateJSON(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	out, err := svc.Generate(context.Background(), "user-1", report.TypeGoalProgress, "json", report.Params{})
	require.NoError(t, err)
	assert.Equal(t, "application/json", out.ContentType)
	assert.Contains(t, string(out.Data), `"title": "Ship v2"`)
	assert.Contains(t, string(out.Data), `"progress": "60.0"`)
}

func TestGenerateRejectsUnsupportedFormats(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	for _, format := range []string{"pdf", "excel", ""} {
		_, err := svc.Generate(context.Background(), "user-1", report.TypeGoalProgress, format, report.Params{})
		assert.ErrorIs(t, err, export.ErrUnsupportedFormat, "format %q", format)
	}
}

func TestGenerateUnknownReportType(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	_, err := svc.Generate(context.Background(), "user-1", report.Type("payroll"), "csv", report.Params{})
	assert.ErrorIs(t, err, report.ErrUnknownReportType)
}
