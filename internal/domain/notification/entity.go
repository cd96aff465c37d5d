package notification

import "time"

type Type string

const (
	TypeEvaluationDue    Type = "evaluation_due"
	TypeGoalDeadline     Type = "goal_deadline"
	TypeTrainingReminder Type = "training_reminder"
	TypeReportReady      Type = "report_ready"
	TypeSystemAlert      Type = "system_alert"
)

type Notification struct {
	ID        string
	UserID    string
	Type      Type
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
