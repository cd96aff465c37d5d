package dashboard

// Stats is the aggregate snapshot backing the admin dashboard.
type Stats struct {
	ActiveEmployees  int64             `json:"active_employees"`
	NewHiresThisMonth int64            `json:"new_hires_this_month"`
	Evaluations      EvaluationStats   `json:"evaluations"`
	Goals            GoalStats         `json:"goals"`
	Trainings        TrainingStats     `json:"trainings"`
	Departments      []DepartmentStat  `json:"departments"`
	MonthlyTrend     []MonthlyAvgScore `json:"monthly_trend"`
}

type EvaluationStats struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	Completed int64   `json:"completed"`
	AvgScore  float64 `json:"avg_score"`
}

type GoalStats struct {
	Total       int64   `json:"total"`
	Completed   int64   `json:"completed"`
	Overdue     int64   `json:"overdue"`
	AvgProgress float64 `json:"avg_progress"`
}

type TrainingStats struct {
	Total     int64   `json:"total"`
	Completed int64   `json:"completed"`
	Ongoing   int64   `json:"ongoing"`
	AvgScore  float64 `json:"avg_score"`
}

type DepartmentStat struct {
	Department string  `json:"department"`
	Headcount  int64   `json:"headcount"`
	AvgScore   float64 `json:"avg_score"`
}

type MonthlyAvgScore struct {
	Month    string  `json:"month"` // YYYY-MM
	AvgScore float64 `json:"avg_score"`
}
