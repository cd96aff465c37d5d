package evaluation

import "time"

type PeriodType string

const (
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
	PeriodMidYear   PeriodType = "mid_year"
)

type Period struct {
	ID        string
	Name      string
	Type      PeriodType
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
	CreatedAt time.Time
}

type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusReviewed    Status = "reviewed"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

type Rating string

const (
	RatingExcellent        Rating = "excellent"
	RatingVeryGood         Rating = "very_good"
	RatingGood             Rating = "good"
	RatingSatisfactory     Rating = "satisfactory"
	RatingNeedsImprovement Rating = "needs_improvement"
)

// DeriveRating maps an overall score to its performance band.
func DeriveRating(score float64) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 80:
		return RatingVeryGood
	case score >= 70:
		return RatingGood
	case score >= 60:
		return RatingSatisfactory
	default:
		return RatingNeedsImprovement
	}
}

type Evaluation struct {
	ID                string
	EmployeeID        string
	EvaluatorID       string
	PeriodID          string
	Status            Status
	OverallScore      *float64
	PerformanceRating *Rating
	Comments          *string
	Strengths         *string
	AreasToImprove    *string
	DevelopmentPlan   *string
	SubmittedAt       *time.Time
	ReviewedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	EmployeeName  *string
	EvaluatorName *string
	PeriodName    *string
	Details       []Detail
	Competencies  []CompetencyAssessment
}

// SetScore stores the overall score and re-derives the rating band.
func (e *Evaluation) SetScore(score float64) {
	rating := DeriveRating(score)
	e.OverallScore = &score
	e.PerformanceRating = &rating
}

type Detail struct {
	ID           string
	EvaluationID string
	KPIID        string
	TargetValue  float64
	ActualValue  float64
	Score        float64
	Weight       float64
	Comments     *string

	// DTO / Join
	KPIName *string
}

type CompetencyAssessment struct {
	ID           string
	EvaluationID string
	CompetencyID string
	Rating       int
	Comments     *string

	// DTO / Join
	CompetencyName *string
}
