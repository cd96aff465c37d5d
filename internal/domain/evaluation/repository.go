package evaluation

import "context"

type Filter struct {
	EmployeeID  *string
	EvaluatorID *string
	PeriodID    *string
	Status      *string
	Page        int
	Limit       int
}

type Repository interface {
	CreatePeriod(ctx context.Context, p Period) (Period, error)
	GetPeriodByID(ctx context.Context, id string) (Period, error)
	ListPeriods(ctx context.Context, activeOnly bool) ([]Period, error)
	UpdatePeriod(ctx context.Context, p Period) error

	Create(ctx context.Context, e Evaluation) (Evaluation, error)
	GetByID(ctx context.Context, id string) (Evaluation, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (Evaluation, error)
	List(ctx context.Context, filter Filter) ([]Evaluation, int64, error)
	Update(ctx context.Context, e Evaluation) error

	ReplaceDetails(ctx context.Context, evaluationID string, details []Detail) error
	ReplaceCompetencies(ctx context.Context, evaluationID string, assessments []CompetencyAssessment) error
	ListDetails(ctx context.Context, evaluationID string) ([]Detail, error)
	ListCompetencies(ctx context.Context, evaluationID string) ([]CompetencyAssessment, error)
}
