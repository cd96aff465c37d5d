package kpi

import "time"

type Category struct {
	ID          string
	Name        string
	Description string
	Weight      float64
	CreatedAt   time.Time
}

type KPI struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	TargetValue float64
	Unit        string
	Weight      float64
	IsActive    bool
	CreatedAt   time.Time

	// DTO / Join
	CategoryName *string
}

type CompetencyCategory string

const (
	CompetencyTechnical  CompetencyCategory = "technical"
	CompetencyBehavioral CompetencyCategory = "behavioral"
	CompetencyLeadership CompetencyCategory = "leadership"
	CompetencyCore       CompetencyCategory = "core"
)

type Competency struct {
	ID          string
	Name        string
	Description string
	Category    CompetencyCategory
	Weight      float64
	IsActive    bool
	CreatedAt   time.Time
}
