package kpi

import "errors"

var (
	ErrCategoryNotFound   = errors.New("kpi category not found")
	ErrKPINotFound        = errors.New("kpi not found")
	ErrCompetencyNotFound = errors.New("competency not found")
	ErrKPIExists          = errors.New("kpi with this name already exists in the category")
)
