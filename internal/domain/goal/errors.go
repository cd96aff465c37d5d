package goal

import "errors"

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrGoalCancelled = errors.New("goal has been cancelled")
)
