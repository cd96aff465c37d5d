package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyProgress(t *testing.T) {
	t.Run("derives status from progress", func(t *testing.T) {
		g := Goal{Status: StatusPending}

		g.ApplyProgress(0)
		assert.Equal(t, StatusPending, g.Status)

		g.ApplyProgress(40)
		assert.Equal(t, StatusInProgress, g.Status)

		g.ApplyProgress(100)
		assert.Equal(t, StatusCompleted, g.Status)
	})

	t.Run("cancelled goals keep their status", func(t *testing.T) {
		g := Goal{Status: StatusCancelled}
		g.ApplyProgress(80)
		assert.Equal(t, StatusCancelled, g.Status)
		assert.Equal(t, float64(80), g.Progress)
	})
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	assert.True(t, (&Goal{Status: StatusInProgress, TargetDate: past}).IsOverdue(now))
	assert.False(t, (&Goal{Status: StatusInProgress, TargetDate: future}).IsOverdue(now))
	assert.False(t, (&Goal{Status: StatusCompleted, TargetDate: past}).IsOverdue(now))
	assert.False(t, (&Goal{Status: StatusCancelled, TargetDate: past}).IsOverdue(now))
}
