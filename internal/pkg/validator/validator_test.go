package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start date is required"},
		{Field: "total_days", Message: "total days must be greater than zero"},
	}

	m := errs.ToMap()
	assert.Equal(t, "start date is required", m["start_date"])
	assert.Equal(t, "total days must be greater than zero", m["total_days"])
	assert.Contains(t, errs.Error(), "start_date")
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ana.silva@example.com"))
	assert.True(t, IsValidEmail("hr+probation@company.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("15-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("HR-2026-12"))
	assert.False(t, IsValidEmployeeCode("ab"))
	assert.False(t, IsValidEmployeeCode("has space"))
}

func TestBoundedValues(t *testing.T) {
	assert.True(t, IsValidPercentage(0))
	assert.True(t, IsValidPercentage(100))
	assert.False(t, IsValidPercentage(100.1))
	assert.False(t, IsValidPercentage(-1))

	assert.True(t, IsValidScore(87.5))
	assert.False(t, IsValidScore(101))

	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(5.5))
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"planned", "in_progress", "completed"}
	assert.True(t, IsInSlice("completed", statuses))
	assert.False(t, IsInSlice("cancelled", statuses))
	assert.False(t, IsInSlice("", nil))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}
