package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strivehr/perform-backend-go/internal/pkg/validator"
)

func validCreateRequest(now time.Time) CreateRequestRequest {
	return CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   now.AddDate(0, 0, 7).Format("2006-01-02"),
		EndDate:     now.AddDate(0, 0, 11).Format("2006-01-02"),
		TotalDays:   5,
		Reason:      "family vacation",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[e.Field] = e.Message
	}
	return out
}

func TestCreateRequestValidate(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		req := validCreateRequest(now)
		assert.NoError(t, req.Validate(now))
	})

	t.Run("type override instead of type id", func(t *testing.T) {
		req := validCreateRequest(now)
		req.LeaveTypeID = nil
		req.LeaveTypeOverride = strPtr("Sabbatical")
		assert.NoError(t, req.Validate(now))
	})

	t.Run("missing type and override", func(t *testing.T) {
		req := validCreateRequest(now)
		req.LeaveTypeID = nil
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "leave_type_id")
	})

	t.Run("zero total days", func(t *testing.T) {
		req := validCreateRequest(now)
		req.TotalDays = 0
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "total_days")
	})

	t.Run("negative total days", func(t *testing.T) {
		req := validCreateRequest(now)
		req.TotalDays = -1
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "total_days")
	})

	t.Run("end before start", func(t *testing.T) {
		req := validCreateRequest(now)
		req.EndDate = now.AddDate(0, 0, 3).Format("2006-01-02")
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "end_date")
	})

	t.Run("start in the past", func(t *testing.T) {
		req := validCreateRequest(now)
		req.StartDate = now.AddDate(0, 0, -1).Format("2006-01-02")
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "start_date")
	})

	t.Run("start today is allowed", func(t *testing.T) {
		req := validCreateRequest(now)
		req.StartDate = now.Format("2006-01-02")
		req.EndDate = now.AddDate(0, 0, 2).Format("2006-01-02")
		assert.NoError(t, req.Validate(now))
	})

	t.Run("malformed dates", func(t *testing.T) {
		req := validCreateRequest(now)
		req.StartDate = "07/09/2026"
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "start_date")
	})

	t.Run("half day requires period", func(t *testing.T) {
		req := validCreateRequest(now)
		req.IsHalfDay = true
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "half_day_period")

		req.HalfDayPeriod = strPtr("evening")
		errs = fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "half_day_period")

		req.HalfDayPeriod = strPtr("morning")
		assert.NoError(t, req.Validate(now))
	})

	t.Run("missing reason", func(t *testing.T) {
		req := validCreateRequest(now)
		req.Reason = "  "
		errs := fieldErrors(t, req.Validate(now))
		assert.Contains(t, errs, "reason")
	})
}

func TestBalanceRemaining(t *testing.T) {
	b := Balance{Allocated: 21, CarriedOver: 3, Used: 6, Pending: 2}
	assert.Equal(t, float64(16), b.Remaining())

	b = Balance{}
	assert.Equal(t, float64(0), b.Remaining())
}

func TestTypeLabel(t *testing.T) {
	r := Request{LeaveTypeName: strPtr("Annual Leave")}
	assert.Equal(t, "Annual Leave", r.TypeLabel())

	r = Request{LeaveTypeOverride: strPtr("Sabbatical")}
	assert.Equal(t, "Sabbatical", r.TypeLabel())

	assert.Equal(t, "", Request{}.TypeLabel())
}
