package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newDraft() Request {
	return Request{
		ID:          "req-1",
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		TotalDays:   5,
		Reason:      "family vacation",
		Status:      StatusDraft,
	}
}

func TestTwoLevelApprovalFlow(t *testing.T) {
	now := time.Now()
	manager := Actor{UserID: "mgr-1", Name: "Dept Manager", Role: ApproverDepartmentManager}
	hr := Actor{UserID: "hr-1", Name: "HR Manager", Role: ApproverHRManager}

	r := newDraft()
	assert.Equal(t, float64(0), r.ApprovalProgress(2))

	require.NoError(t, r.MarkSubmitted(now))
	assert.Equal(t, StatusFirstApprovalPending, r.Status)
	assert.NotNil(t, r.SubmittedAt)
	assert.Equal(t, float64(0), r.ApprovalProgress(2))

	require.NoError(t, r.RecordApproval(manager, 1, 2, strPtr("ok"), now))
	assert.Equal(t, StatusFirstApproved, r.Status)
	assert.Equal(t, "mgr-1", *r.FirstApproverID)
	assert.Equal(t, float64(50), r.ApprovalProgress(2))

	require.NoError(t, r.RecordApproval(hr, 2, 2, nil, now))
	assert.Equal(t, StatusApproved, r.Status)
	assert.Equal(t, "hr-1", *r.SecondApproverID)
	assert.Equal(t, float64(100), r.ApprovalProgress(2))
}

func TestSingleLevelApproval(t *testing.T) {
	now := time.Now()
	r := newDraft()
	require.NoError(t, r.MarkSubmitted(now))

	require.NoError(t, r.RecordApproval(Actor{UserID: "mgr-1"}, 1, 1, nil, now))
	assert.Equal(t, StatusApproved, r.Status)
	assert.Equal(t, float64(100), r.ApprovalProgress(1))
	assert.Nil(t, r.SecondApproverID)
}

func TestLegacySubmittedStatusIsFirstLevelPending(t *testing.T) {
	now := time.Now()
	r := newDraft()
	r.Status = StatusSubmitted

	assert.True(t, r.Status.PendingAtLevel(1))
	require.NoError(t, r.RecordApproval(Actor{UserID: "mgr-1"}, 1, 1, nil, now))
	assert.Equal(t, StatusApproved, r.Status)
}

func TestMarkSubmittedRequiresDraft(t *testing.T) {
	now := time.Now()
	r := newDraft()
	r.Status = StatusFirstApprovalPending

	err := r.MarkSubmitted(now)
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestRecordApprovalGuards(t *testing.T) {
	now := time.Now()
	actor := Actor{UserID: "mgr-1"}

	t.Run("invalid level", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		assert.ErrorIs(t, r.RecordApproval(actor, 0, 2, nil, now), ErrInvalidLevel)
		assert.ErrorIs(t, r.RecordApproval(actor, 3, 2, nil, now), ErrInvalidLevel)
	})

	t.Run("level above required", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		assert.ErrorIs(t, r.RecordApproval(actor, 2, 1, nil, now), ErrInvalidLevel)
	})

	t.Run("second level before first", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		assert.ErrorIs(t, r.RecordApproval(actor, 2, 2, nil, now), ErrNotPendingApproval)
	})

	t.Run("draft cannot be approved", func(t *testing.T) {
		r := newDraft()
		assert.ErrorIs(t, r.RecordApproval(actor, 1, 2, nil, now), ErrNotPendingApproval)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordRejection(actor, "not enough coverage", now))
		assert.ErrorIs(t, r.RecordApproval(actor, 1, 2, nil, now), ErrAlreadyDecided)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordApproval(actor, 1, 1, nil, now))
		assert.ErrorIs(t, r.RecordApproval(actor, 1, 1, nil, now), ErrAlreadyDecided)
	})
}

func TestRecordRejection(t *testing.T) {
	now := time.Now()
	actor := Actor{UserID: "hr-1"}

	t.Run("from first pending", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordRejection(actor, "blackout period", now))
		assert.Equal(t, StatusRejected, r.Status)
		assert.Equal(t, "hr-1", *r.RejectedByID)
		assert.Equal(t, "blackout period", *r.RejectionReason)
		assert.Equal(t, float64(0), r.ApprovalProgress(2))
	})

	t.Run("from second pending", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordApproval(Actor{UserID: "mgr-1"}, 1, 2, nil, now))
		require.NoError(t, r.RecordRejection(actor, "headcount freeze", now))
		assert.Equal(t, StatusRejected, r.Status)
	})

	t.Run("draft cannot be rejected", func(t *testing.T) {
		r := newDraft()
		assert.ErrorIs(t, r.RecordRejection(actor, "reason", now), ErrNotPendingApproval)
	})
}

func TestResetToDraft(t *testing.T) {
	now := time.Now()

	t.Run("clears approval metadata", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordApproval(Actor{UserID: "mgr-1"}, 1, 2, strPtr("fine"), now))

		require.NoError(t, r.ResetToDraft())
		assert.Equal(t, StatusDraft, r.Status)
		assert.Nil(t, r.FirstApproverID)
		assert.Nil(t, r.FirstApprovedAt)
		assert.Nil(t, r.FirstComments)
		assert.Nil(t, r.SubmittedAt)
	})

	t.Run("clears rejection metadata", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordRejection(Actor{UserID: "hr-1"}, "resubmit with dates", now))

		require.NoError(t, r.ResetToDraft())
		assert.Equal(t, StatusDraft, r.Status)
		assert.Nil(t, r.RejectedByID)
		assert.Nil(t, r.RejectionReason)
		assert.Nil(t, r.RejectionDate)
	})

	t.Run("approved cannot be reset", func(t *testing.T) {
		r := newDraft()
		require.NoError(t, r.MarkSubmitted(now))
		require.NoError(t, r.RecordApproval(Actor{UserID: "mgr-1"}, 1, 1, nil, now))
		assert.ErrorIs(t, r.ResetToDraft(), ErrAlreadyApproved)
	})
}

func TestRequiredLevels(t *testing.T) {
	assert.Equal(t, 1, RequiredLevels(nil))
	assert.Equal(t, 1, RequiredLevels([]ApprovalLevel{{Level: 1, IsActive: false}}))
	assert.Equal(t, 1, RequiredLevels([]ApprovalLevel{{Level: 1, IsActive: true}}))
	assert.Equal(t, 2, RequiredLevels([]ApprovalLevel{
		{Level: 1, IsActive: true},
		{Level: 2, IsActive: true},
	}))
	// chain longer than the workflow records is capped
	assert.Equal(t, 2, RequiredLevels([]ApprovalLevel{
		{Level: 1, IsActive: true},
		{Level: 2, IsActive: true},
		{Level: 3, IsActive: true},
	}))
}

func TestRoleForLevel(t *testing.T) {
	chain := []ApprovalLevel{
		{Level: 1, ApproverRole: ApproverDepartmentManager, IsActive: true},
		{Level: 2, ApproverRole: ApproverHRManager, IsActive: true},
	}
	assert.Equal(t, ApproverDepartmentManager, RoleForLevel(chain, 1))
	assert.Equal(t, ApproverHRManager, RoleForLevel(chain, 2))
	assert.Equal(t, ApproverGeneric, RoleForLevel(chain, 3))
	assert.Equal(t, ApproverGeneric, RoleForLevel(nil, 1))
}
