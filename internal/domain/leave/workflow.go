package leave

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft                Status = "draft"
	StatusSubmitted            Status = "submitted" // legacy alias of first_approval_pending
	StatusFirstApprovalPending Status = "first_approval_pending"
	StatusFirstApproved        Status = "first_approved"
	StatusSecondApprovalPending Status = "second_approval_pending"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
)

// MaxApprovalLevels is the number of approver slots a request records.
const MaxApprovalLevels = 2

// Actor identifies who performs a workflow transition.
type Actor struct {
	UserID string
	Name   string
	Role   ApproverRole
}

// PendingAtLevel reports whether the status is awaiting a decision at the
// given approval level.
func (s Status) PendingAtLevel(level int) bool {
	switch level {
	case 1:
		return s == StatusSubmitted || s == StatusFirstApprovalPending
	case 2:
		return s == StatusFirstApproved || s == StatusSecondApprovalPending
	default:
		return false
	}
}

// IsPending reports whether the request is in any non-terminal,
// non-draft state.
func (s Status) IsPending() bool {
	return s.PendingAtLevel(1) || s.PendingAtLevel(2)
}

// IsTerminal reports whether no further transitions apply.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// MarkSubmitted moves a draft into the first approval stage. Field
// validation happens before this; the receiver only guards the state.
func (r *Request) MarkSubmitted(now time.Time) error {
	if r.Status != StatusDraft {
		return fmt.Errorf("submit from %s: %w", r.Status, ErrNotDraft)
	}
	r.Status = StatusFirstApprovalPending
	r.SubmittedAt = &now
	return nil
}

// RecordApproval applies one approval decision at the given level and
// advances the request: to the next pending stage, or to approved when
// level equals levelsRequired.
func (r *Request) RecordApproval(actor Actor, level, levelsRequired int, comments *string, now time.Time) error {
	if level < 1 || level > MaxApprovalLevels || level > levelsRequired {
		return ErrInvalidLevel
	}
	if r.Status.IsTerminal() {
		return fmt.Errorf("approve %s request: %w", r.Status, ErrAlreadyDecided)
	}
	if !r.Status.PendingAtLevel(level) {
		return fmt.Errorf("approve at level %d from %s: %w", level, r.Status, ErrNotPendingApproval)
	}

	switch level {
	case 1:
		r.FirstApproverID = &actor.UserID
		r.FirstApprovedAt = &now
		r.FirstComments = comments
		if levelsRequired > 1 {
			r.Status = StatusFirstApproved
		} else {
			r.Status = StatusApproved
		}
	case 2:
		r.SecondApproverID = &actor.UserID
		r.SecondApprovedAt = &now
		r.SecondComments = comments
		r.Status = StatusApproved
	}
	return nil
}

// RecordRejection rejects from any pending state. Terminal.
func (r *Request) RecordRejection(actor Actor, reason string, now time.Time) error {
	if !r.Status.IsPending() {
		return fmt.Errorf("reject %s request: %w", r.Status, ErrNotPendingApproval)
	}
	r.Status = StatusRejected
	r.RejectedByID = &actor.UserID
	r.RejectionDate = &now
	r.RejectionReason = &reason
	return nil
}

// ResetToDraft clears all approval and rejection metadata and returns
// the request to draft. Approved requests cannot be reset.
func (r *Request) ResetToDraft() error {
	if r.Status == StatusApproved {
		return fmt.Errorf("reset approved request: %w", ErrAlreadyApproved)
	}
	r.Status = StatusDraft
	r.FirstApproverID = nil
	r.FirstApprovedAt = nil
	r.FirstComments = nil
	r.SecondApproverID = nil
	r.SecondApprovedAt = nil
	r.SecondComments = nil
	r.RejectedByID = nil
	r.RejectionDate = nil
	r.RejectionReason = nil
	r.SubmittedAt = nil
	return nil
}

// ApprovalProgress returns the percentage of required approvals completed.
// It is 0 before any approval, 100 only at approved, and never decreases
// over legitimate transitions.
func (r Request) ApprovalProgress(levelsRequired int) float64 {
	if levelsRequired <= 0 {
		levelsRequired = 1
	}
	if levelsRequired > MaxApprovalLevels {
		levelsRequired = MaxApprovalLevels
	}

	switch r.Status {
	case StatusApproved:
		return 100
	case StatusDraft, StatusSubmitted, StatusFirstApprovalPending, StatusRejected:
		return 0
	}

	completed := 0
	if r.FirstApprovedAt != nil {
		completed++
	}
	if r.SecondApprovedAt != nil {
		completed++
	}
	return float64(completed) / float64(levelsRequired) * 100
}

// RequiredLevels derives how many approval decisions a request needs from
// the department's configured chain. Zero configured levels fall back to a
// single generic approver stage.
func RequiredLevels(levels []ApprovalLevel) int {
	n := 0
	for _, l := range levels {
		if l.IsActive {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	if n > MaxApprovalLevels {
		return MaxApprovalLevels
	}
	return n
}

// RoleForLevel returns the approver role configured for the given level,
// or the generic approver role when the chain has no entry for it.
func RoleForLevel(levels []ApprovalLevel, level int) ApproverRole {
	for _, l := range levels {
		if l.IsActive && l.Level == level {
			return l.ApproverRole
		}
	}
	return ApproverGeneric
}
