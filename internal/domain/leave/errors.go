package leave

import "errors"

var (
	ErrTypeNotFound          = errors.New("leave type not found")
	ErrBalanceNotFound       = errors.New("leave balance not found")
	ErrRequestNotFound       = errors.New("leave request not found")
	ErrDocumentNotFound      = errors.New("leave request document not found")
	ErrApprovalLevelNotFound = errors.New("approval level not found")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrNotDraft              = errors.New("leave request is not in draft status")
	ErrNotPendingApproval    = errors.New("leave request is not pending approval at this level")
	ErrApproverRoleMismatch  = errors.New("actor role cannot approve at this level")
	ErrAlreadyApproved       = errors.New("leave request is already approved")
	ErrAlreadyDecided        = errors.New("leave request has already been decided")
	ErrInvalidLevel          = errors.New("invalid approval level")
	ErrOverlappingRequest    = errors.New("leave request overlaps an existing request")
)
