package training

import "errors"

var (
	ErrTrainingNotFound = errors.New("training not found")
	ErrRequestNotFound  = errors.New("training request not found")
	ErrRequestReviewed  = errors.New("training request has already been reviewed")
	ErrInvalidStatus    = errors.New("invalid training status")
)
