package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrSelfManagedEmployee = errors.New("employee cannot be their own manager")
	ErrAccountAlreadyLinked = errors.New("employee already has a linked account")
)
