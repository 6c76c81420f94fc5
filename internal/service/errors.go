package service

import "errors"

var (
	ErrInvalidStatus       = errors.New("unknown walk request status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrRequestNotOpen      = errors.New("walk request is not open")
	ErrRequestNotCompleted = errors.New("walk request is not completed")
	ErrNotRequestOwner     = errors.New("user does not own the dog of this walk request")
)
