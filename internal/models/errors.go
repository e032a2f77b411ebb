package models

import "errors"

// Domain-specific errors for task values
var (
	// ErrInvalidStatus indicates a status code outside the label sequence
	ErrInvalidStatus = errors.New("invalid status")

	// ErrMissingID indicates a task without an identifier
	ErrMissingID = errors.New("task ID cannot be empty")

	// ErrMissingName indicates a task without a display name
	ErrMissingName = errors.New("task name cannot be empty")
)
