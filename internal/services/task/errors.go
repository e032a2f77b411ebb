package task

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("task name cannot be empty")
	ErrNameTooLong   = errors.New("task name cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStatus = models.ErrInvalidStatus

	// ErrStatusNotAssignable indicates an attempt to store the All filter as a task status
	ErrStatusNotAssignable = errors.New("status \"All\" is a filter and cannot be assigned to a task")

	// Business logic errors
	ErrTaskNotFound      = errors.New("task not found")
	ErrAlreadyFinished   = errors.New("task is already finished")
	ErrAlreadyPending    = errors.New("task is already pending")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrIDGeneratorFailed = errors.New("failed to generate task ID")
)
