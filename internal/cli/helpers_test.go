package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		exitCode int
	}{
		{"not found", fmt.Errorf("get: %w", taskservice.ErrTaskNotFound), "TASK_NOT_FOUND", ExitNotFound},
		{"all not assignable", taskservice.ErrStatusNotAssignable, "STATUS_NOT_ASSIGNABLE", ExitValidation},
		{"invalid status", fmt.Errorf("%w: 5", models.ErrInvalidStatus), "INVALID_STATUS", ExitValidation},
		{"empty name", taskservice.ErrEmptyName, "INVALID_NAME", ExitValidation},
		{"name too long", taskservice.ErrNameTooLong, "INVALID_NAME", ExitValidation},
		{"missing id arg", ErrMissingTaskID, "INVALID_TASK_ID", ExitUsage},
		{"empty id", taskservice.ErrInvalidTaskID, "INVALID_TASK_ID", ExitUsage},
		{"no updates", taskservice.ErrNoFieldsToUpdate, "NO_UPDATES", ExitUsage},
		{"other", errors.New("disk on fire"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.err)
			assert.Equal(t, tt.code, c.Code)
			assert.Equal(t, tt.exitCode, c.ExitCode)
		})
	}
}

func TestClassify_InvalidStatusSuggestsChoices(t *testing.T) {
	c := Classify(models.ErrInvalidStatus)
	assert.Equal(t, "Valid statuses are: all, pending, finished", c.Suggestion)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCode(&CommandError{Code: ExitNotFound}))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", &CommandError{Code: ExitValidation})))
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Code: ExitNotFound, Err: taskservice.ErrTaskNotFound}
	assert.Equal(t, "task not found", err.Error())
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)

	assert.Equal(t, "exit status 2", (&CommandError{Code: ExitUsage}).Error())
}

func TestTaskIDArg(t *testing.T) {
	id, err := TaskIDArg([]string{" abc "})
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = TaskIDArg(nil)
	assert.ErrorIs(t, err, ErrMissingTaskID)

	_, err = TaskIDArg([]string{"   "})
	assert.ErrorIs(t, err, ErrMissingTaskID)
}

func TestNewTaskView(t *testing.T) {
	view := NewTaskView(&models.Task{ID: "1", Name: "Buy milk", Status: models.StatusPending})
	assert.Equal(t, "Pending", view.StatusLabel)
	assert.Equal(t, "1", view.GetID())

	view = NewTaskView(&models.Task{ID: "2", Name: "Broken", Status: models.Status(5)})
	assert.Equal(t, "invalid (5)", view.StatusLabel)
}
