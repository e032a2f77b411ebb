package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// Classification describes how an error is reported by the CLI
type Classification struct {
	Code       string
	ExitCode   int
	Suggestion string
}

// ErrMissingTaskID is returned when a command needs a task ID argument
var ErrMissingTaskID = errors.New("task ID argument is required")

// Classify maps service and model errors to error codes and exit codes
func Classify(err error) Classification {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return Classification{"TASK_NOT_FOUND", ExitNotFound,
			"Use 'todo task list' to see available tasks"}
	case errors.Is(err, taskservice.ErrStatusNotAssignable):
		return Classification{"STATUS_NOT_ASSIGNABLE", ExitValidation,
			"Tasks can be pending or finished; 'all' is only a list filter"}
	case errors.Is(err, models.ErrInvalidStatus):
		return Classification{"INVALID_STATUS", ExitValidation, "Valid statuses are: " + statusChoices()}
	case errors.Is(err, taskservice.ErrEmptyName),
		errors.Is(err, taskservice.ErrNameTooLong):
		return Classification{"INVALID_NAME", ExitValidation, ""}
	case errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, ErrMissingTaskID):
		return Classification{"INVALID_TASK_ID", ExitUsage, ""}
	case errors.Is(err, taskservice.ErrNoFieldsToUpdate):
		return Classification{"NO_UPDATES", ExitUsage, "Pass --name and/or --status"}
	default:
		return Classification{"ERROR", ExitError, ""}
	}
}

// TaskIDArg returns the single positional task ID
func TaskIDArg(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", ErrMissingTaskID
	}
	return strings.TrimSpace(args[0]), nil
}

// TaskView is the JSON shape of a task in command output
type TaskView struct {
	*models.Task
	StatusLabel string `json:"status_label"`
}

// NewTaskView pairs a task with its resolved status label
func NewTaskView(task *models.Task) TaskView {
	label, err := task.StatusLabel()
	if err != nil {
		label = fmt.Sprintf("invalid (%d)", int(task.Status))
	}
	return TaskView{Task: task, StatusLabel: label}
}

func statusChoices() string {
	return strings.ToLower(strings.Join(models.StatusLabels(), ", "))
}
