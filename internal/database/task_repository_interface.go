package database

import (
	"context"

	"github.com/thenoetrevino/todo/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.Status) ([]*models.Task, error)
	CountTasksByStatus(ctx context.Context) (map[models.Status]int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, u TaskUpdate) error
	DeleteTask(ctx context.Context, id string) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
