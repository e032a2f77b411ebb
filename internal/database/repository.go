package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/todo/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: &TaskRepo{db: db},
	}
}

// Wrapper methods for TaskRepo
func (r *Repository) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, task)
}

func (r *Repository) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) ListTasks(ctx context.Context, filter models.Status) ([]*models.Task, error) {
	return r.TaskRepo.List(ctx, filter)
}

func (r *Repository) CountTasksByStatus(ctx context.Context) (map[models.Status]int, error) {
	return r.TaskRepo.CountByStatus(ctx)
}

func (r *Repository) UpdateTask(ctx context.Context, id string, u TaskUpdate) error {
	return r.TaskRepo.Update(ctx, id, u)
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	return r.TaskRepo.Delete(ctx, id)
}
