package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todo/internal/models"
)

const taskColumns = `id, name, status, created_at, updated_at`

// TaskRepo handles task persistence
type TaskRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var status int
	if err := row.Scan(&task.ID, &task.Name, &status, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}
	task.Status = models.Status(status)
	return task, nil
}

// Create inserts a task and returns it with its stored timestamps
func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, name, status) VALUES (?, ?, ?)`,
		task.ID, task.Name, int(task.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return r.GetByID(ctx, task.ID)
}

// GetByID retrieves a single task
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// List returns tasks in creation order. StatusAll returns every task.
func (r *TaskRepo) List(ctx context.Context, filter models.Status) ([]*models.Task, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidStatus, int(filter))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if filter != models.StatusAll {
		query += ` WHERE status = ?`
		args = append(args, int(filter))
	}
	query += ` ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CountByStatus returns the number of tasks per stored status.
// The StatusAll entry holds the total.
func (r *TaskRepo) CountByStatus(ctx context.Context) (map[models.Status]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.Status]int, models.StatusCount)
	for i := 0; i < models.StatusCount; i++ {
		counts[models.Status(i)] = 0
	}

	total := 0
	for rows.Next() {
		var status, n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		total += n
		if models.Status(status) != models.StatusAll {
			counts[models.Status(status)] = n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts[models.StatusAll] = total
	return counts, nil
}

// TaskUpdate lists the columns to change. Nil fields are left alone.
type TaskUpdate struct {
	Name   *string
	Status *models.Status
}

// Update applies u to a task in one transaction
func (r *TaskRepo) Update(ctx context.Context, id string, u TaskUpdate) error {
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("%w: %d", models.ErrInvalidStatus, int(*u.Status))
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if u.Status != nil {
			result, err := tx.ExecContext(ctx,
				`UPDATE tasks
				 SET status = ?, updated_at = CURRENT_TIMESTAMP
				 WHERE id = ?`,
				int(*u.Status), id,
			)
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}
			if err := requireAffected(result, id); err != nil {
				return err
			}
		}

		if u.Name != nil {
			result, err := tx.ExecContext(ctx,
				`UPDATE tasks
				 SET name = ?, updated_at = CURRENT_TIMESTAMP
				 WHERE id = ?`,
				*u.Name, id,
			)
			if err != nil {
				return fmt.Errorf("failed to update name: %w", err)
			}
			if err := requireAffected(result, id); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a task from the database
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, id)
}
