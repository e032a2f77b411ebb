package models

import (
	"strings"
	"time"
)

// Task represents a single to-do item
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the task ID (used by quiet output)
func (t *Task) GetID() string {
	return t.ID
}

// StatusLabel resolves the display label of the task's status code
func (t *Task) StatusLabel() (string, error) {
	return t.Status.Label()
}

// Validate checks the structural invariants of a task
func (t *Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrMissingName
	}
	if _, err := t.Status.Label(); err != nil {
		return err
	}
	return nil
}

// Matches reports whether the task passes a status filter.
// StatusAll matches every task.
func (t *Task) Matches(filter Status) bool {
	return filter == StatusAll || t.Status == filter
}

// FilterTasks returns the tasks matching filter, preserving order
func FilterTasks(tasks []*Task, filter Status) []*Task {
	filtered := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil && t.Matches(filter) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
