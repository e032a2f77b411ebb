package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// MaxNameLength is the longest accepted task name, in characters
const MaxNameLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.Status) ([]*models.Task, error)
	GetStatusCounts(ctx context.Context) ([]StatusCount, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	// Status transitions
	SetStatus(ctx context.Context, taskID string, status models.Status) (*models.Task, error)
	FinishTask(ctx context.Context, taskID string) (*models.Task, error)
	ReopenTask(ctx context.Context, taskID string) (*models.Task, error)
}

// IDGenerator produces identifiers for new tasks
type IDGenerator func() (string, error)

// NewUUID is the default IDGenerator
func NewUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Name   string
	Status models.Status // Optional: StatusAll (zero) means Pending
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID string
	Name   *string
	Status *models.Status
}

// StatusCount pairs a status label with the number of tasks it covers
type StatusCount struct {
	Status models.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	newID  IDGenerator
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo database.DataStore, newID IDGenerator, logger *slog.Logger) Service {
	if newID == nil {
		newID = NewUUID
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		newID:  newID,
		logger: logger,
	}
}

// CreateTask handles task creation with validation and business rules
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == models.StatusAll {
		status = models.StatusPending
	}
	if err := validateAssignable(status); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIDGeneratorFailed, err)
	}

	task, err := s.repo.CreateTask(ctx, &models.Task{ID: id, Name: name, Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "task_id", task.ID, "status", task.Status.String())
	return task, nil
}

// GetTask returns a single task
func (s *service) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	if err := validateID(taskID); err != nil {
		return nil, err
	}

	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, mapNotFound(err, taskID)
	}
	return task, nil
}

// ListTasks returns the tasks matching filter; StatusAll returns everything
func (s *service) ListTasks(ctx context.Context, filter models.Status) ([]*models.Task, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(filter))
	}

	tasks, err := s.repo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetStatusCounts returns one entry per status label, in code order
func (s *service) GetStatusCounts(ctx context.Context) ([]StatusCount, error) {
	counts, err := s.repo.CountTasksByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	result := make([]StatusCount, 0, models.StatusCount)
	for i, label := range models.StatusLabels() {
		status := models.Status(i)
		result = append(result, StatusCount{
			Status: status,
			Label:  label,
			Count:  counts[status],
		})
	}
	return result, nil
}

// UpdateTask handles task updates with validation
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if err := validateID(req.TaskID); err != nil {
		return nil, err
	}
	if req.Name == nil && req.Status == nil {
		return nil, ErrNoFieldsToUpdate
	}

	var name string
	if req.Name != nil {
		validated, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		name = validated
	}
	if req.Status != nil {
		if err := validateAssignable(*req.Status); err != nil {
			return nil, err
		}
	}

	update := database.TaskUpdate{Status: req.Status}
	if req.Name != nil {
		update.Name = &name
	}
	if err := s.repo.UpdateTask(ctx, req.TaskID, update); err != nil {
		return nil, mapNotFound(err, req.TaskID)
	}

	s.logger.Debug("task updated", "task_id", req.TaskID)
	return s.GetTask(ctx, req.TaskID)
}

// SetStatus assigns a new status to a task
func (s *service) SetStatus(ctx context.Context, taskID string, status models.Status) (*models.Task, error) {
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Status: &status})
}

// FinishTask marks a pending task as finished
func (s *service) FinishTask(ctx context.Context, taskID string) (*models.Task, error) {
	return s.transition(ctx, taskID, models.StatusFinished, ErrAlreadyFinished)
}

// ReopenTask moves a finished task back to pending
func (s *service) ReopenTask(ctx context.Context, taskID string) (*models.Task, error) {
	return s.transition(ctx, taskID, models.StatusPending, ErrAlreadyPending)
}

func (s *service) transition(ctx context.Context, taskID string, to models.Status, already error) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == to {
		return task, already
	}
	return s.SetStatus(ctx, taskID, to)
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, taskID string) error {
	if err := validateID(taskID); err != nil {
		return err
	}

	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return mapNotFound(err, taskID)
	}

	s.logger.Debug("task deleted", "task_id", taskID)
	return nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidTaskID
	}
	return nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return trimmed, nil
}

func validateAssignable(status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(status))
	}
	if status == models.StatusAll {
		return ErrStatusNotAssignable
	}
	return nil
}

func mapNotFound(err error, taskID string) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return fmt.Errorf("task %s: %w", taskID, err)
}
