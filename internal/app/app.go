package app

import (
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		repo:        repo,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(repo, cfg.newID, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}
