package app

import (
	"log/slog"

	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	newID  taskservice.IDGenerator
	logger *slog.Logger
}

// WithIDGenerator overrides how new task IDs are produced
func WithIDGenerator(gen taskservice.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
