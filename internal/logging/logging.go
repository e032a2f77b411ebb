package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init initializes the logging system, writing logs to ~/.todo/logs/todo.log
// Uses text format for human readability.
func Init(level slog.Level) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitDir(filepath.Join(homeDir, ".todo", "logs"), level)
}

// InitDir is Init with an explicit log directory
func InitDir(logDir string, level slog.Level) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "todo.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	InitWriter(file, level)
	return nil
}

// InitWriter points the default logger at w
func InitWriter(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same destination
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
