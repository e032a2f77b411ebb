package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test finishes.
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		tb.Fatalf("Failed to create test database: %v", err)
	}
	// Each connection to :memory: opens a separate database
	db.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		tb.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestTask inserts a task directly and returns its ID
func CreateTestTask(tb testing.TB, db *sql.DB, id, name string, status models.Status) string {
	tb.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (id, name, status) VALUES (?, ?, ?)", id, name, int(status))
	if err != nil {
		tb.Fatalf("Failed to create test task: %v", err)
	}
	return id
}

// GetTestTaskStatus reads a task's stored status code
func GetTestTaskStatus(tb testing.TB, db *sql.DB, id string) models.Status {
	tb.Helper()
	var status int
	err := db.QueryRowContext(context.Background(),
		"SELECT status FROM tasks WHERE id = ?", id).Scan(&status)
	if err != nil {
		tb.Fatalf("Failed to read task status: %v", err)
	}
	return models.Status(status)
}
