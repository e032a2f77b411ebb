package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todo/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Every connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// createTestTask inserts a task through the repository
func createTestTask(t *testing.T, repo *Repository, id, name string, status models.Status) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), &models.Task{ID: id, Name: name, Status: status})
	if err != nil {
		t.Fatalf("Failed to create task %s: %v", id, err)
	}
	return task
}
