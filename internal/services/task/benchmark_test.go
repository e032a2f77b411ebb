package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// BenchmarkCreateTask measures task creation including UUID generation
func BenchmarkCreateTask(b *testing.B) {
	db := testutil.SetupTestDB(b)
	svc := NewService(database.NewRepository(db), nil, nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.CreateTask(ctx, CreateTaskRequest{Name: fmt.Sprintf("Task %d", i)}); err != nil {
			b.Fatalf("CreateTask failed: %v", err)
		}
	}
}

// BenchmarkListTasks measures filtered listing over 1000 tasks
func BenchmarkListTasks(b *testing.B) {
	db := testutil.SetupTestDB(b)
	svc := NewService(database.NewRepository(db), nil, nil)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		status := models.StatusPending
		if i%2 == 0 {
			status = models.StatusFinished
		}
		if _, err := svc.CreateTask(ctx, CreateTaskRequest{Name: fmt.Sprintf("Task %d", i), Status: status}); err != nil {
			b.Fatalf("CreateTask failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ListTasks(ctx, models.StatusPending); err != nil {
			b.Fatalf("ListTasks failed: %v", err)
		}
	}
}
