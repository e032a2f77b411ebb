// Package cli provides helpers for running cobra commands against an in-memory app
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// Task IDs are deterministic: "task-1", "task-2", ...
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	n := 0
	appInstance := app.New(database.NewRepository(db),
		app.WithIDGenerator(func() (string, error) {
			n++
			return fmt.Sprintf("task-%d", n), nil
		}),
	)

	return db, appInstance
}

// Result holds the captured output of a command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCLICommand executes a CLI command with a test app instance injected
// through the command context
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
