package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli/status"
	"github.com/thenoetrevino/todo/internal/cli/task"
)

// NewRootCmd builds the todo command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a terminal to-do list",
		Long: `todo tracks tasks that are either pending or finished.

Tasks are stored in SQLite (~/.todo/tasks.db by default). Listing accepts
the filter "all" in addition to the two task statuses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(status.StatusCmd())

	return rootCmd
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
