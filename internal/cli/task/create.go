package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task. New tasks are pending unless --status says otherwise.

Examples:
  # Simple task (human-readable output)
  todo task create --name="Buy milk"

  # JSON output for agents
  todo task create --name="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(todo task create --name="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("status", "pending", "Initial status: pending or finished")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	statusFlag, _ := cmd.Flags().GetString("status")

	status, err := models.ParseStatus(statusFlag)
	if err != nil {
		return formatter.Fail(err)
	}
	if status == models.StatusAll {
		return formatter.Fail(taskservice.ErrStatusNotAssignable)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Name:   name,
		Status: status,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("task", cli.NewTaskView(task))
	}

	formatter.Printf("%s Task '%s' created\n", styles.SuccessStyle.Render("OK"), task.Name)
	formatter.Printf("  %s\n", styles.Field("ID", task.ID))
	formatter.Printf("  %s\n", styles.Field("Status", task.Status.String()))
	return nil
}
