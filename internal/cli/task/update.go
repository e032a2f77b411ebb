package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Rename a task or change its status",
		Long: `Update a task's name and/or status.

Examples:
  todo task update 3f2a... --name="Buy oat milk"
  todo task update 3f2a... --status=finished
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New task name")
	cmd.Flags().String("status", "", "New status: pending or finished")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.TaskIDArg(args)
	if err != nil {
		return formatter.Fail(err)
	}

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("status") {
		statusFlag, _ := cmd.Flags().GetString("status")
		status, err := models.ParseStatus(statusFlag)
		if err != nil {
			return formatter.Fail(err)
		}
		req.Status = &status
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

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("task", cli.NewTaskView(task))
	}

	formatter.Printf("%s %s\n", styles.SuccessStyle.Render("OK"), styles.TaskLine(task))
	return nil
}
