package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.TaskIDArg(args)
	if err != nil {
		return formatter.Fail(err)
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

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("task", cli.NewTaskView(task))
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(task.Name))
	formatter.Printf("  %s\n", styles.Field("ID", task.ID))
	formatter.Printf("  %s %s\n", styles.LabelStyle.Render("Status:"), styles.StatusChip(task.Status))
	formatter.Printf("  %s\n", styles.Field("Created", task.CreatedAt.Format("2006-01-02 15:04")))
	formatter.Printf("  %s\n", styles.Field("Updated", task.UpdatedAt.Format("2006-01-02 15:04")))
	return nil
}
