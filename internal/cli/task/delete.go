package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Printf("%s\n", taskID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success("deleted", taskID)
	}

	formatter.Printf("%s Task %s deleted\n", styles.SuccessStyle.Render("OK"), taskID)
	return nil
}
