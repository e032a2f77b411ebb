package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as finished",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, args, taskservice.ErrAlreadyFinished,
				func(ctx context.Context, svc taskservice.Service, id string) (*models.Task, error) {
					return svc.FinishTask(ctx, id)
				})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ReopenCmd returns the task reopen subcommand
func ReopenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reopen <task-id>",
		Short: "Move a finished task back to pending",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, args, taskservice.ErrAlreadyPending,
				func(ctx context.Context, svc taskservice.Service, id string) (*models.Task, error) {
					return svc.ReopenTask(ctx, id)
				})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type transitionFunc func(ctx context.Context, svc taskservice.Service, id string) (*models.Task, error)

// runTransition applies a status change. A task already in the target
// status is reported on stderr and still exits successfully.
func runTransition(cmd *cobra.Command, args []string, already error, apply transitionFunc) error {
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

	task, err := apply(ctx, cliInstance.App.TaskService, taskID)
	switch {
	case errors.Is(err, already):
		formatter.Warnf("%s Task %s is already %s\n",
			styles.WarningStyle.Render("Warning"), taskID, task.Status.String())
	case err != nil:
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("task", cli.NewTaskView(task))
	}

	formatter.Printf("%s %s\n", styles.SuccessStyle.Render("OK"), styles.TaskLine(task))
	return nil
}
