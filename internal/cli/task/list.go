package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by status.

Without --status the default_filter from the config file is used.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Filter: all, pending or finished")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	filter, err := cliInstance.Config.Filter()
	if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
		filter, err = models.ParseStatus(statusFlag)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, filter)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, t := range tasks {
			formatter.Printf("%s\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		views := make([]cli.TaskView, 0, len(tasks))
		for _, t := range tasks {
			views = append(views, cli.NewTaskView(t))
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success": true,
			"filter":  filter.String(),
			"tasks":   views,
		})
	}

	if len(tasks) == 0 {
		if filter == models.StatusAll {
			formatter.Printf("No tasks found\n")
		} else {
			formatter.Printf("No %s tasks found\n", strings.ToLower(filter.String()))
		}
		return nil
	}

	formatter.Printf("%s\n\n", styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", filter.String(), len(tasks))))
	for _, t := range tasks {
		formatter.Printf("  %s\n", styles.TaskLine(t))
	}

	return nil
}
