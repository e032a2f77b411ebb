// Package status implements the command that lists status labels and task counts
package status

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List status codes with task counts",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
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

	counts, err := cliInstance.App.TaskService.GetStatusCounts(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, c := range counts {
			formatter.Printf("%s\n", c.Label)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success("statuses", counts)
	}

	for _, c := range counts {
		formatter.Printf("  %d  %s %s\n", int(c.Status),
			styles.StatusChip(c.Status),
			styles.SubtitleStyle.Render(pluralTasks(c.Count)))
	}
	return nil
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
