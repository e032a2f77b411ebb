package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/todo/cmd"
	"github.com/thenoetrevino/todo/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code := cli.ExitSuccess
	if err := cmd.Execute(ctx); err != nil {
		code = cli.ExitCode(err)

		// Command errors were already reported by the formatter; anything
		// else comes from cobra's argument and flag parsing
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = cli.ExitUsage
		}
	}

	cancel()
	os.Exit(code)
}
