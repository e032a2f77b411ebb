package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/testutil"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "task")
	assert.Contains(t, names, "status")

	taskCmd, _, err := root.Find([]string{"task", "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", taskCmd.Name())
}

func TestRootCmd_EndToEnd(t *testing.T) {
	testApp := app.New(database.NewRepository(testutil.SetupTestDB(t)),
		app.WithIDGenerator(func() (string, error) { return "only", nil }))
	ctx := cli.WithApp(context.Background(), testApp)

	exec := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewRootCmd()
		root.SetArgs(args)
		root.SetOut(&out)
		root.SetErr(&out)
		err := root.ExecuteContext(ctx)
		return out.String(), err
	}

	out, err := exec("task", "create", "--name", "Buy milk", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "only\n", out)

	out, err = exec("status", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "All\nPending\nFinished\n", out)

	_, err = exec("task", "show", "missing")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
