package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func decode(t *testing.T, b *bytes.Buffer) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &result), "output: %s", b.String())
	return result
}

func TestOutputFormatter_Success(t *testing.T) {
	task := NewTaskView(&models.Task{ID: "t1", Name: "Buy milk", Status: models.StatusPending})

	t.Run("quiet prints ID", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success("task", task))
		assert.Equal(t, "t1\n", out.String())
	})

	t.Run("JSON envelope", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.Success("task", task))

		result := decode(t, out)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, "t1", result["task"].(map[string]any)["id"])
	})

	t.Run("quiet without ID falls through", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, true)
		require.NoError(t, f.Success("count", 3))
		assert.Equal(t, float64(3), decode(t, out)["count"])
	})
}

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task not found", "list tasks"))

		result := decode(t, out)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
		assert.Equal(t, "task not found", errData["message"])
		assert.Equal(t, "list tasks", errData["suggestion"])
	})

	t.Run("JSON omits empty suggestion", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("ERROR", "boom", ""))
		_, ok := decode(t, out)["error"].(map[string]any)["suggestion"]
		assert.False(t, ok)
	})

	t.Run("human goes to stderr", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		require.NoError(t, f.ErrorWithSuggestion("ERROR", "boom", "try again"))
		assert.Empty(t, out.String())
		assert.Equal(t, "Error: boom\nSuggestion: try again\n", errOut.String())
	})
}

func TestOutputFormatter_NoEscapesWhenNotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "dumb")

	f, out, errOut := newTestFormatter(false, false)
	f.Printf("%s %s\n", styles.TitleStyle.Render("All (1)"),
		styles.TaskLine(&models.Task{ID: "t1", Name: "Buy milk", Status: models.StatusPending}))
	f.Warnf("%s done\n", styles.WarningStyle.Render("Warning"))
	require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task not found: t2", "list tasks"))

	assert.NotContains(t, out.String(), "\x1b[")
	assert.NotContains(t, errOut.String(), "\x1b[")
	assert.Contains(t, out.String(), "All (1) [Pending] Buy milk  (t1)")
	assert.Contains(t, errOut.String(), "Warning")
	assert.Contains(t, errOut.String(), "Error: task not found: t2")
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	err := f.Fail(taskservice.ErrTaskNotFound)

	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
	assert.Equal(t, "TASK_NOT_FOUND", decode(t, out)["error"].(map[string]any)["code"])
}
