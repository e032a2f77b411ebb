package cli

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/testutil"
)

func TestGetCLIFromContext_InjectedApp(t *testing.T) {
	injected := app.New(database.NewRepository(testutil.SetupTestDB(t)))

	c, err := GetCLIFromContext(WithApp(context.Background(), injected))
	require.NoError(t, err)
	assert.Same(t, injected, c.App)
	assert.Equal(t, config.Default(), c.Config)

	// Injected apps own their database; Close leaves it alone
	assert.NoError(t, c.Close())
}

func TestNewCLI_UsesEnvironment(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "tasks.db")
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvDatabasePath, dbPath)

	c, err := GetCLIFromContext(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, dbPath, c.Config.DatabasePath)
	assert.FileExists(t, dbPath)
	assert.DirExists(t, filepath.Join(dir, ".todo", "logs"))
}
