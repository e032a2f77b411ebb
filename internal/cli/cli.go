package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB // nil when the App was injected
}

// NewCLI loads config, initializes logging and opens the database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, _ := cfg.SlogLevel()
	if err := logging.Init(level); err != nil {
		// Logging is best effort; commands still work without a log file
		slog.Warn("failed to initialize log file", "error", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:    app.New(database.NewRepository(db), app.WithLogger(slog.Default())),
		Config: cfg,
		db:     db,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
