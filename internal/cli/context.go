package cli

import (
	"context"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already-built App.
// Commands run with such a context skip config loading and database setup.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the injected App, or builds one with NewCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			cfg := config.Default()
			styles.Init(cfg.ColorScheme)
			return &CLI{App: a, Config: cfg}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
