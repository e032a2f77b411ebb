package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeFileLoading(t *testing.T) {
	themeContent := []byte(`theme:
  accent: "#FF0000"
  finished: "#00FF00"
`)
	themePath := filepath.Join(t.TempDir(), "todo-theme.yaml")
	require.NoError(t, os.WriteFile(themePath, themeContent, 0o644))

	t.Setenv(EnvThemeFile, themePath)
	t.Setenv(EnvDatabasePath, "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Finished)
	assert.Equal(t, DefaultColorScheme().Pending, cfg.ColorScheme.Pending)
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv(EnvDatabasePath, "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultColorScheme(), cfg.ColorScheme)
}

func TestPresets(t *testing.T) {
	mono := MonochromeColorScheme()
	assert.Equal(t, "monochrome", mono.Preset)

	scheme := ColorScheme{Preset: "monochrome", Accent: "#ABCDEF"}
	scheme.ApplyDefaults()
	assert.Equal(t, "#ABCDEF", scheme.Accent)
	assert.Equal(t, mono.Finished, scheme.Finished)

	unknown := ColorScheme{Preset: "does-not-exist"}
	unknown.ApplyDefaults()
	assert.Equal(t, DefaultColorScheme().Accent, unknown.Accent)
}

func TestStatusColor(t *testing.T) {
	scheme := DefaultColorScheme()

	assert.Equal(t, scheme.All, scheme.StatusColor(0))
	assert.Equal(t, scheme.Pending, scheme.StatusColor(1))
	assert.Equal(t, scheme.Finished, scheme.StatusColor(2))
	assert.Equal(t, scheme.Normal, scheme.StatusColor(9))
}
