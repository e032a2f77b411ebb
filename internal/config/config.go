package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDatabasePath = "TODO_DB_PATH"
	EnvThemeFile    = "TODO_THEME_FILE"
)

// ErrInvalidLogLevel indicates an unknown log_level value
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config represents the application configuration
type Config struct {
	DatabasePath  string      `yaml:"database_path"`
	LogLevel      string      `yaml:"log_level"`
	DefaultFilter string      `yaml:"default_filter"`
	ColorScheme   ColorScheme `yaml:"theme"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TODO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("could not read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("could not parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return finish(&config)
}

// finish applies overrides and defaults, then validates
func finish(config *Config) (*Config, error) {
	if dbPath := os.Getenv(EnvDatabasePath); dbPath != "" {
		config.DatabasePath = dbPath
	}
	loadThemeFile(config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that must parse into domain types
func (c *Config) Validate() error {
	if _, err := c.Filter(); err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Filter returns the default list filter as a status code
func (c *Config) Filter() (models.Status, error) {
	return models.ParseStatus(c.DefaultFilter)
}

// SlogLevel converts the log_level string to a slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultFilter == "" {
		c.DefaultFilter = "all"
	}
	c.ColorScheme.ApplyDefaults()
}
