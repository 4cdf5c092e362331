package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName = "planner"

	// EnvDB overrides the database path from the config file.
	EnvDB = "PLANNER_DB"
	// EnvThemeFile points at a YAML file whose colors are merged on top.
	EnvThemeFile = "PLANNER_THEME_FILE"

	DefaultLogLevel      = "info"
	DefaultMarkdownStyle = "auto"
)

// Config represents the application configuration
type Config struct {
	DataPath      string      `yaml:"data_path"`
	LogLevel      string      `yaml:"log_level"`
	Palette       []string    `yaml:"palette,omitempty"`
	MarkdownStyle string      `yaml:"markdown_style"`
	Colors        ColorScheme `yaml:"colors"`

	path   string
	custom ColorScheme
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges colors from PLANNER_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Colors ColorScheme `yaml:"colors"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.Colors.MergeFrom(themeConfig.Colors)
}

// Load loads config from path, or from the user's config directory when
// path is empty. Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			// No home directory: run on defaults
			config := &Config{}
			loadThemeFile(config)
			config.applyDefaults()
			return config, nil
		}
		path = p
	}

	config := &Config{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Save saves the config to the path it was loaded from
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// DataDir returns the directory holding the database and logs.
func (c *Config) DataDir() string {
	return filepath.Dir(c.DataPath)
}

// LogPath returns the log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir(), "logs", appName+".log")
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level %q: must be debug, info, warn or error", c.LogLevel)
	}
	for i, p := range c.Palette {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("palette entry %d is empty", i)
		}
	}
	return nil
}

// DefaultConfigPath returns the path to the config file
func DefaultConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDataPath returns the database location under XDG_DATA_HOME.
func DefaultDataPath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, appName+".db")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName+".db")
	}
	return filepath.Join(homeDir, ".local", "share", appName, appName+".db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if db := os.Getenv(EnvDB); db != "" {
		c.DataPath = db
	}
	if c.DataPath == "" {
		c.DataPath = DefaultDataPath()
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MarkdownStyle == "" {
		c.MarkdownStyle = DefaultMarkdownStyle
	}

	c.custom = c.Colors
	c.Colors.ApplyDefaults()
}
