package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// ============================================================================
// Load Tests
// ============================================================================

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if want := filepath.Join(tempDir, "planner", "planner.db"); cfg.DataPath != want {
		t.Errorf("DataPath = %s, want %s", cfg.DataPath, want)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.MarkdownStyle != DefaultMarkdownStyle {
		t.Errorf("MarkdownStyle = %s, want %s", cfg.MarkdownStyle, DefaultMarkdownStyle)
	}
	if cfg.Colors != DefaultColorScheme() {
		t.Errorf("Colors = %+v, want default scheme", cfg.Colors)
	}
	if want := filepath.Join(tempDir, "planner", "config.yaml"); cfg.Path() != want {
		t.Errorf("Path() = %s, want %s", cfg.Path(), want)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")

	path := writeConfig(t, `data_path: /tmp/boards.db
log_level: debug
palette: ["bg-red-600", "bg-blue-600"]
markdown_style: dark
colors:
  accent: "#123456"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DataPath != "/tmp/boards.db" {
		t.Errorf("DataPath = %s, want /tmp/boards.db", cfg.DataPath)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if len(cfg.Palette) != 2 || cfg.Palette[1] != "bg-blue-600" {
		t.Errorf("Palette = %v", cfg.Palette)
	}
	if cfg.MarkdownStyle != "dark" {
		t.Errorf("MarkdownStyle = %s, want dark", cfg.MarkdownStyle)
	}
	if cfg.Colors.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456", cfg.Colors.Accent)
	}
	// Unset colours come from the default preset
	if cfg.Colors.Delete != DefaultColorScheme().Delete {
		t.Errorf("Delete = %s, want default", cfg.Colors.Delete)
	}
}

func TestLoadConfig_EnvDBOverrides(t *testing.T) {
	t.Setenv(EnvDB, "/srv/planner.db")
	t.Setenv(EnvThemeFile, "")

	path := writeConfig(t, "data_path: /tmp/boards.db\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataPath != "/srv/planner.db" {
		t.Errorf("DataPath = %s, want env override", cfg.DataPath)
	}
	if cfg.LogPath() != "/srv/logs/planner.log" {
		t.Errorf("LogPath() = %s", cfg.LogPath())
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "data_path: [unterminated\n", "failed to parse"},
		{"bad log level", "log_level: loud\n", "log_level"},
		{"empty palette entry", "palette: [\"bg-red-600\", \" \"]\n", "palette entry 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")

	path := writeConfig(t, "log_level: warn\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.MarkdownStyle = "light"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.MarkdownStyle != "light" || reloaded.LogLevel != "warn" {
		t.Errorf("reloaded = %+v", reloaded)
	}
}

// ============================================================================
// Color Scheme Tests
// ============================================================================

func TestThemeFileLoading(t *testing.T) {
	t.Setenv(EnvDB, "")

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := `colors:
  accent: "#FF0000"
  create: "#00FF00"
`
	if err := os.WriteFile(themePath, []byte(themeContent), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Colors.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.Colors.Accent)
	}
	if cfg.Colors.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.Colors.Create)
	}
	if cfg.Colors.Delete == "" {
		t.Error("Expected delete color to have default value")
	}
}

func TestPresetSelection(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load(writeConfig(t, "colors:\n  preset: monochrome\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Colors != MonochromeColorScheme() {
		t.Errorf("Colors = %+v, want monochrome", cfg.Colors)
	}
	// An explicit preset ignores the stored theme
	if got := cfg.SchemeFor(true); got.Preset != "monochrome" {
		t.Errorf("SchemeFor(light) preset = %s, want monochrome", got.Preset)
	}
}

func TestSchemeFor_FollowsTheme(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load(writeConfig(t, "colors:\n  accent: \"#ABCDEF\"\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	light := cfg.SchemeFor(true)
	if light.Preset != "lotus" {
		t.Errorf("light preset = %s, want lotus", light.Preset)
	}
	if light.Accent != "#ABCDEF" {
		t.Errorf("custom accent lost on light scheme: %s", light.Accent)
	}

	dark := cfg.SchemeFor(false)
	if dark.Preset != "default" {
		t.Errorf("dark preset = %s, want default", dark.Preset)
	}
}
