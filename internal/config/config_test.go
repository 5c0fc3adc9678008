package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/wintoast"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/icons/logo.png",
			expected: filepath.Join(home, "icons", "logo.png"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/share/icons/logo.png",
			expected: "/usr/share/icons/logo.png",
		},
		{
			name:     "relative path unchanged",
			input:    "icons/logo.png",
			expected: "icons/logo.png",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// Last path should be the local file
	if paths[1] != "wintoast.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "wintoast.toml")
	}

	if filepath.Base(paths[0]) != "config.toml" || filepath.Base(filepath.Dir(paths[0])) != "wintoast" {
		t.Errorf("first config path = %q, want .../wintoast/config.toml", paths[0])
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFiles(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("LoadFrom() = %+v, want zero config", *cfg)
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
app_id = "  Contoso.Mail  "
duration = "long"
sound = "Looping.Alarm2"
silent = true
display_wait_ms = 250
log_level = "debug"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.AppID != "Contoso.Mail" {
		t.Errorf("AppID = %q, want %q", cfg.AppID, "Contoso.Mail")
	}
	if cfg.Duration != "long" {
		t.Errorf("Duration = %q, want %q", cfg.Duration, "long")
	}
	if cfg.Sound != "Looping.Alarm2" {
		t.Errorf("Sound = %q, want %q", cfg.Sound, "Looping.Alarm2")
	}
	if !cfg.Silent {
		t.Error("Silent = false, want true")
	}
	if got := cfg.DisplayWait(); got != 250*time.Millisecond {
		t.Errorf("DisplayWait() = %v, want 250ms", got)
	}
	if got := cfg.SlogLevel(); got != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want %v", got, slog.LevelDebug)
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "config.toml", `
app_id = "Global.App"
sound = "Mail"
`)
	local := writeConfig(t, dir, "wintoast.toml", `
app_id = "Local.App"
`)

	cfg, err := LoadFrom(global, local)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.AppID != "Local.App" {
		t.Errorf("AppID = %q, want %q", cfg.AppID, "Local.App")
	}
	// Keys missing from the later file are kept
	if cfg.Sound != "Mail" {
		t.Errorf("Sound = %q, want %q", cfg.Sound, "Mail")
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "invalid = [[[")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestLoadFrom_AppLogoExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	path := writeConfig(t, t.TempDir(), "config.toml", `app_logo = "~/icons/logo.png"`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	expected := filepath.Join(home, "icons", "logo.png")
	if cfg.AppLogo != expected {
		t.Errorf("AppLogo = %q, want %q", cfg.AppLogo, expected)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	writeConfig(t, tmpDir, "wintoast.toml", `app_id = "From.Cwd"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// The local file has the highest priority whatever the global config holds
	if cfg.AppID != "From.Cwd" {
		t.Errorf("AppID = %q, want %q", cfg.AppID, "From.Cwd")
	}
}

func TestDisplayWait(t *testing.T) {
	zero, negative := 0, -5

	tests := []struct {
		name     string
		config   Config
		expected time.Duration
	}{
		{"unset uses default", Config{}, wintoast.DefaultDisplayWait},
		{"zero disables", Config{DisplayWaitMS: &zero}, 0},
		{"negative uses default", Config{DisplayWaitMS: &negative}, wintoast.DefaultDisplayWait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.DisplayWait(); got != tt.expected {
				t.Errorf("DisplayWait() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := Config{LogLevel: tt.input}
			if got := cfg.SlogLevel(); got != tt.expected {
				t.Errorf("SlogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
