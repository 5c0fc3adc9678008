package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/wintoast"
)

const appName = "wintoast"

// Config holds the CLI defaults applied to every toast it shows.
type Config struct {
	AppID         string `koanf:"app_id"`          // AppUserModelID, empty means the PowerShell identity
	Duration      string `koanf:"duration"`        // "short" or "long", empty leaves the attribute out
	Sound         string `koanf:"sound"`           // sound event name, e.g. "Mail" or "Looping.Alarm2"
	Silent        bool   `koanf:"silent"`          // mute every toast
	AppLogo       string `koanf:"app_logo"`        // image used as app logo override by the notify command
	DisplayWaitMS *int   `koanf:"display_wait_ms"` // wait after submission (default: 10)
	LogLevel      string `koanf:"log_level"`       // "debug", "info", "warn" or "error" (default: "warn")
}

// Load reads the config files found in the standard locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.AppID = strings.TrimSpace(cfg.AppID)
	if cfg.AppLogo != "" {
		cfg.AppLogo = expandPath(cfg.AppLogo)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/wintoast/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./wintoast.toml (pwd, highest priority)
		appName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DisplayWait returns the wait after submission with the default applied.
func (c *Config) DisplayWait() time.Duration {
	if c.DisplayWaitMS == nil || *c.DisplayWaitMS < 0 {
		return wintoast.DefaultDisplayWait
	}
	return time.Duration(*c.DisplayWaitMS) * time.Millisecond
}

// SlogLevel returns the configured log level, warn when unset or unknown.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
