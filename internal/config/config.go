// Package config loads the optional config.toml from the jam data root.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the user-tunable behavior of jam.
type Config struct {
	// SeedEntry starts every session with one row logged in at start-up.
	SeedEntry bool         `toml:"seed_entry"`
	LogLevel  string       `toml:"log_level"`
	Colors    ColorsConfig `toml:"colors"`
}

// ColorsConfig holds the terminal palette.
type ColorsConfig struct {
	Accent string `toml:"accent"`
	Total  string `toml:"total"`
	Error  string `toml:"error"`
	Dim    string `toml:"dim"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SeedEntry: true,
		LogLevel:  "info",
		Colors: ColorsConfig{
			Accent: "#83a598",
			Total:  "#8ec07c",
			Error:  "#fb4934",
			Dim:    "#928374",
		},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, falling back to info.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q (expected debug|info|warn|error)", value)
	}
}
