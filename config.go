package elements

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration of a Document and its host.
type Config struct {
	Window WindowConfig `yaml:"window"`
	// Assets is the directory resources (src attributes) resolve against.
	Assets string `yaml:"assets,omitempty"`
	// Seed makes generated section colors reproducible. Zero picks a random seed.
	Seed     uint64 `yaml:"seed,omitempty"`
	Debug    bool   `yaml:"debug,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// WindowConfig sizes the root element and the host window.
type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Window:   WindowConfig{Title: "elements", Width: 640, Height: 480},
		Assets:   ".",
		LogLevel: "info",
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d in %s", cfg.Window.Width, cfg.Window.Height, path)
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
