// Package config loads the optional user configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config tunes the rendering collaborator. The core takes no configuration.
type Config struct {
	// Theme is the named palette: classic, neon or mono.
	Theme string `yaml:"theme"`
	// MarkdownStyle picks the glamour palette: auto, dark or light.
	MarkdownStyle string `yaml:"markdown_style"`
	// LogFile is where debug logging goes; stdout belongs to the TUI.
	LogFile string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Theme:         "classic",
		MarkdownStyle: "auto",
	}
}

// DefaultPath returns ~/.config/thoth/config.yaml (per-OS equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "thoth", "config.yaml"), nil
}

// Load reads the config at path. A missing file is not an error; defaults
// are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = "classic"
	}
	if cfg.MarkdownStyle == "" {
		cfg.MarkdownStyle = "auto"
	}
	return cfg, nil
}
