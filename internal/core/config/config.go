// Package config handles configuration loading and validation for hrevu.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/hrevu/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Locale  string       `yaml:"locale"`
	TUI     TUIConfig    `yaml:"tui"`
	DataDir string       `yaml:"-"` // set by caller, not from config file
}

// ServerConfig points the client at the review backend.
type ServerConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	// Theme is used when no theme preference has been stored yet.
	Theme        string        `yaml:"theme"`
	MaxToasts    int           `yaml:"max_toasts"`
	ToastSuccess time.Duration `yaml:"toast_success"`
	ToastError   time.Duration `yaml:"toast_error"`
	// TimeFormat is a Go time layout for comment timestamps.
	TimeFormat string `yaml:"time_format"`
	// Hide lists doublestar patterns of files left out of the file list.
	Hide    []string `yaml:"hide"`
	Sidebar bool     `yaml:"sidebar"`
	Icons   bool     `yaml:"icons"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:     "http://127.0.0.1:3000",
			Timeout: 30 * time.Second,
		},
		TUI: TUIConfig{
			Theme:        styles.DefaultTheme,
			MaxToasts:    5,
			ToastSuccess: 2 * time.Second,
			ToastError:   3 * time.Second,
			TimeFormat:   "2006-01-02 15:04",
			Sidebar:      true,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values that a config file may have cleared.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.MaxToasts == 0 {
		c.TUI.MaxToasts = defaults.TUI.MaxToasts
	}
	if c.TUI.ToastSuccess == 0 {
		c.TUI.ToastSuccess = defaults.TUI.ToastSuccess
	}
	if c.TUI.ToastError == 0 {
		c.TUI.ToastError = defaults.TUI.ToastError
	}
	if c.TUI.TimeFormat == "" {
		c.TUI.TimeFormat = defaults.TUI.TimeFormat
	}
}

// PrefsFile returns the path of the JSON preferences file.
func (c *Config) PrefsFile() string {
	return filepath.Join(c.DataDir, "prefs.json")
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "hrevu.log")
}
