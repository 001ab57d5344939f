package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/hrevu/internal/client"
	"github.com/colonyops/hrevu/internal/core/config"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/store/jsonfile"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	ServerURL  string
	Locale     string
	JSON       bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Loc is resolved once from --locale, the config file, and the environment
	Loc i18n.Localizer
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hrevu", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hrevu")
}

// Apply merges command line overrides into the loaded config and resolves
// the locale. The config is validated again afterwards.
func (f *Flags) Apply(cfg *config.Config) error {
	if f.ServerURL != "" {
		cfg.Server.URL = f.ServerURL
	}
	if f.Locale != "" {
		cfg.Locale = f.Locale
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	f.Config = cfg
	f.Loc = i18n.New(i18n.Detect(cfg.Locale, os.Getenv))
	return nil
}

func (f *Flags) client() (*client.Client, error) {
	return client.New(f.Config.Server.URL, f.Config.Server.Timeout)
}

func (f *Flags) prefs() *jsonfile.PrefsStore {
	return jsonfile.NewPrefsStore(f.Config.PrefsFile())
}

// Theme returns the stored theme preference, falling back to the config.
func (f *Flags) Theme() string {
	if theme, ok := f.prefs().Theme(); ok {
		return theme
	}
	return f.Config.TUI.Theme
}
