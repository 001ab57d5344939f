package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/styles"
)

// Validate checks that the configuration is valid. All problems are reported
// together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("server.url", c.Server.URL, validServerURL),
		criterio.Run("locale", c.Locale, validLocale),
		criterio.Run("tui.theme", c.TUI.Theme, validTheme),
		criterio.Run("tui.time_format", c.TUI.TimeFormat, notEmpty),
		c.validateLimits(),
		c.validateHidePatterns(),
	)
}

// validateLimits checks durations and counts that must be positive.
func (c *Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder
	for field, d := range map[string]time.Duration{
		"server.timeout":    c.Server.Timeout,
		"tui.toast_success": c.TUI.ToastSuccess,
		"tui.toast_error":   c.TUI.ToastError,
	} {
		if d <= 0 {
			errs = errs.Append(field, fmt.Errorf("must be greater than zero, got %s", d))
		}
	}
	if c.TUI.MaxToasts < 1 {
		errs = errs.Append("tui.max_toasts", fmt.Errorf("must be at least 1, got %d", c.TUI.MaxToasts))
	}
	return errs.ToError()
}

func (c *Config) validateHidePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.TUI.Hide {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("tui.hide[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}
	return errs.ToError()
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func validServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}

func validLocale(locale string) error {
	switch i18n.Lang(locale) {
	case "", i18n.English, i18n.Chinese:
		return nil
	default:
		return fmt.Errorf("unsupported locale %q (want %q or %q)", locale, i18n.English, i18n.Chinese)
	}
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}
