// Package config loads textmode settings from YAML files and the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/logging"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// MaxDoubleClick is the longest accepted double-click window.
const MaxDoubleClick = 5 * time.Second

// Config is the complete textmode configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme       string                    `yaml:"theme"`
	DoubleClick time.Duration             `yaml:"double_click"`
	CursorStyle string                    `yaml:"cursor_style"`
	MouseCursor bool                      `yaml:"mouse_cursor"`
	Colors      map[string]theme.PairSpec `yaml:"colors"`
}

// LoggingConfig selects the log level and file. An empty file discards logs.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       theme.ClassicBlueName,
			DoubleClick: 400 * time.Millisecond,
			CursorStyle: screen.DefaultCursorStyle.String(),
			MouseCursor: true,
		},
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Addr: "127.0.0.1:9464"},
	}
}

// Load applies, in order: defaults, ~/.textmode/config.yaml,
// ./.textmode/config.yaml and TEXTMODE_* variables, then validates.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := UserConfigPath(); path != "" {
		if err := loadAndMerge(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "loading user config").
				WithContext("path", path)
		}
	}

	if err := loadAndMerge(cfg, ProjectConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "loading project config")
	}

	return finish(cfg)
}

// LoadFromPath loads defaults, then path, then the environment.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadAndMerge(cfg, path); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, fmt.Sprintf("loading config from %s", path))
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies TEXTMODE_* variables.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TEXTMODE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TEXTMODE_DOUBLE_CLICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "TEXTMODE_DOUBLE_CLICK")
		}
		cfg.UI.DoubleClick = d
	}
	if v := os.Getenv("TEXTMODE_CURSOR_STYLE"); v != "" {
		cfg.UI.CursorStyle = v
	}
	if val, ok := envBool("TEXTMODE_MOUSE_CURSOR"); ok {
		cfg.UI.MouseCursor = val
	}
	if v := os.Getenv("TEXTMODE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TEXTMODE_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("TEXTMODE_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if val, ok := envBool("TEXTMODE_METRICS"); ok {
		cfg.Metrics.Enabled = val
	}
	if val, ok := envBool("TEXTMODE_TRACING"); ok {
		cfg.Tracing.Enabled = val
	}
	return nil
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if _, err := c.Theme(); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid ui.theme or ui.colors")
	}
	if c.UI.DoubleClick <= 0 || c.UI.DoubleClick > MaxDoubleClick {
		return errors.New(errors.ErrCodeConfigInvalid, "ui.double_click must be in (0, 5s]").
			WithContext("double_click", c.UI.DoubleClick.String())
	}
	if _, err := screen.ParseCursorStyle(c.UI.CursorStyle); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid ui.cursor_style")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid logging.level")
	}
	if c.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "metrics.addr must be host:port")
		}
	}
	return nil
}

// Theme resolves the preset named by ui.theme with ui.colors applied.
func (c *Config) Theme() (theme.Theme, error) {
	th, err := theme.ByName(c.UI.Theme)
	if err != nil {
		return theme.Theme{}, err
	}
	if len(c.UI.Colors) == 0 {
		return th, nil
	}
	return th.WithOverrides(c.UI.Colors)
}

// CursorStyle returns the parsed cursor style, or the default.
func (c *Config) CursorStyle() screen.CursorStyle {
	s, _ := screen.ParseCursorStyle(c.UI.CursorStyle)
	return s
}

// LogLevel returns the parsed log level, or info.
func (c *Config) LogLevel() slog.Level {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}

// LogFile returns logging.file with a leading ~ expanded.
func (c *Config) LogFile() string {
	return expandHomeDir(c.Logging.File)
}

// UserConfigPath returns ~/.textmode/config.yaml, or "" without a home dir.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".textmode", "config.yaml")
}

// ProjectConfigPath returns ./.textmode/config.yaml.
func ProjectConfigPath() string {
	return filepath.Join(".", ".textmode", "config.yaml")
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
