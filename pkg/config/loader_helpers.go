package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// loadAndMerge loads a YAML file and merges it into the config. A missing
// file returns the os error unchanged so callers can test os.IsNotExist.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing YAML").WithContext("path", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing YAML").WithContext("path", path)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Strings and durations win when
// non-zero; booleans win only when the file names them.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
	if override.UI.DoubleClick != 0 {
		base.UI.DoubleClick = override.UI.DoubleClick
	}
	if override.UI.CursorStyle != "" {
		base.UI.CursorStyle = override.UI.CursorStyle
	}
	if boolFieldSet(raw, "ui", "mouse_cursor") {
		base.UI.MouseCursor = override.UI.MouseCursor
	}
	if len(override.UI.Colors) > 0 {
		if base.UI.Colors == nil {
			base.UI.Colors = make(map[string]theme.PairSpec, len(override.UI.Colors))
		}
		for k, v := range override.UI.Colors {
			base.UI.Colors[k] = v
		}
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if boolFieldSet(raw, "metrics", "enabled") {
		base.Metrics.Enabled = override.Metrics.Enabled
	}
	if override.Metrics.Addr != "" {
		base.Metrics.Addr = override.Metrics.Addr
	}

	if boolFieldSet(raw, "tracing", "enabled") {
		base.Tracing.Enabled = override.Tracing.Enabled
	}
}

func boolFieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}
