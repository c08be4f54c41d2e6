// Package config loads the period picker configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/periodpicker/internal/period"
)

const appName = "periodpicker"

type Config struct {
	PeriodType  string `koanf:"period_type"` // "month" or "quarter" (default: "month")
	Restriction string `koanf:"restriction"` // fixed period type, empty allows switching

	Bounds   *period.DateRange `koanf:"bounds"`   // periods offered by the grid
	Selected *period.DateRange `koanf:"selected"` // initially selected range

	// Presets replace the built-in presets when present.
	Presets []PresetConfig `koanf:"presets"`
}

// PresetConfig is a preset entry. Either Relative or both Start and End must
// be set.
type PresetConfig struct {
	Label    string `koanf:"label"`
	Relative string `koanf:"relative"` // see period.RelativeKinds
	Start    string `koanf:"start"`
	End      string `koanf:"end"`
}

// Load reads the config files returned by getConfigPaths. Missing files are
// skipped; later files override earlier ones.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given config files in order (last wins).
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		path = expandPath(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/periodpicker/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
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

// GetPeriodType returns the default period type, month when unset.
func (c *Config) GetPeriodType() (period.Type, error) {
	if c.PeriodType == "" {
		return period.Month, nil
	}
	return selectableType("period_type", c.PeriodType)
}

// GetRestriction returns the fixed period type, or the empty Type when
// switching is allowed.
func (c *Config) GetRestriction() (period.Type, error) {
	if c.Restriction == "" {
		return "", nil
	}
	return selectableType("restriction", c.Restriction)
}

func selectableType(field, s string) (period.Type, error) {
	t, err := period.ParseType(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	if t != period.Month && t != period.Quarter {
		return "", fmt.Errorf("%s: %q cannot be selected, use month or quarter", field, s)
	}
	return t, nil
}

// GetBounds returns the configured grid bounds, or nil for the default.
func (c *Config) GetBounds() (*period.DateRange, error) {
	if c.Bounds == nil || (c.Bounds.Start == "" && c.Bounds.End == "") {
		return nil, nil
	}
	if err := c.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}
	b := *c.Bounds
	return &b, nil
}

// GetSelected returns the initially selected range, or nil when unset.
func (c *Config) GetSelected() *period.DateRange {
	if c.Selected == nil || (c.Selected.Start == "" && c.Selected.End == "") {
		return nil
	}
	s := *c.Selected
	return &s
}

// GetPresets resolves the configured presets against now. Without any
// configured preset the built-in list is returned. Invalid entries are
// skipped and reported in the returned error.
func (c *Config) GetPresets(now time.Time) ([]period.Preset, error) {
	if len(c.Presets) == 0 {
		return period.DefaultPresets(now), nil
	}

	presets := make([]period.Preset, 0, len(c.Presets))
	var errs []error
	for i, pc := range c.Presets {
		p, err := pc.resolve(now)
		if err != nil {
			errs = append(errs, fmt.Errorf("presets[%d]: %w", i, err))
			continue
		}
		presets = append(presets, p)
	}
	return presets, errors.Join(errs...)
}

func (pc PresetConfig) resolve(now time.Time) (period.Preset, error) {
	if pc.Label == "" {
		return period.Preset{}, errors.New("label is required")
	}
	explicit := pc.Start != "" || pc.End != ""
	switch {
	case pc.Relative != "" && explicit:
		return period.Preset{}, fmt.Errorf("%q: relative and start/end are exclusive", pc.Label)
	case pc.Relative != "":
		return period.RelativePreset(pc.Label, pc.Relative, now)
	}

	r := period.DateRange{Start: pc.Start, End: pc.End}
	if err := r.Validate(); err != nil {
		return period.Preset{}, fmt.Errorf("%q: %w", pc.Label, err)
	}
	return period.Preset{Label: pc.Label, Range: r}, nil
}
