// Package config loads govol settings from TOML files and applies defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/govol/pkg/units"
	"golang.org/x/text/language"
)

// FileName is the config file looked up in the working directory
const FileName = "govol.toml"

// SystemAuto takes the unit of the loaded file when it declares one and
// falls back to metric otherwise.
const SystemAuto = "auto"

// ErrInvalidConfig is returned when a setting has an unusable value
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings
type Config struct {
	Units  Units  `toml:"units"`
	Output Output `toml:"output"`
	Watch  Watch  `toml:"watch"`
}

// Units controls how scene units map to real lengths
type Units struct {
	System      string  `toml:"system"`
	ScaleLength float64 `toml:"scale_length"`
	Display     string  `toml:"display"`
}

// Output controls result formatting
type Output struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
	Locale    string `toml:"locale"`
}

// Watch controls watch mode
type Watch struct {
	Debounce string `toml:"debounce"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Units: Units{
			System:      SystemAuto,
			ScaleLength: 1,
		},
		Output: Output{
			Format:    "text",
			Precision: 6,
			Locale:    "en",
		},
		Watch: Watch{
			Debounce: "500ms",
		},
	}
}

// Load returns the defaults overlaid with a config file. An explicit path
// must exist. With an empty path the working directory and the user config
// directory are searched, and no file at all is fine.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = find()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// find returns the first existing default config file
func find() string {
	candidates := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "govol", "config.toml"))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// Validate checks every setting
func (c *Config) Validate() error {
	if c.Units.System != SystemAuto {
		if _, err := units.ParseSystem(c.Units.System); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.Units.ScaleLength <= 0 || math.IsNaN(c.Units.ScaleLength) || math.IsInf(c.Units.ScaleLength, 0) {
		return fmt.Errorf("%w: scale_length must be positive, got %v", ErrInvalidConfig, c.Units.ScaleLength)
	}
	if c.Units.Display != "" {
		if _, err := units.Parse(c.Units.Display); err != nil {
			return fmt.Errorf("%w: display: %v", ErrInvalidConfig, err)
		}
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown output format %q (expected text, json or yaml)", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 15 {
		return fmt.Errorf("%w: precision must be between 0 and 15, got %d", ErrInvalidConfig, c.Output.Precision)
	}
	if _, err := language.Parse(c.Output.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Output.Locale, err)
	}

	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	return nil
}

// DebounceDuration parses the watch debounce interval
func (c *Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("%w: debounce: %v", ErrInvalidConfig, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: debounce must not be negative", ErrInvalidConfig)
	}
	return d, nil
}

// Language returns the locale used for number formatting
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Output.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Scene resolves the unit system. native is the unit declared by the loaded
// file, or nil when the file has none; it only matters for the auto system.
func (c *Config) Scene(native *units.Unit) (units.Scene, error) {
	if c.Units.System == SystemAuto {
		if native != nil {
			return units.Scene{System: units.SystemMetric, ScaleLength: native.Meters}, nil
		}
		return units.Scene{System: units.SystemMetric, ScaleLength: c.Units.ScaleLength}, nil
	}

	system, err := units.ParseSystem(c.Units.System)
	if err != nil {
		return units.Scene{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return units.Scene{System: system, ScaleLength: c.Units.ScaleLength}, nil
}

// Measure is the resolved factor from scene units to reported lengths
type Measure struct {
	Scene     units.Scene
	UnitScale float64 // reported length of one scene unit
	Symbol    string  // empty for unitless scenes
}

// Resolve combines the unit system and the display unit. Results are shown
// in the display unit, or in the base unit of the system when none is set.
// A scene without a unit system is never converted; a display unit then
// only labels the values.
func (c *Config) Resolve(native *units.Unit) (Measure, error) {
	scene, err := c.Scene(native)
	if err != nil {
		return Measure{}, err
	}

	var display *units.Unit
	if c.Units.Display != "" {
		u, err := units.Parse(c.Units.Display)
		if err != nil {
			return Measure{}, fmt.Errorf("%w: display: %v", ErrInvalidConfig, err)
		}
		display = &u
	}

	if scene.System == units.SystemNone {
		m := Measure{Scene: scene, UnitScale: 1}
		if display != nil {
			m.Symbol = display.Symbol
		}
		return m, nil
	}

	target := scene.BaseUnit()
	if display != nil {
		target = *display
	} else if native != nil && c.Units.System == SystemAuto {
		target = *native
	}

	scale, err := scene.UnitScaleIn(target)
	if err != nil {
		return Measure{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return Measure{Scene: scene, UnitScale: scale, Symbol: target.Symbol}, nil
}
