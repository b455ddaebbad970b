// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/flatland/internal/dispatch"
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/panel"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`    // [logger] table
	Shortcuts ShortcutsConfig `toml:"shortcuts"` // Where the shortcut document lives and how it is matched
	Panel     PanelConfig     `toml:"panel"`     // Step sizes for panel actions
	Theme     ThemeConfig     `toml:"theme"`     // Optional theme override
}

// ShortcutsConfig controls loading and matching of the shortcut document.
type ShortcutsConfig struct {
	File          string `toml:"file"`            // Empty means <config dir>/shortcuts.toml
	Watch         bool   `toml:"watch"`           // Reload when the document changes
	Match         string `toml:"match"`           // "superset" or "exact"
	Dispatch      string `toml:"dispatch"`        // "first" or "all"
	ReloadDelayMS int    `toml:"reload_delay_ms"` // Debounce for file changes
}

// PanelConfig holds the per-action step sizes.
type PanelConfig struct {
	MoveStep   float64 `toml:"move_step"`
	RotateStep float64 `toml:"rotate_step"`
	ResizeStep int     `toml:"resize_step"`
}

// ThemeConfig selects the terminal theme.
type ThemeConfig struct {
	File string `toml:"file"` // TOML theme file; empty uses the built-in theme
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Shortcuts: ShortcutsConfig{
			Watch:         true,
			Match:         DefaultMatchPolicy,
			Dispatch:      DefaultDispatchPolicy,
			ReloadDelayMS: int(DefaultReloadDelay / time.Millisecond),
		},
		Panel: PanelConfig{
			MoveStep:   DefaultMoveStep,
			RotateStep: DefaultRotateStep,
			ResizeStep: DefaultResizeStep,
		},
	}
}

// Dir returns the per-user configuration directory for the application.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName), nil
}

// loadFromFile decodes a TOML file on top of cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, err := dispatch.ParseMatchPolicy(c.Shortcuts.Match); err != nil {
		c.Shortcuts.Match = defaults.Shortcuts.Match
	}
	if _, err := dispatch.ParsePolicy(c.Shortcuts.Dispatch); err != nil {
		c.Shortcuts.Dispatch = defaults.Shortcuts.Dispatch
	}
	if c.Shortcuts.ReloadDelayMS <= 0 {
		c.Shortcuts.ReloadDelayMS = defaults.Shortcuts.ReloadDelayMS
	}

	if c.Panel.MoveStep <= 0 {
		c.Panel.MoveStep = defaults.Panel.MoveStep
	}
	if c.Panel.RotateStep <= 0 {
		c.Panel.RotateStep = defaults.Panel.RotateStep
	}
	if c.Panel.ResizeStep <= 0 {
		c.Panel.ResizeStep = defaults.Panel.ResizeStep
	}

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration from defaults, the config file and flag
// overrides, in that order. configFilePath may be empty to use the default
// location. A file error is returned alongside a usable default-based config.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	dir, dirErr := Dir()
	effectivePath := configFilePath
	if effectivePath == "" && dirErr == nil {
		effectivePath = filepath.Join(dir, DefaultConfigFileName)
	}

	var loadErr error
	if effectivePath != "" {
		loadErr = loadFromFile(effectivePath, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()

	// Unset paths default to the config file's directory.
	base := dir
	if configFilePath != "" {
		base = filepath.Dir(configFilePath)
	}
	if cfg.Shortcuts.File == "" {
		cfg.Shortcuts.File = filepath.Join(base, DefaultShortcutsFileName)
	}
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = filepath.Join(base, DefaultLogFileName)
	}

	if loadErr == nil && effectivePath == "" {
		loadErr = dirErr
	}
	return cfg, loadErr
}

// MatchPolicy returns the validated match policy.
func (c *Config) MatchPolicy() dispatch.MatchPolicy {
	m, _ := dispatch.ParseMatchPolicy(c.Shortcuts.Match)
	return m
}

// DispatchPolicy returns the validated dispatch policy.
func (c *Config) DispatchPolicy() dispatch.Policy {
	p, _ := dispatch.ParsePolicy(c.Shortcuts.Dispatch)
	return p
}

// ReloadDelay returns the debounce for shortcut document changes.
func (c *Config) ReloadDelay() time.Duration {
	return time.Duration(c.Shortcuts.ReloadDelayMS) * time.Millisecond
}

// PanelSteps returns the panel step sizes.
func (c *Config) PanelSteps() panel.Steps {
	return panel.Steps{
		Move:   c.Panel.MoveStep,
		Rotate: c.Panel.RotateStep,
		Resize: c.Panel.ResizeStep,
	}
}
