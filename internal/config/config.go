// Package config loads optional blockies settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikolasavic/blockies/internal/blockie"
	"github.com/nikolasavic/blockies/internal/palette"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all blockies settings.
type Config struct {
	// Preset used when none is given on the command line.
	Preset string `yaml:"preset"`

	// Colors replace derived colors.
	Colors ColorsConfig `yaml:"colors"`

	// Vanity seeds rendered by --test.
	Vanity []string `yaml:"vanity"`

	Logging LoggingConfig `yaml:"logging"`
}

// ColorsConfig holds optional HSL overrides.
type ColorsConfig struct {
	Color     *palette.Color `yaml:"color,omitempty"`
	BgColor   *palette.Color `yaml:"bgcolor,omitempty"`
	SpotColor *palette.Color `yaml:"spotcolor,omitempty"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultVanity is rendered by --test when the config has no vanity list.
var DefaultVanity = []string{
	"0xfadc801b8b7ff0030f36ba700359d30bb12786e4",
	"0xfadc801b8b7ff0030f36ba700359d30bb12786e5",
	"0x0000000000000000000000000000000000000000",
	"0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	"0xcafebabecafebabecafebabecafebabecafebabe",
	"0x1234567890abcdef1234567890abcdef12345678",
	"cafebabe",
	"blockies",
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Preset: string(blockie.DefaultPreset),
		Vanity: append([]string(nil), DefaultVanity...),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Vanity) == 0 {
		cfg.Vanity = append([]string(nil), DefaultVanity...)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve finds and loads the config. When nothing is found the defaults,
// with environment overrides, are returned.
func Resolve(flagPath string) (*Config, string, DiscoveryMethod, error) {
	path, method, err := Find(flagPath)
	if err != nil {
		return nil, "", method, err
	}
	if method == MethodNone {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, "", method, err
		}
		return cfg, "", method, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, method, err
	}
	return cfg, path, method, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv(EnvPreset); p != "" {
		c.Preset = p
	}
}

// Validate checks presets, log settings and color overrides.
func (c *Config) Validate() error {
	if _, err := blockie.ParsePreset(c.Preset); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	for _, o := range []struct {
		name  string
		color *palette.Color
	}{
		{"color", c.Colors.Color},
		{"bgcolor", c.Colors.BgColor},
		{"spotcolor", c.Colors.SpotColor},
	} {
		if o.color == nil {
			continue
		}
		if err := o.color.Validate(); err != nil {
			return fmt.Errorf("%w: colors.%s: %v", ErrInvalid, o.name, err)
		}
	}
	for i, seed := range c.Vanity {
		if seed == "" {
			return fmt.Errorf("%w: vanity[%d] is empty", ErrInvalid, i)
		}
	}
	return nil
}

// PresetValue returns the configured preset. It is valid after Validate.
func (c *Config) PresetValue() blockie.Preset {
	p, _ := blockie.ParsePreset(c.Preset)
	return p
}

// Options returns render options carrying the configured color overrides.
func (c *Config) Options() blockie.Options {
	return blockie.Options{
		Background: c.Colors.BgColor,
		Main:       c.Colors.Color,
		Spot:       c.Colors.SpotColor,
	}
}
