// Package config handles TOML configuration loading with sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/setevik/bytesize"
)

// Config is the top-level configuration for the bytesize CLI.
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls the default rendering of converted sizes.
type OutputConfig struct {
	System    string `toml:"system"` // "iec" or "si"
	Precision int    `toml:"precision"`
	Short     bool   `toml:"short"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			System:    "iec",
			Precision: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "bytesize", "config.toml")
}

// Load reads configuration from the given path, falling back to defaults
// for any unset fields. If the file does not exist, returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Output.System {
	case "iec", "si":
	default:
		return fmt.Errorf("unknown output system %q (want \"iec\" or \"si\")", c.Output.System)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("negative output precision %d", c.Output.Precision)
	}
	return nil
}

// Spec returns the format spec described by the output section.
func (c *Config) Spec() bytesize.Spec {
	spec := bytesize.DefaultSpec()
	if c.Output.System == "si" {
		spec.System = bytesize.SI
	}
	spec.Precision = c.Output.Precision
	spec.Short = c.Output.Short
	return spec
}
