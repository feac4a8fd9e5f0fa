package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for netinv.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Inventory InventoryConfig `yaml:"inventory"`
	Logging   LoggingConfig   `yaml:"logging"`
	UI        UIConfig        `yaml:"ui"`
}

// InventoryConfig contains settings for the device inventory file.
type InventoryConfig struct {
	// Path is the inventory file loaded on startup and written by save.
	Path string `yaml:"path"`

	// Autoload loads the inventory file automatically on startup.
	// A missing file is treated as an empty inventory, not an error.
	Autoload bool `yaml:"autoload"`

	// AutosaveOnQuit writes the inventory back to Path when the
	// application exits normally.
	AutosaveOnQuit bool `yaml:"autosave_on_quit"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Brands is the suggestion list offered in the add/edit form.
	Brands []string `yaml:"brands"`

	// Sort is the initial list ordering: none, kind, or status.
	Sort string `yaml:"sort"`
}

// Load reads configuration from a YAML file and applies environment variable
// overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// A missing config file is not an error; the tool must run with zero setup,
// so defaults apply. Environment variables follow the pattern NETINV_SECTION_KEY,
// for example NETINV_INVENTORY_PATH or NETINV_LOG_LEVEL.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with the built-in defaults, without reading any
// file or environment variable.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Inventory: InventoryConfig{
			Path:     "./data/devices.txt",
			Autoload: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			// The TUI owns the terminal; logs are discarded unless
			// explicitly pointed at a stream.
			Output: "discard",
		},
		UI: UIConfig{
			Brands: []string{
				"Cisco", "Palo Alto", "Huawei", "Juniper", "Dell",
				"HP", "Arista", "Fortinet", "Check Point",
			},
			Sort: "none",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: NETINV_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NETINV_INVENTORY_PATH"); v != "" {
		cfg.Inventory.Path = v
	}
	if v := os.Getenv("NETINV_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NETINV_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("NETINV_LOG_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
}

// Valid enumerations for Validate.
var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[string]bool{"json": true, "text": true}
	validOutputs = map[string]bool{"stdout": true, "stderr": true, "discard": true}
	validSorts   = map[string]bool{"none": true, "kind": true, "status": true}
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Inventory.Path == "" {
		errs = append(errs, "inventory.path is required")
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level))
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format %q must be json or text", c.Logging.Format))
	}
	if !validOutputs[strings.ToLower(c.Logging.Output)] {
		errs = append(errs, fmt.Sprintf("logging.output %q must be stdout, stderr, or discard", c.Logging.Output))
	}

	if !validSorts[strings.ToLower(c.UI.Sort)] {
		errs = append(errs, fmt.Sprintf("ui.sort %q must be none, kind, or status", c.UI.Sort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
