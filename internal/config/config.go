// Package config holds all shopfront configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all shopfront configuration.
type Config struct {
	// UI settings
	UI UIConfig `yaml:"ui"`

	// Panel behavior
	Panels PanelsConfig `yaml:"panels"`

	// Catalog source
	Catalog CatalogConfig `yaml:"catalog"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig configures the viewport behavior.
type UIConfig struct {
	// MobileBreakpoint is the terminal width below which the storefront
	// renders in mobile mode.
	MobileBreakpoint int `yaml:"mobile_breakpoint"`
	// ResizeDebounce coalesces resize bursts, e.g. "150ms".
	ResizeDebounce string `yaml:"resize_debounce"`
}

// PanelsConfig configures the panel state machine.
type PanelsConfig struct {
	// HoverCloseDelay is the debounce between hover-leave and close.
	HoverCloseDelay string `yaml:"hover_close_delay"`
	// ClosingDelay is the cosmetic exit-transition window.
	ClosingDelay string `yaml:"closing_delay"`
	// ToastDuration is how long a toast stays visible.
	ToastDuration string `yaml:"toast_duration"`
	// AutoOpenCartOnAdd opens the cart panel after a successful add.
	// Off by default.
	AutoOpenCartOnAdd bool `yaml:"auto_open_cart_on_add"`
}

// CatalogConfig configures where the catalog JSON is fetched from.
type CatalogConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LoggingConfig configures diagnostics.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			MobileBreakpoint: 96,
			ResizeDebounce:   "150ms",
		},
		Panels: PanelsConfig{
			HoverCloseDelay:   "200ms",
			ClosingDelay:      "200ms",
			ToastDuration:     "2500ms",
			AutoOpenCartOnAdd: false,
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:8477",
		},
		Logging: LoggingConfig{},
	}
}

// Load reads a config file, falling back to defaults for anything unset.
// A missing file is not an error: defaults plus env overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the config to disk, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHOPFRONT_CATALOG_URL"); v != "" {
		c.Catalog.BaseURL = v
	}
	if v := os.Getenv("SHOPFRONT_BREAKPOINT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.UI.MobileBreakpoint = n
		}
	}
	if v := os.Getenv("SHOPFRONT_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = b
		}
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.UI.MobileBreakpoint <= 0 {
		c.UI.MobileBreakpoint = def.UI.MobileBreakpoint
	}
	if c.UI.ResizeDebounce == "" {
		c.UI.ResizeDebounce = def.UI.ResizeDebounce
	}
	if c.Panels.HoverCloseDelay == "" {
		c.Panels.HoverCloseDelay = def.Panels.HoverCloseDelay
	}
	if c.Panels.ClosingDelay == "" {
		c.Panels.ClosingDelay = def.Panels.ClosingDelay
	}
	if c.Panels.ToastDuration == "" {
		c.Panels.ToastDuration = def.Panels.ToastDuration
	}
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = def.Catalog.BaseURL
	}
}

// duration parses a duration string, returning the fallback on bad input.
func duration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// HoverCloseDelayDuration returns the parsed hover-close debounce.
func (c *Config) HoverCloseDelayDuration() time.Duration {
	return duration(c.Panels.HoverCloseDelay, 200*time.Millisecond)
}

// ClosingDelayDuration returns the parsed closing window.
func (c *Config) ClosingDelayDuration() time.Duration {
	return duration(c.Panels.ClosingDelay, 200*time.Millisecond)
}

// ToastDurationDuration returns the parsed toast lifetime.
func (c *Config) ToastDurationDuration() time.Duration {
	return duration(c.Panels.ToastDuration, 2500*time.Millisecond)
}

// ResizeDebounceDuration returns the parsed resize debounce.
func (c *Config) ResizeDebounceDuration() time.Duration {
	return duration(c.UI.ResizeDebounce, 150*time.Millisecond)
}
