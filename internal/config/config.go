// Package config loads .arraylint.toml.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats accepted in [output].format.
const (
	FormatPretty = "pretty"
	FormatShort  = "short"
	FormatJSON   = "json"
	FormatSarif  = "sarif"
)

// Color modes accepted in [output].color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the decoded configuration file.
type Config struct {
	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-"`

	TabWidth   int      `toml:"tab_width"`
	MaxPasses  int      `toml:"max_passes"`
	Extensions []string `toml:"extensions"`
	Jobs       int      `toml:"jobs"`

	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	// MaxDiagnostics caps diagnostics per file; 0 means unlimited.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		MaxPasses:  50,
		Extensions: []string{".php"},
		Output: OutputConfig{
			Format: FormatPretty,
			Color:  ColorAuto,
		},
	}
}

// Root returns the directory holding the configuration file, or "" for
// defaults.
func (c *Config) Root() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// Load decodes path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.TabWidth < 0 {
		return fmt.Errorf("tab_width must not be negative, got %d", c.TabWidth)
	}
	if c.MaxPasses < 1 {
		return fmt.Errorf("max_passes must be at least 1, got %d", c.MaxPasses)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must not be negative, got %d", c.Output.MaxDiagnostics)
	}
	switch c.Output.Format {
	case FormatPretty, FormatShort, FormatJSON, FormatSarif:
	default:
		return fmt.Errorf("[output].format must be one of pretty, short, json, sarif; got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("[output].color must be one of auto, always, never; got %q", c.Output.Color)
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("extensions must not contain empty entries")
		}
	}
	return nil
}
