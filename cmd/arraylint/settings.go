package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arraylint/internal/config"
	"arraylint/internal/driver"
)

// runSettings is the configuration file merged with command-line flags.
type runSettings struct {
	cfg     *config.Config
	dir     driver.DirOptions
	format  string
	color   bool
	quiet   bool
	timings bool
	ui      uiMode
}

func loadConfig(cmd *cobra.Command, target string) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(target)
}

func resolveSettings(cmd *cobra.Command, target string) (*runSettings, error) {
	cfg, err := loadConfig(cmd, target)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()

	if flags.Changed("tab-width") {
		if cfg.TabWidth, err = flags.GetInt("tab-width"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-diagnostics") {
		if cfg.Output.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("max-passes") != nil && flags.Changed("max-passes") {
		if cfg.MaxPasses, err = flags.GetInt("max-passes"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
		cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	}
	if flags.Changed("color") {
		value, err := flags.GetString("color")
		if err != nil {
			return nil, err
		}
		if cfg.Output.Color, err = readColorFlag(value); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &runSettings{cfg: cfg, format: cfg.Output.Format}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}
	s.color = useColor(cfg.Output.Color)
	if flags.Lookup("ui") != nil {
		value, err := flags.GetString("ui")
		if err != nil {
			return nil, err
		}
		if s.ui, err = readUIMode(value); err != nil {
			return nil, err
		}
	} else {
		s.ui = uiModeOff
	}

	s.dir = driver.DirOptions{
		Options: driver.Options{
			TabWidth:       cfg.TabWidth,
			MaxPasses:      cfg.MaxPasses,
			MaxDiagnostics: cfg.Output.MaxDiagnostics,
			EnableTimings:  s.timings,
		},
		Extensions: cfg.Extensions,
		Jobs:       cfg.Jobs,
	}

	noCache := false
	if flags.Lookup("no-cache") != nil {
		if noCache, err = flags.GetBool("no-cache"); err != nil {
			return nil, err
		}
	}
	if cfg.Cache.Enabled && !noCache {
		cache, err := driver.OpenDiskCache("arraylint", cfg.Cache.Dir)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		clear := false
		if flags.Lookup("clear-cache") != nil {
			if clear, err = flags.GetBool("clear-cache"); err != nil {
				return nil, err
			}
		}
		if clear {
			if err := cache.DropAll(); err != nil {
				return nil, fmt.Errorf("clear cache: %w", err)
			}
		}
		s.dir.Cache = cache
	}
	return s, nil
}

func readColorFlag(value string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return config.ColorAuto, nil
	case "on", "always":
		return config.ColorAlways, nil
	case "off", "never":
		return config.ColorNever, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor && isTerminal(os.Stdout)
	}
}
