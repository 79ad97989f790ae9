package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"arraylint/internal/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
tab_width = 4
max_passes = 10
extensions = [".php", ".inc"]

[output]
format = "json"
color = "never"

[cache]
enabled = true
dir = ".cache"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.TabWidth)
	require.Equal(t, 10, cfg.MaxPasses)
	require.Equal(t, []string{".php", ".inc"}, cfg.Extensions)
	require.Equal(t, config.FormatJSON, cfg.Output.Format)
	require.Equal(t, config.ColorNever, cfg.Output.Color)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, filepath.Join(dir, ".cache"), cfg.Cache.Dir)
	require.Equal(t, dir, cfg.Root())
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "tab_width = 2\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabWidth)
	require.Equal(t, 50, cfg.MaxPasses)
	require.Equal(t, []string{".php"}, cfg.Extensions)
	require.Equal(t, config.FormatPretty, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "tab_width = \n", "failed to parse TOML"},
		{"unknown key", "tabwidth = 4\n", "unknown keys: tabwidth"},
		{"negative tab width", "tab_width = -1\n", "tab_width must not be negative"},
		{"zero passes", "max_passes = 0\n", "max_passes must be at least 1"},
		{"format", "[output]\nformat = \"xml\"\n", "[output].format must be one of"},
		{"color", "[output]\ncolor = \"sometimes\"\n", "[output].color must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, t.TempDir(), tt.body))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "tab_width = 4\n")
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "a.php")
	require.NoError(t, os.WriteFile(file, []byte("<?php\n"), 0o644))

	for _, target := range []string{nested, file} {
		cfg, err := config.Discover(target)
		require.NoError(t, err)
		require.Equal(t, path, cfg.Path)
		require.Equal(t, 4, cfg.TabWidth)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	found, ok, err := config.Find(t.TempDir())
	require.NoError(t, err)
	if ok {
		t.Skipf("a %s above the temp dir shadows the defaults: %s", config.FileName, found)
	}
	cfg, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, cfg.Path)
	require.Equal(t, config.Default(), *cfg)
}
