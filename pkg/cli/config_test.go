package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univariate/internal/config"
)

func TestLoadUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`output-dir: charts
max-categories: 0
format: svg
width: 6.5
null-strings: ["", "-"]
color: never
`), 0o600))

	file, err := LoadUserConfig(path)
	require.NoError(t, err)

	cfg := config.Default()
	file.Apply(cfg)

	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, 0, cfg.MaxCategories, "explicit zero overrides the default")
	assert.Equal(t, 20, cfg.MaxBins, "unset keys keep defaults")
	assert.Equal(t, "svg", cfg.PlotFormat)
	assert.InDelta(t, 6.5, cfg.PlotWidth, 1e-9)
	assert.InDelta(t, 8.0, cfg.PlotHeight, 1e-9)
	assert.Equal(t, []string{"", "-"}, cfg.NullStrings)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, config.OutputText, cfg.Output)
}

func TestLoadUserConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadUserConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("max-bins: [1, 2"), 0o600))
	_, err = LoadUserConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".univariate", "config.yaml"), ConfigPath())
}
