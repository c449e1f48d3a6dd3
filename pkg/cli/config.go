package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"univariate/internal/config"
)

// UserConfig represents ~/.univariate/config.yaml. Unset keys leave the
// built-in defaults in place.
type UserConfig struct {
	OutputDir     string   `yaml:"output-dir,omitempty"`
	MaxCategories *int     `yaml:"max-categories,omitempty"`
	MaxBins       *int     `yaml:"max-bins,omitempty"`
	Format        string   `yaml:"format,omitempty"`
	Width         *float64 `yaml:"width,omitempty"`
	Height        *float64 `yaml:"height,omitempty"`
	Delimiter     string   `yaml:"delimiter,omitempty"`
	NullStrings   []string `yaml:"null-strings,omitempty"`
	Output        string   `yaml:"output,omitempty"`
	Color         string   `yaml:"color,omitempty"`
	LogLevel      string   `yaml:"log-level,omitempty"`
	LogFormat     string   `yaml:"log-format,omitempty"`
}

// Apply copies every key set in the file onto cfg.
func (u *UserConfig) Apply(cfg *config.Config) {
	if u.OutputDir != "" {
		cfg.OutputDir = u.OutputDir
	}
	if u.MaxCategories != nil {
		cfg.MaxCategories = *u.MaxCategories
	}
	if u.MaxBins != nil {
		cfg.MaxBins = *u.MaxBins
	}
	if u.Format != "" {
		cfg.PlotFormat = u.Format
	}
	if u.Width != nil {
		cfg.PlotWidth = *u.Width
	}
	if u.Height != nil {
		cfg.PlotHeight = *u.Height
	}
	if u.Delimiter != "" {
		cfg.Delimiter = u.Delimiter
	}
	if u.NullStrings != nil {
		cfg.NullStrings = u.NullStrings
	}
	if u.Output != "" {
		cfg.Output = u.Output
	}
	if u.Color != "" {
		cfg.Color = u.Color
	}
	if u.LogLevel != "" {
		cfg.LogLevel = u.LogLevel
	}
	if u.LogFormat != "" {
		cfg.LogFormat = u.LogFormat
	}
}

// ConfigDir returns the path to ~/.univariate/.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".univariate")
}

// ConfigPath returns the path to ~/.univariate/config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadUserConfig reads the YAML config file at path.
func LoadUserConfig(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from --config
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
