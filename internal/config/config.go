// Package config handles run configuration and environment loading.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"univariate/internal/csvsql"
	"univariate/internal/domain"
)

// Output modes for console summaries.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Color modes for console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultNullStrings are the cell values read as missing, matching the
// usual spreadsheet and dataframe conventions.
var DefaultNullStrings = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

var plotFormats = map[string]bool{"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true}

// Config holds the configuration for one analysis run.
type Config struct {
	OutputDir     string   // directory receiving plot images (default "plots")
	MaxCategories int      // categorical plots are skipped above this many distinct values (default 50)
	MaxBins       int      // upper bound on histogram bins for numeric columns (default 20)
	PlotFormat    string   // image format: png, svg, pdf, jpg (default "png")
	PlotWidth     float64  // image width in inches (default 12)
	PlotHeight    float64  // image height in inches (default 8)
	Delimiter     string   // field delimiter; empty means sniff it
	NullStrings   []string // cell values treated as missing
	Output        string   // console output: text or json (default "text")
	Color         string   // color mode: auto, always, never (default "auto")
	LogLevel      string   // log level: debug, info, warn, error (default "warn")
	LogFormat     string   // log format: text or json (default "text")

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		OutputDir:     "plots",
		MaxCategories: 50,
		MaxBins:       20,
		PlotFormat:    "png",
		PlotWidth:     12,
		PlotHeight:    8,
		NullStrings:   append([]string(nil), DefaultNullStrings...),
		Output:        OutputText,
		Color:         ColorAuto,
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds a structured logger writing to w in the configured format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LoadFromEnv returns the default configuration overridden by environment
// variables, validated.
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from UNIVARIATE_* environment variables.
// Unset or empty variables leave the current value untouched.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("UNIVARIATE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("UNIVARIATE_MAX_CATEGORIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid UNIVARIATE_MAX_CATEGORIES: %w", err)
		}
		c.MaxCategories = n
	}
	if v := os.Getenv("UNIVARIATE_MAX_BINS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid UNIVARIATE_MAX_BINS: %w", err)
		}
		c.MaxBins = n
	}
	if v := os.Getenv("UNIVARIATE_PLOT_FORMAT"); v != "" {
		c.PlotFormat = strings.ToLower(v)
	}
	if v := os.Getenv("UNIVARIATE_PLOT_WIDTH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid UNIVARIATE_PLOT_WIDTH: %w", err)
		}
		c.PlotWidth = f
	}
	if v := os.Getenv("UNIVARIATE_PLOT_HEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid UNIVARIATE_PLOT_HEIGHT: %w", err)
		}
		c.PlotHeight = f
	}
	if v := os.Getenv("UNIVARIATE_DELIMITER"); v != "" {
		c.Delimiter = v
	}
	if v := os.Getenv("UNIVARIATE_NULL_STRINGS"); v != "" {
		values := strings.Split(v, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		c.NullStrings = values
	}
	if v := os.Getenv("UNIVARIATE_OUTPUT"); v != "" {
		c.Output = strings.ToLower(v)
	}
	if v := os.Getenv("UNIVARIATE_COLOR"); v != "" {
		c.Color = strings.ToLower(v)
	}
	if v := os.Getenv("UNIVARIATE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("UNIVARIATE_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return domain.ErrValidation("output directory is required")
	}
	if c.MaxCategories < 0 {
		return domain.ErrValidation("max categories must be >= 0, got %d", c.MaxCategories)
	}
	if c.MaxBins < 1 {
		return domain.ErrValidation("max bins must be >= 1, got %d", c.MaxBins)
	}
	if !plotFormats[c.PlotFormat] {
		return domain.ErrValidation("unsupported plot format %q: use png, svg, pdf or jpg", c.PlotFormat)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return domain.ErrValidation("plot size must be positive, got %gx%g", c.PlotWidth, c.PlotHeight)
	}
	if err := csvsql.ValidateDelimiter(strings.ReplaceAll(c.Delimiter, `\t`, "\t")); err != nil {
		return domain.ErrValidation("invalid delimiter %q: %v", c.Delimiter, err)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return domain.ErrValidation("unsupported output format %q: use 'text' or 'json'", c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return domain.ErrValidation("unsupported color mode %q: use auto, always or never", c.Color)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.Warnings = append(c.Warnings, fmt.Sprintf("unknown log level %q, using warn", c.LogLevel))
	}
	if !strings.EqualFold(c.LogFormat, "text") && !strings.EqualFold(c.LogFormat, "json") {
		c.Warnings = append(c.Warnings, fmt.Sprintf("unknown log format %q, using text", c.LogFormat))
	}
	return nil
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. A missing file is an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
