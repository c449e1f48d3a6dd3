// Package cli implements the univariate command line.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"univariate/internal/app"
	"univariate/internal/config"
	"univariate/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := newRootOptions()
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if opts.outputMode() == config.OutputJSON {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			if kind := errorKind(err); kind != "" {
				errObj["type"] = kind
			}
			_ = printJSON(stdout, errObj)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func errorKind(err error) string {
	var inputErr *domain.InputError
	var valErr *domain.ValidationError
	switch {
	case errors.As(err, &inputErr):
		return "input"
	case errors.As(err, &valErr):
		return "validation"
	}
	return ""
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// rootOptions holds raw flag values and the configuration resolved from them.
type rootOptions struct {
	configPath    string
	envFile       string
	outputDir     string
	maxCategories int
	maxBins       int
	format        *enumValue
	width         float64
	height        float64
	delimiter     string
	output        *enumValue
	color         *enumValue
	logLevel      *enumValue
	logFormat     *enumValue

	cfg *config.Config
}

func newRootOptions() *rootOptions {
	def := config.Default()
	return &rootOptions{
		outputDir:     def.OutputDir,
		maxCategories: def.MaxCategories,
		maxBins:       def.MaxBins,
		format:        newEnumValue(def.PlotFormat, "png", "svg", "pdf", "jpg", "jpeg"),
		width:         def.PlotWidth,
		height:        def.PlotHeight,
		output:        newEnumValue(def.Output, config.OutputText, config.OutputJSON),
		color:         newEnumValue(def.Color, config.ColorAuto, config.ColorAlways, config.ColorNever),
		logLevel:      newEnumValue(def.LogLevel, "debug", "info", "warn", "error"),
		logFormat:     newEnumValue(def.LogFormat, "text", "json"),
	}
}

// outputMode reports the console format in effect, falling back to the raw
// flag and environment when configuration was never resolved.
func (o *rootOptions) outputMode() string {
	if o.cfg != nil {
		return o.cfg.Output
	}
	if o.output.set {
		return o.output.String()
	}
	if v := os.Getenv("UNIVARIATE_OUTPUT"); v != "" {
		return strings.ToLower(v)
	}
	return o.output.String()
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "univariate [flags] <file>",
		Short: "Univariate exploratory analysis of a delimited file",
		Long: "Classifies every column of a CSV file as numeric or categorical, prints\n" +
			"descriptive statistics or value frequencies and writes one bar chart per\n" +
			"column to the output directory.",
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			logger := cfg.NewLogger(cmd.ErrOrStderr()).With("run_id", domain.NewRunID())
			for _, w := range cfg.Warnings {
				logger.Warn(w)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := app.New(app.Deps{
				Cfg:    cfg,
				Stdout: cmd.OutOrStdout(),
				Color:  useColor(cfg.Color, cmd.OutOrStdout()),
				Logger: logger,
			})
			return a.Run(ctx, args[0])
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Config file (default ~/.univariate/config.yaml)")
	f.StringVar(&opts.envFile, "env-file", "", "Load UNIVARIATE_* variables from a .env file")
	f.StringVarP(&opts.outputDir, "output-dir", "d", opts.outputDir, "Directory for plot images")
	f.IntVar(&opts.maxCategories, "max-categories", opts.maxCategories, "Skip categorical plots above this many distinct values")
	f.IntVar(&opts.maxBins, "max-bins", opts.maxBins, "Maximum histogram bins for numeric columns")
	f.Var(opts.format, "format", "Plot image format (png, svg, pdf, jpg)")
	f.Float64Var(&opts.width, "width", opts.width, "Plot width in inches")
	f.Float64Var(&opts.height, "height", opts.height, "Plot height in inches")
	f.StringVar(&opts.delimiter, "delim", "", `Field delimiter, e.g. ";" or "\t" (default auto-detect)`)
	f.VarP(opts.output, "output", "o", "Output format (text, json)")
	f.Var(opts.color, "color", "Colorize output (auto, always, never)")
	f.Var(opts.logLevel, "log-level", "Log level (debug, info, warn, error)")
	f.Var(opts.logFormat, "log-format", "Log format (text, json)")

	return rootCmd
}

// resolve builds the run configuration.
// Precedence: flag > env > config file > default.
func (o *rootOptions) resolve(flags *pflag.FlagSet) (*config.Config, error) {
	if flags.Changed("env-file") {
		if err := config.LoadDotEnv(o.envFile); err != nil {
			return nil, domain.ErrValidation("env file: %v", err)
		}
	}

	cfg := config.Default()
	file, err := o.loadConfigFile(flags.Changed("config"))
	if err != nil {
		return nil, err
	}
	if file != nil {
		file.Apply(cfg)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, domain.ErrValidation("%v", err)
	}

	if flags.Changed("output-dir") {
		cfg.OutputDir = o.outputDir
	}
	if flags.Changed("max-categories") {
		cfg.MaxCategories = o.maxCategories
	}
	if flags.Changed("max-bins") {
		cfg.MaxBins = o.maxBins
	}
	if flags.Changed("format") {
		cfg.PlotFormat = o.format.String()
	}
	if flags.Changed("width") {
		cfg.PlotWidth = o.width
	}
	if flags.Changed("height") {
		cfg.PlotHeight = o.height
	}
	if flags.Changed("delim") {
		cfg.Delimiter = o.delimiter
	}
	if flags.Changed("output") {
		cfg.Output = o.output.String()
	}
	if flags.Changed("color") {
		cfg.Color = o.color.String()
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel.String()
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads --config, UNIVARIATE_CONFIG or the default path. Only
// the default path may be absent.
func (o *rootOptions) loadConfigFile(explicit bool) (*UserConfig, error) {
	path := o.configPath
	if !explicit {
		path = os.Getenv("UNIVARIATE_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = ConfigPath()
	}

	file, err := LoadUserConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.ErrValidation("%v", err)
	}
	return file, nil
}

// useColor resolves the color mode against the output stream. NO_COLOR
// disables automatic color.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
