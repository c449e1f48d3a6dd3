// Package app wires the loader, reporter and plot renderer for one
// analysis run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/plot/vg"

	"univariate/internal/config"
	"univariate/internal/csvsql"
	"univariate/internal/domain"
	"univariate/internal/loader"
	"univariate/internal/render"
	"univariate/internal/report"
)

// Deps holds what the caller must provide: configuration, the console
// writer and the logger.
type Deps struct {
	Cfg    *config.Config
	Stdout io.Writer
	Color  bool // colorize text output; resolved by the caller from Cfg.Color
	Logger *slog.Logger
}

// App runs univariate analyses with a fixed configuration.
type App struct {
	cfg    *config.Config
	out    io.Writer
	color  bool
	logger *slog.Logger
}

// New creates an App from deps.
func New(deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: deps.Cfg, out: deps.Stdout, color: deps.Color, logger: logger}
}

// Run loads the file at path and reports every column. The output directory
// is only touched after the file loaded successfully.
func (a *App) Run(ctx context.Context, path string) error {
	table, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	renderer := render.New(render.Options{
		Dir:           a.cfg.OutputDir,
		Format:        a.cfg.PlotFormat,
		Width:         vg.Length(a.cfg.PlotWidth) * vg.Inch,
		Height:        vg.Length(a.cfg.PlotHeight) * vg.Inch,
		MaxCategories: a.cfg.MaxCategories,
	}, a.logger.With("component", "render"))

	reporter := report.New(a.out, renderer, report.Options{
		Format:  a.cfg.Output,
		Color:   a.color,
		MaxBins: a.cfg.MaxBins,
	}, a.logger)

	if err := reporter.Run(table); err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}
	return nil
}

// load reads the table through a short-lived in-memory DuckDB.
func (a *App) load(ctx context.Context, path string) (*domain.Table, error) {
	db, err := loader.OpenDuckDB(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close() //nolint:errcheck

	l := loader.New(db, csvsql.Options{
		Delimiter:   a.cfg.Delimiter,
		NullStrings: a.cfg.NullStrings,
	}, a.logger.With("component", "loader"))
	return l.Load(ctx, path)
}
