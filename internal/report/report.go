// Package report prints per-column summaries and drives plot rendering.
package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"univariate/internal/analysis"
	"univariate/internal/domain"
	"univariate/internal/render"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Plotter renders the chart for one analyzed column.
type Plotter interface {
	RenderNumeric(index int, col *domain.Column, sum domain.NumericSummary) (render.Result, error)
	RenderCategorical(index int, col *domain.Column, sum domain.CategoricalSummary) (render.Result, error)
	Dir() string
}

// Options controls the reporter output.
type Options struct {
	Format  string // text or json
	Color   bool   // colorize text output
	MaxBins int    // histogram bin limit for numeric columns
}

// Reporter analyzes each column of a table in order, writes its summary to
// an io.Writer and asks the Plotter for its chart.
type Reporter struct {
	w       io.Writer
	plots   Plotter
	opts    Options
	logger  *slog.Logger
	printer *message.Printer

	header *color.Color
	ok     *color.Color
	note   *color.Color
}

// New creates a Reporter writing to w.
func New(w io.Writer, plots Plotter, opts Options, logger *slog.Logger) *Reporter {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.MaxBins <= 0 {
		opts.MaxBins = analysis.DefaultMaxBins
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reporter{
		w:       w,
		plots:   plots,
		opts:    opts,
		logger:  logger.With("component", "report"),
		printer: message.NewPrinter(language.English),
		header:  color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		note:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.header, r.ok, r.note} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// ColumnReport is the outcome of analyzing one column.
type ColumnReport struct {
	Index       int
	Column      *domain.Column
	Numeric     *domain.NumericSummary
	Categorical *domain.CategoricalSummary
	Plot        render.Result
}

// Run analyzes every column of t in table order. Any summarizing or
// rendering failure aborts the run.
func (r *Reporter) Run(t *domain.Table) error {
	r.logger.Info("analysis started", "path", t.Path, "columns", len(t.Columns), "rows", t.Rows)

	text := r.opts.Format != FormatJSON
	if text {
		if err := r.writeBanner(t); err != nil {
			return err
		}
	}

	reports := make([]ColumnReport, 0, len(t.Columns))
	for i, col := range t.Columns {
		rep, err := summarize(i, col, r.opts.MaxBins)
		if err != nil {
			return err
		}
		if text {
			if err := r.writeSummary(rep); err != nil {
				return err
			}
		}
		if rep.Plot, err = r.plot(rep); err != nil {
			return err
		}
		if text {
			if err := r.writePlotLine(rep.Plot); err != nil {
				return err
			}
		}
		reports = append(reports, rep)
	}

	if !text {
		return writeJSON(r.w, t, reports)
	}
	return r.writeFooter()
}

func summarize(index int, col *domain.Column, maxBins int) (ColumnReport, error) {
	rep := ColumnReport{Index: index, Column: col}
	if col.Kind == domain.Numeric {
		sum, err := analysis.SummarizeNumeric(col, maxBins)
		if err != nil {
			return rep, fmt.Errorf("summarize %q: %w", col.Name, err)
		}
		rep.Numeric = &sum
		return rep, nil
	}
	sum, err := analysis.SummarizeCategorical(col)
	if err != nil {
		return rep, fmt.Errorf("summarize %q: %w", col.Name, err)
	}
	rep.Categorical = &sum
	return rep, nil
}

func (r *Reporter) plot(rep ColumnReport) (render.Result, error) {
	var (
		res render.Result
		err error
	)
	if rep.Numeric != nil {
		res, err = r.plots.RenderNumeric(rep.Index, rep.Column, *rep.Numeric)
	} else {
		res, err = r.plots.RenderCategorical(rep.Index, rep.Column, *rep.Categorical)
	}
	if err != nil {
		return res, fmt.Errorf("render %q: %w", rep.Column.Name, err)
	}
	r.logger.Debug("column analyzed",
		"column", rep.Column.Name, "kind", rep.Column.Kind.String(), "plot", res.Path, "skipped", res.Skipped)
	return res, nil
}
