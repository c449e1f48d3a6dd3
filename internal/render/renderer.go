// Package render draws distribution bar charts for analyzed columns.
package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"univariate/internal/domain"
)

// DefaultMaxCategories is the cardinality above which categorical plots are skipped.
const DefaultMaxCategories = 50

var barColor = color.RGBA{R: 0x2a, G: 0x78, B: 0x8e, A: 0xff}

// Options controls where and how charts are written.
type Options struct {
	Dir           string
	Format        string    // file extension without the dot: png, svg, pdf, jpg
	Width         vg.Length // image width
	Height        vg.Length // image height
	MaxCategories int
}

// Result describes the outcome of rendering one column.
type Result struct {
	Path    string `json:"path,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Renderer writes one chart per column into Options.Dir. The directory is
// created on the first write.
type Renderer struct {
	opts     Options
	logger   *slog.Logger
	printer  *message.Printer
	dirReady bool
}

// New creates a Renderer. Zero-valued options fall back to 12x8 inch PNGs.
func New(opts Options, logger *slog.Logger) *Renderer {
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Width <= 0 {
		opts.Width = 12 * vg.Inch
	}
	if opts.Height <= 0 {
		opts.Height = 8 * vg.Inch
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		opts:    opts,
		logger:  logger,
		printer: message.NewPrinter(language.English),
	}
}

// Dir returns the output directory.
func (r *Renderer) Dir() string { return r.opts.Dir }

// RenderNumeric draws the histogram of a numeric column. index is the
// column's position in its table.
func (r *Renderer) RenderNumeric(index int, col *domain.Column, sum domain.NumericSummary) (Result, error) {
	labels := make([]string, len(sum.Bins))
	counts := make([]float64, len(sum.Bins))
	for i, b := range sum.Bins {
		labels[i] = b.Label()
		counts[i] = float64(b.Count)
	}
	return r.write(index, col.Name, labels, counts)
}

// RenderCategorical draws value counts of a categorical column, or skips the
// chart when the column has more distinct values than MaxCategories.
func (r *Renderer) RenderCategorical(index int, col *domain.Column, sum domain.CategoricalSummary) (Result, error) {
	if sum.Distinct() > r.opts.MaxCategories {
		r.logger.Debug("plot skipped", "column", col.Name, "distinct", sum.Distinct(), "limit", r.opts.MaxCategories)
		return Result{
			Skipped: true,
			Reason:  fmt.Sprintf("more than %d unique categories", r.opts.MaxCategories),
		}, nil
	}

	labels := make([]string, len(sum.Counts))
	counts := make([]float64, len(sum.Counts))
	for i, vc := range sum.Counts {
		labels[i] = vc.Value
		counts[i] = float64(vc.Count)
	}
	return r.write(index, col.Name, labels, counts)
}

func (r *Renderer) write(index int, name string, labels []string, counts []float64) (Result, error) {
	p, err := r.barPlot(name, labels, counts)
	if err != nil {
		return Result{}, fmt.Errorf("build plot for %q: %w", name, err)
	}

	if err := r.ensureDir(); err != nil {
		return Result{}, err
	}
	path := filepath.Join(r.opts.Dir, FileName(name, index)+"."+r.opts.Format)
	if err := p.Save(r.opts.Width, r.opts.Height, path); err != nil {
		return Result{}, fmt.Errorf("save plot %s: %w", path, err)
	}

	r.logger.Debug("plot saved", "column", name, "path", path, "bars", len(counts))
	return Result{Path: path}, nil
}

// barPlot lays out a titled bar chart with one bar per label. Columns without
// data produce an empty chart.
func (r *Renderer) barPlot(name string, labels []string, counts []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = name + " Distribution"
	p.Title.Padding = vg.Points(12)
	p.X.Label.Text = name
	p.Y.Label.Text = "Count"

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	if len(counts) == 0 {
		p.HideX()
		return p, nil
	}

	bars, err := plotter.NewBarChart(plotter.Values(counts), r.barWidth(len(counts)))
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)

	points := make(plotter.XYs, len(counts))
	texts := make([]string, len(counts))
	for i, c := range counts {
		points[i] = plotter.XY{X: float64(i), Y: c}
		texts[i] = r.printer.Sprintf("%d", int64(c))
	}
	values, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range values.TextStyle {
		values.TextStyle[i].Color = color.Black
		values.TextStyle[i].XAlign = draw.XCenter
		values.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(values)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = 0
	p.Y.Max *= 1.1
	return p, nil
}

// barWidth spreads bars over most of the canvas width.
func (r *Renderer) barWidth(n int) vg.Length {
	w := (r.opts.Width - 2*vg.Inch) * 0.8 / vg.Length(n)
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	return w
}

func (r *Renderer) ensureDir() error {
	if r.dirReady {
		return nil
	}
	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}
	r.dirReady = true
	return nil
}
