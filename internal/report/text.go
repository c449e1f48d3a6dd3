package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/number"

	"univariate/internal/domain"
	"univariate/internal/render"
)

func (r *Reporter) writeBanner(t *domain.Table) error {
	_, err := fmt.Fprintf(r.w, "%s\n\n", r.header.Sprint(r.printer.Sprintf(
		"=== Starting Univariate Analysis: %d columns, %d rows ===", len(t.Columns), t.Rows)))
	return err
}

func (r *Reporter) writeFooter() error {
	_, err := fmt.Fprintf(r.w, "%s\nPlots directory: %s\n",
		r.header.Sprint("=== Analysis Complete ==="), r.plots.Dir())
	return err
}

func (r *Reporter) writeSummary(rep ColumnReport) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, r.header.Sprintf("--- %s (%s) ---", rep.Column.Name, rep.Column.Kind))
	if rep.Numeric != nil {
		r.writeNumeric(tw, rep.Numeric)
	} else {
		r.writeCategorical(tw, rep.Categorical)
	}
	return tw.Flush()
}

func (r *Reporter) writeNumeric(w io.Writer, s *domain.NumericSummary) {
	rows := []struct {
		name  string
		value string
	}{
		{"count", r.count(s.Count)},
		{"missing", r.count(s.Missing)},
		{"zeros", r.count(s.Zeros)},
		{"mean", r.stat(s.Mean)},
		{"std", r.stat(s.Std)},
		{"min", r.stat(s.Min)},
		{"25%", r.stat(s.P25)},
		{"50%", r.stat(s.P50)},
		{"75%", r.stat(s.P75)},
		{"max", r.stat(s.Max)},
		{"median", r.stat(s.Median)},
		{"mode", r.stat(s.Mode)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.name, row.value)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Percentiles:")
	for _, p := range s.Percentiles {
		fmt.Fprintf(w, "  %s\t%s\n", percentileName(p.P), r.fixed(p.Value))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Frequency Bins:")
	if len(s.Bins) == 0 {
		fmt.Fprintln(w, "  (no values)")
	}
	for _, b := range s.Bins {
		fmt.Fprintf(w, "  %s\t%s\n", b.Label(), r.count(b.Count))
	}
}

func (r *Reporter) writeCategorical(w io.Writer, s *domain.CategoricalSummary) {
	fmt.Fprintf(w, "Unique Categories: %s\n", r.count(s.Distinct()))
	fmt.Fprintf(w, "Missing: %s\n", r.count(s.Missing))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Frequency:")
	if len(s.Counts) == 0 {
		fmt.Fprintln(w, "  (no values)")
	}
	for _, vc := range s.Counts {
		fmt.Fprintf(w, "  %s\t%s\n", vc.Value, r.count(vc.Count))
	}

	most, ok := s.MostFrequent()
	if !ok {
		return
	}
	least, _ := s.LeastFrequent()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Most Frequent: %s (%s)\n", most.Value, r.count(most.Count))
	fmt.Fprintf(w, "Least Frequent: %s (%s)\n", least.Value, r.count(least.Count))
}

func (r *Reporter) writePlotLine(res render.Result) error {
	var line string
	if res.Skipped {
		line = r.note.Sprintf("Note: Plot not generated (%s).", res.Reason)
	} else {
		line = r.ok.Sprintf("✓ Plot saved: %s", res.Path)
	}
	_, err := fmt.Fprintf(r.w, "%s\n\n", line)
	return err
}

func percentileName(p float64) string {
	switch p {
	case 0:
		return "Min"
	case 25:
		return "Q1"
	case 50:
		return "Median"
	case 75:
		return "Q3"
	case 100:
		return "Max"
	}
	return strconv.FormatFloat(p, 'g', -1, 64) + "%"
}

func (r *Reporter) count(n int) string {
	return r.printer.Sprintf("%d", n)
}

// stat formats a statistic with two decimals, or four significant digits
// for magnitudes below one.
func (r *Reporter) stat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return r.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(fractionDigits(v))))
}

// fixed formats v like stat but always shows at least two decimals.
func (r *Reporter) fixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return r.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(fractionDigits(v))))
}

// fractionDigits returns how many decimals keep four significant digits of
// v, never fewer than two.
func fractionDigits(v float64) int {
	a := math.Abs(v)
	if a == 0 || a >= 1 {
		return 2
	}
	n := 3 - int(math.Floor(math.Log10(a)))
	return min(max(n, 2), 15)
}
