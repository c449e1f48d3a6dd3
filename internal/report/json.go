package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"univariate/internal/domain"
	"univariate/internal/render"
)

// jsonFloat encodes NaN and infinities as null.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type tableJSON struct {
	Path    string       `json:"path"`
	Rows    int          `json:"rows"`
	Columns []columnJSON `json:"columns"`
}

type columnJSON struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Kind        domain.Kind      `json:"kind"`
	Numeric     *numericJSON     `json:"numeric,omitempty"`
	Categorical *categoricalJSON `json:"categorical,omitempty"`
	Plot        render.Result    `json:"plot"`
}

type numericJSON struct {
	Count       int              `json:"count"`
	Missing     int              `json:"missing"`
	Zeros       int              `json:"zeros"`
	Mean        jsonFloat        `json:"mean"`
	Std         jsonFloat        `json:"std"`
	Min         jsonFloat        `json:"min"`
	P25         jsonFloat        `json:"p25"`
	P50         jsonFloat        `json:"p50"`
	P75         jsonFloat        `json:"p75"`
	Max         jsonFloat        `json:"max"`
	Median      jsonFloat        `json:"median"`
	Mode        jsonFloat        `json:"mode"`
	Percentiles []percentileJSON `json:"percentiles"`
	Bins        []binJSON        `json:"bins"`
}

type percentileJSON struct {
	P     float64   `json:"p"`
	Value jsonFloat `json:"value"`
}

type binJSON struct {
	Label string  `json:"label"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type categoricalJSON struct {
	Distinct int         `json:"distinct"`
	Missing  int         `json:"missing"`
	Counts   []countJSON `json:"counts"`
}

type countJSON struct {
	Value   string    `json:"value"`
	Count   int       `json:"count"`
	Percent jsonFloat `json:"percent"`
}

func writeJSON(w io.Writer, t *domain.Table, reports []ColumnReport) error {
	doc := tableJSON{Path: t.Path, Rows: t.Rows, Columns: make([]columnJSON, 0, len(reports))}
	for _, rep := range reports {
		c := columnJSON{
			Name: rep.Column.Name,
			Type: rep.Column.Type,
			Kind: rep.Column.Kind,
			Plot: rep.Plot,
		}
		if rep.Numeric != nil {
			c.Numeric = newNumericJSON(rep.Numeric)
		}
		if rep.Categorical != nil {
			c.Categorical = newCategoricalJSON(rep.Categorical)
		}
		doc.Columns = append(doc.Columns, c)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func newNumericJSON(s *domain.NumericSummary) *numericJSON {
	out := &numericJSON{
		Count:       s.Count,
		Missing:     s.Missing,
		Zeros:       s.Zeros,
		Mean:        jsonFloat(s.Mean),
		Std:         jsonFloat(s.Std),
		Min:         jsonFloat(s.Min),
		P25:         jsonFloat(s.P25),
		P50:         jsonFloat(s.P50),
		P75:         jsonFloat(s.P75),
		Max:         jsonFloat(s.Max),
		Median:      jsonFloat(s.Median),
		Mode:        jsonFloat(s.Mode),
		Percentiles: make([]percentileJSON, 0, len(s.Percentiles)),
		Bins:        make([]binJSON, 0, len(s.Bins)),
	}
	for _, p := range s.Percentiles {
		out.Percentiles = append(out.Percentiles, percentileJSON{P: p.P, Value: jsonFloat(p.Value)})
	}
	for _, b := range s.Bins {
		out.Bins = append(out.Bins, binJSON{Label: b.Label(), Lower: b.Lower, Upper: b.Upper, Count: b.Count})
	}
	return out
}

func newCategoricalJSON(s *domain.CategoricalSummary) *categoricalJSON {
	out := &categoricalJSON{
		Distinct: s.Distinct(),
		Missing:  s.Missing,
		Counts:   make([]countJSON, 0, len(s.Counts)),
	}
	for _, vc := range s.Counts {
		out.Counts = append(out.Counts, countJSON{Value: vc.Value, Count: vc.Count, Percent: jsonFloat(vc.Percent)})
	}
	return out
}
