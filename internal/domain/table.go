package domain

import (
	"math"
	"strings"
)

// Kind is the analysis category of a column.
type Kind int

const (
	// Categorical columns are summarized by value frequencies.
	Categorical Kind = iota
	// Numeric columns are summarized by descriptive statistics.
	Numeric
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	default:
		return "Categorical"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// Label is a single categorical value. Valid is false for missing values.
type Label struct {
	Value string
	Valid bool
}

// Column is one named column of a loaded table.
// Exactly one of Numbers (Numeric) or Labels (Categorical) is populated.
type Column struct {
	Name string
	Type string // DuckDB type name reported by the CSV sniffer
	Kind Kind

	// Numbers holds numeric values; NaN marks a missing value.
	Numbers []float64
	Labels  []Label
}

// Len returns the number of rows in the column, including missing values.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Numbers)
	}
	return len(c.Labels)
}

// Missing returns the number of missing values in the column.
func (c *Column) Missing() int {
	n := 0
	if c.Kind == Numeric {
		for _, v := range c.Numbers {
			if math.IsNaN(v) {
				n++
			}
		}
		return n
	}
	for _, l := range c.Labels {
		if !l.Valid {
			n++
		}
	}
	return n
}

// Table is an ordered set of columns loaded from one delimited file.
// It is not mutated after load.
type Table struct {
	Path    string
	Rows    int
	Columns []*Column
}
