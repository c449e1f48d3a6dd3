// Package csvsql builds DuckDB statements that read and describe delimited files.
package csvsql

import (
	"fmt"
	"strings"
)

// Cast targets used when materializing columns.
const (
	TypeDouble  = "DOUBLE"
	TypeVarchar = "VARCHAR"
)

// Options controls how read_csv parses the input file.
type Options struct {
	// Delimiter overrides delimiter sniffing when non-empty. "\t" is accepted
	// as an escape for a tab.
	Delimiter string
	// NullStrings lists the cell values treated as missing.
	NullStrings []string
	// AllVarchar reads every column as its source text.
	AllVarchar bool
}

// ColumnCast selects one column and casts it to Type.
type ColumnCast struct {
	Name string
	Type string
}

// ReadCSV returns a read_csv table function call for path. Types are sniffed
// from every row, not a sample:
//
//	read_csv('data.csv', header = true, sample_size = -1, nullstr = ['', 'NA'])
func ReadCSV(path string, opts Options) (string, error) {
	if path == "" {
		return "", fmt.Errorf("source path is required")
	}
	delim := opts.Delimiter
	if delim == `\t` {
		delim = "\t"
	}
	if err := ValidateDelimiter(delim); err != nil {
		return "", fmt.Errorf("invalid delimiter: %w", err)
	}

	args := []string{QuoteLiteral(path), "header = true", "sample_size = -1"}
	if delim != "" {
		args = append(args, "delim = "+QuoteLiteral(delim))
	}
	if len(opts.NullStrings) > 0 {
		quoted := make([]string, len(opts.NullStrings))
		for i, s := range opts.NullStrings {
			quoted[i] = QuoteLiteral(s)
		}
		args = append(args, "nullstr = ["+strings.Join(quoted, ", ")+"]")
	}
	if opts.AllVarchar {
		args = append(args, "all_varchar = true")
	}
	return fmt.Sprintf("read_csv(%s)", strings.Join(args, ", ")), nil
}

// DescribeSQL generates a DESCRIBE statement that reports the sniffed
// column names and types of a delimited file without reading its rows.
func DescribeSQL(path string, opts Options) (string, error) {
	src, err := ReadCSV(path, opts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DESCRIBE SELECT * FROM %s LIMIT 0", src), nil
}

// SelectSQL generates a SELECT that reads every row of a delimited file with
// each listed column cast to its target type, in the order given. Rows are
// read as text so VARCHAR columns keep the exact cell contents.
//
//	SELECT CAST("age" AS DOUBLE) AS "age", CAST("city" AS VARCHAR) AS "city" FROM read_csv(..., all_varchar = true)
func SelectSQL(path string, opts Options, columns []ColumnCast) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("at least one column is required")
	}
	opts.AllVarchar = true
	src, err := ReadCSV(path, opts)
	if err != nil {
		return "", err
	}

	exprs := make([]string, 0, len(columns))
	for _, c := range columns {
		switch c.Type {
		case TypeDouble, TypeVarchar:
		default:
			return "", fmt.Errorf("unsupported cast type %q for column %q", c.Type, c.Name)
		}
		exprs = append(exprs, fmt.Sprintf("CAST(%s AS %s) AS %s",
			QuoteIdentifier(c.Name), c.Type, QuoteIdentifier(c.Name)))
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(exprs, ", "), src), nil
}
