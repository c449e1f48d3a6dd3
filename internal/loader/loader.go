// Package loader reads delimited files into in-memory tables using DuckDB's
// CSV reader for delimiter and type sniffing.
package loader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"univariate/internal/analysis"
	"univariate/internal/csvsql"
	"univariate/internal/domain"
)

// OpenDuckDB opens an in-memory DuckDB database.
func OpenDuckDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return db, nil
}

// Loader materializes a delimited file as a domain.Table.
type Loader struct {
	db     *sql.DB
	opts   csvsql.Options
	logger *slog.Logger
}

// New creates a Loader that queries through db.
func New(db *sql.DB, opts csvsql.Options, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{db: db, opts: opts, logger: logger}
}

// sniffedColumn is one row of DESCRIBE output.
type sniffedColumn struct {
	name     string
	typeName string
}

// Load reads every row of the file at path. Each column's kind is decided
// once from its sniffed type. Any failure to open or parse the file is
// returned as a *domain.InputError.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Table, error) {
	if err := checkReadable(path); err != nil {
		return nil, domain.ErrInput(path, err)
	}

	sniffed, err := l.describe(ctx, path)
	if err != nil {
		return nil, domain.ErrInput(path, err)
	}
	if len(sniffed) == 0 {
		return nil, domain.ErrInput(path, errors.New("no columns found"))
	}

	table := &domain.Table{Path: path, Columns: make([]*domain.Column, len(sniffed))}
	casts := make([]csvsql.ColumnCast, len(sniffed))
	for i, s := range sniffed {
		col := &domain.Column{Name: s.name, Type: s.typeName, Kind: analysis.Classify(s.typeName)}
		table.Columns[i] = col
		casts[i] = csvsql.ColumnCast{Name: s.name, Type: csvsql.TypeVarchar}
		if col.Kind == domain.Numeric {
			casts[i].Type = csvsql.TypeDouble
		}
		l.logger.Debug("column sniffed", "column", s.name, "type", s.typeName, "kind", col.Kind.String())
	}

	query, err := csvsql.SelectSQL(path, l.opts, casts)
	if err != nil {
		return nil, domain.ErrInput(path, err)
	}
	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.ErrInput(path, fmt.Errorf("read rows: %w", err))
	}
	defer rows.Close() //nolint:errcheck

	dest := make([]interface{}, len(table.Columns))
	numbers := make([]sql.NullFloat64, len(table.Columns))
	labels := make([]sql.NullString, len(table.Columns))
	for i, col := range table.Columns {
		if col.Kind == domain.Numeric {
			dest[i] = &numbers[i]
		} else {
			dest[i] = &labels[i]
		}
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.ErrInput(path, fmt.Errorf("scan row %d: %w", table.Rows+1, err))
		}
		for i, col := range table.Columns {
			if col.Kind == domain.Numeric {
				v := math.NaN()
				if numbers[i].Valid {
					v = numbers[i].Float64
				}
				col.Numbers = append(col.Numbers, v)
				continue
			}
			col.Labels = append(col.Labels, domain.Label{Value: labels[i].String, Valid: labels[i].Valid})
		}
		table.Rows++
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrInput(path, fmt.Errorf("read rows: %w", err))
	}

	l.logger.Info("table loaded", "path", path, "rows", table.Rows, "columns", len(table.Columns))
	return table, nil
}

// describe asks DuckDB for the sniffed column names and types, in file order.
func (l *Loader) describe(ctx context.Context, path string) ([]sniffedColumn, error) {
	query, err := csvsql.DescribeSQL(path, l.opts)
	if err != nil {
		return nil, err
	}
	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("describe: unexpected result shape %v", names)
	}

	vals := make([]sql.NullString, len(names))
	ptrs := make([]interface{}, len(names))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	var out []sniffedColumn
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("describe: %w", err)
		}
		out = append(out, sniffedColumn{name: vals[0].String, typeName: vals[1].String})
	}
	return out, rows.Err()
}

// checkReadable fails fast on paths that DuckDB would reject with a less
// helpful message, and on empty files, for which the sniffer invents a column.
func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	if info.Size() == 0 {
		return errors.New("no columns to parse: file is empty")
	}
	f, err := os.Open(path) //nolint:gosec // path is the user's input file
	if err != nil {
		return err
	}
	return f.Close()
}
