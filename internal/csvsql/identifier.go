package csvsql

import (
	"fmt"
	"strings"
)

// maxDelimiterLen is the longest delimiter DuckDB's CSV reader accepts.
const maxDelimiterLen = 4

// QuoteIdentifier wraps a SQL identifier in double quotes, escaping any
// embedded double-quote characters by doubling them (standard SQL).
//
// Column names come straight from CSV headers, so they are always quoted.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteLiteral wraps a string value in single quotes, escaping any
// embedded single-quote characters by doubling them (standard SQL).
func QuoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// ValidateDelimiter checks that delim is usable as a read_csv delimiter:
//   - Empty (auto-detect), or
//   - At most 4 bytes
//   - No line breaks
func ValidateDelimiter(delim string) error {
	if delim == "" {
		return nil
	}
	if len(delim) > maxDelimiterLen {
		return fmt.Errorf("delimiter must be at most %d bytes", maxDelimiterLen)
	}
	if strings.ContainsAny(delim, "\r\n") {
		return fmt.Errorf("delimiter must not contain line breaks")
	}
	return nil
}
