// Package analysis classifies columns and computes their univariate summaries.
package analysis

import (
	"strings"

	"univariate/internal/domain"
)

// numericTypes lists the DuckDB scalar types summarized with arithmetic statistics.
var numericTypes = map[string]bool{
	"TINYINT":   true,
	"SMALLINT":  true,
	"INTEGER":   true,
	"BIGINT":    true,
	"HUGEINT":   true,
	"UTINYINT":  true,
	"USMALLINT": true,
	"UINTEGER":  true,
	"UBIGINT":   true,
	"UHUGEINT":  true,
	"FLOAT":     true,
	"REAL":      true,
	"DOUBLE":    true,
	"DECIMAL":   true,
	"NUMERIC":   true,
	"INT":       true,
	"INT1":      true,
	"INT2":      true,
	"INT4":      true,
	"INT8":      true,
	"FLOAT4":    true,
	"FLOAT8":    true,
}

// Classify maps a DuckDB column type to its analysis kind. Numeric scalar
// types are Numeric; everything else, including BOOLEAN, temporal types,
// lists, and text, is Categorical. Text that merely looks numeric is not
// coerced: the sniffed type decides.
func Classify(typeName string) domain.Kind {
	t := strings.ToUpper(strings.TrimSpace(typeName))
	if strings.HasSuffix(t, "]") {
		return domain.Categorical
	}
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if numericTypes[t] {
		return domain.Numeric
	}
	return domain.Categorical
}
