package render

import (
	"fmt"
	"strings"
	"unicode"
)

// FileName derives the image base name for a column. The column name is kept
// as-is except for characters that cannot appear in a file name, which become
// underscores. index (0-based) names columns whose header is blank.
func FileName(column string, index int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, column)

	switch strings.TrimSpace(name) {
	case "":
		return fmt.Sprintf("column_%d", index+1)
	case ".", "..":
		return strings.Repeat("_", len(name))
	}
	return name
}
