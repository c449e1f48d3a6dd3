package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// AgeCityCSV is a small table with one numeric and one categorical column,
// each with a missing value.
const AgeCityCSV = "age,city\n25,NY\n30,NY\n,LA\n40,\n"

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}
