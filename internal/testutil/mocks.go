// Package testutil provides shared mocks and fixtures for tests across the
// codebase.
package testutil

import (
	"fmt"
	"path/filepath"

	"univariate/internal/domain"
	"univariate/internal/render"
)

// MockPlotter records render calls without writing images. Unset Fn fields
// return the path a render.Renderer would use, and categorical columns above
// render.DefaultMaxCategories are skipped.
type MockPlotter struct {
	RenderNumericFn     func(index int, col *domain.Column, sum domain.NumericSummary) (render.Result, error)
	RenderCategoricalFn func(index int, col *domain.Column, sum domain.CategoricalSummary) (render.Result, error)
	OutputDir           string
	Calls               []string // column names in call order
}

// RenderNumeric implements the interface method for testing.
func (m *MockPlotter) RenderNumeric(index int, col *domain.Column, sum domain.NumericSummary) (render.Result, error) {
	m.Calls = append(m.Calls, col.Name)
	if m.RenderNumericFn != nil {
		return m.RenderNumericFn(index, col, sum)
	}
	return m.result(index, col), nil
}

// RenderCategorical implements the interface method for testing.
func (m *MockPlotter) RenderCategorical(index int, col *domain.Column, sum domain.CategoricalSummary) (render.Result, error) {
	m.Calls = append(m.Calls, col.Name)
	if m.RenderCategoricalFn != nil {
		return m.RenderCategoricalFn(index, col, sum)
	}
	if sum.Distinct() > render.DefaultMaxCategories {
		return render.Result{
			Skipped: true,
			Reason:  fmt.Sprintf("more than %d unique categories", render.DefaultMaxCategories),
		}, nil
	}
	return m.result(index, col), nil
}

// Dir implements the interface method for testing.
func (m *MockPlotter) Dir() string { return m.OutputDir }

func (m *MockPlotter) result(index int, col *domain.Column) render.Result {
	return render.Result{Path: filepath.Join(m.OutputDir, render.FileName(col.Name, index)+".png")}
}
