package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"univariate/internal/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "plots")
	return New(Options{
		Dir:           dir,
		Format:        "png",
		Width:         4 * vg.Inch,
		Height:        3 * vg.Inch,
		MaxCategories: DefaultMaxCategories,
	}, nil), dir
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestRenderNumeric(t *testing.T) {
	r, dir := newTestRenderer(t)
	col := &domain.Column{Name: "age", Kind: domain.Numeric}
	sum := domain.NumericSummary{
		Count: 3,
		Bins: []domain.Bin{
			{Lower: 24.985, Upper: 30, Count: 2},
			{Lower: 30, Upper: 35, Count: 0},
			{Lower: 35, Upper: 40, Count: 1},
		},
	}

	res, err := r.RenderNumeric(0, col, sum)
	require.NoError(t, err)

	assert.False(t, res.Skipped)
	assert.Equal(t, filepath.Join(dir, "age.png"), res.Path)
	assertPNG(t, res.Path)
}

func TestRenderNumeric_NoData(t *testing.T) {
	r, dir := newTestRenderer(t)
	col := &domain.Column{Name: "empty", Kind: domain.Numeric}

	res, err := r.RenderNumeric(0, col, domain.NumericSummary{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "empty.png"), res.Path)
	assertPNG(t, res.Path)
}

func TestRenderCategorical(t *testing.T) {
	r, dir := newTestRenderer(t)
	col := &domain.Column{Name: "city", Kind: domain.Categorical}
	sum := domain.CategoricalSummary{Counts: []domain.ValueCount{
		{Value: "NY", Count: 2},
		{Value: "LA", Count: 1},
	}}

	res, err := r.RenderCategorical(1, col, sum)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "city.png"), res.Path)
	assertPNG(t, res.Path)
}

func TestRenderCategorical_CardinalityGuard(t *testing.T) {
	tests := []struct {
		name     string
		distinct int
		skipped  bool
	}{
		{name: "at_limit", distinct: 50, skipped: false},
		{name: "over_limit", distinct: 51, skipped: true},
		{name: "far_over_limit", distinct: 60, skipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, dir := newTestRenderer(t)
			col := &domain.Column{Name: "code", Kind: domain.Categorical}
			var sum domain.CategoricalSummary
			for i := 0; i < tt.distinct; i++ {
				sum.Counts = append(sum.Counts, domain.ValueCount{Value: fmt.Sprintf("c%02d", i), Count: 1})
			}

			res, err := r.RenderCategorical(0, col, sum)
			require.NoError(t, err)
			assert.Equal(t, tt.skipped, res.Skipped)

			_, statErr := os.Stat(filepath.Join(dir, "code.png"))
			if tt.skipped {
				assert.Empty(t, res.Path)
				assert.Equal(t, "more than 50 unique categories", res.Reason)
				assert.True(t, os.IsNotExist(statErr))
				return
			}
			assert.NoError(t, statErr)
		})
	}
}

func TestRender_SkipDoesNotCreateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	r := New(Options{Dir: dir, MaxCategories: 0}, nil)
	col := &domain.Column{Name: "c", Kind: domain.Categorical}
	sum := domain.CategoricalSummary{Counts: []domain.ValueCount{{Value: "a", Count: 1}}}

	res, err := r.RenderCategorical(0, col, sum)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestRender_OverwritesExisting(t *testing.T) {
	r, dir := newTestRenderer(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "x.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	col := &domain.Column{Name: "x", Kind: domain.Categorical}
	sum := domain.CategoricalSummary{Counts: []domain.ValueCount{{Value: "a", Count: 3}}}
	_, err := r.RenderCategorical(0, col, sum)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRender_SVGFormat(t *testing.T) {
	dir := t.TempDir()
	r := New(Options{Dir: dir, Format: "svg", MaxCategories: 5}, nil)
	col := &domain.Column{Name: "flag", Kind: domain.Categorical}
	sum := domain.CategoricalSummary{Counts: []domain.ValueCount{{Value: "true", Count: 3}, {Value: "false", Count: 1}}}

	res, err := r.RenderCategorical(0, col, sum)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag.svg"), res.Path)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
