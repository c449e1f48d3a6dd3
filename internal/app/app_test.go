package app

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univariate/internal/config"
	"univariate/internal/domain"
	"univariate/internal/testutil"
)

func TestRun_AgeCity(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteFile(t, dir, "people.csv", testutil.AgeCityCSV)

	var out bytes.Buffer
	a := New(Deps{Cfg: config.Default(), Stdout: &out})
	require.NoError(t, a.Run(context.Background(), "people.csv"))

	text := out.String()
	assert.Contains(t, text, "--- age (Numeric) ---")
	assert.Contains(t, text, "--- city (Categorical) ---")
	assert.Regexp(t, `(?m)^count\s+3$`, text)
	assert.Regexp(t, `(?m)^  NY\s+2$`, text)
	assert.Regexp(t, `(?m)^  LA\s+1$`, text)

	for _, name := range []string{"age.png", "city.png"} {
		info, err := os.Stat(filepath.Join(dir, "plots", name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size())
	}
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var out bytes.Buffer
	a := New(Deps{Cfg: config.Default(), Stdout: &out})
	err := a.Run(context.Background(), "does-not-exist.csv")
	require.Error(t, err)

	var inputErr *domain.InputError
	assert.True(t, errors.As(err, &inputErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(filepath.Join(dir, "plots"))
	assert.True(t, os.IsNotExist(statErr), "plots directory must not be created")
	assert.Empty(t, out.String())
}

func TestRun_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteFile(t, dir, "empty.csv", "")

	var out bytes.Buffer
	a := New(Deps{Cfg: config.Default(), Stdout: &out})
	err := a.Run(context.Background(), "empty.csv")
	require.Error(t, err)

	var inputErr *domain.InputError
	assert.True(t, errors.As(err, &inputErr))
	assert.Contains(t, err.Error(), "no columns to parse")
	assert.Empty(t, out.String(), "nothing is analyzed")

	_, statErr := os.Stat(filepath.Join(dir, "plots"))
	assert.True(t, os.IsNotExist(statErr), "plots directory must not be created")
}

func TestRun_ConfiguredOutput(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "scores.tsv", "name\tscore\nann\t1.5\nbob\t2.5\n")

	cfg := config.Default()
	cfg.OutputDir = filepath.Join(dir, "charts")
	cfg.PlotFormat = "svg"
	cfg.Delimiter = `\t`
	cfg.Output = config.OutputJSON

	var out bytes.Buffer
	a := New(Deps{Cfg: cfg, Stdout: &out})
	require.NoError(t, a.Run(context.Background(), path))

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out.String()), "{"))
	assert.Contains(t, out.String(), `"kind": "numeric"`)
	assert.FileExists(t, filepath.Join(dir, "charts", "score.svg"))
	assert.FileExists(t, filepath.Join(dir, "charts", "name.svg"))
}
