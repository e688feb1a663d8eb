package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/goclp/clp"
	"github.com/bartolsthoorn/goclp/internal/config"
	"github.com/bartolsthoorn/goclp/internal/problemfile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const feasibleDoc = `
rows: 1
cols: 1
matrix: {row_index: [0], col_index: [0], coeffs: [1]}
cost: [1]
row_lower: [0]
row_upper: [10]
col_lower: [0]
col_upper: [5]
`

const infeasibleDoc = `
rows: 1
cols: 1
mode: dual
matrix: {row_index: [0], col_index: [0], coeffs: [1]}
cost: [1]
row_lower: [6]
row_upper: [6]
col_lower: [0]
col_upper: [5]
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	return cfg
}

// run executes the root command with a no-op logger.
func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg, zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	a := writeDoc(t, "a.yaml", feasibleDoc)
	b := writeDoc(t, "b.yaml", infeasibleDoc)

	out, err := run(t, testConfig(t), "check", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "ok "+a+" (1 rows, 1 cols, 1 entries, primal)")
	assert.Contains(t, out, "ok "+b+" (1 rows, 1 cols, 1 entries, dual)")
}

func TestCheckModeOverride(t *testing.T) {
	b := writeDoc(t, "b.yaml", infeasibleDoc)

	out, err := run(t, testConfig(t), "check", "--mode", "primal", b)
	require.NoError(t, err)
	assert.Contains(t, out, "primal)")

	_, err = run(t, testConfig(t), "check", "--mode", "barrier", b)
	assert.ErrorIs(t, err, clp.ErrInvalidMode)
}

func TestCheckReportsEveryBadDocument(t *testing.T) {
	short := writeDoc(t, "short.yaml", `
rows: 1
cols: 1
matrix: {row_index: [0], col_index: [0], coeffs: [1]}
cost: [1]
row_lower: [0]
row_upper: []
col_lower: [0]
col_upper: [5]
`)
	badMode := writeDoc(t, "mode.yaml", "rows: 0\ncols: 0\nmode: simplex\n")
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := run(t, testConfig(t), "check", short, badMode, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, clp.ErrLengthMismatch)
	assert.ErrorIs(t, err, clp.ErrInvalidMode)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolveValidatesBeforeLoading(t *testing.T) {
	bad := writeDoc(t, "bad.yaml", "rows: -1\ncols: 0\n")

	_, err := run(t, testConfig(t), "solve", "--library", "/nonexistent/libclpsolve.so", bad)
	assert.ErrorIs(t, err, clp.ErrBadShape)
}

func TestSolveMissingLibrary(t *testing.T) {
	a := writeDoc(t, "a.yaml", feasibleDoc)

	_, err := run(t, testConfig(t), "solve", "--library", "/nonexistent/libclpsolve.so", a)
	assert.ErrorIs(t, err, clp.ErrLoad)
}

func TestSolveRejectsBadFlags(t *testing.T) {
	a := writeDoc(t, "a.yaml", feasibleDoc)

	_, err := run(t, testConfig(t), "solve", "--format", "xml", a)
	assert.Error(t, err)

	_, err = run(t, testConfig(t), "solve", "--jobs", "0", a)
	assert.Error(t, err)
}

func TestSolveWithEngine(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	lib, err := clp.Open(cfg.LibraryPath, clp.WithSymbol(cfg.Symbol))
	if err != nil {
		t.Skipf("solver library unavailable: %v", err)
	}
	require.NoError(t, lib.Close())

	a := writeDoc(t, "a.yaml", feasibleDoc)
	b := writeDoc(t, "b.yaml", infeasibleDoc)

	out, err := run(t, cfg, "solve", "--jobs", "2", a, b)
	require.NoError(t, err)

	var reports []problemfile.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, a, reports[0].File)
	assert.True(t, reports[0].ProvenOptimal)
	assert.Equal(t, []problemfile.Value{0}, reports[0].X)

	assert.Equal(t, b, reports[1].File)
	assert.Equal(t, "dual", reports[1].Mode)
	assert.True(t, reports[1].ProvenPrimalInfeasible)
	assert.False(t, reports[1].ProvenOptimal)
}
