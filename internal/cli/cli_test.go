package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/config"
	"github.com/katalvlaran/tspmtz/matrixfile"
	"github.com/katalvlaran/tspmtz/tsp"
)

// execute runs the root command with args and returns stdout and the logs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_Sample(t *testing.T) {
	out, _, err := execute(t, "solve", "--sample", "classic4")
	require.NoError(t, err)
	assert.Contains(t, out, "classic4")
	assert.Contains(t, out, "cost:  80")
	assert.Contains(t, out, "successor, gophersat")
}

func TestSolve_DetailAndCheck(t *testing.T) {
	out, _, err := execute(t, "solve", "--sample", "asym4", "--detail", "--check", "--formulation", "inequality")
	require.NoError(t, err)
	assert.Contains(t, out, "tour:  0 → 2 → 3 → 1 → 0")
	assert.Contains(t, out, "x[0][2] = 1")
	assert.Contains(t, out, "check: optimal")
	assert.Contains(t, out, "inequality")
}

func TestSolve_BareMatrixFile(t *testing.T) {
	path := writeFile(t, "m.yaml", "- [0, 1, 1]\n- [1, 0, 1]\n- [1, 1, 0]\n")
	out, _, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cost:  3")
}

func TestSolve_InstanceSet(t *testing.T) {
	path := writeFile(t, "set.yaml", `instances:
  - name: a
    optimum: 3
    distances: [[0, 1, 1], [1, 0, 1], [1, 1, 0]]
  - name: b
    distances: [[0, 10, 15, 20], [10, 0, 35, 25], [15, 35, 0, 30], [20, 25, 30, 0]]
`)
	out, _, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cost:  3")
	assert.Contains(t, out, "cost:  80")
	assert.Less(t, strings.Index(out, " a "), strings.Index(out, " b "))
}

func TestSolve_RecordedOptimumMismatch(t *testing.T) {
	path := writeFile(t, "bad.yaml", `instances:
  - name: wrong
    optimum: 2
    distances: [[0, 1, 1], [1, 0, 1], [1, 1, 0]]
`)
	out, _, err := execute(t, "solve", path)
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "recorded optimum is 2")
}

func TestSolve_InvalidMatrixInSet(t *testing.T) {
	path := writeFile(t, "set.yaml", `instances:
  - name: ok
    distances: [[0, 1], [1, 0]]
  - name: ragged
    distances: [[0, 1], [1]]
`)
	out, _, err := execute(t, "solve", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ragged")
	assert.NotContains(t, out, "cost:")
}

func TestSolve_InputErrors(t *testing.T) {
	_, _, err := execute(t, "solve")
	assert.ErrorContains(t, err, "no input")

	_, _, err = execute(t, "solve", "x.yaml", "--sample", "classic4")
	assert.ErrorContains(t, err, "not both")

	_, _, err = execute(t, "solve", "--sample", "nope")
	assert.ErrorIs(t, err, matrixfile.ErrNotFound)

	_, _, err = execute(t, "solve", "--sample", "classic4", "--formulation", "bogus")
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestSolve_ConfigFile(t *testing.T) {
	path := writeFile(t, "tspmtz.toml", "formulation = \"inequality\"\nredundant_distinct = true\nlog_level = \"debug\"\n")
	out, logs, err := execute(t, "--config", path, "solve", "--sample", "triangle3")
	require.NoError(t, err)
	assert.Contains(t, out, "cost:  60")
	assert.Contains(t, out, "inequality, gophersat")
	assert.NotEmpty(t, logs)

	bad := writeFile(t, "bad.toml", "colour = \"red\"\n")
	_, _, err = execute(t, "--config", bad, "samples")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestSamples(t *testing.T) {
	out, _, err := execute(t, "samples")
	require.NoError(t, err)
	for _, in := range matrixfile.Samples() {
		assert.Contains(t, out, in.Name)
	}
	assert.Contains(t, out, "unknown")

	out, _, err = execute(t, "samples", "asym4")
	require.NoError(t, err)
	instances, err := matrixfile.Parse([]byte(out), "dump")
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "asym4", instances[0].Name)
	require.NotNil(t, instances[0].Optimum)
	assert.EqualValues(t, 21, *instances[0].Optimum)
}

func TestCheck_Samples(t *testing.T) {
	out, _, err := execute(t, "check", "--max-cities", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "band8 skipped")
	assert.Contains(t, out, "0 failed")
}

func TestCheck_Failure(t *testing.T) {
	path := writeFile(t, "bad.yaml", `instances:
  - name: wrong
    optimum: 7
    distances: [[0, 1, 2], [1, 0, 1], [2, 1, 0]]
`)
	out, _, err := execute(t, "check", path)
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "recorded optimum 7 differs from enumerated 4")

	_, _, err = execute(t, "check", "--max-cities", "11")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version: dev")
}

func TestNewServer(t *testing.T) {
	c := New(io.Discard, LogInfo)
	srv, err := c.newServer()
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/solve", "application/json",
		strings.NewReader(`{"distances": [[0, 1, 1], [1, 0, 1], [1, 1, 0]]}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `tspmtz_solves_total{formulation="successor",outcome="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestLoggerFromContext(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)
	assert.Same(t, c.Logger, loggerFromContext(ctx))
	assert.NotNil(t, loggerFromContext(context.Background()))
}

func TestFormatTour(t *testing.T) {
	assert.Equal(t, "0 → 1 → 0", formatTour([]int{0, 1, 0}))
	assert.Empty(t, formatTour(nil))
}
