package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/matrix"
	"github.com/katalvlaran/tspmtz/solver"
	"github.com/katalvlaran/tspmtz/tsp"
)

func TestSolveBatch(t *testing.T) {
	dists := []*matrix.Distance{
		mustDist(t, scenarioA),
		mustDist(t, scenarioB),
		nil,
		mustDist(t, asym4),
		mustDist(t, [][]int64{{0}}),
	}

	var (
		ind  = &countingIndicator{}
		rec  = &recorder{}
		opts = tsp.DefaultOptions()
	)
	opts.Progress = ind
	opts.Recorder = rec

	items := tsp.NewSolver(opts).SolveBatch(context.Background(), dists, 2)
	require.Len(t, items, len(dists))

	want := []int64{3, 80, 0, 21, 0}
	for i, it := range items {
		assert.Equal(t, i, it.Index)
		if i == 2 {
			require.ErrorIs(t, it.Err, tsp.ErrInvalidInput)
			continue
		}
		require.NoError(t, it.Err, "item %d", i)
		assert.Equal(t, want[i], it.Result.Cost, "item %d", i)
	}

	assert.Zero(t, ind.starts, "batch runs without a progress display")
	assert.Len(t, rec.stats, len(dists))
}

func TestSolveBatch_FailuresAreIsolated(t *testing.T) {
	calls := 0
	backend := &fakeBackend{script: func(s *fakeSession) {
		calls++
		s.status = solver.Unknown
	}}
	opts := tsp.DefaultOptions()
	opts.Backend = backend

	dists := []*matrix.Distance{mustDist(t, scenarioA), mustDist(t, scenarioB)}
	items := tsp.NewSolver(opts).SolveBatch(context.Background(), dists, 1)
	for _, it := range items {
		require.ErrorIs(t, it.Err, tsp.ErrSolverTimeout)
	}
	assert.Equal(t, 2, calls)
}
