package tsp

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspmtz/matrix"
)

// BatchItem is the outcome of one instance in SolveBatch.
type BatchItem struct {
	Index  int
	Result Result
	Err    error
}

// SolveBatch solves independent instances concurrently with at most workers
// goroutines (workers ≤ 0 ⇒ GOMAXPROCS). Each instance gets its own Model;
// nothing is shared between them. A failing instance does not stop the
// others; ctx cancellation stops all of them.
//
// The progress indicator is disabled for batch runs: a single display cannot
// represent several concurrent searches.
func (s *Solver) SolveBatch(ctx context.Context, dists []*matrix.Distance, workers int) []BatchItem {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	quiet := *s
	quiet.opts.Progress = nil

	var (
		items = make([]BatchItem, len(dists))
		g     errgroup.Group
	)
	g.SetLimit(workers)
	for i, d := range dists {
		g.Go(func() error {
			res, err := quiet.Solve(ctx, d)
			items[i] = BatchItem{Index: i, Result: res, Err: err}

			return nil
		})
	}
	_ = g.Wait() // workers record failures in items and always return nil

	return items
}
