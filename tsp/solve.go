// Package tsp - solve facade.
//
// This file provides the canonical entry points:
//
//   - Solver.Solve: run the full pipeline on a validated *matrix.Distance.
//   - Solve: validate raw rows, then delegate to a Solver built from opts.
//
// Stage order: validate → session → Build → EliminateSubtours →
// ComposeObjective → Invoke (with progress + timeout) → Decode → verify.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tspmtz/matrix"
	"github.com/katalvlaran/tspmtz/solver"
	"github.com/katalvlaran/tspmtz/solver/pbsat"
)

// Solver runs the encode → solve → decode pipeline. A Solver is read-only
// after construction; concurrent Solve calls on different matrices are safe
// as long as the configured Progress indicator tolerates it (see SolveBatch).
type Solver struct {
	backend solver.Backend
	opts    Options
}

// NewSolver returns a Solver for opts. A nil opts.Backend selects gophersat.
func NewSolver(opts Options) *Solver {
	backend := opts.Backend
	if backend == nil {
		backend = pbsat.New()
	}

	return &Solver{backend: backend, opts: opts}
}

// Options returns a copy of the solver configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve validates rows and solves them with a Solver built from opts.
func Solve(ctx context.Context, rows [][]int64, opts Options) (Result, error) {
	dist, err := NewInstance(rows)
	if err != nil {
		return Result{}, err
	}

	return NewSolver(opts).Solve(ctx, dist)
}

// Solve finds an optimal tour for dist.
//
// Contracts:
//   - dist must be non-nil (construct it with matrix.NewDistance).
//   - ctx cancellation and Options.Timeout are forwarded to the backend;
//     expiry yields ErrSolverTimeout.
//   - Backends implementing solver.Limits reject matrices whose off-diagonal
//     cost sum exceeds their range with ErrInvalidInput, before any session
//     is opened.
//   - On error the Result is zero: no partial tours.
func (s *Solver) Solve(ctx context.Context, dist *matrix.Distance) (res Result, err error) {
	var (
		start  = time.Now()
		runID  = uuid.NewString()
		logger = s.opts.logger().With("run", runID[:8])
		stats  = Stats{Backend: s.backend.Name(), Formulation: s.opts.Formulation}
	)
	defer func() {
		stats.Elapsed = time.Since(start)
		if err == nil {
			res.Stats = stats
		}
		if s.opts.Recorder != nil {
			s.opts.Recorder.RecordSolve(stats, err)
		}
	}()

	// Stage 1 - input guard; no session exists yet.
	if dist == nil || dist.N() < 1 {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, matrix.ErrNilMatrix)
	}
	stats.N = dist.N()
	if lim, ok := s.backend.(solver.Limits); ok {
		if sum, limit := dist.OffDiagonalSum(), lim.MaxObjectiveWeight(); sum > limit {
			return Result{}, fmt.Errorf("%w: cost sum %d exceeds the %s limit %d: %w",
				ErrInvalidInput, sum, stats.Backend, limit, solver.ErrCoefficientRange)
		}
	}

	// Stage 2 - encode.
	sess := s.backend.NewSession()
	m, err := Build(sess, dist)
	if err != nil {
		return Result{}, err
	}
	if err = m.EliminateSubtours(s.opts.Formulation, s.opts.RedundantDistinct); err != nil {
		return Result{}, err
	}
	if err = m.ComposeObjective(); err != nil {
		return Result{}, err
	}
	stats.Vars, stats.Constraints = m.NumVars(), m.NumConstraints()
	if st, ok := sess.(solver.Stats); ok {
		stats.BackendVars, stats.BackendRows = st.NumVars(), st.NumConstraints()
	}
	stats.BuildTime = time.Since(start)
	logger.Debug("model built", "n", stats.N, "vars", stats.Vars, "constraints", stats.Constraints,
		"formulation", s.opts.Formulation, "backend", stats.Backend)

	// Stage 3 - solve.
	solveStart := time.Now()
	if err = s.invoke(ctx, m); err != nil {
		stats.SolveTime = time.Since(solveStart)
		logger.Debug("solve failed", "err", err, "elapsed", stats.SolveTime)
		return Result{}, err
	}
	stats.SolveTime = time.Since(solveStart)

	// Stage 4 - decode.
	tour, err := m.Decode()
	if err != nil {
		return Result{}, err
	}
	cost, err := dist.TourCost(tour)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInconsistentModel, err)
	}
	ranks, err := m.Ranks()
	if err != nil {
		return Result{}, err
	}

	// Stage 5 - optional self-check.
	if s.opts.Verify {
		if err = verify(m, tour, cost, ranks); err != nil {
			return Result{}, err
		}
	}

	var assignment [][]bool
	if s.opts.KeepAssignment {
		if assignment, err = m.Assignment(); err != nil {
			return Result{}, err
		}
	}

	logger.Debug("solved", "cost", cost, "tour", tour, "elapsed", stats.SolveTime)

	return Result{
		Tour:       tour,
		Cost:       cost,
		Optimal:    m.Status() == solver.Sat,
		Ranks:      ranks,
		RunID:      runID,
		Assignment: assignment,
	}, nil
}

// invoke runs Model.Invoke under the timeout with the progress display.
// The indicator is stopped and joined before invoke returns, on every path.
func (s *Solver) invoke(ctx context.Context, m *Model) error {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	ind := s.opts.progress()
	ind.Start(ctx)
	defer ind.Stop()

	return m.Invoke(ctx)
}

// verify re-checks the decoded tour against the model.
func verify(m *Model, tour []int, cost int64, ranks []int64) error {
	obj, err := m.ObjectiveValue()
	if err != nil {
		return err
	}
	if obj != cost {
		return fmt.Errorf("%w: objective %d differs from tour cost %d", ErrInconsistentModel, obj, cost)
	}

	return CheckRanks(tour, ranks)
}

// Outcome classifies a solve error into a short label for logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNoSolution):
		return "no_solution"
	case errors.Is(err, ErrSolverTimeout):
		return "timeout"
	case errors.Is(err, ErrInconsistentModel):
		return "inconsistent"
	default:
		return "error"
	}
}
