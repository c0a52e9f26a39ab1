package tsp

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput is returned for a malformed distance matrix or a nil
	// collaborator. It is raised before any solver interaction.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrNoSolution is returned when the backend proves the model
	// unsatisfiable. For a valid matrix this indicates an encoding defect.
	ErrNoSolution = errors.New("tsp: solver reported the model unsatisfiable")

	// ErrSolverTimeout is returned when the backend is inconclusive within
	// the time budget. Retrying is the caller's decision.
	ErrSolverTimeout = errors.New("tsp: solver inconclusive within budget")

	// ErrInconsistentModel is returned when the assignment violates a
	// decode-time invariant (no successor, subtour, cost mismatch).
	ErrInconsistentModel = errors.New("tsp: inconsistent solver assignment")
)

// Result is the outcome of a successful solve.
type Result struct {
	// Tour starts and ends at city 0; len(Tour) == n+1.
	Tour []int

	// Cost is Σ dist[Tour[k]][Tour[k+1]].
	Cost int64

	// Optimal is true when the backend proved optimality.
	Optimal bool

	// Ranks holds the MTZ rank of every city (Ranks[0] == 0). Nil for n ≤ 2.
	Ranks []int64

	// RunID identifies the solve in logs and metrics.
	RunID string

	// Assignment is the raw x matrix; set only with Options.KeepAssignment.
	Assignment [][]bool

	Stats Stats
}

// Stats describes the model and timings of one solve.
type Stats struct {
	N           int
	Vars        int // model-level variables (x and u)
	Constraints int // model-level constraints
	BackendVars int // backend variables, if the session reports them
	BackendRows int // backend constraints, if the session reports them

	Backend     string
	Formulation Formulation

	BuildTime time.Duration
	SolveTime time.Duration
	Elapsed   time.Duration
}
