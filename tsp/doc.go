// Package tsp solves the Travelling Salesman Problem exactly by encoding it
// as a boolean/integer optimization model and delegating the search to a
// solver.Backend.
//
// Pipeline (one fresh Model per solve, never shared):
//
//	Build             → edge variables x[i][j], x[i][i] == 0, degree constraints
//	EliminateSubtours → Miller–Tucker–Zemlin ranks u[1..n−1] ∈ [1, n−1]
//	ComposeObjective  → minimize Σ dist[i][j]·x[i][j]
//	Invoke            → Session.Check; Unsat ⇒ ErrNoSolution, Unknown ⇒ ErrSolverTimeout
//	Decode            → walk successors from city 0 into a closed tour
//
// Solver wraps the pipeline with options, logging, progress display and
// metrics. Two MTZ formulations are available:
//
//   - FormulationSuccessor:  x[i][j] ⇒ u[i] + 1 == u[j]
//   - FormulationInequality: u[i] − u[j] + n·x[i][j] ≤ n − 1
//
// Both forbid every cycle that avoids city 0. Instances with n == 1 (empty
// tour) and n == 2 (forced round trip) skip the rank machinery entirely.
//
// Errors are sentinels (ErrInvalidInput, ErrNoSolution, ErrSolverTimeout,
// ErrInconsistentModel) wrapped with context; match them with errors.Is.
// A failed solve never returns a partial tour.
package tsp
