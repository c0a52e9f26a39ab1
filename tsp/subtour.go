// Package tsp — Subtour Eliminator (Miller–Tucker–Zemlin).
//
// City 0 is the root and carries no rank. Every other city i gets an integer
// rank u[i] ∈ [1, n−1]. For every ordered pair of distinct non-root cities:
//
//	successor form:  x[i][j] ⇒ u[i] + 1 == u[j]
//	inequality form: u[i] − u[j] + n·x[i][j] ≤ n − 1
//
// Along any used edge between non-root cities the rank strictly increases,
// so a cycle avoiding city 0 would need ranks increasing around a loop.
//
// Optional: x[i][j] ⇒ u[i] ≠ u[j]. Implied by both forms; kept as a knob.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/solver"
)

// EliminateSubtours adds the MTZ rank variables and constraints to m.
// For n ≤ 2 it is a no-op: no cycle can avoid city 0 there.
//
// Complexity: O(n) rank variables, O(n²) constraints.
func (m *Model) EliminateSubtours(f Formulation, redundantDistinct bool) error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrInvalidInput)
	}
	if m.stage != stageBuilt {
		return fmt.Errorf("%w: subtour elimination applied out of order", ErrInvalidInput)
	}
	if f != FormulationSuccessor && f != FormulationInequality {
		return fmt.Errorf("%w: unknown formulation %s", ErrInvalidInput, f)
	}
	m.stage = stageSubtours
	if m.n <= 2 {
		return nil
	}

	var (
		n    = m.n
		hi   = int64(n - 1)
		i, j int
		v    solver.Var
		err  error
	)

	// Stage 1 - rank variables u[1..n-1] ∈ [1, n-1].
	m.u = make([]solver.Var, n)
	for i = 1; i < n; i++ {
		v, err = m.sess.Declare(solver.KindInt, 1, hi, rankName(i))
		if err != nil {
			return fmt.Errorf("tsp: declare %s: %w", rankName(i), err)
		}
		m.u[i] = v
		m.numVars++
	}

	// Stage 2 - ordering constraints over non-root pairs.
	var diff solver.Expr
	for i = 1; i < n; i++ {
		for j = 1; j < n; j++ {
			if i == j {
				continue
			}
			diff = solver.Expr{Terms: []solver.Term{{Coef: 1, Var: m.u[i]}, {Coef: -1, Var: m.u[j]}}}

			switch f {
			case FormulationSuccessor:
				// u[i] - u[j] == -1
				err = m.add(solver.Implies(m.x[i*n+j], diff, solver.Eq, -1))
			case FormulationInequality:
				err = m.add(solver.Constraint{Expr: diff.Plus(int64(n), m.x[i*n+j]), Rel: solver.Le, RHS: hi})
			}
			if err != nil {
				return err
			}

			if redundantDistinct {
				if err = m.add(solver.Implies(m.x[i*n+j], diff, solver.Ne, 0)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
