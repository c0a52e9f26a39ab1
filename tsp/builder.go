// Package tsp — Model Builder.
//
// Build allocates the edge-variable arena and the degree constraints:
//
//	x[i][i] == 0                      for every city i
//	x[i][j] ∈ {0,1}                   for every ordered pair i ≠ j
//	Σ_j x[i][j] == 1                  (single successor)
//	Σ_j x[j][i] == 1                  (single predecessor)
//
// Complexity: O(n²) variables and O(n) degree rows of length n.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/matrix"
	"github.com/katalvlaran/tspmtz/solver"
)

// stage tracks how far a Model has progressed through the pipeline.
type stage uint8

const (
	stageBuilt stage = iota
	stageSubtours
	stageObjective
	stageInvoked
)

// Model is the encoding of one instance inside one solver session.
// It is owned by a single solve and must not be shared.
type Model struct {
	n    int
	dist *matrix.Distance
	sess solver.Session

	x []solver.Var // edge arena, x[i*n+j]
	u []solver.Var // ranks, u[0] unused; nil for n ≤ 2

	objective solver.Expr

	numVars        int
	numConstraints int

	stage  stage
	status solver.Status
}

// Build declares the edge variables and degree constraints of dist in sess.
//
// Contracts:
//   - sess must be fresh; Build is its only writer until Invoke.
//   - dist is already validated (see matrix.NewDistance / Validate).
//   - n == 1 declares nothing: the single-city tour needs no model.
//
// Errors: ErrInvalidInput (nil arguments) before any session call; backend
// errors wrapped with the offending variable name.
func Build(sess solver.Session, dist *matrix.Distance) (*Model, error) {
	if sess == nil {
		return nil, fmt.Errorf("%w: nil solver session", ErrInvalidInput)
	}
	if dist == nil || dist.N() < 1 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, matrix.ErrNilMatrix)
	}

	m := &Model{n: dist.N(), dist: dist, sess: sess}
	if m.n == 1 {
		return m, nil
	}

	var (
		n    = m.n
		i, j int
		v    solver.Var
		err  error
	)

	// Stage 1 - edge arena; the diagonal is pinned to 0.
	m.x = make([]solver.Var, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = sess.Declare(solver.KindBool, 0, 1, edgeName(i, j))
			if err != nil {
				return nil, fmt.Errorf("tsp: declare %s: %w", edgeName(i, j), err)
			}
			m.x[i*n+j] = v
			m.numVars++
			if i == j {
				if err = m.add(solver.Fix(v, 0)); err != nil {
					return nil, err
				}
			}
		}
	}

	// Stage 2 - degree constraints.
	var (
		out = make([]solver.Var, n)
		in  = make([]solver.Var, n)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[j] = m.x[i*n+j]
			in[j] = m.x[j*n+i]
		}
		if err = m.add(solver.Constraint{Expr: solver.Sum(out...), Rel: solver.Eq, RHS: 1}); err != nil {
			return nil, err
		}
		if err = m.add(solver.Constraint{Expr: solver.Sum(in...), Rel: solver.Eq, RHS: 1}); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// add forwards c to the session and counts it.
func (m *Model) add(c solver.Constraint) error {
	if err := m.sess.Add(c); err != nil {
		return fmt.Errorf("tsp: add constraint %s: %w", c, err)
	}
	m.numConstraints++

	return nil
}

// N returns the number of cities.
func (m *Model) N() int { return m.n }

// Edge returns the handle of x[i][j]. ok is false when out of range or n == 1.
func (m *Model) Edge(i, j int) (solver.Var, bool) {
	if m.x == nil || i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, false
	}

	return m.x[i*m.n+j], true
}

// Rank returns the handle of u[i]. ok is false for the root or when the
// model carries no ranks.
func (m *Model) Rank(i int) (solver.Var, bool) {
	if m.u == nil || i < 1 || i >= m.n {
		return 0, false
	}

	return m.u[i], true
}

// NumVars returns the number of model-level variables declared so far.
func (m *Model) NumVars() int { return m.numVars }

// NumConstraints returns the number of model-level constraints added so far.
func (m *Model) NumConstraints() int { return m.numConstraints }

// edgeName reconstructs the diagnostic name of x[i][j].
func edgeName(i, j int) string { return fmt.Sprintf("x[%d][%d]", i, j) }

// rankName reconstructs the diagnostic name of u[i].
func rankName(i int) string { return fmt.Sprintf("u[%d]", i) }
