// Package tsp_test shares a recording solver.Session fake and small matrix
// helpers across the *_test.go files of this package.
package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/matrix"
	"github.com/katalvlaran/tspmtz/solver"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

var (
	// scenarioA: every off-diagonal cost is 1; optimum 3.
	scenarioA = [][]int64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	// scenarioB: symmetric 4-city instance; optimum 80, e.g. [0 1 3 2 0].
	scenarioB = [][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}

	// asym4: asymmetric 4-city instance; optimum 21 via [0 2 3 1 0].
	asym4 = [][]int64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}
)

func mustDist(t testing.TB, rows [][]int64) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewDistance(rows)
	require.NoError(t, err)

	return d
}

// -----------------------------------------------------------------------------
// Recording fake session
// -----------------------------------------------------------------------------

// fakeSession records every call and answers Check/Value from a script.
// Values are looked up by diagnostic name ("x[i][j]", "u[i]").
type fakeSession struct {
	names       []string
	kinds       []solver.Kind
	bounds      [][2]int64
	constraints []solver.Constraint
	objective   solver.Expr
	sense       solver.Sense
	objectives  int
	checks      int

	status   solver.Status
	checkErr error
	assign   func(name string) (int64, bool)
}

var _ solver.Session = (*fakeSession)(nil)

func (f *fakeSession) Declare(kind solver.Kind, lo, hi int64, name string) (solver.Var, error) {
	f.names = append(f.names, name)
	f.kinds = append(f.kinds, kind)
	f.bounds = append(f.bounds, [2]int64{lo, hi})

	return solver.Var(len(f.names) - 1), nil
}

func (f *fakeSession) Add(c solver.Constraint) error {
	f.constraints = append(f.constraints, c)

	return nil
}

func (f *fakeSession) SetObjective(e solver.Expr, sense solver.Sense) error {
	f.objective, f.sense = e, sense
	f.objectives++

	return nil
}

func (f *fakeSession) Check(ctx context.Context) (solver.Status, error) {
	f.checks++
	if f.checkErr != nil {
		return solver.Unknown, f.checkErr
	}

	return f.status, nil
}

func (f *fakeSession) Value(v solver.Var) (int64, error) {
	if int(v) < 0 || int(v) >= len(f.names) {
		return 0, solver.ErrUnknownVar
	}
	if f.assign == nil {
		return 0, solver.ErrNoAssignment
	}
	val, ok := f.assign(f.names[v])
	if !ok {
		return 0, fmt.Errorf("no scripted value for %s: %w", f.names[v], solver.ErrNoAssignment)
	}

	return val, nil
}

// calls reports the number of interactions of any kind.
func (f *fakeSession) calls() int {
	return len(f.names) + len(f.constraints) + f.objectives + f.checks
}

// violated returns the constraints the scripted assignment breaks.
func (f *fakeSession) violated(t testing.TB) []solver.Constraint {
	t.Helper()

	var bad []solver.Constraint
	for _, c := range f.constraints {
		active := true
		for _, g := range c.If {
			gv, err := f.Value(g)
			require.NoError(t, err)
			if gv == 0 {
				active = false
			}
		}
		if !active {
			continue
		}
		lhs, err := c.Expr.Evaluate(f.Value)
		require.NoError(t, err)
		if !c.Rel.Holds(lhs, c.RHS) {
			bad = append(bad, c)
		}
	}

	return bad
}

// fakeBackend hands out scripted fakeSessions and keeps them for inspection.
type fakeBackend struct {
	script   func(*fakeSession)
	sessions []*fakeSession
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) NewSession() solver.Session {
	s := &fakeSession{status: solver.Sat}
	if b.script != nil {
		b.script(s)
	}
	b.sessions = append(b.sessions, s)

	return s
}

// -----------------------------------------------------------------------------
// Scripted assignments
// -----------------------------------------------------------------------------

// succAssign scripts x from a successor map; ranks follow the walk from 0
// along succ (cities off that walk get rank 1).
func succAssign(succ []int) func(string) (int64, bool) {
	rank := make(map[int]int64, len(succ))
	for cur, r := succ[0], int64(1); cur > 0 && cur < len(succ); cur, r = succ[cur], r+1 {
		if _, seen := rank[cur]; seen {
			break
		}
		rank[cur] = r
	}

	return func(name string) (int64, bool) {
		var i, j int
		if _, err := fmt.Sscanf(name, "x[%d][%d]", &i, &j); err == nil {
			if succ[i] == j {
				return 1, true
			}

			return 0, true
		}
		if _, err := fmt.Sscanf(name, "u[%d]", &i); err == nil {
			if r, ok := rank[i]; ok {
				return r, true
			}

			return 1, true
		}

		return 0, false
	}
}

// tourAssign scripts the assignment that encodes a closed tour.
func tourAssign(tour []int) func(string) (int64, bool) {
	succ := make([]int, len(tour)-1)
	for k := 0; k+1 < len(tour); k++ {
		succ[tour[k]] = tour[k+1]
	}

	return succAssign(succ)
}
