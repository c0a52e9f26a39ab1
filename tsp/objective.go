package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/solver"
)

// ComposeObjective binds minimize Σ dist[i][j]·x[i][j] to the session.
// Diagonal terms vanish (x[i][i] == 0) and zero costs add nothing, so both
// are omitted. matrix.NewDistance guarantees the sum fits int64.
func (m *Model) ComposeObjective() error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrInvalidInput)
	}
	if m.stage != stageSubtours {
		return fmt.Errorf("%w: objective composed out of order", ErrInvalidInput)
	}
	m.stage = stageObjective
	if m.n == 1 {
		return nil
	}

	var (
		n     = m.n
		terms = make([]solver.Term, 0, n*(n-1))
		i, j  int
		c     int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if c = m.dist.Cost(i, j); c == 0 {
				continue
			}
			terms = append(terms, solver.Term{Coef: c, Var: m.x[i*n+j]})
		}
	}
	m.objective = solver.Expr{Terms: terms}

	if err := m.sess.SetObjective(m.objective, solver.Minimize); err != nil {
		return fmt.Errorf("tsp: set objective: %w", err)
	}

	return nil
}

// ObjectiveValue evaluates the bound objective under the solver assignment.
func (m *Model) ObjectiveValue() (int64, error) {
	if m.stage != stageInvoked || m.status != solver.Sat {
		return 0, fmt.Errorf("%w: no assignment", ErrInconsistentModel)
	}
	if m.n == 1 {
		return 0, nil
	}

	return m.objective.Evaluate(m.sess.Value)
}
