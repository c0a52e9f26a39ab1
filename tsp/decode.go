// Package tsp — Path Decoder.
//
// Decode reads the successor of every city from the assignment and walks it
// from city 0 for exactly n−1 steps, then closes the cycle. The walk is
// bounded, so a corrupted assignment cannot loop forever.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/solver"
)

// Decode reconstructs the tour from a Sat assignment.
//
// Errors: ErrInconsistentModel when a city has zero or several successors,
// when the walk returns to 0 early or revisits a city (a subtour), or when
// the assignment cannot be read.
//
// Complexity: O(n²) Value reads, O(n) walk.
func (m *Model) Decode() ([]int, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidInput)
	}
	if m.stage != stageInvoked || m.status != solver.Sat {
		return nil, fmt.Errorf("%w: decode without a satisfying assignment", ErrInconsistentModel)
	}
	if m.n == 1 {
		return []int{0, 0}, nil
	}

	succ, err := m.successors()
	if err != nil {
		return nil, err
	}

	var (
		n       = m.n
		tour    = make([]int, 0, n+1)
		visited = make([]bool, n)
		cur     = 0
		step    int
		next    int
	)
	tour = append(tour, 0)
	visited[0] = true
	for step = 1; step < n; step++ {
		next = succ[cur]
		if next == 0 || visited[next] {
			return nil, fmt.Errorf("%w: walk closed after %d of %d cities; subtours %v",
				ErrInconsistentModel, step, n, Subtours(succ))
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}
	if succ[cur] != 0 {
		return nil, fmt.Errorf("%w: city %d does not return to 0", ErrInconsistentModel, cur)
	}

	return append(tour, 0), nil
}

// successors reads succ[i] = the unique j with x[i][j] == 1.
func (m *Model) successors() ([]int, error) {
	var (
		n    = m.n
		succ = make([]int, n)
		i, j int
		val  int64
		err  error
	)
	for i = 0; i < n; i++ {
		succ[i] = -1
		for j = 0; j < n; j++ {
			val, err = m.sess.Value(m.x[i*n+j])
			if err != nil {
				return nil, fmt.Errorf("%w: read %s: %w", ErrInconsistentModel, edgeName(i, j), err)
			}
			if val == 0 {
				continue
			}
			if succ[i] != -1 {
				return nil, fmt.Errorf("%w: city %d has successors %d and %d", ErrInconsistentModel, i, succ[i], j)
			}
			succ[i] = j
		}
		if succ[i] == -1 {
			return nil, fmt.Errorf("%w: city %d has no successor", ErrInconsistentModel, i)
		}
	}

	return succ, nil
}

// Ranks returns the MTZ rank of every city from the assignment
// (ranks[0] == 0). It returns nil for models without ranks (n ≤ 2).
func (m *Model) Ranks() ([]int64, error) {
	if m.stage != stageInvoked || m.status != solver.Sat {
		return nil, fmt.Errorf("%w: no assignment", ErrInconsistentModel)
	}
	if m.u == nil {
		return nil, nil
	}

	var (
		ranks = make([]int64, m.n)
		i     int
		err   error
	)
	for i = 1; i < m.n; i++ {
		if ranks[i], err = m.sess.Value(m.u[i]); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInconsistentModel, rankName(i), err)
		}
	}

	return ranks, nil
}

// Assignment returns the x matrix as booleans, for diagnostics and verbose
// output.
func (m *Model) Assignment() ([][]bool, error) {
	if m.stage != stageInvoked || m.status != solver.Sat {
		return nil, fmt.Errorf("%w: no assignment", ErrInconsistentModel)
	}

	var (
		out  = make([][]bool, m.n)
		i, j int
		val  int64
		err  error
	)
	for i = 0; i < m.n; i++ {
		out[i] = make([]bool, m.n)
		if m.x == nil {
			continue
		}
		for j = 0; j < m.n; j++ {
			if val, err = m.sess.Value(m.x[i*m.n+j]); err != nil {
				return nil, fmt.Errorf("%w: read %s: %w", ErrInconsistentModel, edgeName(i, j), err)
			}
			out[i][j] = val != 0
		}
	}

	return out, nil
}
