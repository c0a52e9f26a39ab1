// Package tsp — tour utilities.
//
// Helpers operating purely on tour structure (index sequences):
//   - ReverseTour: the same cycle traversed in the opposite direction.
//   - SameCycle: equality up to direction for closed tours rooted at 0.
//   - CheckRanks: MTZ ranks strictly increase along the visiting order.
//   - Successors: tour → successor map (inverse of Decode's walk).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/matrix"
)

// ReverseTour returns a fresh copy of a closed tour with its interior
// reversed: [0 a b c 0] → [0 c b a 0].
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	var i, k = 1, len(out) - 2
	for i < k {
		out[i], out[k] = out[k], out[i]
		i++
		k--
	}

	return out
}

// SameCycle reports whether a and b describe the same undirected cycle:
// identical, or one is the reversal of the other. Both must be closed tours
// rooted at the same city.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 || a[0] != b[0] {
		return false
	}

	var (
		last    = len(a) - 1
		forward = true
		back    = true
		i       int
	)
	for i = 0; i <= last; i++ {
		if a[i] != b[i] {
			forward = false
		}
		if i == 0 || i == last {
			if a[i] != b[i] {
				back = false
			}
			continue
		}
		if a[i] != b[last-i] {
			back = false
		}
	}

	return forward || back
}

// Successors converts a closed tour into succ[i] = next city after i.
func Successors(tour []int, n int) ([]int, error) {
	if err := matrix.ValidateTour(tour, n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	succ := make([]int, n)

	var k int
	for k = 0; k < n; k++ {
		succ[tour[k]] = tour[k+1]
	}

	return succ, nil
}

// CheckRanks verifies the MTZ property on a decoded tour: for consecutive
// non-root cities a → b, ranks[b] > ranks[a]. ranks may be nil (n ≤ 2).
//
// Errors: ErrInconsistentModel naming the first violating edge.
//
// Complexity: O(n).
func CheckRanks(tour []int, ranks []int64) error {
	if ranks == nil {
		return nil
	}

	var k int
	for k = 1; k+1 < len(tour); k++ {
		a, b := tour[k], tour[k+1]
		if a == 0 || b == 0 {
			continue
		}
		if a >= len(ranks) || b >= len(ranks) {
			return fmt.Errorf("%w: rank index out of range on edge %d→%d", ErrInconsistentModel, a, b)
		}
		if ranks[b] <= ranks[a] {
			return fmt.Errorf("%w: rank does not increase on edge %d→%d (%d → %d)",
				ErrInconsistentModel, a, b, ranks[a], ranks[b])
		}
	}

	return nil
}
