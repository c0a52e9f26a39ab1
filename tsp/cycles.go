// Package tsp — cycle decomposition of a successor map.
//
// A successor map with one outgoing and one incoming edge per city is a
// permutation, i.e. a disjoint union of cycles. A valid tour is a single
// cycle; any extra cycle is a subtour. Cycles are reported in canonical form
// (rotated to their smallest city) and sorted by that city, so output is
// deterministic.
package tsp

import "sort"

// Subtours decomposes succ into its cycles. Entries outside [0, n) or
// repeated targets end the current chain; such partial chains are reported
// as-is. The result is nil when succ is a single Hamiltonian cycle.
//
// Complexity: O(n log n).
func Subtours(succ []int) [][]int {
	var (
		n      = len(succ)
		state  = make([]uint8, n) // 0 white, 1 on current chain, 2 done
		cycles [][]int
		start  int
	)
	for start = 0; start < n; start++ {
		if state[start] != 0 {
			continue
		}

		var (
			chain []int
			cur   = start
		)
		for cur >= 0 && cur < n && state[cur] == 0 {
			state[cur] = 1
			chain = append(chain, cur)
			cur = succ[cur]
		}
		// Closed back onto the current chain: cut the cycle out of it.
		if cur >= 0 && cur < n && state[cur] == 1 {
			for k, v := range chain {
				if v == cur {
					cycles = append(cycles, canonicalCycle(chain[k:]))
					break
				}
			}
		} else if len(chain) > 0 {
			cycles = append(cycles, chain)
		}
		for _, v := range chain {
			state[v] = 2
		}
	}

	if len(cycles) == 1 && len(cycles[0]) == n && succ[cycles[0][n-1]] == cycles[0][0] {
		return nil
	}
	sort.Slice(cycles, func(a, b int) bool { return cycles[a][0] < cycles[b][0] })

	return cycles
}

// canonicalCycle rotates c so that its smallest element comes first.
func canonicalCycle(c []int) []int {
	var (
		out   = make([]int, len(c))
		pivot = 0
		i     int
	)
	for i = 1; i < len(c); i++ {
		if c[i] < c[pivot] {
			pivot = i
		}
	}
	for i = range c {
		out[i] = c[(pivot+i)%len(c)]
	}

	return out
}
