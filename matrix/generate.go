// SPDX-License-Identifier: MIT
// Package matrix - deterministic instance generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - No time-based sources: seed==0 maps to a fixed default seed.
//
// Concurrency:
//   - Every call builds its own *rand.Rand; generators are safe to call
//     from multiple goroutines.

package matrix

import (
	"fmt"
	"math/rand"
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Random returns an n×n matrix with off-diagonal costs drawn uniformly from
// [1, maxCost] and a zero diagonal. When symmetric is true the upper triangle
// is mirrored.
//
// Errors: ErrEmpty for n < 1, ErrBadScale for maxCost < 1.
//
// Complexity: O(n²).
func Random(n int, maxCost int64, seed int64, symmetric bool) (*Distance, error) {
	if n < 1 {
		return nil, validatorErrorf("Random", ErrEmpty)
	}
	if maxCost < 1 {
		return nil, validatorErrorf(fmt.Sprintf("Random: maxCost=%d", maxCost), ErrBadScale)
	}

	var (
		r    = rngFromSeed(seed)
		rows = make([][]int64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]int64, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if symmetric && j < i {
				rows[i][j] = rows[j][i]
				continue
			}
			rows[i][j] = 1 + r.Int63n(maxCost)
		}
	}

	return NewDistance(rows)
}

// Ring returns the symmetric “cycle metric” d(i,j) = min(|i−j|, n−|i−j|).
// Its optimal tour is 0,1,…,n−1,0 with cost n (for n ≥ 3).
func Ring(n int) (*Distance, error) {
	if n < 1 {
		return nil, validatorErrorf("Ring", ErrEmpty)
	}

	var (
		rows = make([][]int64, n)
		i, j int
		d    int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			d = i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			rows[i][j] = int64(d)
		}
	}

	return NewDistance(rows)
}

// Grid places n cities on random integer points of a side×side grid and
// returns their symmetric Manhattan distances.
func Grid(n, side int, seed int64) (*Distance, error) {
	if n < 1 {
		return nil, validatorErrorf("Grid", ErrEmpty)
	}
	if side < 1 {
		return nil, validatorErrorf(fmt.Sprintf("Grid: side=%d", side), ErrBadScale)
	}

	var (
		r    = rngFromSeed(seed)
		xs   = make([]int, n)
		ys   = make([]int, n)
		rows = make([][]int64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		xs[i] = r.Intn(side)
		ys[i] = r.Intn(side)
	}
	for i = 0; i < n; i++ {
		rows[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = int64(absInt(xs[i]-xs[j]) + absInt(ys[i]-ys[j]))
		}
	}

	return NewDistance(rows)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
