// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape/value checks on raw cost rows and tours.
//  - Return sentinels wrapped with a validator tag so errors.Is keeps working.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; ValidateTour allocates one marker slice.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows checks that rows form a square matrix of nonnegative costs
// whose total off-diagonal sum fits into int64.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNegativeWeight, ErrOverflow.
// Complexity: O(n²).
func ValidateRows(rows [][]int64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrEmpty)
	}

	var (
		i, j  int
		v     int64
		total int64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateRows: entry (%d,%d)=%d", i, j, v), ErrNegativeWeight)
			}
			if i == j {
				continue
			}
			if total > math.MaxInt64-v {
				return validatorErrorf("ValidateRows", ErrOverflow)
			}
			total += v
		}
	}

	return nil
}

// ValidateTour enforces the closed-tour shape for n cities rooted at city 0:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each city in [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return validatorErrorf(fmt.Sprintf("ValidateTour: len=%d, n=%d", len(tour), n), ErrBadTour)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return validatorErrorf("ValidateTour: tour must start and end at city 0", ErrBadTour)
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return validatorErrorf(fmt.Sprintf("ValidateTour: city %d at position %d", v, i), ErrOutOfRange)
		}
		if seen[v] {
			return validatorErrorf(fmt.Sprintf("ValidateTour: city %d visited twice", v), ErrBadTour)
		}
		seen[v] = true
	}

	return nil
}
