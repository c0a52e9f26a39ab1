// Package tsp - input validation.
//
// Validation is the first stage of every solve and runs before any solver
// session is created, so malformed input never reaches a backend.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/matrix"
)

// Validate checks raw cost rows: non-empty, square, nonnegative, and with a
// worst-case objective that fits int64. Failures wrap both ErrInvalidInput
// and the matrix sentinel that triggered them.
//
// Complexity: O(n²).
func Validate(rows [][]int64) error {
	if err := matrix.ValidateRows(rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// NewInstance validates rows and returns the immutable distance matrix.
func NewInstance(rows [][]int64) (*matrix.Distance, error) {
	d, err := matrix.NewDistance(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return d, nil
}
