// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and validators return these sentinels (optionally wrapped
// with a call-site tag via fmt.Errorf("...: %w")). Callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrEmpty is returned when a matrix has no rows.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that a row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeWeight signals a negative cost entry.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNaNInf signals a NaN or ±Inf value in floating-point input.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOverflow signals that the worst-case tour objective does not fit int64.
	ErrOverflow = errors.New("matrix: objective sum overflows int64")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadScale is returned by FromFloat64 for a non-positive or non-finite scale.
	ErrBadScale = errors.New("matrix: invalid scale")

	// ErrBadTour signals a sequence that is not a closed Hamiltonian tour from city 0.
	ErrBadTour = errors.New("matrix: invalid tour")
)
