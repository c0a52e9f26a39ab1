// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Distance is an immutable n×n matrix of nonnegative integer costs.
// Entry (i,j) is the cost of travelling from city i to city j.
type Distance struct {
	n    int     // order of the matrix
	data []int64 // flat backing storage, len == n*n, row-major
}

// distanceErrorf wraps an underlying error with Distance method context.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// NewDistance validates rows and returns an independent copy as a *Distance.
//
// Contracts:
//   - len(rows) ≥ 1 and every row has len(rows) entries.
//   - Every entry is ≥ 0 (the diagonal included).
//   - The sum of all off-diagonal entries fits into int64, so any objective
//     built over the matrix cannot overflow.
//
// Complexity: O(n²) time and memory.
func NewDistance(rows [][]int64) (*Distance, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	var (
		n    = len(rows)
		data = make([]int64, n*n)
		i    int
	)
	for i = 0; i < n; i++ {
		copy(data[i*n:(i+1)*n], rows[i])
	}

	return &Distance{n: n, data: data}, nil
}

// MustDistance is like NewDistance but panics on invalid input.
// Intended for package-level fixtures and tests.
func MustDistance(rows [][]int64) *Distance {
	d, err := NewDistance(rows)
	if err != nil {
		panic(err)
	}

	return d
}

// FromFloat64 converts fractional costs into a Distance by multiplying every
// entry by scale and rounding to the nearest integer.
//
// Errors: ErrBadScale, ErrNaNInf, plus everything NewDistance returns.
//
// Complexity: O(n²).
func FromFloat64(rows [][]float64, scale float64) (*Distance, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrBadScale
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	var (
		out  = make([][]int64, len(rows))
		i, j int
		v    float64
	)
	for i = range rows {
		out[i] = make([]int64, len(rows[i]))
		for j = range rows[i] {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromFloat64: entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			v = math.Round(v * scale)
			if v > math.MaxInt64 || v < math.MinInt64 {
				return nil, fmt.Errorf("FromFloat64: entry (%d,%d): %w", i, j, ErrOverflow)
			}
			out[i][j] = int64(v)
		}
	}

	return NewDistance(out)
}

// N returns the number of cities.
func (d *Distance) N() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the cost of edge i→j.
// Complexity: O(1).
func (d *Distance) At(i, j int) (int64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, distanceErrorf("At", i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Cost is the unchecked accessor used in hot loops once indices are known
// to be valid. It panics on out-of-range indices like a slice access would.
func (d *Distance) Cost(i, j int) int64 {
	return d.data[i*d.n+j]
}

// Row returns a copy of row i.
func (d *Distance) Row(i int) ([]int64, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= d.n {
		return nil, distanceErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out, nil
}

// Rows returns a deep copy of the matrix as nested slices.
func (d *Distance) Rows() [][]int64 {
	if d == nil {
		return nil
	}
	out := make([][]int64, d.n)

	var i int
	for i = 0; i < d.n; i++ {
		out[i] = make([]int64, d.n)
		copy(out[i], d.data[i*d.n:(i+1)*d.n])
	}

	return out
}

// IsSymmetric reports whether d[i][j] == d[j][i] for every pair.
// Complexity: O(n²) over the upper triangle.
func (d *Distance) IsSymmetric() bool {
	if d == nil {
		return false
	}

	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return false
			}
		}
	}

	return true
}

// MaxEntry returns the largest off-diagonal cost (0 when n == 1).
func (d *Distance) MaxEntry() int64 {
	if d == nil {
		return 0
	}

	var (
		best int64
		i, j int
	)
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if i != j && d.data[i*d.n+j] > best {
				best = d.data[i*d.n+j]
			}
		}
	}

	return best
}

// OffDiagonalSum returns Σ d[i][j] over i != j. NewDistance guarantees it
// fits int64.
func (d *Distance) OffDiagonalSum() int64 {
	if d == nil {
		return 0
	}

	var (
		sum  int64
		i, j int
	)
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if i != j {
				sum += d.data[i*d.n+j]
			}
		}
	}

	return sum
}

// TourCost sums d[tour[k]][tour[k+1]] along a closed tour. Diagonal steps
// (the [0 0] tour of a single city) cost nothing.
// The tour is validated with ValidateTour first.
//
// Complexity: O(n).
func (d *Distance) TourCost(tour []int) (int64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if err := ValidateTour(tour, d.n); err != nil {
		return 0, err
	}

	var (
		sum int64
		k   int
	)
	for k = 0; k+1 < len(tour); k++ {
		if tour[k] == tour[k+1] {
			continue
		}
		sum += d.data[tour[k]*d.n+tour[k+1]]
	}

	return sum, nil
}

// String implements fmt.Stringer for easy debugging.
func (d *Distance) String() string {
	if d == nil {
		return "<nil>"
	}

	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < d.n; i++ {
		b.WriteByte('[')
		for j = 0; j < d.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", d.data[i*d.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
