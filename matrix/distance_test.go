// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/matrix"
)

func TestNewDistance_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]int64{{0, 1, 2}, {3, 0, 4}, {5, 6, 0}}
	d, err := matrix.NewDistance(rows)
	require.NoError(t, err)
	rows[0][1] = 99

	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
	assert.Equal(t, 3, d.N())
	assert.EqualValues(t, 6, d.Cost(2, 1))

	out := d.Rows()
	out[2][1] = 0
	assert.EqualValues(t, 6, d.Cost(2, 1), "Rows returns a deep copy")

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 4}, row)

	assert.False(t, d.IsSymmetric())
	assert.EqualValues(t, 6, d.MaxEntry())
	assert.Equal(t, "[0, 1, 2]\n[3, 0, 4]\n[5, 6, 0]\n", d.String())
}

func TestDistance_Bounds(t *testing.T) {
	t.Parallel()

	d := matrix.MustDistance([][]int64{{0, 1}, {1, 0}})
	_, err := d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.True(t, d.IsSymmetric())

	var nilD *matrix.Distance
	assert.Zero(t, nilD.N())
	_, err = nilD.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = nilD.TourCost([]int{0, 0})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.Nil(t, nilD.Rows())
	assert.Equal(t, "<nil>", nilD.String())

	assert.Panics(t, func() { matrix.MustDistance(nil) })
}

func TestDistance_TourCost(t *testing.T) {
	t.Parallel()

	d := matrix.MustDistance([][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})

	tests := []struct {
		name string
		tour []int
		want int64
		err  error
	}{
		{"optimal", []int{0, 1, 3, 2, 0}, 80, nil},
		{"reversed", []int{0, 2, 3, 1, 0}, 80, nil},
		{"other", []int{0, 1, 2, 3, 0}, 95, nil},
		{"short", []int{0, 1, 2, 0}, 0, matrix.ErrBadTour},
		{"open", []int{0, 1, 2, 3, 1}, 0, matrix.ErrBadTour},
		{"repeat", []int{0, 1, 1, 3, 0}, 0, matrix.ErrBadTour},
		{"range", []int{0, 1, 7, 3, 0}, 0, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := d.TourCost(tc.tour)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDistance_DiagonalIsIgnored(t *testing.T) {
	t.Parallel()

	single := matrix.MustDistance([][]int64{{5}})
	got, err := single.TourCost([]int{0, 0})
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.Zero(t, single.OffDiagonalSum())

	d := matrix.MustDistance([][]int64{
		{9, 1, 2},
		{3, 9, 4},
		{5, 6, 9},
	})
	got, err = d.TourCost([]int{0, 1, 2, 0})
	require.NoError(t, err)
	assert.EqualValues(t, 1+4+5, got)
	assert.EqualValues(t, 1+2+3+4+5+6, d.OffDiagonalSum())

	var nilD *matrix.Distance
	assert.Zero(t, nilD.OffDiagonalSum())
}

func TestFromFloat64(t *testing.T) {
	t.Parallel()

	d, err := matrix.FromFloat64([][]float64{{0, 1.25}, {2.004, 0}}, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 125, d.Cost(0, 1))
	assert.EqualValues(t, 200, d.Cost(1, 0))

	_, err = matrix.FromFloat64([][]float64{{0, 1}, {1, 0}}, 0)
	require.ErrorIs(t, err, matrix.ErrBadScale)
	_, err = matrix.FromFloat64([][]float64{{0, math.NaN()}, {1, 0}}, 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.FromFloat64([][]float64{{0, 1e30}, {1, 0}}, 1)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	_, err = matrix.FromFloat64([][]float64{{0, -1}, {1, 0}}, 1)
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
	_, err = matrix.FromFloat64(nil, 1)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}
