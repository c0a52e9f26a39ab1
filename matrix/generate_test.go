// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/matrix"
)

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(7, 40, 3, false)
	require.NoError(t, err)
	b, err := matrix.Random(7, 40, 3, false)
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())

	z0, err := matrix.Random(5, 40, 0, true)
	require.NoError(t, err)
	z1, err := matrix.Random(5, 40, 1, true)
	require.NoError(t, err)
	assert.Equal(t, z0.Rows(), z1.Rows(), "seed 0 maps to the default seed")
	assert.True(t, z0.IsSymmetric())

	for i := 0; i < a.N(); i++ {
		for j := 0; j < a.N(); j++ {
			c := a.Cost(i, j)
			if i == j {
				assert.Zero(t, c)
				continue
			}
			assert.GreaterOrEqual(t, c, int64(1))
			assert.LessOrEqual(t, c, int64(40))
		}
	}
	assert.LessOrEqual(t, a.MaxEntry(), int64(40))
}

func TestGenerators_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Random(0, 10, 1, false)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.Random(3, 0, 1, false)
	require.ErrorIs(t, err, matrix.ErrBadScale)
	_, err = matrix.Ring(0)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.Grid(0, 5, 1)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.Grid(3, 0, 1)
	require.ErrorIs(t, err, matrix.ErrBadScale)
}

func TestRing(t *testing.T) {
	t.Parallel()

	d, err := matrix.Ring(6)
	require.NoError(t, err)
	assert.True(t, d.IsSymmetric())
	assert.EqualValues(t, 3, d.Cost(0, 3))
	assert.EqualValues(t, 1, d.Cost(0, 5))

	cost, err := d.TourCost([]int{0, 1, 2, 3, 4, 5, 0})
	require.NoError(t, err)
	assert.EqualValues(t, 6, cost)
}

func TestGrid_Metric(t *testing.T) {
	t.Parallel()

	d, err := matrix.Grid(8, 20, 11)
	require.NoError(t, err)
	require.True(t, d.IsSymmetric())

	// Manhattan distances satisfy the triangle inequality.
	for i := 0; i < d.N(); i++ {
		for j := 0; j < d.N(); j++ {
			for k := 0; k < d.N(); k++ {
				assert.LessOrEqual(t, d.Cost(i, j), d.Cost(i, k)+d.Cost(k, j))
			}
		}
	}
}
