package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/tsp"
)

func TestSubtours(t *testing.T) {
	tests := []struct {
		name string
		succ []int
		want [][]int
	}{
		{"hamiltonian", []int{2, 0, 3, 1}, nil},
		{"two pairs", []int{1, 0, 3, 2}, [][]int{{0, 1}, {2, 3}}},
		{"self loop", []int{0, 2, 1}, [][]int{{0}, {1, 2}}},
		{"rotated", []int{3, 4, 5, 0, 1, 2}, [][]int{{0, 3}, {1, 4}, {2, 5}}},
		{"canonical rotation", []int{1, 2, 0, 5, 3, 4}, [][]int{{0, 1, 2}, {3, 5, 4}}},
		{"broken chain", []int{1, 7, 0}, [][]int{{0, 1}, {2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tsp.Subtours(tc.succ))
		})
	}
}

func TestTourHelpers(t *testing.T) {
	tour := []int{0, 3, 1, 2, 0}
	rev := tsp.ReverseTour(tour)
	assert.Equal(t, []int{0, 2, 1, 3, 0}, rev)
	assert.Equal(t, []int{0, 3, 1, 2, 0}, tour, "input untouched")

	assert.True(t, tsp.SameCycle(tour, rev))
	assert.True(t, tsp.SameCycle(tour, tour))
	assert.False(t, tsp.SameCycle(tour, []int{0, 1, 3, 2, 0}))
	assert.False(t, tsp.SameCycle(tour, []int{0, 3, 1, 0}))

	succ, err := tsp.Successors(tour, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 0, 1}, succ)
	assert.Nil(t, tsp.Subtours(succ))

	_, err = tsp.Successors([]int{0, 1, 1, 0}, 3)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestCheckRanks(t *testing.T) {
	tour := []int{0, 2, 1, 3, 0}
	require.NoError(t, tsp.CheckRanks(tour, []int64{0, 2, 1, 3}))
	require.NoError(t, tsp.CheckRanks(tour, nil))

	err := tsp.CheckRanks(tour, []int64{0, 2, 2, 3})
	require.ErrorIs(t, err, tsp.ErrInconsistentModel)
	assert.Contains(t, err.Error(), "2→1")
}
