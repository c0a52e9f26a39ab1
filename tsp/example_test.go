// Package tsp_test provides runnable, deterministic examples of the exact
// MTZ pipeline. Instances have a unique optimum so the printed tours are
// stable.
package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tspmtz/solver/pbsat"
	"github.com/katalvlaran/tspmtz/tsp"
)

// ExampleSolve solves a small asymmetric instance with the default options.
func ExampleSolve() {
	rows := [][]int64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}

	res, err := tsp.Solve(context.Background(), rows, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tour:", res.Tour)
	fmt.Println("cost:", res.Cost)
	// Output:
	// tour: [0 2 3 1 0]
	// cost: 21
}

// ExampleModel drives the pipeline stage by stage on one session.
func ExampleModel() {
	dist, err := tsp.NewInstance([][]int64{
		{0, 1, 4},
		{9, 0, 1},
		{1, 9, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m, _ := tsp.Build(pbsat.New().NewSession(), dist)
	_ = m.EliminateSubtours(tsp.FormulationInequality, false)
	_ = m.ComposeObjective()
	if err = m.Invoke(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}
	tour, _ := m.Decode()
	obj, _ := m.ObjectiveValue()
	fmt.Println(tour, obj)
	// Output:
	// [0 1 2 0] 3
}

// ExampleSubtours shows the cycle report used in decode diagnostics.
func ExampleSubtours() {
	fmt.Println(tsp.Subtours([]int{1, 0, 3, 4, 2}))
	// Output:
	// [[0 1] [2 3 4]]
}
