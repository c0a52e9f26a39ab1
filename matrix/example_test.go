// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/tspmtz/matrix"
)

// ExampleDistance_TourCost prices a closed tour on a 4-city instance.
func ExampleDistance_TourCost() {
	d, err := matrix.NewDistance([][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cost, err := d.TourCost([]int{0, 1, 3, 2, 0})
	fmt.Println(cost, err, d.IsSymmetric())
	// Output:
	// 80 <nil> true
}
