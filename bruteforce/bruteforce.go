package bruteforce

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tspmtz/matrix"
)

// MaxCities bounds the instance size Optimum accepts.
const MaxCities = 10

var (
	// ErrTooLarge is returned for instances with more than MaxCities cities.
	ErrTooLarge = errors.New("bruteforce: instance too large for enumeration")

	// ErrNilMatrix is returned for a nil distance matrix.
	ErrNilMatrix = errors.New("bruteforce: nil distance matrix")
)

// Result is an optimal tour found by enumeration.
type Result struct {
	Tour []int // len n+1, Tour[0] == Tour[n] == 0
	Cost int64

	// Evaluated counts the complete tours that were costed.
	Evaluated int
}

// Report is the outcome of CrossCheck.
type Report struct {
	Candidate     []int
	CandidateCost int64 // recomputed from the matrix
	ClaimedCost   int64
	Optimum       Result

	// Problems lists every discrepancy found; empty means the candidate is a
	// valid optimal tour whose claimed cost is correct.
	Problems []string
}

// OK reports whether no discrepancy was found.
func (r Report) OK() bool { return len(r.Problems) == 0 }

// Oracle computes reference optima. Optimum below is the default.
type Oracle interface {
	Optimum(dist *matrix.Distance) (Result, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(dist *matrix.Distance) (Result, error)

// Optimum implements Oracle.
func (f OracleFunc) Optimum(dist *matrix.Distance) (Result, error) { return f(dist) }

// Default is the enumeration oracle.
var Default Oracle = OracleFunc(Optimum)

// Optimum returns a cheapest tour of dist by exhaustive search. Ties are
// broken towards the lexicographically smallest tour.
func Optimum(dist *matrix.Distance) (Result, error) {
	if dist == nil {
		return Result{}, ErrNilMatrix
	}
	n := dist.N()
	if n > MaxCities {
		return Result{}, fmt.Errorf("%w: n=%d, max %d", ErrTooLarge, n, MaxCities)
	}
	if n == 1 {
		return Result{Tour: []int{0, 0}, Cost: 0, Evaluated: 1}, nil
	}

	e := &enumerator{
		dist:     dist,
		n:        n,
		path:     make([]int, n),
		used:     make([]bool, n),
		best:     make([]int, n),
		bestCost: math.MaxInt64,
	}
	e.used[0] = true
	e.dfs(0, 1, 0)

	tour := make([]int, 0, n+1)
	tour = append(tour, e.best...)
	tour = append(tour, 0)

	return Result{Tour: tour, Cost: e.bestCost, Evaluated: e.evaluated}, nil
}

type enumerator struct {
	dist *matrix.Distance
	n    int

	path []int
	used []bool

	best      []int
	bestCost  int64
	evaluated int
}

// dfs extends path[:depth] (ending in last) by every unused city in
// ascending order. Costs never exceed the overflow-checked matrix total.
func (e *enumerator) dfs(last, depth int, cost int64) {
	if depth == e.n {
		total := cost + e.dist.Cost(last, 0)
		e.evaluated++
		if total < e.bestCost {
			e.bestCost = total
			copy(e.best, e.path)
		}

		return
	}

	var next int
	for next = 1; next < e.n; next++ {
		if e.used[next] {
			continue
		}
		e.used[next] = true
		e.path[depth] = next
		e.dfs(next, depth+1, cost+e.dist.Cost(last, next))
		e.used[next] = false
	}
}

// CrossCheck validates tour against dist, recomputes its cost, compares it
// with claimedCost and with the optimum from oracle (nil ⇒ Default).
//
// Structural problems are reported in Report.Problems, not as errors; the
// error return is reserved for oracle failures (e.g. ErrTooLarge).
func CrossCheck(oracle Oracle, dist *matrix.Distance, tour []int, claimedCost int64) (Report, error) {
	if oracle == nil {
		oracle = Default
	}
	if dist == nil {
		return Report{}, ErrNilMatrix
	}

	opt, err := oracle.Optimum(dist)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Candidate:   append([]int(nil), tour...),
		ClaimedCost: claimedCost,
		Optimum:     opt,
	}

	cost, err := dist.TourCost(tour)
	if err != nil {
		rep.Problems = append(rep.Problems, err.Error())

		return rep, nil
	}
	rep.CandidateCost = cost

	if cost != claimedCost {
		rep.Problems = append(rep.Problems,
			fmt.Sprintf("claimed cost %d, recomputed %d", claimedCost, cost))
	}
	if cost != opt.Cost {
		rep.Problems = append(rep.Problems,
			fmt.Sprintf("tour cost %d, optimum %d (%v)", cost, opt.Cost, opt.Tour))
	}

	return rep, nil
}
