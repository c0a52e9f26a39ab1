// Package bruteforce is an exhaustive reference oracle for small TSP
// instances.
//
// Optimum enumerates every tour that starts at city 0, i.e. (n−1)!
// permutations, and returns a cheapest one. CrossCheck compares a candidate
// tour produced elsewhere (typically by tsp.Solve) against that optimum.
//
// The oracle is deliberately independent of the solver pipeline: it shares
// only the matrix package, so a defect in the encoding cannot hide itself.
//
// Complexity: O(n!) time, O(n) memory. Inputs above MaxCities are rejected.
package bruteforce
