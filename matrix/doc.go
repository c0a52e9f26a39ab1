// Package matrix holds the distance matrix consumed by the TSP encoders.
//
// The package provides:
//
//   - Distance: an immutable n×n matrix of nonnegative int64 costs stored in a
//     flat row-major slice. The matrix may be asymmetric; diagonal entries are
//     kept but ignored by the encoders.
//   - Validators (ValidateRows, ValidateTour) that return plain sentinels so
//     call sites can wrap them uniformly.
//   - Deterministic instance generators (Random, Ring, Grid) for tests,
//     benchmarks and the CLI.
//
// A Distance is read-only after construction and safe for concurrent readers.
package matrix
