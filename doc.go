// Package tspmtz solves small Travelling Salesman instances exactly by
// encoding them as a boolean/integer optimization model and handing the
// model to a constraint solver.
//
// The encoding uses one boolean edge variable x[i][j] per ordered city pair,
// in- and out-degree constraints, Miller–Tucker–Zemlin rank variables u[i]
// to eliminate subtours, and the objective Σ d[i][j]·x[i][j].
//
// Everything is organized under these packages:
//
//	matrix/      — immutable int64 distance matrices, validators, generators
//	solver/      — the solver boundary: variables, linear expressions, sessions
//	solver/pbsat — gophersat pseudo-boolean backend
//	tsp/         — model builder, subtour eliminator, objective, invoke, decode
//	bruteforce/  — exhaustive reference optimum and cross-checker
//	matrixfile/  — YAML/JSON instance files and the built-in samples
//	config/      — TOML settings
//	metrics/     — Prometheus collectors for solves
//	progress/    — spinner shown while the solver searches
//	server/      — HTTP solve API
//
// Quick start:
//
//	res, err := tsp.Solve(ctx, [][]int64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	}, tsp.DefaultOptions())
//	// res.Cost == 80
//
// The tspmtz command (cmd/tspmtz) wraps the same pipeline for files, samples
// and an HTTP server.
package tspmtz
