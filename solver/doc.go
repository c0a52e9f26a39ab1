// Package solver defines the boundary between the TSP encoders and any
// constraint/optimization backend.
//
// A backend hands out independent Sessions. A Session is a single-use model:
// variables are declared, linear constraints (optionally guarded by boolean
// literals) are added, an objective is set, Check runs the search and Value
// reads the resulting assignment:
//
//	declare_variable → Session.Declare
//	add_constraint   → Session.Add
//	set_objective    → Session.SetObjective
//	check            → Session.Check
//	value_of         → Session.Value
//
// Any SAT, pseudo-boolean, ILP or CP engine that can honour these five calls
// can be plugged in without touching the encoders. The pbsat subpackage
// provides a pure-Go backend built on gophersat.
package solver
