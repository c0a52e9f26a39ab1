// Package matrixfile reads and writes TSP instances as YAML.
//
// A file is either a bare matrix
//
//	[[0, 10, 15], [10, 0, 35], [15, 35, 0]]
//
// or a named instance set
//
//	instances:
//	  - name: triangle3
//	    optimum: 60
//	    distances: [[0, 10, 15], [10, 0, 35], [15, 35, 0]]
//
// JSON is a subset of YAML, so both shapes may also be written as JSON.
// Samples returns the built-in instance set embedded in the binary.
package matrixfile
