package solver

import "errors"

var (
	// ErrUnknownVar is returned when a handle was not produced by the session.
	ErrUnknownVar = errors.New("solver: unknown variable")

	// ErrBadBounds is returned when an integer variable has lo > hi.
	ErrBadBounds = errors.New("solver: invalid variable bounds")

	// ErrGuardNotBool is returned when a constraint guard is not a boolean variable.
	ErrGuardNotBool = errors.New("solver: guard must be a boolean variable")

	// ErrNoAssignment is returned by Value when Check did not yield Sat.
	ErrNoAssignment = errors.New("solver: no assignment available")

	// ErrSealed is returned when the model is modified after Check.
	ErrSealed = errors.New("solver: session already checked")

	// ErrCoefficientRange is returned when a constraint or objective needs
	// weights beyond what the backend can represent.
	ErrCoefficientRange = errors.New("solver: coefficients out of backend range")
)
