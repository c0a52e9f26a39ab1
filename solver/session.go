package solver

import "context"

// Session is one model under construction plus, after Check, its assignment.
// Implementations are not required to be goroutine-safe: a Session is owned
// by a single solve.
type Session interface {
	// Declare creates a variable. For KindBool the bounds are ignored.
	Declare(kind Kind, lo, hi int64, name string) (Var, error)

	// Add appends a constraint to the model.
	Add(c Constraint) error

	// SetObjective binds the expression to optimize; a later call replaces it.
	SetObjective(e Expr, sense Sense) error

	// Check runs the search. It must return promptly with Unknown once ctx
	// is done.
	Check(ctx context.Context) (Status, error)

	// Value returns the assigned value of v after a Sat Check.
	Value(v Var) (int64, error)
}

// Backend creates fresh Sessions.
type Backend interface {
	Name() string
	NewSession() Session
}

// Stats is optionally implemented by sessions that can report model size.
type Stats interface {
	NumVars() int
	NumConstraints() int
}

// Limits is optionally implemented by backends with a bounded weight range.
// Callers compare the objective's coefficient sum against it before opening
// a session.
type Limits interface {
	// MaxObjectiveWeight bounds Σ|c| over the objective terms.
	MaxObjectiveWeight() int64
}
