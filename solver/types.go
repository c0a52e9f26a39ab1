package solver

import (
	"fmt"
	"strings"
)

// Kind is the domain of a decision variable.
type Kind uint8

const (
	// KindBool is a {0,1} variable.
	KindBool Kind = iota
	// KindInt is an integer variable with inclusive bounds.
	KindInt
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Var is an opaque handle to a declared variable. Handles are dense indices
// local to the Session that produced them.
type Var int

// Term is Coef·Var.
type Term struct {
	Coef int64
	Var  Var
}

// Expr is the linear expression Σ Terms + Const.
type Expr struct {
	Terms []Term
	Const int64
}

// Rel is the relation between an expression and the right-hand side.
type Rel uint8

const (
	Eq Rel = iota // ==
	Le            // <=
	Ge            // >=
	Ne            // !=
)

// String implements fmt.Stringer.
func (r Rel) String() string {
	switch r {
	case Eq:
		return "=="
	case Le:
		return "<="
	case Ge:
		return ">="
	case Ne:
		return "!="
	default:
		return fmt.Sprintf("Rel(%d)", uint8(r))
	}
}

// Constraint is `If[0] ∧ If[1] ∧ … ⇒ Expr Rel RHS`.
// An empty If makes the constraint unconditional. Every guard must be a
// KindBool variable.
type Constraint struct {
	If   []Var
	Expr Expr
	Rel  Rel
	RHS  int64
}

// String renders the constraint with v<idx> placeholders; diagnostics only.
func (c Constraint) String() string {
	var b strings.Builder
	if len(c.If) > 0 {
		for i, g := range c.If {
			if i > 0 {
				b.WriteString(" & ")
			}
			fmt.Fprintf(&b, "v%d", int(g))
		}
		b.WriteString(" => ")
	}
	for i, t := range c.Expr.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%d*v%d", t.Coef, int(t.Var))
	}
	if c.Expr.Const != 0 || len(c.Expr.Terms) == 0 {
		if len(c.Expr.Terms) > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%d", c.Expr.Const)
	}
	fmt.Fprintf(&b, " %s %d", c.Rel, c.RHS)

	return b.String()
}

// Sense selects the optimization direction.
type Sense uint8

const (
	Minimize Sense = iota
	Maximize
)

// Status is the verdict of Session.Check.
type Status uint8

const (
	// Unknown means the search stopped without a verdict (deadline, budget).
	Unknown Status = iota
	// Sat means an assignment was found; with an objective set it is optimal.
	Sat
	// Unsat means the constraints admit no assignment.
	Unsat
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}
