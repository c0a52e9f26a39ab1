package solver

// Sum returns Σ vars with unit coefficients.
func Sum(vars ...Var) Expr {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Coef: 1, Var: v}
	}

	return Expr{Terms: terms}
}

// Lin returns Σ coefs[i]·vars[i]. The slices must have equal length.
func Lin(coefs []int64, vars []Var) Expr {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Coef: coefs[i], Var: v}
	}

	return Expr{Terms: terms}
}

// Plus returns e + coef·v as a new expression.
func (e Expr) Plus(coef int64, v Var) Expr {
	terms := make([]Term, len(e.Terms), len(e.Terms)+1)
	copy(terms, e.Terms)

	return Expr{Terms: append(terms, Term{Coef: coef, Var: v}), Const: e.Const}
}

// Offset returns e + c as a new expression.
func (e Expr) Offset(c int64) Expr {
	return Expr{Terms: e.Terms, Const: e.Const + c}
}

// Fix returns the unconditional constraint v == value.
func Fix(v Var, value int64) Constraint {
	return Constraint{Expr: Sum(v), Rel: Eq, RHS: value}
}

// Implies returns the constraint guard ⇒ (e rel rhs).
func Implies(guard Var, e Expr, rel Rel, rhs int64) Constraint {
	return Constraint{If: []Var{guard}, Expr: e, Rel: rel, RHS: rhs}
}

// Evaluate computes e under the given assignment lookup.
func (e Expr) Evaluate(value func(Var) (int64, error)) (int64, error) {
	total := e.Const
	for _, t := range e.Terms {
		v, err := value(t.Var)
		if err != nil {
			return 0, err
		}
		total += t.Coef * v
	}

	return total, nil
}

// Holds reports whether lhs rel rhs is true.
func (r Rel) Holds(lhs, rhs int64) bool {
	switch r {
	case Eq:
		return lhs == rhs
	case Le:
		return lhs <= rhs
	case Ge:
		return lhs >= rhs
	case Ne:
		return lhs != rhs
	default:
		return false
	}
}
