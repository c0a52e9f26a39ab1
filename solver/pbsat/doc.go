// Package pbsat is a solver.Backend built on the pure-Go pseudo-boolean
// optimizer github.com/crillab/gophersat.
//
// Encoding:
//   - A KindBool variable is one SAT variable.
//   - A KindInt variable over [lo,hi] is a one-hot block of hi−lo+1 SAT
//     variables with an exactly-one constraint; its value is lo+k for the
//     true position k. Integer domains are therefore expected to be small
//     (ranks, slots, counters), which is the case for MTZ ranks.
//   - A linear constraint is linearized over SAT variables and normalized to
//     Σ wᵢ·lᵢ ≥ b with positive weights. Guards become big-M terms: for each
//     guard g the literal ¬g is added with weight b, so a false guard
//     satisfies the constraint on its own.
//   - Ne is split with a fresh selector y: (guards ∧ y ⇒ e ≤ rhs−1) and
//     (guards ∧ ¬y ⇒ e ≥ rhs+1).
//   - The objective becomes gophersat's cost function; maximization is
//     negated.
//
// Check forwards ctx cancellation to gophersat through its stop channel.
package pbsat
