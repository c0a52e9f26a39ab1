package pbsat

import (
	"context"
	"fmt"
	"sort"

	gsat "github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/tspmtz/solver"
)

// MaxWeight bounds the objective's coefficient sum and the degree of every
// emitted constraint. gophersat keeps clause cardinalities in 30 bits and the
// optimization loop adds a constraint of degree up to the objective sum + 1.
const MaxWeight = 1 << 28

// Backend hands out gophersat-backed sessions.
type Backend struct{}

var (
	_ solver.Backend = (*Backend)(nil)
	_ solver.Limits  = (*Backend)(nil)
)

// New returns a gophersat backend.
func New() *Backend { return &Backend{} }

// Name implements solver.Backend.
func (*Backend) Name() string { return "gophersat" }

// NewSession implements solver.Backend.
func (*Backend) NewSession() solver.Session { return newSession() }

// MaxObjectiveWeight implements solver.Limits.
func (*Backend) MaxObjectiveWeight() int64 { return MaxWeight }

// varInfo describes one declared variable and its SAT block.
type varInfo struct {
	kind  solver.Kind
	lo    int64
	width int // number of SAT variables in the block (1 for bool)
	first int // first SAT variable (1-based, DIMACS style)
	name  string
}

// Session accumulates pseudo-boolean constraints until Check.
type Session struct {
	vars    []varInfo
	nbSAT   int
	constrs []gsat.PBConstr
	maxVar  int // highest SAT variable mentioned by a constraint

	objective *solver.Expr
	sense     solver.Sense

	// infeasible is set when a constraint with no literals can never hold.
	infeasible bool

	checked bool
	status  solver.Status
	model   []bool
}

var (
	_ solver.Session = (*Session)(nil)
	_ solver.Stats   = (*Session)(nil)
)

func newSession() *Session { return &Session{} }

// NumVars reports the number of SAT variables, auxiliaries included.
func (s *Session) NumVars() int { return s.nbSAT }

// NumConstraints reports the number of pseudo-boolean constraints emitted.
func (s *Session) NumConstraints() int { return len(s.constrs) }

// Name returns the diagnostic name given at declaration time.
func (s *Session) Name(v solver.Var) string {
	if int(v) < 0 || int(v) >= len(s.vars) {
		return fmt.Sprintf("v%d", int(v))
	}

	return s.vars[v].name
}

// newSATVar allocates a fresh SAT variable.
func (s *Session) newSATVar() int {
	s.nbSAT++

	return s.nbSAT
}

// Declare implements solver.Session.
func (s *Session) Declare(kind solver.Kind, lo, hi int64, name string) (solver.Var, error) {
	if s.checked {
		return 0, solver.ErrSealed
	}

	info := varInfo{kind: kind, name: name}
	switch kind {
	case solver.KindBool:
		info.lo, info.width = 0, 1
		info.first = s.newSATVar()
	case solver.KindInt:
		if lo > hi {
			return 0, fmt.Errorf("pbsat: declare %q [%d,%d]: %w", name, lo, hi, solver.ErrBadBounds)
		}
		info.lo = lo
		info.width = int(hi - lo + 1)
		info.first = s.nbSAT + 1
		s.nbSAT += info.width
		s.exactlyOne(info.first, info.width)
	default:
		return 0, fmt.Errorf("pbsat: declare %q: unsupported kind %s", name, kind)
	}
	s.vars = append(s.vars, info)

	return solver.Var(len(s.vars) - 1), nil
}

// exactlyOne emits the one-hot constraints for the block [first, first+width).
func (s *Session) exactlyOne(first, width int) {
	var (
		pos = make([]int, width)
		neg = make([]int, width)
		k   int
	)
	for k = 0; k < width; k++ {
		pos[k] = first + k
		neg[k] = -(first + k)
	}
	s.emit(gsat.PBConstr{Lits: pos, Weights: ones(width), AtLeast: 1})
	s.emit(gsat.PBConstr{Lits: neg, Weights: ones(width), AtLeast: width - 1})
}

// emit appends c and tracks the highest variable it mentions.
func (s *Session) emit(c gsat.PBConstr) {
	for _, l := range c.Lits {
		if l < 0 {
			l = -l
		}
		if l > s.maxVar {
			s.maxVar = l
		}
	}
	s.constrs = append(s.constrs, c)
}

func ones(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}

	return w
}

// Add implements solver.Session.
func (s *Session) Add(c solver.Constraint) error {
	if s.checked {
		return solver.ErrSealed
	}

	guards := make([]int, 0, len(c.If)+1)
	for _, g := range c.If {
		info, err := s.info(g)
		if err != nil {
			return err
		}
		if info.kind != solver.KindBool {
			return fmt.Errorf("pbsat: guard %q: %w", info.name, solver.ErrGuardNotBool)
		}
		guards = append(guards, info.first)
	}

	coefs, constant, err := s.linearize(c.Expr)
	if err != nil {
		return err
	}

	switch c.Rel {
	case solver.Ge:
		err = s.atLeast(coefs, constant, c.RHS, guards)
	case solver.Le:
		err = s.atMost(coefs, constant, c.RHS, guards)
	case solver.Eq:
		if err = s.atLeast(coefs, constant, c.RHS, guards); err == nil {
			err = s.atMost(coefs, constant, c.RHS, guards)
		}
	case solver.Ne:
		y := s.newSATVar()
		if err = s.atMost(coefs, constant, c.RHS-1, append(cloneInts(guards), y)); err == nil {
			err = s.atLeast(coefs, constant, c.RHS+1, append(cloneInts(guards), -y))
		}
	default:
		return fmt.Errorf("pbsat: unsupported relation %s", c.Rel)
	}

	return err
}

// SetObjective implements solver.Session.
func (s *Session) SetObjective(e solver.Expr, sense solver.Sense) error {
	if s.checked {
		return solver.ErrSealed
	}
	coefs, _, err := s.linearize(e)
	if err != nil {
		return err
	}
	if !withinWeight(coefs) {
		return fmt.Errorf("pbsat: objective weight sum exceeds %d: %w", MaxWeight, solver.ErrCoefficientRange)
	}
	cp := solver.Expr{Terms: append([]solver.Term(nil), e.Terms...), Const: e.Const}
	s.objective = &cp
	s.sense = sense

	return nil
}

// Check implements solver.Session.
func (s *Session) Check(ctx context.Context) (solver.Status, error) {
	if s.checked {
		return s.status, nil
	}
	s.checked = true
	if err := ctx.Err(); err != nil {
		s.status = solver.Unknown

		return s.status, nil
	}
	if s.infeasible {
		s.status = solver.Unsat

		return s.status, nil
	}

	var (
		lits    []gsat.Lit
		weights []int
		err     error
	)
	if s.objective != nil {
		if lits, weights, err = s.costFunc(); err != nil {
			return solver.Unknown, err
		}
	}
	pb := gsat.ParsePBConstrs(s.constrs)
	if len(lits) > 0 {
		pb.SetCostFunc(lits, weights)
	}

	type outcome struct {
		res   gsat.Result
		model []bool
	}
	var (
		engine = gsat.New(pb)
		done   = make(chan outcome, 1)
	)
	// Optimal does not poll its stop channel, so the search runs on its own
	// goroutine and is abandoned when ctx ends. MaxWeight keeps it finite.
	go func() {
		res := engine.Optimal(nil, nil)
		out := outcome{res: res}
		if res.Status == gsat.Sat {
			out.model = engine.Model()
		}
		done <- out
	}()

	var out outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		s.status = solver.Unknown

		return s.status, nil
	}

	switch out.res.Status {
	case gsat.Sat:
		s.status = solver.Sat
		s.model = out.model
	case gsat.Unsat:
		s.status = solver.Unsat
	default:
		s.status = solver.Unknown
	}

	return s.status, nil
}

// Value implements solver.Session.
func (s *Session) Value(v solver.Var) (int64, error) {
	info, err := s.info(v)
	if err != nil {
		return 0, err
	}
	if s.status != solver.Sat {
		return 0, solver.ErrNoAssignment
	}

	var k int
	for k = 0; k < info.width; k++ {
		if s.satValue(info.first + k) {
			if info.kind == solver.KindBool {
				return 1, nil
			}

			return info.lo + int64(k), nil
		}
	}
	if info.kind == solver.KindBool {
		return 0, nil
	}

	return 0, fmt.Errorf("pbsat: %q has no true position: %w", info.name, solver.ErrNoAssignment)
}

// satValue reads SAT variable x (1-based). Variables that occur in no
// constraint may be absent from the model; they are read as false.
func (s *Session) satValue(x int) bool {
	if x-1 < 0 || x-1 >= len(s.model) {
		return false
	}

	return s.model[x-1]
}

func (s *Session) info(v solver.Var) (varInfo, error) {
	if int(v) < 0 || int(v) >= len(s.vars) {
		return varInfo{}, fmt.Errorf("pbsat: v%d: %w", int(v), solver.ErrUnknownVar)
	}

	return s.vars[v], nil
}

// linearize expands e over SAT variables: e == Σ coefs[x]·x + constant.
func (s *Session) linearize(e solver.Expr) (map[int]int64, int64, error) {
	var (
		coefs    = make(map[int]int64, len(e.Terms))
		constant = e.Const
		k        int
	)
	for _, t := range e.Terms {
		info, err := s.info(t.Var)
		if err != nil {
			return nil, 0, err
		}
		if info.kind == solver.KindBool {
			coefs[info.first] += t.Coef
			continue
		}
		for k = 0; k < info.width; k++ {
			coefs[info.first+k] += t.Coef * (info.lo + int64(k))
		}
	}

	return coefs, constant, nil
}

// atMost emits guards ⇒ Σ coefs·x + constant ≤ rhs.
func (s *Session) atMost(coefs map[int]int64, constant, rhs int64, guards []int) error {
	neg := make(map[int]int64, len(coefs))
	for x, c := range coefs {
		neg[x] = -c
	}

	return s.atLeast(neg, -constant, -rhs, guards)
}

// atLeast emits guards ⇒ Σ coefs·x + constant ≥ rhs as one normalized
// pseudo-boolean constraint. Trivially true constraints are dropped.
func (s *Session) atLeast(coefs map[int]int64, constant, rhs int64, guards []int) error {
	var (
		bound = rhs - constant
		lits  = make(map[int]int64, len(coefs)+len(guards))
	)
	for x, c := range coefs {
		switch {
		case c > 0:
			lits[x] += c
		case c < 0:
			// c·x == c + |c|·¬x
			lits[-x] += -c
			bound += -c
		}
	}
	bound -= cancelOpposites(lits)
	if bound <= 0 {
		return nil
	}
	for _, g := range guards {
		lits[-g] += bound
	}
	bound -= cancelOpposites(lits)
	if bound <= 0 {
		return nil
	}
	if bound > MaxWeight {
		return fmt.Errorf("pbsat: constraint degree %d exceeds %d: %w", bound, MaxWeight, solver.ErrCoefficientRange)
	}

	keys := make([]int, 0, len(lits))
	for l := range lits {
		keys = append(keys, l)
	}
	sort.Ints(keys)

	var (
		pbLits    = make([]int, 0, len(keys))
		pbWeights = make([]int, 0, len(keys))
		w         int64
	)
	for _, l := range keys {
		w = lits[l]
		if w <= 0 {
			continue
		}
		if w > bound {
			w = bound
		}
		pbLits = append(pbLits, l)
		pbWeights = append(pbWeights, int(w))
	}
	if len(pbLits) == 0 {
		s.infeasible = true

		return nil
	}
	s.emit(gsat.PBConstr{Lits: pbLits, Weights: pbWeights, AtLeast: int(bound)})

	return nil
}

// withinWeight reports whether Σ|c| stays within MaxWeight.
func withinWeight(coefs map[int]int64) bool {
	var sum int64
	for _, c := range coefs {
		if c < 0 {
			c = -c
		}
		if c < 0 || c > MaxWeight-sum {
			return false
		}
		sum += c
	}

	return true
}

// cancelOpposites rewrites a·x + b·¬x as min(a,b) + (a−m)·x + (b−m)·¬x and
// returns the total constant removed.
func cancelOpposites(lits map[int]int64) int64 {
	var removed int64
	for l, a := range lits {
		if l <= 0 {
			continue
		}
		b, ok := lits[-l]
		if !ok {
			continue
		}
		m := a
		if b < m {
			m = b
		}
		lits[l] = a - m
		lits[-l] = b - m
		removed += m
	}

	return removed
}

// costFunc converts the objective into gophersat's nonnegative cost function.
func (s *Session) costFunc() ([]gsat.Lit, []int, error) {
	coefs, _, err := s.linearize(*s.objective)
	if err != nil {
		return nil, nil, err
	}

	keys := make([]int, 0, len(coefs))
	for x := range coefs {
		keys = append(keys, x)
	}
	sort.Ints(keys)

	var (
		lits    = make([]gsat.Lit, 0, len(keys))
		weights = make([]int, 0, len(keys))
		c       int64
	)
	for _, x := range keys {
		c = coefs[x]
		if s.sense == solver.Maximize {
			c = -c
		}
		// A variable no constraint mentions is unknown to gophersat: it is
		// false in the model, so only a negative cost needs it pinned true.
		if x > s.maxVar {
			if c < 0 {
				s.constrs = append(s.constrs, gsat.PBConstr{Lits: []int{x}, Weights: []int{1}, AtLeast: 1})
			}
			continue
		}
		switch {
		case c > 0:
			lits = append(lits, gsat.IntToLit(int32(x)))
			weights = append(weights, int(c))
		case c < 0:
			// constant offsets do not change the argmin
			lits = append(lits, gsat.IntToLit(int32(-x)))
			weights = append(weights, int(-c))
		}
	}

	return lits, weights, nil
}

func cloneInts(in []int) []int {
	out := make([]int, len(in), len(in)+1)
	copy(out, in)

	return out
}
