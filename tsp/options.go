package tsp

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tspmtz/progress"
	"github.com/katalvlaran/tspmtz/solver"
)

// Formulation selects how MTZ subtour elimination is expressed.
type Formulation uint8

const (
	// FormulationSuccessor adds x[i][j] ⇒ u[i] + 1 == u[j].
	FormulationSuccessor Formulation = iota
	// FormulationInequality adds u[i] − u[j] + n·x[i][j] ≤ n − 1.
	FormulationInequality
)

// String implements fmt.Stringer.
func (f Formulation) String() string {
	switch f {
	case FormulationSuccessor:
		return "successor"
	case FormulationInequality:
		return "inequality"
	default:
		return fmt.Sprintf("Formulation(%d)", uint8(f))
	}
}

// ParseFormulation maps "successor" / "inequality" to a Formulation.
func ParseFormulation(s string) (Formulation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "successor":
		return FormulationSuccessor, nil
	case "inequality", "linear":
		return FormulationInequality, nil
	default:
		return 0, fmt.Errorf("%w: unknown formulation %q", ErrInvalidInput, s)
	}
}

// Recorder receives one call per finished solve. err is nil on success.
type Recorder interface {
	RecordSolve(stats Stats, err error)
}

// Options configures a Solver. The zero value is usable; see DefaultOptions.
type Options struct {
	// Timeout bounds the backend search; 0 means no limit beyond ctx.
	Timeout time.Duration

	// Formulation selects the MTZ constraint form.
	Formulation Formulation

	// RedundantDistinct adds x[i][j] ⇒ u[i] ≠ u[j]. It is implied by the
	// successor form and only changes solver performance.
	RedundantDistinct bool

	// Verify re-checks the decoded tour, its cost against the objective and
	// MTZ rank monotonicity before returning.
	Verify bool

	// KeepAssignment copies the edge assignment into Result.Assignment.
	KeepAssignment bool

	// Backend creates solver sessions; nil selects gophersat.
	Backend solver.Backend

	// Progress is shown while the backend searches; nil means no display.
	Progress progress.Indicator

	// Logger receives debug records; nil discards them.
	Logger *log.Logger

	// Recorder receives solve statistics; nil disables recording.
	Recorder Recorder
}

// DefaultOptions returns the recommended defaults.
func DefaultOptions() Options {
	return Options{
		Formulation: FormulationSuccessor,
		Verify:      true,
	}
}

func (o Options) progress() progress.Indicator {
	if o.Progress == nil {
		return progress.Nop{}
	}

	return o.Progress
}

var discardLogger = log.New(io.Discard)

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return discardLogger
	}

	return o.Logger
}
