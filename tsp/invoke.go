package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tspmtz/solver"
)

// Invoke submits the completed model to the backend and classifies the
// verdict. After Invoke the model is sealed.
//
//   - Sat     → nil; Decode may run.
//   - Unsat   → ErrNoSolution (an encoding defect for any valid matrix).
//   - Unknown → ErrSolverTimeout; when ctx is done its error is wrapped too,
//     so errors.Is(err, context.DeadlineExceeded) holds on expiry.
//
// Invoke returns once ctx is done even if the backend keeps searching; the
// session is then abandoned and never read again.
func (m *Model) Invoke(ctx context.Context) error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrInvalidInput)
	}
	if m.stage != stageObjective {
		return fmt.Errorf("%w: model invoked before it was complete", ErrInvalidInput)
	}
	m.stage = stageInvoked

	if m.n == 1 {
		m.status = solver.Sat

		return nil
	}

	status, err := m.check(ctx)
	m.status = status
	if err != nil {
		return fmt.Errorf("tsp: solver check: %w", err)
	}

	switch status {
	case solver.Sat:
		return nil
	case solver.Unsat:
		return fmt.Errorf("%w (n=%d)", ErrNoSolution, m.n)
	default:
		if cerr := ctx.Err(); cerr != nil {
			return fmt.Errorf("%w: %w", ErrSolverTimeout, cerr)
		}

		return ErrSolverTimeout
	}
}

// Status returns the backend verdict recorded by Invoke.
func (m *Model) Status() solver.Status { return m.status }

type verdict struct {
	status solver.Status
	err    error
}

// check runs Session.Check on its own goroutine and gives up when ctx ends.
func (m *Model) check(ctx context.Context) (solver.Status, error) {
	if ctx.Err() != nil {
		return solver.Unknown, nil
	}

	done := make(chan verdict, 1)
	go func() {
		st, err := m.sess.Check(ctx)
		done <- verdict{status: st, err: err}
	}()

	select {
	case v := <-done:
		return v.status, v.err
	case <-ctx.Done():
		select {
		case v := <-done:
			return v.status, v.err
		default:
			return solver.Unknown, nil
		}
	}
}
