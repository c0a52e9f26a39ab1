package progress

import "context"

// Indicator is a start/stop activity display.
type Indicator interface {
	// Start begins the display. It returns immediately; the display stops on
	// its own when ctx is done.
	Start(ctx context.Context)
	// Stop ends the display and waits for its goroutine to exit. It is safe
	// to call Stop more than once and without a prior Start.
	Stop()
}

// Nop is an Indicator that does nothing.
type Nop struct{}

var _ Indicator = Nop{}

// Start implements Indicator.
func (Nop) Start(context.Context) {}

// Stop implements Indicator.
func (Nop) Stop() {}
