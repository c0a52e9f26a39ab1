package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleFrame   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleMessage = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Spinner renders a one-line animation to w until stopped.
type Spinner struct {
	w       io.Writer
	message string
	frames  []string
	fps     time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

var _ Indicator = (*Spinner)(nil)

// NewSpinner returns a spinner using the classic "| / - \" frames.
func NewSpinner(w io.Writer, message string) *Spinner {
	return NewSpinnerWithFrames(w, message, spinner.Line)
}

// NewSpinnerWithFrames returns a spinner driven by any bubbles frame set
// (spinner.Dot, spinner.MiniDot, …).
func NewSpinnerWithFrames(w io.Writer, message string, s spinner.Spinner) *Spinner {
	if len(s.Frames) == 0 {
		s = spinner.Line
	}
	fps := s.FPS
	if fps <= 0 {
		fps = 100 * time.Millisecond
	}

	return &Spinner{w: w, message: message, frames: s.Frames, fps: fps}
}

// Start implements Indicator. A second Start without Stop is ignored.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.stopped = make(chan struct{})

	go s.loop(runCtx, s.stopped)
}

func (s *Spinner) loop(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(s.fps)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			frame := s.frames[i%len(s.frames)]
			fmt.Fprintf(s.w, "\r%s %s", styleFrame.Render(frame), styleMessage.Render(s.message))
			i++
		}
	}
}

// Stop implements Indicator.
func (s *Spinner) Stop() {
	s.mu.Lock()
	cancel, stopped := s.cancel, s.stopped
	s.cancel, s.stopped = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

func (s *Spinner) clearLine() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
