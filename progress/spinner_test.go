package progress_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmtz/progress"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestSpinner_RendersFramesUntilStopped(t *testing.T) {
	var (
		out    syncBuffer
		frames = spinner.Spinner{Frames: []string{"A", "B"}, FPS: 5 * time.Millisecond}
		s      = progress.NewSpinnerWithFrames(&out, "solving", frames)
	)
	s.Start(context.Background())
	s.Start(context.Background()) // ignored

	require.Eventually(t, func() bool {
		o := out.String()
		return strings.Contains(o, "A") && strings.Contains(o, "B")
	}, time.Second, 5*time.Millisecond)
	s.Stop()

	final := out.String()
	assert.Contains(t, final, "solving")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, final, out.String(), "no output after Stop")

	s.Stop() // idempotent
}

func TestSpinner_StopsWithContext(t *testing.T) {
	var out syncBuffer
	s := progress.NewSpinner(&out, "x")

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	s.Stop()

	// restartable after Stop
	s.Start(context.Background())
	s.Stop()
}

func TestSpinner_EmptyFramesFallBack(t *testing.T) {
	var out syncBuffer
	s := progress.NewSpinnerWithFrames(&out, "x", spinner.Spinner{})
	s.Start(context.Background())
	require.Eventually(t, func() bool {
		return strings.ContainsAny(out.String(), `|/-\`)
	}, time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestNop(t *testing.T) {
	var ind progress.Indicator = progress.Nop{}
	ind.Start(context.Background())
	ind.Stop()
	ind.Stop()
}
