package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/dotdm/cdm/internal/usecase"
)

// SpinnerProgressSink reports progress with a terminal spinner
type SpinnerProgressSink struct {
	mu         sync.Mutex
	out        io.Writer
	spinner    *spinner.Spinner
	stage      string
	stageStart time.Time
}

// NewSpinnerProgressSink creates a spinner-based progress sink writing to out
func NewSpinnerProgressSink(out io.Writer) *SpinnerProgressSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressSink{out: out, spinner: s}
}

// OnProgress handles progress events
func (r *SpinnerProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != r.stage {
		r.stage = event.Stage
		r.stageStart = time.Now()
	}

	if event.Spinner {
		r.spinner.Suffix = " " + formatEvent(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}

	if event.Stage == usecase.StageCompleted && event.Message != "" {
		fmt.Fprintf(r.out, "%s %s\n", color.GreenString("✓"), event.Message)
	}
}

// Info prints an info message
func (r *SpinnerProgressSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressSink) Error(message string) {
	r.print(color.New(color.FgRed), message)
}

// Stop halts the spinner; safe to call when it is not running.
func (r *SpinnerProgressSink) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// print writes a line with the spinner paused
func (r *SpinnerProgressSink) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	c.Fprintln(r.out, message)
	if wasActive {
		r.spinner.Start()
	}
}

// formatEvent renders "[current/total] message" when counts are known.
func formatEvent(event usecase.ProgressEvent) string {
	if event.Total > 1 {
		return fmt.Sprintf("[%d/%d] %s", event.Current, event.Total, event.Message)
	}
	return event.Message
}

// Ensure SpinnerProgressSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressSink)(nil)
