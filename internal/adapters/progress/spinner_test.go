package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/usecase"
)

func TestSpinnerProgressSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSpinnerProgressSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageBinding, Current: 1, Total: 2, Message: "Generating binding for counter", Spinner: true})
	sink.Info("using cache /tmp/cdm")
	sink.Error("something failed")
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted, Current: 2, Total: 2, Message: "Generated 2 binding(s)"})
	sink.Stop()

	out := buf.String()
	assert.Contains(t, out, "using cache /tmp/cdm")
	assert.Contains(t, out, "something failed")
	assert.Contains(t, out, "Generated 2 binding(s)")
	assert.False(t, sink.spinner.Active())
}

func TestFormatEvent(t *testing.T) {
	assert.Equal(t, "[2/5] working", formatEvent(usecase.ProgressEvent{Current: 2, Total: 5, Message: "working"}))
	assert.Equal(t, "working", formatEvent(usecase.ProgressEvent{Current: 1, Total: 1, Message: "working"}))
}

func TestNewProgressSink(t *testing.T) {
	assert.IsType(t, usecase.NopProgress{}, NewProgressSink(&config.RuntimeConfig{NonInteractive: true}))
	assert.IsType(t, usecase.NopProgress{}, NewProgressSink(&config.RuntimeConfig{JSON: true}))
	assert.IsType(t, &SpinnerProgressSink{}, NewProgressSink(&config.RuntimeConfig{}))
}
