package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{name: "default is warn", wantWarn: true},
		{name: "debug flag", debug: true, wantDebug: true, wantInfo: true, wantWarn: true},
		{name: "env info", level: "info", wantInfo: true, wantWarn: true},
		{name: "env overrides flag", debug: true, level: "ERROR"},
		{name: "unknown env keeps default", level: "loud", wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.debug, tt.level)

			logger.Debug("debug-line")
			logger.Info("info-line")
			logger.Warn("warn-line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug-line")))
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info-line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains([]byte(out), []byte("warn-line")))
			assert.NotContains(t, out, "time=")
		})
	}
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/resolve.go", shortPath("/home/u/src/cdm/internal/usecase/resolve.go"))
	assert.Equal(t, "cli/main.go", shortPath("/home/u/src/cdm/cli/main.go"))
}
