package progress

import (
	"os"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/usecase"
)

// NewProgressSink picks the sink for the session: a spinner on stderr for
// interactive text output, nothing otherwise.
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.JSON {
		return usecase.NopProgress{}
	}
	return NewSpinnerProgressSink(os.Stderr)
}
