package render

import (
	"fmt"
	"io"

	"github.com/dotdm/cdm/internal/usecase"
)

// BindingsRenderer renders the outcome of a bind run
type BindingsRenderer struct {
	out    io.Writer
	color  bool
	source bool
}

// NewBindingsRenderer creates a new bindings renderer. With source set the
// generated code is printed instead of the written paths.
func NewBindingsRenderer(out io.Writer, color bool, source bool) *BindingsRenderer {
	return &BindingsRenderer{out: out, color: color, source: source}
}

// Render prints one line per binding, or the sources
func (r *BindingsRenderer) Render(result *usecase.GenerateBindingResult) error {
	if r.source {
		for i, b := range result.Bindings {
			if i > 0 {
				fmt.Fprintln(r.out)
			}
			if _, err := r.out.Write(b.Source); err != nil {
				return err
			}
		}
		return nil
	}

	for i, b := range result.Bindings {
		line := fmt.Sprintf("  %s %s v%d → %s (%d methods)",
			styled(r.color, okStyle, "✓"),
			styled(r.color, nameStyle, b.PackageName),
			b.Reference.Version,
			styled(r.color, pathStyle, bindingLocation(result, i)),
			len(b.Methods))
		fmt.Fprintln(r.out, line)
	}
	return nil
}

func bindingLocation(result *usecase.GenerateBindingResult, i int) string {
	if i < len(result.Files) {
		return result.Files[i]
	}
	return result.Bindings[i].Identifier
}

var _ Renderer[*usecase.GenerateBindingResult] = (*BindingsRenderer)(nil)
