package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dotdm/cdm/internal/usecase"
)

// TargetsRenderer renders manifest targets with their identifier check
type TargetsRenderer struct {
	out   io.Writer
	color bool
}

// NewTargetsRenderer creates a new targets renderer
func NewTargetsRenderer(out io.Writer, color bool) *TargetsRenderer {
	return &TargetsRenderer{out: out, color: color}
}

// Render prints a row per target
func (r *TargetsRenderer) Render(result *usecase.ListTargetsResult) error {
	if len(result.Targets) == 0 {
		fmt.Fprintf(r.out, "No targets in %s\n", result.ManifestPath)
		return nil
	}

	t := newTable(r.out, table.Row{"Target", "Asset Hub", "Bulletin", "Registry", "Deps", "Hash"})
	for _, target := range result.Targets {
		t.AppendRow(table.Row{
			target.ID,
			target.Target.AssetHub,
			target.Target.Bulletin,
			target.Target.Registry,
			target.Dependencies,
			r.hashStatus(target),
		})
	}
	t.Render()
	return nil
}

func (r *TargetsRenderer) hashStatus(target usecase.TargetStatus) string {
	switch {
	case !target.Declared:
		return styled(r.color, warnStyle, "undeclared")
	case target.HashMatches():
		return styled(r.color, okStyle, "✓")
	default:
		return styled(r.color, errStyle, "✗ "+target.ComputedHash)
	}
}

var _ Renderer[*usecase.ListTargetsResult] = (*TargetsRenderer)(nil)
