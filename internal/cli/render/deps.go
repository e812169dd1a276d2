package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/usecase"
)

// DependenciesRenderer renders the dependency table of a manifest
type DependenciesRenderer struct {
	out   io.Writer
	color bool
}

// NewDependenciesRenderer creates a new dependencies renderer
func NewDependenciesRenderer(out io.Writer, color bool) *DependenciesRenderer {
	return &DependenciesRenderer{out: out, color: color}
}

// Render prints a row per dependency followed by a summary and the failures
func (r *DependenciesRenderer) Render(result *usecase.ListDependenciesResult) error {
	if len(result.Dependencies) == 0 {
		fmt.Fprintf(r.out, "No dependencies declared in %s\n", result.ManifestPath)
		return nil
	}

	t := newTable(r.out, table.Row{"Target", "Package", "Spec", "Version", "Status"})
	for _, dep := range result.Dependencies {
		version := "-"
		if dep.Version != nil {
			version = fmt.Sprintf("%d", *dep.Version)
		}
		t.AppendRow(table.Row{dep.TargetID, dep.Package, dep.Spec.String(), version, r.status(dep)})
	}
	t.Render()

	s := result.Summary
	fmt.Fprintf(r.out, "\n%d dependencies: %d resolved, %d missing, %d ambiguous\n", s.Total, s.Resolved, s.Missing, s.Ambiguous)

	for _, dep := range result.Dependencies {
		if dep.Err != nil {
			fmt.Fprintf(r.out, "  %s %s: %v\n", styled(r.color, errStyle, "✗"), dep.Package, dep.Err)
		}
	}
	return nil
}

func (r *DependenciesRenderer) status(dep usecase.DependencyStatus) string {
	switch {
	case dep.Err == nil:
		return styled(r.color, okStyle, "resolved")
	case errors.Is(dep.Err, domain.ErrAmbiguousTarget):
		return styled(r.color, warnStyle, "ambiguous")
	case errors.Is(dep.Err, domain.ErrLatestPointerMalformed):
		return styled(r.color, errStyle, "bad pointer")
	default:
		return styled(r.color, errStyle, "missing")
	}
}

var _ Renderer[*usecase.ListDependenciesResult] = (*DependenciesRenderer)(nil)
