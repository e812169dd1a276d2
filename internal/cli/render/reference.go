package render

import (
	"fmt"
	"io"

	"github.com/dotdm/cdm/internal/usecase"
)

// ReferenceRenderer renders a single resolved package reference
type ReferenceRenderer struct {
	out   io.Writer
	color bool
}

// NewReferenceRenderer creates a new reference renderer
func NewReferenceRenderer(out io.Writer, color bool) *ReferenceRenderer {
	return &ReferenceRenderer{out: out, color: color}
}

// Render prints the reference as aligned key/value lines
func (r *ReferenceRenderer) Render(result *usecase.ResolveReferenceResult) error {
	ref := result.Reference

	fmt.Fprintf(r.out, "%s %s\n",
		styled(r.color, nameStyle, ref.PackageName),
		styled(r.color, versionStyle, fmt.Sprintf("v%d", ref.Version)))

	version := fmt.Sprintf("%d", ref.Version)
	if result.Spec.IsLatest() {
		version += " (latest)"
	}
	r.field("Target", ref.TargetID)
	r.field("Version", version)
	r.field("ABI", styled(r.color, pathStyle, ref.ArtifactPath))
	r.field("Manifest", result.ManifestPath)
	return nil
}

func (r *ReferenceRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", styled(r.color, labelStyle, fmt.Sprintf("%-9s", label+":")), value)
}

var _ Renderer[*usecase.ResolveReferenceResult] = (*ReferenceRenderer)(nil)
