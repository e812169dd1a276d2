package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// CacheRenderer renders the artifact cache contents
type CacheRenderer struct {
	out   io.Writer
	color bool
}

// NewCacheRenderer creates a new cache renderer
func NewCacheRenderer(out io.Writer, color bool) *CacheRenderer {
	return &CacheRenderer{out: out, color: color}
}

// Render prints a row per cached package
func (r *CacheRenderer) Render(packages []models.CachedPackage) error {
	if len(packages) == 0 {
		fmt.Fprintln(r.out, "Artifact cache is empty")
		return nil
	}

	t := newTable(r.out, table.Row{"Target", "Package", "Versions", "Latest"})
	for _, pkg := range packages {
		versions := lo.Map(pkg.Versions, func(v uint64, _ int) string { return fmt.Sprintf("%d", v) })
		latest := styled(r.color, warnStyle, "none")
		if pkg.Latest != nil {
			latest = styled(r.color, versionStyle, fmt.Sprintf("%d", *pkg.Latest))
		}
		t.AppendRow(table.Row{pkg.TargetID, pkg.Package, strings.Join(versions, ", "), latest})
	}
	t.Render()
	return nil
}

// CacheAddRenderer renders the outcome of a cache import
type CacheAddRenderer struct {
	out   io.Writer
	color bool
}

// NewCacheAddRenderer creates a new cache import renderer
func NewCacheAddRenderer(out io.Writer, color bool) *CacheAddRenderer {
	return &CacheAddRenderer{out: out, color: color}
}

// Render summarises the written version and the manifest update
func (r *CacheAddRenderer) Render(result *usecase.AddToCacheResult) error {
	c := result.Contract
	msg := fmt.Sprintf("Cached %s v%d for target %s", c.Name, c.Version, c.Target)
	if result.IsLatest {
		msg += " (latest)"
	}
	if r.color {
		msg = FormatSuccess(msg)
	}
	fmt.Fprintln(r.out, msg)
	fmt.Fprintf(r.out, "  %s %s\n", styled(r.color, labelStyle, "Path:    "), styled(r.color, pathStyle, result.Path))
	if c.Address != "" {
		fmt.Fprintf(r.out, "  %s %s\n", styled(r.color, labelStyle, "Address: "), styled(r.color, addressStyle, c.Address))
	}
	if result.ManifestSaved {
		fmt.Fprintf(r.out, "  %s %s = %s\n", styled(r.color, labelStyle, "Manifest:"), result.ManifestPath, result.ManifestSpec)
	}
	return nil
}

var (
	_ Renderer[[]models.CachedPackage]    = (*CacheRenderer)(nil)
	_ Renderer[*usecase.AddToCacheResult] = (*CacheAddRenderer)(nil)
)
