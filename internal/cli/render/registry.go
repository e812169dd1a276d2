package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// ContractRenderer renders a single registry entry
type ContractRenderer struct {
	out   io.Writer
	color bool
}

// NewContractRenderer creates a new contract renderer
func NewContractRenderer(out io.Writer, color bool) *ContractRenderer {
	return &ContractRenderer{out: out, color: color}
}

// Render prints the entry's latest version and owner
func (r *ContractRenderer) Render(entry *models.RegistryEntry) error {
	fmt.Fprintln(r.out, styled(r.color, nameStyle, entry.Name))
	r.field("Owner", styled(r.color, addressStyle, entry.Owner.Hex()))
	r.field("Versions", fmt.Sprintf("%d", entry.VersionCount))
	r.field("Address", styled(r.color, addressStyle, entry.Address.Hex()))
	r.field("Metadata", entry.MetadataURI)
	return nil
}

func (r *ContractRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", styled(r.color, labelStyle, fmt.Sprintf("%-9s", label+":")), value)
}

// ContractsRenderer renders every registered name
type ContractsRenderer struct {
	out   io.Writer
	color bool
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer, color bool) *ContractsRenderer {
	return &ContractsRenderer{out: out, color: color}
}

// Render prints a row per registered name in registration order
func (r *ContractsRenderer) Render(entries []*models.RegistryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No contracts registered")
		return nil
	}

	t := newTable(r.out, table.Row{"Name", "Versions", "Address", "Owner", "Metadata"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			styled(r.color, nameStyle, e.Name),
			e.VersionCount,
			e.Address.Hex(),
			shortHash(e.Owner.Hex()),
			e.MetadataURI,
		})
	}
	t.Render()
	return nil
}

// HistoryRenderer renders the version history of one name
type HistoryRenderer struct {
	out   io.Writer
	color bool
}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer(out io.Writer, color bool) *HistoryRenderer {
	return &HistoryRenderer{out: out, color: color}
}

// Render prints every published version, oldest first
func (r *HistoryRenderer) Render(result *usecase.ContractHistoryResult) error {
	fmt.Fprintf(r.out, "%s (owner %s)\n", styled(r.color, nameStyle, result.Entry.Name), result.Entry.Owner.Hex())

	t := newTable(r.out, table.Row{"Version", "Address", "Metadata", ""})
	latest := len(result.Versions) - 1
	for i, v := range result.Versions {
		marker := ""
		if i == latest {
			marker = styled(r.color, okStyle, "latest")
		}
		t.AppendRow(table.Row{v.Index, v.Address.Hex(), v.MetadataURI, marker})
	}
	t.Render()
	return nil
}

// PublishRenderer renders the outcome of a publish
type PublishRenderer struct {
	out   io.Writer
	color bool
}

// NewPublishRenderer creates a new publish renderer
func NewPublishRenderer(out io.Writer, color bool) *PublishRenderer {
	return &PublishRenderer{out: out, color: color}
}

// Render reports the written version, or that nothing changed
func (r *PublishRenderer) Render(result *usecase.PublishContractResult) error {
	e := result.Entry
	if result.Skipped {
		msg := fmt.Sprintf("'%s' is owned by %s; nothing was published", e.Name, e.Owner.Hex())
		if r.color {
			msg = FormatWarning(msg)
		}
		fmt.Fprintln(r.out, msg)
		return nil
	}

	msg := fmt.Sprintf("Published %s version %d at %s", e.Name, result.Version, e.Address.Hex())
	if result.Registered {
		msg += " (new name)"
	}
	if r.color {
		msg = FormatSuccess(msg)
	}
	fmt.Fprintln(r.out, msg)
	return nil
}

var (
	_ Renderer[*models.RegistryEntry]          = (*ContractRenderer)(nil)
	_ Renderer[[]*models.RegistryEntry]        = (*ContractsRenderer)(nil)
	_ Renderer[*usecase.ContractHistoryResult] = (*HistoryRenderer)(nil)
	_ Renderer[*usecase.PublishContractResult] = (*PublishRenderer)(nil)
)
