package render

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Renderer[T any] interface {
	Render(result T) error
}

// JSONRenderer writes results as indented JSON
type JSONRenderer[T any] struct {
	out io.Writer
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer[T any](out io.Writer) *JSONRenderer[T] {
	return &JSONRenderer[T]{out: out}
}

// Render encodes result
func (r *JSONRenderer[T]) Render(result T) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// newTable returns a borderless table writer in the style of the list commands
func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateHeader = true
	t.Style().Format.Header = text.FormatUpper
	t.Style().Box.PaddingRight = "   "
	t.Style().Box.PaddingLeft = ""
	if header != nil {
		t.AppendHeader(header)
	}
	return t
}
