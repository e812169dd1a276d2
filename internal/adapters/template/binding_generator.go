package template

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

const bindingTemplate = `// Code generated by cdm bind. DO NOT EDIT.

package {{.Identifier}}

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CdmPackage is the package this binding was resolved from.
const CdmPackage = {{quote .Reference.PackageName}}

// Target is the deployment target declaring CdmPackage.
const Target = {{quote .Reference.TargetID}}

// Version is the resolved version of CdmPackage.
const Version uint64 = {{.Reference.Version}}
{{if .Methods}}
// Method names of CdmPackage.
const (
{{- range .Methods}}
	{{.Const}} = {{quote .Name}}
{{- end}}
)
{{end}}
// ABIJSON is the interface description of CdmPackage.
const ABIJSON = {{quote .ABIJSON}}

// ParseABI parses ABIJSON.
func ParseABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(ABIJSON))
}

// {{.TypeName}} encodes calls to CdmPackage.
type {{.TypeName}} struct {
	abi abi.ABI
}

// New{{.TypeName}} parses the interface description.
func New{{.TypeName}}() (*{{.TypeName}}, error) {
	parsed, err := ParseABI()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CdmPackage, err)
	}
	return &{{.TypeName}}{abi: parsed}, nil
}

// ABI returns the parsed interface description.
func (c *{{.TypeName}}) ABI() abi.ABI {
	return c.abi
}

// Pack encodes a call to method with args.
func (c *{{.TypeName}}) Pack(method string, args ...interface{}) ([]byte, error) {
	return c.abi.Pack(method, args...)
}
`

// Top-level names the template declares besides the wrapper type.
var reservedNames = map[string]bool{
	"CdmPackage": true,
	"Target":     true,
	"Version":    true,
	"ABIJSON":    true,
	"ParseABI":   true,
}

type methodConst struct {
	Const string
	Name  string
}

type bindingData struct {
	Identifier string
	TypeName   string
	Reference  models.ResolvedReference
	Methods    []methodConst
	ABIJSON    string
}

// BindingGeneratorAdapter renders Go bindings using text/template and gofmt
type BindingGeneratorAdapter struct {
	tmpl *template.Template
}

// NewBindingGeneratorAdapter creates a new binding generator adapter
func NewBindingGeneratorAdapter() *BindingGeneratorAdapter {
	return &BindingGeneratorAdapter{
		tmpl: template.Must(template.New("binding").Funcs(template.FuncMap{
			"quote": func(v interface{}) string { return strconv.Quote(fmt.Sprint(v)) },
		}).Parse(bindingTemplate)),
	}
}

// Generate renders the binding for ref. The result is deterministic for a
// given reference and interface description.
func (g *BindingGeneratorAdapter) Generate(ctx context.Context, ref models.ResolvedReference, iface *models.InterfaceDescription) (*models.Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ident := models.DeriveIdentifier(ref.PackageName)
	methods := iface.MethodNames()
	consts := methodConsts(methods)

	taken := make(map[string]bool, len(consts))
	for _, c := range consts {
		taken[c.Const] = true
	}
	base := models.TypeName(ident)
	typeName := base
	for n := 0; reservedNames[typeName] || taken[typeName]; n++ {
		typeName = base + "Contract"
		if n > 0 {
			typeName += strconv.Itoa(n)
		}
	}

	data := bindingData{
		Identifier: ident,
		TypeName:   typeName,
		Reference:  ref,
		Methods:    consts,
		ABIJSON:    string(iface.Raw),
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute binding template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format binding for %s: %w", ref.PackageName, err)
	}

	return &models.Binding{
		Identifier:  ident,
		TypeName:    typeName,
		PackageName: ref.PackageName,
		Reference:   ref,
		Methods:     methods,
		Source:      src,
	}, nil
}

// methodConsts names a constant for each method, "Method" + the exported
// method name, disambiguating collisions with a numeric suffix.
func methodConsts(methods []string) []methodConst {
	used := make(map[string]bool, len(methods))
	consts := make([]methodConst, 0, len(methods))
	for _, name := range methods {
		base := "Method" + exportName(name)
		constName := base
		for n := 1; used[constName]; n++ {
			constName = fmt.Sprintf("%s%d", base, n)
		}
		used[constName] = true
		consts = append(consts, methodConst{Const: constName, Name: name})
	}
	return consts
}

// exportName upper-cases the first letter and replaces runes that cannot
// appear in an identifier.
func exportName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Ensure the adapter implements the interface
var _ usecase.BindingGenerator = (*BindingGeneratorAdapter)(nil)
