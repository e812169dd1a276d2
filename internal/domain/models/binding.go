package models

import (
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Binding is generated reference code for one resolved package.
type Binding struct {
	Identifier  string
	TypeName    string
	PackageName string
	Reference   ResolvedReference
	Methods     []string
	Source      []byte
}

// DeriveIdentifier maps a package name to the identifier its binding is keyed by:
// the final "/" segment with every character outside [A-Za-z0-9_] replaced by "_".
func DeriveIdentifier(packageName string) string {
	segment := packageName
	if idx := strings.LastIndex(packageName, "/"); idx != -1 {
		segment = packageName[idx+1:]
	}
	if segment == "" {
		return "binding"
	}

	var b strings.Builder
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	ident := b.String()

	if ident[0] >= '0' && ident[0] <= '9' {
		ident = "_" + ident
	}
	if ident == "_" || token.IsKeyword(ident) {
		ident += "_"
	}
	return ident
}

// TypeName turns a derived identifier into an exported Go type name ("counter_writer" -> "CounterWriter").
func TypeName(identifier string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, part := range strings.Split(identifier, "_") {
		if part == "" {
			continue
		}
		b.WriteString(title.String(part))
	}
	name := b.String()
	if name == "" || !token.IsExported(name) {
		name = "Contract" + name
	}
	return name
}
