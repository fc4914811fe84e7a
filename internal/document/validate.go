package document

import (
	"fmt"

	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/match"
	"unwrapgen/internal/typexpr"
)

// Validate checks the structure of every declaration. Configuration entries
// are not interpreted here; the builder reports those.
func Validate(doc *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddErr(fmt.Errorf("document is nil"), "")
		return res
	}

	seen := map[string]int{}

	for i := range doc.Declarations {
		d := &doc.Declarations[i]

		for _, diag := range validateDeclaration(doc, i) {
			res.Add(*diag)
		}

		if d.Name == "" {
			continue
		}

		if prev, ok := seen[d.Name]; ok {
			res.Add(*diagnostic.New(diagnostic.KindConflict, "duplicate_declaration", doc.loc(d.Line, d.Column),
				"declaration %s is already defined on line %d", d.Name, prev).WithElement(d.Name))

			continue
		}

		seen[d.Name] = d.Line
	}

	return res
}

func (doc *Document) loc(line, col int) diagnostic.Location {
	return diagnostic.Location{File: doc.Path, Line: line, Column: col}
}

func validateDeclaration(doc *Document, index int) []*diagnostic.Diagnostic {
	d := &doc.Declarations[index]

	var out []*diagnostic.Diagnostic

	add := func(code, element string, line, col int, format string, args ...any) {
		out = append(out, diagnostic.New(diagnostic.KindSyntax, code, doc.loc(line, col), format, args...).
			WithElement(element))
	}

	name := d.Name

	switch {
	case name == "":
		name = fmt.Sprintf("declarations[%d]", index)

		add("missing_name", name, d.Line, d.Column, "declaration has no name")
	case !isValidIdent(name):
		add("invalid_name", name, d.Line, d.Column, "%q is not a valid identifier", name)
	}

	kind, ok := decl.ParseKind(d.Kind)
	if !ok {
		diag := diagnostic.New(diagnostic.KindSyntax, "unknown_kind", doc.loc(d.Line, d.Column),
			"unknown kind %q", d.Kind).WithElement(name).
			WithSuggestions(match.Suggest(d.Kind, []string{"struct", "enum", "union"}, 1)...)

		return append(out, diag)
	}

	switch kind {
	case decl.KindEnum:
		if len(d.Fields) > 0 {
			add("fields_on_enum", name, d.Line, d.Column, "an enum declares variants, not fields")
		}

		for i := range d.Variants {
			out = append(out, validateVariant(doc, name, &d.Variants[i])...)
		}
	default:
		if len(d.Variants) > 0 {
			add("variants_on_struct", name, d.Line, d.Column, "a %s declares fields, not variants", kind)
		}

		if _, err := inferStyle(d.Style, d.Fields, decl.StyleNamed); err != nil {
			add("invalid_style", name, d.Line, d.Column, "%v", err)
		}

		out = append(out, validateFields(doc, name, d.Fields)...)
	}

	return out
}

func validateVariant(doc *Document, owner string, v *Variant) []*diagnostic.Diagnostic {
	var out []*diagnostic.Diagnostic

	path := owner + "::" + v.Name
	if !isValidIdent(v.Name) {
		out = append(out, diagnostic.New(diagnostic.KindSyntax, "invalid_name", doc.loc(v.Line, v.Column),
			"variant name %q is not a valid identifier", v.Name).WithElement(path))
	}

	style, err := inferStyle(v.Style, v.Fields, decl.StyleUnit)

	switch {
	case err != nil:
		out = append(out, diagnostic.New(diagnostic.KindSyntax, "invalid_style", doc.loc(v.Line, v.Column),
			"%v", err).WithElement(path))
	case style == decl.StyleUnit && len(v.Fields) > 0:
		out = append(out, diagnostic.New(diagnostic.KindSyntax, "invalid_style", doc.loc(v.Line, v.Column),
			"unit variant %s cannot have fields", v.Name).WithElement(path))
	}

	return append(out, validateFields(doc, path, v.Fields)...)
}

func validateFields(doc *Document, owner string, fields []Field) []*diagnostic.Diagnostic {
	var out []*diagnostic.Diagnostic

	names := map[string]bool{}

	for i := range fields {
		f := &fields[i]
		element := fmt.Sprintf("%s.%d", owner, i)

		if f.Name != "" {
			element = owner + "." + f.Name

			if !isValidIdent(f.Name) {
				out = append(out, diagnostic.New(diagnostic.KindSyntax, "invalid_name", doc.loc(f.Line, f.Column),
					"field name %q is not a valid identifier", f.Name).WithElement(element))
			}

			if names[f.Name] {
				out = append(out, diagnostic.New(diagnostic.KindConflict, "duplicate_field", doc.loc(f.Line, f.Column),
					"field %s is declared more than once", f.Name).WithElement(element))
			}

			names[f.Name] = true
		}

		if f.Type == "" {
			out = append(out, diagnostic.New(diagnostic.KindSyntax, "missing_type", doc.loc(f.Line, f.Column),
				"field has no type").WithElement(element))

			continue
		}

		if _, err := typexpr.Parse(f.Type); err != nil {
			out = append(out, diagnostic.New(diagnostic.KindSyntax, "invalid_type", doc.loc(f.Line, f.Column),
				"invalid type: %v", err).WithElement(element))
		}
	}

	return out
}

// inferStyle returns the explicit style or derives it from the fields.
// empty is used when there are no fields and no explicit style.
func inferStyle(style string, fields []Field, empty decl.Style) (decl.Style, error) {
	named, positional := 0, 0

	for _, f := range fields {
		if f.Name == "" {
			positional++
		} else {
			named++
		}
	}

	if named > 0 && positional > 0 {
		return 0, fmt.Errorf("fields mix named and positional declarations")
	}

	if style == "" {
		switch {
		case named > 0:
			return decl.StyleNamed, nil
		case positional > 0:
			return decl.StylePositional, nil
		default:
			return empty, nil
		}
	}

	s, ok := decl.ParseStyle(style)
	if !ok {
		return 0, fmt.Errorf("unknown style %q, expected named, positional or unit", style)
	}

	switch {
	case s == decl.StyleNamed && positional > 0:
		return 0, fmt.Errorf("named style requires every field to have a name")
	case s == decl.StylePositional && named > 0:
		return 0, fmt.Errorf("positional style does not allow field names")
	}

	return s, nil
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if !isLetter(r) && (i == 0 || !isDigit(r)) {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
