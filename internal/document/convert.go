package document

import (
	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/options"
	"unwrapgen/internal/typexpr"
)

// Decls converts the document into declarations. Declarations failing
// validation are reported and skipped; the others are returned in order.
func Decls(doc *Document) ([]*decl.Container, *diagnostic.Diagnostics) {
	res := Validate(doc)
	if doc == nil {
		return nil, res
	}

	bad := map[string]bool{}
	for _, d := range res.Errors {
		bad[rootElement(d.Element)] = true
	}

	var out []*decl.Container

	for i := range doc.Declarations {
		d := &doc.Declarations[i]
		if d.Name == "" || bad[d.Name] {
			continue
		}

		out = append(out, doc.container(d))
	}

	return out, res
}

// rootElement strips field and variant suffixes from an element path.
func rootElement(element string) string {
	for i, r := range element {
		if r == '.' || r == ':' {
			return element[:i]
		}
	}

	return element
}

func (doc *Document) container(d *Declaration) *decl.Container {
	kind, _ := decl.ParseKind(d.Kind)

	c := &decl.Container{
		Kind:        kind,
		Name:        d.Name,
		Visibility:  d.Visibility,
		Generics:    d.Generics,
		Where:       d.Where,
		Annotations: append([]string(nil), d.Annotations...),
		Meta:        doc.blocks(d.Config),
		Loc:         doc.loc(d.Line, d.Column),
		Package:     doc.Package,
	}

	if kind == decl.KindEnum {
		for i := range d.Variants {
			v := &d.Variants[i]
			style, _ := inferStyle(v.Style, v.Fields, decl.StyleUnit)

			c.Variants = append(c.Variants, &decl.Variant{
				Name:         v.Name,
				Style:        style,
				Fields:       doc.fields(v.Fields),
				Annotations:  append([]string(nil), v.Annotations...),
				Discriminant: v.Discriminant,
				Loc:          doc.loc(v.Line, v.Column),
			})
		}

		return c
	}

	c.Style, _ = inferStyle(d.Style, d.Fields, decl.StyleNamed)
	c.Fields = doc.fields(d.Fields)

	return c
}

func (doc *Document) fields(fields []Field) []*decl.Field {
	out := make([]*decl.Field, 0, len(fields))

	for i := range fields {
		f := &fields[i]

		// Validate has already rejected unparsable types.
		t, err := typexpr.Parse(f.Type)
		if err != nil {
			t = typexpr.Opaque(f.Type)
		}

		out = append(out, &decl.Field{
			Name:        f.Name,
			Visibility:  f.Visibility,
			Type:        t,
			Annotations: append([]string(nil), f.Annotations...),
			Meta:        doc.blocks(f.Config),
			Tag:         f.Tag,
			Loc:         doc.loc(f.Line, f.Column),
		})
	}

	return out
}

func (doc *Document) blocks(list MetaList) []options.Block {
	if len(list) == 0 {
		return nil
	}

	out := make([]options.Block, len(list))
	for i, e := range list {
		out[i] = options.Block{Text: e.Text, Loc: doc.loc(e.Line, e.Column)}
	}

	return out
}

// FromDecls builds a document from transformed declarations, for YAML
// output.
func FromDecls(pkg string, decls []*decl.Container) *Document {
	doc := &Document{Version: DefaultVersion, Package: pkg}

	for _, c := range decls {
		d := Declaration{
			Kind:        c.Kind.String(),
			Name:        c.Name,
			Visibility:  c.Visibility,
			Generics:    c.Generics,
			Where:       c.Where,
			Annotations: c.Annotations,
		}

		if c.Kind == decl.KindEnum {
			for _, v := range c.Variants {
				d.Variants = append(d.Variants, Variant{
					Name:        v.Name,
					Style:       v.Style.String(),
					Fields:      fieldsFrom(v.Fields),
					Annotations: v.Annotations,
				})
			}
		} else {
			d.Style = c.Style.String()
			d.Fields = fieldsFrom(c.Fields)
		}

		doc.Declarations = append(doc.Declarations, d)
	}

	return doc
}

func fieldsFrom(fields []*decl.Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, Field{
			Name:        f.Name,
			Visibility:  f.Visibility,
			Type:        f.Type.String(),
			Annotations: f.Annotations,
			Tag:         f.Tag,
		})
	}

	return out
}
