package render

import (
	"strings"

	"unwrapgen/internal/decl"
)

const indent = "    "

// Declaration renders c as declaration text:
//
//	#[derive(Debug)]
//	pub struct Bean<T> where T: Clone {
//	    pub taste: String,
//	}
func Declaration(c *decl.Container) string {
	var sb strings.Builder

	for _, a := range c.Annotations {
		sb.WriteString(a)
		sb.WriteByte('\n')
	}

	if c.Visibility != "" {
		sb.WriteString(c.Visibility)
		sb.WriteByte(' ')
	}

	sb.WriteString(c.Kind.String())
	sb.WriteByte(' ')
	sb.WriteString(c.Name)

	if c.Generics != "" {
		sb.WriteString("<" + c.Generics + ">")
	}

	if c.Kind == decl.KindEnum {
		writeWhere(&sb, c.Where)
		sb.WriteString(" {\n")

		for _, v := range c.Variants {
			for _, a := range v.Annotations {
				sb.WriteString(indent + a + "\n")
			}

			sb.WriteString(indent + v.Name)
			writeVariantFields(&sb, v)
			sb.WriteString(",\n")
		}

		sb.WriteString("}\n")

		return sb.String()
	}

	if c.Style == decl.StylePositional {
		sb.WriteByte('(')
		writeInline(&sb, c.Fields)
		sb.WriteByte(')')
		writeWhere(&sb, c.Where)
		sb.WriteString(";\n")

		return sb.String()
	}

	writeWhere(&sb, c.Where)
	sb.WriteString(" {\n")

	for _, f := range c.Fields {
		for _, a := range f.Annotations {
			sb.WriteString(indent + a + "\n")
		}

		sb.WriteString(indent + fieldText(f) + ",\n")
	}

	sb.WriteString("}\n")

	return sb.String()
}

func writeWhere(sb *strings.Builder, where string) {
	if where != "" {
		sb.WriteString(" where " + strings.TrimPrefix(where, "where "))
	}
}

func writeVariantFields(sb *strings.Builder, v *decl.Variant) {
	switch v.Style {
	case decl.StyleNamed:
		sb.WriteString(" { ")
		writeInline(sb, v.Fields)
		sb.WriteString(" }")
	case decl.StylePositional:
		sb.WriteByte('(')
		writeInline(sb, v.Fields)
		sb.WriteByte(')')
	}
}

// writeInline renders fields on one line, annotations included.
func writeInline(sb *strings.Builder, fields []*decl.Field) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		for _, a := range f.Annotations {
			sb.WriteString(a + " ")
		}

		sb.WriteString(fieldText(f))
	}
}

func fieldText(f *decl.Field) string {
	var sb strings.Builder

	if f.Visibility != "" {
		sb.WriteString(f.Visibility + " ")
	}

	if !f.IsPositional() {
		sb.WriteString(f.Name + ": ")
	}

	sb.WriteString(f.Type.String())

	return sb.String()
}
