package decl

import (
	"strconv"

	"unwrapgen/internal/common"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/options"
	"unwrapgen/internal/typexpr"
)

// Kind is the declaration kind.
type Kind int

const (
	KindStruct Kind = iota
	KindEnum
	KindUnion
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	default:
		return common.UnknownStr
	}
}

// ParseKind maps a kind name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindStruct, KindEnum, KindUnion} {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// Style is the field layout of a struct or variant.
type Style int

const (
	StyleNamed      Style = iota // { a: A, b: B }
	StylePositional              // (A, B)
	StyleUnit                    // no fields
)

// String returns a human-readable representation of the Style.
func (s Style) String() string {
	switch s {
	case StyleNamed:
		return "named"
	case StylePositional:
		return "positional"
	case StyleUnit:
		return "unit"
	default:
		return common.UnknownStr
	}
}

// ParseStyle maps a style name back to a Style.
func ParseStyle(s string) (Style, bool) {
	for _, st := range []Style{StyleNamed, StylePositional, StyleUnit} {
		if st.String() == s {
			return st, true
		}
	}

	return 0, false
}

// Field is a struct or variant field.
type Field struct {
	Name        string        // Empty for positional fields
	Visibility  string        // Verbatim visibility, e.g. "pub"
	Type        *typexpr.Expr // Declared type
	Annotations []string      // Non-configuration annotations, in order
	Meta        []options.Block
	Tag         string // Go struct tag, passed through
	Loc         diagnostic.Location

	// Options is filled in by the builder with the merged field options.
	Options *options.Options
}

// IsPositional reports whether the field is unnamed.
func (f *Field) IsPositional() bool {
	return f.Name == ""
}

// Metadata returns the raw configuration for the parser.
func (f *Field) Metadata() options.Metadata {
	return options.Metadata{Blocks: f.Meta, Annotations: f.Annotations}
}

// Variant is an enum variant.
type Variant struct {
	Name         string
	Style        Style
	Fields       []*Field
	Annotations  []string
	Discriminant string // Explicit discriminant, if any
	Loc          diagnostic.Location
}

// Container is a struct, enum or union declaration.
type Container struct {
	Kind        Kind
	Name        string
	Visibility  string
	Generics    string // Verbatim generic parameter list, without brackets
	Where       string // Verbatim where clause
	Style       Style  // Structs only
	Fields      []*Field
	Variants    []*Variant
	Annotations []string
	Meta        []options.Block
	Loc         diagnostic.Location

	// Package is the Go package name when loaded from Go source.
	Package string
}

// Metadata returns the raw configuration for the parser.
func (c *Container) Metadata() options.Metadata {
	return options.Metadata{Blocks: c.Meta, Annotations: c.Annotations}
}

// FieldPath returns the element path of a field for diagnostics:
// "Bean.taste", "Bean.0" or "Shape::Circle.radius".
func FieldPath(owner string, f *Field, index int) string {
	if f.IsPositional() {
		return owner + "." + strconv.Itoa(index)
	}

	return owner + "." + f.Name
}

// VariantPath returns the element path of a variant.
func VariantPath(container string, v *Variant) string {
	return container + "::" + v.Name
}
