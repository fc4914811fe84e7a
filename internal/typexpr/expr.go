package typexpr

import (
	"slices"
	"strings"

	"unwrapgen/internal/common"
)

// Kind represents the shape of a type expression.
type Kind int

const (
	KindNamed  Kind = iota // path with optional generic arguments
	KindTuple              // (A, B); the empty tuple is the unit type
	KindOpaque             // anything else, carried verbatim
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindTuple:
		return "tuple"
	case KindOpaque:
		return "opaque"
	default:
		return common.UnknownStr
	}
}

// Expr is a node of a declared type.
type Expr struct {
	Kind  Kind     // Shape of the node
	Path  []string // Named: path segments, last one is the identifier
	Args  []*Expr  // Named: generic arguments
	Elems []*Expr  // Tuple: elements
	Raw   string   // Opaque: source text
}

// Named creates a named type. A qualified name ("a::b::T" or "a.T") is split
// into path segments.
func Named(name string, args ...*Expr) *Expr {
	return &Expr{Kind: KindNamed, Path: splitPath(name), Args: args}
}

// NamedPath creates a named type from explicit path segments.
func NamedPath(path []string, args ...*Expr) *Expr {
	return &Expr{Kind: KindNamed, Path: slices.Clone(path), Args: args}
}

// Tuple creates a tuple type.
func Tuple(elems ...*Expr) *Expr {
	return &Expr{Kind: KindTuple, Elems: elems}
}

// Unit returns the empty tuple.
func Unit() *Expr {
	return &Expr{Kind: KindTuple}
}

// Opaque wraps source text that is never inspected.
func Opaque(raw string) *Expr {
	return &Expr{Kind: KindOpaque, Raw: strings.TrimSpace(raw)}
}

// IsUnit reports whether e is the empty tuple.
func (e *Expr) IsUnit() bool {
	return e != nil && e.Kind == KindTuple && len(e.Elems) == 0
}

// Ident returns the last path segment of a named type, or "".
func (e *Expr) Ident() string {
	if e == nil || e.Kind != KindNamed {
		return ""
	}

	last, _ := common.Last(e.Path)

	return last
}

// WithIdent returns a copy of e with the last path segment replaced.
// Generic arguments are shared with e.
func (e *Expr) WithIdent(name string) *Expr {
	cp := *e
	cp.Path = slices.Clone(e.Path)

	if len(cp.Path) == 0 {
		cp.Path = []string{name}
	} else {
		cp.Path[len(cp.Path)-1] = name
	}

	return &cp
}

// Clone returns a deep copy of e.
func (e *Expr) Clone() *Expr {
	if e == nil {
		return nil
	}

	cp := &Expr{Kind: e.Kind, Path: slices.Clone(e.Path), Raw: e.Raw}
	cp.Args = cloneAll(e.Args)
	cp.Elems = cloneAll(e.Elems)

	return cp
}

// Equal reports structural equality.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}

	if e.Kind != o.Kind || e.Raw != o.Raw || !slices.Equal(e.Path, o.Path) {
		return false
	}

	return slices.EqualFunc(e.Args, o.Args, (*Expr).Equal) &&
		slices.EqualFunc(e.Elems, o.Elems, (*Expr).Equal)
}

// String renders e in angle notation ("a::Vec<(A, B)>").
func (e *Expr) String() string {
	var sb strings.Builder
	e.write(&sb)

	return sb.String()
}

func (e *Expr) write(sb *strings.Builder) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}

	switch e.Kind {
	case KindNamed:
		sb.WriteString(strings.Join(e.Path, "::"))

		if len(e.Args) > 0 {
			sb.WriteByte('<')
			writeList(sb, e.Args)
			sb.WriteByte('>')
		}
	case KindTuple:
		sb.WriteByte('(')
		writeList(sb, e.Elems)

		if len(e.Elems) == 1 {
			sb.WriteByte(',')
		}

		sb.WriteByte(')')
	default:
		sb.WriteString(e.Raw)
	}
}

func writeList(sb *strings.Builder, list []*Expr) {
	for i, el := range list {
		if i > 0 {
			sb.WriteString(", ")
		}

		el.write(sb)
	}
}

func cloneAll(list []*Expr) []*Expr {
	if list == nil {
		return nil
	}

	out := make([]*Expr, len(list))
	for i, el := range list {
		out[i] = el.Clone()
	}

	return out
}

func splitPath(name string) []string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, "::") {
		return strings.Split(name, "::")
	}

	return strings.Split(name, ".")
}
