package rewrite

import "unwrapgen/internal/common"

// Wrapper and replacement identifiers.
const (
	IdentObservableCell       = "ObservableCell"
	IdentRefCounted           = "RefCounted"
	IdentAtomicRefCounted     = "AtomicRefCounted"
	IdentObservableVector     = "ObservableVector"
	IdentObservableOrderedMap = "ObservableOrderedMap"

	IdentVector     = "Vector"
	IdentOrderedMap = "OrderedMap"
	IdentHashMap    = "HashMap"
	IdentOrderedSet = "OrderedSet"
	IdentHashSet    = "HashSet"
)

// WrapperKind is the closed set of recognized wrappers.
type WrapperKind int

const (
	WrapperNone WrapperKind = iota
	WrapperObservableCell
	WrapperRefCounted
	WrapperAtomicRefCounted
	WrapperObservableVector
	WrapperObservableOrderedMap
)

// String returns the wrapper identifier.
func (w WrapperKind) String() string {
	switch w {
	case WrapperNone:
		return "none"
	case WrapperObservableCell:
		return IdentObservableCell
	case WrapperRefCounted:
		return IdentRefCounted
	case WrapperAtomicRefCounted:
		return IdentAtomicRefCounted
	case WrapperObservableVector:
		return IdentObservableVector
	case WrapperObservableOrderedMap:
		return IdentObservableOrderedMap
	default:
		return common.UnknownStr
	}
}

// Arity is the number of generic arguments the wrapper takes.
func (w WrapperKind) Arity() int {
	switch w {
	case WrapperNone:
		return 0
	case WrapperObservableOrderedMap:
		return 2
	default:
		return 1
	}
}

// WrapperOf classifies an identifier.
func WrapperOf(ident string) WrapperKind {
	switch ident {
	case IdentObservableCell:
		return WrapperObservableCell
	case IdentRefCounted:
		return WrapperRefCounted
	case IdentAtomicRefCounted:
		return WrapperAtomicRefCounted
	case IdentObservableVector:
		return WrapperObservableVector
	case IdentObservableOrderedMap:
		return WrapperObservableOrderedMap
	default:
		return WrapperNone
	}
}
