package options

import (
	"strings"

	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/rename"
)

// Block is one raw metadata entry list, e.g. `trim_end = "Signal", keep_rc`,
// together with the location of its first byte.
type Block struct {
	Text string
	Loc  diagnostic.Location
}

// locAt maps a byte offset inside the block to a source location.
func (b Block) locAt(off int) diagnostic.Location {
	if b.Loc.Line == 0 {
		return b.Loc
	}

	off = min(off, len(b.Text))
	head := b.Text[:off]

	nl := strings.LastIndexByte(head, '\n')
	if nl < 0 {
		return b.Loc.Shift(len([]rune(head)))
	}

	return diagnostic.Location{
		File:   b.Loc.File,
		Line:   b.Loc.Line + strings.Count(head, "\n"),
		Column: len([]rune(head[nl+1:])) + 1,
	}
}

// Metadata is everything attached to one element: configuration blocks and
// the non-configuration annotations that pass through untouched.
type Metadata struct {
	Blocks      []Block
	Annotations []string
}

// Flag records a bare option and where it was set.
type Flag struct {
	Set bool
	Loc diagnostic.Location
	// Inherited marks a value copied from the container by Merge.
	Inherited bool
}

// Item is one element of a comma-separated list option.
type Item struct {
	Value string
	Loc   diagnostic.Location
}

// Renamer is a rename rule and where it was declared.
type Renamer struct {
	Rule      rename.Rule
	Loc       diagnostic.Location
	Inherited bool
}

// Options is the validated configuration of one container or field.
type Options struct {
	Ignore    Flag
	Remove    Flag
	KeepRC    Flag
	KeepArc   Flag
	MapAsHash Flag
	Renamer   *Renamer

	// Derives are emitted as a single #[derive(...)] annotation.
	Derives []Item
	// CfgFeatures are emitted as #[cfg(feature = "...")] annotations.
	CfgFeatures []Item
	// Extras are verbatim annotations from attribute / attribute_replace.
	Extras    []string
	ExtrasLoc diagnostic.Location
	// ReplaceAnnotations drops Preserved from the output.
	ReplaceAnnotations bool
	// Preserved are the element's non-configuration annotations, in order.
	Preserved []string

	// entries lists every option key in source order.
	entries []entry
}

type entry struct {
	key string
	loc diagnostic.Location
}

// Keeps returns the set of retained wrappers.
func (o *Options) Keeps() KeepSet {
	var s KeepSet
	if o.KeepRC.Set {
		s |= KeepRefCounted
	}

	if o.KeepArc.Set {
		s |= KeepAtomicRefCounted
	}

	return s
}

// Rule returns the rename rule, or the zero rule when none is set.
func (o *Options) Rule() rename.Rule {
	if o.Renamer == nil {
		return rename.Rule{}
	}

	return o.Renamer.Rule
}

// Annotations returns the element annotations in output order: conditional
// tags, derive list, preserved annotations, extra annotations.
func (o *Options) Annotations() []string {
	var out []string

	for _, f := range o.CfgFeatures {
		out = append(out, `#[cfg(feature = "`+f.Value+`")]`)
	}

	if len(o.Derives) > 0 {
		names := make([]string, len(o.Derives))
		for i, d := range o.Derives {
			names[i] = d.Value
		}

		out = append(out, "#[derive("+strings.Join(names, ", ")+")]")
	}

	if !o.ReplaceAnnotations {
		out = append(out, o.Preserved...)
	}

	return append(out, o.Extras...)
}

// Keys lists the option keys in source order.
func (o *Options) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}

	return keys
}

// Site tells the parser what kind of element the metadata belongs to.
type Site int

const (
	SiteContainer Site = iota
	SiteField
)

// String returns the placement name used in messages.
func (s Site) String() string {
	if s == SiteContainer {
		return "container"
	}

	return "field"
}

// Placement describes the element being configured.
type Placement struct {
	Site Site
	// Element is the path used in diagnostics, e.g. "Bean" or "Bean.taste".
	Element string
	// Positional is set for unnamed fields.
	Positional bool
	// Loc is the element's own location, used when no option is at fault.
	Loc diagnostic.Location
}

// ContainerAt returns a container placement.
func ContainerAt(element string, loc diagnostic.Location) Placement {
	return Placement{Site: SiteContainer, Element: element, Loc: loc}
}

// FieldAt returns a field placement.
func FieldAt(element string, positional bool, loc diagnostic.Location) Placement {
	return Placement{Site: SiteField, Element: element, Positional: positional, Loc: loc}
}

// Policy holds the behaviours that differ between configuration profiles.
type Policy struct {
	// FieldDerives allows derive and cfg_feature on fields.
	FieldDerives bool
	// AutoName lets containers without a renamer fall back to a derived name.
	AutoName bool
}

// DefaultPolicy forbids field-level derives and requires a container renamer.
func DefaultPolicy() Policy {
	return Policy{}
}
