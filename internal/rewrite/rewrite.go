package rewrite

import (
	"errors"

	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/options"
	"unwrapgen/internal/rename"
	"unwrapgen/internal/typexpr"
)

// Naming identifies the element being rewritten, for diagnostics.
type Naming struct {
	Element string
	Loc     diagnostic.Location
}

// Rewrite returns the declared type with wrappers stripped and the leaf
// renamed according to opts.
//
// Ignored fields come back unchanged. Callers drop removed fields before
// rewriting; for them Rewrite returns nil.
func Rewrite(e *typexpr.Expr, opts *options.Options, naming Naming) (*typexpr.Expr, error) {
	if opts == nil {
		opts = &options.Options{}
	}

	if opts.Remove.Set {
		return nil, nil
	}

	if opts.Ignore.Set {
		return e.Clone(), nil
	}

	r := &rewriter{opts: opts, keeps: opts.Keeps(), naming: naming}

	out, err := r.walk(e)
	if err != nil {
		return nil, err
	}

	if h := opts.MapAsHash; h.Set && !h.Inherited && !r.sawMap {
		return nil, diagnostic.New(diagnostic.KindPlacement, "hashmap_without_map", h.Loc,
			"`%s` is set but type %s contains no %s", options.KeyHashMap, e, IdentObservableOrderedMap).
			WithElement(naming.Element)
	}

	return out, nil
}

type rewriter struct {
	opts   *options.Options
	keeps  options.KeepSet
	naming Naming
	sawMap bool
}

func (r *rewriter) walk(e *typexpr.Expr) (*typexpr.Expr, error) {
	if e.Kind != typexpr.KindNamed {
		return e.Clone(), nil
	}

	kind := WrapperOf(e.Ident())
	if kind == WrapperNone {
		return r.leaf(e)
	}

	if len(e.Args) != kind.Arity() {
		return nil, diagnostic.New(diagnostic.KindInternal, "wrapper_arity", r.naming.Loc,
			"%s expects %d generic argument(s), found %d in %s", kind, kind.Arity(), len(e.Args), e).
			WithElement(r.naming.Element)
	}

	args := make([]*typexpr.Expr, len(e.Args))
	for i, a := range e.Args {
		out, err := r.walk(a)
		if err != nil {
			return nil, err
		}

		args[i] = out
	}

	switch kind {
	case WrapperRefCounted, WrapperAtomicRefCounted:
		if r.kept(kind) {
			return typexpr.NamedPath(e.Path, args...), nil
		}

		return args[0], nil
	case WrapperObservableVector:
		return typexpr.Named(IdentVector, args[0]), nil
	case WrapperObservableOrderedMap:
		r.sawMap = true
		return r.mapOf(args[0], args[1]), nil
	default:
		return args[0], nil
	}
}

func (r *rewriter) kept(kind WrapperKind) bool {
	if kind == WrapperRefCounted {
		return r.keeps.Has(options.KeepRefCounted)
	}

	return r.keeps.Has(options.KeepAtomicRefCounted)
}

func (r *rewriter) mapOf(key, value *typexpr.Expr) *typexpr.Expr {
	hash := r.opts.MapAsHash.Set

	if value.IsUnit() {
		if hash {
			return typexpr.Named(IdentHashSet, key)
		}

		return typexpr.Named(IdentOrderedSet, key)
	}

	if hash {
		return typexpr.Named(IdentHashMap, key, value)
	}

	return typexpr.Named(IdentOrderedMap, key, value)
}

// leaf renames the identifier, keeping generic arguments as written.
func (r *rewriter) leaf(e *typexpr.Expr) (*typexpr.Expr, error) {
	ren := r.opts.Renamer
	if ren == nil {
		return e.Clone(), nil
	}

	name := e.Ident()

	renamed, err := ren.Rule.Apply(name)
	if err != nil {
		return nil, RenameError(err, ren, name, "type "+e.String()).WithElement(r.naming.Element)
	}

	if renamed == name && !ren.Rule.IsLenient() {
		return nil, diagnostic.New(diagnostic.KindConflict, "self_rename", ren.Loc,
			"`%s` leaves type %s unchanged", ren.Rule, name).WithElement(r.naming.Element)
	}

	return e.Clone().WithIdent(renamed), nil
}

// RenameError converts a rename failure into a located diagnostic. subject
// describes what was being renamed, e.g. "type TasteX" or "container Bean".
func RenameError(err error, ren *options.Renamer, name, subject string) *diagnostic.Diagnostic {
	switch {
	case errors.Is(err, rename.ErrNoMatch):
		verb := "start"
		if ren.Rule.Kind == rename.KindTrimSuffix {
			verb = "end"
		}

		return diagnostic.New(diagnostic.KindMatch, "rename_no_match", ren.Loc,
			"%s does not %s with %s", subject, verb, ren.Rule.Text)
	case errors.Is(err, rename.ErrEmptyResult):
		return diagnostic.New(diagnostic.KindMatch, "rename_empty", ren.Loc,
			"`%s` would leave %s with an empty name", ren.Rule, name)
	default:
		return diagnostic.New(diagnostic.KindInternal, "rename_failed", ren.Loc, "%v", err)
	}
}
