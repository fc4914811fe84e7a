package options

import (
	"strings"
	"unicode"

	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/rename"
)

// validate applies the placement rules once all blocks are parsed.
func validate(opts *Options, at Placement, policy Policy) error {
	if at.Site == SiteContainer {
		return validateContainer(opts, at, policy)
	}

	return validateField(opts, at, policy)
}

func validateContainer(opts *Options, at Placement, policy Policy) error {
	for _, f := range []struct {
		key  string
		flag Flag
	}{{KeyRemove, opts.Remove}, {KeyIgnore, opts.Ignore}} {
		if f.flag.Set {
			return diagnostic.New(diagnostic.KindPlacement, "field_only_option", f.flag.Loc,
				"`%s` can only be used on a field, not on a container", f.key)
		}
	}

	if opts.Renamer == nil && !policy.AutoName {
		return diagnostic.New(diagnostic.KindCardinality, "missing_renamer", at.Loc,
			"a container must be renamed using one of %s", strings.Join(rename.Keys(), ", "))
	}

	return nil
}

func validateField(opts *Options, at Placement, policy Policy) error {
	if opts.Ignore.Set {
		for _, e := range opts.entries {
			if e.key != KeyIgnore {
				return diagnostic.New(diagnostic.KindConflict, "ignore_exclusive", e.loc,
					"`%s` cannot be combined with any other option, found `%s`", KeyIgnore, e.key)
			}
		}
	}

	if r := opts.Renamer; r != nil {
		switch {
		case opts.Remove.Set:
			return diagnostic.New(diagnostic.KindConflict, "remove_with_renamer", r.Loc,
				"`%s` cannot be combined with `%s`", KeyRemove, r.Rule.Kind)
		case r.Rule.IsLenient():
			return diagnostic.New(diagnostic.KindPlacement, "container_only_option", r.Loc,
				"`%s` can only be used on a container", r.Rule.Kind)
		case at.Positional:
			return diagnostic.New(diagnostic.KindPlacement, "positional_renamer", r.Loc,
				"`%s` cannot be used on a positional field", r.Rule.Kind)
		}
	}

	if !policy.FieldDerives {
		for _, e := range opts.entries {
			if e.key == KeyDerive || e.key == KeyCfgFeature {
				return diagnostic.New(diagnostic.KindPlacement, "container_only_option", e.loc,
					"`%s` can only be used on a container", e.key)
			}
		}
	}

	return nil
}

// isIdent reports whether s is a complete identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}

		if !isIdentRune(r) {
			return false
		}
	}

	return true
}

// isIdentFragment reports whether s can be glued to an identifier.
func isIdentFragment(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}

	return true
}

// isPath reports whether s is an identifier path such as serde::Serialize.
func isPath(s string) bool {
	for _, seg := range strings.Split(s, "::") {
		if !isIdent(seg) {
			return false
		}
	}

	return true
}

// isFeature reports whether s is a cargo-style feature name.
func isFeature(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isIdentRune(r) && r != '-' {
			return false
		}
	}

	return true
}
