package rename

import (
	"errors"
	"fmt"
	"strings"

	"unwrapgen/internal/common"
)

// ErrNoMatch is returned by must-match rules whose text is not found.
var ErrNoMatch = errors.New("rename text does not match")

// ErrEmptyResult is returned when a trim would consume the whole identifier.
var ErrEmptyResult = errors.New("rename would produce an empty identifier")

// Kind selects the renaming operation.
type Kind int

const (
	KindNone Kind = iota
	KindRename
	KindAddPrefix
	KindAddSuffix
	KindTrimPrefix
	KindTrimPrefixIfMatches
	KindTrimSuffix
	KindTrimSuffixIfMatches
)

// Option keys as written in metadata, indexed by Kind.
var kindKeys = [...]string{
	KindNone:                "",
	KindRename:              "rename",
	KindAddPrefix:           "add_start",
	KindAddSuffix:           "add_end",
	KindTrimPrefix:          "trim_start",
	KindTrimPrefixIfMatches: "trim_start_all",
	KindTrimSuffix:          "trim_end",
	KindTrimSuffixIfMatches: "trim_end_all",
}

// String returns the metadata key for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindKeys) || k == KindNone {
		return common.UnknownStr
	}

	return kindKeys[k]
}

// KindFromKey maps a metadata key to a rule kind.
func KindFromKey(key string) (Kind, bool) {
	for i, k := range kindKeys {
		if k != "" && k == key {
			return Kind(i), true
		}
	}

	return KindNone, false
}

// Keys returns every renamer key in declaration order.
func Keys() []string {
	return append([]string(nil), kindKeys[1:]...)
}

// Rule computes a new identifier from an old one.
type Rule struct {
	Kind Kind
	Text string
}

// IsZero reports whether no rule is set.
func (r Rule) IsZero() bool {
	return r.Kind == KindNone
}

// IsLenient reports whether the rule is a best-effort "…_all" variant that
// leaves non-matching names unchanged.
func (r Rule) IsLenient() bool {
	return r.Kind == KindTrimPrefixIfMatches || r.Kind == KindTrimSuffixIfMatches
}

// String renders the rule as it would be written in metadata.
func (r Rule) String() string {
	if r.IsZero() {
		return ""
	}

	return fmt.Sprintf("%s = %q", r.Kind, r.Text)
}

// Apply computes the new name. Must-match trims wrap ErrNoMatch when the
// text is absent; lenient trims return the name unchanged instead.
func (r Rule) Apply(name string) (string, error) {
	switch r.Kind {
	case KindNone:
		return name, nil
	case KindRename:
		return r.Text, nil
	case KindAddPrefix:
		return r.Text + name, nil
	case KindAddSuffix:
		return name + r.Text, nil
	case KindTrimPrefix:
		if !strings.HasPrefix(name, r.Text) {
			return "", fmt.Errorf("%w: %s does not start with %s", ErrNoMatch, name, r.Text)
		}

		return nonEmpty(strings.TrimPrefix(name, r.Text), name)
	case KindTrimSuffix:
		if !strings.HasSuffix(name, r.Text) {
			return "", fmt.Errorf("%w: %s does not end with %s", ErrNoMatch, name, r.Text)
		}

		return nonEmpty(strings.TrimSuffix(name, r.Text), name)
	case KindTrimPrefixIfMatches:
		if len(name) > len(r.Text) && strings.HasPrefix(name, r.Text) {
			return strings.TrimPrefix(name, r.Text), nil
		}

		return name, nil
	case KindTrimSuffixIfMatches:
		if len(name) > len(r.Text) && strings.HasSuffix(name, r.Text) {
			return strings.TrimSuffix(name, r.Text), nil
		}

		return name, nil
	default:
		return "", fmt.Errorf("unknown rename kind %d", r.Kind)
	}
}

func nonEmpty(result, name string) (string, error) {
	if result == "" {
		return "", fmt.Errorf("%w: trimming %s", ErrEmptyResult, name)
	}

	return result, nil
}
