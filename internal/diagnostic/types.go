package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"unwrapgen/internal/common"
)

// Diagnostics holds all diagnostic information from a batch run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind classifies the failure.
	Kind Kind
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Location points at the offending metadata entry or declaration.
	Location Location
	// Element identifies the container, variant or field (e.g. "Bean.age").
	Element string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Kind is the failure taxonomy.
type Kind int

const (
	// KindSyntax is a malformed configuration entry.
	KindSyntax Kind = iota
	// KindConflict is a repeated or mutually exclusive option.
	KindConflict
	// KindCardinality is a missing mandatory option or too many of one group.
	KindCardinality
	// KindPlacement is an option used where it is not allowed.
	KindPlacement
	// KindMatch is a must-match renamer whose text was not found.
	KindMatch
	// KindUnsupported is a declaration shape the builder cannot transform.
	KindUnsupported
	// KindInternal is a broken invariant, such as a wrapper with the wrong arity.
	KindInternal
)

// String returns the kind name used in rendered diagnostics.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindConflict:
		return "conflict error"
	case KindCardinality:
		return "cardinality error"
	case KindPlacement:
		return "placement error"
	case KindMatch:
		return "match error"
	case KindUnsupported:
		return "unsupported construct"
	case KindInternal:
		return "internal error"
	default:
		return common.UnknownStr
	}
}

// New creates an error-severity diagnostic.
func New(kind Kind, code string, loc Location, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: DiagnosticError,
		Kind:     kind,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// WithElement sets the element path unless one is already recorded.
// The innermost caller knows the most precise element, so it wins.
func (d *Diagnostic) WithElement(element string) *Diagnostic {
	if d.Element == "" {
		d.Element = element
	}

	return d
}

// WithSuggestions appends suggestions.
func (d *Diagnostic) WithSuggestions(s ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, s...)
	return d
}

// WithFile fills in the file of the location when it is missing.
func (d *Diagnostic) WithFile(file string) *Diagnostic {
	if d.Location.File == "" {
		d.Location.File = file
	}

	return d
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.String()
}

// As extracts a *Diagnostic from err.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}

	return nil, false
}

// KindOf returns the kind of the diagnostic wrapped in err.
func KindOf(err error) (Kind, bool) {
	d, ok := As(err)
	if !ok {
		return 0, false
	}

	return d.Kind, true
}

// Add records a diagnostic under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddErr records err as an error diagnostic. Errors that are not diagnostics
// are kept as internal errors for the given element.
func (d *Diagnostics) AddErr(err error, element string) {
	if diag, ok := As(err); ok {
		cp := *diag
		cp.WithElement(element)
		d.Add(cp)

		return
	}

	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Kind:     KindInternal,
		Code:     "internal",
		Message:  err.Error(),
		Element:  element,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, element string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Element:  element,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, element string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Element:  element,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string:
// "file:line:col: kind: [Element] message".
func (d Diagnostic) String() string {
	var prefix []string
	if !d.Location.IsZero() {
		prefix = append(prefix, d.Location.String())
	}

	if d.Severity == DiagnosticError {
		prefix = append(prefix, d.Kind.String())
	} else {
		prefix = append(prefix, d.Severity.String())
	}

	msg := d.Message
	if d.Element != "" {
		msg = fmt.Sprintf("[%s] %s", d.Element, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return strings.Join(prefix, ": ") + ": " + msg
}
