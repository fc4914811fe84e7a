package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"unwrapgen/internal/diagnostic"
)

// printDiagnostics writes one "file:line:col: kind: message" line per
// diagnostic.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintln(w, d.String())
	}
}

// renderDiagnosticsTable writes the diagnostics as a table.
func renderDiagnosticsTable(w io.Writer, diags *diagnostic.Diagnostics) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Location", "Severity", "Kind", "Code", "Element", "Message", "Suggestions"})

	for _, d := range diags.All() {
		kind := ""
		if d.Severity == diagnostic.DiagnosticError {
			kind = d.Kind.String()
		}

		loc := ""
		if !d.Location.IsZero() {
			loc = d.Location.String()
		}

		t.AppendRow(table.Row{loc, d.Severity.String(), kind, d.Code, d.Element, d.Message, strings.Join(d.Suggestions, ", ")})
	}

	t.Render()
}

func failedError(diags *diagnostic.Diagnostics) error {
	if n := len(diags.Errors); n > 0 {
		return fmt.Errorf("%d declaration(s) failed", n)
	}

	return nil
}
