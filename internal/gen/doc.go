// Package gen runs a batch of declarations through the builder and renders
// the results.
//
// Declarations are built in parallel with a bounded number of workers.
// Results keep input order, and a declaration that fails to build is
// reported as a diagnostic without affecting its siblings. Built
// declarations are handed to the capture sink in input order.
//
// Output formats:
//   - yaml: a declaration document, readable again by the document front end
//   - text: declaration text, one block per declaration
//   - go: a gofmt-formatted Go file (text/template + go/format)
package gen
