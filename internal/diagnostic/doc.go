// Package diagnostic provides located, kinded errors for the unwrapgen
// pipeline.
//
// Every user-facing failure is a *Diagnostic carrying:
//   - a Kind (syntax, conflict, cardinality, placement, match, unsupported)
//   - a stable Code for tooling
//   - the source Location of the offending entry
//   - the Element path (e.g. "HumanBean.age") it applies to
//
// Diagnostic implements error, so the parser, rewriter and builder return
// plain errors that callers recover with errors.As or KindOf.
package diagnostic
