// Package match provides fuzzy identifier helpers: edit distance, CamelCase
// word splitting and ranked "did you mean" suggestions for unknown option
// keys.
package match
