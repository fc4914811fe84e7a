// Package decl models the container declarations unwrapgen transforms:
// structs and enums with their fields, variants, annotations and raw
// configuration metadata.
package decl
