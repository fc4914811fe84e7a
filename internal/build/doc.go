// Package build assembles output declarations.
//
// For each container the builder parses the container options, computes
// the new name, then parses, merges and rewrites every field. The first
// problem aborts that container only; callers processing a batch keep going
// with the next one.
package build
