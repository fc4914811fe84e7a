// Package options parses the configuration metadata attached to containers
// and fields.
//
// A metadata block is a comma-separated entry list:
//
//	trim_end = "Signal", keep_rc, derive = "Debug, Clone"
//	attribute = #[serde(rename_all = "camelCase")], #[doc = "plain"]
//
// Entries are bare flags (ignore, remove, keep_rc, keep_arc, hashmap),
// key = "string" pairs (renamers, derive, cfg_feature) or annotation lists
// (attribute, attribute_replace). Parse reports the first problem as a
// located *diagnostic.Diagnostic; Merge then applies container defaults to
// each field.
package options
