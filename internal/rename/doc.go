// Package rename computes new identifiers from old ones.
//
// A Rule is one of rename, add_start, add_end, trim_start, trim_end and the
// lenient trim_start_all / trim_end_all variants. Plain trims fail when the
// text is not found; lenient trims leave such names untouched. Trims remove
// the text once.
package rename
