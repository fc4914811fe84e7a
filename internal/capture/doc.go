// Package capture aggregates generated declarations into one artifact file.
//
// Start creates the file with a sentinel header. Every Append re-reads the
// header first: a matching header lets the text through, a different header
// (left by Stop) skips the write, and an unreadable header marks the whole
// directory as stale and removes it. Stop strips the header so that later
// appends are ignored until the next Start.
package capture
