package options

import "strings"

// KeepSet selects reference-counting wrappers that survive rewriting.
type KeepSet int

const (
	KeepRefCounted       KeepSet = 1 << iota // keep_rc: RefCounted<T> is retained
	KeepAtomicRefCounted                     // keep_arc: AtomicRefCounted<T> is retained

	KeepAll  = (1 << iota) - 1 // every wrapper kept
	KeepNone = 0               // every wrapper elided
)

// Has reports whether every wrapper in k is kept.
func (s KeepSet) Has(k KeepSet) bool {
	return s&k == k
}

// String lists the metadata keys that produce the set.
func (s KeepSet) String() string {
	var keys []string
	if s.Has(KeepRefCounted) {
		keys = append(keys, KeyKeepRC)
	}

	if s.Has(KeepAtomicRefCounted) {
		keys = append(keys, KeyKeepArc)
	}

	if len(keys) == 0 {
		return "none"
	}

	return strings.Join(keys, "|")
}
