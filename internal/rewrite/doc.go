// Package rewrite strips wrapper generics from declared field types.
//
// Recognized wrappers are matched on the last path segment only:
//
//	ObservableCell<T>             -> T
//	RefCounted<T>                 -> T   (kept with keep_rc)
//	AtomicRefCounted<T>           -> T   (kept with keep_arc)
//	ObservableVector<T>           -> Vector<T>
//	ObservableOrderedMap<K, V>    -> OrderedMap<K, V> / HashMap<K, V>
//	ObservableOrderedMap<K, ()>   -> OrderedSet<K> / HashSet<K>
//
// Every other named type is a leaf: its identifier is renamed with the
// field's rule and its generic arguments are kept as written.
package rewrite
