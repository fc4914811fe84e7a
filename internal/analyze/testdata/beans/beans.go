package beans

import "time"

type ObservableCell[T any] struct{ value T }

type RefCounted[T any] struct{ value *T }

type ObservableMap[K comparable, V any] struct{ m map[K]V }

//unwrapgen:trim_end = "Signal", keep_rc
// BeanSignal is observed by the UI.
type BeanSignal struct {
	//unwrapgen:hashmap
	Tags ObservableMap[string, ObservableCell[int]]

	Name ObservableCell[string] `json:"name"`

	// Shared between views.
	Owner RefCounted[ObservableCell[string]]

	//unwrapgen:remove
	Seen, Touched time.Time

	Raw []byte
}

//unwrapgen:rename = "Pair"
type PairSignal[T any] struct {
	ObservableCell[T]
	Empty struct{}
}

//unwrapgen:trim_end = "Signal"
type Loose struct {
	ObservableCell[int]
	RefCounted[int]
}

//unwrapgen:rename = "Nothing"
type NothingSignal struct{}

//unwrapgen:rename = "Other"
type Count int

// Plain has no directives and is skipped.
type Plain struct {
	Value int
}
