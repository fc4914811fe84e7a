// Package analyze is the Go source front end.
//
// It loads packages with golang.org/x/tools/go/packages and extracts struct
// type declarations annotated with //unwrapgen: directives into the
// declaration model:
//
//	//unwrapgen:trim_end = "Signal", keep_rc
//	// BeanSignal is observed by the UI.
//	type BeanSignal struct {
//		//unwrapgen:hashmap
//		Tags ObservableMap[string, ObservableCell[int]]
//		Name ObservableCell[string] `json:"name"`
//	}
//
// Directive lines become configuration entries, other doc lines become
// annotations. Generic instantiations map to named types with arguments,
// struct{} maps to the unit type and embedded fields are positional. Any
// other type expression is carried through verbatim.
package analyze
