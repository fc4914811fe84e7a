// Package document provides the YAML declaration document: schema
// definitions, loading, validation and conversion to and from the
// declaration model.
//
// # Schema Overview
//
//	version: "1"
//	package: plain
//	declarations:
//	  - kind: struct              # struct | enum | union
//	    name: HumanBeanSignal
//	    visibility: pub
//	    generics: "T"
//	    where: "T: Clone"
//	    config: 'trim_end = "Signal", keep_rc'
//	    annotations:
//	      - "#[derive(Debug)]"
//	    fields:
//	      - name: taste
//	        visibility: pub
//	        type: ObservableCell<String>
//	        config: [remove]
//	  - kind: enum
//	    name: ShapeSignal
//	    config: 'trim_end = "Signal"'
//	    variants:
//	      - name: Circle
//	        style: named
//	        fields:
//	          - name: radius
//	            type: ObservableCell<f64>
//
// # Types
//
// Field types use angle notation: qualified paths ("a::b::T"), generic
// arguments ("Map<K, V>"), tuples ("(A, B)") and the unit type "()".
// Anything else is kept verbatim.
//
// # Positions
//
// Every config entry remembers its YAML line and column so configuration
// errors point at the offending entry.
package document
