package options

import (
	"slices"

	"unwrapgen/internal/rename"
)

// Option keys.
const (
	KeyIgnore           = "ignore"
	KeyRemove           = "remove"
	KeyKeepRC           = "keep_rc"
	KeyKeepArc          = "keep_arc"
	KeyHashMap          = "hashmap"
	KeyDerive           = "derive"
	KeyCfgFeature       = "cfg_feature"
	KeyAttribute        = "attribute"
	KeyAttributeReplace = "attribute_replace"
)

type keyClass int

const (
	classFlag        keyClass = iota // bare flag, no value
	classRenamer                     // key = "string", one renamer per element
	classList                        // key = "a, b", repeatable
	classAnnotations                 // key = #[..], #[..]
)

var keyClasses = map[string]keyClass{
	KeyIgnore:           classFlag,
	KeyRemove:           classFlag,
	KeyKeepRC:           classFlag,
	KeyKeepArc:          classFlag,
	KeyHashMap:          classFlag,
	KeyDerive:           classList,
	KeyCfgFeature:       classList,
	KeyAttribute:        classAnnotations,
	KeyAttributeReplace: classAnnotations,
}

func classify(key string) (keyClass, bool) {
	if _, ok := rename.KindFromKey(key); ok {
		return classRenamer, true
	}

	c, ok := keyClasses[key]

	return c, ok
}

// KnownKeys returns every recognised option key, sorted.
func KnownKeys() []string {
	keys := rename.Keys()
	for k := range keyClasses {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
