package match

import (
	"strings"
	"unicode"
)

// Words splits a CamelCase or snake_case identifier into words.
// Examples:
//   - "HumanBeanSignal" -> ["Human", "Bean", "Signal"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "observable_cell" -> ["observable", "cell"]
func Words(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// "beanSignal": lower to upper.
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": end of an acronym.
	nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && nextLower
}
