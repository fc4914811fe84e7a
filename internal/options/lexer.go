package options

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokEq
	tokComma
	tokPathSep
	tokAnnotation
	tokOther
)

type token struct {
	kind tokenKind
	text string // unquoted value for strings, source text otherwise
	off  int    // byte offset in the block
}

// describe renders the token for error messages.
func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return fmt.Sprintf("%q", t.text)
	default:
		return "`" + t.text + "`"
	}
}

type lexError struct {
	off int
	msg string
}

func (e *lexError) Error() string {
	return e.msg
}

// lex splits a metadata block into tokens, always ending with tokEOF.
func lex(src string) ([]token, error) {
	var toks []token

	i := 0
	for {
		for i < len(src) {
			r, size := utf8.DecodeRuneInString(src[i:])
			if !unicode.IsSpace(r) {
				break
			}

			i += size
		}

		if i >= len(src) {
			return append(toks, token{kind: tokEOF, off: i}), nil
		}

		start := i
		r, size := utf8.DecodeRuneInString(src[i:])

		switch {
		case r == '_' || unicode.IsLetter(r):
			i = scanWhile(src, i, isIdentRune)
			toks = append(toks, token{kind: tokIdent, text: src[start:i], off: start})
		case unicode.IsDigit(r) || r == '-':
			i = scanWhile(src, i+size, func(r rune) bool { return isIdentRune(r) || r == '.' })
			toks = append(toks, token{kind: tokNumber, text: src[start:i], off: start})
		case r == '"':
			val, end, err := scanString(src, i)
			if err != nil {
				return nil, err
			}

			i = end
			toks = append(toks, token{kind: tokString, text: val, off: start})
		case r == '=':
			i++
			toks = append(toks, token{kind: tokEq, text: "=", off: start})
		case r == ',':
			i++
			toks = append(toks, token{kind: tokComma, text: ",", off: start})
		case strings.HasPrefix(src[i:], "::"):
			i += 2
			toks = append(toks, token{kind: tokPathSep, text: "::", off: start})
		case strings.HasPrefix(src[i:], "#["):
			end, err := scanAnnotation(src, i)
			if err != nil {
				return nil, err
			}

			i = end
			toks = append(toks, token{kind: tokAnnotation, text: src[start:i], off: start})
		default:
			i += size
			toks = append(toks, token{kind: tokOther, text: string(r), off: start})
		}
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func scanWhile(src string, i int, ok func(rune) bool) int {
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !ok(r) {
			break
		}

		i += size
	}

	return i
}

// scanString reads a double-quoted literal starting at src[start].
func scanString(src string, start int) (string, int, error) {
	var sb strings.Builder

	for i := start + 1; i < len(src); i++ {
		switch c := src[i]; c {
		case '"':
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				break
			}

			i++

			switch src[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(src[i])
			}
		default:
			sb.WriteByte(c)
		}
	}

	return "", 0, &lexError{off: start, msg: "unterminated string literal"}
}

// scanAnnotation reads a balanced "#[...]" starting at src[start], skipping
// brackets inside string literals.
func scanAnnotation(src string, start int) (int, error) {
	depth := 0

	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		case '"':
			_, end, err := scanString(src, i)
			if err != nil {
				return 0, err
			}

			i = end - 1
		}
	}

	return 0, &lexError{off: start, msg: "unterminated annotation, missing ']'"}
}
