package typexpr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a type written in angle notation.
//
// Named paths use "::" or "." separators and "<...>" generic arguments,
// tuples use "(A, B)" and "()" is the unit type. Anything else (references,
// slices, arrays, function types, lifetimes) becomes an opaque node that is
// carried through unchanged.
func Parse(src string) (*Expr, error) {
	p := &parser{src: src}

	e, err := p.parseType()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if !p.eof() {
		return nil, fmt.Errorf("unexpected %q at offset %d in type %q", p.peek(), p.pos, src)
	}

	return e, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return e
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])

	return r
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}

		p.pos += size
	}
}

// atBoundary reports whether the cursor sits where a type inside a list ends.
func (p *parser) atBoundary() bool {
	p.skipSpace()

	switch p.peek() {
	case 0, ',', '>', ')':
		return true
	}

	return false
}

func (p *parser) parseType() (*Expr, error) {
	p.skipSpace()

	if p.eof() {
		return nil, fmt.Errorf("empty type in %q", p.src)
	}

	start := p.pos

	var (
		e   *Expr
		err error
	)

	switch r := p.peek(); {
	case r == '(':
		e, err = p.parseTuple()
	case isIdentStart(r):
		e, err = p.parseNamed()
	default:
		return p.scanOpaque(start)
	}

	if err != nil || !p.atBoundary() {
		// Shapes such as "T<A>::Assoc" or "dyn Trait" are not modelled.
		p.pos = start
		return p.scanOpaque(start)
	}

	return e, nil
}

func (p *parser) parseNamed() (*Expr, error) {
	var path []string

	for {
		ident := p.ident()
		if ident == "" {
			return nil, fmt.Errorf("expected identifier at offset %d", p.pos)
		}

		path = append(path, ident)

		switch {
		case strings.HasPrefix(p.src[p.pos:], "::"):
			p.pos += 2
			continue
		case p.peek() == '.':
			p.pos++
			continue
		}

		break
	}

	if isKeyword(path[0]) && len(path) == 1 {
		return nil, fmt.Errorf("keyword %q", path[0])
	}

	e := &Expr{Kind: KindNamed, Path: path}

	p.skipSpace()

	if p.peek() != '<' {
		return e, nil
	}

	p.pos++

	args, err := p.parseList('>')
	if err != nil {
		return nil, err
	}

	e.Args = args

	return e, nil
}

func (p *parser) parseTuple() (*Expr, error) {
	p.pos++ // (

	p.skipSpace()

	if p.peek() == ')' {
		p.pos++
		return Unit(), nil
	}

	first, err := p.parseType()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	// "(T)" is a parenthesized type, "(T,)" a one-element tuple.
	if p.peek() == ')' {
		p.pos++
		return first, nil
	}

	if p.peek() != ',' {
		return nil, fmt.Errorf("expected ',' at offset %d", p.pos)
	}

	p.pos++

	rest, err := p.parseList(')')
	if err != nil {
		return nil, err
	}

	return Tuple(append([]*Expr{first}, rest...)...), nil
}

// parseList reads comma-separated types until the closing rune, allowing a
// trailing comma.
func (p *parser) parseList(closing rune) ([]*Expr, error) {
	var list []*Expr

	for {
		p.skipSpace()

		if p.peek() == closing {
			p.pos++
			return list, nil
		}

		el, err := p.parseType()
		if err != nil {
			return nil, err
		}

		list = append(list, el)

		p.skipSpace()

		switch p.peek() {
		case ',':
			p.pos++
		case closing:
		default:
			return nil, fmt.Errorf("expected ',' or %q at offset %d in %q", closing, p.pos, p.src)
		}
	}
}

// scanOpaque consumes balanced text until a list boundary at depth zero.
func (p *parser) scanOpaque(start int) (*Expr, error) {
	depth := 0

	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])

		switch r {
		case '<', '(', '[', '{':
			depth++
		case '>':
			// "->" in function types is not a closing bracket.
			if p.pos > 0 && p.src[p.pos-1] == '-' {
				break
			}

			if depth == 0 {
				return p.opaqueFrom(start)
			}

			depth--
		case ')', ']', '}':
			if depth == 0 {
				return p.opaqueFrom(start)
			}

			depth--
		case ',':
			if depth == 0 {
				return p.opaqueFrom(start)
			}
		}

		p.pos += size
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets in type %q", p.src[start:])
	}

	return p.opaqueFrom(start)
}

func (p *parser) opaqueFrom(start int) (*Expr, error) {
	raw := strings.TrimSpace(p.src[start:p.pos])
	if raw == "" {
		return nil, fmt.Errorf("empty type at offset %d in %q", start, p.src)
	}

	return Opaque(raw), nil
}

func (p *parser) ident() string {
	p.skipSpace()

	start := p.pos

	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if p.pos == start && !isIdentStart(r) {
			break
		}

		if !isIdentStart(r) && !unicode.IsDigit(r) {
			break
		}

		p.pos += size
	}

	return p.src[start:p.pos]
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isKeyword(s string) bool {
	switch s {
	case "dyn", "impl", "fn", "mut", "const", "unsafe", "extern":
		return true
	}

	return false
}
