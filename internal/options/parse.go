package options

import (
	"errors"
	"fmt"
	"strings"

	"unwrapgen/internal/common"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/match"
	"unwrapgen/internal/rename"
)

// Parser turns metadata blocks into validated Options.
type Parser struct {
	policy Policy
}

// NewParser creates a Parser with the given policy.
func NewParser(policy Policy) *Parser {
	return &Parser{policy: policy}
}

// Policy returns the parser policy.
func (p *Parser) Policy() Policy {
	return p.policy
}

// Parse parses metadata with the default policy.
func Parse(meta Metadata, at Placement) (*Options, error) {
	return NewParser(DefaultPolicy()).Parse(meta, at)
}

// Parse scans every block, then validates the result against the placement.
// The first problem found is returned as a *diagnostic.Diagnostic.
func (p *Parser) Parse(meta Metadata, at Placement) (*Options, error) {
	opts := &Options{Preserved: append([]string(nil), meta.Annotations...)}

	var renamers []*Renamer

	for _, b := range meta.Blocks {
		if err := p.parseBlock(b, opts, &renamers); err != nil {
			return nil, withElement(err, at.Element)
		}
	}

	if common.IsMultiple(renamers) {
		last, _ := common.Last(renamers)

		return nil, diagnostic.New(diagnostic.KindCardinality, "multiple_renamers", last.Loc,
			"only one of %s may be used, found %s", strings.Join(rename.Keys(), ", "), renamerKeys(renamers)).
			WithElement(at.Element)
	}

	if r, ok := common.First(renamers); ok {
		opts.Renamer = r
	}

	if err := validate(opts, at, p.policy); err != nil {
		return nil, withElement(err, at.Element)
	}

	return opts, nil
}

func withElement(err error, element string) error {
	if d, ok := diagnostic.As(err); ok {
		return d.WithElement(element)
	}

	return err
}

func renamerKeys(rs []*Renamer) string {
	keys := make([]string, len(rs))
	for i, r := range rs {
		keys[i] = r.Rule.Kind.String()
	}

	return strings.Join(keys, " and ")
}

// blockParser walks the tokens of one block.
type blockParser struct {
	block Block
	toks  []token
	pos   int
}

func (bp *blockParser) cur() token {
	return bp.toks[bp.pos]
}

func (bp *blockParser) next() token {
	t := bp.toks[bp.pos]
	if t.kind != tokEOF {
		bp.pos++
	}

	return t
}

func (bp *blockParser) syntax(t token, code, format string, args ...any) *diagnostic.Diagnostic {
	return diagnostic.New(diagnostic.KindSyntax, code, bp.block.locAt(t.off), format, args...)
}

func (p *Parser) parseBlock(b Block, opts *Options, renamers *[]*Renamer) error {
	toks, err := lex(b.Text)
	if err != nil {
		var le *lexError
		if errors.As(err, &le) {
			return diagnostic.New(diagnostic.KindSyntax, "malformed_metadata", b.locAt(le.off), "%s", le.msg)
		}

		return err
	}

	bp := &blockParser{block: b, toks: toks}

	for bp.cur().kind != tokEOF {
		if err := p.parseEntry(bp, opts, renamers); err != nil {
			return err
		}

		switch t := bp.next(); t.kind {
		case tokComma, tokEOF:
		default:
			return bp.syntax(t, "expected_comma", "expected ',' between options, found %s", t.describe())
		}
	}

	return nil
}

func (p *Parser) parseEntry(bp *blockParser, opts *Options, renamers *[]*Renamer) error {
	keyTok := bp.next()

	switch keyTok.kind {
	case tokIdent:
	case tokString, tokNumber:
		return bp.syntax(keyTok, "literal_entry",
			"literal %s is not an option; expected an option name", keyTok.describe())
	default:
		return bp.syntax(keyTok, "expected_option", "expected an option name, found %s", keyTok.describe())
	}

	if bp.cur().kind == tokPathSep {
		path := keyTok.text
		for bp.cur().kind == tokPathSep {
			bp.next()
			path += "::" + bp.next().text
		}

		return bp.syntax(keyTok, "path_key", "option name `%s` is not a single identifier", path)
	}

	key := keyTok.text
	loc := bp.block.locAt(keyTok.off)

	class, ok := classify(key)
	if !ok {
		return bp.syntax(keyTok, "unknown_option", "unknown option `%s`", key).
			WithSuggestions(match.Suggest(key, KnownKeys(), 2)...)
	}

	hasValue := bp.cur().kind == tokEq
	if hasValue {
		bp.next()
	}

	switch class {
	case classFlag:
		if hasValue {
			return bp.syntax(keyTok, "unexpected_value", "`%s` does not take a value", key)
		}

		return setFlag(opts, key, loc)
	case classRenamer, classList:
		if !hasValue {
			return bp.syntax(keyTok, "missing_value", "`%s` requires a string value, e.g. %s = \"...\"", key, key)
		}

		val := bp.next()
		if val.kind != tokString {
			return bp.syntax(val, "non_string_value",
				"only string literals are allowed for `%s`, found %s", key, val.describe())
		}

		if strings.TrimSpace(val.text) == "" {
			return bp.syntax(val, "empty_value", "`%s` value must not be empty", key)
		}

		valLoc := bp.block.locAt(val.off)
		opts.entries = append(opts.entries, entry{key: key, loc: loc})

		if class == classList {
			return addList(opts, key, val.text, valLoc)
		}

		return addRenamer(renamers, key, val.text, loc, valLoc)
	default:
		if !hasValue {
			return bp.syntax(keyTok, "missing_value", "`%s` requires a list of #[...] annotations", key)
		}

		return p.addAnnotations(bp, opts, key, loc)
	}
}

func setFlag(opts *Options, key string, loc diagnostic.Location) error {
	var f *Flag

	switch key {
	case KeyIgnore:
		f = &opts.Ignore
	case KeyRemove:
		f = &opts.Remove
	case KeyKeepRC:
		f = &opts.KeepRC
	case KeyKeepArc:
		f = &opts.KeepArc
	case KeyHashMap:
		f = &opts.MapAsHash
	default:
		return fmt.Errorf("unhandled flag %q", key)
	}

	if f.Set {
		return duplicate(key, loc)
	}

	*f = Flag{Set: true, Loc: loc}
	opts.entries = append(opts.entries, entry{key: key, loc: loc})

	return nil
}

func duplicate(key string, loc diagnostic.Location) *diagnostic.Diagnostic {
	return diagnostic.New(diagnostic.KindConflict, "duplicate_option", loc, "`%s` should only be used once", key)
}

func addRenamer(renamers *[]*Renamer, key, value string, loc, valLoc diagnostic.Location) error {
	kind, _ := rename.KindFromKey(key)

	for _, r := range *renamers {
		if r.Rule.Kind == kind {
			return duplicate(key, loc)
		}
	}

	valid := isIdentFragment
	if kind == rename.KindRename {
		valid = isIdent
	}

	if !valid(value) {
		return diagnostic.New(diagnostic.KindSyntax, "invalid_identifier", valLoc,
			"`%s` value %q is not a valid identifier", key, value)
	}

	*renamers = append(*renamers, &Renamer{Rule: rename.Rule{Kind: kind, Text: value}, Loc: loc})

	return nil
}

func addList(opts *Options, key, value string, valLoc diagnostic.Location) error {
	target, valid := &opts.Derives, isPath
	if key == KeyCfgFeature {
		target, valid = &opts.CfgFeatures, isFeature
	}

	for _, raw := range strings.Split(value, ",") {
		item := strings.TrimSpace(raw)
		if item == "" {
			return diagnostic.New(diagnostic.KindSyntax, "empty_list_item", valLoc,
				"`%s` list %q contains an empty item", key, value)
		}

		if !valid(item) {
			return diagnostic.New(diagnostic.KindSyntax, "invalid_list_item", valLoc,
				"`%s` item %q is not a valid name", key, item)
		}

		*target = append(*target, Item{Value: item, Loc: valLoc})
	}

	return nil
}

// addAnnotations reads `#[..], #[..]` after attribute / attribute_replace.
// A comma followed by another annotation continues the list.
func (p *Parser) addAnnotations(bp *blockParser, opts *Options, key string, loc diagnostic.Location) error {
	replace := key == KeyAttributeReplace

	if len(opts.Extras) > 0 && opts.ReplaceAnnotations != replace {
		return diagnostic.New(diagnostic.KindConflict, "attribute_mode_conflict", loc,
			"`%s` and `%s` cannot be combined", KeyAttribute, KeyAttributeReplace)
	}

	for {
		t := bp.next()
		if t.kind != tokAnnotation {
			return bp.syntax(t, "expected_annotation", "`%s` expects #[...] annotations, found %s", key, t.describe())
		}

		opts.Extras = append(opts.Extras, t.text)

		if bp.cur().kind != tokComma || bp.toks[bp.pos+1].kind != tokAnnotation {
			break
		}

		bp.next()
	}

	if opts.ExtrasLoc.IsZero() {
		opts.ExtrasLoc = loc
	}

	opts.ReplaceAnnotations = replace
	opts.entries = append(opts.entries, entry{key: key, loc: loc})

	return nil
}
