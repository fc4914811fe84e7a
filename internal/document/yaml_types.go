package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for MetaList.
// Accepts either a single string or an array of strings and records the
// position of each entry.
func (m *MetaList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			*m = MetaList{}
			return nil
		}

		*m = MetaList{entryFromNode(node)}

		return nil

	case yaml.SequenceNode:
		list := make(MetaList, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: config entries must be strings, got %s", item.Line, kindName(item.Kind))
			}

			list = append(list, entryFromNode(item))
		}

		*m = list

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for MetaList.
// Outputs a single string if length is 1, otherwise an array.
func (m MetaList) MarshalYAML() (any, error) {
	texts := make([]string, len(m))
	for i, e := range m {
		texts[i] = e.Text
	}

	if len(texts) == 1 {
		return texts[0], nil
	}

	return texts, nil
}

// entryFromNode records where the text of a scalar starts. Quoted scalars
// start one column after the quote; block scalars on the following line.
func entryFromNode(node *yaml.Node) MetaEntry {
	e := MetaEntry{Text: node.Value, Line: node.Line, Column: node.Column}

	switch {
	case node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0:
		e.Column++
	case node.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0:
		e.Line++
	}

	return e
}

// UnmarshalYAML records the position of the declaration.
func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	type plain Declaration
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Line, d.Column = node.Line, node.Column

	return nil
}

// UnmarshalYAML records the position of the field.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	type plain Field
	if err := node.Decode((*plain)(f)); err != nil {
		return err
	}

	f.Line, f.Column = node.Line, node.Column

	return nil
}

// UnmarshalYAML records the position of the variant.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	type plain Variant
	if err := node.Decode((*plain)(v)); err != nil {
		return err
	}

	v.Line, v.Column = node.Line, node.Column

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
