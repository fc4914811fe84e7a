package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/typexpr"
)

func TestDecls(t *testing.T) {
	doc, err := Parse([]byte(beans))
	require.NoError(t, err)

	doc.Path = "beans.yaml"

	decls, diags := Decls(doc)
	require.False(t, diags.HasErrors(), "%v", diags.Error())
	require.Len(t, decls, 1)

	c := decls[0]
	assert.Equal(t, decl.KindStruct, c.Kind)
	assert.Equal(t, decl.StyleNamed, c.Style)
	assert.Equal(t, "beans", c.Package)
	assert.Equal(t, diagnostic.Location{File: "beans.yaml", Line: 4, Column: 5}, c.Loc)

	require.Len(t, c.Meta, 1)
	assert.Equal(t, diagnostic.Location{File: "beans.yaml", Line: 5, Column: 14}, c.Meta[0].Loc)

	require.Len(t, c.Fields, 2)
	assert.True(t, c.Fields[0].Type.Equal(typexpr.MustParse("Signal<String>")))
	assert.Equal(t, "remove", c.Fields[1].Meta[0].Text)
}

func TestDecls_Positional(t *testing.T) {
	doc, err := Parse([]byte(`declarations:
  - name: Pair
    fields:
      - type: Signal<u8>
      - type: (u8, u8)
`))
	require.NoError(t, err)

	decls, diags := Decls(doc)
	require.False(t, diags.HasErrors())
	require.Len(t, decls, 1)
	assert.Equal(t, decl.StylePositional, decls[0].Style)
	assert.Equal(t, typexpr.KindTuple, decls[0].Fields[1].Type.Kind)
}

func TestDecls_Enum(t *testing.T) {
	doc, err := Parse([]byte(`declarations:
  - kind: enum
    name: Shape
    variants:
      - name: Empty
      - name: Circle
        fields:
          - name: radius
            type: Signal<f64>
      - name: Pair
        fields:
          - type: u8
          - type: u8
`))
	require.NoError(t, err)

	decls, diags := Decls(doc)
	require.False(t, diags.HasErrors(), "%v", diags.Error())
	require.Len(t, decls, 1)

	vs := decls[0].Variants
	require.Len(t, vs, 3)
	assert.Equal(t, decl.StyleUnit, vs[0].Style)
	assert.Equal(t, decl.StyleNamed, vs[1].Style)
	assert.Equal(t, decl.StylePositional, vs[2].Style)
}

func TestDecls_SkipsInvalid(t *testing.T) {
	doc, err := Parse([]byte(`declarations:
  - name: Broken
    fields:
      - name: a
        type: Signal<
  - name: Fine
    fields:
      - name: b
        type: u8
`))
	require.NoError(t, err)

	decls, diags := Decls(doc)
	require.Len(t, decls, 1)
	assert.Equal(t, "Fine", decls[0].Name)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "invalid_type", diags.Errors[0].Code)
	assert.Equal(t, "Broken.a", diags.Errors[0].Element)
	assert.Equal(t, 4, diags.Errors[0].Location.Line)
}

func TestFromDecls(t *testing.T) {
	c := &decl.Container{
		Kind:        decl.KindStruct,
		Name:        "Bean",
		Visibility:  "pub",
		Style:       decl.StyleNamed,
		Annotations: []string{"#[derive(Debug)]"},
		Fields: []*decl.Field{
			{Name: "tags", Visibility: "pub", Type: typexpr.MustParse("Vector<String>")},
		},
	}

	doc := FromDecls("beans", []*decl.Container{c})
	data, err := Marshal(doc)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, back.Declarations, 1)

	d := back.Declarations[0]
	assert.Equal(t, "Bean", d.Name)
	assert.Equal(t, "named", d.Style)
	assert.Equal(t, []string{"#[derive(Debug)]"}, d.Annotations)
	assert.Equal(t, "Vector<String>", d.Fields[0].Type)
}
