package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/decl"
	"unwrapgen/internal/typexpr"
)

func named(name, typ string, annotations ...string) *decl.Field {
	return &decl.Field{Name: name, Visibility: "pub", Type: typexpr.MustParse(typ), Annotations: annotations}
}

func TestDeclaration_NamedStruct(t *testing.T) {
	c := &decl.Container{
		Kind:        decl.KindStruct,
		Name:        "HumanBean",
		Visibility:  "pub",
		Generics:    "T",
		Where:       "T: Clone",
		Style:       decl.StyleNamed,
		Annotations: []string{"#[derive(Debug)]"},
		Fields: []*decl.Field{
			named("taste", "String", `#[serde(rename = "t")]`),
			named("crunch", "OrderedMap<String, Vector<T>>"),
		},
	}

	want := `#[derive(Debug)]
pub struct HumanBean<T> where T: Clone {
    #[serde(rename = "t")]
    pub taste: String,
    pub crunch: OrderedMap<String, Vector<T>>,
}
`
	assert.Equal(t, want, Declaration(c))
}

func TestDeclaration_PositionalStruct(t *testing.T) {
	c := &decl.Container{
		Kind:  decl.KindStruct,
		Name:  "Pair",
		Style: decl.StylePositional,
		Fields: []*decl.Field{
			{Visibility: "pub", Type: typexpr.MustParse("u8")},
			{Type: typexpr.MustParse("(A, B)")},
		},
	}

	assert.Equal(t, "struct Pair(pub u8, (A, B));\n", Declaration(c))
}

func TestDeclaration_Enum(t *testing.T) {
	c := &decl.Container{
		Kind:       decl.KindEnum,
		Name:       "Shape",
		Visibility: "pub",
		Variants: []*decl.Variant{
			{Name: "Empty", Style: decl.StyleUnit},
			{Name: "Circle", Style: decl.StyleNamed, Fields: []*decl.Field{{Name: "radius", Type: typexpr.MustParse("f64")}}},
			{Name: "Points", Style: decl.StylePositional, Fields: []*decl.Field{{Type: typexpr.MustParse("Vector<Point>")}}},
		},
	}

	want := `pub enum Shape {
    Empty,
    Circle { radius: f64 },
    Points(Vector<Point>),
}
`
	assert.Equal(t, want, Declaration(c))
}

func TestGoType(t *testing.T) {
	tests := map[string]string{
		"string":                        "string",
		"Vector<string>":                "Vector[string]",
		"a::b::c::Thing<u8, ()>":        "c.Thing[u8, struct{}]",
		"time.Time":                     "time.Time",
		"(int, string)":                 "struct{ F0 int; F1 string }",
		"OrderedMap<string, Vector<T>>": "OrderedMap[string, Vector[T]]",
	}

	for src, want := range tests {
		assert.Equal(t, want, GoType(typexpr.MustParse(src)), src)
	}

	assert.Equal(t, "map[string]int", GoType(typexpr.Opaque("map[string]int")))
}

func TestGoFile(t *testing.T) {
	bean := &decl.Container{
		Kind:        decl.KindStruct,
		Name:        "Bean",
		Generics:    "T",
		Annotations: []string{"Bean is a plain bean."},
		Fields: []*decl.Field{
			{Name: "Taste", Type: typexpr.MustParse("string"), Tag: `json:"taste"`},
			{Name: "crunch_level", Type: typexpr.MustParse("Vector<T>")},
			{Type: typexpr.MustParse("Base")},
			{Type: typexpr.MustParse("Vector<int>")},
		},
	}
	shape := &decl.Container{
		Kind: decl.KindEnum,
		Name: "Shape",
		Variants: []*decl.Variant{
			{Name: "Empty", Style: decl.StyleUnit},
			{Name: "Circle", Style: decl.StyleNamed, Fields: []*decl.Field{{Name: "Radius", Type: typexpr.MustParse("float64")}}},
		},
	}

	src, err := GoFile("plain", "signals.go", []*decl.Container{bean, shape})
	require.NoError(t, err, string(src))

	out := string(src)
	assert.Contains(t, out, "// Code generated by unwrapgen. DO NOT EDIT.")
	assert.Contains(t, out, "package plain")
	assert.Contains(t, out, "// Bean is a plain bean.\ntype Bean[T any] struct {")
	assert.Regexp(t, "Taste\\s+string\\s+`json:\"taste\"`", out)
	assert.Regexp(t, `CrunchLevel\s+Vector\[T\]`, out)
	assert.Contains(t, out, "\tBase\n")
	assert.Regexp(t, `F3\s+Vector\[int\]`, out)
	assert.Contains(t, out, "type Shape interface {\n\tisShape()\n}")
	assert.Contains(t, out, "type ShapeEmpty struct{}")
	assert.Contains(t, out, "func (ShapeCircle) isShape() {}")
}

func TestGoFile_FormatError(t *testing.T) {
	bad := &decl.Container{
		Kind:   decl.KindStruct,
		Name:   "Bad",
		Fields: []*decl.Field{{Name: "x", Type: typexpr.Opaque("&'a str")}},
	}

	src, err := GoFile("plain", "", []*decl.Container{bad})
	require.Error(t, err)
	assert.Contains(t, string(src), "type Bad struct")
}
