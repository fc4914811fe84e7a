package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/diagnostic"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
		kind diagnostic.Kind
	}{
		{
			name: "missing name",
			yaml: "declarations:\n  - fields:\n      - {name: a, type: u8}\n",
			code: "missing_name",
		},
		{
			name: "invalid name",
			yaml: "declarations:\n  - name: 9lives\n",
			code: "invalid_name",
		},
		{
			name: "unknown kind",
			yaml: "declarations:\n  - name: A\n    kind: strukt\n",
			code: "unknown_kind",
		},
		{
			name: "variants on struct",
			yaml: "declarations:\n  - name: A\n    variants: [{name: B}]\n",
			code: "variants_on_struct",
		},
		{
			name: "fields on enum",
			yaml: "declarations:\n  - name: A\n    kind: enum\n    fields: [{name: a, type: u8}]\n",
			code: "fields_on_enum",
		},
		{
			name: "mixed field styles",
			yaml: "declarations:\n  - name: A\n    fields: [{name: a, type: u8}, {type: u8}]\n",
			code: "invalid_style",
		},
		{
			name: "unknown style",
			yaml: "declarations:\n  - name: A\n    style: tuple\n",
			code: "invalid_style",
		},
		{
			name: "unit variant with fields",
			yaml: "declarations:\n  - name: A\n    kind: enum\n    variants: [{name: B, style: unit, fields: [{type: u8}]}]\n",
			code: "invalid_style",
		},
		{
			name: "missing type",
			yaml: "declarations:\n  - name: A\n    fields: [{name: a}]\n",
			code: "missing_type",
		},
		{
			name: "duplicate field",
			yaml: "declarations:\n  - name: A\n    fields: [{name: a, type: u8}, {name: a, type: u16}]\n",
			code: "duplicate_field",
			kind: diagnostic.KindConflict,
		},
		{
			name: "duplicate declaration",
			yaml: "declarations:\n  - name: A\n  - name: A\n",
			code: "duplicate_declaration",
			kind: diagnostic.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(doc)
			require.Len(t, res.Errors, 1, "%v", res.Error())
			assert.Equal(t, tt.code, res.Errors[0].Code)
			assert.Equal(t, tt.kind, res.Errors[0].Kind)
		})
	}
}

func TestValidate_SuggestsKind(t *testing.T) {
	doc, err := Parse([]byte("declarations:\n  - name: A\n    kind: enm\n"))
	require.NoError(t, err)

	res := Validate(doc)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"enum"}, res.Errors[0].Suggestions)
}

func TestValidate_Valid(t *testing.T) {
	doc, err := Parse([]byte(beans))
	require.NoError(t, err)

	res := Validate(doc)
	assert.True(t, res.IsValid())
}
