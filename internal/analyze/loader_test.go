package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/typexpr"
)

func loadBeans(t *testing.T) *Result {
	t.Helper()

	res, err := NewAnalyzer("testdata/beans", nil).LoadPackages(".")
	require.NoError(t, err)

	return res
}

func findDecl(t *testing.T, res *Result, name string) *decl.Container {
	t.Helper()

	for _, c := range res.Decls {
		if c.Name == name {
			return c
		}
	}

	require.Failf(t, "declaration not found", "%s", name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	res := loadBeans(t)

	names := make([]string, len(res.Decls))
	for i, c := range res.Decls {
		names[i] = c.Name
	}

	assert.Equal(t, []string{"BeanSignal", "PairSignal", "Loose", "NothingSignal"}, names)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, "not_a_struct", res.Diagnostics.Errors[0].Code)
	assert.Equal(t, diagnostic.KindUnsupported, res.Diagnostics.Errors[0].Kind)
	assert.Equal(t, "Count", res.Diagnostics.Errors[0].Element)
}

func TestAnalyzer_Directives(t *testing.T) {
	c := findDecl(t, loadBeans(t), "BeanSignal")

	assert.Equal(t, "beans", c.Package)
	assert.Equal(t, decl.StyleNamed, c.Style)

	require.Len(t, c.Meta, 1)
	assert.Equal(t, `trim_end = "Signal", keep_rc`, c.Meta[0].Text)
	assert.Equal(t, 1+len(DirectivePrefix), c.Meta[0].Loc.Column)
	assert.Contains(t, c.Meta[0].Loc.File, "beans.go")
	assert.Equal(t, []string{"BeanSignal is observed by the UI."}, c.Annotations)
}

func TestAnalyzer_Fields(t *testing.T) {
	c := findDecl(t, loadBeans(t), "BeanSignal")

	byName := map[string]*decl.Field{}
	for _, f := range c.Fields {
		byName[f.Name] = f
	}

	require.Len(t, c.Fields, 6, "Seen and Touched are separate fields")

	tags := byName["Tags"]
	assert.True(t, tags.Type.Equal(typexpr.MustParse("ObservableMap<string, ObservableCell<int>>")), tags.Type.String())
	require.Len(t, tags.Meta, 1)
	assert.Equal(t, "hashmap", tags.Meta[0].Text)

	assert.Equal(t, `json:"name"`, byName["Name"].Tag)
	assert.Equal(t, []string{"Shared between views."}, byName["Owner"].Annotations)

	assert.True(t, byName["Seen"].Type.Equal(typexpr.MustParse("time::Time")))
	assert.Equal(t, "remove", byName["Touched"].Meta[0].Text)

	assert.Equal(t, typexpr.KindOpaque, byName["Raw"].Type.Kind)
	assert.Equal(t, "[]byte", byName["Raw"].Type.Raw)
}

func TestAnalyzer_GenericsAndEmbedding(t *testing.T) {
	res := loadBeans(t)

	pair := findDecl(t, res, "PairSignal")
	assert.Equal(t, "T any", pair.Generics)
	assert.Equal(t, decl.StyleNamed, pair.Style)
	require.Len(t, pair.Fields, 2)
	assert.True(t, pair.Fields[0].IsPositional())
	assert.True(t, pair.Fields[0].Type.Equal(typexpr.MustParse("ObservableCell<T>")))
	assert.True(t, pair.Fields[1].Type.IsUnit())

	loose := findDecl(t, res, "Loose")
	assert.Equal(t, decl.StylePositional, loose.Style)

	nothing := findDecl(t, res, "NothingSignal")
	assert.Equal(t, decl.StyleUnit, nothing.Style)
}

func TestAnalyzer_PackageErrors(t *testing.T) {
	_, err := NewAnalyzer("testdata/beans", nil).LoadPackages("./does-not-exist")
	require.Error(t, err)
}
