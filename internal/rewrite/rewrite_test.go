package rewrite

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/options"
	"unwrapgen/internal/typexpr"
)

var fieldLoc = diagnostic.Location{File: "decls.yaml", Line: 10, Column: 9}

func fieldOpts(t *testing.T, text string) *options.Options {
	t.Helper()

	opts, err := options.Parse(
		options.Metadata{Blocks: []options.Block{{Text: text, Loc: fieldLoc}}},
		options.FieldAt("Bean.taste", false, fieldLoc),
	)
	require.NoError(t, err)

	return opts
}

func containerOpts(t *testing.T, text string) *options.Options {
	t.Helper()

	opts, err := options.Parse(
		options.Metadata{Blocks: []options.Block{{Text: text, Loc: fieldLoc}}},
		options.ContainerAt("Bean", fieldLoc),
	)
	require.NoError(t, err)

	return opts
}

func rewrite(t *testing.T, src string, opts *options.Options) (*typexpr.Expr, error) {
	t.Helper()
	return Rewrite(typexpr.MustParse(src), opts, Naming{Element: "Bean.taste", Loc: fieldLoc})
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts string
		want string
	}{
		{"leaf unchanged", "String", "", "String"},
		{"qualified leaf unchanged", "a::b::Taste<u8>", "", "a::b::Taste<u8>"},
		{"cell", "ObservableCell<String>", "", "String"},
		{"qualified cell", "signals::ObservableCell<String>", "", "String"},
		{"nested elision", "ObservableCell<RefCounted<ObservableCell<T>>>", "", "T"},
		{"rc elided", "RefCounted<T>", "", "T"},
		{"rc kept", "RefCounted<T>", "keep_rc", "RefCounted<T>"},
		{"arc elided with keep_rc", "AtomicRefCounted<T>", "keep_rc", "T"},
		{"arc kept", "AtomicRefCounted<T>", "keep_arc", "AtomicRefCounted<T>"},
		{"kept rc rewrites inside", "std::rc::RefCounted<ObservableCell<T>>", "keep_rc", "std::rc::RefCounted<T>"},
		{"vector", "RefCounted<ObservableVector<RefCounted<String>>>", "", "Vector<String>"},
		{"ordered map", "ObservableOrderedMap<String, ObservableCell<u8>>", "", "OrderedMap<String, u8>"},
		{"ordered set", "ObservableOrderedMap<String, ()>", "", "OrderedSet<String>"},
		{"hash map", "ObservableOrderedMap<String, u8>", "hashmap", "HashMap<String, u8>"},
		{"hash set", "ObservableOrderedMap<String, ()>", "hashmap", "HashSet<String>"},
		{"value rewrites to unit", "ObservableOrderedMap<K, ObservableCell<()>>", "", "OrderedSet<K>"},
		{"map inside vector", "ObservableVector<ObservableOrderedMap<K, V>>", "hashmap", "Vector<HashMap<K, V>>"},
		{"non-wrapper args untouched", "Vec<ObservableCell<T>>", "", "Vec<ObservableCell<T>>"},
		{"tuple untouched", "(ObservableCell<A>, B)", "", "(ObservableCell<A>, B)"},
		{"opaque untouched", "&'a ObservableCell<T>", "", "&'a ObservableCell<T>"},
		{"rename leaf", "ObservableCell<TasteSignal>", `trim_end = "Signal"`, "Taste"},
		{"rename keeps args", "TasteSignal<ObservableCell<u8>>", `trim_end = "Signal"`, "Taste<ObservableCell<u8>>"},
		{"rename qualified leaf", "a::SignalTaste", `trim_start = "Signal"`, "a::Taste"},
		{"add prefix", "Taste", `add_start = "Plain"`, "PlainTaste"},
		{"ignore keeps wrappers", "ObservableCell<RefCounted<T>>", "ignore", "ObservableCell<RefCounted<T>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rewrite(t, tt.src, fieldOpts(t, tt.opts))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String(), spew.Sdump(got))
		})
	}
}

func TestRewrite_LeafIdentity(t *testing.T) {
	for _, src := range []string{"String", "u8", "a::B<C, D>", "()", "(A, B)", "[u8; 4]", "Vec<RefCounted<T>>"} {
		in := typexpr.MustParse(src)

		got, err := Rewrite(in, &options.Options{}, Naming{})
		require.NoError(t, err)

		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("Rewrite(%s) changed a leaf (-in +got):\n%s", src, diff)
		}
	}
}

func TestRewrite_DoesNotMutateInput(t *testing.T) {
	in := typexpr.MustParse("ObservableCell<TasteSignal<u8>>")

	_, err := Rewrite(in, fieldOpts(t, `trim_end = "Signal"`), Naming{})
	require.NoError(t, err)
	assert.Equal(t, "ObservableCell<TasteSignal<u8>>", in.String())
}

func TestRewrite_Remove(t *testing.T) {
	got, err := rewrite(t, "ObservableCell<T>", fieldOpts(t, "remove"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRewrite_InheritedLenientRenamer(t *testing.T) {
	c := containerOpts(t, `trim_end_all = "Human"`)

	got, err := rewrite(t, "TasteHuman", options.Merge(fieldOpts(t, ""), c))
	require.NoError(t, err)
	assert.Equal(t, "Taste", got.String())

	got, err = rewrite(t, "CrunchOther", options.Merge(fieldOpts(t, ""), c))
	require.NoError(t, err)
	assert.Equal(t, "CrunchOther", got.String())
}

func TestRewrite_MustMatchFailure(t *testing.T) {
	_, err := rewrite(t, "ObservableCell<Taste>", fieldOpts(t, `trim_end = "Signal"`))
	require.Error(t, err)

	d, ok := diagnostic.As(err)
	require.True(t, ok)
	assert.Equal(t, diagnostic.KindMatch, d.Kind)
	assert.Equal(t, "Bean.taste", d.Element)
	assert.Contains(t, d.Message, "does not end with Signal")
	assert.Equal(t, fieldLoc, d.Location)
}

func TestRewrite_SelfRename(t *testing.T) {
	_, err := rewrite(t, "Taste", fieldOpts(t, `rename = "Taste"`))

	kind, ok := diagnostic.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, diagnostic.KindConflict, kind)
}

func TestRewrite_HashmapWithoutMap(t *testing.T) {
	_, err := rewrite(t, "ObservableVector<u8>", fieldOpts(t, "hashmap"))

	kind, ok := diagnostic.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, diagnostic.KindPlacement, kind)

	// Inherited from the container it is silently unused.
	merged := options.Merge(fieldOpts(t, ""), containerOpts(t, `rename = "X", hashmap`))
	got, err := rewrite(t, "ObservableVector<u8>", merged)
	require.NoError(t, err)
	assert.Equal(t, "Vector<u8>", got.String())
}

func TestRewrite_FieldHashOverridesContainer(t *testing.T) {
	merged := options.Merge(fieldOpts(t, "hashmap"), containerOpts(t, `rename = "X"`))

	got, err := rewrite(t, "ObservableOrderedMap<K, ()>", merged)
	require.NoError(t, err)
	assert.Equal(t, "HashSet<K>", got.String())

	merged = options.Merge(fieldOpts(t, ""), containerOpts(t, `rename = "X", hashmap`))
	got, err = rewrite(t, "ObservableOrderedMap<K, V>", merged)
	require.NoError(t, err)
	assert.Equal(t, "HashMap<K, V>", got.String())
}

func TestRewrite_WrapperArity(t *testing.T) {
	for _, src := range []string{"ObservableCell<A, B>", "ObservableOrderedMap<K>", "ObservableVector"} {
		_, err := rewrite(t, src, &options.Options{})

		kind, ok := diagnostic.KindOf(err)
		require.True(t, ok, src)
		assert.Equal(t, diagnostic.KindInternal, kind, src)
	}
}

func TestWrapperOf(t *testing.T) {
	assert.Equal(t, WrapperObservableCell, WrapperOf("ObservableCell"))
	assert.Equal(t, WrapperNone, WrapperOf("observablecell"))
	assert.Equal(t, 2, WrapperObservableOrderedMap.Arity())
	assert.Equal(t, "RefCounted", WrapperRefCounted.String())
}
