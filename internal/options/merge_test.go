package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/rename"
)

func mustParse(t *testing.T, text string, at Placement) *Options {
	t.Helper()

	opts, err := Parse(meta(text), at)
	require.NoError(t, err)

	return opts
}

func TestMerge_InheritsContainerDefaults(t *testing.T) {
	c := mustParse(t, `trim_end_all = "Human", keep_rc, hashmap`, container())
	f := mustParse(t, ``, field())

	merged := Merge(f, c)

	assert.Equal(t, KeepRefCounted, merged.Keeps())
	assert.True(t, merged.MapAsHash.Set)
	assert.True(t, merged.MapAsHash.Inherited)
	require.NotNil(t, merged.Renamer)
	assert.True(t, merged.Renamer.Inherited)
	assert.Equal(t, rename.KindTrimSuffixIfMatches, merged.Renamer.Rule.Kind)

	assert.False(t, f.KeepRC.Set, "field input must not be modified")
	assert.Nil(t, f.Renamer)
}

func TestMerge_FieldWins(t *testing.T) {
	c := mustParse(t, `trim_start_all = "Signal", keep_arc`, container())
	f := mustParse(t, `add_end = "Plain", keep_arc`, field())

	merged := Merge(f, c)

	assert.Equal(t, rename.KindAddSuffix, merged.Renamer.Rule.Kind)
	assert.False(t, merged.Renamer.Inherited)
	assert.False(t, merged.KeepArc.Inherited)
	assert.Equal(t, f.KeepArc.Loc, merged.KeepArc.Loc)
}

func TestMerge_StrictContainerRenamerNotInherited(t *testing.T) {
	c := mustParse(t, `trim_end = "Signal"`, container())
	f := mustParse(t, ``, field())

	assert.Nil(t, Merge(f, c).Renamer)
}

func TestMerge_Idempotent(t *testing.T) {
	c := mustParse(t, `trim_end_all = "Human", keep_rc, keep_arc, hashmap`, container())
	f := mustParse(t, `keep_rc`, field())

	once := Merge(f, c)
	twice := Merge(once, c)

	assert.Equal(t, once, twice)
}

func TestMerge_IgnoredFieldUnchanged(t *testing.T) {
	c := mustParse(t, `trim_end_all = "Human", keep_rc`, container())
	f := mustParse(t, `ignore`, field())

	merged := Merge(f, c)
	assert.False(t, merged.KeepRC.Set)
	assert.Nil(t, merged.Renamer)
}

func TestKeepSet(t *testing.T) {
	assert.Equal(t, KeepRefCounted|KeepAtomicRefCounted, KeepSet(KeepAll))
	assert.True(t, KeepSet(KeepAll).Has(KeepAtomicRefCounted))
	assert.False(t, KeepSet(KeepNone).Has(KeepRefCounted))
	assert.Equal(t, "keep_rc|keep_arc", KeepSet(KeepAll).String())
	assert.Equal(t, "none", KeepSet(KeepNone).String())
}
