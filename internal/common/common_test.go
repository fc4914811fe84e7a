package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	s := []string{"a", "", "b"}

	first, ok := First(s)
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	last, ok := Last(s)
	assert.True(t, ok)
	assert.Equal(t, "b", last)

	_, ok = Last([]string(nil))
	assert.False(t, ok)

	assert.True(t, IsMultiple(s))
	assert.Equal(t, []string{"a", "b"}, Filter(s, func(v string) bool { return v != "" }))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "models", PkgAlias("example.com/app/models"))
	assert.Empty(t, PkgAlias(""))
}
