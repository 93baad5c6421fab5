package typeinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumorph/internal/typeinfo"
)

func TestIndexIdentity(t *testing.T) {
	idx := typeinfo.NewIndex[string]()

	_, ok := idx.Put(mustTypeOf(t, "[]int"), "A")
	assert.True(t, ok)

	// Identical unnamed types from another type-check are the same key.
	old, ok := idx.Put(mustTypeOf(t, "[]int"), "B")
	assert.False(t, ok)
	assert.Equal(t, "A", old)

	_, ok = idx.Put(mustTypeOf(t, "map[string]int"), "C")
	assert.True(t, ok)
}

func TestIndexNamed(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type List []List
var a List
var b []List
var c List
`)
	require.NoError(t, err)
	typeOf := func(name string) typeinfo.Type {
		return typeinfo.TypeOf(pkg.Scope().Lookup(name).Type())
	}

	idx := typeinfo.NewIndex[string]()
	_, ok := idx.Put(typeOf("a"), "a")
	assert.True(t, ok)

	// A named type is distinct from its underlying type.
	_, ok = idx.Put(typeOf("b"), "b")
	assert.True(t, ok)

	old, ok := idx.Put(typeOf("c"), "c")
	assert.False(t, ok)
	assert.Equal(t, "a", old)
}
