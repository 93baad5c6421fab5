package typeinfo

import (
	"golang.org/x/tools/go/types/typeutil"
)

// Index maps types to values by type identity. Two types are the same key iff
// [types.Identical] reports true for them.
type Index[V any] struct {
	m *typeutil.Map
}

// NewIndex creates a new [Index].
func NewIndex[V any]() *Index[V] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Index[V]{m}
}

// Put adds a value for the type. If the type already has a value, it keeps
// the old one and returns it with false.
func (idx *Index[V]) Put(t Type, v V) (V, bool) {
	if old, ok := idx.m.At(t.Type()).(V); ok {
		return old, false
	}
	idx.m.Set(t.Type(), v)
	return *new(V), true
}
