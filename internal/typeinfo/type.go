package typeinfo

import (
	"go/types"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary to classify union fields.
//
// Only the type itself is inspected. Element types are never visited, so
// recursive types like "type Tree map[string]Tree" are fine.
type Type struct {
	T types.Type

	Basic  *types.Basic
	Struct *types.Struct
	Named  *types.Named
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool  { return t.Basic != nil }
func (t Type) IsStruct() bool { return t.Struct != nil }
func (t Type) IsNamed() bool  { return t.Named != nil }

// IsAnonymousStruct reports whether the type is a struct literal type like
// struct{ X int }, rather than a defined struct type.
func (t Type) IsAnonymousStruct() bool { return t.IsStruct() && !t.IsNamed() }

// IsString reports whether the underlying type of the type is a string.
func (t Type) IsString() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsString != 0
}

// TypeOf inspects the given type and returns a new [Type]. For a type
// parameter, the underlying type is its constraint interface, so it is neither
// basic nor a struct.
func TypeOf(t types.Type) Type {
	info := Type{T: t}
	if named, ok := types.Unalias(t).(*types.Named); ok {
		info.Named = named
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		info.Basic = u
	case *types.Struct:
		info.Struct = u
	}
	return info
}
