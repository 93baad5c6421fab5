package parse

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumorph/internal/codefmt"
	"github.com/sublee/enumorph/internal/typeinfo"
)

// TagKey is the struct tag key of enumorph options.
const TagKey = "enumorph"

// Options in the struct tag of a union field.
const (
	optionTag    = "tag"    // the field holds the name of the active variant
	optionIgnore = "ignore" // no conversions for the variant
)

// Union is a struct type which declares a tagged union. The tag field holds the
// name of the active variant. The other fields are variants.
//
//	//enumorph:derive
//	type Shape struct {
//		Kind   string `enumorph:"tag"`
//		Circle Circle
//		Square struct{ Side float64 }
//	}
type Union struct {
	Name   string
	Object *types.TypeName

	// TypeParams is the type parameter list as it is written in the source. It
	// is nil if the union is not generic.
	TypeParams *ast.FieldList

	Tag      *types.Var
	Variants []Variant

	pkg *packages.Package
}

func (u *Union) Pkg() *packages.Package { return u.pkg }
func (u *Union) Pos() token.Pos         { return u.Object.Pos() }

// Exported reports whether conversions of the union should be exported.
func (u *Union) Exported() bool { return u.Object.Exported() }

// IsGeneric reports whether the union has type parameters.
func (u *Union) IsGeneric() bool {
	return u.TypeParams != nil && len(u.TypeParams.List) != 0
}

// Variant is a field of a [Union] other than the tag field.
type Variant struct {
	Name  string
	Shape Shape

	// Accessor locates the payload within the variant field. It is meaningful
	// only for [SinglePayload] variants.
	Accessor Accessor

	// Payload is the type carried by a [SinglePayload] variant.
	Payload typeinfo.Type

	// NumFields is the number of fields in the variant. A variant which is not
	// an anonymous struct counts as one field.
	NumFields int

	// Skip is true if the variant is tagged with enumorph:"ignore".
	Skip bool

	// Option is the raw value of an enumorph option other than "ignore".
	Option string

	Field *types.Var
	Expr  ast.Expr // type expression of the field
}

func (v Variant) Pos() token.Pos { return v.Field.Pos() }

// Shape classifies a variant by its fields.
//
//go:generate go tool stringer -type=Shape -output=shape_string.go
type Shape int

const (
	// Unit is a variant without fields: struct{}.
	Unit Shape = iota

	// SinglePayload is a variant carrying exactly one value. It is either a
	// field of any type other than an anonymous struct, or an anonymous struct
	// with one field.
	SinglePayload

	// MultiPayload is an anonymous struct with two or more fields.
	MultiPayload
)

// Accessor locates the payload of a [SinglePayload] variant. A named accessor
// selects the only field of an anonymous struct. A positional accessor means
// that the variant field itself is the payload.
type Accessor struct {
	Name  string
	Index int
}

// Positional reports whether the payload is the variant field itself.
func (a Accessor) Positional() bool { return a.Name == "" }

func (a Accessor) String() string {
	if a.Positional() {
		return strconv.Itoa(a.Index)
	}
	return a.Name
}

// ParseUnion extracts a [Union] from the declaration. It fails at the first
// problem that makes the declaration not a tagged union, with an error of
// [ErrShape]. Variants are not validated here. Use [Validator] for them.
func (p *Parser) ParseUnion(decl Decl) (*Union, error) {
	spec := decl.Spec
	name := spec.Name.Name

	if spec.Assign.IsValid() {
		return nil, codefmt.KindErrorf(p, ErrShape, spec, "%s is not a tagged union: cannot derive conversions for an alias", name)
	}

	obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, codefmt.KindErrorf(p, ErrShape, spec.Name, "%s is not a tagged union: no type information", name)
	}

	structExpr, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, codefmt.KindErrorf(p, ErrShape, spec.Type, "%s is not a tagged union: want struct type, have %c", name, spec.Type)
	}
	structType := obj.Type().Underlying().(*types.Struct)

	u := &Union{
		Name:       name,
		Object:     obj,
		TypeParams: spec.TypeParams,
		pkg:        p.pkg,
	}

	i := 0
	for _, field := range structExpr.Fields.List {
		n := max(len(field.Names), 1)
		for range n {
			v := structType.Field(i)
			tag := reflect.StructTag(structType.Tag(i))
			i++

			option, _ := tag.Lookup(TagKey)
			if option == optionTag {
				if u.Tag != nil {
					return nil, codefmt.KindErrorf(p, ErrShape, v, "%s is not a tagged union: tag field %s redeclared\n\tprevious declaration at %b", name, v.Name(), u.Tag.Pos())
				}
				if !typeinfo.TypeOf(v.Type()).IsString() {
					return nil, codefmt.KindErrorf(p, ErrShape, v, "%s is not a tagged union: tag field %s must be a string, have %t", name, v.Name(), v.Type())
				}
				u.Tag = v
				continue
			}

			if v.Name() == "_" {
				continue
			}

			u.Variants = append(u.Variants, parseVariant(v, field.Type, option))
		}
	}

	if u.Tag == nil {
		return nil, codefmt.KindErrorf(p, ErrShape, structExpr, "%s is not a tagged union: no field is tagged %s:%q", name, TagKey, optionTag)
	}
	if len(u.Variants) == 0 {
		return nil, codefmt.KindErrorf(p, ErrShape, structExpr, "%s is not a tagged union: no variants", name)
	}
	return u, nil
}

func parseVariant(v *types.Var, expr ast.Expr, option string) Variant {
	variant := Variant{
		Name:  v.Name(),
		Field: v,
		Expr:  expr,
	}

	switch option {
	case "":
	case optionIgnore:
		variant.Skip = true
	default:
		variant.Option = option
	}

	t := typeinfo.TypeOf(v.Type())
	if !t.IsAnonymousStruct() {
		variant.Shape = SinglePayload
		variant.Accessor = Accessor{Index: 0}
		variant.Payload = t
		variant.NumFields = 1
		return variant
	}

	variant.NumFields = t.Struct.NumFields()
	switch variant.NumFields {
	case 0:
		variant.Shape = Unit
	case 1:
		only := t.Struct.Field(0)
		variant.Shape = SinglePayload
		variant.Accessor = Accessor{Name: only.Name()}
		variant.Payload = typeinfo.TypeOf(only.Type())
	default:
		variant.Shape = MultiPayload
	}
	return variant
}
