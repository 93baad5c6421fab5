package typeinfo_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumorph/internal/typeinfo"
)

func parse(code string) (*ast.File, *types.Info, *types.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	if err != nil {
		return nil, nil, nil, err
	}

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	if err != nil {
		return nil, nil, nil, err
	}

	return file, info, pkg, nil
}

func parseType(typeExpr string) (types.Type, error) {
	_, _, pkg, err := parse(fmt.Sprintf("package p; type Circle struct{}; type Name = string; type Tree map[string]Tree; type List []List; var x %s", typeExpr))
	if err != nil {
		return nil, err
	}
	x := pkg.Scope().Lookup("x")
	return x.Type(), nil
}

func mustTypeOf(t *testing.T, typeExpr string) typeinfo.Type {
	ty, err := parseType(typeExpr)
	require.NoError(t, err)
	return typeinfo.TypeOf(ty)
}

func TestTypeOfBasic(t *testing.T) {
	ti := mustTypeOf(t, "int")
	assert.True(t, ti.IsBasic())
	assert.False(t, ti.IsString())
	assert.Equal(t, "int", ti.String())
}

func TestTypeOfString(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type Kind string
var x Kind
`)
	require.NoError(t, err)

	ti := typeinfo.TypeOf(pkg.Scope().Lookup("x").Type())
	assert.True(t, ti.IsNamed())
	assert.True(t, ti.IsString())
}

func TestTypeOfAlias(t *testing.T) {
	ti := mustTypeOf(t, "Name")
	assert.True(t, ti.IsString())
	assert.False(t, ti.IsNamed())
}

func TestTypeOfAnonymousStruct(t *testing.T) {
	ti := mustTypeOf(t, "struct{ x int }")
	assert.True(t, ti.IsStruct())
	assert.True(t, ti.IsAnonymousStruct())

	named := mustTypeOf(t, "Circle")
	assert.True(t, named.IsStruct())
	assert.False(t, named.IsAnonymousStruct())

	ptr := mustTypeOf(t, "*Circle")
	assert.False(t, ptr.IsStruct())
	assert.False(t, ptr.IsNamed())
}

func TestTypeOfRecursive(t *testing.T) {
	for _, typeExpr := range []string{"Tree", "List", "[]Tree", "map[string]List"} {
		t.Run(typeExpr, func(t *testing.T) {
			ti := mustTypeOf(t, typeExpr)
			assert.False(t, ti.IsStruct())
			assert.False(t, ti.IsString())
		})
	}
}

func TestTypeOfTypeParam(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type Union[T ~string] struct{ A T }
`)
	require.NoError(t, err)

	st := pkg.Scope().Lookup("Union").Type().Underlying().(*types.Struct)
	ti := typeinfo.TypeOf(st.Field(0).Type())
	assert.False(t, ti.IsNamed())
	assert.False(t, ti.IsBasic())
	assert.False(t, ti.IsString())
}
