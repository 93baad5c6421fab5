// Package pkgtest builds type-checked packages from source code in memory for
// tests which cannot afford to run packages.Load.
package pkgtest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// Load parses and type-checks the files as a package at path. Files are keyed
// by their names. Imports of deps resolve to them and other imports resolve to
// the standard library.
//
// The result looks like a package loaded by packages.Load with
// packages.LoadSyntax.
func Load(t testing.TB, path string, files map[string]string, deps ...*packages.Package) *packages.Package {
	t.Helper()
	pkg, err := Check(path, files, deps...)
	require.NoError(t, err)
	return pkg
}

// Check is like [Load] but returns the first parse or type error instead of
// failing the test.
func Check(path string, files map[string]string, deps ...*packages.Package) (*packages.Package, error) {
	fset := token.NewFileSet()
	if len(deps) != 0 {
		fset = deps[0].Fset
	}

	var syntax []*ast.File
	for _, name := range slices.Sorted(maps.Keys(files)) {
		file, err := parser.ParseFile(fset, name, files[name], parser.ParseComments|parser.AllErrors)
		if err != nil {
			return nil, err
		}
		syntax = append(syntax, file)
	}

	imp := mapImporter{
		deps:     make(map[string]*types.Package),
		fallback: importer.ForCompiler(fset, "source", nil),
	}
	for _, dep := range deps {
		imp.deps[dep.PkgPath] = dep.Types
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Instances:  make(map[*ast.Ident]types.Instance),
		Scopes:     make(map[ast.Node]*types.Scope),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}
	conf := types.Config{Importer: imp}
	pkg, err := conf.Check(path, fset, syntax, info)
	if err != nil {
		return nil, err
	}

	return &packages.Package{
		ID:        path,
		Name:      pkg.Name(),
		PkgPath:   path,
		Fset:      fset,
		Syntax:    syntax,
		Types:     pkg,
		TypesInfo: info,
	}, nil
}

// LoadDir is like [Load] but reads the non-test Go files in dir.
func LoadDir(t testing.TB, path, dir string, deps ...*packages.Package) *packages.Package {
	t.Helper()

	names, err := filepath.Glob(filepath.Join(dir, "*.go"))
	require.NoError(t, err)

	files := make(map[string]string)
	for _, name := range names {
		if isTestFile(name) {
			continue
		}
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		files[name] = string(data)
	}
	return Load(t, path, files, deps...)
}

func isTestFile(name string) bool {
	ok, _ := filepath.Match("*_test.go", filepath.Base(name))
	return ok
}

type mapImporter struct {
	deps     map[string]*types.Package
	fallback types.Importer
}

func (imp mapImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := imp.deps[path]; ok {
		return pkg, nil
	}
	return imp.fallback.Import(path)
}
