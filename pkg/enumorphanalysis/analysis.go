// Package enumorphanalysis reports invalid tagged unions as analysis
// diagnostics, so that editors and linters show them before enumorph runs.
package enumorphanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumorph/internal/codefmt"
	enumorphinternal "github.com/sublee/enumorph/internal/enumorph"
)

// Analyzer validates the tagged unions annotated with //enumorph:derive in the
// package.
var Analyzer = &analysis.Analyzer{
	Name: "enumorph",
	Doc:  "linter for enumorph tagged unions",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	e, err := enumorphinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := e.Build(); err != nil {
		// Unroll all errors and report them
		var report codefmt.Report
		report.Add(err)

		for _, err := range report.Errors() {
			var codeErr *codefmt.CodeError
			if !errors.As(err, &codeErr) {
				continue
			}

			var category string
			if kind := codeErr.Kind(); kind != nil {
				category = kind.Error()
			}
			pass.Report(analysis.Diagnostic{
				Pos:      codeErr.Pos(),
				End:      codeErr.End(),
				Category: category,
				Message:  codeErr.Unwrap().Error(),
			})
		}
	}

	return nil, nil
}
