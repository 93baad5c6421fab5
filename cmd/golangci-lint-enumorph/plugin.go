// golangcilintenumorph package provides a plugin for golangci-lint to integrate
// the Enumorph analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-enumorph binary which reports invalid
// tagged unions while linting, before the generator runs.
package golangcilintenumorph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/enumorph/pkg/enumorphanalysis"
)

func init() {
	register.Plugin("enumorph", New)
}

// New creates the linter plugin. Enumorph has no settings, so any setting in
// the golangci-lint configuration is rejected instead of being ignored.
func New(settings any) (register.LinterPlugin, error) {
	switch s := settings.(type) {
	case nil:
	case map[string]any:
		if len(s) != 0 {
			return nil, fmt.Errorf("enumorph: unknown settings: %v", slices.Sorted(maps.Keys(s)))
		}
	default:
		return nil, fmt.Errorf("enumorph: settings must be a map, have %T", settings)
	}
	return EnumorphLinter{}, nil
}

type EnumorphLinter struct{}

func (EnumorphLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumorphanalysis.Analyzer}, nil
}

func (EnumorphLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
