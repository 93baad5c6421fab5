package enumorphinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumorph/internal/codefmt"
)

var Version string

// Main is the main entry point for Enumorph. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. Files which call generated conversions before
// they exist can be excluded with a build tag. tests indicates whether to
// include test files. outFile is the name of the output file to generate in
// each package. And patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error which lists all errors ordered by their position.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var report codefmt.Report

	for _, pkg := range pkgs {
		if len(pkg.Errors) != 0 {
			report.Add(fmt.Errorf("pkg %q has errors", pkg.Name))
			continue
		}

		e, err := New(pkg)
		if err != nil {
			report.Add(err)
			continue
		}

		if err := e.Build(); err != nil {
			report.Add(err)
			continue
		}

		code := e.Generate()
		if len(code) == 0 {
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code
	}
	if report.Len() != 0 {
		// The report already contains comprehensive error messages. So we
		// don't need to attach another error message.
		report.SortByPosition()
		return nil, report.Err()
	}

	return outs, nil
}

// load loads packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}
