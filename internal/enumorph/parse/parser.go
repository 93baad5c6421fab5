package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumorph/internal/codefmt"
)

// ImportPath is the import path of enumorph. Generated files carry it in
// their "Code generated" header.
const ImportPath = "github.com/sublee/enumorph"

// Directive is the comment which asks for conversions of a tagged union. It
// must be in the doc comment of a type declaration.
const Directive = "//enumorph:derive"

// Kinds of diagnostics. Every diagnostic returned by this package matches one
// of them with errors.Is.
var (
	// ErrShape means that a type asking for conversions is not a tagged union.
	// It stops processing of the type before any variant is inspected.
	ErrShape = errors.New("not a tagged union")

	// ErrUnitVariant means that a variant without fields is not skipped.
	ErrUnitVariant = errors.New("unit variant")

	// ErrMultiField means that a variant with two or more fields is not
	// skipped.
	ErrMultiField = errors.New("multi-field variant")

	// ErrOption means that a variant has an unknown enumorph option.
	ErrOption = errors.New("unknown option")

	// ErrConflict means that a generated conversion would be declared twice.
	ErrConflict = errors.New("conflicting conversion")

	// ErrDirective means that the derive directive is misplaced.
	ErrDirective = errors.New("misplaced directive")
)

// Parser parses an AST of the underlying package to collect tagged unions.
type Parser struct {
	pkg       *packages.Package
	generated map[string]struct{} // file names of previous enumorph output
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}

	p := &Parser{pkg: pkg, generated: make(map[string]struct{})}
	for _, file := range pkg.Syntax {
		if isGenerated(file) {
			p.generated[pkg.Fset.File(file.Pos()).Name()] = struct{}{}
		}
	}
	return p, nil
}

// IsGenerated reports whether obj is declared in a file generated by a
// previous run of enumorph. Such declarations are replaced by the next run,
// so they never conflict with new conversions.
func (p *Parser) IsGenerated(obj types.Object) bool {
	if !obj.Pos().IsValid() {
		return false
	}
	_, ok := p.generated[p.pkg.Fset.Position(obj.Pos()).Filename]
	return ok
}

// isGenerated checks if the file has the header written by enumorph.
func isGenerated(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, comment := range group.List {
			if strings.HasPrefix(comment.Text, "// Code generated by "+ImportPath) {
				return true
			}
		}
	}
	return false
}

// Decl is a type declaration annotated with [Directive].
type Decl struct {
	Spec      *ast.TypeSpec
	Directive *ast.Comment
}

func (d Decl) Pos() token.Pos { return d.Spec.Pos() }

// Decls iterates type declarations annotated with [Directive] in declaration
// order. A directive on a grouped declaration applies to every type in the
// group.
func (p *Parser) Decls() iter.Seq[Decl] {
	return func(yield func(Decl) bool) {
		for _, file := range p.pkg.Syntax {
			if isGenerated(file) {
				continue
			}

			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}

				groupDirective := findDirective(gen.Doc)
				for _, spec := range gen.Specs {
					spec := spec.(*ast.TypeSpec)

					directive := findDirective(spec.Doc)
					if directive == nil {
						directive = groupDirective
					}
					if directive == nil {
						continue
					}

					if !yield(Decl{Spec: spec, Directive: directive}) {
						return
					}
				}
			}
		}
	}
}

// ValidateDirectives reports directives which do not annotate a type
// declaration. They would be silently ignored otherwise. It collects all errors
// instead of stopping at the first error.
func (p *Parser) ValidateDirectives() error {
	var report codefmt.Report
	for _, file := range p.pkg.Syntax {
		if isGenerated(file) {
			continue
		}

		// A directive on a group is in place even if every type in the group
		// has its own directive.
		used := make(map[token.Pos]struct{})
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			if directive := findDirective(gen.Doc); directive != nil {
				used[directive.Pos()] = struct{}{}
			}
			for _, spec := range gen.Specs {
				if directive := findDirective(spec.(*ast.TypeSpec).Doc); directive != nil {
					used[directive.Pos()] = struct{}{}
				}
			}
		}

		for _, group := range file.Comments {
			for _, comment := range group.List {
				if !isDirective(comment) {
					continue
				}
				if _, ok := used[comment.Pos()]; ok {
					continue
				}
				report.Add(codefmt.KindErrorf(p, ErrDirective, comment, "misplaced %s; it must be in the doc comment of a type declaration", Directive))
			}
		}
	}
	return report.Err()
}

func findDirective(doc *ast.CommentGroup) *ast.Comment {
	if doc == nil {
		return nil
	}
	for _, comment := range doc.List {
		if isDirective(comment) {
			return comment
		}
	}
	return nil
}

func isDirective(comment *ast.Comment) bool {
	return strings.TrimRight(comment.Text, " \t") == Directive
}
