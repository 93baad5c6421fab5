package enumorphinternal

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"maps"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumorph/internal/codefmt"
	"github.com/sublee/enumorph/internal/enumorph/emit"
	"github.com/sublee/enumorph/internal/enumorph/parse"
)

// Enumorph generates conversion code for the tagged unions in a package. Call
// [Enumorph.Build] and then [Enumorph.Generate] to get the generated code. All
// potential errors are returned by [Enumorph.Build]. Once it succeeds,
// [Enumorph.Generate] never fails.
type Enumorph struct {
	p   *parse.Parser
	buf *bytes.Buffer
	w   *codefmt.Writer

	// unions maps the position of each union to its *built, in declaration
	// order. Positions are unique, so a union is never registered twice.
	unions *linkedhashmap.Map
	built  bool
}

type built struct {
	union *parse.Union
	convs []parse.Conversion
}

// New creates a new [Enumorph] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Enumorph, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Enumorph{
		p:      parser,
		buf:    &buf,
		w:      codefmt.NewWriter(&buf, pkg),
		unions: linkedhashmap.New(),
	}, nil
}

// Build parses the tagged unions in the package and validates their variants.
// A union which is not a tagged union is reported by a single error and its
// variants are not inspected. Otherwise, every invalid variant is reported.
// Errors from all unions are returned together.
//
// It must be called before [Enumorph.Generate].
func (e *Enumorph) Build() error {
	var report codefmt.Report
	report.Add(e.p.ValidateDirectives())

	v := e.p.NewValidator()
	for decl := range e.p.Decls() {
		u, err := e.p.ParseUnion(decl)
		if err != nil {
			report.Add(err)
			continue
		}

		b := &built{union: u}
		for conv, err := range v.Validate(u) {
			if err != nil {
				report.Add(err)
				continue
			}
			b.convs = append(b.convs, conv)
		}
		e.unions.Put(u.Pos(), b)
	}

	if err := report.Err(); err != nil {
		return err
	}
	e.built = true
	return nil
}

// Unions returns the number of tagged unions found by [Enumorph.Build].
func (e *Enumorph) Unions() int {
	return e.unions.Size()
}

// Generate generates the conversion code for the package. It returns nil if
// there is nothing to generate. It must be called after [Enumorph.Build]
// succeeds.
func (e *Enumorph) Generate() []byte {
	if !e.built {
		panic("Generate called before a successful Build")
	}

	n := 0
	it := e.unions.Iterator()
	for it.Next() {
		b := it.Value().(*built)
		if len(b.convs) == 0 {
			continue
		}

		e.w.Printf("// enumorph: %s\n\n", b.union.Name)
		emit.Write(e.w, b.union, b.convs)
		n += len(b.convs)
	}

	if n == 0 {
		return nil
	}
	return e.frameCode()
}

func (e *Enumorph) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", e.p.Pkg().Name)

	imports := e.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, e.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
