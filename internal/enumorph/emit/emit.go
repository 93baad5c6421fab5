// Package emit writes the conversion functions of tagged unions.
//
// Each variant produces a pair of functions. For a union Shape with a variant
// Circle of type Circle:
//
//	func ShapeToCircle(in Shape) (out Circle, err error)
//	func ShapeFromCircle(in Circle) (out Shape)
//
// The first one fails with an *enumorpherrors.Mismatch holding the input if the
// union holds another variant. Generic unions forward their type parameters to
// both functions as they are written in the source.
package emit

import (
	"strings"

	"github.com/sublee/enumorph/internal/codefmt"
	"github.com/sublee/enumorph/internal/enumorph/parse"
)

// ErrorsPath is the import path of the package which declares the error
// returned by unwrap functions.
const ErrorsPath = parse.ImportPath + "/pkg/enumorpherrors"

// Generics holds the type parameter list and the type argument list of a
// union, ready to be written after a function name and a type name. Both are
// empty for a non-generic union.
type Generics struct {
	Params string // e.g., "[L fmt.Stringer, R any]"
	Args   string // e.g., "[L, R]"
}

// FormatGenerics formats the type parameters of the union. Constraints which
// refer to other packages are rewritten to the names imported by w.
func FormatGenerics(w *codefmt.Writer, u *parse.Union) Generics {
	if !u.IsGeneric() {
		return Generics{}
	}

	var params, args []string
	for _, field := range u.TypeParams.List {
		var names []string
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
		constraint := codefmt.RewriteImports(w, field.Type)

		params = append(params, strings.Join(names, ", ")+" "+w.Sprintf("%c", constraint))
		args = append(args, names...)
	}

	return Generics{
		Params: "[" + strings.Join(params, ", ") + "]",
		Args:   "[" + strings.Join(args, ", ") + "]",
	}
}

// Write writes the unwrap and wrap functions for each conversion. All
// conversions must belong to the same union.
func Write(w *codefmt.Writer, u *parse.Union, convs []parse.Conversion) {
	if len(convs) == 0 {
		return
	}

	g := FormatGenerics(w, u)
	errs := w.Import(ErrorsPath, "enumorpherrors")

	for _, conv := range convs {
		writeUnwrap(w, conv, g, errs)
		w.Printf("\n")
		writeWrap(w, conv, g)
		w.Printf("\n")
	}
}

func writeUnwrap(w *codefmt.Writer, conv parse.Conversion, g Generics, errs string) {
	u := conv.Union
	union := u.Name + g.Args
	tag := u.Tag.Name()

	w.Printf("// %s returns the payload of in if it holds the %s variant.\n", conv.Unwrap, conv.Variant)
	w.Printf("// Otherwise, it returns a *%s.Mismatch holding in.\n", errs)
	w.Printf("func %s%s(in %s) (out %t, err error) {\n", conv.Unwrap, g.Params, union, conv.Payload)
	w.Printf("switch in.%s {\n", tag)
	w.Printf("case %q:\n", conv.Variant)
	w.Printf("return %s, nil\n", selector("in", conv))
	w.Printf("default:\n")
	w.Printf("return out, &%s.Mismatch[%s]{Value: in, Tag: string(in.%s), Want: %q}\n", errs, union, tag, conv.Variant)
	w.Printf("}\n")
	w.Printf("}\n")
}

func writeWrap(w *codefmt.Writer, conv parse.Conversion, g Generics) {
	u := conv.Union
	union := u.Name + g.Args

	w.Printf("// %s returns a %s holding in as the %s variant.\n", conv.Wrap, u.Name, conv.Variant)
	w.Printf("func %s%s(in %t) (out %s) {\n", conv.Wrap, g.Params, conv.Payload, union)
	w.Printf("out.%s = %q\n", u.Tag.Name(), conv.Variant)
	w.Printf("%s = in\n", selector("out", conv))
	w.Printf("return out\n")
	w.Printf("}\n")
}

// selector returns the expression to access the payload in the union value x.
func selector(x string, conv parse.Conversion) string {
	if conv.Accessor.Positional() {
		return x + "." + conv.Variant
	}
	return x + "." + conv.Variant + "." + conv.Accessor.Name
}
