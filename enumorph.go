// Package enumorph generates conversions between a tagged union and the
// payloads of its variants.
//
// A tagged union is a struct type whose doc comment has the //enumorph:derive
// directive. Exactly one of its fields is the tag, marked with
// `enumorph:"tag"`, which holds the name of the active variant. Every other
// field is a variant:
//
//	//enumorph:derive
//	type Shape struct {
//		Kind   string `enumorph:"tag"`
//		Circle Circle
//		Square struct{ Side float64 }
//		Empty  struct{} `enumorph:"ignore"`
//	}
//
// Run the enumorph command to generate enumorph_gen.go for your package:
//
//	go run github.com/sublee/enumorph/cmd/enumorph ./...
//
// For each variant carrying exactly one value, two functions are generated. The
// unwrap function extracts the payload and the wrap function builds the union
// from the payload:
//
//	// generated:
//	func ShapeToCircle(in Shape) (out Circle, err error)
//	func ShapeFromCircle(in Circle) (out Shape)
//	func ShapeToSquare(in Shape) (out float64, err error)
//	func ShapeFromSquare(in float64) (out Shape)
//
// A variant is either a field of any type other than an anonymous struct, or an
// anonymous struct with one field, like Square above. The functions are named
// after the union and the variant. Two variants of a union cannot carry
// identical types.
//
// If the union holds another variant, the unwrap function returns the union
// unchanged in an *enumorpherrors.Mismatch. The input is never lost:
//
//	circle, err := ShapeToCircle(shape)
//	if shape, ok := enumorpherrors.Original[Shape](err); ok {
//		square, err := ShapeToSquare(shape)
//		// ...
//	}
//
// # Diagnostics
//
// A type which is not a tagged union is reported once, with the first problem
// found. For a tagged union, every invalid variant is reported at once.
// Variants without fields and variants with more than one field cannot be
// converted. Mark them with `enumorph:"ignore"` to skip them:
//
//	shapes.go:9:2: unit variant Shape.Empty has no data to convert to or from; try tagging it with enumorph:"ignore"
//
// Nothing is generated for a package with diagnostics. The same diagnostics
// are available as an analysis pass in the enumorphanalysis package.
//
// # Generics
//
// The type parameters of a generic union are forwarded to the generated
// functions as they are written:
//
//	//enumorph:derive
//	type Result[T any] struct {
//		State string `enumorph:"tag"`
//		Ok    struct{ Value T }
//		Err   error
//	}
//
//	// generated:
//	func ResultToOk[T any](in Result[T]) (out T, err error)
//	func ResultFromOk[T any](in T) (out Result[T])
//
// # Bootstrapping
//
// Files which call the generated functions do not compile before the first
// generation. Exclude them with a build tag while generating:
//
//	//go:build !enumorph
//
//	go run github.com/sublee/enumorph/cmd/enumorph -b enumorph ./...
package enumorph

// Widen converts a payload into its union with the generated wrap function.
//
//	shape := enumorph.Widen(Circle{R: 1}, ShapeFromCircle)
func Widen[U, P any](payload P, wrap func(P) U) U {
	return wrap(payload)
}

// Narrow extracts a payload from its union with the generated unwrap function.
// If the union holds another variant, the error carries the union unchanged.
//
//	circle, err := enumorph.Narrow(shape, ShapeToCircle)
func Narrow[P, U any](union U, unwrap func(U) (P, error)) (P, error) {
	return unwrap(union)
}
