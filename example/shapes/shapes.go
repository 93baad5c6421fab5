// Package shapes is a worked example of enumorph. Shape and Result are tagged
// unions and enumorph_gen.go holds their conversions.
package shapes

import "math"

//go:generate go run github.com/sublee/enumorph/cmd/enumorph .

type Circle struct{ R float64 }

type Rect struct{ W, H float64 }

//enumorph:derive
type Shape struct {
	Kind   string `enumorph:"tag"`
	Circle Circle
	Rect   Rect
	Square struct{ Side float64 }
	Empty  struct{} `enumorph:"ignore"`
}

// Area returns the area of the shape. An empty shape has no area.
func Area(s Shape) float64 {
	if c, err := ShapeToCircle(s); err == nil {
		return math.Pi * c.R * c.R
	}
	if r, err := ShapeToRect(s); err == nil {
		return r.W * r.H
	}
	if side, err := ShapeToSquare(s); err == nil {
		return side * side
	}
	return 0
}

// Result holds either a value or an error.
//
//enumorph:derive
type Result[T any] struct {
	State string `enumorph:"tag"`
	Ok    struct{ Value T }
	Err   error
}

// Get returns the value and the error of the result. A result holding neither
// returns the zero value and a mismatch error.
func Get[T any](r Result[T]) (T, error) {
	if err, e := ResultToErr(r); e == nil {
		var zero T
		return zero, err
	}
	return ResultToOk(r)
}
