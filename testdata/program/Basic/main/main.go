//go:build !enumorph

package main

import (
	"errors"
	"fmt"

	"github.com/sublee/enumorph"
	"github.com/sublee/enumorph/pkg/enumorpherrors"
)

func main() {
	shape := ShapeFromCircle(Circle{R: 2})
	fmt.Println(shape.Kind)

	circle, err := ShapeToCircle(shape)
	fmt.Println(circle, err)

	side, err := ShapeToSquare(shape)
	fmt.Println(side, err)
	fmt.Println(errors.Is(err, enumorpherrors.ErrMismatch))

	orig, ok := enumorpherrors.Original[Shape](err)
	fmt.Println(orig.Kind, ok)

	square := ShapeFromSquare(3)
	side, err = ShapeToSquare(square)
	fmt.Println(side, err)

	_, err = ShapeToCircle(Shape{})
	fmt.Println(err)

	widened := enumorph.Widen(Circle{R: 5}, ShapeFromCircle)
	narrowed, err := enumorph.Narrow(widened, ShapeToCircle)
	fmt.Println(narrowed, err)
}
