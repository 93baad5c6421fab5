// Package enumorpherrors declares the error returned by generated conversions
// when a tagged union does not hold the requested variant.
//
// Generated code imports this package. It has no dependencies other than the
// standard library.
package enumorpherrors

import (
	"errors"
	"fmt"
)

// ErrMismatch matches every [Mismatch] with errors.Is.
var ErrMismatch = errors.New("variant mismatch")

// Mismatch is returned by a generated unwrap function when the union holds
// another variant than the wanted one. It carries the union unchanged so that
// the caller can try another conversion.
type Mismatch[U any] struct {
	// Value is the union given to the conversion.
	Value U

	// Tag is the variant held by Value. It is empty if Value holds no variant.
	Tag string

	// Want is the variant the conversion wanted.
	Want string
}

func (e *Mismatch[U]) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%T holds no variant, want %s", e.Value, e.Want)
	}
	return fmt.Sprintf("%T holds %s, want %s", e.Value, e.Tag, e.Want)
}

// Is reports whether target is [ErrMismatch].
func (e *Mismatch[U]) Is(target error) bool {
	return target == ErrMismatch
}

// Original returns the union carried by the first [Mismatch] of union type U in
// err's tree.
//
//	circle, err := CircleFromShape(shape)
//	if shape, ok := enumorpherrors.Original[Shape](err); ok {
//		// shape holds another variant
//	}
func Original[U any](err error) (U, bool) {
	var mismatch *Mismatch[U]
	if errors.As(err, &mismatch) {
		return mismatch.Value, true
	}
	var zero U
	return zero, false
}
