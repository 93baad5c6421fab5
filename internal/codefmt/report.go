package codefmt

import (
	"cmp"
	"errors"
	"go/token"
	"slices"
)

// Report accumulates diagnostics so that all of them can be reported at once
// instead of stopping at the first one. The zero value is an empty report.
//
// Diagnostics keep the order they are added in. Nothing is deduplicated or
// truncated.
type Report struct {
	errs []error
}

// Add appends err to the report. Joined errors are flattened into their
// members. A nil error is ignored.
func (r *Report) Add(err error) {
	if err == nil {
		return
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range u.Unwrap() {
			r.Add(err)
		}
		return
	}
	r.errs = append(r.errs, err)
}

// Len returns the number of diagnostics in the report.
func (r *Report) Len() int {
	return len(r.errs)
}

// Errors returns a copy of the diagnostics in the report.
func (r *Report) Errors() []error {
	return slices.Clone(r.errs)
}

// Err returns all diagnostics as one error, or nil if there are none. The
// message lists each diagnostic on its own line and the error unwraps to them
// with errors.Is, errors.As and Unwrap() []error.
func (r *Report) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return errors.Join(r.errs...)
}

// SortByPosition reorders the diagnostics by their source position. Errors
// without a position come first in their original order.
func (r *Report) SortByPosition() {
	slices.SortStableFunc(r.errs, func(a, b error) int {
		pa, pb := positionOf(a), positionOf(b)
		if c := cmp.Compare(pa.Filename, pb.Filename); c != 0 {
			return c
		}
		return cmp.Compare(pa.Offset, pb.Offset)
	})
}

func positionOf(err error) token.Position {
	var codeErr *CodeError
	if !errors.As(err, &codeErr) {
		return token.Position{Offset: -1}
	}
	pos := codeErr.Position()
	if !pos.IsValid() {
		return token.Position{Offset: -1}
	}
	return pos
}
