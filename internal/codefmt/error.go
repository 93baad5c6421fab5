package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError indicates where a diagnostic occurred in user's source code.
type CodeError struct {
	err  error
	kind error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error. It does not include the position.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Position resolves Pos against the file set the error was created with.
func (e CodeError) Position() token.Position {
	if e.fset == nil || !e.pos.IsValid() {
		return token.Position{}
	}
	return e.fset.Position(e.pos)
}

// Kind returns the sentinel error classifying the diagnostic. It may be nil.
func (e CodeError) Kind() error { return e.kind }

// Is reports whether target is the kind of the error. It makes
// errors.Is(err, kind) work without exposing the kind in the message.
func (e CodeError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	return f.KindErrorf(nil, poser, format, args...)
}

// KindErrorf is like [Formatter.Errorf] but classifies the error with kind,
// a sentinel error that callers can match with errors.Is.
func (f Formatter) KindErrorf(kind error, poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, kind, pos, end, f.Fset}
}
