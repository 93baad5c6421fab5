package codefmt

import "go/token"

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

// KindErrorf is a shorthand for [Formatter.KindErrorf].
func KindErrorf(pkger Pkger, kind error, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).KindErrorf(kind, poser, format, args...)
}

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

// Span returns a [Poser] which also implements [Ender]. Diagnostics created
// with it cover the whole range.
func Span(pos, end token.Pos) Poser { return span{pos, end} }
