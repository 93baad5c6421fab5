package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS manages unique names in a namespace. Each name maps to the position where
// it was declared. The position may be invalid for names without a source.
type NS map[string]token.Pos

// NewNS creates a new namespace which reserves all names in the given scope.
// Objects for which skip returns true are left out. Generated code from a
// previous run is skipped this way so that regenerating does not conflict
// with itself.
func NewNS(scope *types.Scope, skip func(types.Object) bool) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if skip != nil && skip(obj) {
			continue
		}
		ns[name] = obj.Pos()
	}
	return ns
}

// Reserve marks a name as declared at pos. If the name is already used, it
// returns the previous position and false.
func (ns NS) Reserve(name string, pos token.Pos) (token.Pos, bool) {
	if prev, ok := ns[name]; ok {
		return prev, false
	}
	ns[name] = pos
	return token.NoPos, true
}

// Ident joins chunks into one Go identifier. Every chunk is split at
// non-alphanumeric runes and the pieces are title-cased, keeping existing
// upper case letters:
//
//	Ident(true, "shape", "from", "[]byte") => "ShapeFromByte"
//	Ident(false, "HTTP", "from", "map[string]int") => "hTTPFromMapStringInt"
//
// The first rune is upper case iff exported is true. Panics if the chunks
// contain no alphanumeric rune.
func Ident(exported bool, chunks ...string) string {
	var b strings.Builder
	title := cases.Title(language.English, cases.NoLower)
	for _, chunk := range chunks {
		pieces := strings.FieldsFunc(chunk, func(r rune) bool {
			return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
		})
		for _, piece := range pieces {
			b.WriteString(title.String(piece))
		}
	}

	name := b.String()
	if name == "" {
		panic(fmt.Sprintf("no identifier in %q", chunks))
	}

	r, size := utf8.DecodeRuneInString(name)
	if exported {
		return string(unicode.ToUpper(r)) + name[size:]
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// DisambiguateName offers an alternative unique names.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		// Postfix "_" to the name if it already ends with a number.
		// "answer42_2" is better than "answer422".
		sep := ""
		if name[len(name)-1] != '_' && name[len(name)-1] >= '0' && name[len(name)-1] <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
