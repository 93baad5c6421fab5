package parse

import (
	"go/token"
	"iter"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumorph/internal/codefmt"
	"github.com/sublee/enumorph/internal/typeinfo"
)

// Conversion is a validated variant. It produces a pair of functions: Unwrap
// extracts the payload from the union and Wrap builds the union from the
// payload.
type Conversion struct {
	Union    *Union
	Variant  string
	Accessor Accessor
	Payload  typeinfo.Type

	Unwrap string // e.g., "ShapeToCircle"
	Wrap   string // e.g., "ShapeFromCircle"

	pos token.Pos
}

func (c Conversion) Pkg() *packages.Package { return c.Union.Pkg() }
func (c Conversion) Pos() token.Pos         { return c.pos }

// Validator validates variants of unions in a package. It remembers the names
// of conversions across unions, so a single Validator must be used for all
// unions in the package.
type Validator struct {
	p  *Parser
	ns codefmt.NS
}

// NewValidator creates a [Validator]. Names declared in the package are
// reserved except for the ones in files generated by enumorph.
func (p *Parser) NewValidator() *Validator {
	return &Validator{
		p:  p,
		ns: codefmt.NewNS(p.pkg.Types.Scope(), p.IsGenerated),
	}
}

// Validate checks the variants of the union in declaration order. It yields a
// [Conversion] for each variant that passes, or an error for each variant that
// does not. Skipped variants yield nothing. The caller decides whether to stop
// at the first error or to collect all of them.
func (v *Validator) Validate(u *Union) iter.Seq2[Conversion, error] {
	return func(yield func(Conversion, error) bool) {
		payloads := typeinfo.NewIndex[Variant]()

		for _, variant := range u.Variants {
			if variant.Skip {
				continue
			}

			var (
				conv Conversion
				err  error
			)
			switch {
			case variant.Option != "":
				err = codefmt.KindErrorf(v.p, ErrOption, variant, "unknown %s option %q on %s.%s; only %q is supported", TagKey, variant.Option, u.Name, variant.Name, optionIgnore)
			case variant.Shape == Unit:
				err = codefmt.KindErrorf(v.p, ErrUnitVariant, variant, "unit variant %s.%s has no data to convert to or from; try tagging it with %s:%q", u.Name, variant.Name, TagKey, optionIgnore)
			case variant.Shape == MultiPayload:
				err = codefmt.KindErrorf(v.p, ErrMultiField, codefmt.Span(variant.Expr.Pos(), variant.Expr.End()), "only variants with one field are supported; %s.%s has %d fields", u.Name, variant.Name, variant.NumFields)
			default:
				conv, err = v.convert(u, variant, payloads)
			}

			if !yield(conv, err) {
				return
			}
		}
	}
}

func (v *Validator) convert(u *Union, variant Variant, payloads *typeinfo.Index[Variant]) (Conversion, error) {
	// Two variants carrying the same type would need two conversions with the
	// same signature.
	if prev, ok := payloads.Put(variant.Payload, variant); !ok {
		return Conversion{}, codefmt.KindErrorf(v.p, ErrConflict, variant, "%s.%s and %s.%s both carry %t; conversions would conflict\n\tprevious declaration at %b", u.Name, prev.Name, u.Name, variant.Name, variant.Payload, prev.Pos())
	}

	// Names come from the union and the variant, which are unique within the
	// package and the union respectively.
	conv := Conversion{
		Union:    u,
		Variant:  variant.Name,
		Accessor: variant.Accessor,
		Payload:  variant.Payload,
		Unwrap:   codefmt.Ident(u.Exported(), u.Name, "to", variant.Name),
		Wrap:     codefmt.Ident(u.Exported(), u.Name, "from", variant.Name),
		pos:      variant.Pos(),
	}

	for _, name := range []string{conv.Unwrap, conv.Wrap} {
		if prev, ok := v.ns.Reserve(name, variant.Pos()); !ok {
			return Conversion{}, codefmt.KindErrorf(v.p, ErrConflict, variant, "conversion %s for %s.%s is already declared\n\tprevious declaration at %b", name, u.Name, variant.Name, prev)
		}
	}
	return conv, nil
}
