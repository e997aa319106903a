package ownership

import (
	"iter"

	"github.com/sublee/enumconv/ir"
)

// Decorator adapts the payload type and the union type of one unwrap
// conversion to an ownership mode.
type Decorator struct {
	Mode ir.Mode

	// Lifetime is the lifetime introduced for a reference mode. It is empty
	// for [ir.Owned].
	Lifetime string
}

// Decorators yields one decorator per mode in s, in the fixed mode order.
// Reference modes carry the given lifetime.
func (s Set) Decorators(lifetime string) iter.Seq[Decorator] {
	return func(yield func(Decorator) bool) {
		for m := range s.Modes() {
			d := Decorator{Mode: m}
			if m.IsRef() {
				d.Lifetime = lifetime
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Param returns the generic parameter to add to the conversion, which exists
// only for reference modes.
func (d Decorator) Param() (ir.GenericParam, bool) {
	if !d.Mode.IsRef() {
		return ir.GenericParam{}, false
	}
	return ir.GenericParam{Kind: ir.ParamLifetime, Name: d.Lifetime}, true
}

// Wrap returns t as used by the mode: t itself when owned, otherwise a
// reference to t with the decorator's lifetime.
func (d Decorator) Wrap(t ir.Type) ir.Type {
	if !d.Mode.IsRef() {
		return t
	}
	return ir.Ref{
		Lifetime: d.Lifetime,
		Mut:      d.Mode == ir.SharedMut,
		Elem:     t,
	}
}
