// Package variants selects the variants of a tagged union that take part in a
// conversion family.
package variants

import (
	"go/token"
	"iter"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/enumconv/ir"
)

// Entry is an eligible variant with its single unnamed field.
type Entry struct {
	Variant string
	Field   ir.Field
	Pos     token.Position
}

// Reason tells why a variant is or is not eligible.
type Reason int

const (
	Eligible Reason = iota
	BadShape        // not exactly one unnamed field
	Excluded        // carries the exclusion marker
)

func (r Reason) String() string {
	switch r {
	case Eligible:
		return "eligible"
	case BadShape:
		return "ineligible shape"
	case Excluded:
		return "excluded by marker"
	default:
		return "unknown"
	}
}

// Explain tells whether v is eligible for the conversion family whose
// exclusion marker is marker.
func Explain(v ir.Variant, marker string) Reason {
	if v.Shape() != ir.ShapeSingle {
		return BadShape
	}
	if markers(v).Contains(marker) {
		return Excluded
	}
	return Eligible
}

// markers collects the attribute names of a variant.
func markers(v ir.Variant) *linkedhashset.Set {
	set := linkedhashset.New()
	for _, attr := range v.Attrs {
		set.Add(attr.Name)
	}
	return set
}

// Select yields the variants of decl which hold exactly one unnamed field and
// do not carry the marker attribute, in declaration order. Other variants are
// skipped silently.
func Select(decl *ir.Decl, marker string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, v := range decl.Variants {
			if Explain(v, marker) != Eligible {
				continue
			}

			e := Entry{
				Variant: v.Name,
				Field:   v.Fields.List[0],
				Pos:     v.Pos,
			}
			if !yield(e) {
				return
			}
		}
	}
}
