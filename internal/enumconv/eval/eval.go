// Package eval runs generated conversions against dynamic union values. It is
// the reference behavior that an emitter's output must have at the point of
// use.
package eval

import (
	"fmt"

	"github.com/sublee/enumconv/ir"
	"github.com/sublee/enumconv/pkg/enumconverrors"
)

// Value is a union value: the active variant and its payload.
type Value struct {
	Enum    string
	Variant string
	Payload any
}

// Wrap constructs the union value selected by a wrap conversion. It fails only
// when conv is not a wrap conversion.
func Wrap(conv ir.Conversion, payload any) (Value, error) {
	if conv.Direction != ir.Wrap {
		return Value{}, fmt.Errorf("eval: %s is not a wrap conversion", conv.Variant)
	}
	return Value{Enum: conv.Enum, Variant: conv.Variant, Payload: payload}, nil
}

// Unwrap runs an unwrap conversion against v.
//
// On a matching variant, it returns the payload for an owned or shared
// conversion, and a *any pointing into v for a shared-mut conversion, through
// which the payload can be replaced.
//
// On a mismatch, an owned conversion fails with a
// [*enumconverrors.MismatchError] of [Value] holding v unmodified. Reference
// conversions fail with [enumconverrors.ErrVariantMismatch] only.
func Unwrap(conv ir.Conversion, v *Value) (any, error) {
	if conv.Direction != ir.Unwrap {
		return nil, fmt.Errorf("eval: %s is not an unwrap conversion", conv.Variant)
	}
	if v == nil {
		return nil, fmt.Errorf("eval: nil %s", conv.Enum)
	}

	path := conv.Enum + "." + conv.Variant

	if v.Variant != conv.Variant {
		if conv.RecoversInput() {
			return nil, enumconverrors.Wrap(path, &enumconverrors.MismatchError[Value]{
				Union: *v,
				Want:  conv.Variant,
				Got:   v.Variant,
			})
		}
		return nil, enumconverrors.Wrap(path, enumconverrors.ErrVariantMismatch)
	}

	switch conv.Mode {
	case ir.Owned, ir.Shared:
		return v.Payload, nil
	case ir.SharedMut:
		return &v.Payload, nil
	default:
		return nil, fmt.Errorf("eval: unknown mode %s", conv.Mode)
	}
}
