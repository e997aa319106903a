package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumconv/internal/enumconv/eval"
	"github.com/sublee/enumconv/ir"
	"github.com/sublee/enumconv/pkg/enumconverrors"
)

func conv(dir ir.Direction, variant string, mode ir.Mode) ir.Conversion {
	return ir.Conversion{Direction: dir, Enum: "NumberOrString", Variant: variant, Mode: mode}
}

func TestRoundTrip(t *testing.T) {
	v, err := eval.Wrap(conv(ir.Wrap, "Num", ir.Owned), float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, eval.Value{Enum: "NumberOrString", Variant: "Num", Payload: float32(1.5)}, v)

	for _, mode := range []ir.Mode{ir.Owned, ir.Shared} {
		got, err := eval.Unwrap(conv(ir.Unwrap, "Num", mode), &v)
		require.NoError(t, err, mode)
		assert.Equal(t, float32(1.5), got, mode)
	}
}

func TestUnwrapSharedMut(t *testing.T) {
	v := eval.Value{Enum: "NumberOrString", Variant: "Str", Payload: "a"}

	got, err := eval.Unwrap(conv(ir.Unwrap, "Str", ir.SharedMut), &v)
	require.NoError(t, err)

	p, ok := got.(*any)
	require.True(t, ok)
	*p = "b"
	assert.Equal(t, "b", v.Payload)
}

func TestUnwrapOwnedMismatch(t *testing.T) {
	v := eval.Value{Enum: "NumberOrString", Variant: "Str", Payload: "a"}

	_, err := eval.Unwrap(conv(ir.Unwrap, "Num", ir.Owned), &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumconverrors.ErrVariantMismatch)
	assert.EqualError(t, err, "converting NumberOrString.Num: variant mismatch: want Num, got Str")

	orig, ok := enumconverrors.Recover[eval.Value](err)
	require.True(t, ok)
	assert.Equal(t, v, orig)
}

func TestUnwrapReferenceMismatch(t *testing.T) {
	v := eval.Value{Enum: "NumberOrString", Variant: "Str", Payload: "a"}

	for _, mode := range []ir.Mode{ir.Shared, ir.SharedMut} {
		_, err := eval.Unwrap(conv(ir.Unwrap, "Num", mode), &v)
		require.Error(t, err, mode)
		assert.ErrorIs(t, err, enumconverrors.ErrVariantMismatch, mode)

		_, ok := enumconverrors.Recover[eval.Value](err)
		assert.False(t, ok, mode)
	}
	assert.Equal(t, "a", v.Payload)
}

func TestWrongDirection(t *testing.T) {
	_, err := eval.Wrap(conv(ir.Unwrap, "Num", ir.Owned), 1)
	assert.Error(t, err)

	v := eval.Value{Variant: "Num"}
	_, err = eval.Unwrap(conv(ir.Wrap, "Num", ir.Owned), &v)
	assert.Error(t, err)

	_, err = eval.Unwrap(conv(ir.Unwrap, "Num", ir.Owned), nil)
	assert.Error(t, err)
}
