package ownership_test

import (
	"errors"
	"go/token"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/enumconv/ownership"
	"github.com/sublee/enumconv/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want ownership.Set
	}{
		{"", ownership.Owned},
		{"   ", ownership.Owned},
		{"owned", ownership.Owned},
		{"&", ownership.Shared},
		{"ref", ownership.Shared},
		{"&mut", ownership.SharedMut},
		{"& mut", ownership.SharedMut},
		{"ref mut", ownership.SharedMut},
		{"&, owned", ownership.Shared | ownership.Owned},
		{"owned, &, &mut", ownership.All},
		{"ref, ref", ownership.Shared},
		{"ref mut, &mut,", ownership.SharedMut},
		{"&,\n owned,\n", ownership.Shared | ownership.Owned},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ownership.Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src    string
		offset int
		msg    string
	}{
		{"own", 0, "expected 'ref', '&' or 'owned', found 'own' (did you mean 'owned'?)"},
		{"&, rf", 3, "expected 'ref', '&' or 'owned', found 'rf' (did you mean 'ref'?)"},
		{"mutable", 0, "expected 'ref', '&' or 'owned', found 'mutable'"},
		{"& x", 2, "expected ',', found 'x'"},
		{"owned owned", 6, "expected ',', found 'owned'"},
		{",", 0, "expected 'ref', '&' or 'owned', found ','"},
		{"&,,", 2, "expected 'ref', '&' or 'owned', found ','"},
		{"&&", 0, "expected 'ref', '&' or 'owned', found '&&'"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := ownership.Parse(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ownership.ErrSyntax)

			var se *ownership.SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.offset, se.Offset)
			assert.Equal(t, tt.msg, se.Msg)
		})
	}
}

func TestParseScanError(t *testing.T) {
	_, err := ownership.Parse("&, \"owned")
	require.Error(t, err)
	assert.ErrorIs(t, err, ownership.ErrSyntax)

	var se *ownership.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Offset)
}

func TestParseAttr(t *testing.T) {
	attr := ir.Attr{
		Name: "try_into_references",
		Args: "&, owend",
		Pos:  token.Position{Filename: "x.yaml", Line: 4, Column: 12, Offset: 40},
	}

	_, err := ownership.ParseAttr(attr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ownership.ErrSyntax)
	assert.Contains(t, err.Error(), "did you mean 'owned'?")

	var ce *codefmt.CodeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 4, ce.Pos().Line)
	assert.Equal(t, 15, ce.Pos().Column)
}

func TestFromAttrs(t *testing.T) {
	set, err := ownership.FromAttrs(nil, "try_into_references")
	require.NoError(t, err)
	assert.Equal(t, ownership.Default, set)

	attrs := []ir.Attr{
		{Name: "doc", Args: "whatever"},
		{Name: "try_into_references", Args: "&mut"},
		{Name: "try_into_references", Args: "nonsense"},
	}
	set, err = ownership.FromAttrs(attrs, "try_into_references")
	require.NoError(t, err)
	assert.Equal(t, ownership.SharedMut, set)
}

func TestSet(t *testing.T) {
	assert.Equal(t, 3, ownership.All.Len())
	assert.Equal(t, 0, ownership.None.Len())
	assert.True(t, ownership.All.Has(ownership.Shared|ownership.Owned))
	assert.False(t, ownership.Owned.Has(ownership.Shared))
	assert.False(t, ownership.Owned.HasRef())
	assert.True(t, (ownership.Owned | ownership.SharedMut).HasRef())
	assert.Equal(t, ownership.SharedMut, ownership.Of(ir.SharedMut))

	assert.Equal(t, "owned, ref, ref mut", ownership.All.String())
	assert.Equal(t, "none", ownership.None.String())

	// The order does not depend on the configuration text.
	set, err := ownership.Parse("&mut, &, owned")
	require.NoError(t, err)
	assert.Equal(t, []ir.Mode{ir.Owned, ir.Shared, ir.SharedMut}, slices.Collect(set.Modes()))
}

func TestDecorators(t *testing.T) {
	i32 := ir.Path{Name: "i32"}
	ds := slices.Collect(ownership.All.Decorators("'r"))
	require.Len(t, ds, 3)

	owned, shared, mut := ds[0], ds[1], ds[2]

	assert.Equal(t, ir.Owned, owned.Mode)
	assert.Empty(t, owned.Lifetime)
	assert.Equal(t, "i32", owned.Wrap(i32).String())
	_, ok := owned.Param()
	assert.False(t, ok)

	assert.Equal(t, "&'r i32", shared.Wrap(i32).String())
	p, ok := shared.Param()
	require.True(t, ok)
	assert.Equal(t, ir.GenericParam{Kind: ir.ParamLifetime, Name: "'r"}, p)

	assert.Equal(t, "&'r mut i32", mut.Wrap(i32).String())
}
