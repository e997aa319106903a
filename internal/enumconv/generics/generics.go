// Package generics turns the generic parameter list of a declaration into the
// argument list that refers to the declared type fully instantiated.
package generics

import (
	"github.com/sublee/enumconv/ir"
)

// Args returns one argument per parameter, in order. A type parameter becomes
// a type argument naming it, a lifetime stays the same lifetime, and a const
// parameter becomes a bare reference to its name. Bounds and defaults are not
// carried over. It returns nil for an empty list.
func Args(params []ir.GenericParam) []ir.GenericArg {
	if len(params) == 0 {
		return nil
	}

	args := make([]ir.GenericArg, 0, len(params))
	for _, p := range params {
		switch p.Kind {
		case ir.ParamLifetime:
			args = append(args, ir.LifetimeArg{Lifetime: p.Name})
		default:
			args = append(args, ir.TypeArg{Type: ir.Path{Name: p.Name}})
		}
	}
	return args
}

// Apply returns the type reference of name applied to its own parameters, e.g.
// "X<'a, T, N>" for X<'a, T: Clone, const N: usize>. Without parameters, it is
// just "X".
func Apply(name string, params []ir.GenericParam) ir.Type {
	return ir.Path{Name: name, Args: Args(params)}
}

// Of returns the fully applied type reference of the declaration.
func Of(decl *ir.Decl) ir.Type {
	return Apply(decl.Name, decl.Generics.Params)
}
