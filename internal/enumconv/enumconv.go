// Package enumconvinternal generates the conversions between a tagged union
// and the payload types of its single-field variants.
package enumconvinternal

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/enumconv/generics"
	"github.com/sublee/enumconv/internal/enumconv/ownership"
	"github.com/sublee/enumconv/internal/enumconv/unique"
	"github.com/sublee/enumconv/internal/enumconv/variants"
	"github.com/sublee/enumconv/ir"
)

// Names of the conversion families as they appear in diagnostics.
const (
	DeriveFrom    = "EnumFrom"
	DeriveTryInto = "EnumTryInto"
)

// Generator generates conversions for one declaration. Create it with [New],
// then call [Generator.Wrap] or [Generator.Unwrap]. A generator does not
// modify the declaration and keeps no state between calls.
type Generator struct {
	decl *ir.Decl
	cfg  Config
	log  *slog.Logger

	// self is the declaration applied to its own generic parameters.
	self ir.Type
}

// New checks the configuration and the declaration, and creates a
// [Generator]. derive names the requested conversion family for diagnostics.
//
// A declaration which is not an enum fails with a single error before any
// other check.
func New(decl *ir.Decl, cfg Config, derive string) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if decl == nil {
		return nil, errors.New("nil declaration")
	}
	if decl.Kind != ir.KindEnum {
		return nil, codefmt.Errorf(codefmt.At(decl.Pos), "can only derive %s on enums", derive)
	}
	if err := decl.Validate(); err != nil {
		return nil, reorderErrors(err)
	}

	return &Generator{
		decl: decl,
		cfg:  cfg,
		log:  cfg.logger().With("enum", decl.Name, "derive", derive),
		self: generics.Of(decl),
	}, nil
}

// Wrap generates conversions for the EnumFrom family.
func Wrap(decl *ir.Decl, cfg Config) ([]ir.Conversion, error) {
	g, err := New(decl, cfg, DeriveFrom)
	if err != nil {
		return nil, err
	}
	return g.Wrap(), nil
}

// Unwrap generates conversions for the EnumTryInto family.
func Unwrap(decl *ir.Decl, cfg Config) ([]ir.Conversion, error) {
	g, err := New(decl, cfg, DeriveTryInto)
	if err != nil {
		return nil, err
	}
	return g.Unwrap()
}

// Wrap returns one owned wrap conversion per variant whose payload type is not
// held by any other eligible variant. Wrap conversions never fail.
func (g *Generator) Wrap() []ir.Conversion {
	table := g.resolve(g.cfg.FromIgnore)

	var convs []ir.Conversion
	for _, e := range table.Entries() {
		convs = append(convs, ir.Conversion{
			Direction: ir.Wrap,
			Enum:      g.decl.Name,
			Variant:   e.Variant,
			Payload:   e.Field.Type,
			Mode:      ir.Owned,
			Params:    slices.Clone(g.decl.Generics.Params),
			Where:     slices.Clone(g.decl.Generics.Where),
			Source:    e.Field.Type,
			Target:    g.self,
			Pos:       e.Pos,
		})
	}

	g.log.Debug("generated conversions", "count", len(convs))
	return convs
}

// Unwrap returns, for each variant whose payload type is unique, one unwrap
// conversion per configured ownership mode. A malformed ownership
// configuration aborts the whole declaration.
func (g *Generator) Unwrap() ([]ir.Conversion, error) {
	modes, err := ownership.FromAttrs(g.decl.Attrs, g.cfg.ReferencesAttr)
	if err != nil {
		return nil, err
	}
	if modes.HasRef() {
		if err := g.checkLifetime(); err != nil {
			return nil, err
		}
	}
	g.log.Debug("ownership modes", "modes", modes.String())

	table := g.resolve(g.cfg.TryIntoIgnore)

	var convs []ir.Conversion
	for _, e := range table.Entries() {
		for d := range modes.Decorators(g.cfg.Lifetime) {
			params := slices.Clone(g.decl.Generics.Params)
			if p, ok := d.Param(); ok {
				params = insertLifetime(params, p)
			}

			convs = append(convs, ir.Conversion{
				Direction: ir.Unwrap,
				Enum:      g.decl.Name,
				Variant:   e.Variant,
				Payload:   e.Field.Type,
				Mode:      d.Mode,
				Lifetime:  d.Lifetime,
				Params:    params,
				Where:     slices.Clone(g.decl.Generics.Where),
				Source:    d.Wrap(g.self),
				Target:    d.Wrap(e.Field.Type),
				Pos:       e.Pos,
			})
		}
	}

	g.log.Debug("generated conversions", "count", len(convs))
	return convs, nil
}

// resolve selects the variants without the marker and keeps those whose
// payload type is unique among them.
func (g *Generator) resolve(marker string) *unique.Table {
	if g.log.Enabled(context.Background(), slog.LevelDebug) {
		for _, v := range g.decl.Variants {
			if r := variants.Explain(v, marker); r != variants.Eligible {
				g.log.Debug("skipped variant", "variant", v.Name, "reason", r.String())
			}
		}
	}

	table := unique.Resolve(variants.Select(g.decl, marker))

	// Ambiguous payload types are dropped without an error.
	for _, key := range table.Ambiguous() {
		g.log.Debug("dropped ambiguous payload type", "type", key)
	}
	return table
}

// checkLifetime reports an error if the union already declares the lifetime
// reserved for reference conversions.
func (g *Generator) checkLifetime() error {
	for _, p := range g.decl.Generics.Params {
		if p.Kind == ir.ParamLifetime && p.Name == g.cfg.Lifetime {
			return codefmt.Errorf(codefmt.At(g.decl.Pos), "lifetime %s of %s collides with the lifetime reserved for reference conversions", p.Name, g.decl.Name)
		}
	}
	return nil
}

// insertLifetime inserts the lifetime parameter after the existing lifetime
// parameters, because lifetimes must precede type and const parameters.
func insertLifetime(params []ir.GenericParam, lt ir.GenericParam) []ir.GenericParam {
	i := 0
	for i < len(params) && params[i].Kind == ir.ParamLifetime {
		i++
	}
	return slices.Insert(params, i, lt)
}
