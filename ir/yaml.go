package ir

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeDecl decodes a declaration from its YAML description. filename is used
// for positions only.
//
// A type is written either as a plain name, or as a mapping with exactly one
// of the keys path, ref, tuple, slice, or array:
//
//	name: Message
//	generics:
//	  params:
//	    - {kind: lifetime, name: "'a"}
//	    - {kind: type, name: T, bounds: [Clone]}
//	  where: ["T: Debug"]
//	attrs:
//	  - {name: try_into_references, args: "&, owned"}
//	variants:
//	  - name: Text
//	    fields: [String]
//	  - name: Borrowed
//	    fields: [{ref: str, lifetime: "'a"}]
//	  - name: Point
//	    named: [{name: x, type: i32}, {name: y, type: i32}]
//	  - name: Empty
func DecodeDecl(r io.Reader, filename string) (*Decl, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode %s: empty document", filename)
		}
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	var yd yamlDecl
	if err := doc.Decode(&yd); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	d, err := yd.toIR(filename)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return d, nil
}

type yamlPos struct {
	line, col int
}

func (p yamlPos) at(filename string) token.Position {
	return token.Position{Filename: filename, Line: p.line, Column: p.col}
}

func posOf(node *yaml.Node) yamlPos {
	return yamlPos{node.Line, node.Column}
}

type yamlDecl struct {
	Name     string        `yaml:"name"`
	Kind     string        `yaml:"kind"`
	Generics yamlGenerics  `yaml:"generics"`
	Attrs    []yamlAttr    `yaml:"attrs"`
	Variants []yamlVariant `yaml:"variants"`
	pos      yamlPos
}

func (yd *yamlDecl) UnmarshalYAML(node *yaml.Node) error {
	type raw yamlDecl
	if err := node.Decode((*raw)(yd)); err != nil {
		return err
	}
	yd.pos = posOf(node)
	return nil
}

func (yd yamlDecl) toIR(filename string) (*Decl, error) {
	kind, err := ParseKind(yd.Kind)
	if err != nil {
		return nil, err
	}

	d := &Decl{
		Name: yd.Name,
		Kind: kind,
		Pos:  yd.pos.at(filename),
	}

	d.Generics.Where = yd.Generics.Where
	for _, yp := range yd.Generics.Params {
		p, err := yp.toIR()
		if err != nil {
			return nil, err
		}
		d.Generics.Params = append(d.Generics.Params, p)
	}

	d.Attrs = attrsToIR(yd.Attrs, filename)

	for _, yv := range yd.Variants {
		v, err := yv.toIR(filename)
		if err != nil {
			return nil, err
		}
		d.Variants = append(d.Variants, v)
	}
	return d, nil
}

type yamlGenerics struct {
	Params []yamlParam `yaml:"params"`
	Where  []string    `yaml:"where"`
}

type yamlParam struct {
	Kind    string    `yaml:"kind"`
	Name    string    `yaml:"name"`
	Bounds  []string  `yaml:"bounds"`
	Default string    `yaml:"default"`
	Type    *yamlType `yaml:"type"`
}

func (yp yamlParam) toIR() (GenericParam, error) {
	kind, err := ParseParamKind(yp.Kind)
	if err != nil {
		return GenericParam{}, err
	}
	p := GenericParam{
		Kind:    kind,
		Name:    yp.Name,
		Bounds:  yp.Bounds,
		Default: yp.Default,
	}
	if yp.Type != nil {
		p.Type = yp.Type.t
	}
	return p, nil
}

type yamlAttr struct {
	Name string `yaml:"name"`
	Args string `yaml:"args"`
	pos  yamlPos
}

func (ya *yamlAttr) UnmarshalYAML(node *yaml.Node) error {
	type raw yamlAttr
	if err := node.Decode((*raw)(ya)); err != nil {
		return err
	}

	ya.pos = posOf(node)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "args" {
			continue
		}
		args := node.Content[i+1]
		ya.pos = posOf(args)
		if args.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
			// Point at the first byte inside the quotes.
			ya.pos.col++
		}
	}
	return nil
}

func attrsToIR(yas []yamlAttr, filename string) []Attr {
	var attrs []Attr
	for _, ya := range yas {
		attrs = append(attrs, Attr{Name: ya.Name, Args: ya.Args, Pos: ya.pos.at(filename)})
	}
	return attrs
}

type yamlVariant struct {
	Name   string      `yaml:"name"`
	Fields *[]yamlType `yaml:"fields"`
	Named  []yamlField `yaml:"named"`
	Attrs  []yamlAttr  `yaml:"attrs"`
	pos    yamlPos
}

func (yv *yamlVariant) UnmarshalYAML(node *yaml.Node) error {
	type raw yamlVariant
	if err := node.Decode((*raw)(yv)); err != nil {
		return err
	}
	yv.pos = posOf(node)
	return nil
}

func (yv yamlVariant) toIR(filename string) (Variant, error) {
	v := Variant{
		Name:  yv.Name,
		Attrs: attrsToIR(yv.Attrs, filename),
		Pos:   yv.pos.at(filename),
	}

	switch {
	case yv.Fields != nil && yv.Named != nil:
		return Variant{}, fmt.Errorf("variant %s: both fields and named are given", yv.Name)

	case yv.Named != nil:
		v.Fields.Style = StyleNamed
		for _, yf := range yv.Named {
			v.Fields.List = append(v.Fields.List, Field{
				Name:  yf.Name,
				Type:  yf.Type.t,
				Attrs: attrsToIR(yf.Attrs, filename),
				Pos:   yf.Type.pos.at(filename),
			})
		}

	case yv.Fields != nil:
		v.Fields.Style = StyleUnnamed
		for _, yt := range *yv.Fields {
			v.Fields.List = append(v.Fields.List, Field{
				Type: yt.t,
				Pos:  yt.pos.at(filename),
			})
		}

	default:
		v.Fields.Style = StyleUnit
	}
	return v, nil
}

type yamlField struct {
	Name  string     `yaml:"name"`
	Type  yamlType   `yaml:"type"`
	Attrs []yamlAttr `yaml:"attrs"`
}

// yamlType decodes a [Type] from either a plain name or a mapping.
type yamlType struct {
	t   Type
	pos yamlPos
}

func (yt *yamlType) UnmarshalYAML(node *yaml.Node) error {
	yt.pos = posOf(node)

	if node.Kind == yaml.ScalarNode {
		if node.Value == "" {
			return fmt.Errorf("line %d: empty type", node.Line)
		}
		yt.t = Path{Name: node.Value}
		return nil
	}

	var raw struct {
		Path     string      `yaml:"path"`
		Args     []yamlArg   `yaml:"args"`
		Ref      *yamlType   `yaml:"ref"`
		Lifetime string      `yaml:"lifetime"`
		Mut      bool        `yaml:"mut"`
		Tuple    *[]yamlType `yaml:"tuple"`
		Slice    *yamlType   `yaml:"slice"`
		Array    *yamlType   `yaml:"array"`
		Len      string      `yaml:"len"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	var forms []string
	if raw.Path != "" {
		forms = append(forms, "path")
		args := make([]GenericArg, 0, len(raw.Args))
		for _, a := range raw.Args {
			args = append(args, a.a)
		}
		if len(args) == 0 {
			args = nil
		}
		yt.t = Path{Name: raw.Path, Args: args}
	}
	if raw.Ref != nil {
		forms = append(forms, "ref")
		yt.t = Ref{Lifetime: raw.Lifetime, Mut: raw.Mut, Elem: raw.Ref.t}
	}
	if raw.Tuple != nil {
		forms = append(forms, "tuple")
		var elems []Type
		for _, e := range *raw.Tuple {
			elems = append(elems, e.t)
		}
		yt.t = Tuple{Elems: elems}
	}
	if raw.Slice != nil {
		forms = append(forms, "slice")
		yt.t = Slice{Elem: raw.Slice.t}
	}
	if raw.Array != nil {
		forms = append(forms, "array")
		yt.t = Array{Elem: raw.Array.t, Len: raw.Len}
	}

	switch len(forms) {
	case 0:
		return fmt.Errorf("line %d: type needs one of path, ref, tuple, slice, or array", node.Line)
	case 1:
		return nil
	default:
		return fmt.Errorf("line %d: ambiguous type with %s", node.Line, strings.Join(forms, ", "))
	}
}

// yamlArg decodes a [GenericArg]. A scalar starting with an apostrophe is a
// lifetime, a mapping with a const key is a constant expression, and anything
// else is a type.
type yamlArg struct {
	a GenericArg
}

func (ya *yamlArg) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && strings.HasPrefix(node.Value, "'") {
		ya.a = LifetimeArg{Lifetime: node.Value}
		return nil
	}

	if node.Kind == yaml.MappingNode {
		var c struct {
			Const *string `yaml:"const"`
		}
		if err := node.Decode(&c); err == nil && c.Const != nil {
			ya.a = ConstArg{Expr: *c.Const}
			return nil
		}
	}

	var yt yamlType
	if err := node.Decode(&yt); err != nil {
		return err
	}
	ya.a = TypeArg{Type: yt.t}
	return nil
}
