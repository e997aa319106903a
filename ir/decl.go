// Package ir defines the intermediate representation exchanged with the
// generator: the structured description of a tagged union coming in, and the
// generated conversion records going out.
//
// A declaration parser produces a [Decl]. The generator consumes it and
// returns [Conversion] records, which an emitter renders into source text.
// Neither the parser nor the emitter lives in this module.
package ir

import (
	"fmt"
	"go/token"
	"strings"
)

// Kind is the kind of a type declaration. Only [KindEnum] is a tagged union.
type Kind int

const (
	KindEnum Kind = iota
	KindStruct
	KindUnion // untagged union
)

func (k Kind) IsValid() bool { return k >= KindEnum && k <= KindUnion }

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the name of a [Kind]. An empty name means [KindEnum].
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "enum":
		return KindEnum, nil
	case "struct":
		return KindStruct, nil
	case "union":
		return KindUnion, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// Decl is a type declaration. It is an immutable input; the generator never
// modifies it.
type Decl struct {
	Name     string `validate:"required"`
	Kind     Kind   `validate:"known"`
	Generics Generics
	Variants []Variant      `validate:"dive"`
	Attrs    []Attr         `validate:"dive"`
	Pos      token.Position `validate:"-"`
}

// Attr returns the first declaration-level attribute with the given name.
func (d *Decl) Attr(name string) (Attr, bool) {
	return findAttr(d.Attrs, name)
}

// Variant is one named alternative of a tagged union.
type Variant struct {
	Name   string `validate:"required"`
	Fields Fields
	Attrs  []Attr         `validate:"dive"`
	Pos    token.Position `validate:"-"`
}

// Shape classifies the fields of the variant.
func (v Variant) Shape() Shape {
	switch v.Fields.Style {
	case StyleNamed:
		return ShapeNamed
	case StyleUnnamed:
		switch len(v.Fields.List) {
		case 0:
			return ShapeNone
		case 1:
			return ShapeSingle
		default:
			return ShapeMany
		}
	default:
		return ShapeNone
	}
}

// HasAttr reports whether the variant carries an attribute with the given
// name.
func (v Variant) HasAttr(name string) bool {
	_, ok := findAttr(v.Attrs, name)
	return ok
}

// Style is how the fields of a variant are written.
type Style int

const (
	StyleUnit    Style = iota // A
	StyleUnnamed              // A(T, U)
	StyleNamed                // A { x: T }
)

func (s Style) IsValid() bool { return s >= StyleUnit && s <= StyleNamed }

func (s Style) String() string {
	switch s {
	case StyleUnit:
		return "unit"
	case StyleUnnamed:
		return "unnamed"
	case StyleNamed:
		return "named"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Shape is the field shape of a variant, which decides whether the variant
// takes part in conversion generation.
type Shape int

const (
	ShapeNone   Shape = iota // no fields
	ShapeSingle              // exactly one unnamed field
	ShapeMany                // two or more unnamed fields
	ShapeNamed               // named fields
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "no fields"
	case ShapeSingle:
		return "single unnamed field"
	case ShapeMany:
		return "multiple unnamed fields"
	case ShapeNamed:
		return "named fields"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Fields is the field list of a variant.
type Fields struct {
	Style Style   `validate:"known"`
	List  []Field `validate:"dive"`
}

// Field is a variant field. Name is empty for unnamed fields.
type Field struct {
	Name  string
	Type  Type           `validate:"-"`
	Attrs []Attr         `validate:"dive"`
	Pos   token.Position `validate:"-"`
}

// Attr is an attribute attached to a declaration, a variant or a field. Args
// is the raw text between the parentheses, if any. Pos is where Args begins,
// or where the attribute is when it has no arguments.
type Attr struct {
	Name string `validate:"required"`
	Args string
	Pos  token.Position `validate:"-"`
}

func findAttr(attrs []Attr, name string) (Attr, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attr{}, false
}

// ParamKind is the kind of a generic parameter.
type ParamKind int

const (
	ParamType ParamKind = iota
	ParamLifetime
	ParamConst
)

func (k ParamKind) IsValid() bool { return k >= ParamType && k <= ParamConst }

func (k ParamKind) String() string {
	switch k {
	case ParamType:
		return "type"
	case ParamLifetime:
		return "lifetime"
	case ParamConst:
		return "const"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// ParseParamKind parses the name of a [ParamKind].
func ParseParamKind(s string) (ParamKind, error) {
	switch s {
	case "type":
		return ParamType, nil
	case "lifetime":
		return ParamLifetime, nil
	case "const":
		return ParamConst, nil
	}
	return 0, fmt.Errorf("unknown generic parameter kind %q", s)
}

// GenericParam is a generic parameter of a declaration. Bounds and Default are
// carried verbatim. Type is the type of a const parameter.
type GenericParam struct {
	Kind    ParamKind `validate:"known"`
	Name    string    `validate:"required"`
	Bounds  []string
	Default string
	Type    Type
}

func (p GenericParam) String() string {
	var b strings.Builder
	if p.Kind == ParamConst {
		b.WriteString("const ")
	}
	b.WriteString(p.Name)
	if p.Kind == ParamConst {
		b.WriteString(": ")
		b.WriteString(typeString(p.Type))
	} else if len(p.Bounds) != 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(p.Bounds, " + "))
	}
	if p.Default != "" {
		b.WriteString(" = ")
		b.WriteString(p.Default)
	}
	return b.String()
}

// Generics is the generic parameter list of a declaration along with its where
// predicates, which are carried verbatim.
type Generics struct {
	Params []GenericParam `validate:"dive"`
	Where  []string
}
