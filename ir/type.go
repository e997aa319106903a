package ir

import (
	"strings"
)

// Type is a type expression as written in a declaration. Two types are
// structurally equal when their String forms are equal; there is no semantic
// resolution of aliases or paths.
type Type interface {
	String() string
	isType()
}

// Path is a possibly qualified type name with optional generic arguments,
// e.g. "String", "std::string::String" or "Vec<T>".
type Path struct {
	Name string
	Args []GenericArg
}

// Ref is a reference type: "&T", "&'a T" or "&'a mut T".
type Ref struct {
	Lifetime string // may be empty
	Mut      bool
	Elem     Type
}

// Tuple is a tuple type. The empty tuple is the unit type "()".
type Tuple struct {
	Elems []Type
}

// Slice is a slice type "[T]".
type Slice struct {
	Elem Type
}

// Array is a fixed-length array type "[T; N]". Len is kept verbatim.
type Array struct {
	Elem Type
	Len  string
}

func (Path) isType()  {}
func (Ref) isType()   {}
func (Tuple) isType() {}
func (Slice) isType() {}
func (Array) isType() {}

func (t Path) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString("<")
	writeArgs(&b, t.Args)
	b.WriteString(">")
	return b.String()
}

func (t Ref) String() string {
	var b strings.Builder
	b.WriteString("&")
	if t.Lifetime != "" {
		b.WriteString(t.Lifetime)
		b.WriteString(" ")
	}
	if t.Mut {
		b.WriteString("mut ")
	}
	b.WriteString(typeString(t.Elem))
	return b.String()
}

func (t Tuple) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, elem := range t.Elems {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(typeString(elem))
	}
	if len(t.Elems) == 1 {
		// (T,) is a tuple, (T) is just T.
		b.WriteString(",")
	}
	b.WriteString(")")
	return b.String()
}

func (t Slice) String() string {
	return "[" + typeString(t.Elem) + "]"
}

func (t Array) String() string {
	return "[" + typeString(t.Elem) + "; " + t.Len + "]"
}

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// GenericArg is an argument in a generic argument list: a type, a lifetime, or
// a constant expression.
type GenericArg interface {
	String() string
	isGenericArg()
}

// TypeArg is a type used as a generic argument.
type TypeArg struct {
	Type Type
}

// LifetimeArg is a lifetime used as a generic argument, e.g. "'a".
type LifetimeArg struct {
	Lifetime string
}

// ConstArg is a constant expression used as a generic argument. Expr is kept
// verbatim, e.g. "3" or "{ N + 1 }".
type ConstArg struct {
	Expr string
}

func (TypeArg) isGenericArg()     {}
func (LifetimeArg) isGenericArg() {}
func (ConstArg) isGenericArg()    {}

func (a TypeArg) String() string     { return typeString(a.Type) }
func (a LifetimeArg) String() string { return a.Lifetime }
func (a ConstArg) String() string    { return a.Expr }

func writeArgs(b *strings.Builder, args []GenericArg) {
	for i, arg := range args {
		if i != 0 {
			b.WriteString(", ")
		}
		if arg == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(arg.String())
	}
}

// IsLifetime reports whether name is a lifetime name like "'a" or "'static".
func IsLifetime(name string) bool {
	if len(name) < 2 || name[0] != '\'' {
		return false
	}
	return isIdent(name[1:])
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}
