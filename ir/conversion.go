package ir

import (
	"fmt"
	"go/token"
	"strings"
)

// Direction is the conversion family of a generated conversion.
type Direction int

const (
	// Wrap converts a payload value into the union by selecting the variant.
	// It cannot fail.
	Wrap Direction = iota

	// Unwrap converts the union back into a payload value. It fails when the
	// runtime variant does not match.
	Unwrap
)

func (d Direction) String() string {
	switch d {
	case Wrap:
		return "wrap"
	case Unwrap:
		return "unwrap"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Mode is how a generated unwrap conversion takes the union and hands out the
// payload.
type Mode int

const (
	Owned     Mode = iota // by value
	Shared                // by shared reference
	SharedMut             // by exclusive reference
)

func (m Mode) String() string {
	switch m {
	case Owned:
		return "owned"
	case Shared:
		return "ref"
	case SharedMut:
		return "ref mut"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsRef reports whether the mode takes the union by reference.
func (m Mode) IsRef() bool { return m == Shared || m == SharedMut }

// Conversion is a generated conversion declaration ready for an emitter.
//
// Source and Target are the types the conversion goes from and to, already
// decorated for the ownership mode. For a wrap conversion, Source is Payload
// and Target is the fully applied union. For an unwrap conversion, it is the
// other way around, both behind a reference for reference modes.
type Conversion struct {
	Direction Direction
	Enum      string
	Variant   string
	Payload   Type
	Mode      Mode

	// Lifetime is the lifetime introduced for a reference mode. It is empty
	// for owned conversions.
	Lifetime string

	Params []GenericParam
	Where  []string

	Source Type
	Target Type

	Pos token.Position
}

// Fallible reports whether the conversion may fail at the point of use.
func (c Conversion) Fallible() bool { return c.Direction == Unwrap }

// RecoversInput reports whether a failed conversion hands the original union
// value back to the caller. Only owned unwrap conversions do.
func (c Conversion) RecoversInput() bool {
	return c.Direction == Unwrap && c.Mode == Owned
}

// String returns a compact, stable description of the conversion for
// debugging and golden tests:
//
//	wrap<'a> A: &'a i32 -> X<'a>
//	unwrap[ref]<'try_into_ref> Num: &'try_into_ref N -> &'try_into_ref f32
func (c Conversion) String() string {
	var b strings.Builder
	b.WriteString(c.Direction.String())
	if c.Direction == Unwrap {
		fmt.Fprintf(&b, "[%s]", c.Mode)
	}
	if len(c.Params) != 0 {
		b.WriteString("<")
		for i, p := range c.Params {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(">")
	}
	fmt.Fprintf(&b, " %s: %s -> %s", c.Variant, typeString(c.Source), typeString(c.Target))
	if len(c.Where) != 0 {
		b.WriteString(" where ")
		b.WriteString(strings.Join(c.Where, ", "))
	}
	return b.String()
}
