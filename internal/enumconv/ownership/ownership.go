// Package ownership parses the ownership modes requested for unwrap
// conversions and expands them into type decorators.
//
// The configuration is a comma-separated list where each item is "owned", a
// reference marker ("ref" or "&"), or a reference marker followed by "mut":
//
//	&, ref mut, owned
package ownership

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"iter"
	"strings"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/lcs"
	"github.com/sublee/enumconv/ir"
)

// Set is a set of ownership modes.
type Set uint8

const (
	Owned Set = 1 << iota
	Shared
	SharedMut

	None Set = 0
	All      = Owned | Shared | SharedMut

	// Default is used when no configuration is given.
	Default = Owned
)

// order is the fixed order in which modes are expanded.
var order = [...]struct {
	flag Set
	mode ir.Mode
}{
	{Owned, ir.Owned},
	{Shared, ir.Shared},
	{SharedMut, ir.SharedMut},
}

// Of returns the single-mode set of m.
func Of(m ir.Mode) Set {
	for _, o := range order {
		if o.mode == m {
			return o.flag
		}
	}
	return None
}

// Has reports whether every mode in other is in s.
func (s Set) Has(other Set) bool { return s&other == other }

// HasRef reports whether s requests any reference mode.
func (s Set) HasRef() bool { return s&(Shared|SharedMut) != 0 }

// Len returns the number of modes in s.
func (s Set) Len() int {
	n := 0
	for range s.Modes() {
		n++
	}
	return n
}

// Modes iterates over the modes in s: owned, then shared, then shared-mut.
func (s Set) Modes() iter.Seq[ir.Mode] {
	return func(yield func(ir.Mode) bool) {
		for _, o := range order {
			if s&o.flag == 0 {
				continue
			}
			if !yield(o.mode) {
				return
			}
		}
	}
}

func (s Set) String() string {
	var modes []string
	for m := range s.Modes() {
		modes = append(modes, m.String())
	}
	if len(modes) == 0 {
		return "none"
	}
	return strings.Join(modes, ", ")
}

// ErrSyntax is wrapped by every configuration syntax error.
var ErrSyntax = errors.New("invalid ownership configuration")

// SyntaxError is a configuration syntax error at a byte offset of the
// configuration text.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string { return e.Msg }

// Is makes errors.Is(err, ErrSyntax) true.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

var keywords = []string{"owned", "ref"}

// Parse parses the configuration text. Duplicated or overlapping items are
// harmless. An empty configuration, and a trailing comma, are accepted; the
// former means [Default].
func Parse(src string) (Set, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var scanErr *SyntaxError
	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if scanErr == nil {
			scanErr = &SyntaxError{Offset: pos.Offset, Msg: msg}
		}
	}, 0)

	next := func() (int, token.Token, string) {
		for {
			pos, tok, lit := s.Scan()
			if tok == token.SEMICOLON && lit == "\n" {
				// automatically inserted
				continue
			}
			return file.Offset(pos), tok, lit
		}
	}

	set := None
	off, tok, lit := next()
	for tok != token.EOF {
		switch {
		case tok == token.AND, tok == token.IDENT && lit == "ref":
			off, tok, lit = next()
			if tok == token.IDENT && lit == "mut" {
				set |= SharedMut
				off, tok, lit = next()
			} else {
				set |= Shared
			}

		case tok == token.IDENT && lit == "owned":
			set |= Owned
			off, tok, lit = next()

		default:
			return None, unexpected(off, tok, lit, "expected 'ref', '&' or 'owned'", true, scanErr)
		}

		if tok == token.EOF {
			break
		}
		if tok != token.COMMA {
			return None, unexpected(off, tok, lit, "expected ','", false, scanErr)
		}
		off, tok, lit = next()
	}

	if scanErr != nil {
		return None, scanErr
	}
	if set == None {
		return Default, nil
	}
	return set, nil
}

func unexpected(off int, tok token.Token, lit, expected string, hint bool, scanErr *SyntaxError) error {
	if scanErr != nil && scanErr.Offset <= off {
		return scanErr
	}

	found := tok.String()
	if lit != "" {
		found = lit
	}
	msg := fmt.Sprintf("%s, found '%s'", expected, found)
	if hint && tok == token.IDENT {
		if kw, ok := lcs.Suggest(lit, keywords); ok {
			msg += fmt.Sprintf(" (did you mean '%s'?)", kw)
		}
	}
	return &SyntaxError{Offset: off, Msg: msg}
}

// ParseAttr parses the arguments of a configuration attribute. A syntax error
// is positioned at the offending item.
func ParseAttr(attr ir.Attr) (Set, error) {
	set, err := Parse(attr.Args)
	if err != nil {
		pos := attr.Pos
		var se *SyntaxError
		if errors.As(err, &se) {
			pos = codefmt.Shift(pos, se.Offset)
		}
		return None, codefmt.Wrap(codefmt.At(pos), err)
	}
	return set, nil
}

// FromAttrs returns the set configured by the first attribute with the given
// name, or [Default] when there is none.
func FromAttrs(attrs []ir.Attr, name string) (Set, error) {
	for _, attr := range attrs {
		if attr.Name == name {
			return ParseAttr(attr)
		}
	}
	return Default, nil
}
