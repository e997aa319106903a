// Package enumconverrors provides the failure values of generated unwrap
// conversions.
//
// An owned unwrap conversion consumes the union. When the variant does not
// match, it fails with a [*MismatchError] which hands the union back, so the
// caller loses nothing. A reference unwrap conversion only borrows the union,
// so its failure carries no value; it is just [ErrVariantMismatch].
package enumconverrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrVariantMismatch reports that the union holds another variant than the one
// a conversion expects. Every mismatch failure wraps it.
var ErrVariantMismatch = errors.New("variant mismatch")

// MismatchError is the failure of an owned unwrap conversion. Union is the
// original, unmodified union value.
type MismatchError[U any] struct {
	Union U
	Want  string // expected variant
	Got   string // actual variant
}

func (e *MismatchError[U]) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrVariantMismatch, e.Want, e.Got)
}

// Unwrap makes errors.Is(err, ErrVariantMismatch) true.
func (e *MismatchError[U]) Unwrap() error { return ErrVariantMismatch }

// Recover returns the union value carried by an owned mismatch failure in
// err's chain.
func Recover[U any](err error) (U, bool) {
	var me *MismatchError[U]
	if errors.As(err, &me) {
		return me.Union, true
	}
	var zero U
	return zero, false
}

// Wrap prefixes err with the path of the conversion that failed:
//
//	converting Shape.Circle: variant mismatch: want Circle, got Square
//
// Wrapping an error already wrapped by Wrap folds the paths: the outer path
// replaces the first segment of the inner one. It returns nil if err is nil.
func Wrap(path string, err error) error {
	if err == nil {
		return nil
	}

	if inner, ok := err.(*wrapError); ok {
		rest := ""
		if i := strings.IndexByte(inner.path, '.'); i >= 0 {
			rest = inner.path[i:]
		}
		return &wrapError{path: path + rest, err: inner.err}
	}
	return &wrapError{path: path, err: err}
}

type wrapError struct {
	path string
	err  error
}

func (e *wrapError) Error() string {
	if e.path == "" {
		return "converting: " + e.err.Error()
	}
	return "converting " + e.path + ": " + e.err.Error()
}

func (e *wrapError) Unwrap() error { return e.err }
