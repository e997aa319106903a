package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError indicates where the error occurred in the user's declaration.
type CodeError struct {
	err error
	pos token.Position
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Position { return e.pos }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.pos), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in the
// declaration if the position is valid. Use [Wrap] to attach a position to an
// existing error.
func Errorf(poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	return &CodeError{fmt.Errorf(format, args...), posOf(poser)}
}

// Wrap attaches the position to err. It returns nil if err is nil.
func Wrap(poser Poser, err error) error {
	if err == nil {
		return nil
	}
	return &CodeError{err, posOf(poser)}
}

func posOf(poser Poser) token.Position {
	if poser == nil {
		return token.Position{}
	}
	return poser.Pos()
}
