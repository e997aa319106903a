// Package codefmt formats positions and positioned diagnostics.
package codefmt

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
)

// Poser is anything with a position in a declaration.
type Poser interface{ Pos() token.Position }

type poser struct{ pos token.Position }

func (p poser) Pos() token.Position { return p.pos }

// At returns a [Poser] of the given position.
func At(pos token.Position) Poser { return poser{pos} }

// Shift returns the position moved right by n columns on the same line. An
// invalid position stays invalid.
func Shift(pos token.Position, n int) token.Position {
	if !pos.IsValid() {
		return pos
	}
	pos.Column += n
	pos.Offset += n
	return pos
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition formats pos as "file:line:col". The file name is made
// relative to the working directory when possible.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
