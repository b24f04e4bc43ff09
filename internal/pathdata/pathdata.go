// Package pathdata parses the compact vector-path mini-language used by
// design documents into typed absolute drawing commands.
//
// The grammar is a command letter followed by a run of numeric operands:
// move (M/m), line (L/l), horizontal line (H/h), vertical line (V/v),
// cubic curve (C/c), quadratic curve (Q/q) and close (Z/z). Lowercase
// variants are relative to the running cursor. An operand run longer than
// the command's arity repeats the command. Unrecognized letters are
// skipped. Parsing never fails; unparsable input yields no commands.
package pathdata

import "github.com/loomgen/loom/internal/geom"

// Command is one absolute drawing command.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern enables exhaustive type switches in the
// paint generator.
type Command interface {
	pathCommand() // Marker method - seals interface to this package
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P geom.Vec2
}

func (MoveTo) pathCommand() {}

// LineTo draws a straight segment from the cursor to P.
type LineTo struct {
	P geom.Vec2
}

func (LineTo) pathCommand() {}

// CubicTo draws a cubic Bezier to P with control points C1 and C2.
type CubicTo struct {
	C1 geom.Vec2
	C2 geom.Vec2
	P  geom.Vec2
}

func (CubicTo) pathCommand() {}

// QuadTo draws a quadratic Bezier to P with control point C.
type QuadTo struct {
	C geom.Vec2
	P geom.Vec2
}

func (QuadTo) pathCommand() {}

// Close closes the current subpath. It does not move the cursor.
type Close struct{}

func (Close) pathCommand() {}
