// Package geom holds the shared value types of the generation pipeline:
// rectangles, 2D vectors and normalized RGBA colors, plus the stable
// numeric-literal formatting every generator uses.
//
// All geometry is float32 in design-space units. Colors are normalized
// to [0, 1] per channel.
package geom

import "github.com/chewxy/math32"

// Vec2 is a point or offset in design space.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle. X,Y is the top-left corner.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// IsEmpty reports whether r has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// Expand grows r by m on every side. Negative m shrinks.
func (r Rect) Expand(m float32) Rect {
	return Rect{r.X - m, r.Y - m, r.Width + 2*m, r.Height + 2*m}
}

// Color is a normalized RGBA color. All channels are in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Black is the default text color.
var Black = Color{0, 0, 0, 1}

// WithAlpha returns c with its alpha channel multiplied by a.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, c.A * a}
}

// IsOpaque reports whether c has full alpha.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}
