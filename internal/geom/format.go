package geom

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// Float renders a float literal for generated source.
// Fixed 4-decimal precision with an explicit type suffix, so repeated
// generation of the same input is byte-identical and diffable.
func Float(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', 4, 32)
	// Negative zero would make output depend on how the value was computed.
	if s == "-0.0000" {
		s = "0.0000"
	}
	return s + "f"
}

// Int renders an integer literal, rounding to nearest.
func Int(v float32) string {
	return strconv.Itoa(int(math32.Round(v)))
}

// FormatRect renders a Rect constructor expression.
func FormatRect(r Rect) string {
	return fmt.Sprintf("Rect(%s, %s, %s, %s)", Float(r.X), Float(r.Y), Float(r.Width), Float(r.Height))
}

// FormatVec renders a Vec constructor expression.
func FormatVec(v Vec2) string {
	return fmt.Sprintf("Vec(%s, %s)", Float(v.X), Float(v.Y))
}

// FormatColor renders a Color constructor expression.
func FormatColor(c Color) string {
	return fmt.Sprintf("Color(%s, %s, %s, %s)", Float(c.R), Float(c.G), Float(c.B), Float(c.A))
}
