package ir

import "github.com/loomgen/loom/internal/geom"

// StrokeAlign is where the stroke sits relative to the shape edge.
type StrokeAlign string

const (
	StrokeInside  StrokeAlign = "inside"
	StrokeOutside StrokeAlign = "outside"
	StrokeCenter  StrokeAlign = "center"
)

// Stroke is one outline entry.
type Stroke struct {
	Color   geom.Color
	Weight  float32 // >= 0
	Align   StrokeAlign
	Cap     string
	Join    string
	Opacity float32
	Visible bool
}

// CornerRadius holds four independent corner radii.
type CornerRadius struct {
	TopLeft     float32
	TopRight    float32
	BottomRight float32
	BottomLeft  float32
}

// Uniform creates a CornerRadius with all four corners equal.
func Uniform(r float32) CornerRadius {
	return CornerRadius{r, r, r, r}
}

// IsZero reports whether no corner is rounded.
func (c CornerRadius) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomRight == 0 && c.BottomLeft == 0
}

// IsUniform reports whether all four corners share one radius.
func (c CornerRadius) IsUniform() bool {
	return c.TopLeft == c.TopRight && c.TopRight == c.BottomRight && c.BottomRight == c.BottomLeft
}

// Max returns the largest of the four radii.
func (c CornerRadius) Max() float32 {
	m := c.TopLeft
	if c.TopRight > m {
		m = c.TopRight
	}
	if c.BottomRight > m {
		m = c.BottomRight
	}
	if c.BottomLeft > m {
		m = c.BottomLeft
	}
	return m
}

// TextStyle is the resolved typography of a text node. Color is the
// first solid style-level fill, defaulting to opaque black.
type TextStyle struct {
	FontFamily string
	FontSize   float32
	FontWeight int
	LineHeight float32
	AlignH     string // "left", "center", "right", "justified"
	AlignV     string // "top", "center", "bottom"
	Color      geom.Color
}
