package ir

import "github.com/loomgen/loom/internal/geom"

// Paint is one fill entry.
//
// This is a sealed interface - only Solid, LinearGradient,
// RadialGradient and ImagePaint implement it. Fill lists are ordered;
// each visible entry contributes its own drawing block in array order.
type Paint interface {
	paint() // Marker method - seals interface to this package

	// PaintVisible reports whether this entry draws at all.
	PaintVisible() bool
}

// Solid is a single-color fill.
type Solid struct {
	Color   geom.Color
	Visible bool
}

func (Solid) paint() {}

// PaintVisible implements Paint.
func (s Solid) PaintVisible() bool { return s.Visible }

// GradientStop is one color stop at a position in [0, 1].
// Stop lists are non-decreasing in position.
type GradientStop struct {
	Position float32
	Color    geom.Color
}

// LinearGradient interpolates stops along the segment Start→End.
// Fewer than two stops renders nothing; the normalizer drops such
// entries before they reach a generator.
type LinearGradient struct {
	Start   geom.Vec2
	End     geom.Vec2
	Stops   []GradientStop
	Visible bool
}

func (LinearGradient) paint() {}

// PaintVisible implements Paint.
func (g LinearGradient) PaintVisible() bool { return g.Visible }

// RadialGradient interpolates stops outward from Center to Radius.
type RadialGradient struct {
	Center  geom.Vec2
	Radius  float32
	Stops   []GradientStop
	Visible bool
}

func (RadialGradient) paint() {}

// PaintVisible implements Paint.
func (g RadialGradient) PaintVisible() bool { return g.Visible }

// ScaleMode is how an image paint maps into its node bounds.
type ScaleMode string

const (
	ScaleFill    ScaleMode = "fill"
	ScaleFit     ScaleMode = "fit"
	ScaleStretch ScaleMode = "stretch"
	ScaleTile    ScaleMode = "tile"
)

// ImagePaint fills the node with an externally stored image.
// Ref is the opaque handle used to fetch the image bytes.
type ImagePaint struct {
	Ref       string
	ScaleMode ScaleMode
	Visible   bool
}

func (ImagePaint) paint() {}

// PaintVisible implements Paint.
func (p ImagePaint) PaintVisible() bool { return p.Visible }
