package normalize

import (
	"github.com/loomgen/loom/internal/figma"
	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// paints converts a raw fill list. Unknown paint types and gradients
// without usable geometry are dropped; invisible entries are kept as
// invisible so array order stays meaningful, but contribute nothing
// downstream.
func paints(raw []figma.Paint) []ir.Paint {
	return mapKeep(raw, paint)
}

// paint converts one raw paint entry.
func paint(p figma.Paint) (ir.Paint, bool) {
	visible := paintVisible(p)

	switch p.Type {
	case "SOLID":
		if p.Color == nil {
			return nil, false
		}
		return ir.Solid{
			Color:   color(*p.Color, p.Opacity),
			Visible: visible,
		}, true

	case "GRADIENT_LINEAR":
		stops, ok := gradientStops(p.GradientStops)
		if !ok || len(p.GradientHandlePositions) < 2 {
			return nil, false
		}
		return ir.LinearGradient{
			Start:   vec(p.GradientHandlePositions[0]),
			End:     vec(p.GradientHandlePositions[1]),
			Stops:   stops,
			Visible: visible,
		}, true

	case "GRADIENT_RADIAL":
		stops, ok := gradientStops(p.GradientStops)
		if !ok || len(p.GradientHandlePositions) < 2 {
			return nil, false
		}
		center := vec(p.GradientHandlePositions[0])
		edge := vec(p.GradientHandlePositions[1])
		return ir.RadialGradient{
			Center:  center,
			Radius:  edge.Sub(center).Length(),
			Stops:   stops,
			Visible: visible,
		}, true

	case "IMAGE":
		if p.ImageRef == "" {
			return nil, false
		}
		return ir.ImagePaint{
			Ref:       p.ImageRef,
			ScaleMode: scaleMode(p.ScaleMode),
			Visible:   visible,
		}, true

	default:
		return nil, false
	}
}

// gradientStops converts a stop list. Fewer than two stops renders
// nothing, so the whole paint is dropped.
func gradientStops(raw []figma.GradientStop) ([]ir.GradientStop, bool) {
	if len(raw) < 2 {
		return nil, false
	}
	stops := make([]ir.GradientStop, len(raw))
	for i, s := range raw {
		stops[i] = ir.GradientStop{
			Position: float32(s.Position),
			Color:    color(s.Color, nil),
		}
	}
	return stops, true
}

// strokes pairs each solid stroke paint with the node-level stroke
// geometry fields. Non-solid stroke paints are dropped.
func strokes(raw *figma.Node) []ir.Stroke {
	weight := float32(1)
	if raw.StrokeWeight != nil {
		weight = float32(*raw.StrokeWeight)
	}
	if weight < 0 {
		weight = 0
	}
	align := strokeAlign(raw.StrokeAlign)

	return mapKeep(raw.Strokes, func(p figma.Paint) (ir.Stroke, bool) {
		if p.Type != "SOLID" || p.Color == nil {
			return ir.Stroke{}, false
		}
		op := float32(1)
		if p.Opacity != nil {
			op = float32(*p.Opacity)
		}
		return ir.Stroke{
			Color:   color(*p.Color, nil),
			Weight:  weight,
			Align:   align,
			Cap:     raw.StrokeCap,
			Join:    raw.StrokeJoin,
			Opacity: op,
			Visible: paintVisible(p),
		}, true
	})
}

func strokeAlign(raw string) ir.StrokeAlign {
	switch raw {
	case "INSIDE":
		return ir.StrokeInside
	case "OUTSIDE":
		return ir.StrokeOutside
	default:
		return ir.StrokeCenter
	}
}

func scaleMode(raw string) ir.ScaleMode {
	switch raw {
	case "FIT":
		return ir.ScaleFit
	case "STRETCH":
		return ir.ScaleStretch
	case "TILE":
		return ir.ScaleTile
	default:
		return ir.ScaleFill
	}
}

func paintVisible(p figma.Paint) bool {
	return p.Visible == nil || *p.Visible
}

// color converts a raw color, folding an entry-level opacity into the
// alpha channel.
func color(c figma.Color, opacity *float64) geom.Color {
	out := geom.Color{
		R: float32(c.R),
		G: float32(c.G),
		B: float32(c.B),
		A: float32(c.A),
	}
	if opacity != nil {
		out = out.WithAlpha(float32(*opacity))
	}
	return out
}

func vec(v figma.Vec) geom.Vec2 {
	return geom.Vec2{X: float32(v.X), Y: float32(v.Y)}
}
