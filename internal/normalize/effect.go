package normalize

import (
	"github.com/loomgen/loom/internal/figma"
	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// effects converts a raw effect list. Unknown effect types are dropped.
func effects(raw []figma.Effect) []ir.Effect {
	return mapKeep(raw, effect)
}

func effect(e figma.Effect) (ir.Effect, bool) {
	visible := e.Visible == nil || *e.Visible

	switch e.Type {
	case "DROP_SHADOW":
		return ir.DropShadow{
			Color:   effectColor(e.Color),
			Offset:  effectOffset(e.Offset),
			Radius:  float32(e.Radius),
			Visible: visible,
		}, true

	case "INNER_SHADOW":
		return ir.InnerShadow{
			Color:   effectColor(e.Color),
			Offset:  effectOffset(e.Offset),
			Radius:  float32(e.Radius),
			Visible: visible,
		}, true

	case "LAYER_BLUR":
		return ir.LayerBlur{Radius: float32(e.Radius), Visible: visible}, true

	case "BACKGROUND_BLUR":
		return ir.BackgroundBlur{Radius: float32(e.Radius), Visible: visible}, true

	default:
		return nil, false
	}
}

// effectColor defaults an absent shadow color to half-transparent black.
func effectColor(c *figma.Color) geom.Color {
	if c == nil {
		return geom.Color{A: 0.5}
	}
	return color(*c, nil)
}

func effectOffset(v *figma.Vec) geom.Vec2 {
	if v == nil {
		return geom.Vec2{}
	}
	return vec(*v)
}
