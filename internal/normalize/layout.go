package normalize

import (
	"github.com/loomgen/loom/internal/figma"
	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// autoLayout builds the auto-layout descriptor, or nil unless the
// source explicitly declares a non-"NONE" axis mode.
func autoLayout(raw *figma.Node) *ir.AutoLayout {
	var axis ir.Axis
	switch raw.LayoutMode {
	case "HORIZONTAL":
		axis = ir.AxisHorizontal
	case "VERTICAL":
		axis = ir.AxisVertical
	default:
		return nil
	}

	return &ir.AutoLayout{
		Axis:          axis,
		PrimaryAlign:  align(raw.PrimaryAxisAlignItems),
		CounterAlign:  align(raw.CounterAxisAlignItems),
		PaddingLeft:   float32(raw.PaddingLeft),
		PaddingRight:  float32(raw.PaddingRight),
		PaddingTop:    float32(raw.PaddingTop),
		PaddingBottom: float32(raw.PaddingBottom),
		ItemSpacing:   float32(raw.ItemSpacing),
		PrimarySizing: sizing(raw.PrimaryAxisSizingMode),
		CounterSizing: sizing(raw.CounterAxisSizingMode),
		Wrap:          raw.LayoutWrap == "WRAP",
	}
}

// align defaults to leading alignment.
func align(raw string) ir.Align {
	switch raw {
	case "CENTER":
		return ir.AlignCenter
	case "MAX":
		return ir.AlignMax
	case "SPACE_BETWEEN":
		return ir.AlignSpaceBetween
	case "BASELINE":
		return ir.AlignBaseline
	default:
		return ir.AlignMin
	}
}

// sizing defaults to fixed.
func sizing(raw string) ir.SizingMode {
	if raw == "AUTO" {
		return ir.SizingAuto
	}
	return ir.SizingFixed
}

// constraints maps the raw pinning declaration; absent stays the zero
// value, which selects proportional placement downstream.
func constraints(raw *figma.Constraints) ir.Constraints {
	if raw == nil {
		return ir.Constraints{}
	}
	var c ir.Constraints
	switch raw.Horizontal {
	case "LEFT":
		c.Horizontal = ir.HLeft
	case "RIGHT":
		c.Horizontal = ir.HRight
	case "CENTER":
		c.Horizontal = ir.HCenter
	case "LEFT_RIGHT":
		c.Horizontal = ir.HLeftRight
	case "SCALE":
		c.Horizontal = ir.HScale
	}
	switch raw.Vertical {
	case "TOP":
		c.Vertical = ir.VTop
	case "BOTTOM":
		c.Vertical = ir.VBottom
	case "CENTER":
		c.Vertical = ir.VCenter
	case "TOP_BOTTOM":
		c.Vertical = ir.VTopBottom
	case "SCALE":
		c.Vertical = ir.VScale
	}
	return c
}

// textStyle resolves typography with documented defaults. The text
// color is the first visible solid entry in the style-level fill list,
// defaulting to opaque black.
func textStyle(raw *figma.TypeStyle) ir.TextStyle {
	style := ir.TextStyle{
		FontFamily: "sans-serif",
		FontSize:   12,
		FontWeight: 400,
		AlignH:     "left",
		AlignV:     "top",
		Color:      geom.Black,
	}
	if raw == nil {
		return style
	}

	if raw.FontFamily != "" {
		style.FontFamily = raw.FontFamily
	}
	if raw.FontSize > 0 {
		style.FontSize = float32(raw.FontSize)
	}
	if raw.FontWeight > 0 {
		style.FontWeight = raw.FontWeight
	}
	style.LineHeight = float32(raw.LineHeightPx)

	switch raw.TextAlignHorizontal {
	case "CENTER":
		style.AlignH = "center"
	case "RIGHT":
		style.AlignH = "right"
	case "JUSTIFIED":
		style.AlignH = "justified"
	}
	switch raw.TextAlignVertical {
	case "CENTER":
		style.AlignV = "center"
	case "BOTTOM":
		style.AlignV = "bottom"
	}

	for _, p := range raw.Fills {
		if p.Type == "SOLID" && p.Color != nil && paintVisible(p) {
			style.Color = color(*p.Color, p.Opacity)
			break
		}
	}
	return style
}

// cornerRadius prefers per-corner radii when all four are present,
// otherwise broadcasts the scalar radius to every corner.
func cornerRadius(raw *figma.Node) ir.CornerRadius {
	if r := raw.RectangleCornerRadii; len(r) == 4 {
		return ir.CornerRadius{
			TopLeft:     float32(r[0]),
			TopRight:    float32(r[1]),
			BottomRight: float32(r[2]),
			BottomLeft:  float32(r[3]),
		}
	}
	if raw.CornerRadius != nil {
		return ir.Uniform(float32(*raw.CornerRadius))
	}
	return ir.CornerRadius{}
}
