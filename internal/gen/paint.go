package gen

import (
	"fmt"
	"strings"

	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
	"github.com/loomgen/loom/internal/pathdata"
)

// PaintBody emits the ordered drawing statements for one component's
// subtree. Promoted descendants are skipped: their interior is drawn by
// their own generated unit, and the resize body positions them.
//
// Per visible node the order is fixed: opacity scope, drop shadows,
// own shape fills, inner shadows, blur advisories, strokes, children,
// opacity scope close. Reordering any of these changes rendering.
func PaintBody(root ir.Node, h *Hierarchy) []string {
	e := &Emitter{}
	paintNode(e, root, h, true)
	return e.Finish()
}

// paintNode emits one node and its inline descendants. isRoot marks the
// component root, which is never treated as promoted relative to itself.
func paintNode(e *Emitter, n ir.Node, h *Hierarchy, isRoot bool) {
	base := n.Base()
	if !base.Visible {
		return
	}
	if !isRoot && h.IsPromoted(base.ID) {
		return
	}

	dimmed := base.Opacity < 1
	if dimmed {
		e.Open("opacity", "c.pushOpacity(%s, %s);", geom.FormatRect(base.Bounds), geom.Float(base.Opacity))
	}

	// Shadows first: anything drawn later must cover them.
	for _, eff := range base.Effects {
		if ds, ok := eff.(ir.DropShadow); ok && ds.Visible {
			e.Stmt("c.drawShadow(%s, %s, %s, %s);",
				geom.FormatRect(base.Bounds),
				geom.FormatColor(ds.Color),
				geom.FormatVec(ds.Offset),
				geom.Float(ds.Radius))
		}
	}

	paintShape(e, n)
	paintInnerShadows(e, base)
	paintBlurs(e, base)
	paintStrokes(e, n)

	for _, child := range ir.ChildrenOf(n) {
		paintNode(e, child, h, false)
	}

	if dimmed {
		e.Close("opacity", "c.popOpacity();")
	}
}

// paintShape emits the node's own geometry, one block per visible fill
// in array order.
func paintShape(e *Emitter, n ir.Node) {
	base := n.Base()

	switch t := n.(type) {
	case *ir.Frame:
		for _, fill := range base.Fills {
			if !fill.PaintVisible() {
				continue
			}
			setFill(e, fill)
			fillRounded(e, base.Bounds, t.CornerRadius)
		}

	case *ir.Rectangle:
		for _, fill := range base.Fills {
			if !fill.PaintVisible() {
				continue
			}
			setFill(e, fill)
			fillRounded(e, base.Bounds, t.CornerRadius)
		}

	case *ir.Ellipse:
		for _, fill := range base.Fills {
			if !fill.PaintVisible() {
				continue
			}
			setFill(e, fill)
			e.Stmt("c.fillEllipse(%s);", geom.FormatRect(base.Bounds))
		}

	case *ir.Text:
		paintText(e, t)

	case *ir.Vector:
		paintVector(e, t)

	case *ir.Group:
		// Groups have no geometry of their own.
	}
}

// fillRounded picks the fill call for a rectangular shape: plain rect,
// uniform rounded rect, or a rounded path with the maximum radius and
// four corner-enable flags when the radii differ.
func fillRounded(e *Emitter, bounds geom.Rect, r ir.CornerRadius) {
	switch {
	case r.IsZero():
		e.Stmt("c.fillRect(%s);", geom.FormatRect(bounds))
	case r.IsUniform():
		e.Stmt("c.fillRoundedRect(%s, %s);", geom.FormatRect(bounds), geom.Float(r.TopLeft))
	default:
		// The path uses one radius for every enabled corner. Max across
		// corners is a deliberate simplification, kept as-is.
		e.Stmt("c.fillRoundedRectPath(%s, %s, %s);",
			geom.FormatRect(bounds), geom.Float(r.Max()), cornerFlags(r))
	}
}

// strokeRounded is the outline analog of fillRounded.
func strokeRounded(e *Emitter, bounds geom.Rect, r ir.CornerRadius) {
	switch {
	case r.IsZero():
		e.Stmt("c.strokeRect(%s);", geom.FormatRect(bounds))
	case r.IsUniform():
		e.Stmt("c.strokeRoundedRect(%s, %s);", geom.FormatRect(bounds), geom.Float(r.TopLeft))
	default:
		e.Stmt("c.strokeRoundedRectPath(%s, %s, %s);",
			geom.FormatRect(bounds), geom.Float(r.Max()), cornerFlags(r))
	}
}

// cornerFlags renders the four corner-enable booleans in TL, TR, BR,
// BL order.
func cornerFlags(r ir.CornerRadius) string {
	return fmt.Sprintf("%t, %t, %t, %t",
		r.TopLeft > 0, r.TopRight > 0, r.BottomRight > 0, r.BottomLeft > 0)
}

// paintText emits font setup followed by a justified draw.
func paintText(e *Emitter, t *ir.Text) {
	s := t.Style
	e.Stmt("c.setFont(Font(%q, %s, %d));", s.FontFamily, geom.Float(s.FontSize), s.FontWeight)
	e.Stmt("c.setFillColor(%s);", geom.FormatColor(s.Color))
	e.Stmt("c.drawText(%s, %q, TextAlign::%s, TextVertical::%s);",
		geom.FormatRect(t.Bounds), t.Characters, alignToken(s.AlignH), alignToken(s.AlignV))
}

func alignToken(a string) string {
	if a == "" {
		return "Left"
	}
	return strings.ToUpper(a[:1]) + a[1:]
}

// paintVector emits one fill-then-stroke pass per path-data entry,
// each inside its own save/restore scope. The path parser resolves the
// entry to absolute commands.
func paintVector(e *Emitter, v *ir.Vector) {
	fill, hasFill := firstVisibleFill(v.Fills)
	stroke, hasStroke := firstVisibleStroke(v.Strokes)

	for _, data := range v.Paths {
		cmds := pathdata.Parse(data)
		if len(cmds) == 0 {
			continue
		}

		e.Open("path", "c.save();")
		e.Stmt("c.beginPath();")
		for _, cmd := range cmds {
			emitPathCommand(e, cmd)
		}
		if hasFill {
			setFill(e, fill)
			e.Stmt("c.fillPath();")
		}
		if hasStroke {
			setStroke(e, stroke)
			e.Stmt("c.strokePath();")
		}
		e.Close("path", "c.restore();")
	}
}

// emitPathCommand lowers one absolute path command to a canvas call.
func emitPathCommand(e *Emitter, cmd pathdata.Command) {
	switch c := cmd.(type) {
	case pathdata.MoveTo:
		e.Stmt("c.moveTo(%s);", geom.FormatVec(c.P))
	case pathdata.LineTo:
		e.Stmt("c.lineTo(%s);", geom.FormatVec(c.P))
	case pathdata.CubicTo:
		e.Stmt("c.cubicTo(%s, %s, %s);", geom.FormatVec(c.C1), geom.FormatVec(c.C2), geom.FormatVec(c.P))
	case pathdata.QuadTo:
		e.Stmt("c.quadTo(%s, %s);", geom.FormatVec(c.C), geom.FormatVec(c.P))
	case pathdata.Close:
		e.Stmt("c.closePath();")
	}
}

// paintInnerShadows approximates each visible inner shadow. The canvas
// has no inset-shadow primitive, so the node bounds clip an outer
// shadow cast by a box expanded by the blur radius and shifted by the
// shadow offset; only the inward part survives the clip.
func paintInnerShadows(e *Emitter, base *ir.NodeBase) {
	for _, eff := range base.Effects {
		is, ok := eff.(ir.InnerShadow)
		if !ok || !is.Visible {
			continue
		}
		expanded := base.Bounds.Expand(is.Radius).Translate(is.Offset)
		e.Open("clip", "c.save();")
		e.Stmt("c.clipRect(%s);", geom.FormatRect(base.Bounds))
		e.Stmt("c.drawShadow(%s, %s, %s, %s);",
			geom.FormatRect(expanded),
			geom.FormatColor(is.Color),
			geom.FormatVec(geom.Vec2{}),
			geom.Float(is.Radius))
		e.Close("clip", "c.restore();")
	}
}

// paintBlurs emits advisory markers for blur effects; no canvas
// primitive exists, so the intent is documented rather than computed.
func paintBlurs(e *Emitter, base *ir.NodeBase) {
	for _, eff := range base.Effects {
		switch b := eff.(type) {
		case ir.LayerBlur:
			if b.Visible {
				e.Comment("layer blur radius %s: no canvas primitive, not rendered", geom.Float(b.Radius))
			}
		case ir.BackgroundBlur:
			if b.Visible {
				e.Comment("background blur radius %s: no canvas primitive, not rendered", geom.Float(b.Radius))
			}
		}
	}
}

// paintStrokes emits one outline block per visible stroke, selecting
// the outline call by node kind and corner radius. Vector strokes were
// already drawn in the per-path pass.
func paintStrokes(e *Emitter, n ir.Node) {
	base := n.Base()
	for _, s := range base.Strokes {
		if !s.Visible {
			continue
		}
		setStroke(e, s)
		switch t := n.(type) {
		case *ir.Ellipse:
			e.Stmt("c.strokeEllipse(%s);", geom.FormatRect(base.Bounds))
		case *ir.Frame:
			strokeRounded(e, base.Bounds, t.CornerRadius)
		case *ir.Rectangle:
			strokeRounded(e, base.Bounds, t.CornerRadius)
		case *ir.Vector:
			// Handled per path entry.
		default:
			e.Stmt("c.strokeRect(%s);", geom.FormatRect(base.Bounds))
		}
	}
}

// setFill emits the paint-selection call for one fill entry.
func setFill(e *Emitter, p ir.Paint) {
	switch f := p.(type) {
	case ir.Solid:
		e.Stmt("c.setFillColor(%s);", geom.FormatColor(f.Color))
	case ir.LinearGradient:
		e.Stmt("c.setFillLinearGradient(%s, %s, %s);",
			geom.FormatVec(f.Start), geom.FormatVec(f.End), formatStops(f.Stops))
	case ir.RadialGradient:
		e.Stmt("c.setFillRadialGradient(%s, %s, %s);",
			geom.FormatVec(f.Center), geom.Float(f.Radius), formatStops(f.Stops))
	case ir.ImagePaint:
		e.Stmt("c.setFillImage(%q, ImageScale::%s);", f.Ref, scaleToken(f.ScaleMode))
	}
}

// setStroke emits the stroke-selection calls for one stroke entry.
func setStroke(e *Emitter, s ir.Stroke) {
	e.Stmt("c.setStrokeColor(%s);", geom.FormatColor(s.Color.WithAlpha(s.Opacity)))
	e.Stmt("c.setStrokeWidth(%s);", geom.Float(s.Weight))
}

// formatStops renders a gradient stop list literal.
func formatStops(stops []ir.GradientStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("Stop(%s, %s)", geom.Float(s.Position), geom.FormatColor(s.Color))
	}
	return "Stops({" + strings.Join(parts, ", ") + "})"
}

func scaleToken(m ir.ScaleMode) string {
	switch m {
	case ir.ScaleFit:
		return "Fit"
	case ir.ScaleStretch:
		return "Stretch"
	case ir.ScaleTile:
		return "Tile"
	default:
		return "Fill"
	}
}

// firstVisibleFill returns the first fill entry that draws.
func firstVisibleFill(fills []ir.Paint) (ir.Paint, bool) {
	for _, f := range fills {
		if f.PaintVisible() {
			return f, true
		}
	}
	return nil, false
}

// firstVisibleStroke returns the first stroke entry that draws.
func firstVisibleStroke(strokes []ir.Stroke) (ir.Stroke, bool) {
	for _, s := range strokes {
		if s.Visible {
			return s, true
		}
	}
	return ir.Stroke{}, false
}
