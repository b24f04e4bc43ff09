package gen

import (
	"fmt"

	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// ResizeBody emits the runtime geometry logic for one component's
// visible children. The container's live bounds are exposed to the
// generated code as `bounds`.
//
// Strategy selection: an auto-layout container translates to a flex
// configuration covering the whole child set; otherwise each child is
// placed proportionally (no declared constraints) or by constraint
// algebra (constraints present). Promoted sub-components receive
// position and size here even though their interior drawing is
// generated separately.
func ResizeBody(root ir.Node, h *Hierarchy) []string {
	e := &Emitter{}

	if f, ok := root.(*ir.Frame); ok && f.Layout != nil {
		resizeFlex(e, f, h)
		return e.Finish()
	}

	base := root.Base()
	for _, child := range ir.ChildrenOf(root) {
		cb := child.Base()
		if !cb.Visible {
			continue
		}
		target := h.Ident(cb.ID)
		if cb.Constraints.IsZero() {
			resizeProportional(e, target, base.Bounds, cb)
		} else {
			resizeConstrained(e, target, base.Bounds, cb)
		}
	}
	return e.Finish()
}

// resizeProportional emits a bounds computation where every edge keeps
// its design-time proportion of the parent. A zero parent dimension
// yields a zero proportion rather than dividing by zero.
func resizeProportional(e *Emitter, target string, parent geom.Rect, child *ir.NodeBase) {
	xp := prop(child.Position.X, parent.Width)
	yp := prop(child.Position.Y, parent.Height)
	wp := prop(child.Bounds.Width, parent.Width)
	hp := prop(child.Bounds.Height, parent.Height)

	e.Stmt("%s.setBounds(Rect(bounds.width() * %s, bounds.height() * %s, bounds.width() * %s, bounds.height() * %s));",
		target, geom.Float(xp), geom.Float(yp), geom.Float(wp), geom.Float(hp))
}

// prop is the design-time proportion of value against a parent
// dimension, 0 when the dimension is 0.
func prop(value, parentDim float32) float32 {
	if parentDim == 0 {
		return 0
	}
	return value / parentDim
}

// resizeConstrained resolves each axis independently and emits one
// setBounds with the combined expressions.
func resizeConstrained(e *Emitter, target string, parent geom.Rect, child *ir.NodeBase) {
	x, w := horizontalExprs(parent, child)
	y, hgt := verticalExprs(parent, child)
	e.Stmt("%s.setBounds(Rect(%s, %s, %s, %s));", target, x, y, w, hgt)
}

// horizontalExprs resolves the horizontal constraint to (x, width)
// expressions over the live `bounds`.
func horizontalExprs(parent geom.Rect, child *ir.NodeBase) (string, string) {
	relX := child.Position.X
	w := child.Bounds.Width

	switch child.Constraints.Horizontal {
	case ir.HRight:
		// Trailing margin fixed at design time.
		margin := parent.Width - relX - w
		return fmt.Sprintf("bounds.width() - %s - %s", geom.Float(margin), geom.Float(w)), geom.Float(w)

	case ir.HCenter:
		// Midpoint offset from the parent midpoint is fixed.
		offset := (relX + w/2) - parent.Width/2
		return fmt.Sprintf("bounds.width() * 0.5000f + %s - %s", geom.Float(offset), geom.Float(w/2)), geom.Float(w)

	case ir.HLeftRight:
		// Both margins fixed; the child stretches.
		right := parent.Width - relX - w
		return geom.Float(relX),
			fmt.Sprintf("bounds.width() - %s - %s", geom.Float(relX), geom.Float(right))

	case ir.HScale:
		return fmt.Sprintf("bounds.width() * %s", geom.Float(prop(relX, parent.Width))),
			fmt.Sprintf("bounds.width() * %s", geom.Float(prop(w, parent.Width)))

	default: // HLeft or unspecified axis
		return geom.Float(relX), geom.Float(w)
	}
}

// verticalExprs is the vertical analog of horizontalExprs.
func verticalExprs(parent geom.Rect, child *ir.NodeBase) (string, string) {
	relY := child.Position.Y
	hgt := child.Bounds.Height

	switch child.Constraints.Vertical {
	case ir.VBottom:
		margin := parent.Height - relY - hgt
		return fmt.Sprintf("bounds.height() - %s - %s", geom.Float(margin), geom.Float(hgt)), geom.Float(hgt)

	case ir.VCenter:
		offset := (relY + hgt/2) - parent.Height/2
		return fmt.Sprintf("bounds.height() * 0.5000f + %s - %s", geom.Float(offset), geom.Float(hgt/2)), geom.Float(hgt)

	case ir.VTopBottom:
		bottom := parent.Height - relY - hgt
		return geom.Float(relY),
			fmt.Sprintf("bounds.height() - %s - %s", geom.Float(relY), geom.Float(bottom))

	case ir.VScale:
		return fmt.Sprintf("bounds.height() * %s", geom.Float(prop(relY, parent.Height))),
			fmt.Sprintf("bounds.height() * %s", geom.Float(prop(hgt, parent.Height)))

	default: // VTop or unspecified axis
		return geom.Float(relY), geom.Float(hgt)
	}
}

// resizeFlex translates the auto-layout descriptor into a flex
// configuration over the container's live bounds.
func resizeFlex(e *Emitter, f *ir.Frame, h *Hierarchy) {
	l := f.Layout

	e.Stmt("FlexLayout flex(FlexAxis::%s, FlexJustify::%s, FlexAlign::%s);",
		axisToken(l.Axis), justifyToken(l.PrimaryAlign), alignItemsToken(l.CounterAlign))
	if l.Wrap {
		e.Stmt("flex.setWrap(true);")
	}

	first := true
	for _, child := range f.Children {
		cb := child.Base()
		if !cb.Visible {
			continue
		}

		// Leading margin applies to every item after the first.
		margin := float32(0)
		if !first {
			margin = l.ItemSpacing
		}
		first = false

		grow := cb.LayoutGrow
		stretch := cb.LayoutAlign == "STRETCH" || cb.LayoutAlign == "stretch"

		e.Stmt("flex.addItem(%s, %s, %s, %s, %t, %s);",
			h.Ident(cb.ID),
			geom.Float(cb.Bounds.Width), geom.Float(cb.Bounds.Height),
			geom.Float(grow), stretch, geom.Float(margin))
	}

	// The bounds reduction is elided entirely when no padding is set.
	if l.HasPadding() {
		e.Stmt("flex.apply(bounds.inset(%s, %s, %s, %s));",
			geom.Float(l.PaddingLeft), geom.Float(l.PaddingTop),
			geom.Float(l.PaddingRight), geom.Float(l.PaddingBottom))
	} else {
		e.Stmt("flex.apply(bounds);")
	}
}

func axisToken(a ir.Axis) string {
	if a == ir.AxisVertical {
		return "Vertical"
	}
	return "Horizontal"
}

// justifyToken maps the primary four-way alignment.
func justifyToken(a ir.Align) string {
	switch a {
	case ir.AlignCenter:
		return "Center"
	case ir.AlignMax:
		return "End"
	case ir.AlignSpaceBetween:
		return "SpaceBetween"
	default:
		return "Start"
	}
}

// alignItemsToken maps the counter-axis alignment. Baseline has no flex
// analog and degrades to stretch.
func alignItemsToken(a ir.Align) string {
	switch a {
	case ir.AlignCenter:
		return "Center"
	case ir.AlignMax:
		return "End"
	case ir.AlignBaseline:
		return "Stretch"
	case ir.AlignMin:
		return "Start"
	default:
		return "Stretch"
	}
}
