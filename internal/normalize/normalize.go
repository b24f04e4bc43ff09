package normalize

import (
	"github.com/loomgen/loom/internal/figma"
	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// Document normalizes one fetched file. Canvas children become pages;
// anything else directly under the document root is dropped.
func Document(f *figma.File) *ir.Document {
	doc := &ir.Document{Name: f.Name}
	if f.Document == nil {
		return doc
	}
	doc.Pages = mapKeep(f.Document.Children, func(raw *figma.Node) (ir.Page, bool) {
		if raw == nil || raw.Type != "CANVAS" || !rawVisible(raw) {
			return ir.Page{}, false
		}
		return Page(raw), true
	})
	return doc
}

// Page normalizes one canvas node. Top-level nodes have no parent
// bounds, so their relative position is (0,0).
func Page(raw *figma.Node) ir.Page {
	return ir.Page{
		ID:   raw.ID,
		Name: raw.Name,
		Nodes: mapKeep(raw.Children, func(child *figma.Node) (ir.Node, bool) {
			n := Node(child, nil)
			return n, n != nil
		}),
	}
}

// Node converts one raw node (plus the parent's resolved absolute
// bounds, or nil for a root) into zero-or-one IR node. Invisible nodes,
// structural roots and unrepresentable kinds normalize to nil.
func Node(raw *figma.Node, parent *geom.Rect) ir.Node {
	if raw == nil || !rawVisible(raw) {
		return nil
	}

	switch raw.Type {
	case "DOCUMENT", "CANVAS":
		// Structural roots carry no geometry of their own.
		return nil

	case "FRAME", "COMPONENT", "COMPONENT_SET", "INSTANCE":
		return frame(raw, parent)

	case "GROUP":
		base := base(raw, parent)
		return &ir.Group{
			NodeBase: base,
			Children: children(raw, base.Bounds),
		}

	case "RECTANGLE":
		return &ir.Rectangle{
			NodeBase:     base(raw, parent),
			CornerRadius: cornerRadius(raw),
		}

	case "ELLIPSE":
		return &ir.Ellipse{NodeBase: base(raw, parent)}

	case "TEXT":
		return &ir.Text{
			NodeBase:   base(raw, parent),
			Characters: raw.Characters,
			Style:      textStyle(raw.Style),
		}

	case "VECTOR", "LINE", "BOOLEAN_OPERATION", "STAR", "REGULAR_POLYGON":
		return &ir.Vector{
			NodeBase: base(raw, parent),
			Paths:    pathEntries(raw),
		}

	default:
		// Unknown kinds are dropped, never an error.
		return nil
	}
}

// frame builds a Frame from any of the container-with-identity kinds.
func frame(raw *figma.Node, parent *geom.Rect) *ir.Frame {
	b := base(raw, parent)
	f := &ir.Frame{
		NodeBase:     b,
		Children:     children(raw, b.Bounds),
		CornerRadius: cornerRadius(raw),
		ClipsContent: raw.ClipsContent != nil && *raw.ClipsContent,
		Layout:       autoLayout(raw),
	}
	switch raw.Type {
	case "COMPONENT", "COMPONENT_SET":
		f.Origin = ir.OriginComponent
	case "INSTANCE":
		f.Origin = ir.OriginInstance
	default:
		f.Origin = ir.OriginFrame
	}
	return f
}

// children normalizes and filters a raw child list in one pass,
// preserving order.
func children(raw *figma.Node, bounds geom.Rect) []ir.Node {
	return mapKeep(raw.Children, func(child *figma.Node) (ir.Node, bool) {
		n := Node(child, &bounds)
		return n, n != nil
	})
}

// base resolves the fields shared by every node kind.
func base(raw *figma.Node, parent *geom.Rect) ir.NodeBase {
	bounds := bounds(raw)

	pos := geom.Vec2{}
	if parent != nil {
		pos = bounds.Origin().Sub(parent.Origin())
	}

	return ir.NodeBase{
		ID:          raw.ID,
		Name:        raw.Name,
		Visible:     true,
		Opacity:     opacity(raw.Opacity),
		Bounds:      bounds,
		Position:    pos,
		Fills:       paints(raw.Fills),
		Strokes:     strokes(raw),
		Effects:     effects(raw.Effects),
		BlendMode:   raw.BlendMode,
		Constraints: constraints(raw.Constraints),
		LayoutGrow:  float32(raw.LayoutGrow),
		LayoutAlign: raw.LayoutAlign,
	}
}

// bounds prefers the explicit absolute box, then a local size at
// origin, then a zero rect.
func bounds(raw *figma.Node) geom.Rect {
	if b := raw.AbsoluteBoundingBox; b != nil {
		return geom.Rect{
			X:      float32(b.X),
			Y:      float32(b.Y),
			Width:  float32(b.Width),
			Height: float32(b.Height),
		}
	}
	if s := raw.Size; s != nil {
		return geom.Rect{Width: float32(s.X), Height: float32(s.Y)}
	}
	return geom.Rect{}
}

// opacity defaults to fully opaque and clamps to [0, 1].
func opacity(v *float64) float32 {
	if v == nil {
		return 1
	}
	switch {
	case *v < 0:
		return 0
	case *v > 1:
		return 1
	default:
		return float32(*v)
	}
}

// rawVisible treats an absent visibility flag as visible.
func rawVisible(raw *figma.Node) bool {
	return raw.Visible == nil || *raw.Visible
}

// pathEntries collects the vector path data of a node, fills first.
func pathEntries(raw *figma.Node) []string {
	entries := mapKeep(raw.FillGeometry, geometryPath)
	return append(entries, mapKeep(raw.StrokeGeometry, geometryPath)...)
}

func geometryPath(g figma.Geometry) (string, bool) {
	return g.Path, g.Path != ""
}
