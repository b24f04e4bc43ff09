package ir

import "github.com/loomgen/loom/internal/geom"

// Node is one normalized design node.
//
// This is a sealed interface - only Frame, Group, Rectangle, Ellipse,
// Text and Vector implement it. Consumers match exhaustively with type
// switches; the Base accessor exposes the fields shared by every kind.
type Node interface {
	node() // Marker method - seals interface to this package

	// Base returns the shared node fields.
	Base() *NodeBase
}

// NodeBase holds the fields every node kind shares.
//
// Bounds is the absolute box in design space; Position is relative to
// the parent's absolute origin. The normalizer guarantees
// Bounds.X == parentBounds.X + Position.X (and the Y analog).
type NodeBase struct {
	ID      string
	Name    string
	Visible bool
	Opacity float32 // [0, 1]

	Bounds   geom.Rect
	Position geom.Vec2

	Fills   []Paint
	Strokes []Stroke
	Effects []Effect

	BlendMode string

	// Constraints apply when the parent is not an auto-layout container.
	Constraints Constraints

	// LayoutGrow and LayoutAlign apply when the parent is an
	// auto-layout container.
	LayoutGrow  float32
	LayoutAlign string
}

// Base implements Node for every kind embedding NodeBase.
func (b *NodeBase) Base() *NodeBase { return b }

// FrameOrigin distinguishes the source kinds that normalize to Frame.
// Components and instances are promoted to their own generated units by
// the hierarchy builder; plain frames are too.
type FrameOrigin int

const (
	OriginFrame FrameOrigin = iota
	OriginComponent
	OriginInstance
)

// Frame is a container with its own identity: corner rounding, optional
// clipping and an optional auto-layout descriptor.
type Frame struct {
	NodeBase
	Children     []Node
	CornerRadius CornerRadius
	ClipsContent bool
	Layout       *AutoLayout // nil unless the source declares an axis mode
	Origin       FrameOrigin
}

func (*Frame) node() {}

// Group is a transparent container: it contributes no geometry of its
// own beyond its bounds and paints.
type Group struct {
	NodeBase
	Children []Node
}

func (*Group) node() {}

// Rectangle is a rectangular shape with independent corner radii.
type Rectangle struct {
	NodeBase
	CornerRadius CornerRadius
}

func (*Rectangle) node() {}

// Ellipse is an elliptical shape filling its bounds.
type Ellipse struct {
	NodeBase
}

func (*Ellipse) node() {}

// Text is a text run with a resolved style.
type Text struct {
	NodeBase
	Characters string
	Style      TextStyle
}

func (*Text) node() {}

// Vector is arbitrary geometry given as path data strings, one entry
// per independent path.
type Vector struct {
	NodeBase
	Paths []string
}

func (*Vector) node() {}

// ChildrenOf returns the ordered child list of n, or nil for leaf kinds.
func ChildrenOf(n Node) []Node {
	switch t := n.(type) {
	case *Frame:
		return t.Children
	case *Group:
		return t.Children
	default:
		return nil
	}
}

// Document is one normalized design document.
type Document struct {
	Name  string
	Pages []Page
}

// Page is an ordered list of top-level nodes.
type Page struct {
	ID    string
	Name  string
	Nodes []Node
}
