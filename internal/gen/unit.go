package gen

import (
	"fmt"

	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// Member is one owned child object of a generated component: a promoted
// sub-component or a recognized leaf control. Constructor holds the
// ordered initialization statements for the component's setup block.
type Member struct {
	Name        string
	TypeHint    string
	Constructor []string
}

// Unit is one fully generated component: the paint and resize bodies,
// the member registrations, the identifiers of non-member positioned
// boxes, and the deduplicated image refs of the inline subtree.
type Unit struct {
	Name       string
	Root       *ir.Frame
	PaintBody  []string
	ResizeBody []string
	Members    []Member
	Parts      []string
	Images     []string
}

// Component generates the unit for root and every promoted descendant,
// in depth-first post-order: each sub-unit precedes any unit that
// instantiates it.
func Component(root *ir.Frame) []*Unit {
	h := BuildHierarchy(root)

	var units []*Unit
	for _, sub := range h.Units {
		units = append(units, unit(sub, h))
	}
	return append(units, unit(root, h))
}

// Generate produces the units of every top-level frame on every page
// of a normalized document, in document order.
func Generate(doc *ir.Document) []*Unit {
	var units []*Unit
	for _, page := range doc.Pages {
		for _, n := range page.Nodes {
			if f, ok := n.(*ir.Frame); ok && f.Visible {
				units = append(units, Component(f)...)
			}
		}
	}
	return units
}

// unit assembles one component from an already computed hierarchy.
func unit(root *ir.Frame, h *Hierarchy) *Unit {
	u := &Unit{
		Name:       h.TypeName(root.ID),
		Root:       root,
		PaintBody:  PaintBody(root, h),
		ResizeBody: ResizeBody(root, h),
		Images:     CollectImages(root, h),
	}
	collectMembers(u, root, h)
	collectParts(u, root, h)
	return u
}

// collectMembers walks the inline subtree of root, registering promoted
// frames and text leaf controls in document order. Recursion stops at
// promoted nodes: their own members belong to their own unit.
//
// The resize body positions direct children only, so members reached
// through inline containers get their design-time bounds assigned in
// the constructor.
func collectMembers(u *Unit, root *ir.Frame, h *Hierarchy) {
	walkMembers(u, root, root.Bounds, true, h)
}

func walkMembers(u *Unit, n ir.Node, rootBounds geom.Rect, direct bool, h *Hierarchy) {
	for _, child := range ir.ChildrenOf(n) {
		cb := child.Base()
		if !cb.Visible {
			continue
		}

		if h.IsPromoted(cb.ID) {
			ident := h.Ident(cb.ID)
			typ := h.TypeName(cb.ID)
			ctor := []string{fmt.Sprintf("%s = addChild<%s>();", ident, typ)}
			if !direct {
				ctor = append(ctor, designBounds(ident, cb.Bounds, rootBounds))
			}
			u.Members = append(u.Members, Member{
				Name:        ident,
				TypeHint:    typ,
				Constructor: ctor,
			})
			continue
		}

		if txt, ok := child.(*ir.Text); ok {
			ident := h.Ident(cb.ID)
			ctor := []string{
				fmt.Sprintf("%s = addChild<Label>();", ident),
				fmt.Sprintf("%s.setText(%q);", ident, txt.Characters),
			}
			if !direct {
				ctor = append(ctor, designBounds(ident, cb.Bounds, rootBounds))
			}
			u.Members = append(u.Members, Member{
				Name:        ident,
				TypeHint:    "Label",
				Constructor: ctor,
			})
		}

		walkMembers(u, child, rootBounds, false, h)
	}
}

// designBounds renders a fixed bounds assignment relative to the
// component origin.
func designBounds(ident string, bounds, rootBounds geom.Rect) string {
	rel := bounds.Translate(geom.Vec2{X: -rootBounds.X, Y: -rootBounds.Y})
	return fmt.Sprintf("%s.setBounds(%s);", ident, geom.FormatRect(rel))
}

// collectParts records the direct children the resize body positions
// that are not members, so the templating layer can declare their
// geometry boxes.
func collectParts(u *Unit, root *ir.Frame, h *Hierarchy) {
	member := make(map[string]bool, len(u.Members))
	for _, m := range u.Members {
		member[m.Name] = true
	}
	for _, child := range root.Children {
		cb := child.Base()
		if !cb.Visible {
			continue
		}
		if ident := h.Ident(cb.ID); !member[ident] {
			u.Parts = append(u.Parts, ident)
		}
	}
}
