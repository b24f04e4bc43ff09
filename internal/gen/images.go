package gen

import "github.com/loomgen/loom/internal/ir"

// CollectImages returns the image refs used anywhere in the component's
// non-promoted subtree, deduplicated, in first-use order. Promoted
// subtrees report their refs through their own unit.
func CollectImages(root ir.Node, h *Hierarchy) []string {
	var refs []string
	seen := make(map[string]bool)

	var walk func(n ir.Node, isRoot bool)
	walk = func(n ir.Node, isRoot bool) {
		base := n.Base()
		if !base.Visible {
			return
		}
		if !isRoot && h.IsPromoted(base.ID) {
			return
		}
		for _, fill := range base.Fills {
			if img, ok := fill.(ir.ImagePaint); ok && !seen[img.Ref] {
				seen[img.Ref] = true
				refs = append(refs, img.Ref)
			}
		}
		for _, child := range ir.ChildrenOf(n) {
			walk(child, false)
		}
	}
	walk(root, true)
	return refs
}
