package gen

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/loomgen/loom/internal/ir"
)

// Hierarchy is the pre-computed partition of a component subtree into
// inline content and promoted sub-components.
//
// It is computed once per component root and passed explicitly to both
// generators: the paint generator stops recursion at promoted children,
// the resize generator still positions them as opaque boxes, and the
// member-registration pass emits their ownership and initialization.
type Hierarchy struct {
	Root ir.Node

	// Units lists every promoted node in depth-first post-order, so a
	// child unit is fully generated before any parent referencing it.
	Units []*ir.Frame

	promoted map[string]bool
	idents   map[string]string
	types    map[string]string
}

var titleCaser = cases.Title(language.English)

// BuildHierarchy partitions root's subtree. Any visible descendant
// frame (plain, component or instance) reached through inline content
// is promoted to its own generated unit; recursion does not descend
// into promoted subtrees except to collect their own nested units.
func BuildHierarchy(root ir.Node) *Hierarchy {
	h := &Hierarchy{
		Root:     root,
		promoted: make(map[string]bool),
		idents:   make(map[string]string),
		types:    make(map[string]string),
	}
	idents := newNamer()
	types := newNamer()
	h.types[root.Base().ID] = types.unique(typeName(root.Base().Name))
	h.walk(root, idents, types)
	return h
}

// walk assigns identifiers in tree order and collects promoted units
// in post-order. Type names are assigned only where a generated type
// exists (the root and every promoted frame), through their own taken
// map so duplicate layer names cannot collapse two units into one
// output file.
func (h *Hierarchy) walk(n ir.Node, idents, types *namer) {
	base := n.Base()
	h.idents[base.ID] = idents.unique(lowerCamel(base.Name))

	for _, child := range ir.ChildrenOf(n) {
		cb := child.Base()
		if f, ok := child.(*ir.Frame); ok && cb.Visible {
			h.promoted[cb.ID] = true
			h.types[cb.ID] = types.unique(typeName(cb.Name))
			h.walk(child, idents, types)
			// Post-order: the child's own nested units were appended
			// by the recursive walk before the child itself.
			h.Units = append(h.Units, f)
			continue
		}
		h.walk(child, idents, types)
	}
}

// IsPromoted reports whether the node with the given id generates as a
// separate sub-component.
func (h *Hierarchy) IsPromoted(id string) bool {
	return h.promoted[id]
}

// Ident returns the deterministic member identifier derived for a node.
// The same identifier is reused across member declaration, constructor
// wiring and both generator outputs.
func (h *Hierarchy) Ident(id string) string {
	return h.idents[id]
}

// TypeName returns the generated type name for the component root or a
// promoted node. Type names are collision-free across one hierarchy, so
// every unit maps to its own output file.
func (h *Hierarchy) TypeName(id string) string {
	return h.types[id]
}

// namer hands out collision-free names by numeric suffixing.
// Derivation is deterministic: identical trees name identically.
type namer struct {
	taken map[string]int
}

func newNamer() *namer {
	return &namer{taken: make(map[string]int)}
}

// unique returns name as-is on first use, then name2, name3, ...
func (nm *namer) unique(name string) string {
	n := nm.taken[name]
	nm.taken[name] = n + 1
	if n == 0 {
		return name
	}
	return name + strconv.Itoa(n+1)
}

// lowerCamel reduces an arbitrary design-layer name to a lowerCamel
// identifier. Empty or fully non-alphanumeric names become "node".
func lowerCamel(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "node"
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	ident := b.String()
	if unicode.IsDigit(rune(ident[0])) {
		ident = "n" + ident
	}
	return ident
}

// typeName is the UpperCamel form used for generated component types.
func typeName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "Component"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	t := b.String()
	if unicode.IsDigit(rune(t[0])) {
		t = "C" + t
	}
	return t
}

// splitWords breaks a layer name on any non-alphanumeric run.
func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
