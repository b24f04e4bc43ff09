package gen

import (
	"strings"

	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

// testBase builds a visible, opaque NodeBase at the given absolute box
// with position relative to (0,0).
func testBase(id, name string, x, y, w, h float32) ir.NodeBase {
	return ir.NodeBase{
		ID:       id,
		Name:     name,
		Visible:  true,
		Opacity:  1,
		Bounds:   geom.Rect{X: x, Y: y, Width: w, Height: h},
		Position: geom.Vec2{X: x, Y: y},
	}
}

func solid(r, g, b float32) ir.Paint {
	return ir.Solid{Color: geom.Color{R: r, G: g, B: b, A: 1}, Visible: true}
}

// indexOf returns the index of the first line containing substr, or -1.
func indexOf(lines []string, substr string) int {
	for i, l := range lines {
		if strings.Contains(l, substr) {
			return i
		}
	}
	return -1
}

// countOf returns how many lines contain substr.
func countOf(lines []string, substr string) int {
	n := 0
	for _, l := range lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}
