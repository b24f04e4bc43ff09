package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomgen/loom/internal/gen"
	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

func base(id, name string, x, y, w, h float32) ir.NodeBase {
	return ir.NodeBase{
		ID:       id,
		Name:     name,
		Visible:  true,
		Opacity:  1,
		Bounds:   geom.Rect{X: x, Y: y, Width: w, Height: h},
		Position: geom.Vec2{X: x, Y: y},
	}
}

// cardComponent is a small but representative tree: a rounded container
// with a solid fill, an inline accent strip and a text leaf that
// registers as a Label member.
func cardComponent() *ir.Frame {
	accent := &ir.Rectangle{NodeBase: base("a", "Accent", 0, 0, 200, 4)}
	accent.Fills = []ir.Paint{ir.Solid{Color: geom.Color{R: 0.2, G: 0.4, B: 0.8, A: 1}, Visible: true}}

	title := &ir.Text{
		NodeBase:   base("t", "Title", 16, 24, 168, 20),
		Characters: "Hello",
		Style: ir.TextStyle{
			FontFamily: "sans-serif",
			FontSize:   12,
			FontWeight: 400,
			AlignH:     "left",
			AlignV:     "top",
			Color:      geom.Black,
		},
	}

	root := &ir.Frame{
		NodeBase:     base("root", "Card", 0, 0, 200, 100),
		Children:     []ir.Node{accent, title},
		CornerRadius: ir.Uniform(8),
	}
	root.Fills = []ir.Paint{ir.Solid{Color: geom.Color{R: 1, G: 1, B: 1, A: 1}, Visible: true}}
	return root
}

func TestFile_Golden(t *testing.T) {
	units := gen.Component(cardComponent())
	require.Len(t, units, 1)

	g := goldie.New(t)
	g.Assert(t, "card", File(units[0]))
}

func TestFile_Deterministic(t *testing.T) {
	a := gen.Component(cardComponent())
	b := gen.Component(cardComponent())
	assert.Equal(t, File(a[0]), File(b[0]))
}

func TestFile_ImagePreloads(t *testing.T) {
	photo := &ir.Rectangle{NodeBase: base("p", "Photo", 0, 0, 50, 50)}
	photo.Fills = []ir.Paint{ir.ImagePaint{Ref: "img-1", ScaleMode: ir.ScaleFill, Visible: true}}
	root := &ir.Frame{
		NodeBase: base("root", "Gallery", 0, 0, 100, 100),
		Children: []ir.Node{photo},
	}

	units := gen.Component(root)
	out := string(File(units[len(units)-1]))

	assert.Contains(t, out, `preloadImage("img-1");`)
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"Card":         "card.gen.cpp",
		"Card2":        "card2.gen.cpp",
		"SubmitButton": "submit_button.gen.cpp",
		"C2Row":        "c2_row.gen.cpp",
	}
	for name, want := range cases {
		u := &gen.Unit{Name: name}
		assert.Equal(t, want, FileName(u))
	}
}

func TestWriteUnits(t *testing.T) {
	dir := t.TempDir()
	units := gen.Component(cardComponent())

	require.NoError(t, WriteUnits(filepath.Join(dir, "out"), units))

	data, err := os.ReadFile(filepath.Join(dir, "out", "card.gen.cpp"))
	require.NoError(t, err)
	assert.Equal(t, File(units[0]), data)
}
