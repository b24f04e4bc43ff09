package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

func TestPaintBody_ShadowPrecedesFill(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Card", 0, 0, 100, 50)}
	rect.Fills = []ir.Paint{solid(1, 0, 0)}
	rect.Effects = []ir.Effect{
		ir.DropShadow{Color: geom.Color{A: 0.3}, Offset: geom.Vec2{Y: 2}, Radius: 4, Visible: true},
	}
	root := &ir.Frame{NodeBase: testBase("f", "Root", 0, 0, 200, 100), Children: []ir.Node{rect}}

	body := PaintBody(root, BuildHierarchy(root))

	shadow := indexOf(body, "drawShadow")
	fill := indexOf(body, "fillRect")
	require.GreaterOrEqual(t, shadow, 0)
	require.GreaterOrEqual(t, fill, 0)
	assert.Less(t, shadow, fill, "drop shadow must precede the fill")
}

func TestPaintBody_FillPrecedesStroke(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Box", 0, 0, 40, 40)}
	rect.Fills = []ir.Paint{solid(0, 0, 1)}
	rect.Strokes = []ir.Stroke{{Color: geom.Black, Weight: 2, Opacity: 1, Visible: true}}

	body := PaintBody(rect, BuildHierarchy(rect))

	fill := indexOf(body, "fillRect")
	stroke := indexOf(body, "strokeRect")
	require.GreaterOrEqual(t, fill, 0)
	require.GreaterOrEqual(t, stroke, 0)
	assert.Less(t, fill, stroke, "fill must precede stroke")
}

func TestPaintBody_OpacityScopeBalanced(t *testing.T) {
	child := &ir.Rectangle{NodeBase: testBase("r", "Inner", 0, 0, 10, 10)}
	child.Opacity = 0.5
	child.Fills = []ir.Paint{solid(0, 1, 0)}

	mid := &ir.Group{NodeBase: testBase("g", "Wrap", 0, 0, 50, 50), Children: []ir.Node{child}}
	mid.Opacity = 0.8

	root := &ir.Frame{NodeBase: testBase("f", "Root", 0, 0, 100, 100), Children: []ir.Node{mid}}

	body := PaintBody(root, BuildHierarchy(root))

	opens := countOf(body, "pushOpacity")
	closes := countOf(body, "popOpacity")
	assert.Equal(t, 2, opens)
	assert.Equal(t, opens, closes, "opacity opens must equal closes")
}

func TestPaintBody_OpacityScopeWrapsEverything(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Dim", 0, 0, 10, 10)}
	rect.Opacity = 0.25
	rect.Fills = []ir.Paint{solid(1, 1, 1)}
	rect.Strokes = []ir.Stroke{{Color: geom.Black, Weight: 1, Opacity: 1, Visible: true}}

	body := PaintBody(rect, BuildHierarchy(rect))

	require.Contains(t, body[0], "pushOpacity")
	require.Contains(t, body[len(body)-1], "popOpacity")
	assert.Contains(t, body[0], "0.2500f")
}

func TestPaintBody_PerCornerRounding(t *testing.T) {
	rect := &ir.Rectangle{
		NodeBase:     testBase("r", "Mixed", 0, 0, 100, 100),
		CornerRadius: ir.CornerRadius{TopLeft: 10, TopRight: 20, BottomRight: 30, BottomLeft: 40},
	}
	rect.Fills = []ir.Paint{solid(1, 0, 0)}

	body := PaintBody(rect, BuildHierarchy(rect))

	i := indexOf(body, "fillRoundedRectPath")
	require.GreaterOrEqual(t, i, 0, "non-uniform radii use the generated path form")
	assert.Contains(t, body[i], "40.0000f")
	assert.Contains(t, body[i], "true, true, true, true")
}

func TestPaintBody_ZeroRadiiPlainFill(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Flat", 0, 0, 100, 100)}
	rect.Fills = []ir.Paint{solid(1, 0, 0)}

	body := PaintBody(rect, BuildHierarchy(rect))

	assert.GreaterOrEqual(t, indexOf(body, "fillRect"), 0)
	assert.Equal(t, -1, indexOf(body, "Rounded"), "no rounding call for zero radii")
}

func TestPaintBody_UniformRounding(t *testing.T) {
	rect := &ir.Rectangle{
		NodeBase:     testBase("r", "Pill", 0, 0, 100, 100),
		CornerRadius: ir.Uniform(8),
	}
	rect.Fills = []ir.Paint{solid(1, 0, 0)}

	body := PaintBody(rect, BuildHierarchy(rect))

	i := indexOf(body, "fillRoundedRect(")
	require.GreaterOrEqual(t, i, 0)
	assert.Contains(t, body[i], "8.0000f")
}

func TestPaintBody_MultipleFillsInOrder(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Layered", 0, 0, 10, 10)}
	rect.Fills = []ir.Paint{
		solid(1, 0, 0),
		ir.Solid{Color: geom.Color{G: 1, A: 1}}, // invisible: contributes nothing
		ir.LinearGradient{
			Start: geom.Vec2{}, End: geom.Vec2{X: 1},
			Stops: []ir.GradientStop{
				{Position: 0, Color: geom.Color{R: 1, A: 1}},
				{Position: 1, Color: geom.Color{B: 1, A: 1}},
			},
			Visible: true,
		},
	}

	body := PaintBody(rect, BuildHierarchy(rect))

	first := indexOf(body, "setFillColor")
	grad := indexOf(body, "setFillLinearGradient")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, grad, 0)
	assert.Less(t, first, grad)
	assert.Equal(t, 2, countOf(body, "fillRect"), "one fill call per visible entry")
}

func TestPaintBody_VectorPathScopesBalanced(t *testing.T) {
	v := &ir.Vector{
		NodeBase: testBase("v", "Icon", 0, 0, 24, 24),
		Paths:    []string{"M 0 0 L 10 0 L 10 10 Z", "M 2 2 L 4 4"},
	}
	v.Fills = []ir.Paint{solid(0, 0, 0)}
	v.Strokes = []ir.Stroke{{Color: geom.Black, Weight: 1, Opacity: 1, Visible: true}}

	body := PaintBody(v, BuildHierarchy(v))

	saves := countOf(body, "c.save();")
	restores := countOf(body, "c.restore();")
	assert.Equal(t, 2, saves, "one scope per path entry")
	assert.Equal(t, saves, restores)

	assert.Equal(t, 2, countOf(body, "beginPath"))
	assert.Equal(t, 2, countOf(body, "fillPath"))
	assert.Equal(t, 2, countOf(body, "strokePath"))
	assert.Equal(t, 1, countOf(body, "closePath"))

	// Fill precedes stroke within each path scope.
	assert.Less(t, indexOf(body, "fillPath"), indexOf(body, "strokePath"))
}

func TestPaintBody_VectorEmptyPathSkipped(t *testing.T) {
	v := &ir.Vector{NodeBase: testBase("v", "Blank", 0, 0, 10, 10), Paths: []string{"not a path"}}
	v.Fills = []ir.Paint{solid(0, 0, 0)}

	body := PaintBody(v, BuildHierarchy(v))
	assert.Empty(t, body)
}

func TestPaintBody_InnerShadowClippedExpandedBox(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Well", 10, 10, 100, 50)}
	rect.Fills = []ir.Paint{solid(1, 1, 1)}
	rect.Effects = []ir.Effect{
		ir.InnerShadow{Color: geom.Color{A: 0.4}, Offset: geom.Vec2{X: 2, Y: 2}, Radius: 5, Visible: true},
	}

	body := PaintBody(rect, BuildHierarchy(rect))

	clip := indexOf(body, "clipRect")
	shadow := indexOf(body, "drawShadow")
	require.GreaterOrEqual(t, clip, 0)
	require.GreaterOrEqual(t, shadow, 0)
	assert.Less(t, clip, shadow, "clip must precede the approximating shadow")

	// Expanded by radius 5 and shifted by (2,2): x=10-5+2=7, w=100+10=110.
	assert.Contains(t, body[shadow], "Rect(7.0000f, 7.0000f, 110.0000f, 60.0000f)")
	assert.Equal(t, countOf(body, "c.save();"), countOf(body, "c.restore();"))
}

func TestPaintBody_BlurAdvisoryOnly(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Frost", 0, 0, 10, 10)}
	rect.Fills = []ir.Paint{solid(1, 1, 1)}
	rect.Effects = []ir.Effect{
		ir.LayerBlur{Radius: 12, Visible: true},
		ir.BackgroundBlur{Radius: 6, Visible: false},
	}

	body := PaintBody(rect, BuildHierarchy(rect))

	i := indexOf(body, "layer blur")
	require.GreaterOrEqual(t, i, 0)
	assert.True(t, len(body[i]) > 2 && body[i][:2] == "//", "blur is a comment, not an operation")
	assert.Equal(t, -1, indexOf(body, "background blur"), "invisible effects contribute nothing")
}

func TestPaintBody_TextFontThenDraw(t *testing.T) {
	txt := &ir.Text{
		NodeBase:   testBase("t", "Title", 0, 0, 120, 20),
		Characters: "Hello",
		Style: ir.TextStyle{
			FontFamily: "Inter", FontSize: 16, FontWeight: 600,
			AlignH: "center", AlignV: "top", Color: geom.Black,
		},
	}

	body := PaintBody(txt, BuildHierarchy(txt))

	font := indexOf(body, "setFont")
	draw := indexOf(body, "drawText")
	require.GreaterOrEqual(t, font, 0)
	require.GreaterOrEqual(t, draw, 0)
	assert.Less(t, font, draw)
	assert.Contains(t, body[draw], `"Hello"`)
	assert.Contains(t, body[draw], "TextAlign::Center")
}

func TestPaintBody_SkipsPromotedChildren(t *testing.T) {
	promoted := &ir.Frame{NodeBase: testBase("p", "Sub Card", 10, 10, 50, 50)}
	promoted.Fills = []ir.Paint{solid(0, 1, 0)}

	inline := &ir.Rectangle{NodeBase: testBase("r", "Inline", 70, 10, 20, 20)}
	inline.Fills = []ir.Paint{solid(1, 0, 0)}

	root := &ir.Frame{
		NodeBase: testBase("f", "Root", 0, 0, 200, 100),
		Children: []ir.Node{promoted, inline},
	}

	h := BuildHierarchy(root)
	body := PaintBody(root, h)

	// The promoted frame's interior is not redrawn inline.
	assert.Equal(t, -1, indexOf(body, "Rect(10.0000f, 10.0000f, 50.0000f, 50.0000f)"))
	assert.GreaterOrEqual(t, indexOf(body, "Rect(70.0000f, 10.0000f, 20.0000f, 20.0000f)"), 0)
}

func TestPaintBody_InvisibleNodeContributesNothing(t *testing.T) {
	hidden := &ir.Rectangle{NodeBase: testBase("r", "Ghost", 0, 0, 10, 10)}
	hidden.Visible = false
	hidden.Fills = []ir.Paint{solid(1, 0, 0)}

	root := &ir.Frame{NodeBase: testBase("f", "Root", 0, 0, 100, 100), Children: []ir.Node{hidden}}
	body := PaintBody(root, BuildHierarchy(root))
	assert.Empty(t, body)
}

func TestPaintBody_Idempotent(t *testing.T) {
	rect := &ir.Rectangle{NodeBase: testBase("r", "Stable", 3, 7, 31, 17), CornerRadius: ir.Uniform(3)}
	rect.Fills = []ir.Paint{solid(0.123, 0.456, 0.789)}
	root := &ir.Frame{NodeBase: testBase("f", "Root", 0, 0, 100, 100), Children: []ir.Node{rect}}

	a := PaintBody(root, BuildHierarchy(root))
	b := PaintBody(root, BuildHierarchy(root))
	assert.Equal(t, a, b, "identical input must generate byte-identical output")
}

func TestPaintBody_EllipseFillAndStroke(t *testing.T) {
	el := &ir.Ellipse{NodeBase: testBase("e", "Dot", 0, 0, 16, 16)}
	el.Fills = []ir.Paint{solid(1, 0, 1)}
	el.Strokes = []ir.Stroke{{Color: geom.Black, Weight: 1, Opacity: 0.5, Visible: true}}

	body := PaintBody(el, BuildHierarchy(el))

	assert.GreaterOrEqual(t, indexOf(body, "fillEllipse"), 0)
	assert.GreaterOrEqual(t, indexOf(body, "strokeEllipse"), 0)
	// Stroke opacity folds into the stroke color alpha.
	i := indexOf(body, "setStrokeColor")
	assert.Contains(t, body[i], "0.5000f")
}
