package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomgen/loom/internal/geom"
	"github.com/loomgen/loom/internal/ir"
)

func child(id, name string, x, y, w, h float32) *ir.Rectangle {
	return &ir.Rectangle{NodeBase: testBase(id, name, x, y, w, h)}
}

func frameWith(children ...ir.Node) *ir.Frame {
	return &ir.Frame{
		NodeBase: testBase("root", "Panel", 0, 0, 400, 300),
		Children: children,
	}
}

func TestResizeBody_Proportional(t *testing.T) {
	c := child("c", "Body", 100, 30, 200, 150)
	root := frameWith(c)

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)

	// 100/400=0.25, 30/300=0.1, 200/400=0.5, 150/300=0.5
	assert.Equal(t,
		"body.setBounds(Rect(bounds.width() * 0.2500f, bounds.height() * 0.1000f, bounds.width() * 0.5000f, bounds.height() * 0.5000f));",
		body[0])
}

func TestResizeBody_ProportionalRoundTrip(t *testing.T) {
	// Evaluating the emitted proportions at the design-time size must
	// reproduce the design-time geometry exactly.
	const W, H = 400, 300
	c := child("c", "Box", 100, 30, 200, 150)
	root := frameWith(c)
	_ = ResizeBody(root, BuildHierarchy(root))

	xp := c.Position.X / W
	yp := c.Position.Y / H
	wp := c.Bounds.Width / W
	hp := c.Bounds.Height / H
	assert.Equal(t, float32(100), xp*W)
	assert.Equal(t, float32(30), yp*H)
	assert.Equal(t, float32(200), wp*W)
	assert.Equal(t, float32(150), hp*H)
}

func TestResizeBody_ProportionalZeroParent(t *testing.T) {
	c := child("c", "Box", 10, 10, 20, 20)
	root := frameWith(c)
	root.Bounds = geom.Rect{}

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)
	assert.Contains(t, body[0], "bounds.width() * 0.0000f")
}

func TestResizeBody_ConstraintRightMargin(t *testing.T) {
	c := child("c", "Trail", 300, 0, 80, 40)
	c.Constraints = ir.Constraints{Horizontal: ir.HRight, Vertical: ir.VTop}
	root := frameWith(c)

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)

	// Parent width 400, relX 300, width 80: right margin = 20.
	assert.Contains(t, body[0], "bounds.width() - 20.0000f - 80.0000f")
	assert.Contains(t, body[0], "80.0000f")
}

func TestResizeBody_ConstraintStretch(t *testing.T) {
	c := child("c", "Bar", 16, 10, 368, 40)
	c.Constraints = ir.Constraints{Horizontal: ir.HLeftRight, Vertical: ir.VTop}
	root := frameWith(c)

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)

	// Left margin 16, right margin 400-16-368=16; width stretches.
	assert.Contains(t, body[0], "bounds.width() - 16.0000f - 16.0000f")
}

func TestResizeBody_ConstraintCenter(t *testing.T) {
	c := child("c", "Mid", 150, 0, 100, 40)
	c.Constraints = ir.Constraints{Horizontal: ir.HCenter, Vertical: ir.VTop}
	root := frameWith(c)

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)

	// Midpoint 200 == parent midpoint: offset 0, half-width 50.
	assert.Contains(t, body[0], "bounds.width() * 0.5000f + 0.0000f - 50.0000f")
}

func TestResizeBody_ConstraintScale(t *testing.T) {
	c := child("c", "Pane", 100, 75, 200, 150)
	c.Constraints = ir.Constraints{Horizontal: ir.HScale, Vertical: ir.VScale}
	root := frameWith(c)

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)
	assert.Contains(t, body[0], "bounds.width() * 0.2500f")
	assert.Contains(t, body[0], "bounds.height() * 0.2500f")
	assert.Contains(t, body[0], "bounds.width() * 0.5000f")
	assert.Contains(t, body[0], "bounds.height() * 0.5000f")
}

func TestResizeBody_ConstraintBottom(t *testing.T) {
	c := child("c", "Footer", 0, 260, 400, 40)
	c.Constraints = ir.Constraints{Horizontal: ir.HLeft, Vertical: ir.VBottom}
	root := frameWith(c)

	body := ResizeBody(root, BuildHierarchy(root))
	require.Len(t, body, 1)

	// Bottom margin = 300 - 260 - 40 = 0.
	assert.Contains(t, body[0], "bounds.height() - 0.0000f - 40.0000f")
}

func TestResizeBody_InvisibleChildrenSkipped(t *testing.T) {
	a := child("a", "Shown", 0, 0, 10, 10)
	b := child("b", "Hidden", 20, 0, 10, 10)
	b.Visible = false
	root := frameWith(a, b)

	body := ResizeBody(root, BuildHierarchy(root))
	assert.Len(t, body, 1)
	assert.Contains(t, body[0], "shown.setBounds")
}

func TestResizeBody_FlexTranslation(t *testing.T) {
	icon := child("i", "Icon", 12, 8, 24, 24)
	title := child("t", "Title", 44, 8, 120, 24)
	title.LayoutGrow = 1
	title.LayoutAlign = "STRETCH"

	root := frameWith(icon, title)
	root.Layout = &ir.AutoLayout{
		Axis:          ir.AxisHorizontal,
		PrimaryAlign:  ir.AlignSpaceBetween,
		CounterAlign:  ir.AlignCenter,
		PaddingLeft:   12,
		PaddingRight:  12,
		PaddingTop:    8,
		PaddingBottom: 8,
		ItemSpacing:   8,
	}

	body := ResizeBody(root, BuildHierarchy(root))

	require.GreaterOrEqual(t, indexOf(body, "FlexLayout flex"), 0)
	assert.Contains(t, body[0], "FlexAxis::Horizontal")
	assert.Contains(t, body[0], "FlexJustify::SpaceBetween")
	assert.Contains(t, body[0], "FlexAlign::Center")

	// First item has no leading margin; the second carries itemSpacing.
	iconItem := indexOf(body, "flex.addItem(icon")
	titleItem := indexOf(body, "flex.addItem(title")
	require.GreaterOrEqual(t, iconItem, 0)
	require.GreaterOrEqual(t, titleItem, 0)
	assert.Less(t, iconItem, titleItem)
	assert.Contains(t, body[iconItem], "0.0000f);")
	assert.Contains(t, body[titleItem], "8.0000f);")

	// Grow and stretch flags on the second item.
	assert.Contains(t, body[titleItem], "1.0000f, true")

	// Padded bounds reduction.
	apply := indexOf(body, "flex.apply")
	require.GreaterOrEqual(t, apply, 0)
	assert.Contains(t, body[apply], "bounds.inset(12.0000f, 8.0000f, 12.0000f, 8.0000f)")
}

func TestResizeBody_FlexPaddingElision(t *testing.T) {
	a := child("a", "One", 0, 0, 10, 10)
	root := frameWith(a)
	root.Layout = &ir.AutoLayout{Axis: ir.AxisVertical}

	body := ResizeBody(root, BuildHierarchy(root))

	apply := indexOf(body, "flex.apply")
	require.GreaterOrEqual(t, apply, 0)
	assert.Equal(t, -1, indexOf(body, "inset"), "all-zero paddings emit no bounds reduction")
	assert.Contains(t, body[apply], "flex.apply(bounds);")
}

func TestResizeBody_FlexWrap(t *testing.T) {
	a := child("a", "One", 0, 0, 10, 10)
	root := frameWith(a)
	root.Layout = &ir.AutoLayout{Axis: ir.AxisHorizontal, Wrap: true}

	body := ResizeBody(root, BuildHierarchy(root))
	assert.GreaterOrEqual(t, indexOf(body, "flex.setWrap(true);"), 0)
}

func TestResizeBody_FlexBaselineDegradesToStretch(t *testing.T) {
	a := child("a", "One", 0, 0, 10, 10)
	root := frameWith(a)
	root.Layout = &ir.AutoLayout{Axis: ir.AxisHorizontal, CounterAlign: ir.AlignBaseline}

	body := ResizeBody(root, BuildHierarchy(root))
	assert.Contains(t, body[0], "FlexAlign::Stretch")
}

func TestResizeBody_PromotedChildStillPositioned(t *testing.T) {
	sub := &ir.Frame{NodeBase: testBase("s", "Widget", 50, 50, 100, 100)}
	root := frameWith(sub)

	h := BuildHierarchy(root)
	body := ResizeBody(root, h)

	require.Len(t, body, 1)
	assert.Contains(t, body[0], "widget.setBounds")
}

func TestResizeBody_Idempotent(t *testing.T) {
	c := child("c", "Box", 10, 20, 30, 40)
	c.Constraints = ir.Constraints{Horizontal: ir.HRight, Vertical: ir.VTopBottom}
	root := frameWith(c)

	a := ResizeBody(root, BuildHierarchy(root))
	b := ResizeBody(root, BuildHierarchy(root))
	assert.Equal(t, a, b)
}
