package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loomgen/loom/internal/geom"
)

func TestChildrenOf(t *testing.T) {
	leaf := &Rectangle{NodeBase: NodeBase{ID: "r1"}}
	frame := &Frame{
		NodeBase: NodeBase{ID: "f1"},
		Children: []Node{leaf},
	}
	group := &Group{
		NodeBase: NodeBase{ID: "g1"},
		Children: []Node{frame},
	}

	assert.Len(t, ChildrenOf(group), 1)
	assert.Len(t, ChildrenOf(frame), 1)
	assert.Nil(t, ChildrenOf(leaf))
	assert.Nil(t, ChildrenOf(&Text{}))
}

func TestCornerRadius(t *testing.T) {
	assert.True(t, CornerRadius{}.IsZero())
	assert.True(t, Uniform(8).IsUniform())
	assert.False(t, Uniform(8).IsZero())

	mixed := CornerRadius{TopLeft: 10, TopRight: 20, BottomRight: 30, BottomLeft: 40}
	assert.False(t, mixed.IsUniform())
	assert.Equal(t, float32(40), mixed.Max())
}

func TestConstraints_IsZero(t *testing.T) {
	assert.True(t, Constraints{}.IsZero())
	assert.False(t, Constraints{Horizontal: HRight}.IsZero())
	assert.False(t, Constraints{Vertical: VScale}.IsZero())
}

func TestAutoLayout_HasPadding(t *testing.T) {
	var a AutoLayout
	assert.False(t, a.HasPadding())
	a.PaddingBottom = 4
	assert.True(t, a.HasPadding())
}

func TestPaintVisibility(t *testing.T) {
	assert.True(t, Solid{Color: geom.Black, Visible: true}.PaintVisible())
	assert.False(t, Solid{Color: geom.Black}.PaintVisible())
	assert.False(t, LinearGradient{Visible: false}.PaintVisible())
	assert.True(t, ImagePaint{Ref: "img1", Visible: true}.PaintVisible())
}

func TestEffectVisibility(t *testing.T) {
	assert.True(t, DropShadow{Visible: true}.EffectVisible())
	assert.False(t, InnerShadow{}.EffectVisible())
	assert.True(t, LayerBlur{Radius: 4, Visible: true}.EffectVisible())
}
