package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Center(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	assert.Equal(t, Vec2{60, 45}, r.Center())
}

func TestRect_Expand(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	assert.Equal(t, Rect{X: 5, Y: 5, Width: 30, Height: 30}, r.Expand(5))
	assert.Equal(t, Rect{X: 12, Y: 12, Width: 16, Height: 16}, r.Expand(-2))
}

func TestRect_IsEmpty(t *testing.T) {
	assert.True(t, Rect{Width: 0, Height: 10}.IsEmpty())
	assert.True(t, Rect{Width: 10, Height: -1}.IsEmpty())
	assert.False(t, Rect{Width: 1, Height: 1}.IsEmpty())
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 2}
	assert.Equal(t, Vec2{4, 6}, a.Add(b))
	assert.Equal(t, Vec2{2, 2}, a.Sub(b))
	assert.Equal(t, float32(5), a.Length())
}

func TestColor_WithAlpha(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.8}
	got := c.WithAlpha(0.5)
	assert.InDelta(t, 0.4, got.A, 1e-6)
	assert.Equal(t, c.R, got.R)
}

func TestFloat_FixedPrecision(t *testing.T) {
	assert.Equal(t, "0.5000f", Float(0.5))
	assert.Equal(t, "12.3457f", Float(12.34567))
	assert.Equal(t, "-3.0000f", Float(-3))
}

func TestFloat_NegativeZero(t *testing.T) {
	var z float32
	negZero := -z
	assert.Equal(t, "0.0000f", Float(negZero))
}

func TestFloat_Idempotent(t *testing.T) {
	// Same value formatted twice must be byte-identical.
	v := float32(1.0) / 3.0
	assert.Equal(t, Float(v), Float(v))
}

func TestInt_RoundsToNearest(t *testing.T) {
	assert.Equal(t, "3", Int(2.5))
	assert.Equal(t, "2", Int(2.4))
	assert.Equal(t, "-2", Int(-2.4))
}

func TestFormatRect(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3.5, Height: 4}
	assert.Equal(t, "Rect(1.0000f, 2.0000f, 3.5000f, 4.0000f)", FormatRect(r))
}

func TestFormatColor(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0.25, A: 1}
	assert.Equal(t, "Color(1.0000f, 0.0000f, 0.2500f, 1.0000f)", FormatColor(c))
}
