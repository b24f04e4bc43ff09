package ir

import "github.com/loomgen/loom/internal/geom"

// Effect is one visual effect entry.
//
// This is a sealed interface - only DropShadow, InnerShadow, LayerBlur
// and BackgroundBlur implement it. Effects are independently visible
// and contribute in array order.
type Effect interface {
	effect() // Marker method - seals interface to this package

	// EffectVisible reports whether this entry applies at all.
	EffectVisible() bool
}

// DropShadow draws a blurred shadow behind the node.
type DropShadow struct {
	Color   geom.Color
	Offset  geom.Vec2
	Radius  float32
	Visible bool
}

func (DropShadow) effect() {}

// EffectVisible implements Effect.
func (e DropShadow) EffectVisible() bool { return e.Visible }

// InnerShadow draws a shadow inside the node edge. The target canvas
// has no inset-shadow primitive; the paint generator approximates it
// with a clipped outer shadow on an expanded box.
type InnerShadow struct {
	Color   geom.Color
	Offset  geom.Vec2
	Radius  float32
	Visible bool
}

func (InnerShadow) effect() {}

// EffectVisible implements Effect.
func (e InnerShadow) EffectVisible() bool { return e.Visible }

// LayerBlur blurs the node's own content. No canvas primitive exists;
// the paint generator emits an advisory marker only.
type LayerBlur struct {
	Radius  float32
	Visible bool
}

func (LayerBlur) effect() {}

// EffectVisible implements Effect.
func (e LayerBlur) EffectVisible() bool { return e.Visible }

// BackgroundBlur blurs content behind the node. Advisory only, like
// LayerBlur.
type BackgroundBlur struct {
	Radius  float32
	Visible bool
}

func (BackgroundBlur) effect() {}

// EffectVisible implements Effect.
func (e BackgroundBlur) EffectVisible() bool { return e.Visible }
