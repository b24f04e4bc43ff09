package ir

// Axis is the primary direction of an auto-layout container.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// Align is a four-way alignment along either auto-layout axis.
type Align string

const (
	AlignMin          Align = "min"
	AlignCenter       Align = "center"
	AlignMax          Align = "max"
	AlignSpaceBetween Align = "space_between" // primary axis only
	AlignBaseline     Align = "baseline"      // counter axis only; no flex analog
)

// SizingMode is how an auto-layout container sizes one of its axes.
type SizingMode string

const (
	SizingFixed SizingMode = "fixed"
	SizingAuto  SizingMode = "auto"
)

// AutoLayout is a container's declarative flex-like child arrangement.
// It is attached only when the source explicitly declares a non-"none"
// axis mode.
type AutoLayout struct {
	Axis          Axis
	PrimaryAlign  Align
	CounterAlign  Align
	PaddingLeft   float32
	PaddingRight  float32
	PaddingTop    float32
	PaddingBottom float32
	ItemSpacing   float32
	PrimarySizing SizingMode
	CounterSizing SizingMode
	Wrap          bool
}

// HasPadding reports whether any of the four paddings is non-zero.
// When all are zero the resize generator skips the bounds reduction
// entirely.
func (a *AutoLayout) HasPadding() bool {
	return a.PaddingLeft != 0 || a.PaddingRight != 0 || a.PaddingTop != 0 || a.PaddingBottom != 0
}

// HConstraint pins a child horizontally within a non-auto-layout parent.
type HConstraint string

const (
	HLeft      HConstraint = "left"
	HRight     HConstraint = "right"
	HCenter    HConstraint = "center"
	HLeftRight HConstraint = "left_right"
	HScale     HConstraint = "scale"
)

// VConstraint pins a child vertically within a non-auto-layout parent.
type VConstraint string

const (
	VTop       VConstraint = "top"
	VBottom    VConstraint = "bottom"
	VCenter    VConstraint = "center"
	VTopBottom VConstraint = "top_bottom"
	VScale     VConstraint = "scale"
)

// Constraints is a child's edge/center pinning rule, used only outside
// auto-layout containers. The zero value means the source declared no
// constraints and the child is placed proportionally instead.
type Constraints struct {
	Horizontal HConstraint
	Vertical   VConstraint
}

// IsZero reports whether no constraint was declared on either axis.
func (c Constraints) IsZero() bool {
	return c.Horizontal == "" && c.Vertical == ""
}
