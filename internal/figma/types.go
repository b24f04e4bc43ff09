// Package figma holds the raw design-document schema as served by the
// design tool's REST API, and the HTTP client that retrieves it.
//
// Every field is optional-by-default: absent fields unmarshal to zero
// values or nil pointers and the normalizer supplies documented
// defaults. Nothing in this package interprets the schema.
package figma

// File is one fetched document.
type File struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Document *Node  `json:"document"`
}

// Node is one raw design node. Type discriminates the schema variant;
// kinds not understood downstream are dropped during normalization.
type Node struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Visible   *bool   `json:"visible,omitempty"` // absent means visible
	Opacity   *float64 `json:"opacity,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`

	AbsoluteBoundingBox *Box  `json:"absoluteBoundingBox,omitempty"`
	Size                *Vec  `json:"size,omitempty"`

	Children []*Node `json:"children,omitempty"`

	Fills        []Paint  `json:"fills,omitempty"`
	Strokes      []Paint  `json:"strokes,omitempty"`
	StrokeWeight *float64 `json:"strokeWeight,omitempty"`
	StrokeAlign  string   `json:"strokeAlign,omitempty"`
	StrokeCap    string   `json:"strokeCap,omitempty"`
	StrokeJoin   string   `json:"strokeJoin,omitempty"`

	Effects []Effect `json:"effects,omitempty"`

	CornerRadius         *float64  `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`
	ClipsContent         *bool     `json:"clipsContent,omitempty"`

	LayoutMode             string  `json:"layoutMode,omitempty"` // "NONE", "HORIZONTAL", "VERTICAL"
	PrimaryAxisAlignItems  string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string  `json:"counterAxisAlignItems,omitempty"`
	PrimaryAxisSizingMode  string  `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode  string  `json:"counterAxisSizingMode,omitempty"`
	PaddingLeft            float64 `json:"paddingLeft,omitempty"`
	PaddingRight           float64 `json:"paddingRight,omitempty"`
	PaddingTop             float64 `json:"paddingTop,omitempty"`
	PaddingBottom          float64 `json:"paddingBottom,omitempty"`
	ItemSpacing            float64 `json:"itemSpacing,omitempty"`
	LayoutWrap             string  `json:"layoutWrap,omitempty"`

	LayoutGrow  float64 `json:"layoutGrow,omitempty"`
	LayoutAlign string  `json:"layoutAlign,omitempty"`

	Constraints *Constraints `json:"constraints,omitempty"`

	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	FillGeometry   []Geometry `json:"fillGeometry,omitempty"`
	StrokeGeometry []Geometry `json:"strokeGeometry,omitempty"`
}

// Box is an absolute bounding box.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Vec is a 2D point or size.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is one raw fill or stroke entry.
type Paint struct {
	Type    string   `json:"type"` // "SOLID", "GRADIENT_LINEAR", "GRADIENT_RADIAL", "IMAGE", ...
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`

	GradientHandlePositions []Vec          `json:"gradientHandlePositions,omitempty"`
	GradientStops           []GradientStop `json:"gradientStops,omitempty"`

	ImageRef  string `json:"imageRef,omitempty"`
	ScaleMode string `json:"scaleMode,omitempty"`
}

// GradientStop is one raw gradient stop.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect is one raw effect entry.
type Effect struct {
	Type    string  `json:"type"` // "DROP_SHADOW", "INNER_SHADOW", "LAYER_BLUR", "BACKGROUND_BLUR"
	Visible *bool   `json:"visible,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vec    `json:"offset,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
}

// Constraints is the raw per-child pinning declaration.
type Constraints struct {
	Horizontal string `json:"horizontal"` // "LEFT", "RIGHT", "CENTER", "LEFT_RIGHT", "SCALE"
	Vertical   string `json:"vertical"`   // "TOP", "BOTTOM", "CENTER", "TOP_BOTTOM", "SCALE"
}

// TypeStyle is the raw typography block of a text node.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontWeight          int     `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
	Fills               []Paint `json:"fills,omitempty"`
}

// Geometry is one raw vector path entry.
type Geometry struct {
	Path        string `json:"path"`
	WindingRule string `json:"windingRule,omitempty"`
}
