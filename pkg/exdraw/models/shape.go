package models

// Shape represents shape metadata including position, size, text, and styling.
type Shape struct {
	// ID is the sequential shape id within the sheet (if applicable).
	ID *int `json:"id,omitempty" yaml:"id,omitempty"`
	// ShapeID is the identifier stored in the drawing part.
	ShapeID int `json:"shape_id" yaml:"shape_id"`
	// Kind is the drawing element variant (shape, connector, picture, graphicFrame).
	Kind string `json:"kind" yaml:"kind"`
	// Name is the shape name shown in the selection pane.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Text is the visible text content of the shape.
	Text string `json:"text" yaml:"text"`
	// L is the left offset in pixels.
	L int `json:"l" yaml:"l"`
	// T is the top offset in pixels.
	T int `json:"t" yaml:"t"`
	// W is the shape width in pixels (nil if not verbose mode).
	W *int `json:"w,omitempty" yaml:"w,omitempty"`
	// H is the shape height in pixels (nil if not verbose mode).
	H *int `json:"h,omitempty" yaml:"h,omitempty"`
	// Type is the Excel shape type name.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Rotation is the rotation angle in degrees.
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	// BeginArrowStyle is the arrow style enum for the start of a connector.
	BeginArrowStyle *int `json:"begin_arrow_style,omitempty" yaml:"begin_arrow_style,omitempty"`
	// EndArrowStyle is the arrow style enum for the end of a connector.
	EndArrowStyle *int `json:"end_arrow_style,omitempty" yaml:"end_arrow_style,omitempty"`
	// BeginID is the shape id at the start of a connector.
	BeginID *int `json:"begin_id,omitempty" yaml:"begin_id,omitempty"`
	// EndID is the shape id at the end of a connector.
	EndID *int `json:"end_id,omitempty" yaml:"end_id,omitempty"`
	// Direction is the connector direction (compass heading: N, NE, E, SE, S, SW, W, NW).
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	// Image is the media part a picture embeds.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	// Anchor is the cell anchor (nil for group members or when anchors are excluded).
	Anchor *Anchor `json:"anchor,omitempty" yaml:"anchor,omitempty"`
}
