package models

// Axis represents one chart axis.
type Axis struct {
	ID       uint32 `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"`
	Position string `json:"position" yaml:"position"`
	Visible  bool   `json:"visible" yaml:"visible"`
	CrossAx  uint32 `json:"cross_ax" yaml:"cross_ax"`
	// Min, Max and LogBase are nil when the scaling does not set them.
	Min          *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max          *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	LogBase      *float64 `json:"log_base,omitempty" yaml:"log_base,omitempty"`
	Orientation  string   `json:"orientation" yaml:"orientation"`
	NumberFormat string   `json:"number_format,omitempty" yaml:"number_format,omitempty"`
	FormatKind   string   `json:"format_kind,omitempty" yaml:"format_kind,omitempty"`
}

// Chart represents chart metadata including axes and layout.
type Chart struct {
	// Name is the name of the hosting graphic frame.
	Name string `json:"name" yaml:"name"`
	// Part is the chart part name.
	Part string `json:"part" yaml:"part"`
	// ChartType is the type of the first chart group (e.g., Bar, Line).
	ChartType string `json:"chart_type" yaml:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Axes lists the axes of the plot area.
	Axes []Axis `json:"axes,omitempty" yaml:"axes,omitempty"`
	// W is the chart width in pixels (nil if not verbose mode).
	W *int `json:"w,omitempty" yaml:"w,omitempty"`
	// H is the chart height in pixels (nil if not verbose mode).
	H *int `json:"h,omitempty" yaml:"h,omitempty"`
	// L is the left offset in pixels.
	L int `json:"l" yaml:"l"`
	// T is the top offset in pixels.
	T int `json:"t" yaml:"t"`
	// Anchor is the cell anchor of the frame.
	Anchor *Anchor `json:"anchor,omitempty" yaml:"anchor,omitempty"`
}
