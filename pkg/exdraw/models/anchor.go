package models

// Marker is a cell-relative position; offsets are in EMU.
type Marker struct {
	Col    int   `json:"col" yaml:"col"`
	ColOff int64 `json:"col_off" yaml:"col_off"`
	Row    int   `json:"row" yaml:"row"`
	RowOff int64 `json:"row_off" yaml:"row_off"`
}

// Anchor is the cell anchor of a top-level shape.
type Anchor struct {
	// Kind is "twoCellAnchor" or "oneCellAnchor".
	Kind   string `json:"kind" yaml:"kind"`
	EditAs string `json:"edit_as,omitempty" yaml:"edit_as,omitempty"`
	From   Marker `json:"from" yaml:"from"`
	To     Marker `json:"to" yaml:"to"`
}
