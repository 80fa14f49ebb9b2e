package models

// SheetData represents the drawing content of a single sheet.
type SheetData struct {
	// Drawing is the name of the drawing part, empty when the sheet has none.
	Drawing string `json:"drawing,omitempty" yaml:"drawing,omitempty"`
	// Shapes contains shapes detected on the sheet, group members flattened.
	Shapes []Shape `json:"shapes,omitempty" yaml:"shapes,omitempty"`
	// Charts contains charts hosted by graphic frames.
	Charts []Chart `json:"charts,omitempty" yaml:"charts,omitempty"`
	// Comments contains cell notes.
	Comments []Comment `json:"comments,omitempty" yaml:"comments,omitempty"`
}
