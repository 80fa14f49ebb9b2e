package models

// Comment is a cell note.
type Comment struct {
	// Ref is the A1-style cell reference.
	Ref    string `json:"ref" yaml:"ref"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Text   string `json:"text" yaml:"text"`
	// Anchor is the legacy note box position: col, dx, row, dy pairs in pixels.
	Anchor  string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Visible bool   `json:"visible" yaml:"visible"`
}
