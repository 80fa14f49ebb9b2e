// Package models defines the data structures of a drawing report.
package models

// WorkbookData is the workbook-level container with per-sheet drawing data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Pictures lists the media parts of the workbook in picture index order.
	Pictures []Picture `json:"pictures,omitempty" yaml:"pictures,omitempty"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets" yaml:"sheets"`
}

// Picture describes one entry of the workbook picture registry.
type Picture struct {
	Index       int    `json:"index" yaml:"index"`
	Part        string `json:"part" yaml:"part"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Size        int    `json:"size" yaml:"size"`
}
