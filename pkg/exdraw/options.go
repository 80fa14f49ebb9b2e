// Package exdraw opens spreadsheet packages for drawing work and reports
// the shapes, charts and notes they contain.
package exdraw

import (
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/drawing"
	"go.uber.org/zap"
)

// Mode represents the inspection mode.
type Mode string

const (
	// ModeLight reports cell notes and the picture registry only (no shapes or charts).
	ModeLight Mode = "light"
	// ModeStandard reports shapes with text or connectors, charts, and notes.
	ModeStandard Mode = "standard"
	// ModeVerbose reports everything including pictures, sizes and anchors.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(s)) {
	case ModeLight:
		return ModeLight, true
	case ModeStandard:
		return ModeStandard, true
	case ModeVerbose:
		return ModeVerbose, true
	}
	return "", false
}

// Options configures workbook access and inspection.
type Options struct {
	// Mode specifies the inspection mode (light, standard, verbose).
	Mode Mode
	// IncludeAnchors specifies whether to report cell anchors.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeAnchors *bool
	// IncludeComments specifies whether to report cell notes.
	// If nil, defaults to true.
	IncludeComments *bool
	// Logger receives debug and warning entries. Defaults to a no-op logger.
	Logger *zap.Logger
	// Drawing is passed to every drawing the workbook loads or creates.
	Drawing drawing.Options
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeStandard
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Drawing.Logger == nil {
		o.Drawing.Logger = o.Logger
	}
	return o
}

// ShouldIncludeAnchors returns whether to report cell anchors.
func (o Options) ShouldIncludeAnchors() bool {
	if o.IncludeAnchors != nil {
		return *o.IncludeAnchors
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeComments returns whether to report cell notes.
func (o Options) ShouldIncludeComments() bool {
	if o.IncludeComments != nil {
		return *o.IncludeComments
	}
	return true
}

// ShouldIncludeSizes returns whether to report shape and chart extents.
func (o Options) ShouldIncludeSizes() bool {
	return o.Mode == ModeVerbose
}

// ShouldIncludeShape determines if a shape should be reported based on mode.
func (o Options) ShouldIncludeShape(text, typeLabel string, isConnector bool) bool {
	switch o.Mode {
	case ModeLight:
		return false
	case ModeVerbose:
		return true
	}
	// standard mode: include if text exists or is connector/arrow
	if text != "" {
		return true
	}
	if isConnector {
		return true
	}
	return strings.Contains(typeLabel, "Arrow")
}
