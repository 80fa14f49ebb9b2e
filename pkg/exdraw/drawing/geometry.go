package drawing

import (
	"math"
	"strings"
)

// PresetGeomMap maps OOXML preset geometry names to human-readable type labels.
var PresetGeomMap = map[string]string{
	"flowChartProcess":           "AutoShape-FlowchartProcess",
	"flowChartDecision":          "AutoShape-FlowchartDecision",
	"flowChartTerminator":        "AutoShape-FlowchartTerminator",
	"flowChartData":              "AutoShape-FlowchartData",
	"flowChartDocument":          "AutoShape-FlowchartDocument",
	"flowChartMultidocument":     "AutoShape-FlowchartMultidocument",
	"flowChartPredefinedProcess": "AutoShape-FlowchartPredefinedProcess",
	"flowChartConnector":         "AutoShape-FlowchartConnector",
	"rect":                       "AutoShape-Rectangle",
	"roundRect":                  "AutoShape-RoundedRectangle",
	"ellipse":                    "AutoShape-Oval",
	"diamond":                    "AutoShape-Diamond",
	"triangle":                   "AutoShape-IsoscelesTriangle",
	"rightArrow":                 "AutoShape-RightArrow",
	"leftArrow":                  "AutoShape-LeftArrow",
	"straightConnector1":         "Line",
	"bentConnector2":             "AutoShape-Connector",
	"bentConnector3":             "AutoShape-Connector",
	"curvedConnector3":           "AutoShape-Connector",
	"line":                       "Line",
	"textBox":                    "TextBox",
}

// ArrowHeadMap maps OOXML line end types to Excel COM style numbers.
var ArrowHeadMap = map[string]int{
	"none":     1,
	"triangle": 2,
	"stealth":  3,
	"diamond":  4,
	"oval":     5,
	"arrow":    2,
}

// ArrowHead is a DrawingML line end type.
type ArrowHead string

const (
	ArrowNone     ArrowHead = "none"
	ArrowTriangle ArrowHead = "triangle"
	ArrowStealth  ArrowHead = "stealth"
	ArrowDiamond  ArrowHead = "diamond"
	ArrowOval     ArrowHead = "oval"
	ArrowOpen     ArrowHead = "arrow"
)

// Style returns the Excel COM style number of the arrow head, 0 if unknown.
func (h ArrowHead) Style() int {
	return ArrowHeadMap[string(h)]
}

// TypeLabel returns the label of a preset geometry. Unknown presets are
// prefixed with "AutoShape-"; an empty preset falls back to name.
func TypeLabel(prst, name string) string {
	if prst != "" {
		if label, ok := PresetGeomMap[prst]; ok {
			return label
		}
		return "AutoShape-" + prst
	}
	if name != "" {
		return name
	}
	return "Unknown"
}

// IsConnectorGeometry reports whether a preset or label describes a line or
// connector.
func IsConnectorGeometry(prst, typeLabel string) bool {
	p := strings.ToLower(prst)
	if strings.Contains(p, "connector") || strings.Contains(p, "line") {
		return true
	}
	return strings.Contains(typeLabel, "Line") || strings.Contains(typeLabel, "Connector")
}

// Direction returns the compass heading of a line drawn width to the right
// and height downwards, or "" when it has no extent.
func Direction(width, height int) string {
	if width == 0 && height == 0 {
		return ""
	}

	angle := math.Atan2(float64(-height), float64(width)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	switch {
	case angle >= 337.5 || angle < 22.5:
		return "E"
	case angle < 67.5:
		return "NE"
	case angle < 112.5:
		return "N"
	case angle < 157.5:
		return "NW"
	case angle < 202.5:
		return "W"
	case angle < 247.5:
		return "SW"
	case angle < 292.5:
		return "S"
	default:
		return "SE"
	}
}
