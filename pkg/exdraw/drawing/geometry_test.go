package drawing

import (
	"testing"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		width    int
		height   int
		expected string
	}{
		{100, 0, "E"},
		{0, -100, "N"},
		{0, 100, "S"},
		{-100, 0, "W"},
		{100, -100, "NE"},
		{100, 100, "SE"},
		{-100, 100, "SW"},
		{-100, -100, "NW"},
		{0, 0, ""},
	}

	for _, tt := range tests {
		result := Direction(tt.width, tt.height)
		if result != tt.expected {
			t.Errorf("Direction(%d, %d) = %q, expected %q",
				tt.width, tt.height, result, tt.expected)
		}
	}
}

func TestIsConnectorGeometry(t *testing.T) {
	tests := []struct {
		prst      string
		typeLabel string
		expected  bool
	}{
		{"straightConnector1", "Line", true},
		{"bentConnector3", "AutoShape-Connector", true},
		{"line", "Line", true},
		{"rect", "AutoShape-Rectangle", false},
		{"flowChartProcess", "AutoShape-FlowchartProcess", false},
		{"", "Line", true},
		{"", "AutoShape-Connector", true},
	}

	for _, tt := range tests {
		result := IsConnectorGeometry(tt.prst, tt.typeLabel)
		if result != tt.expected {
			t.Errorf("IsConnectorGeometry(%q, %q) = %v, expected %v",
				tt.prst, tt.typeLabel, result, tt.expected)
		}
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		prst     string
		name     string
		expected string
	}{
		{"flowChartDecision", "", "AutoShape-FlowchartDecision"},
		{"ellipse", "Oval 3", "AutoShape-Oval"},
		{"straightConnector1", "", "Line"},
		{"heart", "", "AutoShape-heart"},
		{"", "Picture 2", "Picture 2"},
		{"", "", "Unknown"},
	}

	for _, tt := range tests {
		result := TypeLabel(tt.prst, tt.name)
		if result != tt.expected {
			t.Errorf("TypeLabel(%q, %q) = %q, expected %q", tt.prst, tt.name, result, tt.expected)
		}
	}
}

func TestArrowHeadStyle(t *testing.T) {
	tests := []struct {
		head     ArrowHead
		expected int
	}{
		{ArrowNone, 1},
		{ArrowTriangle, 2},
		{ArrowStealth, 3},
		{ArrowDiamond, 4},
		{ArrowOval, 5},
		{ArrowOpen, 2},
		{"bogus", 0},
	}

	for _, tt := range tests {
		if result := tt.head.Style(); result != tt.expected {
			t.Errorf("ArrowHead(%q).Style() = %d, expected %d", tt.head, result, tt.expected)
		}
	}
}
