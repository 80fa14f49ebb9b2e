package chart

import (
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// PlotArea is the c:plotArea of a chart: its chart groups and axes.
type PlotArea struct {
	tree *xmltree.Tree
	node xmltree.NodeID
}

// Node returns the c:plotArea node.
func (p *PlotArea) Node() xmltree.NodeID { return p.node }

// NextAxisID returns the candidate identifier of the next axis: the number
// of category, value, date and series axes in the plot area. It is a count,
// so ids can collide after axes are removed.
func (p *PlotArea) NextAxisID() uint32 {
	n := 0
	for _, k := range []Kind{KindValue, KindCategory, KindDate, KindSeries} {
		n += p.tree.Count(p.node, ooxml.C(kindSpecs[k].local))
	}
	return uint32(n)
}

// insertionPoint returns the first trailing element new axes go before.
func (p *PlotArea) insertionPoint() xmltree.NodeID {
	for _, c := range p.tree.Children(p.node) {
		switch p.tree.Name(c).Local {
		case "dTable", "spPr", "extLst":
			return c
		}
	}
	return xmltree.None
}

func (p *PlotArea) addAxis(k Kind, pos Position) *axisElement {
	id := p.NextAxisID()
	return newAxisElement(p.tree, p.node, p.insertionPoint(), k, id, pos)
}

// AddCategoryAxis appends a category axis drawn at pos.
func (p *PlotArea) AddCategoryAxis(pos Position) *CategoryAxis {
	el := p.addAxis(KindCategory, pos)
	return &CategoryAxis{Axis: NewAxis(el), el: el}
}

// AddValueAxis appends a value axis drawn at pos.
func (p *PlotArea) AddValueAxis(pos Position) *ValueAxis {
	el := p.addAxis(KindValue, pos)
	return &ValueAxis{Axis: NewAxis(el), el: el}
}

// AddDateAxis appends a date axis drawn at pos.
func (p *PlotArea) AddDateAxis(pos Position) *DateAxis {
	el := p.addAxis(KindDate, pos)
	return &DateAxis{Axis: NewAxis(el), el: el}
}

// AddSeriesAxis appends a series axis drawn at pos.
func (p *PlotArea) AddSeriesAxis(pos Position) *SeriesAxis {
	el := p.addAxis(KindSeries, pos)
	return &SeriesAxis{Axis: NewAxis(el), el: el}
}

// required children of every axis; their absence makes the chart unusable.
// Each entry lists the alternatives of one schema choice.
var requiredAxisChildren = [][]string{
	{"axId"}, {"scaling"}, {"axPos"}, {"crossAx"}, {"crosses", "crossesAt"},
}

func hasAnyChild(tree *xmltree.Tree, id xmltree.NodeID, locals []string) bool {
	for _, l := range locals {
		if tree.Child(id, ooxml.C(l)) != xmltree.None {
			return true
		}
	}
	return false
}

// Axes returns every axis in document order. An axis that lacks one of its
// required children fails with ErrMalformedDocument.
func (p *PlotArea) Axes() ([]*Axis, error) {
	var out []*Axis
	for _, c := range p.tree.Children(p.node) {
		k, ok := kindOf(p.tree.Name(c).Local)
		if !ok || p.tree.Name(c).Space != ooxml.NsC {
			continue
		}
		for _, req := range requiredAxisChildren {
			if !hasAnyChild(p.tree, c, req) {
				return nil, errs.Malformed("%s axis %d lacks %s", k, len(out), strings.Join(req, " or "))
			}
		}
		out = append(out, NewAxis(&axisElement{tree: p.tree, node: c, kind: k}))
	}
	return out, nil
}

// Axis returns the axis with identifier id.
func (p *PlotArea) Axis(id uint32) (*Axis, bool) {
	axes, err := p.Axes()
	if err != nil {
		return nil, false
	}
	for _, a := range axes {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// ChartTypes returns the local names of the chart groups, e.g. "barChart".
func (p *PlotArea) ChartTypes() []string {
	var out []string
	for _, c := range p.tree.Children(p.node) {
		name := p.tree.Name(c).Local
		if name != "Chart" && strings.HasSuffix(name, "Chart") {
			out = append(out, name)
		}
	}
	return out
}

// TypeNames maps chart group element names to display names.
var TypeNames = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// TypeName returns the display name of the first chart group, or "" when
// the plot area holds none.
func (p *PlotArea) TypeName() string {
	types := p.ChartTypes()
	if len(types) == 0 {
		return ""
	}
	if name, ok := TypeNames[types[0]]; ok {
		return name
	}
	return types[0]
}
