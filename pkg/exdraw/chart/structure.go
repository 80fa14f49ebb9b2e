package chart

import (
	"encoding/xml"
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Structure is the set of element accessors a concrete axis kind supplies to
// the Axis façade. Accessors documented as lazy create the element in schema
// position on first use; the others return xmltree.None when absent.
type Structure interface {
	Tree() *xmltree.Tree
	Node() xmltree.NodeID
	Kind() Kind

	AxisID() xmltree.NodeID
	AxisPosition() xmltree.NodeID
	Scaling() xmltree.NodeID
	// Crosses and CrossesAt are the two alternatives of the crossing
	// point; a loaded axis carries exactly one of them.
	Crosses() xmltree.NodeID
	CrossesAt() xmltree.NodeID

	// Lazy accessors.
	NumberFormat() xmltree.NodeID
	Delete() xmltree.NodeID
	MajorTickMark() xmltree.NodeID
	MinorTickMark() xmltree.NodeID
	ShapeProperties() xmltree.NodeID

	HasNumberFormat() bool

	// Gridlines returns the major or minor gridlines element, creating it
	// when create is set.
	Gridlines(major, create bool) xmltree.NodeID

	// CrossAxis records id as the axis this one crosses.
	CrossAxis(id uint32)
}

// Kind is the concrete element type of an axis.
type Kind int

const (
	KindCategory Kind = iota
	KindValue
	KindDate
	KindSeries
)

func (k Kind) String() string { return kindSpecs[k].local }

type kindSpec struct {
	local string
	order []string
	// extras are the kind-specific children of a new axis, after crosses.
	extras []xmltree.Element
}

// Leading content shared by every axis kind.
var axisShared = []string{
	"axId", "scaling", "delete", "axPos", "majorGridlines", "minorGridlines",
	"title", "numFmt", "majorTickMark", "minorTickMark", "tickLblPos", "spPr",
	"txPr", "crossAx", "crosses", "crossesAt",
}

func withShared(rest ...string) []string {
	out := make([]string, 0, len(axisShared)+len(rest))
	out = append(out, axisShared...)
	return append(out, rest...)
}

var kindSpecs = map[Kind]kindSpec{
	KindCategory: {
		local: "catAx",
		order: withShared("auto", "lblAlgn", "lblOffset", "tickLblSkip", "tickMarkSkip", "noMultiLvlLbl", "extLst"),
		extras: []xmltree.Element{
			valElement("auto", "1"),
			valElement("lblAlgn", "ctr"),
			valElement("lblOffset", "100"),
			valElement("noMultiLvlLbl", "0"),
		},
	},
	KindValue: {
		local:  "valAx",
		order:  withShared("crossBetween", "majorUnit", "minorUnit", "dispUnits", "extLst"),
		extras: []xmltree.Element{valElement("crossBetween", "between")},
	},
	KindDate: {
		local: "dateAx",
		order: withShared("auto", "lblOffset", "baseTimeUnit", "majorUnit", "majorTimeUnit", "minorUnit", "minorTimeUnit", "extLst"),
		extras: []xmltree.Element{
			valElement("auto", "1"),
			valElement("lblOffset", "100"),
			valElement("baseTimeUnit", "days"),
		},
	},
	KindSeries: {
		local: "serAx",
		order: withShared("tickLblSkip", "tickMarkSkip", "extLst"),
	},
}

func kindOf(local string) (Kind, bool) {
	for k, spec := range kindSpecs {
		if spec.local == local {
			return k, true
		}
	}
	return 0, false
}

var scalingOrder = []string{"logBase", "orientation", "max", "min", "extLst"}

func valElement(local, val string) xmltree.Element {
	return xmltree.Element{Name: ooxml.C(local), Attr: []xml.Attr{ooxml.Attr("val", val)}}
}

// axisElement implements Structure over a c:catAx, c:valAx, c:dateAx or
// c:serAx node.
type axisElement struct {
	tree *xmltree.Tree
	node xmltree.NodeID
	kind Kind
}

func (e *axisElement) Tree() *xmltree.Tree  { return e.tree }
func (e *axisElement) Node() xmltree.NodeID { return e.node }
func (e *axisElement) Kind() Kind           { return e.kind }

func (e *axisElement) child(local string) xmltree.NodeID {
	return e.tree.Child(e.node, ooxml.C(local))
}

func (e *axisElement) ensure(local string) xmltree.NodeID {
	return e.tree.EnsureChild(e.node, ooxml.C(local), kindSpecs[e.kind].order)
}

func (e *axisElement) AxisID() xmltree.NodeID       { return e.child("axId") }
func (e *axisElement) AxisPosition() xmltree.NodeID { return e.child("axPos") }
func (e *axisElement) Scaling() xmltree.NodeID      { return e.child("scaling") }
func (e *axisElement) Crosses() xmltree.NodeID      { return e.child("crosses") }
func (e *axisElement) CrossesAt() xmltree.NodeID    { return e.child("crossesAt") }
func (e *axisElement) HasNumberFormat() bool        { return e.child("numFmt") != xmltree.None }

func (e *axisElement) NumberFormat() xmltree.NodeID {
	if n := e.child("numFmt"); n != xmltree.None {
		return n
	}
	n := e.ensure("numFmt")
	e.tree.SetAttr(n, "formatCode", "General")
	e.tree.SetAttr(n, "sourceLinked", "1")
	return n
}

func (e *axisElement) Delete() xmltree.NodeID {
	if n := e.child("delete"); n != xmltree.None {
		return n
	}
	n := e.ensure("delete")
	e.tree.SetAttr(n, "val", "0")
	return n
}

func (e *axisElement) MajorTickMark() xmltree.NodeID   { return e.ensure("majorTickMark") }
func (e *axisElement) MinorTickMark() xmltree.NodeID   { return e.ensure("minorTickMark") }
func (e *axisElement) ShapeProperties() xmltree.NodeID { return e.ensure("spPr") }

func (e *axisElement) Gridlines(major, create bool) xmltree.NodeID {
	local := "minorGridlines"
	if major {
		local = "majorGridlines"
	}
	if !create {
		return e.child(local)
	}
	return e.ensure(local)
}

func (e *axisElement) CrossAxis(id uint32) {
	e.tree.SetAttr(e.ensure("crossAx"), "val", strconv.FormatUint(uint64(id), 10))
}

// newAxisElement builds a new axis of kind k with identifier id under parent,
// before ref.
func newAxisElement(tree *xmltree.Tree, parent, ref xmltree.NodeID, k Kind, id uint32, pos Position) *axisElement {
	spec := kindSpecs[k]
	children := []xmltree.Element{
		valElement("axId", strconv.FormatUint(uint64(id), 10)),
		{Name: ooxml.C("scaling"), Children: []xmltree.Element{valElement("orientation", orientationCodes[OrientationMinMax])}},
		valElement("delete", "0"),
		valElement("axPos", positionCodes[pos]),
		{Name: ooxml.C("numFmt"), Attr: []xml.Attr{ooxml.Attr("formatCode", "General"), ooxml.Attr("sourceLinked", "1")}},
		valElement("majorTickMark", tickMarkCodes[TickMarkCross]),
		valElement("minorTickMark", tickMarkCodes[TickMarkNone]),
		valElement("tickLblPos", "nextTo"),
		valElement("crossAx", "0"),
		valElement("crosses", crossesCodes[CrossesAutoZero]),
	}
	children = append(children, spec.extras...)
	node := tree.InsertElement(parent, ref, xmltree.Element{Name: ooxml.C(spec.local), Children: children})
	return &axisElement{tree: tree, node: node, kind: k}
}

// val reads the val attribute of node.
func val(tree *xmltree.Tree, node xmltree.NodeID) (string, bool) {
	if node == xmltree.None {
		return "", false
	}
	return tree.Attr(node, "val")
}

// boolVal reads a CT_Boolean, whose val defaults to true.
func boolVal(tree *xmltree.Tree, node xmltree.NodeID) bool {
	if node == xmltree.None {
		return false
	}
	v, ok := tree.Attr(node, "val")
	if !ok {
		return true
	}
	return v == "1" || v == "true"
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
