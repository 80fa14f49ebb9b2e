package drawing

import (
	"encoding/xml"
	"math"
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Kind identifies the shape variant stored in a drawing.
type Kind int

const (
	KindSimpleShape Kind = iota
	KindConnector
	KindPicture
	KindGraphicFrame
	KindGroup
)

var kindNames = [...]string{
	KindSimpleShape:  "shape",
	KindConnector:    "connector",
	KindPicture:      "picture",
	KindGraphicFrame: "graphicFrame",
	KindGroup:        "group",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Shape is a shape node of a drawing.
type Shape interface {
	Kind() Kind
	Node() xmltree.NodeID
	// Anchor is the cell anchor of a top-level shape, nil inside a group.
	Anchor() *anchor.ClientAnchor
	ID() int
	Name() string
	SetName(name string)
	// Transform is the offset and extent stored on the shape itself.
	Transform() anchor.ChildAnchor
	// Rotation is the clockwise rotation in degrees.
	Rotation() float64
	Drawing() *Drawing
}

type kindSpec struct {
	kind Kind
	nv   string     // non-visual properties container
	xfrm []xml.Name // path from the shape to its transform
	wrap func(base) Shape
}

var shapeKinds = map[xml.Name]kindSpec{
	ooxml.XDR("sp"): {
		kind: KindSimpleShape, nv: "nvSpPr",
		xfrm: []xml.Name{ooxml.XDR("spPr"), ooxml.A("xfrm")},
		wrap: func(b base) Shape { return &SimpleShape{base: b} },
	},
	ooxml.XDR("cxnSp"): {
		kind: KindConnector, nv: "nvCxnSpPr",
		xfrm: []xml.Name{ooxml.XDR("spPr"), ooxml.A("xfrm")},
		wrap: func(b base) Shape { return &Connector{base: b} },
	},
	ooxml.XDR("pic"): {
		kind: KindPicture, nv: "nvPicPr",
		xfrm: []xml.Name{ooxml.XDR("spPr"), ooxml.A("xfrm")},
		wrap: func(b base) Shape { return &Picture{base: b} },
	},
	ooxml.XDR("graphicFrame"): {
		kind: KindGraphicFrame, nv: "nvGraphicFramePr",
		xfrm: []xml.Name{ooxml.XDR("xfrm")},
		wrap: func(b base) Shape { return &GraphicFrame{base: b} },
	},
	ooxml.XDR("grpSp"): {
		kind: KindGroup, nv: "nvGrpSpPr",
		xfrm: []xml.Name{ooxml.XDR("grpSpPr"), ooxml.A("xfrm")},
		wrap: func(b base) Shape { return &Group{base: b} },
	},
}

// wrap builds the typed shape for node, or nil when node is not a shape.
func (d *Drawing) wrap(node xmltree.NodeID, a *anchor.ClientAnchor) Shape {
	spec, ok := shapeKinds[d.tree.Name(node)]
	if !ok {
		return nil
	}
	return spec.wrap(base{d: d, node: node, anchor: a, spec: spec})
}

type base struct {
	d      *Drawing
	node   xmltree.NodeID
	anchor *anchor.ClientAnchor
	spec   kindSpec
}

func (b *base) Kind() Kind                   { return b.spec.kind }
func (b *base) Node() xmltree.NodeID         { return b.node }
func (b *base) Anchor() *anchor.ClientAnchor { return b.anchor }
func (b *base) Drawing() *Drawing            { return b.d }

func (b *base) tree() *xmltree.Tree { return b.d.tree }

func (b *base) cNvPr() xmltree.NodeID {
	return b.tree().Path(b.node, ooxml.XDR(b.spec.nv), ooxml.XDR("cNvPr"))
}

// ID returns the cNvPr identifier, 0 when none was assigned.
func (b *base) ID() int {
	return attrInt(b.tree(), b.cNvPr(), "id")
}

func (b *base) setID(id int) {
	b.tree().SetAttr(b.cNvPr(), "id", strconv.Itoa(id))
}

func (b *base) Name() string {
	v, _ := b.tree().Attr(b.cNvPr(), "name")
	return v
}

func (b *base) SetName(name string) {
	b.tree().SetAttr(b.cNvPr(), "name", name)
}

// Description returns the alternative text.
func (b *base) Description() string {
	v, _ := b.tree().Attr(b.cNvPr(), "descr")
	return v
}

// SetDescription sets the alternative text.
func (b *base) SetDescription(text string) {
	b.tree().SetAttr(b.cNvPr(), "descr", text)
}

func (b *base) xfrm() xmltree.NodeID {
	return b.tree().Path(b.node, b.spec.xfrm...)
}

func (b *base) Transform() anchor.ChildAnchor {
	if x := b.xfrm(); x != xmltree.None {
		return anchor.ReadXfrm(b.tree(), x)
	}
	return anchor.ChildAnchor{}
}

// SetTransform stores the offset and extent of the shape.
func (b *base) SetTransform(c anchor.ChildAnchor) {
	if x := b.xfrm(); x != xmltree.None {
		anchor.WriteXfrm(b.tree(), x, c)
	}
}

func (b *base) Rotation() float64 {
	return float64(attrInt(b.tree(), b.xfrm(), "rot")) / 60000.0
}

// SetRotation stores a clockwise rotation in degrees.
func (b *base) SetRotation(degrees float64) {
	x := b.xfrm()
	if x == xmltree.None {
		return
	}
	if math.Abs(degrees) < 1e-6 {
		b.tree().RemoveAttr(x, "rot")
		return
	}
	b.tree().SetAttr(x, "rot", strconv.FormatInt(int64(math.Round(degrees*60000)), 10))
}

func attrInt(tree *xmltree.Tree, id xmltree.NodeID, local string) int {
	v, ok := tree.Attr(id, local)
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}
