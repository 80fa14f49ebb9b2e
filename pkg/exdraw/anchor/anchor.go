package anchor

import (
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Marker is a cell-relative coordinate. Offsets are in EMU.
type Marker struct {
	Col    int   `json:"col"`
	ColOff int64 `json:"col_off"`
	Row    int   `json:"row"`
	RowOff int64 `json:"row_off"`
}

// AnchorType is the move/resize policy of an anchored shape.
type AnchorType int

const (
	// Unspecified leaves the policy to the default (move, don't resize).
	Unspecified AnchorType = iota
	// MoveAndResize moves and resizes the shape with its cells.
	MoveAndResize
	// MoveDontResize moves the shape with its cells without resizing it.
	MoveDontResize
	// DontMoveDoResize resizes but does not move the shape.
	DontMoveDoResize
	// DontMoveAndResize neither moves nor resizes the shape.
	DontMoveAndResize
)

// EditAs values of xdr:twoCellAnchor.
const (
	EditAsAbsolute = "absolute"
	EditAsTwoCell  = "twoCell"
	EditAsOneCell  = "oneCell"
)

// EditAs returns the stored edit behavior for t.
func (t AnchorType) EditAs() string {
	switch t {
	case DontMoveAndResize:
		return EditAsAbsolute
	case MoveAndResize:
		return EditAsTwoCell
	case MoveDontResize:
		return EditAsOneCell
	default:
		return EditAsOneCell
	}
}

func typeFromEditAs(v string) AnchorType {
	switch v {
	case EditAsAbsolute:
		return DontMoveAndResize
	case EditAsTwoCell:
		return MoveAndResize
	case EditAsOneCell:
		return MoveDontResize
	}
	return Unspecified
}

// Kind is the container an anchor was stored under.
type Kind int

const (
	KindTwoCell Kind = iota
	KindOneCell
)

func (k Kind) String() string {
	if k == KindOneCell {
		return "oneCellAnchor"
	}
	return "twoCellAnchor"
}

// Geometry is the plain value content of a ClientAnchor.
type Geometry struct {
	From Marker
	To   Marker
	Type AnchorType
}

// ClientAnchor describes where a shape sits relative to the grid. Once
// stored, the anchor is bound to its markers in the drawing tree and its
// setters write through.
type ClientAnchor struct {
	geo  Geometry
	kind Kind

	tree     *xmltree.Tree
	node     xmltree.NodeID
	fromNode xmltree.NodeID
	toNode   xmltree.NodeID
}

// NewClientAnchor creates an unbound two-cell anchor.
func NewClientAnchor(dx1, dy1, dx2, dy2 int64, col1, row1, col2, row2 int) *ClientAnchor {
	return FromGeometry(Geometry{
		From: Marker{Col: col1, ColOff: dx1, Row: row1, RowOff: dy1},
		To:   Marker{Col: col2, ColOff: dx2, Row: row2, RowOff: dy2},
	})
}

// FromGeometry creates an unbound two-cell anchor from g.
func FromGeometry(g Geometry) *ClientAnchor {
	return &ClientAnchor{
		geo:      g,
		node:     xmltree.None,
		fromNode: xmltree.None,
		toNode:   xmltree.None,
	}
}

// Geometry returns the current anchor values.
func (a *ClientAnchor) Geometry() Geometry {
	return Geometry{From: a.From(), To: a.To(), Type: a.geo.Type}
}

// Clone returns an unbound copy of a.
func (a *ClientAnchor) Clone() *ClientAnchor {
	return FromGeometry(a.Geometry())
}

// Kind returns the container kind the anchor is stored under.
func (a *ClientAnchor) Kind() Kind { return a.kind }

// Bound reports whether a is bound to stored markers.
func (a *ClientAnchor) Bound() bool { return a.tree != nil }

// Node returns the anchor container node, or None when unbound.
func (a *ClientAnchor) Node() xmltree.NodeID { return a.node }

// Type returns the move/resize policy.
func (a *ClientAnchor) Type() AnchorType { return a.geo.Type }

// SetType changes the move/resize policy.
func (a *ClientAnchor) SetType(t AnchorType) {
	a.geo.Type = t
	if a.tree != nil && a.kind == KindTwoCell {
		a.tree.SetAttr(a.node, "editAs", t.EditAs())
	}
}

// From returns the first marker.
func (a *ClientAnchor) From() Marker {
	if a.tree != nil && a.fromNode != xmltree.None {
		return readMarker(a.tree, a.fromNode)
	}
	return a.geo.From
}

// To returns the second marker.
func (a *ClientAnchor) To() Marker {
	if a.tree != nil && a.toNode != xmltree.None {
		return readMarker(a.tree, a.toNode)
	}
	return a.geo.To
}

// SetFrom replaces the first marker.
func (a *ClientAnchor) SetFrom(m Marker) {
	a.geo.From = m
	if a.tree != nil && a.fromNode != xmltree.None {
		writeMarker(a.tree, a.fromNode, m)
	}
}

// SetTo replaces the second marker.
func (a *ClientAnchor) SetTo(m Marker) {
	a.geo.To = m
	if a.tree != nil && a.toNode != xmltree.None {
		writeMarker(a.tree, a.toNode, m)
	}
}

func (a *ClientAnchor) Col1() int  { return a.From().Col }
func (a *ClientAnchor) Row1() int  { return a.From().Row }
func (a *ClientAnchor) Col2() int  { return a.To().Col }
func (a *ClientAnchor) Row2() int  { return a.To().Row }
func (a *ClientAnchor) Dx1() int64 { return a.From().ColOff }
func (a *ClientAnchor) Dy1() int64 { return a.From().RowOff }
func (a *ClientAnchor) Dx2() int64 { return a.To().ColOff }
func (a *ClientAnchor) Dy2() int64 { return a.To().RowOff }

func (a *ClientAnchor) SetCol1(v int) { m := a.From(); m.Col = v; a.SetFrom(m) }
func (a *ClientAnchor) SetRow1(v int) { m := a.From(); m.Row = v; a.SetFrom(m) }
func (a *ClientAnchor) SetCol2(v int) { m := a.To(); m.Col = v; a.SetTo(m) }
func (a *ClientAnchor) SetRow2(v int) { m := a.To(); m.Row = v; a.SetTo(m) }

// IsSet reports whether any column or row of the anchor is non-zero.
func (a *ClientAnchor) IsSet() bool {
	f, t := a.From(), a.To()
	return !(f.Col == 0 && t.Col == 0 && f.Row == 0 && t.Row == 0)
}

// Validate checks that offsets are non-negative and From does not lie
// after To on either axis.
func (a *ClientAnchor) Validate() error {
	f, t := a.From(), a.To()
	if f.Col < 0 || f.Row < 0 || t.Col < 0 || t.Row < 0 {
		return errs.Invalid("anchor cell index is negative")
	}
	if f.ColOff < 0 || f.RowOff < 0 || t.ColOff < 0 || t.RowOff < 0 {
		return errs.Invalid("anchor offset is negative")
	}
	if a.kind == KindOneCell {
		return nil
	}
	if f.Col > t.Col || (f.Col == t.Col && f.ColOff > t.ColOff) {
		return errs.Invalid("anchor starts after it ends (columns %d..%d)", f.Col, t.Col)
	}
	if f.Row > t.Row || (f.Row == t.Row && f.RowOff > t.RowOff) {
		return errs.Invalid("anchor starts after it ends (rows %d..%d)", f.Row, t.Row)
	}
	return nil
}

// Order of xdr:twoCellAnchor content.
var twoCellOrder = []string{"from", "to", "sp", "grpSp", "graphicFrame", "cxnSp", "pic", "contentPart", "clientData"}

// ToTwoCellAnchor appends an xdr:twoCellAnchor holding a's markers under
// parent and binds a to the stored markers. The edit behavior is derived
// from a's anchor type.
func ToTwoCellAnchor(tree *xmltree.Tree, parent xmltree.NodeID, a *ClientAnchor) xmltree.NodeID {
	from, to := a.From(), a.To()

	node := tree.Append(parent, ooxml.XDR("twoCellAnchor"))
	tree.SetAttr(node, "editAs", a.geo.Type.EditAs())
	fromNode := tree.Append(node, ooxml.XDR("from"))
	writeMarker(tree, fromNode, from)
	toNode := tree.Append(node, ooxml.XDR("to"))
	writeMarker(tree, toNode, to)
	tree.Append(node, ooxml.XDR("clientData"))

	a.geo.From, a.geo.To = from, to
	a.kind = KindTwoCell
	a.tree, a.node, a.fromNode, a.toNode = tree, node, fromNode, toNode
	return node
}

// InsertShape builds e inside the anchor container in schema position.
func InsertShape(tree *xmltree.Tree, anchorNode xmltree.NodeID, e xmltree.Element) xmltree.NodeID {
	return tree.InsertOrdered(anchorNode, e, twoCellOrder)
}

// FromParent recovers the anchor of a shape node from its container. A
// one-cell anchor yields a zero To marker; its extent is not modeled. Nil is
// returned when the parent is not an anchor container.
func FromParent(tree *xmltree.Tree, shape xmltree.NodeID) *ClientAnchor {
	parent := tree.Parent(shape)
	if parent == xmltree.None {
		return nil
	}
	switch tree.Name(parent) {
	case ooxml.XDR("twoCellAnchor"):
		editAs, _ := tree.Attr(parent, "editAs")
		a := FromGeometry(Geometry{Type: typeFromEditAs(editAs)})
		a.kind = KindTwoCell
		a.tree, a.node = tree, parent
		a.fromNode = tree.Child(parent, ooxml.XDR("from"))
		a.toNode = tree.Child(parent, ooxml.XDR("to"))
		return a
	case ooxml.XDR("oneCellAnchor"):
		a := FromGeometry(Geometry{})
		a.kind = KindOneCell
		a.tree, a.node = tree, parent
		a.fromNode = tree.Child(parent, ooxml.XDR("from"))
		return a
	}
	return nil
}

var markerFields = []string{"col", "colOff", "row", "rowOff"}

func readMarker(tree *xmltree.Tree, node xmltree.NodeID) Marker {
	var m Marker
	for _, c := range tree.Children(node) {
		v, _ := strconv.ParseInt(tree.Text(c), 10, 64)
		switch tree.Name(c).Local {
		case "col":
			m.Col = int(v)
		case "colOff":
			m.ColOff = v
		case "row":
			m.Row = int(v)
		case "rowOff":
			m.RowOff = v
		}
	}
	return m
}

func writeMarker(tree *xmltree.Tree, node xmltree.NodeID, m Marker) {
	values := map[string]string{
		"col":    strconv.Itoa(m.Col),
		"colOff": strconv.FormatInt(m.ColOff, 10),
		"row":    strconv.Itoa(m.Row),
		"rowOff": strconv.FormatInt(m.RowOff, 10),
	}
	for _, f := range markerFields {
		c := tree.EnsureChild(node, ooxml.XDR(f), markerFields)
		tree.SetText(c, values[f])
	}
}
