package drawing

import (
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Connector is an xdr:cxnSp: a line that may join two shapes.
type Connector struct {
	base
}

var lnOrder = []string{
	"noFill", "solidFill", "gradFill", "pattFill", "prstDash", "custDash",
	"round", "bevel", "miter", "headEnd", "tailEnd", "extLst",
}

var cNvCxnSpPrOrder = []string{"cxnSpLocks", "stCxn", "endCxn", "extLst"}

// ShapeType returns the preset geometry, "line" for new connectors.
func (c *Connector) ShapeType() string {
	return presetGeometry(c.tree(), c.node)
}

// SetShapeType replaces the preset geometry, e.g. "bentConnector3".
func (c *Connector) SetShapeType(prst string) error {
	return setPresetGeometry(c.tree(), c.node, prst)
}

// TypeLabel returns the human-readable type of the connector.
func (c *Connector) TypeLabel() string {
	return TypeLabel(c.ShapeType(), c.Name())
}

func (c *Connector) line(create bool) xmltree.NodeID {
	tree := c.tree()
	spPr := tree.Child(c.node, ooxml.XDR("spPr"))
	if !create {
		return tree.Child(spPr, ooxml.A("ln"))
	}
	return tree.EnsureChild(spPr, ooxml.A("ln"), spPrOrder)
}

func (c *Connector) arrow(local string) ArrowHead {
	v, ok := c.tree().Attr(c.tree().Child(c.line(false), ooxml.A(local)), "type")
	if !ok {
		return ArrowNone
	}
	return ArrowHead(v)
}

// HeadEnd returns the line end drawn at the start point.
func (c *Connector) HeadEnd() ArrowHead { return c.arrow("headEnd") }

// TailEnd returns the line end drawn at the end point.
func (c *Connector) TailEnd() ArrowHead { return c.arrow("tailEnd") }

// SetArrowHeads sets both line ends.
func (c *Connector) SetArrowHeads(head, tail ArrowHead) error {
	for _, h := range []ArrowHead{head, tail} {
		if h.Style() == 0 {
			return errs.Invalid("unknown arrow head %q", h)
		}
	}
	tree := c.tree()
	ln := c.line(true)
	tree.SetAttr(tree.EnsureChild(ln, ooxml.A("headEnd"), lnOrder), "type", string(head))
	tree.SetAttr(tree.EnsureChild(ln, ooxml.A("tailEnd"), lnOrder), "type", string(tail))
	return nil
}

func (c *Connector) cNvCxnSpPr() xmltree.NodeID {
	return c.tree().Path(c.node, ooxml.XDR("nvCxnSpPr"), ooxml.XDR("cNvCxnSpPr"))
}

// Connect glues the start of the connector to start and its end to end.
// Both shapes need an identifier.
func (c *Connector) Connect(start, end Shape) error {
	if start == nil || end == nil {
		return errs.Invalid("connector endpoint is nil")
	}
	if start.ID() == 0 || end.ID() == 0 {
		return errs.Invalid("connector endpoints need shape ids (got %d and %d)", start.ID(), end.ID())
	}
	tree := c.tree()
	props := c.cNvCxnSpPr()
	for local, id := range map[string]int{"stCxn": start.ID(), "endCxn": end.ID()} {
		n := tree.EnsureChild(props, ooxml.A(local), cNvCxnSpPrOrder)
		tree.SetAttr(n, "id", strconv.Itoa(id))
		tree.SetAttr(n, "idx", "0")
	}
	return nil
}

func (c *Connector) endpoint(local string) (int, bool) {
	n := c.tree().Child(c.cNvCxnSpPr(), ooxml.A(local))
	if n == xmltree.None {
		return 0, false
	}
	return attrInt(c.tree(), n, "id"), true
}

// StartID returns the id of the shape the start point is glued to.
func (c *Connector) StartID() (int, bool) { return c.endpoint("stCxn") }

// EndID returns the id of the shape the end point is glued to.
func (c *Connector) EndID() (int, bool) { return c.endpoint("endCxn") }

// Direction returns the compass heading from the start to the end point,
// taking flips of the transform into account.
func (c *Connector) Direction() string {
	t := c.Transform()
	w, h := anchor.EMUToPixels(t.CX), anchor.EMUToPixels(t.CY)
	if x := c.xfrm(); x != xmltree.None {
		if v, _ := c.tree().Attr(x, "flipH"); v == "1" {
			w = -w
		}
		if v, _ := c.tree().Attr(x, "flipV"); v == "1" {
			h = -h
		}
	}
	return Direction(w, h)
}
