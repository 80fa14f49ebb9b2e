package drawing

import (
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
	"go.uber.org/zap"
)

// Group is an xdr:grpSp. Members are positioned in the group's child
// coordinate space and carry no cell anchor of their own.
type Group struct {
	base
}

// Shapes returns the direct members of the group in document order.
func (g *Group) Shapes() []Shape {
	var out []Shape
	for _, c := range g.tree().Children(g.node) {
		if s := g.d.wrap(c, nil); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// SetCoordinates sets the group extent and its child coordinate space to
// the same rectangle.
func (g *Group) SetCoordinates(c anchor.ChildAnchor) {
	tree := g.tree()
	x := g.xfrm()
	if x == xmltree.None {
		return
	}
	anchor.WriteXfrm(tree, x, c)
	order := []string{"off", "ext", "chOff", "chExt"}
	chOff := tree.EnsureChild(x, ooxml.A("chOff"), order)
	tree.SetAttr(chOff, "x", strconv.FormatInt(c.X, 10))
	tree.SetAttr(chOff, "y", strconv.FormatInt(c.Y, 10))
	chExt := tree.EnsureChild(x, ooxml.A("chExt"), order)
	tree.SetAttr(chExt, "cx", strconv.FormatInt(c.CX, 10))
	tree.SetAttr(chExt, "cy", strconv.FormatInt(c.CY, 10))
}

// add places e after the existing members, ahead of any extension list.
func (g *Group) add(e xmltree.Element, c anchor.ChildAnchor) base {
	tree := g.tree()
	node := tree.InsertElement(g.node, tree.Child(g.node, ooxml.XDR("extLst")), e)
	b := base{d: g.d, node: node, spec: shapeKinds[e.Name]}
	b.SetTransform(c)
	g.d.log.Debug("group member created",
		zap.Stringer("kind", b.spec.kind), zap.Int("group", g.ID()), zap.String("part", g.d.partName()))
	return b
}

// CreateSimpleShape adds an auto shape to the group.
func (g *Group) CreateSimpleShape(c anchor.ChildAnchor) *SimpleShape {
	return &SimpleShape{base: g.add(simpleShapePrototype(false), c)}
}

// CreateTextbox adds a text box to the group.
func (g *Group) CreateTextbox(c anchor.ChildAnchor) *SimpleShape {
	return &SimpleShape{base: g.add(simpleShapePrototype(true), c)}
}

// CreateConnector adds a line to the group.
func (g *Group) CreateConnector(c anchor.ChildAnchor) *Connector {
	return &Connector{base: g.add(connectorPrototype(), c)}
}

// CreateGroup adds a nested group.
func (g *Group) CreateGroup(c anchor.ChildAnchor) *Group {
	sub := &Group{base: g.add(groupPrototype(), c)}
	sub.SetCoordinates(c)
	return sub
}

// CreatePicture adds the workbook picture at pictureIndex to the group.
func (g *Group) CreatePicture(c anchor.ChildAnchor, pictureIndex int) (*Picture, error) {
	relID, err := g.d.pictureReference(pictureIndex)
	if err != nil {
		return nil, err
	}
	p := &Picture{base: g.add(picturePrototype(), c)}
	p.setRelationshipID(relID)
	return p, nil
}
