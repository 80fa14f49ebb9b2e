package anchor

import (
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// ChildAnchor positions a shape inside a group, in EMU relative to the
// group's child coordinate space.
type ChildAnchor struct {
	X  int64 `json:"x"`
	Y  int64 `json:"y"`
	CX int64 `json:"cx"`
	CY int64 `json:"cy"`
}

// WriteXfrm stores c into an a:xfrm element.
func WriteXfrm(tree *xmltree.Tree, xfrm xmltree.NodeID, c ChildAnchor) {
	order := []string{"off", "ext", "chOff", "chExt"}
	off := tree.EnsureChild(xfrm, ooxml.A("off"), order)
	tree.SetAttr(off, "x", strconv.FormatInt(c.X, 10))
	tree.SetAttr(off, "y", strconv.FormatInt(c.Y, 10))
	ext := tree.EnsureChild(xfrm, ooxml.A("ext"), order)
	tree.SetAttr(ext, "cx", strconv.FormatInt(c.CX, 10))
	tree.SetAttr(ext, "cy", strconv.FormatInt(c.CY, 10))
}

// ReadXfrm reads the offset and extent of an a:xfrm element.
func ReadXfrm(tree *xmltree.Tree, xfrm xmltree.NodeID) ChildAnchor {
	var c ChildAnchor
	if off := tree.Child(xfrm, ooxml.A("off")); off != xmltree.None {
		c.X = attrInt(tree, off, "x")
		c.Y = attrInt(tree, off, "y")
	}
	if ext := tree.Child(xfrm, ooxml.A("ext")); ext != xmltree.None {
		c.CX = attrInt(tree, ext, "cx")
		c.CY = attrInt(tree, ext, "cy")
	}
	return c
}

func attrInt(tree *xmltree.Tree, id xmltree.NodeID, local string) int64 {
	v, _ := tree.Attr(id, local)
	n, _ := strconv.ParseInt(v, 10, 64)
	return n
}
