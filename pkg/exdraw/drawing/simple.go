package drawing

import (
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// SimpleShape is an xdr:sp: an auto shape or a text box.
type SimpleShape struct {
	base
}

var spOrder = []string{"nvSpPr", "spPr", "style", "txBody", "extLst"}

// shape properties content, shared by sp, cxnSp and pic.
var spPrOrder = []string{
	"xfrm", "custGeom", "prstGeom", "noFill", "solidFill", "gradFill", "blipFill",
	"pattFill", "grpFill", "ln", "effectLst", "effectDag", "scene3d", "sp3d", "extLst",
}

func presetGeometry(tree *xmltree.Tree, shape xmltree.NodeID) string {
	v, _ := tree.Attr(tree.Path(shape, ooxml.XDR("spPr"), ooxml.A("prstGeom")), "prst")
	return v
}

func setPresetGeometry(tree *xmltree.Tree, shape xmltree.NodeID, prst string) error {
	if prst == "" {
		return errs.Invalid("empty preset geometry")
	}
	spPr := tree.Child(shape, ooxml.XDR("spPr"))
	if spPr == xmltree.None {
		return errs.Malformed("shape has no spPr")
	}
	geom := tree.Child(spPr, ooxml.A("prstGeom"))
	if geom == xmltree.None {
		geom = tree.InsertOrdered(spPr, prstGeom(prst), spPrOrder)
	}
	tree.SetAttr(geom, "prst", prst)
	return nil
}

// ShapeType returns the preset geometry, e.g. "rect" or "ellipse".
func (s *SimpleShape) ShapeType() string {
	return presetGeometry(s.tree(), s.node)
}

// SetShapeType replaces the preset geometry.
func (s *SimpleShape) SetShapeType(prst string) error {
	return setPresetGeometry(s.tree(), s.node, prst)
}

// IsTextbox reports whether the shape is flagged as a text box.
func (s *SimpleShape) IsTextbox() bool {
	v, _ := s.tree().Attr(s.tree().Path(s.node, ooxml.XDR("nvSpPr"), ooxml.XDR("cNvSpPr")), "txBox")
	return v == "1" || v == "true"
}

// TypeLabel returns the human-readable type of the shape.
func (s *SimpleShape) TypeLabel() string {
	if s.IsTextbox() {
		return PresetGeomMap["textBox"]
	}
	return TypeLabel(s.ShapeType(), s.Name())
}

// Text returns the text body, one line per paragraph.
func (s *SimpleShape) Text() string {
	tree := s.tree()
	body := tree.Child(s.node, ooxml.XDR("txBody"))
	var lines []string
	for _, p := range tree.ChildrenNamed(body, ooxml.A("p")) {
		var sb strings.Builder
		for _, c := range tree.Children(p) {
			switch tree.Name(c) {
			case ooxml.A("r"), ooxml.A("fld"):
				sb.WriteString(tree.Text(tree.Child(c, ooxml.A("t"))))
			case ooxml.A("br"):
				sb.WriteString("\n")
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// SetText replaces the text body with one paragraph per line of text.
func (s *SimpleShape) SetText(text string) {
	tree := s.tree()
	body := tree.Child(s.node, ooxml.XDR("txBody"))
	if body == xmltree.None {
		body = tree.InsertOrdered(s.node, xmltree.Element{
			Name: ooxml.XDR("txBody"),
			Children: []xmltree.Element{
				el(ooxml.A("bodyPr"), nil),
				el(ooxml.A("lstStyle"), nil),
			},
		}, spOrder)
	}
	for _, p := range tree.ChildrenNamed(body, ooxml.A("p")) {
		tree.Detach(p)
	}
	for _, line := range strings.Split(text, "\n") {
		p := el(ooxml.A("p"), nil)
		if line != "" {
			p.Children = append(p.Children, el(ooxml.A("r"), nil,
				el(ooxml.A("rPr"), attrs("lang", "en-US", "sz", "1100")),
				xmltree.Element{Name: ooxml.A("t"), Text: line}))
		}
		tree.AppendElement(body, p)
	}
}
