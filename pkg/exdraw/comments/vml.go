package comments

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// DefaultAnchor is the client anchor of a new comment box, in
// "col1, dx1, row1, dy1, col2, dx2, row2, dy2" form with pixel offsets.
const DefaultAnchor = "1, 15, 0, 2, 3, 15, 3, 16"

const (
	noteShapeType = "_x0000_t202"
	shapeIDBase   = 1024
)

// LegacyDrawing is the VML drawing that carries the comment boxes of a
// worksheet.
type LegacyDrawing struct {
	part   *opc.Part
	tree   *xmltree.Tree
	nextID int
}

// NewLegacyDrawing creates an empty VML drawing stored in part, with the
// note shape type declared.
func NewLegacyDrawing(part *opc.Part) *LegacyDrawing {
	tree := xmltree.New(xml.Name{Local: "xml"},
		xmltree.Namespace{Prefix: "v", URI: ooxml.NsVML},
		xmltree.Namespace{Prefix: "o", URI: ooxml.NsOffice},
		xmltree.Namespace{Prefix: "x", URI: ooxml.NsExcelVML})
	tree.AppendElement(tree.Root(), xmltree.Element{
		Name: ooxml.O("shapelayout"),
		Attr: []xml.Attr{{Name: ooxml.V("ext"), Value: "edit"}},
		Children: []xmltree.Element{{
			Name: ooxml.O("idmap"),
			Attr: []xml.Attr{{Name: ooxml.V("ext"), Value: "edit"}, ooxml.Attr("data", "1")},
		}},
	})
	tree.AppendElement(tree.Root(), xmltree.Element{
		Name: ooxml.V("shapetype"),
		Attr: []xml.Attr{
			ooxml.Attr("id", noteShapeType),
			ooxml.Attr("coordsize", "21600,21600"),
			{Name: ooxml.O("spt"), Value: "202"},
			ooxml.Attr("path", "m,l,21600r21600,l21600,xe"),
		},
		Children: []xmltree.Element{
			{Name: ooxml.V("stroke"), Attr: []xml.Attr{ooxml.Attr("joinstyle", "miter")}},
			{Name: ooxml.V("path"), Attr: []xml.Attr{
				ooxml.Attr("gradientshapeok", "t"),
				{Name: ooxml.O("connecttype"), Value: "rect"},
			}},
		},
	})
	return &LegacyDrawing{part: part, tree: tree, nextID: shapeIDBase + 1}
}

// LoadLegacyDrawing parses the VML stored in part. VML is loosely formed, so
// the parser accepts unclosed HTML elements.
func LoadLegacyDrawing(part *opc.Part) (*LegacyDrawing, error) {
	if len(part.Data()) == 0 {
		return NewLegacyDrawing(part), nil
	}
	tree, err := xmltree.ParseLenient(bytes.NewReader(part.Data()))
	if err != nil {
		return nil, errs.New(part.Name(), "load", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
	}
	d := &LegacyDrawing{part: part, tree: tree, nextID: shapeIDBase + 1}
	for _, s := range d.Shapes() {
		if n := s.number(); n >= d.nextID {
			d.nextID = n + 1
		}
	}
	return d, nil
}

// Part returns the backing part.
func (d *LegacyDrawing) Part() *opc.Part { return d.part }

// NewCommentShape appends a hidden note box at the default anchor.
func (d *LegacyDrawing) NewCommentShape() *Shape {
	id := fmt.Sprintf("_x0000_s%d", d.nextID)
	d.nextID++

	node := d.tree.AppendElement(d.tree.Root(), xmltree.Element{
		Name: ooxml.V("shape"),
		Attr: []xml.Attr{
			ooxml.Attr("id", id),
			ooxml.Attr("type", "#"+noteShapeType),
			ooxml.Attr("style", "position:absolute;margin-left:59.25pt;margin-top:1.5pt;width:108pt;height:59.25pt;z-index:1;visibility:hidden"),
			ooxml.Attr("fillcolor", "#ffffe1"),
			{Name: ooxml.O("insetmode"), Value: "auto"},
		},
		Children: []xmltree.Element{
			{Name: ooxml.V("fill"), Attr: []xml.Attr{ooxml.Attr("color2", "#ffffe1")}},
			{Name: ooxml.V("shadow"), Attr: []xml.Attr{
				ooxml.Attr("on", "t"), ooxml.Attr("color", "black"), ooxml.Attr("obscured", "t"),
			}},
			{Name: ooxml.V("path"), Attr: []xml.Attr{{Name: ooxml.O("connecttype"), Value: "none"}}},
			{Name: ooxml.V("textbox"), Attr: []xml.Attr{ooxml.Attr("style", "mso-direction-alt:auto")},
				Children: []xmltree.Element{{
					Name: xml.Name{Local: "div"},
					Attr: []xml.Attr{ooxml.Attr("style", "text-align:left")},
				}}},
			{Name: ooxml.X("ClientData"), Attr: []xml.Attr{ooxml.Attr("ObjectType", "Note")},
				Children: []xmltree.Element{
					{Name: ooxml.X("MoveWithCells")},
					{Name: ooxml.X("SizeWithCells")},
					{Name: ooxml.X("Anchor"), Text: DefaultAnchor},
					{Name: ooxml.X("AutoFill"), Text: "False"},
					{Name: ooxml.X("Row"), Text: "0"},
					{Name: ooxml.X("Column"), Text: "0"},
				}},
		},
	})
	return &Shape{tree: d.tree, node: node}
}

// Shapes returns the comment boxes in document order.
func (d *LegacyDrawing) Shapes() []*Shape {
	var out []*Shape
	for _, c := range d.tree.ChildrenNamed(d.tree.Root(), ooxml.V("shape")) {
		out = append(out, &Shape{tree: d.tree, node: c})
	}
	return out
}

// FindShape returns the comment box bound to the zero-based cell.
func (d *LegacyDrawing) FindShape(row, col int) (*Shape, bool) {
	for _, s := range d.Shapes() {
		r, c, ok := s.Cell()
		if ok && r == row && c == col {
			return s, true
		}
	}
	return nil, false
}

// Commit serializes the drawing into its part.
func (d *LegacyDrawing) Commit() error {
	data, err := d.tree.Bytes()
	if err != nil {
		return errs.New(d.part.Name(), "commit", err)
	}
	d.part.SetData(data)
	return nil
}

// Shape is a VML comment box.
type Shape struct {
	tree *xmltree.Tree
	node xmltree.NodeID
}

// ID returns the shape id attribute.
func (s *Shape) ID() string {
	id, _ := s.tree.Attr(s.node, "id")
	return id
}

func (s *Shape) number() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(s.ID(), "_x0000_s"))
	return n
}

func (s *Shape) clientData() xmltree.NodeID {
	return s.tree.Child(s.node, ooxml.X("ClientData"))
}

var clientDataOrder = []string{"MoveWithCells", "SizeWithCells", "Anchor", "AutoFill", "Row", "Column", "Visible"}

func (s *Shape) field(local string) string {
	cd := s.clientData()
	if cd == xmltree.None {
		return ""
	}
	return strings.TrimSpace(s.tree.Text(s.tree.Child(cd, ooxml.X(local))))
}

func (s *Shape) setField(local, value string) {
	cd := s.clientData()
	if cd == xmltree.None {
		cd = s.tree.Append(s.node, ooxml.X("ClientData"))
		s.tree.SetAttr(cd, "ObjectType", "Note")
	}
	s.tree.SetText(s.tree.EnsureChild(cd, ooxml.X(local), clientDataOrder), value)
}

// Anchor returns the client anchor string.
func (s *Shape) Anchor() string { return s.field("Anchor") }

// SetAnchor replaces the client anchor string.
func (s *Shape) SetAnchor(v string) { s.setField("Anchor", v) }

// Cell returns the zero-based cell the box is bound to.
func (s *Shape) Cell() (row, col int, ok bool) {
	r, err1 := strconv.Atoi(s.field("Row"))
	c, err2 := strconv.Atoi(s.field("Column"))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return r, c, true
}

// SetCell binds the box to a zero-based cell.
func (s *Shape) SetCell(row, col int) {
	s.setField("Row", strconv.Itoa(row))
	s.setField("Column", strconv.Itoa(col))
}

// Visible reports whether the box is shown without hovering.
func (s *Shape) Visible() bool {
	cd := s.clientData()
	return cd != xmltree.None && s.tree.Child(cd, ooxml.X("Visible")) != xmltree.None
}
