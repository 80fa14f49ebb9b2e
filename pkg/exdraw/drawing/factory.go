package drawing

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/comments"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ChartPartFormat names new chart parts.
const ChartPartFormat = "xl/charts/chart%d.xml"

// CreateAnchor returns a detached two-cell anchor. Offsets are in EMU.
func (d *Drawing) CreateAnchor(dx1, dy1, dx2, dy2 int64, col1, row1, col2, row2 int) *anchor.ClientAnchor {
	return anchor.NewClientAnchor(dx1, dy1, dx2, dy2, col1, row1, col2, row2)
}

// place stores a under the root and builds e inside the new container.
func (d *Drawing) place(a *anchor.ClientAnchor, e xmltree.Element) base {
	container := anchor.ToTwoCellAnchor(d.tree, d.tree.Root(), a)
	node := anchor.InsertShape(d.tree, container, e)
	return base{d: d, node: node, anchor: a, spec: shapeKinds[e.Name]}
}

func (d *Drawing) created(b base) {
	d.log.Debug("shape created",
		zap.Stringer("kind", b.spec.kind),
		zap.Int("id", b.ID()),
		zap.String("part", d.partName()))
}

// CreateSimpleShape adds a rectangle auto shape anchored at a.
func (d *Drawing) CreateSimpleShape(a *anchor.ClientAnchor) (*SimpleShape, error) {
	return d.createSimpleShape(a, false)
}

// CreateTextbox adds a text box anchored at a.
func (d *Drawing) CreateTextbox(a *anchor.ClientAnchor) (*SimpleShape, error) {
	return d.createSimpleShape(a, true)
}

func (d *Drawing) createSimpleShape(a *anchor.ClientAnchor, textbox bool) (*SimpleShape, error) {
	if err := checkAnchor(a); err != nil {
		return nil, err
	}
	id := d.NextShapeID()
	b := d.place(a, simpleShapePrototype(textbox))
	b.setID(id)
	b.SetName(shapeName(textbox, id))
	d.created(b)
	return &SimpleShape{base: b}, nil
}

func shapeName(textbox bool, id int) string {
	if textbox {
		return "TextBox " + strconv.Itoa(id)
	}
	return "Shape " + strconv.Itoa(id)
}

// CreateConnector adds a straight line anchored at a. The connector keeps
// identifier 0.
func (d *Drawing) CreateConnector(a *anchor.ClientAnchor) (*Connector, error) {
	if err := checkAnchor(a); err != nil {
		return nil, err
	}
	b := d.place(a, connectorPrototype())
	d.created(b)
	return &Connector{base: b}, nil
}

// CreateGroup adds an empty group anchored at a. The group keeps
// identifier 0.
func (d *Drawing) CreateGroup(a *anchor.ClientAnchor) (*Group, error) {
	if err := checkAnchor(a); err != nil {
		return nil, err
	}
	b := d.place(a, groupPrototype())
	d.created(b)
	return &Group{base: b}, nil
}

// pictureReference returns the id of a relationship from the drawing to the
// workbook picture at index, reusing an existing one.
func (d *Drawing) pictureReference(index int) (string, error) {
	if d.part == nil || d.host == nil {
		return "", errs.ErrUnattached
	}
	data, err := d.host.PictureByIndex(index)
	if err != nil {
		return "", errs.New(d.part.Name(), "create-picture", err)
	}
	if rel, ok := d.part.FindRelationship(data.Name(), ooxml.RelTypeImage); ok {
		return rel.ID, nil
	}
	rel, err := d.part.AddRelationship(data.Name(), opc.Internal, ooxml.RelTypeImage)
	if err != nil {
		return "", errs.New(d.part.Name(), "create-picture", err)
	}
	return rel.ID, nil
}

// CreatePicture adds the workbook picture at pictureIndex anchored at a.
func (d *Drawing) CreatePicture(a *anchor.ClientAnchor, pictureIndex int) (*Picture, error) {
	if err := checkAnchor(a); err != nil {
		return nil, err
	}
	relID, err := d.pictureReference(pictureIndex)
	if err != nil {
		return nil, err
	}
	id := d.NextShapeID()
	b := d.place(a, picturePrototype())
	b.setID(id)
	b.SetName("Picture " + strconv.Itoa(id))
	p := &Picture{base: b}
	p.setRelationshipID(relID)
	d.created(b)
	return p, nil
}

// CreateChart adds a new chart part, links it from the drawing and hosts it
// in a graphic frame anchored at a. The chart is returned for configuration.
func (d *Drawing) CreateChart(a *anchor.ClientAnchor) (*chart.Chart, error) {
	if err := checkAnchor(a); err != nil {
		return nil, err
	}
	if d.part == nil {
		return nil, errs.ErrUnattached
	}
	pkg := d.part.Package()
	name := pkg.NextPartName(ChartPartFormat, ooxml.ContentTypeChart)
	part, err := pkg.CreatePart(name, ooxml.ContentTypeChart)
	if err != nil {
		return nil, errs.New(d.part.Name(), "create-chart", err)
	}
	rel, err := d.part.AddRelationship(part.Name(), opc.Internal, ooxml.RelTypeChart)
	if err != nil {
		return nil, errs.New(d.part.Name(), "create-chart", err)
	}
	c := chart.New(part)
	d.charts[rel.ID] = c

	frame := d.createGraphicFrame(a)
	frame.setChart(rel.ID)
	d.log.Debug("chart created", zap.String("chart", part.Name()), zap.String("rel", rel.ID), zap.String("frame", frame.Name()))
	return c, nil
}

// createGraphicFrame adds a graphic frame numbered by the drawing's own
// frame counter, independent of shape ids.
func (d *Drawing) createGraphicFrame(a *anchor.ClientAnchor) *GraphicFrame {
	b := d.place(a, graphicFramePrototype())
	f := &GraphicFrame{base: b}
	id := d.frames
	d.frames++
	f.SetID(id)
	f.SetName(d.opts.FrameNamePrefix + strconv.Itoa(id))
	return f
}

// CellComment is a cell note together with the legacy shape displaying it.
type CellComment struct {
	*comments.Comment
	Shape *comments.Shape
}

// CreateCellComment adds a comment to the cell at the anchor's first column
// and row. A second comment on the same cell fails with
// errs.ErrDuplicateComment before anything is created, and a comments part
// created for this call is removed again when the note box cannot be made.
// When the anchor is set, its extent is copied to the note box in pixels.
func (d *Drawing) CreateCellComment(a *anchor.ClientAnchor) (*CellComment, error) {
	if err := checkAnchor(a); err != nil {
		return nil, err
	}
	if d.host == nil {
		return nil, errs.ErrUnattached
	}
	ref, err := excelize.CoordinatesToCellName(a.Col1()+1, a.Row1()+1)
	if err != nil {
		return nil, errs.Invalid("comment anchor: %v", err)
	}

	existing, err := d.host.CommentsTable(false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, ok := existing.Find(ref); ok {
			return nil, errs.New(existing.Part().Name(), "create-cell-comment", fmt.Errorf("cell %s: %w", ref, errs.ErrDuplicateComment))
		}
	}

	table, err := d.host.CommentsTable(true)
	if err != nil {
		return nil, err
	}
	vml, err := d.host.LegacyDrawing(true)
	if err != nil {
		if existing == nil {
			d.host.DropCommentsTable()
		}
		return nil, err
	}

	c, err := table.NewComment(ref)
	if err != nil {
		if existing == nil {
			d.host.DropCommentsTable()
		}
		return nil, err
	}
	shape := vml.NewCommentShape()
	if a.IsSet() {
		shape.SetAnchor(vmlAnchor(a))
	}
	shape.SetCell(a.Row1(), a.Col1())
	d.log.Debug("cell comment created", zap.String("ref", ref), zap.String("shape", shape.ID()))
	return &CellComment{Comment: c, Shape: shape}, nil
}

// vmlAnchor renders a as a legacy client anchor with pixel offsets.
func vmlAnchor(a *anchor.ClientAnchor) string {
	return fmt.Sprintf("%d, %d, %d, %d, %d, %d, %d, %d",
		a.Col1(), anchor.EMUToPixels(a.Dx1()),
		a.Row1(), anchor.EMUToPixels(a.Dy1()),
		a.Col2(), anchor.EMUToPixels(a.Dx2()),
		a.Row2(), anchor.EMUToPixels(a.Dy2()))
}

func checkAnchor(a *anchor.ClientAnchor) error {
	if a == nil {
		return errs.Invalid("nil anchor")
	}
	return a.Validate()
}
