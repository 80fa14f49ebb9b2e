package drawing

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/comments"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
)

type testHost struct {
	t        *testing.T
	pkg      *opc.Package
	pictures []*opc.Part
	table    *comments.Table
	vml      *comments.LegacyDrawing
	vmlErr   error
}

func newTestHost(t *testing.T, pictures int) *testHost {
	t.Helper()
	h := &testHost{t: t, pkg: opc.New()}
	for i := 1; i <= pictures; i++ {
		name := h.pkg.NextPartName("xl/media/image%d.png", "image/png")
		part, err := h.pkg.CreatePart(name, "image/png")
		require.NoError(t, err)
		part.SetData([]byte{0x89, 'P', 'N', 'G', byte(i)})
		h.pictures = append(h.pictures, part)
	}
	return h
}

func (h *testHost) Package() *opc.Package { return h.pkg }

func (h *testHost) PictureByIndex(i int) (*opc.Part, error) {
	if i < 0 || i >= len(h.pictures) {
		return nil, errs.Invalid("picture index %d out of range [0, %d)", i, len(h.pictures))
	}
	return h.pictures[i], nil
}

func (h *testHost) CommentsTable(create bool) (*comments.Table, error) {
	if h.table == nil && create {
		part, err := h.pkg.CreatePart("xl/comments1.xml", ooxml.ContentTypeComments)
		if err != nil {
			return nil, err
		}
		h.table = comments.NewTable(part)
	}
	return h.table, nil
}

func (h *testHost) DropCommentsTable() {
	if h.table != nil && h.table.Len() == 0 {
		h.pkg.RemovePart(h.table.Part().Name())
		h.table = nil
	}
}

func (h *testHost) LegacyDrawing(create bool) (*comments.LegacyDrawing, error) {
	if h.vmlErr != nil {
		return nil, h.vmlErr
	}
	if h.vml == nil && create {
		part, err := h.pkg.CreatePart("xl/drawings/vmlDrawing1.vml", ooxml.ContentTypeVMLDrawing)
		if err != nil {
			return nil, err
		}
		h.vml = comments.NewLegacyDrawing(part)
	}
	return h.vml, nil
}

func (h *testHost) newDrawing(opts Options) *Drawing {
	h.t.Helper()
	part, err := h.pkg.CreatePart(h.pkg.NextPartName("xl/drawings/drawing%d.xml", ooxml.ContentTypeDrawing), ooxml.ContentTypeDrawing)
	require.NoError(h.t, err)
	return New(h, part, opts)
}

func cellAnchor(col1, row1, col2, row2 int) *anchor.ClientAnchor {
	return anchor.NewClientAnchor(0, 0, 0, 0, col1, row1, col2, row2)
}

func kindsOf(shapes []Shape) []Kind {
	var out []Kind
	for _, s := range shapes {
		out = append(out, s.Kind())
	}
	return out
}

func TestSimpleShapeIDsIncrease(t *testing.T) {
	d := New(nil, nil, Options{})
	for want := 1; want <= 5; want++ {
		s, err := d.CreateSimpleShape(cellAnchor(0, want, 2, want+1))
		require.NoError(t, err)
		assert.Equal(t, want, s.ID())
		assert.Equal(t, fmt.Sprintf("Shape %d", want), s.Name())
	}
	assert.Equal(t, 6, d.NextShapeID())
}

func TestShapeIDsFollowAnchorCount(t *testing.T) {
	d := New(nil, nil, Options{})

	first, err := d.CreateSimpleShape(cellAnchor(0, 0, 1, 1))
	require.NoError(t, err)
	line, err := d.CreateConnector(cellAnchor(1, 1, 2, 2))
	require.NoError(t, err)
	group, err := d.CreateGroup(cellAnchor(2, 2, 3, 3))
	require.NoError(t, err)
	box, err := d.CreateTextbox(cellAnchor(3, 3, 4, 4))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID())
	assert.Equal(t, 0, line.ID())
	assert.Equal(t, 0, group.ID())
	assert.Equal(t, 4, box.ID())
	assert.True(t, box.IsTextbox())
	assert.Equal(t, "TextBox", box.TypeLabel())
}

func TestStrictShapeIDsSkipExistingIDs(t *testing.T) {
	d := New(nil, nil, Options{StrictShapeIDs: true})
	s, err := d.CreateSimpleShape(cellAnchor(0, 0, 1, 1))
	require.NoError(t, err)
	s.setID(7)

	next, err := d.CreateSimpleShape(cellAnchor(0, 2, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, 8, next.ID())

	lax := New(nil, nil, Options{})
	s, err = lax.CreateSimpleShape(cellAnchor(0, 0, 1, 1))
	require.NoError(t, err)
	s.setID(7)
	assert.Equal(t, 2, lax.NextShapeID())
}

func TestInvalidAnchorLeavesDrawingUntouched(t *testing.T) {
	d := New(nil, nil, Options{})
	tests := []*anchor.ClientAnchor{
		nil,
		cellAnchor(3, 0, 1, 1),
		cellAnchor(0, 4, 1, 1),
		anchor.NewClientAnchor(-1, 0, 0, 0, 0, 0, 1, 1),
	}
	for _, a := range tests {
		_, err := d.CreateSimpleShape(a)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = d.CreateConnector(a)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	}
	assert.Empty(t, d.Shapes())
	assert.Equal(t, 1, d.NextShapeID())
}

func TestShapesSurviveReload(t *testing.T) {
	h := newTestHost(t, 1)
	d := h.newDrawing(Options{})

	_, err := d.CreateSimpleShape(cellAnchor(0, 0, 2, 2))
	require.NoError(t, err)
	_, err = d.CreateConnector(cellAnchor(2, 2, 4, 4))
	require.NoError(t, err)
	_, err = d.CreatePicture(cellAnchor(4, 4, 6, 6), 0)
	require.NoError(t, err)
	_, err = d.CreateGroup(cellAnchor(6, 6, 8, 8))
	require.NoError(t, err)
	_, err = d.CreateChart(cellAnchor(8, 8, 14, 20))
	require.NoError(t, err)

	want := []Kind{KindSimpleShape, KindConnector, KindPicture, KindGroup, KindGraphicFrame}
	assert.Equal(t, want, kindsOf(d.Shapes()))
	require.NoError(t, d.Commit())

	loaded, err := Load(h, d.Part(), Options{})
	require.NoError(t, err)
	shapes := loaded.Shapes()
	require.Len(t, shapes, 5)
	assert.Equal(t, want, kindsOf(shapes))

	for i, s := range shapes {
		require.NotNil(t, s.Anchor(), "shape %d", i)
		assert.Equal(t, 2*i, s.Anchor().Col1())
		assert.Equal(t, anchor.KindTwoCell, s.Anchor().Kind())
	}
	assert.Equal(t, []int{1, 0, 3, 0, 0}, []int{shapes[0].ID(), shapes[1].ID(), shapes[2].ID(), shapes[3].ID(), shapes[4].ID()})

	pic := shapes[2].(*Picture)
	data, err := pic.PictureData()
	require.NoError(t, err)
	assert.Same(t, h.pictures[0], data)

	frame := shapes[4].(*GraphicFrame)
	c, err := frame.Chart()
	require.NoError(t, err)
	assert.Equal(t, "xl/charts/chart1.xml", c.Part().Name())
}

func TestAnchorWritesThroughToStoredMarkers(t *testing.T) {
	d := New(nil, nil, Options{})
	a := cellAnchor(1, 1, 3, 3)
	a.SetType(anchor.DontMoveAndResize)
	s, err := d.CreateSimpleShape(a)
	require.NoError(t, err)

	a.SetCol2(9)
	stored := anchor.FromParent(d.Tree(), s.Node())
	require.NotNil(t, stored)
	assert.Equal(t, 9, stored.Col2())
	assert.Equal(t, anchor.DontMoveAndResize, stored.Type())
	editAs, _ := d.Tree().Attr(stored.Node(), "editAs")
	assert.Equal(t, "absolute", editAs)
}

func TestCreatePicture(t *testing.T) {
	h := newTestHost(t, 2)
	d := h.newDrawing(Options{})

	_, err := d.CreatePicture(cellAnchor(0, 0, 1, 1), 2)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = d.CreatePicture(cellAnchor(0, 0, 1, 1), -1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Empty(t, d.Shapes())
	assert.Empty(t, d.Part().Relationships())

	p1, err := d.CreatePicture(cellAnchor(0, 0, 1, 1), 1)
	require.NoError(t, err)
	p2, err := d.CreatePicture(cellAnchor(0, 2, 1, 3), 1)
	require.NoError(t, err)
	p3, err := d.CreatePicture(cellAnchor(0, 4, 1, 5), 0)
	require.NoError(t, err)

	assert.Equal(t, 1, p1.ID())
	assert.Equal(t, 2, p2.ID())
	assert.Equal(t, "Picture 3", p3.Name())
	assert.Equal(t, p1.RelationshipID(), p2.RelationshipID())
	assert.NotEqual(t, p1.RelationshipID(), p3.RelationshipID())
	assert.Len(t, d.Part().RelationshipsByType(ooxml.RelTypeImage), 2)

	data, err := p2.PictureData()
	require.NoError(t, err)
	assert.Same(t, h.pictures[1], data)

	rel, ok := d.Part().RelationshipByID(p1.RelationshipID())
	require.True(t, ok)
	assert.Equal(t, "../media/image2.png", rel.Target)
}

func TestGraphicFrameNames(t *testing.T) {
	h := newTestHost(t, 0)
	d := h.newDrawing(Options{})

	_, err := d.CreateSimpleShape(cellAnchor(0, 0, 1, 1))
	require.NoError(t, err)
	c1, err := d.CreateChart(cellAnchor(0, 2, 5, 10))
	require.NoError(t, err)
	c2, err := d.CreateChart(cellAnchor(0, 12, 5, 20))
	require.NoError(t, err)

	assert.Equal(t, "xl/charts/chart1.xml", c1.Part().Name())
	assert.Equal(t, "xl/charts/chart2.xml", c2.Part().Name())

	var frames []*GraphicFrame
	for _, s := range d.Shapes() {
		if f, ok := s.(*GraphicFrame); ok {
			frames = append(frames, f)
		}
	}
	require.Len(t, frames, 2)
	assert.Equal(t, "Diagramm0", frames[0].Name())
	assert.Equal(t, 0, frames[0].ID())
	assert.Equal(t, "Diagramm1", frames[1].Name())
	assert.Equal(t, 1, frames[1].ID())

	charts, err := d.Charts()
	require.NoError(t, err)
	require.Len(t, charts, 2)
	assert.Same(t, c1, charts[0])
	assert.Same(t, c2, charts[1])

	other := h.newDrawing(Options{FrameNamePrefix: "Chart "})
	c3, err := other.CreateChart(cellAnchor(0, 0, 5, 5))
	require.NoError(t, err)
	assert.Equal(t, "xl/charts/chart3.xml", c3.Part().Name())
	frame := other.Shapes()[0].(*GraphicFrame)
	assert.Equal(t, "Chart 0", frame.Name())
}

func TestChartConfiguredThroughDrawingIsCommitted(t *testing.T) {
	h := newTestHost(t, 0)
	d := h.newDrawing(Options{})
	c, err := d.CreateChart(cellAnchor(0, 0, 5, 5))
	require.NoError(t, err)
	c.SetTitle("Revenue")
	require.NoError(t, c.PlotArea().AddValueAxis(chart.PositionLeft).SetLogBase(10))
	require.NoError(t, d.Commit())

	loaded, err := Load(h, d.Part(), Options{})
	require.NoError(t, err)
	charts, err := loaded.Charts()
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "Revenue", charts[0].Title())
	axes, err := charts[0].PlotArea().Axes()
	require.NoError(t, err)
	require.Len(t, axes, 1)
	assert.Equal(t, 10.0, axes[0].LogBase())
}

func TestCreateCellComment(t *testing.T) {
	h := newTestHost(t, 0)
	d := h.newDrawing(Options{})

	first, err := d.CreateCellComment(cellAnchor(0, 0, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "A1", first.Ref())
	first.SetText("reviewed")

	_, err = d.CreateCellComment(cellAnchor(0, 0, 4, 4))
	assert.ErrorIs(t, err, errs.ErrDuplicateComment)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, 1, h.table.Len())
	assert.Len(t, h.vml.Shapes(), 1)

	second, err := d.CreateCellComment(cellAnchor(0, 1, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, "A2", second.Ref())
	assert.Equal(t, 2, h.table.Len())

	row, col, ok := second.Shape.Cell()
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	got, ok := h.table.Find("A1")
	require.True(t, ok)
	assert.Equal(t, "reviewed", got.Text())
	assert.Empty(t, d.Shapes())
}

func TestCellCommentLeavesNoPartWhenNoteBoxFails(t *testing.T) {
	h := newTestHost(t, 0)
	h.vmlErr = errs.Malformed("vml part unreadable")
	d := h.newDrawing(Options{})

	_, err := d.CreateCellComment(cellAnchor(1, 1, 3, 4))
	assert.ErrorIs(t, err, errs.ErrMalformedDocument)
	assert.Nil(t, h.table)
	_, ok := h.pkg.Part("xl/comments1.xml")
	assert.False(t, ok)

	h.vmlErr = nil
	c, err := d.CreateCellComment(cellAnchor(1, 1, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, "B2", c.Ref())
	assert.Equal(t, 1, h.table.Len())
}

func TestCellCommentKeepsExistingTableWhenNoteBoxFails(t *testing.T) {
	h := newTestHost(t, 0)
	d := h.newDrawing(Options{})
	_, err := d.CreateCellComment(cellAnchor(0, 0, 2, 2))
	require.NoError(t, err)

	h.vml = nil
	h.vmlErr = errs.Malformed("vml part unreadable")
	_, err = d.CreateCellComment(cellAnchor(0, 5, 2, 7))
	require.Error(t, err)
	require.NotNil(t, h.table)
	assert.Equal(t, 1, h.table.Len())
	_, ok := h.table.Find("A6")
	assert.False(t, ok)
}

func TestCellCommentAnchor(t *testing.T) {
	tests := []struct {
		name   string
		anchor *anchor.ClientAnchor
		want   string
		ref    string
	}{
		{
			name:   "offsets truncated to pixels",
			anchor: anchor.NewClientAnchor(3*anchor.EMUPerPixel+100, 9524, 10*anchor.EMUPerPixel, 5*anchor.EMUPerPixel+9524, 1, 2, 4, 6),
			want:   "1, 3, 2, 0, 4, 10, 6, 5",
			ref:    "B3",
		},
		{
			name:   "unset anchor keeps the default box",
			anchor: anchor.NewClientAnchor(0, 0, 0, 0, 0, 0, 0, 0),
			want:   comments.DefaultAnchor,
			ref:    "A1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHost(t, 0)
			d := h.newDrawing(Options{})
			c, err := d.CreateCellComment(tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Shape.Anchor())
			assert.Equal(t, tt.ref, c.Ref())
		})
	}
}

func TestUnattachedDrawing(t *testing.T) {
	d := New(nil, nil, Options{})
	assert.False(t, d.Attached())
	assert.ErrorIs(t, d.Commit(), errs.ErrUnattached)

	_, err := d.CreateChart(cellAnchor(0, 0, 1, 1))
	assert.ErrorIs(t, err, errs.ErrUnattached)
	_, err = d.CreatePicture(cellAnchor(0, 0, 1, 1), 0)
	assert.ErrorIs(t, err, errs.ErrUnattached)
	_, err = d.CreateCellComment(cellAnchor(0, 0, 1, 1))
	assert.ErrorIs(t, err, errs.ErrUnattached)

	charts, err := d.Charts()
	assert.NoError(t, err)
	assert.Empty(t, charts)

	_, err = d.CreateSimpleShape(cellAnchor(0, 0, 1, 1))
	assert.NoError(t, err)
}

func TestCommitDeclaresDrawingPrefixes(t *testing.T) {
	h := newTestHost(t, 0)
	part, err := h.pkg.CreatePart("xl/drawings/drawing1.xml", ooxml.ContentTypeDrawing)
	require.NoError(t, err)
	part.SetData([]byte(`<?xml version="1.0"?>` +
		`<s:wsDr xmlns:s="` + ooxml.NsXDR + `" xmlns:d="` + ooxml.NsA + `">` +
		`<s:twoCellAnchor editAs="oneCell">` +
		`<s:from><s:col>1</s:col><s:colOff>0</s:colOff><s:row>1</s:row><s:rowOff>0</s:rowOff></s:from>` +
		`<s:to><s:col>2</s:col><s:colOff>0</s:colOff><s:row>2</s:row><s:rowOff>0</s:rowOff></s:to>` +
		`<s:sp><s:nvSpPr><s:cNvPr id="5" name="Box"/><s:cNvSpPr/></s:nvSpPr>` +
		`<s:spPr><d:prstGeom prst="ellipse"><d:avLst/></d:prstGeom></s:spPr></s:sp>` +
		`<s:clientData/></s:twoCellAnchor></s:wsDr>`))

	d, err := Load(h, part, Options{})
	require.NoError(t, err)
	shapes := d.Shapes()
	require.Len(t, shapes, 1)
	sp := shapes[0].(*SimpleShape)
	assert.Equal(t, 5, sp.ID())
	assert.Equal(t, "ellipse", sp.ShapeType())
	assert.Equal(t, "AutoShape-Oval", sp.TypeLabel())

	require.NoError(t, d.Commit())
	out := part.Data()
	assert.True(t, bytes.Contains(out, []byte(`<xdr:wsDr`)), "%s", out)
	assert.True(t, bytes.Contains(out, []byte(`xmlns:xdr="`+ooxml.NsXDR+`"`)))
	assert.True(t, bytes.Contains(out, []byte(`xmlns:a="`+ooxml.NsA+`"`)))
	assert.True(t, bytes.Contains(out, []byte(`<a:prstGeom prst="ellipse">`)))
}

func TestLoadRejectsForeignRoot(t *testing.T) {
	h := newTestHost(t, 0)
	part, err := h.pkg.CreatePart("xl/drawings/drawing1.xml", ooxml.ContentTypeDrawing)
	require.NoError(t, err)

	part.SetData([]byte(`<worksheet xmlns="` + ooxml.NsMain + `"/>`))
	_, err = Load(h, part, Options{})
	assert.ErrorIs(t, err, errs.ErrMalformedDocument)

	part.SetData([]byte(`<xdr:wsDr xmlns:xdr="` + ooxml.NsXDR + `">`))
	_, err = Load(h, part, Options{})
	assert.ErrorIs(t, err, errs.ErrMalformedDocument)
}

func TestOneCellAnchorShape(t *testing.T) {
	h := newTestHost(t, 0)
	part, err := h.pkg.CreatePart("xl/drawings/drawing1.xml", ooxml.ContentTypeDrawing)
	require.NoError(t, err)
	part.SetData([]byte(`<xdr:wsDr xmlns:xdr="` + ooxml.NsXDR + `" xmlns:a="` + ooxml.NsA + `">` +
		`<xdr:oneCellAnchor>` +
		`<xdr:from><xdr:col>4</xdr:col><xdr:colOff>9525</xdr:colOff><xdr:row>7</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>` +
		`<xdr:ext cx="952500" cy="190500"/>` +
		`<xdr:sp><xdr:nvSpPr><xdr:cNvPr id="2" name="Note"/><xdr:cNvSpPr txBox="1"/></xdr:nvSpPr><xdr:spPr/></xdr:sp>` +
		`<xdr:clientData/></xdr:oneCellAnchor></xdr:wsDr>`))

	d, err := Load(h, part, Options{})
	require.NoError(t, err)
	shapes := d.Shapes()
	require.Len(t, shapes, 1)
	a := shapes[0].Anchor()
	assert.Equal(t, anchor.KindOneCell, a.Kind())
	assert.Equal(t, anchor.Marker{Col: 4, ColOff: 9525, Row: 7}, a.From())
	assert.Equal(t, anchor.Marker{}, a.To())
	assert.Equal(t, 1, d.NextShapeID())
}

func TestGroupMembers(t *testing.T) {
	h := newTestHost(t, 1)
	d := h.newDrawing(Options{})
	g, err := d.CreateGroup(cellAnchor(0, 0, 6, 6))
	require.NoError(t, err)
	g.SetCoordinates(anchor.ChildAnchor{X: 0, Y: 0, CX: 1000, CY: 500})

	box := g.CreateTextbox(anchor.ChildAnchor{X: 10, Y: 20, CX: 300, CY: 100})
	line := g.CreateConnector(anchor.ChildAnchor{X: 300, Y: 70, CX: 200 * anchor.EMUPerPixel})
	inner := g.CreateGroup(anchor.ChildAnchor{X: 600, Y: 0, CX: 400, CY: 400})
	inner.CreateSimpleShape(anchor.ChildAnchor{CX: 50, CY: 50})
	pic, err := g.CreatePicture(anchor.ChildAnchor{X: 700, CX: 100, CY: 100}, 0)
	require.NoError(t, err)
	_, err = g.CreatePicture(anchor.ChildAnchor{}, 3)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	members := g.Shapes()
	assert.Equal(t, []Kind{KindSimpleShape, KindConnector, KindGroup, KindPicture}, kindsOf(members))
	for _, m := range members {
		assert.Nil(t, m.Anchor())
		assert.Equal(t, 0, m.ID())
	}
	assert.Equal(t, anchor.ChildAnchor{X: 10, Y: 20, CX: 300, CY: 100}, box.Transform())
	assert.Equal(t, "E", line.Direction())
	assert.Len(t, inner.Shapes(), 1)
	assert.NotEmpty(t, pic.RelationshipID())

	assert.Len(t, d.Shapes(), 1)
	assert.Equal(t, anchor.ChildAnchor{CX: 1000, CY: 500}, g.Transform())
}

func TestSimpleShapeText(t *testing.T) {
	d := New(nil, nil, Options{})
	s, err := d.CreateSimpleShape(cellAnchor(0, 0, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, "", s.Text())

	s.SetText("Start\nCheck input")
	assert.Equal(t, "Start\nCheck input", s.Text())
	s.SetText("Done")
	assert.Equal(t, "Done", s.Text())

	require.NoError(t, s.SetShapeType("flowChartProcess"))
	assert.Equal(t, "AutoShape-FlowchartProcess", s.TypeLabel())
	assert.ErrorIs(t, s.SetShapeType(""), errs.ErrInvalidArgument)

	s.SetRotation(90)
	assert.Equal(t, 90.0, s.Rotation())
	s.SetRotation(0)
	assert.Equal(t, 0.0, s.Rotation())
}

func TestConnectorEnds(t *testing.T) {
	d := New(nil, nil, Options{})
	start, err := d.CreateSimpleShape(cellAnchor(0, 0, 1, 1))
	require.NoError(t, err)
	end, err := d.CreateSimpleShape(cellAnchor(3, 3, 4, 4))
	require.NoError(t, err)
	line, err := d.CreateConnector(cellAnchor(1, 1, 3, 3))
	require.NoError(t, err)

	assert.Equal(t, "line", line.ShapeType())
	assert.Equal(t, "Line", line.TypeLabel())
	assert.Equal(t, ArrowNone, line.HeadEnd())

	require.NoError(t, line.SetArrowHeads(ArrowNone, ArrowTriangle))
	assert.Equal(t, ArrowNone, line.HeadEnd())
	assert.Equal(t, ArrowTriangle, line.TailEnd())
	assert.Equal(t, 2, line.TailEnd().Style())
	assert.ErrorIs(t, line.SetArrowHeads("bogus", ArrowNone), errs.ErrInvalidArgument)

	_, ok := line.StartID()
	assert.False(t, ok)
	require.NoError(t, line.Connect(start, end))
	sid, ok := line.StartID()
	require.True(t, ok)
	eid, ok := line.EndID()
	require.True(t, ok)
	assert.Equal(t, start.ID(), sid)
	assert.Equal(t, end.ID(), eid)

	other, err := d.CreateConnector(cellAnchor(0, 0, 1, 1))
	require.NoError(t, err)
	assert.ErrorIs(t, line.Connect(start, other), errs.ErrInvalidArgument)

	line.SetTransform(anchor.ChildAnchor{CX: 100 * anchor.EMUPerPixel, CY: 100 * anchor.EMUPerPixel})
	assert.Equal(t, "SE", line.Direction())
	d.Tree().SetAttr(line.xfrm(), "flipV", "1")
	assert.Equal(t, "NE", line.Direction())
}
