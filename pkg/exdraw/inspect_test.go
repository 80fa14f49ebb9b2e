package exdraw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/drawing"
)

// flowWorkbook saves a sheet with two labelled boxes joined by an arrow, a
// picture, a chart and a note.
func flowWorkbook(t *testing.T) string {
	t.Helper()
	w, err := NewWorkbook(DefaultOptions())
	require.NoError(t, err)
	index, err := w.AddPicture(pngBytes(t), "png")
	require.NoError(t, err)
	d, err := firstSheet(t, w).Drawing(true)
	require.NoError(t, err)

	start, err := d.CreateSimpleShape(cells(0, 0, 2, 2))
	require.NoError(t, err)
	start.SetText("Start")
	end, err := d.CreateSimpleShape(cells(4, 0, 6, 2))
	require.NoError(t, err)
	end.SetText("End")
	end.SetRotation(90)

	line, err := d.CreateConnector(cells(2, 1, 4, 1))
	require.NoError(t, err)
	require.NoError(t, line.Connect(start, end))
	require.NoError(t, line.SetArrowHeads(drawing.ArrowNone, drawing.ArrowTriangle))
	line.SetTransform(anchor.ChildAnchor{X: 128 * anchor.EMUPerPixel, Y: 10 * anchor.EMUPerPixel, CX: 128 * anchor.EMUPerPixel})

	_, err = d.CreatePicture(cells(0, 4, 2, 8), index)
	require.NoError(t, err)

	c, err := d.CreateChart(cells(4, 4, 10, 14))
	require.NoError(t, err)
	c.SetTitle("Sales")
	cat := c.PlotArea().AddCategoryAxis(chart.PositionBottom)
	val := c.PlotArea().AddValueAxis(chart.PositionLeft)
	cat.CrossAxis(val.Axis)
	val.CrossAxis(cat.Axis)
	val.SetMinimum(0)
	val.SetMaximum(100)
	val.SetNumberFormat("0.00%")

	note, err := d.CreateCellComment(anchor.NewClientAnchor(0, 0, 0, 0, 1, 2, 4, 6))
	require.NoError(t, err)
	note.SetAuthor("qa")
	note.SetText("check flow")

	path := filepath.Join(t.TempDir(), "flow.xlsx")
	require.NoError(t, w.Save(path))
	return path
}

func TestInspectFileNotFound(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestInspectInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))
	_, err := Inspect(path, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestInspectStandard(t *testing.T) {
	data, err := Inspect(flowWorkbook(t), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "flow.xlsx", data.BookName)
	require.Len(t, data.Pictures, 1)
	assert.Equal(t, "xl/media/image1.png", data.Pictures[0].Part)

	sheet, ok := data.Sheets["Sheet1"]
	require.True(t, ok)
	assert.Equal(t, "xl/drawings/drawing1.xml", sheet.Drawing)

	// the picture has no text and is left out
	require.Len(t, sheet.Shapes, 3)
	startShape, endShape, line := sheet.Shapes[0], sheet.Shapes[1], sheet.Shapes[2]

	assert.Equal(t, "Start", startShape.Text)
	require.NotNil(t, startShape.ID)
	assert.Equal(t, 1, *startShape.ID)
	assert.Nil(t, startShape.W)
	assert.Nil(t, startShape.Anchor)

	require.NotNil(t, endShape.ID)
	assert.Equal(t, 2, *endShape.ID)
	require.NotNil(t, endShape.Rotation)
	assert.Equal(t, 90.0, *endShape.Rotation)

	assert.Equal(t, "connector", line.Kind)
	assert.Nil(t, line.ID)
	require.NotNil(t, line.BeginID)
	require.NotNil(t, line.EndID)
	assert.Equal(t, 1, *line.BeginID)
	assert.Equal(t, 2, *line.EndID)
	assert.Nil(t, line.BeginArrowStyle)
	require.NotNil(t, line.EndArrowStyle)
	assert.Equal(t, 2, *line.EndArrowStyle)
	assert.Equal(t, "E", line.Direction)
	assert.Equal(t, 128, line.L)
	assert.Equal(t, 10, line.T)

	require.Len(t, sheet.Charts, 1)
	ch := sheet.Charts[0]
	assert.Equal(t, "Diagramm0", ch.Name)
	assert.Equal(t, "xl/charts/chart1.xml", ch.Part)
	assert.Equal(t, "Sales", ch.Title)
	require.Len(t, ch.Axes, 2)
	assert.Equal(t, "catAx", ch.Axes[0].Kind)
	assert.Equal(t, "b", ch.Axes[0].Position)
	assert.True(t, ch.Axes[0].Visible)
	valAxis := ch.Axes[1]
	assert.Equal(t, "valAx", valAxis.Kind)
	assert.Equal(t, ch.Axes[0].ID, valAxis.CrossAx)
	require.NotNil(t, valAxis.Min)
	require.NotNil(t, valAxis.Max)
	assert.Equal(t, 0.0, *valAxis.Min)
	assert.Equal(t, 100.0, *valAxis.Max)
	assert.Nil(t, valAxis.LogBase)
	assert.Equal(t, "0.00%", valAxis.NumberFormat)
	assert.Equal(t, "percent", valAxis.FormatKind)

	require.Len(t, sheet.Comments, 1)
	note := sheet.Comments[0]
	assert.Equal(t, "B3", note.Ref)
	assert.Equal(t, "qa", note.Author)
	assert.Equal(t, "check flow", note.Text)
	assert.Equal(t, "1, 0, 2, 0, 4, 0, 6, 0", note.Anchor)
}

func TestInspectVerbose(t *testing.T) {
	data, err := Inspect(flowWorkbook(t), Options{Mode: ModeVerbose})
	require.NoError(t, err)
	sheet := data.Sheets["Sheet1"]

	require.Len(t, sheet.Shapes, 4)
	pic := sheet.Shapes[3]
	assert.Equal(t, "picture", pic.Kind)
	assert.Equal(t, "xl/media/image1.png", pic.Image)
	require.NotNil(t, pic.ID)
	assert.Equal(t, 3, *pic.ID)
	assert.Equal(t, 4, pic.ShapeID)

	line := sheet.Shapes[2]
	require.NotNil(t, line.W)
	assert.Equal(t, 128, *line.W)
	require.NotNil(t, line.Anchor)
	assert.Equal(t, "twoCellAnchor", line.Anchor.Kind)
	assert.Equal(t, 2, line.Anchor.From.Col)
	assert.Equal(t, 4, line.Anchor.To.Col)

	require.Len(t, sheet.Charts, 1)
	require.NotNil(t, sheet.Charts[0].Anchor)
	assert.Equal(t, 14, sheet.Charts[0].Anchor.To.Row)
}

func TestInspectLight(t *testing.T) {
	no := false
	data, err := Inspect(flowWorkbook(t), Options{Mode: ModeLight, IncludeComments: &no})
	require.NoError(t, err)
	sheet := data.Sheets["Sheet1"]
	assert.Empty(t, sheet.Drawing)
	assert.Empty(t, sheet.Shapes)
	assert.Empty(t, sheet.Charts)
	assert.Empty(t, sheet.Comments)
	assert.Len(t, data.Pictures, 1)
}

func TestAssignShapeIDs(t *testing.T) {
	results := []shapeParseResult{
		{excelID: 5},
		{isConnector: true, startCxnID: 5, endCxnID: 9},
		{excelID: 9},
		{isConnector: true, startCxnID: 7},
		{excelID: 0},
	}
	assignShapeIDs(results)

	require.NotNil(t, results[0].shape.ID)
	assert.Equal(t, 1, *results[0].shape.ID)
	require.NotNil(t, results[2].shape.ID)
	assert.Equal(t, 2, *results[2].shape.ID)
	assert.Nil(t, results[4].shape.ID)

	require.NotNil(t, results[1].shape.BeginID)
	assert.Equal(t, 1, *results[1].shape.BeginID)
	require.NotNil(t, results[1].shape.EndID)
	assert.Equal(t, 2, *results[1].shape.EndID)
	assert.Nil(t, results[3].shape.BeginID)
	assert.Nil(t, results[3].shape.EndID)
}
