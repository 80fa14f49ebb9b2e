package exdraw

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/drawing"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/models"
	"go.uber.org/zap"
)

// Inspect reports the drawings, charts and notes of an Excel file.
func Inspect(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	wb, err := OpenWorkbook(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return wb.Report(filepath.Base(path)), nil
}

// Report builds the inspection result for the workbook. Failures confined
// to one sheet component are logged and leave that component empty.
func (w *Workbook) Report(bookName string) *models.WorkbookData {
	data := &models.WorkbookData{
		BookName: bookName,
		Sheets:   make(map[string]models.SheetData, len(w.sheets)),
	}
	for i, p := range w.AllPictures() {
		data.Pictures = append(data.Pictures, models.Picture{
			Index:       i,
			Part:        p.Name(),
			ContentType: p.ContentType(),
			Size:        len(p.Data()),
		})
	}
	for _, s := range w.sheets {
		data.Sheets[s.name] = w.inspectSheet(s)
	}
	return data
}

func (w *Workbook) warn(err *ExtractionError) {
	w.log.Warn("sheet component skipped",
		zap.String("sheet", err.SheetName), zap.String("component", err.Component), zap.Error(err.Err))
}

func (w *Workbook) inspectSheet(s *Sheet) models.SheetData {
	var data models.SheetData

	if w.opts.Mode != ModeLight {
		d, err := s.Drawing(false)
		if err != nil {
			w.warn(NewExtractionError(s.name, "drawing", err))
		} else if d != nil {
			shapes := flatten(d.Shapes())
			data.Drawing = d.Part().Name()
			data.Shapes = w.inspectShapes(shapes)
			data.Charts = w.inspectCharts(s.name, shapes)
		}
	}

	if w.opts.ShouldIncludeComments() {
		notes, err := inspectComments(s)
		if err != nil {
			w.warn(NewExtractionError(s.name, "comments", err))
		}
		data.Comments = notes
	}
	return data
}

// flatten lists the shapes depth first with groups replaced by their members.
func flatten(shapes []drawing.Shape) []drawing.Shape {
	var out []drawing.Shape
	for _, sh := range shapes {
		if g, ok := sh.(*drawing.Group); ok {
			out = append(out, flatten(g.Shapes())...)
			continue
		}
		out = append(out, sh)
	}
	return out
}

// shapeParseResult holds a reported shape with the data needed to resolve
// connector endpoints.
type shapeParseResult struct {
	shape       models.Shape
	excelID     int
	isConnector bool
	startCxnID  int
	endCxnID    int
}

func (w *Workbook) inspectShapes(shapes []drawing.Shape) []models.Shape {
	var results []shapeParseResult
	for _, sh := range shapes {
		var r shapeParseResult
		var text, typeLabel string

		switch s := sh.(type) {
		case *drawing.SimpleShape:
			text = s.Text()
			typeLabel = s.TypeLabel()
			r.isConnector = drawing.IsConnectorGeometry(s.ShapeType(), typeLabel)
			if r.isConnector {
				t := s.Transform()
				r.shape.Direction = drawing.Direction(anchor.EMUToPixels(t.CX), anchor.EMUToPixels(t.CY))
			}
		case *drawing.Connector:
			typeLabel = s.TypeLabel()
			r.isConnector = true
			r.shape.Direction = s.Direction()
			if head := s.HeadEnd(); head != drawing.ArrowNone {
				style := head.Style()
				r.shape.BeginArrowStyle = &style
			}
			if tail := s.TailEnd(); tail != drawing.ArrowNone {
				style := tail.Style()
				r.shape.EndArrowStyle = &style
			}
			r.startCxnID, _ = s.StartID()
			r.endCxnID, _ = s.EndID()
		case *drawing.Picture:
			typeLabel = "Picture"
			if part, err := s.PictureData(); err == nil {
				r.shape.Image = part.Name()
			}
		default:
			continue
		}

		if !w.opts.ShouldIncludeShape(text, typeLabel, r.isConnector) {
			continue
		}

		r.excelID = sh.ID()
		r.shape.ShapeID = sh.ID()
		r.shape.Kind = sh.Kind().String()
		r.shape.Name = sh.Name()
		r.shape.Text = text
		r.shape.Type = typeLabel

		t := sh.Transform()
		r.shape.L = anchor.EMUToPixels(t.X)
		r.shape.T = anchor.EMUToPixels(t.Y)
		if w.opts.ShouldIncludeSizes() {
			width, height := anchor.EMUToPixels(t.CX), anchor.EMUToPixels(t.CY)
			r.shape.W = &width
			r.shape.H = &height
		}
		if rot := sh.Rotation(); rot != 0 {
			r.shape.Rotation = &rot
		}
		if w.opts.ShouldIncludeAnchors() {
			r.shape.Anchor = modelAnchor(sh.Anchor())
		}
		results = append(results, r)
	}

	assignShapeIDs(results)

	out := make([]models.Shape, 0, len(results))
	for _, r := range results {
		out = append(out, r.shape)
	}
	return out
}

// assignShapeIDs assigns sequential IDs to shapes and resolves connector endpoints.
func assignShapeIDs(results []shapeParseResult) {
	excelIDToNodeID := make(map[int]int)
	nodeIndex := 0

	// First pass: assign IDs to non-connector shapes
	for i := range results {
		if !results[i].isConnector && results[i].excelID != 0 {
			nodeIndex++
			id := nodeIndex
			results[i].shape.ID = &id
			excelIDToNodeID[results[i].excelID] = nodeIndex
		}
	}

	// Second pass: resolve connector endpoints
	for i := range results {
		if !results[i].isConnector {
			continue
		}
		if nodeID, ok := excelIDToNodeID[results[i].startCxnID]; ok {
			results[i].shape.BeginID = &nodeID
		}
		if nodeID, ok := excelIDToNodeID[results[i].endCxnID]; ok {
			results[i].shape.EndID = &nodeID
		}
	}
}

func modelAnchor(a *anchor.ClientAnchor) *models.Anchor {
	if a == nil {
		return nil
	}
	f, t := a.From(), a.To()
	return &models.Anchor{
		Kind:   a.Kind().String(),
		EditAs: a.Type().EditAs(),
		From:   models.Marker{Col: f.Col, ColOff: f.ColOff, Row: f.Row, RowOff: f.RowOff},
		To:     models.Marker{Col: t.Col, ColOff: t.ColOff, Row: t.Row, RowOff: t.RowOff},
	}
}

func (w *Workbook) inspectCharts(sheetName string, shapes []drawing.Shape) []models.Chart {
	var out []models.Chart
	for _, sh := range shapes {
		f, ok := sh.(*drawing.GraphicFrame)
		if !ok || f.ChartRelationshipID() == "" {
			continue
		}
		c, err := f.Chart()
		if err != nil {
			w.warn(NewExtractionError(sheetName, "charts", err))
			continue
		}
		m := models.Chart{
			Name:      f.Name(),
			Part:      c.Part().Name(),
			ChartType: c.PlotArea().TypeName(),
			Title:     c.Title(),
		}
		axes, err := c.PlotArea().Axes()
		if err != nil {
			w.warn(NewExtractionError(sheetName, "charts", err))
		}
		for _, ax := range axes {
			m.Axes = append(m.Axes, modelAxis(ax))
		}

		t := f.Transform()
		m.L = anchor.EMUToPixels(t.X)
		m.T = anchor.EMUToPixels(t.Y)
		if w.opts.ShouldIncludeSizes() {
			width, height := anchor.EMUToPixels(t.CX), anchor.EMUToPixels(t.CY)
			m.W = &width
			m.H = &height
		}
		if w.opts.ShouldIncludeAnchors() {
			m.Anchor = modelAnchor(f.Anchor())
		}
		out = append(out, m)
	}
	return out
}

func modelAxis(ax *chart.Axis) models.Axis {
	m := models.Axis{
		ID:          ax.ID(),
		Kind:        ax.Kind().String(),
		Position:    ax.Position().String(),
		Visible:     ax.IsVisible(),
		CrossAx:     ax.CrossAxisID(),
		Orientation: ax.Orientation().String(),
	}
	if ax.IsSetMinimum() {
		v := ax.Minimum()
		m.Min = &v
	}
	if ax.IsSetMaximum() {
		v := ax.Maximum()
		m.Max = &v
	}
	if ax.IsSetLogBase() {
		v := ax.LogBase()
		m.LogBase = &v
	}
	if ax.HasNumberFormat() {
		m.NumberFormat = ax.NumberFormat()
		m.FormatKind = ax.NumberFormatKind().String()
	}
	return m
}

func inspectComments(s *Sheet) ([]models.Comment, error) {
	table, err := s.CommentsTable(false)
	if err != nil || table == nil {
		return nil, err
	}
	vml, err := s.LegacyDrawing(false)
	if err != nil {
		return nil, err
	}

	var out []models.Comment
	for _, c := range table.Comments() {
		m := models.Comment{Ref: c.Ref(), Author: c.Author(), Text: c.Text()}
		if vml != nil {
			row, col := c.Cell()
			if box, ok := vml.FindShape(row, col); ok {
				m.Anchor = box.Anchor()
				m.Visible = box.Visible()
			}
		}
		out = append(out, m)
	}
	return out, nil
}
