package exdraw

import (
	"bytes"
	"encoding/xml"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/comments"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/drawing"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
	"go.uber.org/zap"
)

const (
	drawingPartFormat  = "xl/drawings/drawing%d.xml"
	commentsPartFormat = "xl/comments%d.xml"
	vmlPartFormat      = "xl/drawings/vmlDrawing%d.vml"
)

// worksheetOrder is the child sequence of a worksheet element.
var worksheetOrder = []string{
	"sheetPr", "dimension", "sheetViews", "sheetFormatPr", "cols", "sheetData",
	"sheetCalcPr", "sheetProtection", "protectedRanges", "scenarios", "autoFilter",
	"sortState", "dataConsolidate", "customSheetViews", "mergeCells", "phoneticPr",
	"conditionalFormatting", "dataValidations", "hyperlinks", "printOptions",
	"pageMargins", "pageSetup", "headerFooter", "rowBreaks", "colBreaks",
	"customProperties", "cellWatches", "ignoredErrors", "smartTags", "drawing",
	"legacyDrawing", "legacyDrawingHF", "drawingHF", "picture", "oleObjects",
	"controls", "webPublishItems", "tableParts", "extLst",
}

// Sheet is one worksheet. It hosts the sheet's drawing and owns the comment
// parts the drawing creates notes in.
type Sheet struct {
	wb   *Workbook
	name string
	part *opc.Part

	tree    *xmltree.Tree // worksheet XML, parsed on first edit
	dirty   bool
	drawing *drawing.Drawing
	table   *comments.Table
	vml     *comments.LegacyDrawing
}

var _ drawing.Host = (*Sheet)(nil)

// Name returns the sheet's tab name.
func (s *Sheet) Name() string { return s.name }

// Part returns the worksheet part.
func (s *Sheet) Part() *opc.Part { return s.part }

// Package implements drawing.Host.
func (s *Sheet) Package() *opc.Package { return s.wb.pkg }

// PictureByIndex implements drawing.Host.
func (s *Sheet) PictureByIndex(i int) (*opc.Part, error) { return s.wb.PictureByIndex(i) }

// related returns the part targeted by the sheet's first relationship of
// relType, or nil when there is none.
func (s *Sheet) related(relType string) (*opc.Part, error) {
	rels := s.part.RelationshipsByType(relType)
	if len(rels) == 0 {
		return nil, nil
	}
	return s.part.RelatedPart(rels[0].ID)
}

// Drawing returns the sheet's drawing. With create set, a missing drawing
// part is added and referenced from the worksheet; otherwise nil is
// returned for a sheet without drawing.
func (s *Sheet) Drawing(create bool) (*drawing.Drawing, error) {
	if s.drawing != nil {
		return s.drawing, nil
	}
	part, err := s.related(ooxml.RelTypeDrawing)
	if err != nil {
		return nil, err
	}
	if part != nil {
		d, err := drawing.Load(s, part, s.wb.opts.Drawing)
		if err != nil {
			return nil, err
		}
		s.drawing = d
		return d, nil
	}
	if !create {
		return nil, nil
	}
	part, relID, err := s.createRelated(drawingPartFormat, ooxml.ContentTypeDrawing, ooxml.RelTypeDrawing)
	if err != nil {
		return nil, err
	}
	if err := s.reference("drawing", relID); err != nil {
		return nil, err
	}
	s.drawing = drawing.New(s, part, s.wb.opts.Drawing)
	return s.drawing, nil
}

// CommentsTable implements drawing.Host.
func (s *Sheet) CommentsTable(create bool) (*comments.Table, error) {
	if s.table != nil {
		return s.table, nil
	}
	part, err := s.related(ooxml.RelTypeComments)
	if err != nil {
		return nil, err
	}
	if part != nil {
		t, err := comments.LoadTable(part)
		if err != nil {
			return nil, err
		}
		s.table = t
		return t, nil
	}
	if !create {
		return nil, nil
	}
	part, _, err = s.createRelated(commentsPartFormat, ooxml.ContentTypeComments, ooxml.RelTypeComments)
	if err != nil {
		return nil, err
	}
	s.table = comments.NewTable(part)
	return s.table, nil
}

// DropCommentsTable implements drawing.Host.
func (s *Sheet) DropCommentsTable() {
	if s.table == nil || s.table.Len() > 0 {
		return
	}
	name := s.table.Part().Name()
	if rel, ok := s.part.FindRelationship(name, ooxml.RelTypeComments); ok {
		s.part.RemoveRelationship(rel.ID)
	}
	s.wb.pkg.RemovePart(name)
	s.table = nil
	s.wb.log.Debug("empty comments part dropped", zap.String("sheet", s.name), zap.String("part", name))
}

// LegacyDrawing implements drawing.Host.
func (s *Sheet) LegacyDrawing(create bool) (*comments.LegacyDrawing, error) {
	if s.vml != nil {
		return s.vml, nil
	}
	part, err := s.related(ooxml.RelTypeVMLDrawing)
	if err != nil {
		return nil, err
	}
	if part != nil {
		d, err := comments.LoadLegacyDrawing(part)
		if err != nil {
			return nil, err
		}
		s.vml = d
		return d, nil
	}
	if !create {
		return nil, nil
	}
	s.wb.pkg.SetDefault("vml", ooxml.ContentTypeVMLDrawing)
	part, relID, err := s.createRelated(vmlPartFormat, ooxml.ContentTypeVMLDrawing, ooxml.RelTypeVMLDrawing)
	if err != nil {
		return nil, err
	}
	if err := s.reference("legacyDrawing", relID); err != nil {
		return nil, err
	}
	s.vml = comments.NewLegacyDrawing(part)
	return s.vml, nil
}

// createRelated adds a new part named by format and links it from the sheet.
func (s *Sheet) createRelated(format, contentType, relType string) (*opc.Part, string, error) {
	pkg := s.wb.pkg
	part, err := pkg.CreatePart(pkg.NextPartName(format, contentType), contentType)
	if err != nil {
		return nil, "", errs.New(s.part.Name(), "create", err)
	}
	rel, err := s.part.AddRelationship(part.Name(), opc.Internal, relType)
	if err != nil {
		return nil, "", errs.New(s.part.Name(), "create", err)
	}
	s.wb.log.Debug("sheet part created",
		zap.String("sheet", s.name), zap.String("part", part.Name()), zap.String("rel", rel.ID))
	return part, rel.ID, nil
}

func (s *Sheet) worksheet() (*xmltree.Tree, error) {
	if s.tree != nil {
		return s.tree, nil
	}
	tree, err := xmltree.Parse(bytes.NewReader(s.part.Data()))
	if err != nil {
		return nil, errs.New(s.part.Name(), "load", errs.Malformed("%v", err))
	}
	if tree.Name(tree.Root()) != ooxml.Main("worksheet") {
		return nil, errs.New(s.part.Name(), "load", errs.Malformed("root is %s, not worksheet", tree.Name(tree.Root()).Local))
	}
	tree.Declare("r", ooxml.NsR)
	s.tree = tree
	return tree, nil
}

// reference adds a worksheet element pointing at relationship relID.
func (s *Sheet) reference(local, relID string) error {
	tree, err := s.worksheet()
	if err != nil {
		return err
	}
	if tree.Child(tree.Root(), ooxml.Main(local)) != xmltree.None {
		return errs.New(s.part.Name(), "reference", errs.Malformed("worksheet already has a %s element", local))
	}
	tree.InsertOrdered(tree.Root(), xmltree.Element{
		Name: ooxml.Main(local),
		Attr: []xml.Attr{{Name: ooxml.R("id"), Value: relID}},
	}, worksheetOrder)
	s.dirty = true
	return nil
}

// Commit serializes the drawing, the notes and the worksheet if they changed.
func (s *Sheet) Commit() error {
	if s.drawing != nil {
		if err := s.drawing.Commit(); err != nil {
			return err
		}
	}
	if s.table != nil {
		if err := s.table.Commit(); err != nil {
			return err
		}
	}
	if s.vml != nil {
		if err := s.vml.Commit(); err != nil {
			return err
		}
	}
	if s.dirty {
		data, err := s.tree.Bytes()
		if err != nil {
			return errs.New(s.part.Name(), "commit", err)
		}
		s.part.SetData(data)
		s.dirty = false
	}
	return nil
}
