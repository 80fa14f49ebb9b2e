package exdraw

import (
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// mediaDir holds the workbook's picture parts.
const mediaDir = "xl/media/"

// Workbook is an opened spreadsheet package with its sheets.
type Workbook struct {
	pkg    *opc.Package
	book   *opc.Part
	sheets []*Sheet
	opts   Options
	log    *zap.Logger
}

// NewWorkbook creates a workbook with a single empty sheet.
func NewWorkbook(opts Options) (*Workbook, error) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	pkg, err := opc.ReadBytes(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return newWorkbook(pkg, opts)
}

// OpenWorkbook reads the workbook stored at filename.
func OpenWorkbook(filename string, opts Options) (*Workbook, error) {
	pkg, err := opc.Open(filename)
	if err != nil {
		return nil, err
	}
	return newWorkbook(pkg, opts)
}

// ReadWorkbook reads a workbook from r.
func ReadWorkbook(r io.ReaderAt, size int64, opts Options) (*Workbook, error) {
	pkg, err := opc.ReadFrom(r, size)
	if err != nil {
		return nil, err
	}
	return newWorkbook(pkg, opts)
}

func newWorkbook(pkg *opc.Package, opts Options) (*Workbook, error) {
	opts = opts.withDefaults()
	book, ok := pkg.PartByRelationshipType(ooxml.RelTypeOfficeDoc)
	if !ok {
		return nil, errs.Malformed("package has no workbook part")
	}
	w := &Workbook{pkg: pkg, book: book, opts: opts, log: opts.Logger}

	for _, ref := range parseWorkbookSheets(book.Data()) {
		part, err := book.RelatedPart(ref.relID)
		if err != nil {
			return nil, errs.New(book.Name(), "open", err)
		}
		w.sheets = append(w.sheets, &Sheet{wb: w, name: ref.name, part: part})
	}
	w.log.Debug("workbook opened", zap.String("part", book.Name()), zap.Int("sheets", len(w.sheets)))
	return w, nil
}

type sheetRef struct {
	name  string
	relID string
}

// parseWorkbookSheets lists the sheets of the workbook part in tab order.
func parseWorkbookSheets(data []byte) []sheetRef {
	var result []sheetRef
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var ref sheetRef
			for _, attr := range se.Attr {
				switch {
				case attr.Name.Local == "name":
					ref.name = attr.Value
				case attr.Name.Local == "id" && attr.Name.Space == ooxml.NsR:
					ref.relID = attr.Value
				}
			}
			if ref.name != "" && ref.relID != "" {
				result = append(result, ref)
			}
		}
	}

	return result
}

// Package returns the underlying part container.
func (w *Workbook) Package() *opc.Package { return w.pkg }

// Sheets returns the sheets in tab order.
func (w *Workbook) Sheets() []*Sheet { return w.sheets }

// Sheet returns the sheet called name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range w.sheets {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// AddPicture stores image data as a new media part and returns its picture
// index. ext is the file extension, e.g. "png".
func (w *Workbook) AddPicture(data []byte, ext string) (int, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	ct, ok := ooxml.ImageContentTypes[ext]
	if !ok {
		return -1, errs.Invalid("unsupported picture type %q", ext)
	}
	if len(data) == 0 {
		return -1, errs.Invalid("empty picture data")
	}
	w.pkg.SetDefault(ext, ct)
	part, err := w.pkg.CreatePart(w.pkg.NextPartName(mediaDir+"image%d."+ext, ct), ct)
	if err != nil {
		return -1, err
	}
	part.SetData(data)
	index := len(w.AllPictures()) - 1
	w.log.Debug("picture added", zap.String("part", part.Name()), zap.Int("index", index))
	return index, nil
}

// AllPictures returns the media parts in picture index order.
func (w *Workbook) AllPictures() []*opc.Part {
	var out []*opc.Part
	for _, p := range w.pkg.Parts() {
		if path.Dir(p.Name())+"/" == mediaDir {
			out = append(out, p)
		}
	}
	return out
}

// PictureByIndex returns the media part at index.
func (w *Workbook) PictureByIndex(index int) (*opc.Part, error) {
	pictures := w.AllPictures()
	if index < 0 || index >= len(pictures) {
		return nil, errs.Invalid("picture index %d out of range [0, %d)", index, len(pictures))
	}
	return pictures[index], nil
}

// Commit serializes every loaded sheet collaborator into its part.
func (w *Workbook) Commit() error {
	for _, s := range w.sheets {
		if err := s.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo commits the workbook and writes the package to out.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	if err := w.Commit(); err != nil {
		return 0, err
	}
	return w.pkg.WriteTo(out)
}

// Save commits the workbook and writes the package to filename.
func (w *Workbook) Save(filename string) error {
	if err := w.Commit(); err != nil {
		return err
	}
	return w.pkg.Save(filename)
}
