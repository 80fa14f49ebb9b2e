// Package ooxml holds the namespace URIs, relationship types and content
// types shared by the spreadsheet drawing packages.
package ooxml

import "encoding/xml"

// XML namespaces used in DrawingML and SpreadsheetML
const (
	NsXDR  = "http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
	NsA    = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NsR    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NsC    = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	NsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

	NsPackageRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	NsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"

	NsVML      = "urn:schemas-microsoft-com:vml"
	NsOffice   = "urn:schemas-microsoft-com:office:office"
	NsExcelVML = "urn:schemas-microsoft-com:office:excel"
)

// Relationship types
const (
	RelTypeOfficeDoc  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeWorksheet  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	RelTypeDrawing    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing"
	RelTypeImage      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeChart      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
	RelTypeComments   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RelTypeVMLDrawing = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing"
	RelTypeHyperlink  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Content types
const (
	ContentTypeRels       = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML        = "application/xml"
	ContentTypeWorksheet  = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ContentTypeDrawing    = "application/vnd.openxmlformats-officedocument.drawing+xml"
	ContentTypeChart      = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ContentTypeComments   = "application/vnd.openxmlformats-officedocument.spreadsheetml.comments+xml"
	ContentTypeVMLDrawing = "application/vnd.openxmlformats-officedocument.vmlDrawing"
)

// ImageContentTypes maps media file extensions to their content types.
var ImageContentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"emf":  "image/x-emf",
	"wmf":  "image/x-wmf",
	"svg":  "image/svg+xml",
}

// XDR returns a name in the spreadsheet drawing namespace.
func XDR(local string) xml.Name { return xml.Name{Space: NsXDR, Local: local} }

// A returns a name in the DrawingML main namespace.
func A(local string) xml.Name { return xml.Name{Space: NsA, Local: local} }

// R returns a name in the relationships namespace.
func R(local string) xml.Name { return xml.Name{Space: NsR, Local: local} }

// C returns a name in the chart namespace.
func C(local string) xml.Name { return xml.Name{Space: NsC, Local: local} }

// Main returns a name in the SpreadsheetML main namespace.
func Main(local string) xml.Name { return xml.Name{Space: NsMain, Local: local} }

// V returns a name in the VML namespace.
func V(local string) xml.Name { return xml.Name{Space: NsVML, Local: local} }

// O returns a name in the Office VML namespace.
func O(local string) xml.Name { return xml.Name{Space: NsOffice, Local: local} }

// X returns a name in the Excel VML namespace.
func X(local string) xml.Name { return xml.Name{Space: NsExcelVML, Local: local} }

// Attr builds an unqualified attribute.
func Attr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: local}, Value: value}
}
