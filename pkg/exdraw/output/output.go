// Package output serializes inspection results.
package output

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/models"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be json or yaml)", s)
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToJSON serializes workbook data to JSON.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshalJSON(wb, pretty)
}

// SheetToJSON serializes one sheet to JSON.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ToYAML serializes workbook data to YAML.
func ToYAML(wb *models.WorkbookData) ([]byte, error) {
	return yaml.Marshal(wb)
}

// SheetToYAML serializes one sheet to YAML.
func SheetToYAML(sheet *models.SheetData) ([]byte, error) {
	return yaml.Marshal(sheet)
}

// Encode serializes v in format f. pretty only affects JSON.
func Encode(f Format, v any, pretty bool) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON:
		return marshalJSON(v, pretty)
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// SplitSheets returns one standalone report per sheet, keyed by sheet name.
// Each carries the book name, a deep copy of its sheet and the pictures that
// sheet's shapes embed; editing one never reaches wb or the others.
func SplitSheets(wb *models.WorkbookData) (map[string]*models.WorkbookData, error) {
	out := make(map[string]*models.WorkbookData, len(wb.Sheets))
	for name, sheet := range wb.Sheets {
		var copied models.SheetData
		if err := deepcopy.Copy(&copied, sheet); err != nil {
			return nil, fmt.Errorf("copy sheet %s: %w", name, err)
		}
		embedded := make(map[string]bool)
		for _, s := range copied.Shapes {
			if s.Image != "" {
				embedded[s.Image] = true
			}
		}
		var pictures []models.Picture
		for _, p := range wb.Pictures {
			if embedded[p.Part] {
				pictures = append(pictures, p)
			}
		}
		out[name] = &models.WorkbookData{
			BookName: wb.BookName,
			Pictures: pictures,
			Sheets:   map[string]models.SheetData{name: copied},
		}
	}
	return out, nil
}
