package chart

import (
	"strings"

	"github.com/xuri/nfp"
)

// NumberFormatKind is the broad category of a number format code.
type NumberFormatKind int

const (
	FormatGeneral NumberFormatKind = iota
	FormatNumber
	FormatCurrency
	FormatPercent
	FormatScientific
	FormatFraction
	FormatDateTime
	FormatText
)

var numberFormatKindNames = [...]string{
	FormatGeneral:    "general",
	FormatNumber:     "number",
	FormatCurrency:   "currency",
	FormatPercent:    "percent",
	FormatScientific: "scientific",
	FormatFraction:   "fraction",
	FormatDateTime:   "datetime",
	FormatText:       "text",
}

func (k NumberFormatKind) String() string {
	if int(k) < len(numberFormatKindNames) {
		return numberFormatKindNames[k]
	}
	return "unknown"
}

// ClassifyNumberFormat reports the category of format code, judged by its
// first (positive) section.
func ClassifyNumberFormat(code string) NumberFormatKind {
	if strings.TrimSpace(code) == "" {
		return FormatGeneral
	}
	p := nfp.NumberFormatParser()
	sections := p.Parse(code)
	if len(sections) == 0 {
		return FormatGeneral
	}
	first := sections[0]

	var number bool
	kind := FormatGeneral
	for _, tk := range first.Items {
		switch tk.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			return FormatDateTime
		case nfp.TokenTypePercent:
			kind = FormatPercent
		case nfp.TokenTypeExponential:
			if kind != FormatPercent {
				kind = FormatScientific
			}
		case nfp.TokenTypeFraction, nfp.TokenTypeDenominator:
			if kind == FormatGeneral || kind == FormatNumber {
				kind = FormatFraction
			}
		case nfp.TokenTypeCurrencyLanguage:
			if kind == FormatGeneral || kind == FormatNumber {
				kind = FormatCurrency
			}
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder, nfp.TokenTypeDigitalPlaceHolder:
			number = true
		case nfp.TokenTypeLiteral:
			if strings.ContainsAny(tk.TValue, "$€£¥") && (kind == FormatGeneral || kind == FormatNumber) {
				kind = FormatCurrency
			}
		}
	}
	if kind != FormatGeneral {
		return kind
	}
	if number {
		return FormatNumber
	}
	if first.Type == nfp.TokenSectionText {
		return FormatText
	}
	return FormatGeneral
}
