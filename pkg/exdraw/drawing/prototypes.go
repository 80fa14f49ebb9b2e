package drawing

import (
	"encoding/xml"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

func el(name xml.Name, attrs []xml.Attr, children ...xmltree.Element) xmltree.Element {
	return xmltree.Element{Name: name, Attr: attrs, Children: children}
}

func attrs(kv ...string) []xml.Attr {
	out := make([]xml.Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, ooxml.Attr(kv[i], kv[i+1]))
	}
	return out
}

func cNvPr(name string) xmltree.Element {
	return el(ooxml.XDR("cNvPr"), attrs("id", "0", "name", name))
}

func xfrm(name xml.Name, group bool) xmltree.Element {
	children := []xmltree.Element{
		el(ooxml.A("off"), attrs("x", "0", "y", "0")),
		el(ooxml.A("ext"), attrs("cx", "0", "cy", "0")),
	}
	if group {
		children = append(children,
			el(ooxml.A("chOff"), attrs("x", "0", "y", "0")),
			el(ooxml.A("chExt"), attrs("cx", "0", "cy", "0")))
	}
	return el(name, nil, children...)
}

func prstGeom(prst string) xmltree.Element {
	return el(ooxml.A("prstGeom"), attrs("prst", prst), el(ooxml.A("avLst"), nil))
}

func schemeRef(local, idx string, clr string) xmltree.Element {
	return el(ooxml.A(local), attrs("idx", idx), el(ooxml.A("schemeClr"), attrs("val", clr)))
}

func shapeStyle() xmltree.Element {
	return el(ooxml.XDR("style"), nil,
		schemeRef("lnRef", "2", "accent1"),
		schemeRef("fillRef", "1", "accent1"),
		schemeRef("effectRef", "0", "accent1"),
		schemeRef("fontRef", "minor", "lt1"))
}

func simpleShapePrototype(textbox bool) xmltree.Element {
	spAttrs := attrs("txBox", "1")
	if !textbox {
		spAttrs = nil
	}
	return el(ooxml.XDR("sp"), attrs("macro", "", "textlink", ""),
		el(ooxml.XDR("nvSpPr"), nil,
			cNvPr(""),
			el(ooxml.XDR("cNvSpPr"), spAttrs)),
		el(ooxml.XDR("spPr"), nil,
			xfrm(ooxml.A("xfrm"), false),
			prstGeom("rect")),
		shapeStyle(),
		el(ooxml.XDR("txBody"), nil,
			el(ooxml.A("bodyPr"), attrs("vertOverflow", "clip", "rtlCol", "0", "anchor", "t")),
			el(ooxml.A("lstStyle"), nil),
			el(ooxml.A("p"), nil,
				el(ooxml.A("endParaRPr"), attrs("lang", "en-US", "sz", "1100")))))
}

func connectorPrototype() xmltree.Element {
	return el(ooxml.XDR("cxnSp"), attrs("macro", ""),
		el(ooxml.XDR("nvCxnSpPr"), nil,
			cNvPr(""),
			el(ooxml.XDR("cNvCxnSpPr"), nil)),
		el(ooxml.XDR("spPr"), nil,
			xfrm(ooxml.A("xfrm"), false),
			prstGeom("line")),
		el(ooxml.XDR("style"), nil,
			schemeRef("lnRef", "1", "accent1"),
			schemeRef("fillRef", "0", "accent1"),
			schemeRef("effectRef", "0", "accent1"),
			schemeRef("fontRef", "minor", "tx1")))
}

func picturePrototype() xmltree.Element {
	return el(ooxml.XDR("pic"), nil,
		el(ooxml.XDR("nvPicPr"), nil,
			cNvPr(""),
			el(ooxml.XDR("cNvPicPr"), nil,
				el(ooxml.A("picLocks"), attrs("noChangeAspect", "1")))),
		el(ooxml.XDR("blipFill"), nil,
			el(ooxml.A("blip"), nil),
			el(ooxml.A("stretch"), nil, el(ooxml.A("fillRect"), nil))),
		el(ooxml.XDR("spPr"), nil,
			xfrm(ooxml.A("xfrm"), false),
			prstGeom("rect")))
}

func groupPrototype() xmltree.Element {
	return el(ooxml.XDR("grpSp"), nil,
		el(ooxml.XDR("nvGrpSpPr"), nil,
			cNvPr(""),
			el(ooxml.XDR("cNvGrpSpPr"), nil)),
		el(ooxml.XDR("grpSpPr"), nil,
			xfrm(ooxml.A("xfrm"), true)))
}

func graphicFramePrototype() xmltree.Element {
	return el(ooxml.XDR("graphicFrame"), attrs("macro", ""),
		el(ooxml.XDR("nvGraphicFramePr"), nil,
			cNvPr(""),
			el(ooxml.XDR("cNvGraphicFramePr"), nil)),
		xfrm(ooxml.XDR("xfrm"), false),
		el(ooxml.A("graphic"), nil,
			el(ooxml.A("graphicData"), attrs("uri", ooxml.NsC))))
}
