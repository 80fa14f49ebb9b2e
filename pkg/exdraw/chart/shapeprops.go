package chart

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// ShapeProperties is a handle to a c:spPr style block.
type ShapeProperties struct {
	tree *xmltree.Tree
	node xmltree.NodeID
}

var (
	spPrOrder = []string{
		"xfrm", "custGeom", "prstGeom", "noFill", "solidFill", "gradFill",
		"blipFill", "pattFill", "grpFill", "ln", "effectLst", "effectDag",
		"scene3d", "sp3d", "extLst",
	}
	lnOrder = []string{
		"noFill", "solidFill", "gradFill", "pattFill", "prstDash", "custDash",
		"round", "bevel", "miter", "headEnd", "tailEnd", "extLst",
	}
	lnFills = []string{"noFill", "solidFill", "gradFill", "pattFill"}

	hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
)

// Node returns the c:spPr node.
func (p *ShapeProperties) Node() xmltree.NodeID { return p.node }

func (p *ShapeProperties) line(create bool) xmltree.NodeID {
	if !create {
		return p.tree.Child(p.node, ooxml.A("ln"))
	}
	return p.tree.EnsureChild(p.node, ooxml.A("ln"), spPrOrder)
}

// LineWidth returns the outline width in EMU, or 0 when unset.
func (p *ShapeProperties) LineWidth() int64 {
	ln := p.line(false)
	if ln == xmltree.None {
		return 0
	}
	v, _ := p.tree.Attr(ln, "w")
	w, _ := strconv.ParseInt(v, 10, 64)
	return w
}

// SetLineWidth sets the outline width in EMU.
func (p *ShapeProperties) SetLineWidth(emu int64) error {
	if emu < 0 {
		return errs.Invalid("line width must not be negative, got: %d", emu)
	}
	p.tree.SetAttr(p.line(true), "w", strconv.FormatInt(emu, 10))
	return nil
}

// LineColor returns the RGB hex color of a solid outline, or "" when the
// outline is not a solid RGB fill.
func (p *ShapeProperties) LineColor() string {
	ln := p.line(false)
	if ln == xmltree.None {
		return ""
	}
	clr := p.tree.Path(ln, ooxml.A("solidFill"), ooxml.A("srgbClr"))
	if clr == xmltree.None {
		return ""
	}
	v, _ := p.tree.Attr(clr, "val")
	return v
}

// SetLineColor draws the outline in the RGB hex color rgb, e.g. "D9D9D9".
func (p *ShapeProperties) SetLineColor(rgb string) error {
	rgb = strings.TrimPrefix(rgb, "#")
	if !hexColor.MatchString(rgb) {
		return errs.Invalid("color %q is not a six digit hex RGB value", rgb)
	}
	ln := p.setLineFill("solidFill")
	clr := p.tree.Append(ln, ooxml.A("srgbClr"))
	p.tree.SetAttr(clr, "val", strings.ToUpper(rgb))
	return nil
}

// SetNoLine hides the outline.
func (p *ShapeProperties) SetNoLine() {
	p.setLineFill("noFill")
}

// HasLine reports whether the outline is drawn.
func (p *ShapeProperties) HasLine() bool {
	ln := p.line(false)
	return ln == xmltree.None || p.tree.Child(ln, ooxml.A("noFill")) == xmltree.None
}

// setLineFill replaces the outline fill with a new empty element local and
// returns it.
func (p *ShapeProperties) setLineFill(local string) xmltree.NodeID {
	ln := p.line(true)
	for _, f := range lnFills {
		if c := p.tree.Child(ln, ooxml.A(f)); c != xmltree.None {
			p.tree.Detach(c)
		}
	}
	return p.tree.EnsureChild(ln, ooxml.A(local), lnOrder)
}
