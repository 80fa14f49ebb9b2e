// Package chart provides the chart part model: the chart space skeleton,
// its plot area and typed access to axis configuration.
package chart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Chart is a chart part held as an owned tree.
type Chart struct {
	part *opc.Part
	tree *xmltree.Tree
	area *PlotArea
}

var chartOrder = []string{
	"title", "autoTitleDeleted", "pivotFmts", "view3D", "floor", "sideWall",
	"backWall", "plotArea", "legend", "plotVisOnly", "dispBlanksAs",
	"showDLblsOverMax", "extLst",
}

// New creates a chart with an empty plot area, stored in part.
func New(part *opc.Part) *Chart {
	tree := xmltree.New(ooxml.C("chartSpace"),
		xmltree.Namespace{Prefix: "c", URI: ooxml.NsC},
		xmltree.Namespace{Prefix: "a", URI: ooxml.NsA},
		xmltree.Namespace{Prefix: "r", URI: ooxml.NsR})
	tree.AppendElement(tree.Root(), valElement("roundedCorners", "0"))
	chart := tree.AppendElement(tree.Root(), xmltree.Element{
		Name: ooxml.C("chart"),
		Children: []xmltree.Element{
			{Name: ooxml.C("plotArea"), Children: []xmltree.Element{{Name: ooxml.C("layout")}}},
			valElement("plotVisOnly", "1"),
			valElement("dispBlanksAs", "gap"),
		},
	})
	area := tree.Child(chart, ooxml.C("plotArea"))
	return &Chart{part: part, tree: tree, area: &PlotArea{tree: tree, node: area}}
}

// Load parses the chart stored in part.
func Load(part *opc.Part) (*Chart, error) {
	tree, err := xmltree.Parse(bytes.NewReader(part.Data()))
	if err != nil {
		return nil, errs.New(part.Name(), "load", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
	}
	if tree.Name(tree.Root()) != ooxml.C("chartSpace") {
		return nil, errs.New(part.Name(), "load", errs.Malformed("root is %s, not chartSpace", tree.Name(tree.Root()).Local))
	}
	area := tree.Path(tree.Root(), ooxml.C("chart"), ooxml.C("plotArea"))
	if area == xmltree.None {
		return nil, errs.New(part.Name(), "load", errs.Malformed("chart has no plot area"))
	}
	c := &Chart{part: part, tree: tree, area: &PlotArea{tree: tree, node: area}}
	if _, err := c.area.Axes(); err != nil {
		return nil, errs.New(part.Name(), "load", err)
	}
	return c, nil
}

// Part returns the backing part.
func (c *Chart) Part() *opc.Part { return c.part }

// Tree returns the chart tree.
func (c *Chart) Tree() *xmltree.Tree { return c.tree }

// PlotArea returns the plot area.
func (c *Chart) PlotArea() *PlotArea { return c.area }

func (c *Chart) chartNode() xmltree.NodeID {
	return c.tree.Child(c.tree.Root(), ooxml.C("chart"))
}

// Title returns the plain text of the chart title.
func (c *Chart) Title() string {
	title := c.tree.Child(c.chartNode(), ooxml.C("title"))
	if title == xmltree.None {
		return ""
	}
	var sb strings.Builder
	c.tree.Walk(title, func(id xmltree.NodeID) bool {
		if c.tree.Is(id, ooxml.A("t")) {
			sb.WriteString(c.tree.Text(id))
		}
		return true
	})
	return sb.String()
}

// SetTitle replaces the chart title with a single run of text.
func (c *Chart) SetTitle(text string) {
	chart := c.chartNode()
	if old := c.tree.Child(chart, ooxml.C("title")); old != xmltree.None {
		c.tree.Detach(old)
	}
	c.tree.InsertOrdered(chart, xmltree.Element{
		Name: ooxml.C("title"),
		Children: []xmltree.Element{
			{Name: ooxml.C("tx"), Children: []xmltree.Element{
				{Name: ooxml.C("rich"), Children: []xmltree.Element{
					{Name: ooxml.A("bodyPr")},
					{Name: ooxml.A("p"), Children: []xmltree.Element{
						{Name: ooxml.A("r"), Children: []xmltree.Element{{Name: ooxml.A("t"), Text: text}}},
					}},
				}},
			}},
			valElement("overlay", "0"),
		},
	}, chartOrder)
	c.tree.SetAttr(c.tree.EnsureChild(chart, ooxml.C("autoTitleDeleted"), chartOrder), "val", "0")
}

// Commit serializes the chart into its part.
func (c *Chart) Commit() error {
	data, err := c.tree.Bytes()
	if err != nil {
		return errs.New(c.part.Name(), "commit", err)
	}
	c.part.SetData(data)
	return nil
}
