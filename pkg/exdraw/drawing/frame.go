package drawing

import (
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// GraphicFrame is an xdr:graphicFrame hosting a chart.
type GraphicFrame struct {
	base
}

// SetID overwrites the frame identifier.
func (f *GraphicFrame) SetID(id int) { f.setID(id) }

func (f *GraphicFrame) graphicData() xmltree.NodeID {
	return f.tree().Path(f.node, ooxml.A("graphic"), ooxml.A("graphicData"))
}

func (f *GraphicFrame) setChart(relID string) {
	tree := f.tree()
	data := f.graphicData()
	tree.SetAttr(data, "uri", ooxml.NsC)
	ref := tree.Child(data, ooxml.C("chart"))
	if ref == xmltree.None {
		ref = tree.Append(data, ooxml.C("chart"))
	}
	tree.SetAttrNS(ref, ooxml.R("id"), relID)
}

// ChartRelationshipID returns the id of the chart relationship, "" when the
// frame does not host a chart.
func (f *GraphicFrame) ChartRelationshipID() string {
	v, _ := f.tree().AttrNS(f.tree().Child(f.graphicData(), ooxml.C("chart")), ooxml.R("id"))
	return v
}

// Chart returns the chart hosted by the frame.
func (f *GraphicFrame) Chart() (*chart.Chart, error) {
	id := f.ChartRelationshipID()
	if id == "" {
		return nil, errs.Invalid("graphic frame %q hosts no chart", f.Name())
	}
	return f.d.chartByRelationship(id)
}
