package drawing

import (
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Picture is an xdr:pic referencing an image part.
type Picture struct {
	base
}

func (p *Picture) blip() xmltree.NodeID {
	return p.tree().Path(p.node, ooxml.XDR("blipFill"), ooxml.A("blip"))
}

// RelationshipID returns the id of the image relationship, "" if unbound.
func (p *Picture) RelationshipID() string {
	v, _ := p.tree().AttrNS(p.blip(), ooxml.R("embed"))
	return v
}

func (p *Picture) setRelationshipID(id string) {
	p.tree().SetAttrNS(p.blip(), ooxml.R("embed"), id)
}

// PictureData returns the image part the picture embeds.
func (p *Picture) PictureData() (*opc.Part, error) {
	if p.d.part == nil {
		return nil, errs.ErrUnattached
	}
	id := p.RelationshipID()
	if id == "" {
		return nil, errs.New(p.d.part.Name(), "picture-data", errs.Malformed("picture %d has no r:embed", p.ID()))
	}
	return p.d.part.RelatedPart(id)
}
