package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
)

// TargetMode tells whether a relationship target lives inside the package.
type TargetMode int

const (
	Internal TargetMode = iota
	External
)

func (m TargetMode) String() string {
	if m == External {
		return "External"
	}
	return "Internal"
}

// Relationship is a typed link from a source part to a target.
type Relationship struct {
	ID     string
	Type   string
	Target string
	Mode   TargetMode
}

// xmlRelationships is the root of a .rels part
type xmlRelationships struct {
	XMLName       xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

type relationships struct {
	items []Relationship
}

func (r *relationships) list() []Relationship {
	out := make([]Relationship, len(r.items))
	copy(out, r.items)
	return out
}

func (r *relationships) byID(id string) (Relationship, bool) {
	for _, rel := range r.items {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}

// nextID returns "rIdN" with N one past the highest numeric id in use.
func (r *relationships) nextID() string {
	highest := 0
	for _, rel := range r.items {
		var n int
		if _, err := fmt.Sscanf(rel.ID, "rId%d", &n); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("rId%d", highest+1)
}

func (r *relationships) add(relType, target string, mode TargetMode) Relationship {
	rel := Relationship{ID: r.nextID(), Type: relType, Target: target, Mode: mode}
	r.items = append(r.items, rel)
	return rel
}

func (r *relationships) unmarshal(data []byte) error {
	var doc xmlRelationships
	if err := xml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for _, x := range doc.Relationships {
		mode := Internal
		if strings.EqualFold(x.TargetMode, "External") {
			mode = External
		}
		r.items = append(r.items, Relationship{ID: x.ID, Type: x.Type, Target: x.Target, Mode: mode})
	}
	return nil
}

func (r *relationships) marshal() ([]byte, error) {
	doc := xmlRelationships{}
	for _, rel := range r.items {
		x := xmlRelationship{ID: rel.ID, Type: rel.Type, Target: rel.Target}
		if rel.Mode == External {
			x.TargetMode = "External"
		}
		doc.Relationships = append(doc.Relationships, x)
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// ResolveTarget resolves an internal relationship target against the part
// that owns the relationship. Targets starting with "/" are package-absolute.
func ResolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return normalize(target)
	}
	return normalize(path.Join(path.Dir("/"+source), target))
}

// relativeTarget returns the path of target relative to the directory of
// source, e.g. "../media/image1.png".
func relativeTarget(source, target string) string {
	from := strings.Split(path.Dir("/"+source), "/")[1:]
	to := strings.Split("/"+target, "/")[1:]
	if len(from) == 1 && from[0] == "" {
		from = nil
	}
	i := 0
	for i < len(from) && i < len(to)-1 && from[i] == to[i] {
		i++
	}
	parts := make([]string, 0, len(from)-i+len(to)-i)
	for range from[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[i:]...)
	return strings.Join(parts, "/")
}

// Relationships returns the relationships owned by p.
func (p *Part) Relationships() []Relationship {
	return p.rels.list()
}

// RelationshipsByType returns the relationships of p with type relType.
func (p *Part) RelationshipsByType(relType string) []Relationship {
	var out []Relationship
	for _, rel := range p.rels.items {
		if rel.Type == relType {
			out = append(out, rel)
		}
	}
	return out
}

// RelationshipByID looks up a relationship of p.
func (p *Part) RelationshipByID(id string) (Relationship, bool) {
	return p.rels.byID(id)
}

// AddRelationship links p to target and returns the new relationship. For
// internal targets, target is a part name and is stored relative to p.
func (p *Part) AddRelationship(target string, mode TargetMode, relType string) (Relationship, error) {
	if target == "" {
		return Relationship{}, errs.Invalid("empty relationship target")
	}
	if mode == Internal {
		target = relativeTarget(p.name, normalize(target))
	}
	return p.rels.add(relType, target, mode), nil
}

// FindRelationship returns an existing relationship of relType pointing to
// the internal part named target.
func (p *Part) FindRelationship(target, relType string) (Relationship, bool) {
	target = normalize(target)
	for _, rel := range p.rels.items {
		if rel.Type != relType || rel.Mode != Internal {
			continue
		}
		if ResolveTarget(p.name, rel.Target) == target {
			return rel, true
		}
	}
	return Relationship{}, false
}

// RelatedPart returns the internal part targeted by relationship id.
func (p *Part) RelatedPart(id string) (*Part, error) {
	rel, ok := p.rels.byID(id)
	if !ok {
		return nil, errs.New(p.name, "resolve relationship", errs.Malformed("no relationship %q", id))
	}
	if rel.Mode == External {
		return nil, errs.New(p.name, "resolve relationship", errs.Invalid("relationship %q is external", id))
	}
	part, ok := p.pkg.Part(ResolveTarget(p.name, rel.Target))
	if !ok {
		return nil, errs.New(p.name, "resolve relationship", errs.Malformed("target %q of %q is missing", rel.Target, id))
	}
	return part, nil
}

// RemoveRelationship drops the relationship with id.
func (p *Part) RemoveRelationship(id string) {
	items := p.rels.items[:0]
	for _, rel := range p.rels.items {
		if rel.ID != id {
			items = append(items, rel)
		}
	}
	p.rels.items = items
}

// AddRelationship adds a package-level relationship to the part named target.
func (p *Package) AddRelationship(target, relType string) Relationship {
	return p.rels.add(relType, normalize(target), Internal)
}
