// Package opc implements the zipped part container of an office document:
// parts, content types and relationships.
package opc

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
)

// Package is an in-memory office document package.
type Package struct {
	parts     map[string]*Part
	order     []string
	defaults  map[string]string // extension -> content type
	overrides map[string]string // part name -> content type
	rels      *relationships    // package-level relationships
}

// New creates an empty package.
func New() *Package {
	return &Package{
		parts: make(map[string]*Part),
		defaults: map[string]string{
			"rels": ooxml.ContentTypeRels,
			"xml":  ooxml.ContentTypeXML,
		},
		overrides: make(map[string]string),
		rels:      &relationships{},
	}
}

// Part returns the part named name. Names are package-relative without a
// leading slash, e.g. "xl/drawings/drawing1.xml".
func (p *Package) Part(name string) (*Part, bool) {
	part, ok := p.parts[normalize(name)]
	return part, ok
}

// Parts returns all parts in insertion order.
func (p *Package) Parts() []*Part {
	out := make([]*Part, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.parts[name])
	}
	return out
}

// CreatePart adds an empty part. An empty contentType keeps the default for
// the part's extension.
func (p *Package) CreatePart(name, contentType string) (*Part, error) {
	name = normalize(name)
	if name == "" {
		return nil, errs.Invalid("empty part name")
	}
	if _, ok := p.parts[name]; ok {
		return nil, errs.Invalid("part %q already exists", name)
	}
	part := &Part{name: name, pkg: p, rels: &relationships{}}
	p.parts[name] = part
	p.order = append(p.order, name)
	if contentType != "" && contentType != p.defaults[extension(name)] {
		p.overrides[name] = contentType
	}
	return part, nil
}

// RemovePart drops the part named name and its content type override.
// Relationships pointing at it are left to the caller.
func (p *Package) RemovePart(name string) {
	name = normalize(name)
	if _, ok := p.parts[name]; !ok {
		return
	}
	delete(p.parts, name)
	delete(p.overrides, name)
	order := p.order[:0]
	for _, n := range p.order {
		if n != name {
			order = append(order, n)
		}
	}
	p.order = order
}

// ContentType resolves the content type of the part named name.
func (p *Package) ContentType(name string) string {
	name = normalize(name)
	if ct, ok := p.overrides[name]; ok {
		return ct
	}
	return p.defaults[extension(name)]
}

// SetDefault registers the default content type for an extension.
func (p *Package) SetDefault(ext, contentType string) {
	p.defaults[strings.ToLower(ext)] = contentType
}

// PartsByContentType returns the parts whose content type is contentType,
// ordered by name.
func (p *Package) PartsByContentType(contentType string) []*Part {
	var out []*Part
	for _, name := range p.order {
		if p.ContentType(name) == contentType {
			out = append(out, p.parts[name])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// NextPartName returns the first unused name produced by format with an
// index starting at count(parts of contentType)+1.
func (p *Package) NextPartName(format, contentType string) string {
	n := len(p.PartsByContentType(contentType)) + 1
	for {
		name := fmt.Sprintf(format, n)
		if _, ok := p.parts[normalize(name)]; !ok {
			return name
		}
		n++
	}
}

// Relationships returns the package-level relationships.
func (p *Package) Relationships() []Relationship {
	return p.rels.list()
}

// PartByRelationshipType returns the first part targeted by a package-level
// relationship of relType.
func (p *Package) PartByRelationshipType(relType string) (*Part, bool) {
	for _, r := range p.rels.items {
		if r.Type == relType && r.Mode == Internal {
			return p.Part(ResolveTarget("", r.Target))
		}
	}
	return nil, false
}

func normalize(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

func extension(name string) string {
	ext := path.Ext(name)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Part is a single named stream of a package.
type Part struct {
	name string
	data []byte
	pkg  *Package
	rels *relationships
}

// Name returns the package-relative part name.
func (p *Part) Name() string { return p.name }

// ContentType returns the resolved content type.
func (p *Part) ContentType() string { return p.pkg.ContentType(p.name) }

// Package returns the owning package.
func (p *Part) Package() *Package { return p.pkg }

// Data returns the part content.
func (p *Part) Data() []byte { return p.data }

// SetData replaces the part content.
func (p *Part) SetData(data []byte) { p.data = data }

// relsName returns the name of the relationships part for a source part.
func relsName(source string) string {
	dir, file := path.Split(source)
	return dir + "_rels/" + file + ".rels"
}
