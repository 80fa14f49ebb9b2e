// Package drawing implements the spreadsheet drawing part: an ordered graph
// of anchored shapes, their identifiers, and the factories that create
// simple shapes, connectors, groups, pictures, charts and cell comments.
//
// A Drawing owns its XML tree. Shape wrappers keep node identifiers into that
// tree, so every mutation is visible immediately and the part is serialized
// as a whole by Commit.
package drawing

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/comments"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
	"go.uber.org/zap"
)

// DefaultFrameNamePrefix is prepended to the frame id to name graphic frames.
const DefaultFrameNamePrefix = "Diagramm"

// Host is the sheet a drawing belongs to. It resolves workbook pictures and
// owns the comment collaborators. CommentsTable and LegacyDrawing return
// nil without error when create is false and the part does not exist.
// DropCommentsTable removes a comments table that holds no comments, with
// its part and relationship.
type Host interface {
	Package() *opc.Package
	PictureByIndex(i int) (*opc.Part, error)
	CommentsTable(create bool) (*comments.Table, error)
	LegacyDrawing(create bool) (*comments.LegacyDrawing, error)
	DropCommentsTable()
}

// Options configures a Drawing.
type Options struct {
	// StrictShapeIDs makes NextShapeID skip past every id already present in
	// the part instead of relying on the anchor count alone.
	StrictShapeIDs bool
	// FrameNamePrefix names graphic frames; DefaultFrameNamePrefix if empty.
	FrameNamePrefix string
	Logger          *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.FrameNamePrefix == "" {
		o.FrameNamePrefix = DefaultFrameNamePrefix
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Drawing is one drawing part and its shape graph.
type Drawing struct {
	host   Host
	part   *opc.Part
	tree   *xmltree.Tree
	opts   Options
	log    *zap.Logger
	frames int
	charts map[string]*chart.Chart // by relationship id
}

// New creates an empty drawing. A nil part leaves the drawing unattached:
// shapes can be built but pictures, charts and Commit need a part.
func New(host Host, part *opc.Part, opts Options) *Drawing {
	tree := xmltree.New(ooxml.XDR("wsDr"),
		xmltree.Namespace{Prefix: "xdr", URI: ooxml.NsXDR},
		xmltree.Namespace{Prefix: "a", URI: ooxml.NsA})
	return newDrawing(host, part, tree, opts)
}

// Load parses the drawing stored in part.
func Load(host Host, part *opc.Part, opts Options) (*Drawing, error) {
	tree, err := xmltree.Parse(bytes.NewReader(part.Data()))
	if err != nil {
		return nil, errs.New(part.Name(), "load", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
	}
	if tree.Name(tree.Root()) != ooxml.XDR("wsDr") {
		return nil, errs.New(part.Name(), "load", errs.Malformed("root is %s, not wsDr", tree.Name(tree.Root()).Local))
	}
	tree.Rebind("xdr", ooxml.NsXDR)
	tree.Rebind("a", ooxml.NsA)
	d := newDrawing(host, part, tree, opts)
	d.log.Debug("drawing loaded", zap.String("part", part.Name()), zap.Int("anchors", d.anchorCount()))
	return d, nil
}

func newDrawing(host Host, part *opc.Part, tree *xmltree.Tree, opts Options) *Drawing {
	opts = opts.withDefaults()
	return &Drawing{
		host:   host,
		part:   part,
		tree:   tree,
		opts:   opts,
		log:    opts.Logger,
		charts: make(map[string]*chart.Chart),
	}
}

// Part returns the backing part, nil when unattached.
func (d *Drawing) Part() *opc.Part { return d.part }

// Tree returns the drawing tree.
func (d *Drawing) Tree() *xmltree.Tree { return d.tree }

// Attached reports whether the drawing has a backing part.
func (d *Drawing) Attached() bool { return d.part != nil }

func (d *Drawing) partName() string {
	if d.part == nil {
		return ""
	}
	return d.part.Name()
}

func (d *Drawing) anchorCount() int {
	return d.tree.Count(d.tree.Root(), ooxml.XDR("twoCellAnchor"))
}

// NextShapeID returns the identifier the next shape receives: the number
// of two-cell anchors plus one. Ids derived this way repeat once anchors are
// removed; StrictShapeIDs also skips every cNvPr id in the part.
func (d *Drawing) NextShapeID() int {
	next := d.anchorCount() + 1
	if !d.opts.StrictShapeIDs {
		return next
	}
	d.tree.Walk(d.tree.Root(), func(id xmltree.NodeID) bool {
		if d.tree.Is(id, ooxml.XDR("cNvPr")) {
			if v := attrInt(d.tree, id, "id"); v >= next {
				next = v + 1
			}
		}
		return true
	})
	return next
}

// Shapes returns the shapes held by the anchors directly under the root, in
// document order. Group members are reached through Group.Shapes.
func (d *Drawing) Shapes() []Shape {
	var out []Shape
	for _, container := range d.tree.Children(d.tree.Root()) {
		for _, c := range d.tree.Children(container) {
			if s := d.wrap(c, anchor.FromParent(d.tree, c)); s != nil {
				out = append(out, s)
			}
		}
	}
	return out
}

// Charts returns the charts linked from the drawing part, in relationship
// order. Charts are parsed once and cached.
func (d *Drawing) Charts() ([]*chart.Chart, error) {
	if d.part == nil {
		return nil, nil
	}
	var out []*chart.Chart
	for _, rel := range d.part.RelationshipsByType(ooxml.RelTypeChart) {
		c, err := d.chartByRelationship(rel.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (d *Drawing) chartByRelationship(id string) (*chart.Chart, error) {
	if c, ok := d.charts[id]; ok {
		return c, nil
	}
	if d.part == nil {
		return nil, errs.ErrUnattached
	}
	part, err := d.part.RelatedPart(id)
	if err != nil {
		return nil, err
	}
	c, err := chart.Load(part)
	if err != nil {
		return nil, err
	}
	d.charts[id] = c
	return c, nil
}

// Commit serializes the drawing into its part and commits every chart that
// was created or loaded through it.
func (d *Drawing) Commit() error {
	if d.part == nil {
		return errs.ErrUnattached
	}
	data, err := d.tree.Bytes()
	if err != nil {
		return errs.New(d.part.Name(), "commit", err)
	}
	d.part.SetData(data)
	for _, rel := range d.part.RelationshipsByType(ooxml.RelTypeChart) {
		c, ok := d.charts[rel.ID]
		if !ok {
			continue
		}
		if err := c.Commit(); err != nil {
			return err
		}
	}
	d.log.Debug("drawing committed", zap.String("part", d.part.Name()), zap.Int("bytes", len(data)))
	return nil
}
