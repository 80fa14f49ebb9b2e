// Package comments holds the cell comments table of a worksheet and its
// legacy VML drawing, which positions each comment box.
package comments

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
	"github.com/xuri/excelize/v2"
)

// Child sequences of the comments schema; content the table does not model,
// such as phonetic runs or extension lists, is kept in place.
var (
	commentsOrder = []string{"authors", "commentList", "extLst"}
	commentOrder  = []string{"text", "commentPr"}
)

// Table is the comments part of one worksheet.
type Table struct {
	part *opc.Part
	tree *xmltree.Tree
}

// NewTable creates an empty comments table stored in part.
func NewTable(part *opc.Part) *Table {
	tree := xmltree.New(ooxml.Main("comments"), xmltree.Namespace{URI: ooxml.NsMain})
	tree.Append(tree.Root(), ooxml.Main("authors"))
	tree.Append(tree.Root(), ooxml.Main("commentList"))
	return &Table{part: part, tree: tree}
}

// LoadTable parses the comments stored in part.
func LoadTable(part *opc.Part) (*Table, error) {
	if len(part.Data()) == 0 {
		return NewTable(part), nil
	}
	tree, err := xmltree.Parse(bytes.NewReader(part.Data()))
	if err != nil {
		return nil, errs.New(part.Name(), "load", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
	}
	if tree.Name(tree.Root()) != ooxml.Main("comments") {
		return nil, errs.New(part.Name(), "load", errs.Malformed("root is %s, not comments", tree.Name(tree.Root()).Local))
	}
	return &Table{part: part, tree: tree}, nil
}

// Part returns the backing part.
func (t *Table) Part() *opc.Part { return t.part }

func (t *Table) authors() xmltree.NodeID {
	return t.tree.EnsureChild(t.tree.Root(), ooxml.Main("authors"), commentsOrder)
}

func (t *Table) list() xmltree.NodeID {
	return t.tree.EnsureChild(t.tree.Root(), ooxml.Main("commentList"), commentsOrder)
}

func (t *Table) entries() []xmltree.NodeID {
	list := t.tree.Child(t.tree.Root(), ooxml.Main("commentList"))
	return t.tree.ChildrenNamed(list, ooxml.Main("comment"))
}

// Len returns the number of comments.
func (t *Table) Len() int { return len(t.entries()) }

// Find returns the comment anchored at the cell reference ref, e.g. "B3".
func (t *Table) Find(ref string) (*Comment, bool) {
	for _, n := range t.entries() {
		if r, _ := t.tree.Attr(n, "ref"); r == ref {
			return &Comment{table: t, node: n}, true
		}
	}
	return nil, false
}

// NewComment appends an empty comment at ref. A cell holds at most one
// comment.
func (t *Table) NewComment(ref string) (*Comment, error) {
	if _, _, err := excelize.CellNameToCoordinates(ref); err != nil {
		return nil, errs.Invalid("comment reference %q: %v", ref, err)
	}
	if _, ok := t.Find(ref); ok {
		return nil, fmt.Errorf("cell %s: %w", ref, errs.ErrDuplicateComment)
	}
	if len(t.Authors()) == 0 {
		t.tree.Append(t.authors(), ooxml.Main("author"))
	}
	n := t.tree.AppendElement(t.list(), xmltree.Element{
		Name:     ooxml.Main("comment"),
		Attr:     []xml.Attr{ooxml.Attr("ref", ref), ooxml.Attr("authorId", "0")},
		Children: []xmltree.Element{{Name: ooxml.Main("text")}},
	})
	return &Comment{table: t, node: n}, nil
}

// Comments returns every comment in document order.
func (t *Table) Comments() []*Comment {
	entries := t.entries()
	out := make([]*Comment, len(entries))
	for i, n := range entries {
		out[i] = &Comment{table: t, node: n}
	}
	return out
}

// Authors returns the author list.
func (t *Table) Authors() []string {
	authors := t.tree.Child(t.tree.Root(), ooxml.Main("authors"))
	var out []string
	for _, a := range t.tree.ChildrenNamed(authors, ooxml.Main("author")) {
		out = append(out, t.tree.Text(a))
	}
	return out
}

func (t *Table) authorID(name string) int {
	authors := t.Authors()
	for i, a := range authors {
		if a == name {
			return i
		}
	}
	n := t.tree.Append(t.authors(), ooxml.Main("author"))
	t.tree.SetText(n, name)
	return len(authors)
}

// Commit serializes the table into its part.
func (t *Table) Commit() error {
	data, err := t.tree.Bytes()
	if err != nil {
		return errs.New(t.part.Name(), "commit", err)
	}
	t.part.SetData(data)
	return nil
}

// Comment is a handle to one entry of a Table.
type Comment struct {
	table *Table
	node  xmltree.NodeID
}

func (c *Comment) tree() *xmltree.Tree { return c.table.tree }

// Ref returns the cell reference the comment is attached to.
func (c *Comment) Ref() string {
	ref, _ := c.tree().Attr(c.node, "ref")
	return ref
}

// Cell returns the zero-based row and column of the comment.
func (c *Comment) Cell() (row, col int) {
	col, row, err := excelize.CellNameToCoordinates(c.Ref())
	if err != nil {
		return 0, 0
	}
	return row - 1, col - 1
}

// Text returns the plain text of the comment with run formatting and
// phonetic runs dropped.
func (c *Comment) Text() string {
	tree := c.tree()
	text := tree.Child(c.node, ooxml.Main("text"))
	var sb strings.Builder
	for _, n := range tree.Children(text) {
		switch tree.Name(n) {
		case ooxml.Main("t"):
			sb.WriteString(tree.Text(n))
		case ooxml.Main("r"):
			sb.WriteString(tree.Text(tree.Child(n, ooxml.Main("t"))))
		}
	}
	return sb.String()
}

// SetText replaces the comment content with unformatted text.
func (c *Comment) SetText(s string) {
	tree := c.tree()
	if old := tree.Child(c.node, ooxml.Main("text")); old != xmltree.None {
		tree.Detach(old)
	}
	t := xmltree.Element{Name: ooxml.Main("t"), Text: s}
	if len(s) > 0 && (s[0] == ' ' || s[len(s)-1] == ' ') {
		t.Attr = []xml.Attr{{Name: xml.Name{Space: xmltree.NsXML, Local: "space"}, Value: "preserve"}}
	}
	tree.InsertOrdered(c.node, xmltree.Element{Name: ooxml.Main("text"), Children: []xmltree.Element{t}}, commentOrder)
}

// Author returns the comment author.
func (c *Comment) Author() string {
	v, _ := c.tree().Attr(c.node, "authorId")
	id, err := strconv.Atoi(v)
	authors := c.table.Authors()
	if err != nil || id < 0 || id >= len(authors) {
		return ""
	}
	return authors[id]
}

// SetAuthor sets the comment author, registering it when new.
func (c *Comment) SetAuthor(name string) {
	c.tree().SetAttr(c.node, "authorId", strconv.Itoa(c.table.authorID(name)))
}
