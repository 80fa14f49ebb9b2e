// Package xmltree provides an owned, mutable XML element tree.
//
// Nodes live in an arena and are addressed by NodeID; wrappers elsewhere in
// the module keep NodeIDs rather than pointers into a parsed document.
// Mutation is immediate and serialization walks the arena.
package xmltree

import (
	"encoding/xml"
	"fmt"
)

// NodeID addresses a node inside a Tree.
type NodeID int32

// None is the NodeID of a missing node.
const None NodeID = -1

// Namespace binds a prefix to a namespace URI. An empty prefix declares the
// default namespace.
type Namespace struct {
	Prefix string
	URI    string
}

// Element is a detached element description used to build subtrees.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Text     string
	Children []Element
}

type node struct {
	name     xml.Name
	attrs    []xml.Attr
	text     string
	parent   NodeID
	children []NodeID
}

// Tree is an arena of XML element nodes with a single root.
type Tree struct {
	nodes    []node
	root     NodeID
	prefixes map[string]string // namespace URI -> prefix
	declared []string          // URIs in declaration order
}

// New creates a tree holding only the root element.
func New(root xml.Name, namespaces ...Namespace) *Tree {
	t := &Tree{prefixes: make(map[string]string)}
	for _, ns := range namespaces {
		t.Declare(ns.Prefix, ns.URI)
	}
	t.root = t.alloc(root, None)
	return t
}

func (t *Tree) alloc(name xml.Name, parent NodeID) NodeID {
	t.nodes = append(t.nodes, node{name: name, parent: parent})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Declare binds prefix to uri unless uri already has a prefix. When prefix
// is held by another namespace, uri gets a generated prefix instead, since
// every binding is written on the root element.
func (t *Tree) Declare(prefix, uri string) {
	if _, ok := t.prefixes[uri]; ok {
		return
	}
	if t.prefixInUse(prefix) {
		prefix = t.freePrefix()
	}
	t.prefixes[uri] = prefix
	t.declared = append(t.declared, uri)
}

func (t *Tree) prefixInUse(prefix string) bool {
	for _, p := range t.prefixes {
		if p == prefix {
			return true
		}
	}
	return false
}

// freePrefix returns the first nsN prefix not bound to any namespace.
func (t *Tree) freePrefix() string {
	for i := 0; ; i++ {
		if p := fmt.Sprintf("ns%d", i); !t.prefixInUse(p) {
			return p
		}
	}
}

// Rebind forces prefix onto uri. Another namespace holding prefix loses its
// binding and gets a generated prefix on Encode.
func (t *Tree) Rebind(prefix, uri string) {
	for other, p := range t.prefixes {
		if p == prefix && other != uri {
			delete(t.prefixes, other)
			t.declared = removeString(t.declared, other)
		}
	}
	if _, ok := t.prefixes[uri]; !ok {
		t.declared = append(t.declared, uri)
	}
	t.prefixes[uri] = prefix
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// Prefix returns the prefix bound to uri.
func (t *Tree) Prefix(uri string) (string, bool) {
	p, ok := t.prefixes[uri]
	return p, ok
}

// Root returns the root element.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes ever allocated, detached ones included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Name returns the element name of id.
func (t *Tree) Name(id NodeID) xml.Name {
	if !t.valid(id) {
		return xml.Name{}
	}
	return t.nodes[id].name
}

// Is reports whether id is an element with the given name.
func (t *Tree) Is(id NodeID, name xml.Name) bool {
	return t.valid(id) && t.nodes[id].name == name
}

// Parent returns the parent of id, or None for the root and detached nodes.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return None
	}
	return t.nodes[id].parent
}

// Children returns the children of id in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	out := make([]NodeID, len(t.nodes[id].children))
	copy(out, t.nodes[id].children)
	return out
}

// Child returns the first child of id named name.
func (t *Tree) Child(id NodeID, name xml.Name) NodeID {
	if !t.valid(id) {
		return None
	}
	for _, c := range t.nodes[id].children {
		if t.nodes[c].name == name {
			return c
		}
	}
	return None
}

// Path follows a chain of child names starting at id.
func (t *Tree) Path(id NodeID, names ...xml.Name) NodeID {
	for _, n := range names {
		id = t.Child(id, n)
		if id == None {
			return None
		}
	}
	return id
}

// ChildrenNamed returns all children of id named name.
func (t *Tree) ChildrenNamed(id NodeID, name xml.Name) []NodeID {
	if !t.valid(id) {
		return nil
	}
	var out []NodeID
	for _, c := range t.nodes[id].children {
		if t.nodes[c].name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of children of id named name.
func (t *Tree) Count(id NodeID, name xml.Name) int {
	if !t.valid(id) {
		return 0
	}
	n := 0
	for _, c := range t.nodes[id].children {
		if t.nodes[c].name == name {
			n++
		}
	}
	return n
}

// Attr returns the value of the unqualified attribute local.
func (t *Tree) Attr(id NodeID, local string) (string, bool) {
	return t.AttrNS(id, xml.Name{Local: local})
}

// AttrNS returns the value of the attribute name.
func (t *Tree) AttrNS(id NodeID, name xml.Name) (string, bool) {
	if !t.valid(id) {
		return "", false
	}
	for _, a := range t.nodes[id].attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attributes of id.
func (t *Tree) Attrs(id NodeID) []xml.Attr {
	if !t.valid(id) {
		return nil
	}
	out := make([]xml.Attr, len(t.nodes[id].attrs))
	copy(out, t.nodes[id].attrs)
	return out
}

// SetAttr sets the unqualified attribute local on id.
func (t *Tree) SetAttr(id NodeID, local, value string) {
	t.SetAttrNS(id, xml.Name{Local: local}, value)
}

// SetAttrNS sets the attribute name on id.
func (t *Tree) SetAttrNS(id NodeID, name xml.Name, value string) {
	if !t.valid(id) {
		return
	}
	n := &t.nodes[id]
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, xml.Attr{Name: name, Value: value})
}

// RemoveAttr deletes the unqualified attribute local from id.
func (t *Tree) RemoveAttr(id NodeID, local string) {
	if !t.valid(id) {
		return
	}
	n := &t.nodes[id]
	for i := range n.attrs {
		if n.attrs[i].Name.Space == "" && n.attrs[i].Name.Local == local {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Text returns the character data of id.
func (t *Tree) Text(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].text
}

// SetText replaces the character data of id.
func (t *Tree) SetText(id NodeID, text string) {
	if !t.valid(id) {
		return
	}
	t.nodes[id].text = text
}

// Append adds a new empty element named name as the last child of parent.
func (t *Tree) Append(parent NodeID, name xml.Name) NodeID {
	return t.InsertBefore(parent, None, name)
}

// InsertBefore adds a new empty element before the child ref of parent, or
// at the end when ref is None.
func (t *Tree) InsertBefore(parent, ref NodeID, name xml.Name) NodeID {
	if !t.valid(parent) {
		return None
	}
	id := t.alloc(name, parent)
	p := &t.nodes[parent]
	idx := len(p.children)
	if ref != None {
		for i, c := range p.children {
			if c == ref {
				idx = i
				break
			}
		}
	}
	p.children = append(p.children, None)
	copy(p.children[idx+1:], p.children[idx:])
	p.children[idx] = id
	return id
}

// AppendElement builds e as the last child of parent.
func (t *Tree) AppendElement(parent NodeID, e Element) NodeID {
	return t.InsertElement(parent, None, e)
}

// InsertElement builds e before the child ref of parent.
func (t *Tree) InsertElement(parent, ref NodeID, e Element) NodeID {
	id := t.InsertBefore(parent, ref, e.Name)
	if id == None {
		return None
	}
	if len(e.Attr) > 0 {
		t.nodes[id].attrs = append([]xml.Attr(nil), e.Attr...)
	}
	t.nodes[id].text = e.Text
	for _, c := range e.Children {
		t.AppendElement(id, c)
	}
	return id
}

// EnsureChild returns the child of parent named name, creating it when
// absent. New children are placed according to order, the schema sequence of
// local names for parent's content model; names missing from order go last.
func (t *Tree) EnsureChild(parent NodeID, name xml.Name, order []string) NodeID {
	if c := t.Child(parent, name); c != None {
		return c
	}
	return t.InsertBefore(parent, t.successor(parent, name.Local, order), name)
}

// InsertOrdered creates e under parent at the position order dictates.
func (t *Tree) InsertOrdered(parent NodeID, e Element, order []string) NodeID {
	return t.InsertElement(parent, t.successor(parent, e.Name.Local, order), e)
}

func (t *Tree) successor(parent NodeID, local string, order []string) NodeID {
	rank := indexOf(order, local)
	if rank < 0 || !t.valid(parent) {
		return None
	}
	for _, c := range t.nodes[parent].children {
		if r := indexOf(order, t.nodes[c].name.Local); r > rank {
			return c
		}
	}
	return None
}

func indexOf(order []string, local string) int {
	for i, s := range order {
		if s == local {
			return i
		}
	}
	return -1
}

// Detach unlinks id from its parent. The node stays in the arena but is no
// longer reachable from the root.
func (t *Tree) Detach(id NodeID) {
	if !t.valid(id) || id == t.root {
		return
	}
	parent := t.nodes[id].parent
	if parent == None {
		return
	}
	p := &t.nodes[parent]
	for i, c := range p.children {
		if c == id {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	t.nodes[id].parent = None
}

// Walk calls fn for id and every descendant in document order until fn
// returns false.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) bool {
	if !t.valid(id) {
		return true
	}
	if !fn(id) {
		return false
	}
	for _, c := range t.nodes[id].children {
		if !t.Walk(c, fn) {
			return false
		}
	}
	return true
}
