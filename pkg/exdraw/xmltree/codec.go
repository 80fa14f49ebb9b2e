package xmltree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Header is written before the root element on Encode.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// NsXML is the namespace bound to the reserved xml prefix.
const NsXML = "http://www.w3.org/XML/1998/namespace"

// ErrNoRoot indicates the input holds no element.
var ErrNoRoot = errors.New("xmltree: document has no root element")

// Parse reads a well-formed XML document into a new Tree.
func Parse(r io.Reader) (*Tree, error) {
	return decode(xml.NewDecoder(r))
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Tree, error) {
	return Parse(bytes.NewReader(data))
}

// ParseLenient reads loosely formed markup such as legacy VML drawings,
// which may contain unclosed HTML elements.
func ParseLenient(r io.Reader) (*Tree, error) {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.AutoClose = xml.HTMLAutoClose
	d.Entity = xml.HTMLEntity
	return decode(d)
}

func decode(d *xml.Decoder) (*Tree, error) {
	t := &Tree{prefixes: make(map[string]string), root: None}
	var stack []NodeID

	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch tk := token.(type) {
		case xml.StartElement:
			attrs := t.collectNamespaces(tk.Attr)
			var id NodeID
			if len(stack) == 0 {
				if t.root != None {
					return nil, fmt.Errorf("xmltree: multiple root elements")
				}
				id = t.alloc(tk.Name, None)
				t.root = id
			} else {
				id = t.Append(stack[len(stack)-1], tk.Name)
			}
			t.nodes[id].attrs = attrs
			stack = append(stack, id)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("xmltree: unexpected end element %s", tk.Name.Local)
			}
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n := &t.nodes[id]; len(n.children) > 0 && strings.TrimSpace(n.text) == "" {
				n.text = ""
			}
		case xml.CharData:
			if len(stack) > 0 {
				t.nodes[stack[len(stack)-1]].text += string(tk)
			}
		}
	}

	if t.root == None {
		return nil, ErrNoRoot
	}
	return t, nil
}

// collectNamespaces records xmlns declarations and returns the remaining
// attributes.
func (t *Tree) collectNamespaces(attrs []xml.Attr) []xml.Attr {
	var out []xml.Attr
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			t.Declare(a.Name.Local, a.Value)
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			t.Declare("", a.Value)
		default:
			out = append(out, a)
		}
	}
	return out
}

// Encode writes the tree as an XML document. The root element declares every
// namespace in use; namespaces without a bound prefix get a generated one.
func (t *Tree) Encode(w io.Writer) error {
	t.bindUnknownNamespaces()

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	if err := t.encodeNode(bw, t.root, true); err != nil {
		return err
	}
	return bw.Flush()
}

// Bytes returns the encoded document.
func (t *Tree) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tree) bindUnknownNamespaces() {
	bind := func(uri string, attr bool) {
		if uri == "" || uri == NsXML {
			return
		}
		if p, ok := t.prefixes[uri]; ok && (p != "" || !attr) {
			return
		}
		if _, ok := t.prefixes[uri]; !ok {
			t.declared = append(t.declared, uri)
		}
		t.prefixes[uri] = t.freePrefix()
	}
	t.Walk(t.root, func(id NodeID) bool {
		bind(t.nodes[id].name.Space, false)
		for _, a := range t.nodes[id].attrs {
			bind(a.Name.Space, true)
		}
		return true
	})
}

func (t *Tree) qualify(name xml.Name, attr bool) string {
	if name.Space == "" {
		return name.Local
	}
	if name.Space == NsXML {
		return "xml:" + name.Local
	}
	p := t.prefixes[name.Space]
	if p == "" && !attr {
		return name.Local
	}
	return p + ":" + name.Local
}

func (t *Tree) encodeNode(w *bufio.Writer, id NodeID, root bool) error {
	n := &t.nodes[id]
	name := t.qualify(n.name, false)

	w.WriteByte('<')
	w.WriteString(name)
	if root {
		for _, uri := range t.declared {
			p := t.prefixes[uri]
			if p == "" {
				writeAttr(w, "xmlns", uri)
			} else {
				writeAttr(w, "xmlns:"+p, uri)
			}
		}
	}
	for _, a := range n.attrs {
		writeAttr(w, t.qualify(a.Name, true), a.Value)
	}

	if len(n.children) == 0 && n.text == "" {
		_, err := w.WriteString("/>")
		return err
	}
	w.WriteByte('>')
	if n.text != "" {
		if err := xml.EscapeText(w, []byte(n.text)); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := t.encodeNode(w, c, false); err != nil {
			return err
		}
	}
	w.WriteString("</")
	w.WriteString(name)
	_, err := w.WriteString(">")
	return err
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	xml.EscapeText(w, []byte(value))
	w.WriteByte('"')
}
