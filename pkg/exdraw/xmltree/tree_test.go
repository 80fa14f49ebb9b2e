package xmltree

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNS = "urn:test"

func n(local string) xml.Name {
	return xml.Name{Space: testNS, Local: local}
}

func TestParseAndEncodePreservesPrefixes(t *testing.T) {
	src := `<t:root xmlns:t="urn:test" xmlns:r="urn:rel"><t:item r:id="rId1" name="a">x</t:item><t:item/></t:root>`

	tree, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, n("root"), tree.Name(root))
	items := tree.ChildrenNamed(root, n("item"))
	require.Len(t, items, 2)

	v, ok := tree.AttrNS(items[0], xml.Name{Space: "urn:rel", Local: "id"})
	assert.True(t, ok)
	assert.Equal(t, "rId1", v)
	assert.Equal(t, "x", tree.Text(items[0]))

	out, err := tree.Bytes()
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, Header))
	assert.Contains(t, s, `<t:root xmlns:t="urn:test" xmlns:r="urn:rel">`)
	assert.Contains(t, s, `<t:item r:id="rId1" name="a">x</t:item>`)
	assert.Contains(t, s, `<t:item/>`)
}

func TestDefaultNamespace(t *testing.T) {
	src := `<worksheet xmlns="urn:main" xmlns:r="urn:rel"><sheetData/></worksheet>`
	tree, err := ParseBytes([]byte(src))
	require.NoError(t, err)

	main := xml.Name{Space: "urn:main", Local: "sheetData"}
	assert.NotEqual(t, None, tree.Child(tree.Root(), main))

	out, err := tree.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<worksheet xmlns="urn:main" xmlns:r="urn:rel"><sheetData/></worksheet>`)
}

func TestEnsureChildKeepsSchemaOrder(t *testing.T) {
	order := []string{"logBase", "orientation", "max", "min"}
	tree := New(n("scaling"), Namespace{Prefix: "c", URI: testNS})
	root := tree.Root()

	tree.EnsureChild(root, n("min"), order)
	tree.EnsureChild(root, n("orientation"), order)
	tree.EnsureChild(root, n("max"), order)
	first := tree.EnsureChild(root, n("logBase"), order)
	again := tree.EnsureChild(root, n("logBase"), order)

	assert.Equal(t, first, again)
	var got []string
	for _, c := range tree.Children(root) {
		got = append(got, tree.Name(c).Local)
	}
	assert.Equal(t, order, got)
}

func TestDetach(t *testing.T) {
	tree := New(n("root"))
	a := tree.Append(tree.Root(), n("a"))
	b := tree.Append(tree.Root(), n("b"))

	tree.Detach(a)

	assert.Equal(t, []NodeID{b}, tree.Children(tree.Root()))
	assert.Equal(t, None, tree.Parent(a))
	assert.Equal(t, 3, tree.Len())
}

func TestInsertElementBuildsSubtree(t *testing.T) {
	tree := New(n("root"), Namespace{Prefix: "t", URI: testNS})
	last := tree.Append(tree.Root(), n("last"))
	id := tree.InsertElement(tree.Root(), last, Element{
		Name: n("sp"),
		Attr: []xml.Attr{{Name: xml.Name{Local: "macro"}}},
		Children: []Element{
			{Name: n("txt"), Text: "a < b"},
		},
	})

	children := tree.Children(tree.Root())
	require.Len(t, children, 2)
	assert.Equal(t, id, children[0])
	assert.Equal(t, "a < b", tree.Text(tree.Path(id, n("txt"))))

	out, err := tree.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<t:sp macro=""><t:txt>a &lt; b</t:txt></t:sp><t:last/>`)
}

func TestUnknownNamespaceGetsPrefix(t *testing.T) {
	tree := New(xml.Name{Space: "urn:a", Local: "root"})
	tree.Append(tree.Root(), xml.Name{Space: "urn:b", Local: "child"})

	out, err := tree.Bytes()
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `<ns0:root xmlns:ns0="urn:a" xmlns:ns1="urn:b"><ns1:child/></ns0:root>`)
}

func TestParseLenientAcceptsUnclosedBreaks(t *testing.T) {
	src := `<xml xmlns:v="urn:v"><v:shape><div>line<br>next</div></v:shape></xml>`
	tree, err := ParseLenient(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Count(tree.Root(), xml.Name{Space: "urn:v", Local: "shape"}))
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestNestedPrefixRebindingStaysDistinct(t *testing.T) {
	src := `<r xmlns:a="urn:one"><a:x/><b><a:y xmlns:a="urn:two"/></b></r>`
	tree, err := ParseBytes([]byte(src))
	require.NoError(t, err)

	out, err := tree.Bytes()
	require.NoError(t, err)
	s := string(out)
	assert.Equal(t, 1, strings.Count(s, `xmlns:a=`))
	assert.Contains(t, s, `<r xmlns:a="urn:one" xmlns:ns0="urn:two"><a:x/><b><ns0:y/></b></r>`)

	back, err := ParseBytes(out)
	require.NoError(t, err)
	b := back.Child(back.Root(), xml.Name{Local: "b"})
	assert.NotEqual(t, None, back.Child(back.Root(), xml.Name{Space: "urn:one", Local: "x"}))
	assert.NotEqual(t, None, back.Child(b, xml.Name{Space: "urn:two", Local: "y"}))
}

func TestDeclareSkipsTakenPrefix(t *testing.T) {
	tree := New(xml.Name{Space: "urn:one", Local: "root"}, Namespace{Prefix: "r", URI: "urn:one"})
	tree.Declare("r", "urn:rel")
	p, ok := tree.Prefix("urn:rel")
	require.True(t, ok)
	assert.Equal(t, "ns0", p)

	tree.Declare("x", "urn:one")
	p, _ = tree.Prefix("urn:one")
	assert.Equal(t, "r", p)
}
