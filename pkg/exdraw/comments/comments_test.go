package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/opc"
)

func newPart(t *testing.T, name, contentType string) *opc.Part {
	t.Helper()
	part, err := opc.New().CreatePart(name, contentType)
	require.NoError(t, err)
	return part
}

func TestTableNewComment(t *testing.T) {
	table := NewTable(newPart(t, "xl/comments1.xml", ooxml.ContentTypeComments))

	c, err := table.NewComment("B3")
	require.NoError(t, err)
	assert.Equal(t, "B3", c.Ref())
	row, col := c.Cell()
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	_, err = table.NewComment("B3")
	assert.ErrorIs(t, err, errs.ErrDuplicateComment)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = table.NewComment("not a cell")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = table.NewComment("B4")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestTableRoundTrip(t *testing.T) {
	part := newPart(t, "xl/comments1.xml", ooxml.ContentTypeComments)
	table := NewTable(part)
	c, err := table.NewComment("A1")
	require.NoError(t, err)
	c.SetText(" padded ")
	c.SetAuthor("alice")

	require.NoError(t, table.Commit())
	assert.Contains(t, string(part.Data()), `xml:space="preserve"`)

	loaded, err := LoadTable(part)
	require.NoError(t, err)
	got, ok := loaded.Find("A1")
	require.True(t, ok)
	assert.Equal(t, " padded ", got.Text())
	assert.Equal(t, "alice", got.Author())
	assert.Equal(t, []string{"", "alice"}, loaded.Authors())
}

func TestLoadTableWithRuns(t *testing.T) {
	part := newPart(t, "xl/comments1.xml", ooxml.ContentTypeComments)
	part.SetData([]byte(`<comments xmlns="` + ooxml.NsMain + `"><authors><author>bob</author></authors>` +
		`<commentList><comment ref="C2" authorId="0"><text><r><rPr><b/></rPr><t>bob:</t></r><r><t> hi</t></r></text></comment></commentList></comments>`))

	table, err := LoadTable(part)
	require.NoError(t, err)
	c, ok := table.Find("C2")
	require.True(t, ok)
	assert.Equal(t, "bob: hi", c.Text())
	assert.Equal(t, "bob", c.Author())

	require.NoError(t, table.Commit())
	assert.Contains(t, string(part.Data()), "<rPr><b/></rPr>")
}

func TestTableKeepsUnmodelledContent(t *testing.T) {
	const nsXR = "http://schemas.microsoft.com/office/spreadsheetml/2014/revision"
	part := newPart(t, "xl/comments1.xml", ooxml.ContentTypeComments)
	part.SetData([]byte(`<comments xmlns="` + ooxml.NsMain + `"` +
		` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006" mc:Ignorable="xr" xmlns:xr="` + nsXR + `">` +
		`<authors><author>kim</author></authors><commentList>` +
		`<comment ref="A1" authorId="0" shapeId="0" xr:uid="{1F2E3D4C-0000-0000-0000-000000000001}">` +
		`<text><r><t>漢字</t></r><rPh sb="0" eb="2"><t>カンジ</t></rPh><phoneticPr fontId="1"/></text>` +
		`</comment></commentList></comments>`))

	table, err := LoadTable(part)
	require.NoError(t, err)
	c, ok := table.Find("A1")
	require.True(t, ok)
	assert.Equal(t, "漢字", c.Text())
	assert.Equal(t, "kim", c.Author())

	added, err := table.NewComment("B2")
	require.NoError(t, err)
	added.SetText("new")
	require.NoError(t, table.Commit())

	out := string(part.Data())
	assert.Contains(t, out, `shapeId="0"`)
	assert.Contains(t, out, `xr:uid="{1F2E3D4C-0000-0000-0000-000000000001}"`)
	assert.Contains(t, out, `xmlns:xr="`+nsXR+`"`)
	assert.Contains(t, out, `mc:Ignorable="xr"`)
	assert.Contains(t, out, `<rPh sb="0" eb="2"><t>カンジ</t></rPh>`)
	assert.Contains(t, out, `<phoneticPr fontId="1"/>`)

	reloaded, err := LoadTable(part)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
	got, ok := reloaded.Find("B2")
	require.True(t, ok)
	assert.Equal(t, "new", got.Text())
	assert.Equal(t, "kim", got.Author())
}

func TestSetTextReplacesRuns(t *testing.T) {
	part := newPart(t, "xl/comments1.xml", ooxml.ContentTypeComments)
	part.SetData([]byte(`<comments xmlns="` + ooxml.NsMain + `"><authors><author/></authors><commentList>` +
		`<comment ref="C3" authorId="0"><text><r><t>old</t></r></text><commentPr locked="0"/></comment>` +
		`</commentList></comments>`))

	table, err := LoadTable(part)
	require.NoError(t, err)
	c, ok := table.Find("C3")
	require.True(t, ok)
	c.SetText("fresh")
	require.NoError(t, table.Commit())

	out := string(part.Data())
	assert.Contains(t, out, `<comment ref="C3" authorId="0"><text><t>fresh</t></text><commentPr locked="0"/></comment>`)
	assert.NotContains(t, out, "old")
}

func TestLoadTableRejectsForeignRoot(t *testing.T) {
	part := newPart(t, "xl/comments1.xml", ooxml.ContentTypeComments)
	part.SetData([]byte(`<worksheet xmlns="` + ooxml.NsMain + `"/>`))
	_, err := LoadTable(part)
	assert.ErrorIs(t, err, errs.ErrMalformedDocument)
}

func TestLegacyDrawingShapes(t *testing.T) {
	part := newPart(t, "xl/drawings/vmlDrawing1.vml", ooxml.ContentTypeVMLDrawing)
	d := NewLegacyDrawing(part)

	s1 := d.NewCommentShape()
	assert.Equal(t, "_x0000_s1025", s1.ID())
	assert.Equal(t, DefaultAnchor, s1.Anchor())
	s1.SetCell(4, 2)
	s1.SetAnchor("3, 0, 4, 0, 5, 0, 8, 0")

	s2 := d.NewCommentShape()
	assert.Equal(t, "_x0000_s1026", s2.ID())

	require.NoError(t, d.Commit())
	out := string(part.Data())
	assert.True(t, strings.Contains(out, `xmlns:v="`+ooxml.NsVML+`"`))
	assert.Contains(t, out, `<x:ClientData ObjectType="Note">`)

	loaded, err := LoadLegacyDrawing(part)
	require.NoError(t, err)
	require.Len(t, loaded.Shapes(), 2)

	s, ok := loaded.FindShape(4, 2)
	require.True(t, ok)
	assert.Equal(t, "3, 0, 4, 0, 5, 0, 8, 0", s.Anchor())
	assert.False(t, s.Visible())

	assert.Equal(t, "_x0000_s1027", loaded.NewCommentShape().ID())
}

func TestLoadLegacyDrawingLenient(t *testing.T) {
	part := newPart(t, "xl/drawings/vmlDrawing1.vml", ooxml.ContentTypeVMLDrawing)
	part.SetData([]byte(`<xml xmlns:v="urn:schemas-microsoft-com:vml" xmlns:x="urn:schemas-microsoft-com:office:excel">` +
		`<v:shape id="_x0000_s2050"><v:textbox><div>note<br></div></v:textbox>` +
		`<x:ClientData ObjectType="Note"><x:Anchor>1, 15, 0, 2, 3, 15, 3, 16</x:Anchor><x:Row>1</x:Row><x:Column>0</x:Column><x:Visible/></x:ClientData>` +
		`</v:shape></xml>`))

	d, err := LoadLegacyDrawing(part)
	require.NoError(t, err)
	s, ok := d.FindShape(1, 0)
	require.True(t, ok)
	assert.True(t, s.Visible())
	assert.Equal(t, "_x0000_s2051", d.NewCommentShape().ID())
}
