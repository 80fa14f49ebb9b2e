package opc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
)

const (
	contentTypesName = "[Content_Types].xml"
	packageRelsName  = "_rels/.rels"
)

type xmlTypes struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Open reads the package stored at path.
func Open(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return ReadFrom(f, info.Size())
}

// ReadBytes reads a package held in memory.
func ReadBytes(data []byte) (*Package, error) {
	return ReadFrom(bytes.NewReader(data), int64(len(data)))
}

// ReadFrom reads a zipped package of the given size.
func ReadFrom(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errs.New("", "open package", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
	}

	files := make(map[string][]byte, len(zr.File))
	var names []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, errs.New(f.Name, "read", err)
		}
		name := normalize(f.Name)
		files[name] = data
		names = append(names, name)
	}

	ct, ok := files[contentTypesName]
	if !ok {
		return nil, errs.New(contentTypesName, "open package", errs.Malformed("missing content types"))
	}

	p := New()
	var types xmlTypes
	if err := xml.Unmarshal(ct, &types); err != nil {
		return nil, errs.New(contentTypesName, "parse", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
	}
	for _, d := range types.Defaults {
		p.SetDefault(d.Extension, d.ContentType)
	}
	for _, o := range types.Overrides {
		p.overrides[normalize(o.PartName)] = o.ContentType
	}

	if data, ok := files[packageRelsName]; ok {
		if err := p.rels.unmarshal(data); err != nil {
			return nil, errs.New(packageRelsName, "parse", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
		}
	}

	for _, name := range names {
		if name == contentTypesName || isRelsPart(name) {
			continue
		}
		p.parts[name] = &Part{name: name, data: files[name], pkg: p, rels: &relationships{}}
		p.order = append(p.order, name)
	}
	for _, part := range p.parts {
		data, ok := files[relsName(part.name)]
		if !ok {
			continue
		}
		if err := part.rels.unmarshal(data); err != nil {
			return nil, errs.New(relsName(part.name), "parse", fmt.Errorf("%w: %v", errs.ErrMalformedDocument, err))
		}
	}
	return p, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isRelsPart(name string) bool {
	return strings.HasSuffix(name, ".rels") && strings.Contains(name, "_rels/")
}

// WriteTo writes the zipped package to w. The content types part comes first,
// followed by the package relationships and every part with its
// relationships.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	ct, err := p.marshalContentTypes()
	if err != nil {
		return cw.n, err
	}
	if err := writeZipEntry(zw, contentTypesName, ct); err != nil {
		return cw.n, err
	}
	if len(p.rels.items) > 0 {
		data, err := p.rels.marshal()
		if err != nil {
			return cw.n, err
		}
		if err := writeZipEntry(zw, packageRelsName, data); err != nil {
			return cw.n, err
		}
	}
	for _, name := range p.order {
		part := p.parts[name]
		if err := writeZipEntry(zw, name, part.data); err != nil {
			return cw.n, err
		}
		if len(part.rels.items) == 0 {
			continue
		}
		data, err := part.rels.marshal()
		if err != nil {
			return cw.n, err
		}
		if err := writeZipEntry(zw, relsName(name), data); err != nil {
			return cw.n, err
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Save writes the package to path.
func (p *Package) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = p.WriteTo(f)
	return err
}

// Bytes returns the zipped package.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Package) marshalContentTypes() ([]byte, error) {
	var types xmlTypes
	exts := make([]string, 0, len(p.defaults))
	for ext := range p.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		types.Defaults = append(types.Defaults, xmlDefault{Extension: ext, ContentType: p.defaults[ext]})
	}
	for _, name := range p.order {
		if ct, ok := p.overrides[name]; ok {
			types.Overrides = append(types.Overrides, xmlOverride{PartName: "/" + name, ContentType: ct})
		}
	}
	out, err := xml.Marshal(types)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func writeZipEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
