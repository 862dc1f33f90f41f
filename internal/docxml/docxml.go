// Package docxml reads and writes Office Open XML word-processing
// documents (.docx) at the level the IEEE converter needs: paragraphs,
// runs, tables and section geometry, with typed access to the formatting
// properties the converter rewrites. Every package part other than
// word/document.xml is carried through byte-for-byte, so styles,
// numbering, media and relationships survive a conversion untouched.
package docxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const documentPart = "word/document.xml"

// Document is an in-memory .docx package. It is not safe for concurrent
// use; each conversion owns its Document exclusively.
type Document struct {
	Body  *Body
	parts []part
}

type part struct {
	name string
	data []byte
}

// Open reads the named .docx file.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	doc, err := Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a .docx package from r.
func Parse(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}

	doc := &Document{}
	var docXML []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		doc.parts = append(doc.parts, part{name: f.Name, data: data})
		if f.Name == documentPart {
			docXML = data
		}
	}
	if docXML == nil {
		return nil, fmt.Errorf("not a word-processing document: missing %s", documentPart)
	}

	body, err := parseDocumentXML(docXML)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}
	doc.Body = body
	return doc, nil
}

// parseDocumentXML decodes the <w:body> out of a document.xml payload.
func parseDocumentXML(data []byte) (*Body, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("no body element found")
		}
		if err != nil {
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "body" {
			body := &Body{}
			if err := dec.DecodeElement(body, &se); err != nil {
				return nil, err
			}
			return body, nil
		}
	}
}

// SaveTo writes the package to w, substituting the re-marshaled document
// body and copying every other part verbatim.
func (d *Document) SaveTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	docXML := marshalDocument(d.Body)
	for _, p := range d.parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", p.name, err)
		}
		data := p.data
		if p.name == documentPart {
			data = docXML
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("write part %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

// Save writes the package to the named file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.SaveTo(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// Minimal parts for a freshly created package.
const (
	contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	rootRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`</Relationships>`
)

// New creates an empty single-section document, used by the Markdown
// importer and by tests.
func New() *Document {
	return &Document{
		Body: &Body{SectPr: &SectionProps{}},
		parts: []part{
			{name: "[Content_Types].xml", data: []byte(contentTypesXML)},
			{name: "_rels/.rels", data: []byte(rootRelsXML)},
			{name: "word/_rels/document.xml.rels", data: []byte(documentRelsXML)},
			{name: documentPart, data: nil},
		},
	}
}
