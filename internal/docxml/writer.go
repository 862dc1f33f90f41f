package docxml

import (
	"bytes"
	"encoding/xml"
)

// The writer emits word/document.xml directly rather than through
// xml.Encoder: the encoder cannot write namespace-prefixed names the way
// Word expects, nor splice preserved raw fragments (drawings, table
// properties) back into the stream.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// documentAttrs declares the namespaces Word commonly emits. Preserved raw
// fragments rely on the wp/mc/r prefixes resolving at the root.
var documentAttrs = []string{
	"xmlns:wpc", "http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas",
	"xmlns:mc", "http://schemas.openxmlformats.org/markup-compatibility/2006",
	"xmlns:o", "urn:schemas-microsoft-com:office:office",
	"xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"xmlns:m", "http://schemas.openxmlformats.org/officeDocument/2006/math",
	"xmlns:v", "urn:schemas-microsoft-com:vml",
	"xmlns:wp14", "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing",
	"xmlns:wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
	"xmlns:w10", "urn:schemas-microsoft-com:office:word",
	"xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml",
	"xmlns:wpg", "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup",
	"xmlns:wps", "http://schemas.microsoft.com/office/word/2010/wordprocessingShape",
	"mc:Ignorable", "w14 wp14",
}

type xmlWriter struct {
	buf bytes.Buffer
}

// open writes a start tag. attrs are name/value pairs; pairs with an empty
// value are omitted.
func (w *xmlWriter) open(name string, attrs ...string) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.writeAttrs(attrs)
	w.buf.WriteByte('>')
}

// empty writes a self-closing tag.
func (w *xmlWriter) empty(name string, attrs ...string) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.writeAttrs(attrs)
	w.buf.WriteString("/>")
}

func (w *xmlWriter) close(name string) {
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

func (w *xmlWriter) writeAttrs(attrs []string) {
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		w.buf.WriteByte(' ')
		w.buf.WriteString(attrs[i])
		w.buf.WriteString(`="`)
		xml.EscapeText(&w.buf, []byte(attrs[i+1]))
		w.buf.WriteByte('"')
	}
}

func (w *xmlWriter) text(s string) {
	xml.EscapeText(&w.buf, []byte(s))
}

func (w *xmlWriter) raw(s string) {
	w.buf.WriteString(s)
}

// marshalDocument renders the full word/document.xml part.
func marshalDocument(body *Body) []byte {
	w := &xmlWriter{}
	w.raw(xmlHeader)
	w.open("w:document", documentAttrs...)
	w.open("w:body")
	for _, item := range body.Items {
		switch it := item.(type) {
		case *Paragraph:
			w.writeParagraph(it)
		case *Table:
			w.writeTable(it)
		}
	}
	if body.SectPr != nil {
		w.writeSectPr(body.SectPr)
	}
	w.close("w:body")
	w.close("w:document")
	return w.buf.Bytes()
}

func (w *xmlWriter) writeParagraph(p *Paragraph) {
	w.open("w:p")
	if p.Props != nil {
		w.writeParagraphProps(p.Props)
	}
	for _, c := range p.Children {
		switch child := c.(type) {
		case *Run:
			w.writeRun(child)
		case *Hyperlink:
			w.open("w:hyperlink", "r:id", child.ID)
			for _, r := range child.Runs {
				w.writeRun(r)
			}
			w.close("w:hyperlink")
		}
	}
	w.close("w:p")
}

// writeParagraphProps emits pPr children in schema order.
func (w *xmlWriter) writeParagraphProps(pp *ParagraphProps) {
	w.open("w:pPr")
	if pp.Style != nil {
		w.empty("w:pStyle", "w:val", pp.Style.Val)
	}
	if pp.Borders != nil {
		w.open("w:pBdr")
		w.writeBorder("w:top", pp.Borders.Top)
		w.writeBorder("w:left", pp.Borders.Left)
		w.writeBorder("w:bottom", pp.Borders.Bottom)
		w.writeBorder("w:right", pp.Borders.Right)
		w.close("w:pBdr")
	}
	if pp.Shading != nil {
		w.empty("w:shd", "w:val", pp.Shading.Val, "w:color", pp.Shading.Color, "w:fill", pp.Shading.Fill)
	}
	if pp.Spacing != nil {
		w.empty("w:spacing",
			"w:before", pp.Spacing.Before,
			"w:after", pp.Spacing.After,
			"w:line", pp.Spacing.Line,
			"w:lineRule", pp.Spacing.LineRule)
	}
	if pp.Indent != nil {
		w.empty("w:ind",
			"w:left", pp.Indent.Left,
			"w:right", pp.Indent.Right,
			"w:firstLine", pp.Indent.FirstLine,
			"w:hanging", pp.Indent.Hanging)
	}
	if pp.Justification != nil {
		w.empty("w:jc", "w:val", pp.Justification.Val)
	}
	if pp.RunProps != nil {
		w.writeRunProps(pp.RunProps)
	}
	if pp.SectPr != nil {
		w.writeSectPr(pp.SectPr)
	}
	w.close("w:pPr")
}

func (w *xmlWriter) writeBorder(name string, b *Border) {
	if b == nil {
		return
	}
	w.empty(name, "w:val", b.Val, "w:sz", b.Sz, "w:space", b.Space, "w:color", b.Color)
}

func (w *xmlWriter) writeRun(r *Run) {
	w.open("w:r")
	if r.Props != nil {
		w.writeRunProps(r.Props)
	}
	for _, seg := range r.Segments {
		switch {
		case seg.IsText:
			w.open("w:t", "xml:space", "preserve")
			w.text(seg.Text)
			w.close("w:t")
		case seg.Break:
			w.empty("w:br")
		case seg.Tab:
			w.empty("w:tab")
		case seg.Drawing != "":
			w.open("w:drawing")
			w.raw(seg.Drawing)
			w.close("w:drawing")
		}
	}
	w.close("w:r")
}

// writeRunProps emits rPr children in schema order.
func (w *xmlWriter) writeRunProps(rp *RunProps) {
	w.open("w:rPr")
	if rp.Fonts != nil {
		w.empty("w:rFonts",
			"w:ascii", rp.Fonts.ASCII,
			"w:hAnsi", rp.Fonts.HAnsi,
			"w:cs", rp.Fonts.CS,
			"w:eastAsia", rp.Fonts.EastAsia)
	}
	if rp.Bold != nil {
		w.empty("w:b", "w:val", rp.Bold.Val)
	}
	if rp.Italic != nil {
		w.empty("w:i", "w:val", rp.Italic.Val)
	}
	if rp.Color != nil {
		w.empty("w:color", "w:val", rp.Color.Val)
	}
	if rp.Size != nil {
		w.empty("w:sz", "w:val", rp.Size.Val)
	}
	w.close("w:rPr")
}

func (w *xmlWriter) writeSectPr(sp *SectionProps) {
	w.open("w:sectPr")
	if sp.Type != nil {
		w.empty("w:type", "w:val", sp.Type.Val)
	}
	if sp.PageSize != nil {
		w.empty("w:pgSz", "w:w", sp.PageSize.W, "w:h", sp.PageSize.H, "w:orient", sp.PageSize.Orient)
	}
	if sp.Margins != nil {
		w.empty("w:pgMar",
			"w:top", sp.Margins.Top,
			"w:right", sp.Margins.Right,
			"w:bottom", sp.Margins.Bottom,
			"w:left", sp.Margins.Left,
			"w:header", sp.Margins.Header,
			"w:footer", sp.Margins.Footer,
			"w:gutter", sp.Margins.Gutter)
	}
	if sp.Columns != nil {
		w.empty("w:cols", "w:num", sp.Columns.Num, "w:space", sp.Columns.Space)
	}
	w.close("w:sectPr")
}

func (w *xmlWriter) writeTable(t *Table) {
	w.open("w:tbl")
	if t.PropsXML != "" {
		w.open("w:tblPr")
		w.raw(t.PropsXML)
		w.close("w:tblPr")
	}
	if t.GridXML != "" {
		w.open("w:tblGrid")
		w.raw(t.GridXML)
		w.close("w:tblGrid")
	}
	for _, row := range t.Rows {
		w.open("w:tr")
		if row.PropsXML != "" {
			w.open("w:trPr")
			w.raw(row.PropsXML)
			w.close("w:trPr")
		}
		for _, cell := range row.Cells {
			w.open("w:tc")
			if cell.PropsXML != "" {
				w.open("w:tcPr")
				w.raw(cell.PropsXML)
				w.close("w:tcPr")
			}
			for _, item := range cell.Items {
				switch it := item.(type) {
				case *Paragraph:
					w.writeParagraph(it)
				case *Table:
					w.writeTable(it)
				}
			}
			w.close("w:tc")
		}
		w.close("w:tr")
	}
	w.close("w:tbl")
}
