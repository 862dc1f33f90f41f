package docxml

import (
	"encoding/xml"
	"strings"
)

// Body is the document body: paragraphs and tables in document order,
// plus the trailing section properties.
type Body struct {
	Items  []BodyItem
	SectPr *SectionProps
}

// BodyItem is either a *Paragraph or a *Table.
type BodyItem interface {
	bodyItem()
}

// ParagraphChild is either a *Run or a *Hyperlink.
type ParagraphChild interface {
	paragraphChild()
}

// Paragraph is one block of document content (<w:p>).
type Paragraph struct {
	Props    *ParagraphProps
	Children []ParagraphChild
}

func (*Paragraph) bodyItem() {}

// ParagraphProps models the subset of <w:pPr> the converter reads and writes.
// Fields not modeled here (tabs, numbering, keep rules) are dropped on rewrite.
type ParagraphProps struct {
	Style         *ValAttr          `xml:"pStyle"`
	Borders       *ParagraphBorders `xml:"pBdr"`
	Shading       *Shading          `xml:"shd"`
	Spacing       *Spacing          `xml:"spacing"`
	Indent        *Indent           `xml:"ind"`
	Justification *ValAttr          `xml:"jc"`
	RunProps      *RunProps         `xml:"rPr"`
	SectPr        *SectionProps     `xml:"sectPr"`
}

// ValAttr is a single-value element such as <w:jc w:val="center"/>.
type ValAttr struct {
	Val string `xml:"val,attr"`
}

// OnOff is a toggle property such as <w:b/> or <w:b w:val="0"/>.
// A nil pointer means the property is absent; an empty Val means on.
type OnOff struct {
	Val string `xml:"val,attr"`
}

// Enabled reports whether the toggle is on, treating absence of a value
// as on per the OOXML on/off convention.
func (o *OnOff) Enabled() bool {
	if o == nil {
		return false
	}
	return o.Val == "" || o.Val == "1" || o.Val == "true" || o.Val == "on"
}

// Spacing models <w:spacing> in twentieths of a point.
type Spacing struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

// Indent models <w:ind> in twips.
type Indent struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// Border is one edge of a paragraph border set.
type Border struct {
	Val   string `xml:"val,attr"`
	Sz    string `xml:"sz,attr"`
	Space string `xml:"space,attr"`
	Color string `xml:"color,attr"`
}

// ParagraphBorders models <w:pBdr>.
type ParagraphBorders struct {
	Top    *Border `xml:"top"`
	Left   *Border `xml:"left"`
	Bottom *Border `xml:"bottom"`
	Right  *Border `xml:"right"`
}

// Shading models <w:shd>.
type Shading struct {
	Val   string `xml:"val,attr"`
	Color string `xml:"color,attr"`
	Fill  string `xml:"fill,attr"`
}

// RunProps models the subset of <w:rPr> the converter overwrites.
type RunProps struct {
	Fonts  *Fonts  `xml:"rFonts"`
	Bold   *OnOff  `xml:"b"`
	Italic *OnOff  `xml:"i"`
	Color  *ValAttr `xml:"color"`
	Size   *ValAttr `xml:"sz"`
}

// Fonts models <w:rFonts>.
type Fonts struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// Run is a span of uniformly formatted content (<w:r>).
type Run struct {
	Props    *RunProps
	Segments []Segment
}

func (*Run) paragraphChild() {}

// Segment is one ordered child of a run: text, an explicit line break,
// a tab, or a drawing carried through verbatim.
type Segment struct {
	Text    string
	IsText  bool
	Break   bool
	Tab     bool
	Drawing string // raw inner XML of <w:drawing>, passed through on rewrite
}

// TextSegment returns a text segment.
func TextSegment(s string) Segment { return Segment{Text: s, IsText: true} }

// BreakSegment returns an explicit in-run line break.
func BreakSegment() Segment { return Segment{Break: true} }

// Hyperlink is a <w:hyperlink> wrapper around runs. The relationship ID is
// preserved so the link target survives rewriting.
type Hyperlink struct {
	ID   string `xml:"id,attr"`
	Runs []*Run `xml:"r"`
}

func (*Hyperlink) paragraphChild() {}

// SectionProps models the subset of <w:sectPr> the converter controls.
type SectionProps struct {
	Type     *ValAttr     `xml:"type"`
	PageSize *PageSize    `xml:"pgSz"`
	Margins  *PageMargins `xml:"pgMar"`
	Columns  *Columns     `xml:"cols"`
}

// PageSize models <w:pgSz> in twips.
type PageSize struct {
	W      string `xml:"w,attr"`
	H      string `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
}

// PageMargins models <w:pgMar> in twips.
type PageMargins struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
	Gutter string `xml:"gutter,attr"`
}

// Columns models <w:cols>.
type Columns struct {
	Num   string `xml:"num,attr"`
	Space string `xml:"space,attr"`
}

// Table is a <w:tbl>. Table, grid and row/cell properties are carried
// through as raw XML; only cell paragraphs are materialized for styling.
type Table struct {
	PropsXML string // inner XML of <w:tblPr>
	GridXML  string // inner XML of <w:tblGrid>
	Rows     []*TableRow
}

func (*Table) bodyItem() {}

// TableRow is a <w:tr>.
type TableRow struct {
	PropsXML string // inner XML of <w:trPr>
	Cells    []*TableCell
}

// TableCell is a <w:tc>. Items holds paragraphs and nested tables in order.
type TableCell struct {
	PropsXML string // inner XML of <w:tcPr>
	Items    []BodyItem
}

// Text returns the paragraph's plain-text projection: run text segments in
// order, with explicit breaks and tabs rendered as "\n" and "\t".
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		for _, seg := range r.Segments {
			switch {
			case seg.IsText:
				b.WriteString(seg.Text)
			case seg.Break:
				b.WriteByte('\n')
			case seg.Tab:
				b.WriteByte('\t')
			}
		}
	}
	return b.String()
}

// Runs returns every run in the paragraph, including runs nested inside
// hyperlinks, in document order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Children {
		switch child := c.(type) {
		case *Run:
			runs = append(runs, child)
		case *Hyperlink:
			runs = append(runs, child.Runs...)
		}
	}
	return runs
}

// Clear removes all content from the paragraph, leaving an empty block.
func (p *Paragraph) Clear() {
	p.Children = nil
}

// EnsureProps returns the paragraph's properties, allocating them if absent.
func (p *Paragraph) EnsureProps() *ParagraphProps {
	if p.Props == nil {
		p.Props = &ParagraphProps{}
	}
	return p.Props
}

// EnsureProps returns the run's properties, allocating them if absent.
func (r *Run) EnsureProps() *RunProps {
	if r.Props == nil {
		r.Props = &RunProps{}
	}
	return r.Props
}

// Paragraphs returns the body-level paragraphs in document order. Tables
// and their cell paragraphs are excluded; they are normalized separately.
func (b *Body) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, it := range b.Items {
		if p, ok := it.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the body-level tables in document order.
func (b *Body) Tables() []*Table {
	var out []*Table
	for _, it := range b.Items {
		if t, ok := it.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// AddParagraph appends an empty paragraph to the body and returns it.
func (b *Body) AddParagraph() *Paragraph {
	p := &Paragraph{}
	b.Items = append(b.Items, p)
	return p
}

// AddText appends a run holding the given text and returns the run.
// Embedded newlines are kept verbatim inside the text segment, matching
// how word processors store multi-line pasted content.
func (p *Paragraph) AddText(s string) *Run {
	r := &Run{Segments: []Segment{TextSegment(s)}}
	p.Children = append(p.Children, r)
	return r
}

// UnmarshalXML decodes a <w:body>, preserving paragraph/table order.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p := &Paragraph{}
				if err := d.DecodeElement(p, &t); err != nil {
					return err
				}
				b.Items = append(b.Items, p)
			case "tbl":
				tbl := &Table{}
				if err := d.DecodeElement(tbl, &t); err != nil {
					return err
				}
				b.Items = append(b.Items, tbl)
			case "sectPr":
				sp := &SectionProps{}
				if err := d.DecodeElement(sp, &t); err != nil {
					return err
				}
				b.SectPr = sp
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML decodes a <w:p>, preserving run/hyperlink order.
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				props := &ParagraphProps{}
				if err := d.DecodeElement(props, &t); err != nil {
					return err
				}
				p.Props = props
			case "r":
				r := &Run{}
				if err := d.DecodeElement(r, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, r)
			case "hyperlink":
				h := &Hyperlink{}
				if err := d.DecodeElement(h, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, h)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// runText captures a <w:t> element.
type runText struct {
	Space string `xml:"space,attr"`
	Text  string `xml:",chardata"`
}

// rawInner captures an element's inner XML verbatim.
type rawInner struct {
	Inner []byte `xml:",innerxml"`
}

// UnmarshalXML decodes a <w:r>, preserving segment order so that text
// interleaved with explicit breaks survives round-tripping.
func (r *Run) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				props := &RunProps{}
				if err := d.DecodeElement(props, &t); err != nil {
					return err
				}
				r.Props = props
			case "t":
				var rt runText
				if err := d.DecodeElement(&rt, &t); err != nil {
					return err
				}
				r.Segments = append(r.Segments, TextSegment(rt.Text))
			case "br":
				if err := d.Skip(); err != nil {
					return err
				}
				r.Segments = append(r.Segments, BreakSegment())
			case "tab":
				if err := d.Skip(); err != nil {
					return err
				}
				r.Segments = append(r.Segments, Segment{Tab: true})
			case "drawing":
				var raw rawInner
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				r.Segments = append(r.Segments, Segment{Drawing: string(raw.Inner)})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML decodes a <w:tbl>, carrying properties through as raw XML.
func (tbl *Table) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblPr":
				var raw rawInner
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				tbl.PropsXML = string(raw.Inner)
			case "tblGrid":
				var raw rawInner
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				tbl.GridXML = string(raw.Inner)
			case "tr":
				row := &TableRow{}
				if err := d.DecodeElement(row, &t); err != nil {
					return err
				}
				tbl.Rows = append(tbl.Rows, row)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML decodes a <w:tr>.
func (row *TableRow) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "trPr":
				var raw rawInner
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				row.PropsXML = string(raw.Inner)
			case "tc":
				cell := &TableCell{}
				if err := d.DecodeElement(cell, &t); err != nil {
					return err
				}
				row.Cells = append(row.Cells, cell)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML decodes a <w:tc>, keeping paragraphs and nested tables ordered.
func (cell *TableCell) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr":
				var raw rawInner
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				cell.PropsXML = string(raw.Inner)
			case "p":
				p := &Paragraph{}
				if err := d.DecodeElement(p, &t); err != nil {
					return err
				}
				cell.Items = append(cell.Items, p)
			case "tbl":
				nested := &Table{}
				if err := d.DecodeElement(nested, &t); err != nil {
					return err
				}
				cell.Items = append(cell.Items, nested)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}
