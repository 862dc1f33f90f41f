package ieee

import (
	"strconv"

	"github.com/anshulkummar/ieeeconv/internal/docxml"
)

// ApplyGeometry sets the fixed IEEE margins on every section and, when
// requested, converts the page to a two-column layout on US Letter.
//
// Known limitation, accepted by design: the two-column directive is
// attached to every existing section, so the title/author region becomes
// two-column as well. Keeping it single-column would require inserting a
// section break at the abstract boundary, which rewriting the source
// document's section structure does not support.
func ApplyGeometry(doc *docxml.Document, opts Options) {
	for _, sect := range sections(doc) {
		applyMargins(sect)
		if opts.TwoColumn {
			sect.PageSize = &docxml.PageSize{
				W: strconv.Itoa(LetterWidth),
				H: strconv.Itoa(LetterHeight),
			}
			sect.Columns = &docxml.Columns{
				Num:   "2",
				Space: strconv.Itoa(ColumnGap),
			}
		}
	}
}

// sections returns every section in the document: mid-document section
// breaks carried on paragraphs, then the body-final section. The body
// section is created if the source document lacks one.
func sections(doc *docxml.Document) []*docxml.SectionProps {
	var out []*docxml.SectionProps
	for _, p := range doc.Body.Paragraphs() {
		if p.Props != nil && p.Props.SectPr != nil {
			out = append(out, p.Props.SectPr)
		}
	}
	if doc.Body.SectPr == nil {
		doc.Body.SectPr = &docxml.SectionProps{}
	}
	return append(out, doc.Body.SectPr)
}

func applyMargins(s *docxml.SectionProps) {
	m := s.Margins
	if m == nil {
		m = &docxml.PageMargins{}
		s.Margins = m
	}
	m.Top = strconv.Itoa(MarginTop)
	m.Bottom = strconv.Itoa(MarginBottom)
	m.Left = strconv.Itoa(MarginLeft)
	m.Right = strconv.Itoa(MarginRight)
	if m.Header == "" {
		m.Header = "720"
	}
	if m.Footer == "" {
		m.Footer = "720"
	}
	if m.Gutter == "" {
		m.Gutter = "0"
	}
}
