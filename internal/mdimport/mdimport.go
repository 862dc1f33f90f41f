// Package mdimport turns a Markdown draft into an in-memory word-processing
// document so it can flow through the same IEEE conversion pass as an
// uploaded .docx. Fenced code blocks are wrapped in the literal code-block
// marker paragraphs the classifier consumes.
package mdimport

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/anshulkummar/ieeeconv/internal/docxml"
	"github.com/anshulkummar/ieeeconv/internal/ieee"
)

// Import parses Markdown source and builds a document with one paragraph
// per top-level block. Heading text is kept verbatim; section numbering
// ("I. Introduction", "A. Method") is the author's, exactly as in a
// word-processing draft.
func Import(src []byte) (*docxml.Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	doc := docxml.New()
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title != "" {
				doc.Body.AddParagraph().AddText(title)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			code := blockLines(n, src)
			if code == "" {
				continue
			}
			doc.Body.AddParagraph().AddText(ieee.CodeBlockStart)
			// The listing stays one paragraph; embedded newlines become
			// explicit in-run breaks during conversion.
			doc.Body.AddParagraph().AddText(code)
			doc.Body.AddParagraph().AddText(ieee.CodeBlockEnd)
		default:
			t := extractText(n, src)
			if t != "" {
				doc.Body.AddParagraph().AddText(t)
			}
		}
	}
	return doc, nil
}

// blockLines returns a code block's raw lines joined with newlines.
func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
