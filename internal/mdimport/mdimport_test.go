package mdimport

import (
	"testing"

	"github.com/anshulkummar/ieeeconv/internal/ieee"
)

const sampleMarkdown = `# Machine Learning for Document Conversion

Jane Smith

Abstract

This paper describes an automated converter.

## I. Introduction

Document formatting consumes significant author time.

` + "```python\ndef f(x):\n    return x + 1\n```" + `

Prose resumes here.
`

func TestImport_BlocksInOrder(t *testing.T) {
	doc, err := Import([]byte(sampleMarkdown))
	if err != nil {
		t.Fatal(err)
	}

	var texts []string
	for _, p := range doc.Body.Paragraphs() {
		texts = append(texts, p.Text())
	}
	want := []string{
		"Machine Learning for Document Conversion",
		"Jane Smith",
		"Abstract",
		"This paper describes an automated converter.",
		"I. Introduction",
		"Document formatting consumes significant author time.",
		ieee.CodeBlockStart,
		"def f(x):\n    return x + 1",
		ieee.CodeBlockEnd,
		"Prose resumes here.",
	}
	if len(texts) != len(want) {
		t.Fatalf("got %d blocks %q, want %d", len(texts), texts, len(want))
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("block %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestImport_EmptyCodeFenceSkipped(t *testing.T) {
	doc, err := Import([]byte("Intro\n\n```\n```\n\nOutro\n"))
	if err != nil {
		t.Fatal(err)
	}
	paras := doc.Body.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("got %d blocks, want 2 (empty fence emits nothing)", len(paras))
	}
	for _, p := range paras {
		if p.Text() == ieee.CodeBlockStart || p.Text() == ieee.CodeBlockEnd {
			t.Errorf("unexpected marker paragraph %q", p.Text())
		}
	}
}

func TestImport_SoftWrappedParagraphJoined(t *testing.T) {
	doc, err := Import([]byte("line one\nline two\n"))
	if err != nil {
		t.Fatal(err)
	}
	paras := doc.Body.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("got %d blocks, want 1", len(paras))
	}
	if got := paras[0].Text(); got != "line one line two" {
		t.Errorf("text = %q, want soft wrap joined with a space", got)
	}
}

func TestImport_ConvertsEndToEnd(t *testing.T) {
	doc, err := Import([]byte(sampleMarkdown))
	if err != nil {
		t.Fatal(err)
	}
	ieee.Convert(doc, ieee.Options{})

	paras := doc.Body.Paragraphs()
	if got := paras[0].Runs()[0].Props.Size.Val; got != "48" {
		t.Errorf("title size = %q, want 48", got)
	}
	// The fenced block became a boxed monospace listing with its markers
	// consumed.
	if paras[6].Text() != "" || paras[8].Text() != "" {
		t.Error("code markers must be cleared by conversion")
	}
	if paras[7].Runs()[0].Props.Fonts.ASCII != "Courier New" {
		t.Error("listing must be monospace after conversion")
	}
}
