package sample

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/anshulkummar/ieeeconv/internal/docxml"
	"github.com/anshulkummar/ieeeconv/internal/ieee"
)

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	want := map[string]bool{"test_document.docx": true, "test_code_blocks.docx": true}
	for _, p := range paths {
		if !want[filepath.Base(p)] {
			t.Errorf("unexpected sample %s", p)
		}
	}
}

// The generated samples must parse and convert through the real pipeline.
func TestSamples_ConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(dir)
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range paths {
		doc, err := docxml.Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		if len(doc.Body.Paragraphs()) == 0 {
			t.Fatalf("%s: no paragraphs", path)
		}
		ieee.Convert(doc, ieee.Options{TwoColumn: true})

		title := doc.Body.Paragraphs()[0]
		if got := title.Runs()[0].Props.Size.Val; got != "48" {
			t.Errorf("%s: title size = %q, want 48", path, got)
		}
	}
}

func TestCodeSample_BoxedListings(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteAll(dir); err != nil {
		t.Fatal(err)
	}
	doc, err := docxml.Open(filepath.Join(dir, "test_code_blocks.docx"))
	if err != nil {
		t.Fatal(err)
	}
	ieee.Convert(doc, ieee.Options{})

	var listings int
	for _, p := range doc.Body.Paragraphs() {
		if p.Props != nil && p.Props.Shading != nil && p.Props.Shading.Fill == "F2F2F2" {
			listings++
			for _, r := range p.Runs() {
				if r.Props.Fonts.ASCII != "Courier New" {
					t.Error("listing run must be monospace")
				}
			}
		}
		if strings.Contains(p.Text(), "code block start") {
			t.Errorf("marker survived conversion: %q", p.Text())
		}
	}
	if listings != 2 {
		t.Errorf("got %d boxed listings, want 2", listings)
	}
}
