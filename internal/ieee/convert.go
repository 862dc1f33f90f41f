package ieee

import (
	"strings"

	"github.com/anshulkummar/ieeeconv/internal/docxml"
)

// Options controls the conversion.
type Options struct {
	// TwoColumn converts the page to the IEEE two-column layout.
	TwoColumn bool
}

// Convert applies IEEE conference formatting to the document in place:
// one forward classification pass over the block sequence, then table
// normalization and page geometry. The pass is deterministic and
// idempotent; converting an already-converted document changes nothing.
func Convert(doc *docxml.Document, opts Options) {
	state := NewParseState()
	paras := doc.Body.Paragraphs()

	for i, p := range paras {
		if state.Skip[i] {
			continue
		}
		text := strings.TrimSpace(p.Text())
		// Empty blocks carry no role, except inside a code region where
		// blank lines are part of the listing and must keep the box.
		if text == "" && !state.InCodeBlock {
			continue
		}

		role := Classify(text, i, state)
		switch role {
		case RoleSkip:
			p.Clear()
		case RoleCodeBlockLine:
			ApplyCodeGroup(collectCodeGroup(paras, i, state))
		default:
			Apply(p, role)
		}
	}

	for _, t := range doc.Body.Tables() {
		NormalizeTable(t)
	}
	ApplyGeometry(doc, opts)
}

// collectCodeGroup materializes the contiguous code region starting at
// start: every block up to, but not including, the end marker. The end
// marker itself is consumed and cleared. This bounded forward scan is the
// only lookahead in the pass.
func collectCodeGroup(paras []*docxml.Paragraph, start int, state *ParseState) []*docxml.Paragraph {
	var group []*docxml.Paragraph
	for j := start; j < len(paras); j++ {
		text := strings.TrimSpace(paras[j].Text())
		if strings.EqualFold(text, CodeBlockEnd) {
			paras[j].Clear()
			state.Skip[j] = true
			state.InCodeBlock = false
			return group
		}
		group = append(group, paras[j])
		state.Skip[j] = true
	}
	// Unterminated region: the listing runs to the end of the document.
	state.InCodeBlock = false
	return group
}
