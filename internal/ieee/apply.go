package ieee

import (
	"strconv"
	"strings"

	"github.com/anshulkummar/ieeeconv/internal/docxml"
)

// Apply restyles a single classified block in place. Formatting is a
// destructive overwrite: pre-existing run-level fonts, sizes and emphasis
// are replaced wholesale so the result depends only on the role.
func Apply(p *docxml.Paragraph, role Role) {
	spec := SpecFor(role)

	italic := spec.Italic
	if role == RoleAuthor {
		italic = isOrganizationLine(p.Text())
	}

	for _, r := range p.Runs() {
		overwriteRun(r, spec, italic)
	}

	props := p.EnsureProps()
	if role == RoleAuthor {
		// A paragraph-level run-property override would shadow the run
		// formatting just applied.
		props.RunProps = nil
	}
	props.Justification = &docxml.ValAttr{Val: spec.Align}
	props.Spacing = spacingFor(spec)
	props.Indent = indentFor(spec)
}

// ApplyCodeGroup styles a contiguous run of code-block paragraphs as one
// boxed unit: monospace runs, embedded newlines turned into explicit
// in-run breaks, side borders and shading on every block, and a top/bottom
// edge with extra spacing on the first and last blocks.
func ApplyCodeGroup(group []*docxml.Paragraph) {
	spec := SpecFor(RoleCodeBlockLine)
	for i, p := range group {
		for _, r := range p.Runs() {
			overwriteRun(r, spec, spec.Italic)
			splitEmbeddedNewlines(r)
		}

		props := p.EnsureProps()
		props.Justification = &docxml.ValAttr{Val: spec.Align}
		props.Indent = indentFor(spec)

		first := i == 0
		last := i == len(group)-1

		sp := &docxml.Spacing{Before: "0", After: "0", Line: strconv.Itoa(spec.LineSpacing), LineRule: "auto"}
		if first {
			sp.Before = "120"
		}
		if last {
			sp.After = "120"
		}
		props.Spacing = sp

		borders := &docxml.ParagraphBorders{
			Left:  boxEdge(),
			Right: boxEdge(),
		}
		if first {
			borders.Top = boxEdge()
		}
		if last {
			borders.Bottom = boxEdge()
		}
		props.Borders = borders
		props.Shading = &docxml.Shading{Val: "clear", Color: "auto", Fill: "F2F2F2"}
	}
}

func boxEdge() *docxml.Border {
	return &docxml.Border{Val: "single", Sz: "4", Space: "4", Color: "auto"}
}

// NormalizeTable gives every cell run the uniform table treatment: serif
// font at table size, left-aligned paragraphs. Tables are not classified.
func NormalizeTable(t *docxml.Table) {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, item := range cell.Items {
				switch it := item.(type) {
				case *docxml.Paragraph:
					for _, r := range it.Runs() {
						rp := r.EnsureProps()
						rp.Fonts = serifFonts()
						rp.Size = &docxml.ValAttr{Val: strconv.Itoa(tableFontSize)}
					}
					it.EnsureProps().Justification = &docxml.ValAttr{Val: "left"}
				case *docxml.Table:
					NormalizeTable(it)
				}
			}
		}
	}
}

func overwriteRun(r *docxml.Run, spec StyleSpec, italic bool) {
	rp := r.EnsureProps()
	rp.Fonts = &docxml.Fonts{ASCII: spec.Font, HAnsi: spec.Font, CS: spec.Font}
	rp.Size = &docxml.ValAttr{Val: strconv.Itoa(spec.Size)}
	rp.Color = &docxml.ValAttr{Val: "000000"}
	rp.Bold = onOff(spec.Bold)
	rp.Italic = onOff(italic)
}

func serifFonts() *docxml.Fonts {
	return &docxml.Fonts{ASCII: serifFont, HAnsi: serifFont, CS: serifFont}
}

// onOff encodes an explicit toggle: an empty value switches the property
// on, "0" switches it off. Absence is never written, since an absent
// toggle would inherit whatever the source document's styles define.
func onOff(on bool) *docxml.OnOff {
	if on {
		return &docxml.OnOff{}
	}
	return &docxml.OnOff{Val: "0"}
}

func spacingFor(spec StyleSpec) *docxml.Spacing {
	return &docxml.Spacing{
		Before:   strconv.Itoa(spec.SpaceBefore),
		After:    strconv.Itoa(spec.SpaceAfter),
		Line:     strconv.Itoa(spec.LineSpacing),
		LineRule: "auto",
	}
}

func indentFor(spec StyleSpec) *docxml.Indent {
	ind := &docxml.Indent{
		Left:  strconv.Itoa(spec.LeftIndent),
		Right: strconv.Itoa(spec.RightIndent),
	}
	if spec.FirstLineIndent < 0 {
		ind.Hanging = strconv.Itoa(-spec.FirstLineIndent)
	} else {
		ind.FirstLine = strconv.Itoa(spec.FirstLineIndent)
	}
	return ind
}

// splitEmbeddedNewlines rewrites a run so that literal newlines inside a
// text segment become explicit line breaks. The run stays a single run;
// multi-line code within one source block renders as multiple visual lines
// without splitting the paragraph.
func splitEmbeddedNewlines(r *docxml.Run) {
	needsSplit := false
	for _, seg := range r.Segments {
		if seg.IsText && strings.Contains(seg.Text, "\n") {
			needsSplit = true
			break
		}
	}
	if !needsSplit {
		return
	}

	out := make([]docxml.Segment, 0, len(r.Segments))
	for _, seg := range r.Segments {
		if !seg.IsText || !strings.Contains(seg.Text, "\n") {
			out = append(out, seg)
			continue
		}
		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				out = append(out, docxml.BreakSegment())
			}
			out = append(out, docxml.TextSegment(line))
		}
	}
	r.Segments = out
}
