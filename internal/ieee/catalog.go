// Package ieee converts a word-processing document to IEEE conference
// formatting: it classifies each block of the document into a semantic
// role and applies the fixed typography and geometry for that role.
package ieee

// Role is the semantic category assigned to a block. Every block receives
// exactly one role per pass, or is skipped when it is consumed as a
// code-block delimiter.
type Role int

const (
	RoleTitle Role = iota
	RoleAuthor
	RoleAbstractHeading
	RoleSectionHeading
	RoleSubsectionHeading
	RoleFigureCaption
	RoleTableCaption
	RoleCodeCaption
	RoleCodeBlockLine
	RoleReference
	RoleBody
	// RoleSkip marks blocks consumed as code-block delimiters; they are
	// cleared and receive no styling of their own.
	RoleSkip
)

var roleNames = map[Role]string{
	RoleTitle:             "title",
	RoleAuthor:            "author",
	RoleAbstractHeading:   "abstract-heading",
	RoleSectionHeading:    "section-heading",
	RoleSubsectionHeading: "subsection-heading",
	RoleFigureCaption:     "figure-caption",
	RoleTableCaption:      "table-caption",
	RoleCodeCaption:       "code-caption",
	RoleCodeBlockLine:     "code-block-line",
	RoleReference:         "reference",
	RoleBody:              "body",
	RoleSkip:              "skip",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// StyleSpec is the typography and paragraph geometry target for one role.
// Sizes are in half-points; indents and spacing in twips (1/20 pt); a
// negative first-line indent is a hanging indent.
type StyleSpec struct {
	Font            string
	Size            int
	Bold            bool
	Italic          bool
	Align           string // "center", "left", "both" (justified)
	FirstLineIndent int
	LeftIndent      int
	RightIndent     int
	SpaceBefore     int
	SpaceAfter      int
	LineSpacing     int // 240 = single
}

// IEEE page geometry, in twips.
const (
	MarginTop    = 1080 // 0.75"
	MarginBottom = 1440 // 1.0"
	MarginLeft   = 900  // 0.625"
	MarginRight  = 900  // 0.625"

	LetterWidth  = 12240 // 8.5"
	LetterHeight = 15840 // 11"
	ColumnGap    = 360   // 0.25"
)

const (
	serifFont = "Times New Roman"
	monoFont  = "Courier New"

	singleSpacing = 240
)

// Table cells are not classified; every cell run gets this treatment.
const (
	tableFontSize = 18 // 9pt
)

var catalog = map[Role]StyleSpec{
	RoleTitle: {
		Font: serifFont, Size: 48, Bold: true,
		Align:       "center",
		SpaceBefore: 240, SpaceAfter: 240,
		LineSpacing: singleSpacing,
	},
	RoleAuthor: {
		Font: serifFont, Size: 20,
		Align:      "center",
		SpaceAfter: 120,
		LineSpacing: singleSpacing,
	},
	RoleAbstractHeading: {
		Font: serifFont, Size: 20, Bold: true, Italic: true,
		Align:       "left",
		SpaceBefore: 240, SpaceAfter: 120,
		LineSpacing: singleSpacing,
	},
	RoleSectionHeading: {
		Font: serifFont, Size: 20, Bold: true,
		Align:       "left",
		SpaceBefore: 240, SpaceAfter: 120,
		LineSpacing: singleSpacing,
	},
	RoleSubsectionHeading: {
		Font: serifFont, Size: 20, Bold: true, Italic: true,
		Align:       "left",
		SpaceBefore: 120, SpaceAfter: 60,
		LineSpacing: singleSpacing,
	},
	RoleFigureCaption: {
		Font: serifFont, Size: 18, Italic: true,
		Align:       "center",
		SpaceBefore: 120, SpaceAfter: 120,
		LineSpacing: singleSpacing,
	},
	RoleTableCaption: {
		Font: serifFont, Size: 18, Italic: true,
		Align:       "center",
		SpaceBefore: 120, SpaceAfter: 60,
		LineSpacing: singleSpacing,
	},
	RoleCodeCaption: {
		Font: serifFont, Size: 18, Italic: true,
		Align:       "center",
		SpaceBefore: 120, SpaceAfter: 120,
		LineSpacing: singleSpacing,
	},
	RoleCodeBlockLine: {
		Font: monoFont, Size: 18,
		Align:      "left",
		LeftIndent: 144, RightIndent: 144,
		LineSpacing: singleSpacing,
	},
	RoleReference: {
		Font: serifFont, Size: 18,
		Align:           "left",
		FirstLineIndent: -360, LeftIndent: 360,
		LineSpacing: singleSpacing,
	},
	RoleBody: {
		Font: serifFont, Size: 20,
		Align:           "both",
		FirstLineIndent: 360,
		LineSpacing:     singleSpacing,
	},
}

// SpecFor returns the style target for a role. Roles without an entry
// (RoleSkip) return the zero spec.
func SpecFor(role Role) StyleSpec {
	return catalog[role]
}
