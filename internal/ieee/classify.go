package ieee

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// In-document markers delimiting a code region. Matched case-insensitively
// against the whole trimmed block text.
const (
	CodeBlockStart = "<code block start>"
	CodeBlockEnd   = "<code block end>"
)

// ParseState is the cross-block memory threaded through one classification
// pass. It is created at pass start and discarded at pass end.
type ParseState struct {
	TitleFound    bool
	AbstractFound bool
	InCodeBlock   bool
	// Skip holds block indices already consumed by an earlier decision
	// (code-group members and end markers).
	Skip map[int]bool
}

// NewParseState returns the initial state for a pass.
func NewParseState() *ParseState {
	return &ParseState{Skip: make(map[int]bool)}
}

// Words that disqualify an early block from being the paper title; they
// mark author or affiliation lines that can precede a malformed title.
var titleStopWords = []string{
	"@", "university", "chicago", "manager", "director", "engineer", "school",
}

// Lines between title and abstract that carry an organization cue render
// italic; plain name and email lines do not.
var organizationWords = []string{
	"manager", "director", "engineer", "school of", "university", "chicago", "usa",
}

var romanPrefixes = []string{
	"I.", "II.", "III.", "IV.", "V.", "VI.", "VII.", "VIII.", "IX.", "X.",
}

// rule pairs a predicate with the role it assigns. Rules are evaluated in
// order; the first match wins.
type rule struct {
	role  Role
	match func(c ruleCtx) bool
}

// ruleCtx carries one block's classification inputs.
type ruleCtx struct {
	text  string // trimmed block text
	lower string
	runes int
	index int
	state *ParseState
}

var rules = []rule{
	{RoleTitle, isTitle},
	{RoleAbstractHeading, isAbstractHeading},
	{RoleAuthor, isAuthor},
	{RoleCodeCaption, isCodeCaption},
	{RoleSectionHeading, isSectionHeading},
	{RoleSubsectionHeading, isSubsectionHeading},
	{RoleFigureCaption, isFigureCaption},
	{RoleTableCaption, isTableCaption},
	{RoleReference, isReference},
}

// Classify assigns a role to the block with the given trimmed text and
// position. It mutates state: delimiter markers toggle the code-block
// flag, a title match sets TitleFound and an abstract match sets
// AbstractFound. Grouping of code-block members is done by the caller via
// a bounded forward scan; Classify only reports membership.
func Classify(text string, index int, state *ParseState) Role {
	lower := strings.ToLower(text)

	switch lower {
	case CodeBlockStart:
		state.InCodeBlock = true
		return RoleSkip
	case CodeBlockEnd:
		state.InCodeBlock = false
		return RoleSkip
	}

	if state.InCodeBlock {
		return RoleCodeBlockLine
	}

	c := ruleCtx{
		text:  text,
		lower: lower,
		runes: utf8.RuneCountInString(text),
		index: index,
		state: state,
	}
	for _, r := range rules {
		if r.match(c) {
			switch r.role {
			case RoleTitle:
				state.TitleFound = true
			case RoleAbstractHeading:
				state.AbstractFound = true
			}
			return r.role
		}
	}
	return RoleBody
}

func isTitle(c ruleCtx) bool {
	if c.state.TitleFound || c.index > 3 {
		return false
	}
	if c.runes == 0 || c.runes >= 200 {
		return false
	}
	for _, w := range titleStopWords {
		if strings.Contains(c.lower, w) {
			return false
		}
	}
	return true
}

func isAbstractHeading(c ruleCtx) bool {
	return c.lower == "abstract" ||
		strings.HasPrefix(c.lower, "abstract-") ||
		strings.HasPrefix(c.lower, "abstract -")
}

// Every block after the title and before the abstract is an author line,
// with no lexical filter: window membership alone decides.
func isAuthor(c ruleCtx) bool {
	return c.state.TitleFound && !c.state.AbstractFound && c.index <= 20
}

func isCodeCaption(c ruleCtx) bool {
	return strings.HasPrefix(c.lower, "code block")
}

func isSectionHeading(c ruleCtx) bool {
	if c.runes >= 100 {
		return false
	}
	for _, p := range romanPrefixes {
		if strings.HasPrefix(c.text, p) {
			return true
		}
	}
	first, _ := utf8.DecodeRuneInString(c.text)
	if unicode.IsDigit(first) {
		head := c.text
		if len(head) > 3 {
			head = head[:3]
		}
		return strings.Contains(head, ".")
	}
	return false
}

func isSubsectionHeading(c ruleCtx) bool {
	if c.runes <= 2 || c.runes >= 100 {
		return false
	}
	first, size := utf8.DecodeRuneInString(c.text)
	if !unicode.IsLetter(first) {
		return false
	}
	second, _ := utf8.DecodeRuneInString(c.text[size:])
	return second == '.'
}

func isFigureCaption(c ruleCtx) bool {
	return strings.HasPrefix(c.lower, "figure") || strings.HasPrefix(c.lower, "fig.")
}

func isTableCaption(c ruleCtx) bool {
	return strings.HasPrefix(c.lower, "table")
}

func isReference(c ruleCtx) bool {
	if c.runes < 2 || c.text[0] != '[' {
		return false
	}
	return c.text[1] >= '0' && c.text[1] <= '9'
}

// isOrganizationLine reports whether an author-window block carries an
// organization or title cue and should render italic.
func isOrganizationLine(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range organizationWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
