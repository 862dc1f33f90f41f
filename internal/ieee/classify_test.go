package ieee

import "testing"

func TestClassify_Delimiters(t *testing.T) {
	st := NewParseState()

	role := Classify("<code block start>", 5, st)
	if role != RoleSkip {
		t.Fatalf("start marker: expected skip, got %v", role)
	}
	if !st.InCodeBlock {
		t.Error("start marker should set InCodeBlock")
	}

	role = Classify("<code block end>", 7, st)
	if role != RoleSkip {
		t.Fatalf("end marker: expected skip, got %v", role)
	}
	if st.InCodeBlock {
		t.Error("end marker should clear InCodeBlock")
	}
}

func TestClassify_DelimitersCaseInsensitive(t *testing.T) {
	st := NewParseState()
	if role := Classify("<CODE BLOCK START>", 0, st); role != RoleSkip {
		t.Errorf("expected skip for uppercase marker, got %v", role)
	}
	if !st.InCodeBlock {
		t.Error("uppercase marker should set InCodeBlock")
	}
}

func TestClassify_CodeBlockMembership(t *testing.T) {
	st := NewParseState()
	st.InCodeBlock = true

	// Everything inside a code region is a code line, including blank
	// lines and text that would otherwise match earlier rules.
	for _, text := range []string{"x := 1", "", "I. INTRODUCTION", "[1] not a reference"} {
		if role := Classify(text, 9, st); role != RoleCodeBlockLine {
			t.Errorf("Classify(%q) in code block = %v, want code-block-line", text, role)
		}
	}
}

func TestClassify_Title(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		index int
		want  Role
	}{
		{"first block short text", "A Survey of Things", 0, RoleTitle},
		{"index three", "A Survey of Things", 3, RoleTitle},
		{"index four too late", "A Survey of Things", 4, RoleBody},
		{"stop word university", "University of Example", 0, RoleBody},
		{"stop word email", "jane@example.edu", 0, RoleBody},
		{"stop word chicago", "Chicago, IL", 0, RoleBody},
		{"stop word engineer", "Senior Engineer", 0, RoleBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewParseState()
			if got := Classify(tt.text, tt.index, st); got != tt.want {
				t.Errorf("Classify(%q, %d) = %v, want %v", tt.text, tt.index, got, tt.want)
			}
		})
	}
}

func TestClassify_TitleSetsFlagAndMatchesOnce(t *testing.T) {
	st := NewParseState()
	if got := Classify("My Paper", 0, st); got != RoleTitle {
		t.Fatalf("expected title, got %v", got)
	}
	if !st.TitleFound {
		t.Fatal("title classification should set TitleFound")
	}
	// The next early block is inside the author window, not a second title.
	if got := Classify("Jane Smith", 1, st); got != RoleAuthor {
		t.Errorf("block after title: expected author, got %v", got)
	}
}

func TestClassify_TitleTooLong(t *testing.T) {
	long := make([]byte, 0, 210)
	for len(long) < 210 {
		long = append(long, 'a')
	}
	st := NewParseState()
	if got := Classify(string(long), 0, st); got == RoleTitle {
		t.Error("200+ character block must not be a title")
	}
}

func TestClassify_AbstractHeading(t *testing.T) {
	for _, text := range []string{"Abstract", "ABSTRACT", "abstract", "Abstract- This paper", "Abstract - This paper"} {
		st := NewParseState()
		st.TitleFound = true
		if got := Classify(text, 6, st); got != RoleAbstractHeading {
			t.Errorf("Classify(%q) = %v, want abstract-heading", text, got)
		}
		if !st.AbstractFound {
			t.Errorf("Classify(%q) should set AbstractFound", text)
		}
	}
}

func TestClassify_AuthorWindow(t *testing.T) {
	// The window between title and abstract classifies every block as
	// author, with no lexical filter at all.
	st := NewParseState()
	st.TitleFound = true

	for _, text := range []string{"John Doe", "john.doe@university.edu", "Table 3: measurements", "Figure talk"} {
		if got := Classify(text, 5, st); got != RoleAuthor {
			t.Errorf("Classify(%q) in window = %v, want author", text, got)
		}
	}

	// Outside the positional window the same text falls through.
	if got := Classify("John Doe", 21, st); got != RoleBody {
		t.Errorf("index 21: got %v, want body", got)
	}
}

func TestClassify_AuthorWindowBounds(t *testing.T) {
	tests := []struct {
		name          string
		titleFound    bool
		abstractFound bool
		index         int
		want          Role
	}{
		{"in window", true, false, 20, RoleAuthor},
		{"past index 20", true, false, 21, RoleBody},
		{"before title", false, false, 5, RoleBody},
		{"after abstract", true, true, 12, RoleBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewParseState()
			st.TitleFound = tt.titleFound
			st.AbstractFound = tt.abstractFound
			if got := Classify("Some plain line of text", tt.index, st); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_AfterAbstract(t *testing.T) {
	st := NewParseState()
	st.TitleFound = true
	st.AbstractFound = true

	tests := []struct {
		text string
		want Role
	}{
		{"Code Block 1: Query Function", RoleCodeCaption},
		{"code block listings compared", RoleCodeCaption},
		{"I. INTRODUCTION", RoleSectionHeading},
		{"X. Conclusion", RoleSectionHeading},
		{"XI. Not a roman prefix we accept", RoleBody},
		{"1. Introduction", RoleSectionHeading},
		{"10. Summary", RoleSectionHeading},
		{"A. Data Collection", RoleSubsectionHeading},
		{"A.", RoleBody}, // too short for a subsection
		{"Figure 1. Sample caption", RoleFigureCaption},
		{"Fig. 2 shows the result", RoleFigureCaption},
		{"Table I. Results", RoleTableCaption},
		{`[1] J. Smith, "Sample Reference," IEEE Journal, 2024.`, RoleReference},
		{"[A] not a reference", RoleBody},
		{"Plain prose goes to body.", RoleBody},
	}
	for _, tt := range tests {
		if got := Classify(tt.text, 30, st); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClassify_RuleOrderDeterminism(t *testing.T) {
	// "V. Table of Results" satisfies both the section-heading rule
	// (roman prefix) and the subsection rule (letter plus period); the
	// earlier rule must always win.
	st := NewParseState()
	st.TitleFound = true
	st.AbstractFound = true
	if got := Classify("V. Table of Results", 30, st); got != RoleSectionHeading {
		t.Errorf("ambiguous heading = %v, want section-heading", got)
	}

	// Inside the author window, the window rule beats every later
	// lexical rule.
	st = NewParseState()
	st.TitleFound = true
	if got := Classify("Table 1. Results", 4, st); got != RoleAuthor {
		t.Errorf("caption text in author window = %v, want author", got)
	}
}

func TestClassify_SectionHeadingLengthCap(t *testing.T) {
	long := "I. "
	for len(long) < 120 {
		long += "very long heading text "
	}
	st := NewParseState()
	st.TitleFound = true
	st.AbstractFound = true
	if got := Classify(long, 30, st); got == RoleSectionHeading {
		t.Error("headings of 100+ characters must not match")
	}
}

func TestIsOrganizationLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"University of Example", true},
		{"School of Computing", true},
		{"Chicago, IL, USA", true},
		{"Engineering Manager", true},
		{"John Doe", false},
		{"john.doe@example.edu", false},
	}
	for _, tt := range tests {
		if got := isOrganizationLine(tt.text); got != tt.want {
			t.Errorf("isOrganizationLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
