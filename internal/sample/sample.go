// Package sample generates the sample input documents used to exercise
// the converter: a plain research paper and a paper with marked code
// blocks.
package sample

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fumiama/go-docx"
)

// Paper builds a small unformatted research paper: title, authors,
// abstract, numbered sections, a figure caption and references.
func Paper() *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText("A Sample Research Paper for Testing IEEE Format Conversion").Size("32").Bold()

	authors := doc.AddParagraph()
	authors.Justification("center")
	authors.AddText("John Doe, Jane Smith").Size("24")

	doc.AddParagraph().AddText("Abstract")
	doc.AddParagraph().AddText("This is a sample abstract for testing the IEEE format converter. The converter should properly format this document according to IEEE publication standards, including margins, fonts, spacing, and section headings.")

	doc.AddParagraph().AddText("I. Introduction")
	doc.AddParagraph().AddText("This paper presents a utility for converting word-processing documents to IEEE standard format. The conversion process involves applying proper formatting, fonts, margins, and styles according to IEEE publication guidelines.")

	doc.AddParagraph().AddText("II. Methodology")
	doc.AddParagraph().AddText("The methodology involves automatic detection of document elements such as titles, sections, subsections, figures, and tables. Each element is then formatted according to IEEE specifications.")

	doc.AddParagraph().AddText("A. Data Collection")
	doc.AddParagraph().AddText("Data was collected from various sources to validate the formatting requirements.")

	doc.AddParagraph().AddText("III. Results")
	doc.AddParagraph().AddText("The results demonstrate successful conversion of documents to IEEE format with proper formatting applied to all elements.")

	caption := doc.AddParagraph()
	caption.Justification("center")
	caption.AddText("Figure 1. Sample figure caption for testing.")

	doc.AddParagraph().AddText("IV. Conclusion")
	doc.AddParagraph().AddText("In conclusion, the utility successfully converts word-processing documents to IEEE format, making it easier for researchers to prepare their papers for publication.")

	doc.AddParagraph().AddText("References")
	doc.AddParagraph().AddText(`[1] J. Smith, "Sample Reference," IEEE Transactions, vol. 1, no. 1, pp. 1-10, 2024.`)
	doc.AddParagraph().AddText(`[2] A. Johnson, "Another Reference," in Proc. Conference, 2024, pp. 20-30.`)

	return doc
}

// CodePaper builds a paper whose body carries marked code regions, for
// exercising code-block detection, grouping and boxed styling.
func CodePaper() *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText("A Test Paper with Code Examples").Size("32").Bold()

	doc.AddParagraph().AddText("John Doe")
	doc.AddParagraph().AddText("john.doe@university.edu")
	doc.AddParagraph().AddText("Department of Computer Science")
	doc.AddParagraph().AddText("University of Example")
	doc.AddParagraph().AddText("Chicago, IL, USA")

	doc.AddParagraph().AddText("Abstract")
	doc.AddParagraph().AddText("This is a test document to demonstrate code block formatting in IEEE style. The document includes code examples in different programming languages.")

	doc.AddParagraph().AddText("I. INTRODUCTION")
	doc.AddParagraph().AddText("This document demonstrates automatic code block detection and formatting.")

	doc.AddParagraph().AddText("II. CODE EXAMPLES")

	doc.AddParagraph().AddText("A. Query Example")
	doc.AddParagraph().AddText("The following shows a query function:")

	doc.AddParagraph().AddText("<code block start>")
	code := doc.AddParagraph()
	code.AddText("def fetch_profile(profile_id):\n" +
		"    result = db.query(\n" +
		"        \"SELECT * FROM Profiles WHERE Profile_ID=?\",\n" +
		"        profile_id\n" +
		"    )\n" +
		"    return result").Size("18")
	doc.AddParagraph().AddText("<code block end>")
	doc.AddParagraph().AddText("Code Block 1: Query Function Example")

	doc.AddParagraph().AddText("B. Schema Example")
	doc.AddParagraph().AddText("Database schema definition:")

	doc.AddParagraph().AddText("<code block start>")
	schema := doc.AddParagraph()
	schema.AddText("CREATE TABLE Profiles (\n" +
		"    Profile_ID VARCHAR(50) PRIMARY KEY,\n" +
		"    Version VARCHAR(10) NOT NULL\n" +
		");").Size("18")
	doc.AddParagraph().AddText("<code block end>")
	doc.AddParagraph().AddText("Code Block 2: Schema Definition")

	doc.AddParagraph().AddText("III. CONCLUSION")
	doc.AddParagraph().AddText("This document successfully demonstrates code block formatting.")

	doc.AddParagraph().AddText(`[1] J. Smith, "Sample Reference," IEEE Journal, 2024.`)

	return doc
}

// WriteAll writes both sample documents into dir and returns their paths.
func WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sample directory: %w", err)
	}
	docs := []struct {
		name  string
		build func() *docx.Docx
	}{
		{"test_document.docx", Paper},
		{"test_code_blocks.docx", CodePaper},
	}
	var paths []string
	for _, d := range docs {
		path := filepath.Join(dir, d.name)
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if _, err := d.build().WriteTo(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
