// Package render produces a DOCX export of a structured resume document.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"resume-rewriter/internal/extractor"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const fallbackName = "Your Name"

// Render builds a DOCX byte slice from the document. The layout mirrors the
// extractor's section order: contact header, experience, education, skills.
// A document without a name renders under a placeholder; every document the
// extractor produces is exportable.
func Render(doc extractor.ResumeDocument) ([]byte, error) {
	name := fallbackName
	if doc.Basics.Name != nil && strings.TrimSpace(*doc.Basics.Name) != "" {
		name = strings.TrimSpace(*doc.Basics.Name)
	}

	var body strings.Builder
	writeHeading(&body, name, 1)
	if contact := contactLine(doc.Basics); contact != "" {
		writeParagraph(&body, contact, false)
	}

	if len(doc.Work) > 0 {
		writeHeading(&body, "Experience", 2)
		for _, entry := range doc.Work {
			writeParagraph(&body, workHeader(entry), true)
			if dates := dateLine(entry); dates != "" {
				writeParagraph(&body, dates, false)
			}
			for _, hl := range entry.Highlights {
				writeBullet(&body, hl)
			}
		}
	}

	if len(doc.Education) > 0 {
		writeHeading(&body, "Education", 2)
		for _, edu := range doc.Education {
			parts := []string{edu.Institution}
			if edu.Degree != nil {
				parts = append(parts, *edu.Degree)
			}
			if edu.Date != nil {
				parts = append(parts, *edu.Date)
			}
			writeParagraph(&body, strings.Join(parts, " | "), false)
		}
	}

	if len(doc.Skills) > 0 {
		writeHeading(&body, "Skills", 2)
		for _, group := range doc.Skills {
			writeParagraph(&body, group.Name+": "+strings.Join(group.Keywords, ", "), false)
		}
	}

	documentXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
%s</w:body>
</w:document>`, body.String())

	return packDocx(documentXML)
}

func packDocx(documentXML string) ([]byte, error) {
	var out bytes.Buffer
	writer := zip.NewWriter(&out)

	files := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, f := range files {
		dst, err := writer.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Write([]byte(f.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeHeading(sb *strings.Builder, text string, level int) {
	size := 32
	if level > 1 {
		size = 26
	}
	fmt.Fprintf(sb, `<w:p><w:r><w:rPr><w:b/><w:sz w:val="%d"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`+"\n", size, escape(text))
}

func writeParagraph(sb *strings.Builder, text string, bold bool) {
	props := ""
	if bold {
		props = "<w:rPr><w:b/></w:rPr>"
	}
	fmt.Fprintf(sb, `<w:p><w:r>%s<w:t xml:space="preserve">%s</w:t></w:r></w:p>`+"\n", props, escape(text))
}

func writeBullet(sb *strings.Builder, text string) {
	fmt.Fprintf(sb, `<w:p><w:pPr><w:ind w:left="360"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`+"\n", escape("• "+text))
}

func contactLine(basics extractor.Basics) string {
	var parts []string
	if basics.Email != nil {
		parts = append(parts, *basics.Email)
	}
	if basics.Phone != nil {
		parts = append(parts, *basics.Phone)
	}
	if basics.Location != nil {
		parts = append(parts, *basics.Location)
	}
	parts = append(parts, basics.Links...)
	return strings.Join(parts, " | ")
}

func workHeader(entry extractor.WorkEntry) string {
	switch {
	case entry.Company != "" && entry.Position != "":
		return entry.Company + " | " + entry.Position
	case entry.Company != "":
		return entry.Company
	default:
		return entry.Position
	}
}

func dateLine(entry extractor.WorkEntry) string {
	switch {
	case entry.Start != "" && entry.End != "":
		return entry.Start + " - " + entry.End
	case entry.Start != "":
		return entry.Start
	default:
		return ""
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
